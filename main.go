package main

import "github.com/kvbuilders/app/cmd"

func main() {
	cmd.Execute()
}
