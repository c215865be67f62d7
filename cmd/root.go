package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/kvbuilders/app/cmd/http"
	systemcmd "github.com/kvbuilders/app/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "kvbuilders",
	Short: "Contact-form backend for the KV Builders website.",
	Long: `Backend service for the KV Builders website. It accepts contact-form
inquiries, enforces a per-email submission cooldown, notifies the business
owner and the customer by email, and serves the admin inquiry dashboard.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
