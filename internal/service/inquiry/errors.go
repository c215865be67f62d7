package inquiry

import "fmt"

// DuplicateError rejects a submission from an address that already submitted
// within the cooldown window. RemainingDays is the whole days left, rounded
// up.
type DuplicateError struct {
	RemainingDays int
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate submission: %d more days before a new inquiry is accepted", e.RemainingDays)
}
