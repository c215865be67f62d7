package model

import (
	"time"

	"github.com/google/uuid"
)

// StatusCheck is a lightweight health-check record written by monitoring
// clients. It shares the inquiry collection's timestamp encoding but is
// otherwise unrelated to the contact flow.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewStatusCheck(clientName string) *StatusCheck {
	return &StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
}
