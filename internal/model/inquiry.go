package model

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry status values. The status field is stored as opaque text and is
// not validated against this list on write.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusClosed    = "closed"
)

// Inquiry is a single contact-form submission.
type Inquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

// NewInquiry builds an inquiry with a fresh id, the current UTC instant and
// status "new". ID and Timestamp are set once here and never change.
func NewInquiry(name, email, phone, service, message string) *Inquiry {
	return &Inquiry{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Service:   service,
		Message:   message,
		Timestamp: time.Now().UTC(),
		Status:    StatusNew,
	}
}
