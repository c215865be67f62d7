package repo

import (
	"context"
	"errors"
	"time"

	"github.com/kvbuilders/app/internal/model"
)

var ErrNotFound = errors.New("inquiry not found")

// timeLayout is the fixed-width encoding used for instants in stored
// documents. Fixed width keeps lexicographic range queries on the encoded
// strings equivalent to chronological ones.
const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

// InquiryRepo is the durable store for contact inquiries.
type InquiryRepo interface {
	Insert(ctx context.Context, inq *model.Inquiry) error

	// FindByEmailSince returns the most recent inquiry from email with a
	// timestamp at or after since, or nil when there is none.
	FindByEmailSince(ctx context.Context, email string, since time.Time) (*model.Inquiry, error)

	// ListNewestFirst returns all inquiries ordered by creation time
	// descending.
	ListNewestFirst(ctx context.Context) ([]model.Inquiry, error)

	// UpdateStatus sets the status of the inquiry with the given id.
	// Returns ErrNotFound when no such inquiry exists.
	UpdateStatus(ctx context.Context, id, status string) error
}

// StatusCheckRepo stores health-check records.
type StatusCheckRepo interface {
	Insert(ctx context.Context, sc *model.StatusCheck) error
	List(ctx context.Context) ([]model.StatusCheck, error)
}

func encodeTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func decodeTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		// Older documents may carry other ISO-8601 shapes.
		t, err = time.Parse(time.RFC3339Nano, s)
	}
	return t.UTC(), err
}
