package cache

import (
	"context"
	"time"

	"github.com/kvbuilders/app/internal/model"
)

// InquiryCache is the fast-cache surface used by the submission gate and the
// admin listing. It is an accelerator only: absence of a marker or snapshot
// never implies absence of durable data.
type InquiryCache interface {
	// LastSubmission returns the instant of the most recent accepted
	// submission for the normalized email, or the zero time when no live
	// marker exists.
	LastSubmission(ctx context.Context, email string) (time.Time, error)

	// MarkSubmitted records an accepted submission instant for email with
	// the given time-to-live.
	MarkSubmitted(ctx context.Context, email string, at time.Time, ttl time.Duration) error

	// Listing returns the cached admin listing snapshot, or nil when the
	// slot is empty or expired.
	Listing(ctx context.Context) ([]model.Inquiry, error)

	// StoreListing replaces the admin listing snapshot.
	StoreListing(ctx context.Context, inquiries []model.Inquiry, ttl time.Duration) error

	// DropListing deletes the admin listing snapshot unconditionally.
	DropListing(ctx context.Context) error
}
