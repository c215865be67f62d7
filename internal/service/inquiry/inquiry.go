package inquiry

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"

	"github.com/kvbuilders/app/internal/cache"
	"github.com/kvbuilders/app/internal/model"
	"github.com/kvbuilders/app/internal/repo"
	"github.com/kvbuilders/app/internal/service/notify"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Message string
}

type Options struct {
	Cooldown      time.Duration
	ListingTTL    time.Duration
	DefaultRegion string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Submit accepts or rejects a candidate inquiry. On acceptance the
	// inquiry is persisted, the dedup marker is written, and both
	// notification emails are dispatched without blocking the caller.
	// A rejection inside the cooldown window returns *DuplicateError.
	Submit(ctx context.Context, req CreateRequest) (*model.Inquiry, error)

	// List returns all inquiries newest-first, served from the listing
	// snapshot when it is live.
	List(ctx context.Context) ([]model.Inquiry, error)

	// UpdateStatus sets an inquiry's status and invalidates the listing
	// snapshot. Returns repo.ErrNotFound for unknown ids.
	UpdateStatus(ctx context.Context, id, status string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type inquiryService struct {
	inquiries repo.InquiryRepo
	cache     cache.InquiryCache
	notifier  notify.Service

	cooldown   time.Duration
	listingTTL time.Duration
	region     string

	now func() time.Time
}

func New(inquiries repo.InquiryRepo, c cache.InquiryCache, n notify.Service, opts Options) Service {
	return &inquiryService{
		inquiries:  inquiries,
		cache:      c,
		notifier:   n,
		cooldown:   opts.Cooldown,
		listingTTL: opts.ListingTTL,
		region:     opts.DefaultRegion,
		now:        time.Now,
	}
}

func (s *inquiryService) Submit(ctx context.Context, req CreateRequest) (*model.Inquiry, error) {
	email := normalizeEmail(req.Email)
	now := s.now().UTC()

	last, err := s.cache.LastSubmission(ctx, email)
	if err != nil {
		return nil, err
	}
	if last.IsZero() {
		// Cache is silent; the store is the tie-breaker. A marker can be
		// missing after an eviction or restart even though a recent
		// submission exists.
		prev, err := s.inquiries.FindByEmailSince(ctx, email, now.Add(-s.cooldown))
		if err != nil {
			return nil, err
		}
		if prev != nil {
			last = prev.Timestamp
			// Read-repair: rewrite the marker with the remaining
			// cooldown as its TTL so later checks stay on the fast
			// path.
			if remaining := s.cooldown - now.Sub(last); remaining > 0 {
				if err := s.cache.MarkSubmitted(ctx, email, last, remaining); err != nil {
					slog.Warn("dedup marker backfill failed", "email", email, "err", err)
				}
			}
		}
	}
	if !last.IsZero() {
		if remaining := s.cooldown - now.Sub(last); remaining > 0 {
			return nil, &DuplicateError{RemainingDays: wholeDaysLeft(remaining)}
		}
	}

	inq := model.NewInquiry(strings.TrimSpace(req.Name), email, s.normalizePhone(req.Phone), req.Service, req.Message)
	if err := s.inquiries.Insert(ctx, inq); err != nil {
		return nil, err
	}

	// The record is already durable at this point. A failed marker or
	// invalidation write only leaves the cache cold, so it is logged and
	// not surfaced.
	if err := s.cache.MarkSubmitted(ctx, email, inq.Timestamp, s.cooldown); err != nil {
		slog.Warn("dedup marker write failed", "email", email, "err", err)
	}
	if err := s.cache.DropListing(ctx); err != nil {
		slog.Warn("listing invalidation failed", "err", err)
	}

	s.dispatchNotifications(ctx, inq)

	return inq, nil
}

func (s *inquiryService) List(ctx context.Context) ([]model.Inquiry, error) {
	cached, err := s.cache.Listing(ctx)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return cached, nil
	}

	all, err := s.inquiries.ListNewestFirst(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.StoreListing(ctx, all, s.listingTTL); err != nil {
		slog.Warn("listing snapshot write failed", "err", err)
	}
	return all, nil
}

func (s *inquiryService) UpdateStatus(ctx context.Context, id, status string) error {
	if err := s.inquiries.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	// The slot must be gone before the mutation response, otherwise the
	// next listing read may serve the snapshot taken before this update.
	return s.cache.DropListing(ctx)
}

// dispatchNotifications sends both emails fire-and-forget. The context is
// detached so that cancellation of the triggering request does not cancel
// in-flight sends; failures are logged and never reach the caller.
func (s *inquiryService) dispatchNotifications(ctx context.Context, inq *model.Inquiry) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := s.notifier.NotifyOwner(ctx, inq); err != nil {
			slog.Warn("owner notification failed", "inquiry_id", inq.ID, "err", err)
		}
	}()
	go func() {
		if err := s.notifier.ConfirmCustomer(ctx, inq); err != nil {
			slog.Warn("customer confirmation failed", "inquiry_id", inq.ID, "err", err)
		}
	}()
}

func (s *inquiryService) normalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	num, err := phonenumbers.Parse(raw, s.region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		// Keep whatever the visitor typed; the phone field is optional
		// and free-form.
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func wholeDaysLeft(remaining time.Duration) int {
	return int(math.Ceil(remaining.Hours() / 24))
}
