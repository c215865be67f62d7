package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/kvbuilders/app/internal/model"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return NewRedisCache(rdb), mr
}

func TestRedisCache_MarkSubmitted_SetsMarkerWithTTL(t *testing.T) {
	t.Parallel()

	c, mr := newTestCache(t)
	ctx := context.Background()

	at := time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC)
	if err := c.MarkSubmitted(ctx, "visitor@example.com", at, 30*24*time.Hour); err != nil {
		t.Fatalf("MarkSubmitted() error: %v", err)
	}

	key := "inquiry:visitor@example.com"
	if !mr.Exists(key) {
		t.Fatalf("expected key %q to exist", key)
	}
	if ttl := mr.TTL(key); ttl != 30*24*time.Hour {
		t.Fatalf("expected TTL %v, got %v", 30*24*time.Hour, ttl)
	}

	got, err := c.LastSubmission(ctx, "visitor@example.com")
	if err != nil {
		t.Fatalf("LastSubmission() error: %v", err)
	}
	if !got.Equal(at) {
		t.Fatalf("expected last submission %v, got %v", at, got)
	}
}

func TestRedisCache_LastSubmission_AbsentMarker(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(t)

	got, err := c.LastSubmission(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("LastSubmission() error: %v", err)
	}
	if !got.IsZero() {
		t.Fatalf("expected zero time for absent marker, got %v", got)
	}
}

func TestRedisCache_LastSubmission_ExpiredMarkerIsAbsent(t *testing.T) {
	t.Parallel()

	c, mr := newTestCache(t)
	ctx := context.Background()

	if err := c.MarkSubmitted(ctx, "v@example.com", time.Now(), time.Minute); err != nil {
		t.Fatalf("MarkSubmitted() error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	got, err := c.LastSubmission(ctx, "v@example.com")
	if err != nil {
		t.Fatalf("LastSubmission() error: %v", err)
	}
	if !got.IsZero() {
		t.Fatalf("expected zero time after expiry, got %v", got)
	}
}

func TestRedisCache_LastSubmission_CorruptMarker(t *testing.T) {
	t.Parallel()

	c, mr := newTestCache(t)
	mr.Set("inquiry:v@example.com", "not-a-timestamp")

	if _, err := c.LastSubmission(context.Background(), "v@example.com"); err == nil {
		t.Fatalf("expected decode error for corrupt marker, got nil")
	}
}

func TestRedisCache_Listing_RoundTrip(t *testing.T) {
	t.Parallel()

	c, mr := newTestCache(t)
	ctx := context.Background()

	in := []model.Inquiry{
		{
			ID:        "b2c3",
			Name:      "Priya S",
			Email:     "priya@example.com",
			Phone:     "+919843072490",
			Service:   "Interior Design",
			Message:   "Quote for a 2BHK interior.",
			Timestamp: time.Date(2026, 8, 2, 9, 0, 0, 123456000, time.UTC),
			Status:    model.StatusNew,
		},
		{
			ID:        "a1b2",
			Name:      "Arun K",
			Email:     "arun@example.com",
			Service:   "House Construction",
			Message:   "Need an estimate for a 1200 sqft plot.",
			Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
			Status:    model.StatusContacted,
		},
	}

	if err := c.StoreListing(ctx, in, 5*time.Minute); err != nil {
		t.Fatalf("StoreListing() error: %v", err)
	}
	if ttl := mr.TTL("admin:inquiries"); ttl != 5*time.Minute {
		t.Fatalf("expected TTL %v, got %v", 5*time.Minute, ttl)
	}

	out, err := c.Listing(ctx)
	if err != nil {
		t.Fatalf("Listing() error: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d inquiries, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i].ID != in[i].ID || out[i].Name != in[i].Name || out[i].Email != in[i].Email ||
			out[i].Phone != in[i].Phone || out[i].Service != in[i].Service ||
			out[i].Message != in[i].Message || out[i].Status != in[i].Status {
			t.Fatalf("inquiry %d mismatch: got %+v, want %+v", i, out[i], in[i])
		}
		if !out[i].Timestamp.Equal(in[i].Timestamp) {
			t.Fatalf("inquiry %d timestamp mismatch: got %v, want %v", i, out[i].Timestamp, in[i].Timestamp)
		}
	}
}

func TestRedisCache_Listing_MissIsNil(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(t)

	out, err := c.Listing(context.Background())
	if err != nil {
		t.Fatalf("Listing() error: %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil on cache miss, got %v", out)
	}
}

func TestRedisCache_Listing_EmptySnapshotIsNotAMiss(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(t)
	ctx := context.Background()

	// A stored empty listing must stay distinguishable from an absent one,
	// otherwise every admin read of an empty collection would hit the store.
	if err := c.StoreListing(ctx, nil, time.Minute); err != nil {
		t.Fatalf("StoreListing() error: %v", err)
	}

	out, err := c.Listing(ctx)
	if err != nil {
		t.Fatalf("Listing() error: %v", err)
	}
	if out == nil {
		t.Fatalf("expected non-nil empty listing, got nil")
	}
	if len(out) != 0 {
		t.Fatalf("expected empty listing, got %d entries", len(out))
	}
}

func TestRedisCache_DropListing(t *testing.T) {
	t.Parallel()

	c, mr := newTestCache(t)
	ctx := context.Background()

	if err := c.StoreListing(ctx, []model.Inquiry{{ID: "x"}}, time.Minute); err != nil {
		t.Fatalf("StoreListing() error: %v", err)
	}
	if err := c.DropListing(ctx); err != nil {
		t.Fatalf("DropListing() error: %v", err)
	}
	if mr.Exists("admin:inquiries") {
		t.Fatalf("expected listing key to be gone")
	}

	// Dropping an absent slot is not an error.
	if err := c.DropListing(ctx); err != nil {
		t.Fatalf("DropListing() on empty slot error: %v", err)
	}
}
