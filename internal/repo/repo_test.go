package repo

import (
	"sort"
	"testing"
	"time"
)

func TestTimeCodec_RoundTrip(t *testing.T) {
	in := time.Date(2026, 8, 15, 10, 30, 45, 123456000, time.UTC)

	got, err := decodeTime(encodeTime(in))
	if err != nil {
		t.Fatalf("decodeTime() error: %v", err)
	}
	if !got.Equal(in) {
		t.Fatalf("round trip = %v, want %v", got, in)
	}
}

func TestTimeCodec_NormalizesToUTC(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2026, 8, 15, 16, 0, 45, 0, ist)

	s := encodeTime(in)
	got, err := decodeTime(s)
	if err != nil {
		t.Fatalf("decodeTime() error: %v", err)
	}
	if got.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %v", got.Location())
	}
	if !got.Equal(in) {
		t.Fatalf("decoded = %v, want instant %v", got, in)
	}
}

func TestTimeCodec_LexicographicOrderMatchesChronological(t *testing.T) {
	// Range filters compare the encoded strings, so string order has to
	// agree with time order across digit-count boundaries.
	times := []time.Time{
		time.Date(2026, 8, 15, 9, 59, 59, 999999000, time.UTC),
		time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 15, 10, 0, 0, 1000, time.UTC),
		time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	encoded := make([]string, len(times))
	for i, tt := range times {
		encoded[i] = encodeTime(tt)
	}
	if !sort.StringsAreSorted(encoded) {
		t.Fatalf("encoded timestamps not in chronological string order: %v", encoded)
	}
}

func TestDecodeTime_AcceptsRFC3339Variants(t *testing.T) {
	want := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	for _, s := range []string{
		"2026-08-15T10:00:00Z",
		"2026-08-15T10:00:00.000000Z",
		"2026-08-15T15:30:00+05:30",
	} {
		got, err := decodeTime(s)
		if err != nil {
			t.Fatalf("decodeTime(%q) error: %v", s, err)
		}
		if !got.Equal(want) {
			t.Fatalf("decodeTime(%q) = %v, want %v", s, got, want)
		}
	}
}
