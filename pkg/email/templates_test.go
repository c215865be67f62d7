package email

import (
	"strings"
	"testing"
)

func testConfig() Config {
	return Config{
		From:            "noreply@example.com",
		OwnerAddress:    "owner@example.com",
		BusinessName:    "KV Builders",
		BusinessPhone:   "98430 72490",
		BusinessEmail:   "hello@example.com",
		BusinessAddress: "Tatabad, Coimbatore",
	}
}

func testData() InquiryData {
	return InquiryData{
		Name:       "Arun K",
		Email:      "arun@example.com",
		Phone:      "+919843072490",
		Service:    "House Construction",
		Message:    "Need an estimate for a 1200 sqft plot.",
		ReceivedAt: "2026-08-15 10:00:00 UTC",
	}
}

func TestBuildOwnerNotificationEmail(t *testing.T) {
	msg := BuildOwnerNotificationEmail(testConfig(), testData())

	if len(msg.To) != 1 || msg.To[0] != "owner@example.com" {
		t.Fatalf("To = %v, want owner address", msg.To)
	}
	if want := "New Inquiry from Arun K - House Construction"; msg.Subject != want {
		t.Fatalf("Subject = %q, want %q", msg.Subject, want)
	}

	for _, field := range []string{
		"Arun K", "arun@example.com", "+919843072490",
		"House Construction", "Need an estimate for a 1200 sqft plot.",
		"2026-08-15 10:00:00 UTC",
	} {
		if !strings.Contains(msg.TextBody, field) {
			t.Errorf("text body missing %q", field)
		}
		if !strings.Contains(msg.HTMLBody, field) {
			t.Errorf("html body missing %q", field)
		}
	}

	// The format verbs must all be consumed.
	if strings.Contains(msg.HTMLBody, "%!") {
		t.Fatalf("html body has a formatting error:\n%s", msg.HTMLBody)
	}
	if !strings.Contains(msg.HTMLBody, "linear-gradient(135deg, #2C5F4E 0%, #1A3A2E 100%)") {
		t.Fatalf("html body gradient not rendered correctly")
	}
}

func TestBuildOwnerNotificationEmail_FallsBackToFrom(t *testing.T) {
	cfg := testConfig()
	cfg.OwnerAddress = ""

	msg := BuildOwnerNotificationEmail(cfg, testData())
	if len(msg.To) != 1 || msg.To[0] != "noreply@example.com" {
		t.Fatalf("To = %v, want fallback to From", msg.To)
	}
}

func TestBuildCustomerConfirmationEmail(t *testing.T) {
	msg := BuildCustomerConfirmationEmail(testConfig(), testData())

	if len(msg.To) != 1 || msg.To[0] != "arun@example.com" {
		t.Fatalf("To = %v, want customer address", msg.To)
	}
	if want := "Thank You for Your Inquiry - KV Builders"; msg.Subject != want {
		t.Fatalf("Subject = %q, want %q", msg.Subject, want)
	}

	for _, field := range []string{
		"Arun K", "98430 72490", "hello@example.com", "Tatabad, Coimbatore",
	} {
		if !strings.Contains(msg.TextBody, field) {
			t.Errorf("text body missing %q", field)
		}
		if !strings.Contains(msg.HTMLBody, field) {
			t.Errorf("html body missing %q", field)
		}
	}
	if strings.Contains(msg.HTMLBody, "%!") {
		t.Fatalf("html body has a formatting error:\n%s", msg.HTMLBody)
	}
}
