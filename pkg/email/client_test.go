package email

import (
	"context"
	"errors"
	"testing"
)

func TestSend_DisabledClient(t *testing.T) {
	c, err := New(Config{Enabled: false, From: "noreply@example.com"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	err = c.Send(context.Background(), Message{
		To:       []string{"someone@example.com"},
		Subject:  "hi",
		TextBody: "hello",
	})
	var disabled ErrDisabled
	if !errors.As(err, &disabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

func TestBuildMessage_Validation(t *testing.T) {
	cases := []struct {
		name string
		from string
		msg  Message
	}{
		{"missing from", "", Message{To: []string{"a@b.c"}, Subject: "s", TextBody: "t"}},
		{"missing subject", "noreply@example.com", Message{To: []string{"a@b.c"}, TextBody: "t"}},
		{"missing body", "noreply@example.com", Message{To: []string{"a@b.c"}, Subject: "s"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := buildMessage(tc.from, tc.msg)
			var invalid ErrInvalidMessage
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidMessage, got %v", err)
			}
		})
	}
}

func TestBuildMessage_BothBodies(t *testing.T) {
	msg, err := buildMessage("noreply@example.com", Message{
		To:       []string{" a@b.c ", ""},
		Subject:  "  hi  ",
		TextBody: "text",
		HTMLBody: "<p>html</p>",
	})
	if err != nil {
		t.Fatalf("buildMessage() error: %v", err)
	}
	if got := msg.GetHeader("Subject"); len(got) != 1 || got[0] != "hi" {
		t.Fatalf("Subject header = %v", got)
	}
	if got := msg.GetHeader("To"); len(got) != 1 || got[0] != "a@b.c" {
		t.Fatalf("To header = %v", got)
	}
}
