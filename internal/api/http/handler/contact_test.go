package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/kvbuilders/app/internal/model"
	"github.com/kvbuilders/app/internal/service/inquiry"
)

type stubInquiryService struct {
	submitResult *model.Inquiry
	submitErr    error
	listResult   []model.Inquiry
	listErr      error
	updateErr    error

	gotSubmit *inquiry.CreateRequest
	gotID     string
	gotStatus string
}

func (s *stubInquiryService) Submit(ctx context.Context, req inquiry.CreateRequest) (*model.Inquiry, error) {
	s.gotSubmit = &req
	return s.submitResult, s.submitErr
}

func (s *stubInquiryService) List(ctx context.Context) ([]model.Inquiry, error) {
	return s.listResult, s.listErr
}

func (s *stubInquiryService) UpdateStatus(ctx context.Context, id, status string) error {
	s.gotID = id
	s.gotStatus = status
	return s.updateErr
}

func newContactApp(svc inquiry.Service) *fiber.App {
	app := fiber.New()
	h := NewContactHandler(svc)
	app.Post("/api/contact", h.Submit)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return out
}

func TestContactSubmit_Created(t *testing.T) {
	svc := &stubInquiryService{
		submitResult: &model.Inquiry{ID: "abc-123", Email: "arun@example.com", Status: model.StatusNew},
	}
	app := newContactApp(svc)

	resp := postJSON(t, app, "/api/contact", `{
		"name": "Arun K",
		"email": "arun@example.com",
		"phone": "98430 72490",
		"service": "House Construction",
		"message": "Need an estimate."
	}`)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}
	body := decodeBody(t, resp)
	data, okCast := body["data"].(map[string]any)
	if !okCast || data["id"] != "abc-123" {
		t.Fatalf("unexpected body: %v", body)
	}

	if svc.gotSubmit == nil || svc.gotSubmit.Phone != "98430 72490" {
		t.Fatalf("unexpected submit request: %+v", svc.gotSubmit)
	}
}

func TestContactSubmit_MissingFields(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no name", `{"email":"a@b.c","service":"x","message":"y"}`},
		{"no email", `{"name":"a","service":"x","message":"y"}`},
		{"no service", `{"name":"a","email":"a@b.c","message":"y"}`},
		{"no message", `{"name":"a","email":"a@b.c","service":"x"}`},
		{"not json", `plain text`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubInquiryService{}
			app := newContactApp(svc)

			resp := postJSON(t, app, "/api/contact", tc.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
			}
			resp.Body.Close()
			if svc.gotSubmit != nil {
				t.Fatalf("expected no service call, got %+v", svc.gotSubmit)
			}
		})
	}
}

func TestContactSubmit_CooldownRejection(t *testing.T) {
	svc := &stubInquiryService{submitErr: &inquiry.DuplicateError{RemainingDays: 17}}
	app := newContactApp(svc)

	resp := postJSON(t, app, "/api/contact", `{"name":"a","email":"a@b.c","service":"x","message":"y"}`)
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusTooManyRequests)
	}

	body := decodeBody(t, resp)
	want := "You have already submitted an inquiry. Please wait 17 more days before submitting again."
	if body["error"] != want {
		t.Fatalf("error = %q, want %q", body["error"], want)
	}
}

func TestContactSubmit_InternalError(t *testing.T) {
	svc := &stubInquiryService{submitErr: errors.New("mongo down")}
	app := newContactApp(svc)

	resp := postJSON(t, app, "/api/contact", `{"name":"a","email":"a@b.c","service":"x","message":"y"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusInternalServerError)
	}
}
