package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func basicHeader(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func newAuthApp(password string) *fiber.App {
	app := fiber.New()
	app.Get("/secret", AdminAuth(password), func(c fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAdminAuth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"correct password", basicHeader("admin", "s3cret"), http.StatusOK},
		{"username is ignored", basicHeader("anything-goes", "s3cret"), http.StatusOK},
		{"wrong password", basicHeader("admin", "nope"), http.StatusUnauthorized},
		{"empty password", basicHeader("admin", ""), http.StatusUnauthorized},
		{"password is a prefix", basicHeader("admin", "s3cre"), http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
		{"not basic scheme", "Bearer abcdef", http.StatusUnauthorized},
		{"malformed base64", "Basic %%%%", http.StatusUnauthorized},
		{"no colon in credentials", "Basic " + base64.StdEncoding.EncodeToString([]byte("s3cret")), http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			app := newAuthApp("s3cret")
			req := httptest.NewRequest(http.MethodGet, "/secret", nil)
			if tc.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tc.header)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}
			if tc.wantStatus == http.StatusUnauthorized {
				if got := resp.Header.Get(fiber.HeaderWWWAuthenticate); got != `Basic realm="restricted"` {
					t.Fatalf("WWW-Authenticate = %q", got)
				}
			}
		})
	}
}
