package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	pasetotoken "github.com/proflink/proflink_backend/pkg/paseto"
	"github.com/proflink/proflink_backend/pkg/reqctx"
)

func newTestManager(t *testing.T) *pasetotoken.Manager {
	t.Helper()
	mgr, err := pasetotoken.New(pasetotoken.Config{
		Mode:     pasetotoken.ModeLocal,
		Issuer:   "proflink-test",
		Audience: "proflink-api",
	}, pasetotoken.NewLocalKeys())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return mgr
}

func TestAuthRequiredAttachesClaimsToContext(t *testing.T) {
	mgr := newTestManager(t)
	userID := uuid.New()

	token, err := mgr.IssueAccess(userID, nil)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	app := fiber.New()
	app.Get("/whoami", AuthRequired(mgr, nil), func(c fiber.Ctx) error {
		// Fiber locals path
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok || claims.UserID != userID {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		// Plain context path used by non-fiber layers
		got, ok := reqctx.UserIDFromContext(c.Context())
		if !ok || got != userID {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
}

func TestAuthRequiredRejectsBadTokens(t *testing.T) {
	mgr := newTestManager(t)

	app := fiber.New()
	app.Get("/whoami", AuthRequired(mgr, nil), func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != fiber.StatusUnauthorized {
				t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
			}
		})
	}
}

func TestAuthRequiredRejectsRefreshTokens(t *testing.T) {
	mgr := newTestManager(t)

	refresh, err := mgr.IssueRefresh(uuid.New(), nil)
	if err != nil {
		t.Fatalf("IssueRefresh() error = %v", err)
	}

	app := fiber.New()
	app.Get("/whoami", AuthRequired(mgr, nil), func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}
