package auth_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/nuansacp2025/ticketing/internal/api/http"
	"github.com/nuansacp2025/ticketing/internal/auth"
	"github.com/nuansacp2025/ticketing/internal/config"
	"github.com/nuansacp2025/ticketing/internal/observability"
)

func newGuardedApp(cfg config.AuthConfig) *fiber.App {
	guard := auth.NewCredentialGuard(cfg)
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), time.Second)

	app.Post("/internal", guard.RequireInternalCredentials, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	app.Get("/cron", guard.RequireCronSecret, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	return app
}

func TestInternalCredentials(t *testing.T) {
	app := newGuardedApp(config.AuthConfig{InternalAPICredentials: "s3cret"})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: 401},
		{name: "wrong secret", header: "nope", wantStatus: 401},
		{name: "matching secret", header: "s3cret", wantStatus: 200},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/internal", nil)
			if tc.header != "" {
				req.Header.Set(auth.InternalCredentialsHeader, tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

func TestInternalCredentialsUnsetSecretNeverMatches(t *testing.T) {
	app := newGuardedApp(config.AuthConfig{})

	req := httptest.NewRequest("POST", "/internal", nil)
	req.Header.Set(auth.InternalCredentialsHeader, "")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestCronSecret(t *testing.T) {
	app := newGuardedApp(config.AuthConfig{CronSecret: "cron-s3cret"})

	req := httptest.NewRequest("GET", "/cron", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	req = httptest.NewRequest("GET", "/cron", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer cron-s3cret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestCronSecretUnsetLeavesRouteOpen(t *testing.T) {
	app := newGuardedApp(config.AuthConfig{})

	resp, err := app.Test(httptest.NewRequest("GET", "/cron", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
