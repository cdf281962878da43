package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nuansacp2025/ticketing/internal/config"
	apperrors "github.com/nuansacp2025/ticketing/pkg/util"
)

// InternalCredentialsHeader carries the pre-shared secret for internal
// callers.
const InternalCredentialsHeader = "X-Internal-API-Credentials"

// CredentialGuard enforces the static shared secrets on internal routes.
type CredentialGuard struct {
	cfg config.AuthConfig
}

// NewCredentialGuard constructs the guard.
func NewCredentialGuard(cfg config.AuthConfig) *CredentialGuard {
	return &CredentialGuard{cfg: cfg}
}

// RequireInternalCredentials rejects requests whose credentials header does
// not match the configured secret. Runs before body parsing, so a bad
// credential yields 401 regardless of payload validity.
func (g *CredentialGuard) RequireInternalCredentials(c *fiber.Ctx) error {
	if !secretsEqual(c.Get(InternalCredentialsHeader), g.cfg.InternalAPICredentials) {
		return apperrors.NewUnauthorized("Unauthorized")
	}
	return c.Next()
}

// RequireCronSecret gates diagnostic routes behind a bearer token when a
// cron secret is configured. Without one the route stays open.
func (g *CredentialGuard) RequireCronSecret(c *fiber.Ctx) error {
	if g.cfg.CronSecret == "" {
		return c.Next()
	}
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || !secretsEqual(parts[1], g.cfg.CronSecret) {
		return apperrors.NewUnauthorized("Unauthorized")
	}
	return c.Next()
}

// secretsEqual compares in constant time to avoid timing side-channels. An
// unset secret never matches.
func secretsEqual(got, want string) bool {
	if want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
