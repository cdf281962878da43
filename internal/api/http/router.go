package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nuansacp2025/ticketing/internal/api/http/handlers"
	"github.com/nuansacp2025/ticketing/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Confirmation *handlers.ConfirmationHandler
	Diag         *handlers.DiagHandler
	Guard        *auth.CredentialGuard
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Diag.Live)
	app.Get("/health/ready", cfg.Diag.Ready)

	app.Get("/api/python", cfg.Guard.RequireCronSecret, cfg.Diag.Hello)

	emailGroup := app.Group("/api/email", cfg.Guard.RequireInternalCredentials)
	emailGroup.Post("/sendSeatConfirmation", cfg.Confirmation.SendSeatConfirmation)
}
