package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nuansacp2025/ticketing/internal/persistence"
)

// DiagHandler serves the hello probe plus liveness and readiness checks.
type DiagHandler struct {
	serviceName string
	version     string
	postgres    *persistence.Postgres
	redis       *persistence.Redis
}

// NewDiagHandler returns a new handler instance.
func NewDiagHandler(serviceName, version string, postgres *persistence.Postgres, redis *persistence.Redis) *DiagHandler {
	return &DiagHandler{serviceName: serviceName, version: version, postgres: postgres, redis: redis}
}

// Hello handles GET /api/python, kept for parity with the platform's cron
// health checks.
func (h *DiagHandler) Hello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Hello, World!",
	})
}

// Live reports service liveness.
func (h *DiagHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking dependencies.
func (h *DiagHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	ready := true

	if err := h.postgres.Ping(ctx); err != nil {
		depStatus["postgres"] = err.Error()
		ready = false
	} else {
		depStatus["postgres"] = "ok"
	}

	if err := h.redis.Ping(ctx); err != nil {
		depStatus["redis"] = err.Error()
		ready = false
	} else {
		depStatus["redis"] = "ok"
	}

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"success":      false,
		"message":      "one or more dependencies unavailable",
		"dependencies": depStatus,
	})
}
