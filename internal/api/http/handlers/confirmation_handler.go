package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nuansacp2025/ticketing/internal/api/dto"
	"github.com/nuansacp2025/ticketing/internal/service"
	apperrors "github.com/nuansacp2025/ticketing/pkg/util"
)

// ConfirmationHandler exposes the seat-confirmation delivery endpoint.
type ConfirmationHandler struct {
	coordinator *service.DeliveryCoordinator
}

// NewConfirmationHandler constructs handler.
func NewConfirmationHandler(coordinator *service.DeliveryCoordinator) *ConfirmationHandler {
	return &ConfirmationHandler{coordinator: coordinator}
}

// SendSeatConfirmation handles POST /api/email/sendSeatConfirmation.
// Credentials are checked by the route guard before this runs.
func (h *ConfirmationHandler) SendSeatConfirmation(c *fiber.Ctx) error {
	var req dto.SendSeatConfirmationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError(dto.MessageFieldsRequired)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	_, err := h.coordinator.Deliver(c.UserContext(), service.DeliveryRequest{
		TicketCode: req.TicketCode,
		Email:      req.Email,
		Seats:      req.DomainSeats(),
		Direct:     req.HasDirectSeats(),
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}
