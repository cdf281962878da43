package dto

import (
	"github.com/nuansacp2025/ticketing/internal/domain"
	apperrors "github.com/nuansacp2025/ticketing/pkg/util"
)

// Fixed aggregated validation messages. A malformed payload always yields
// one of these, never a partial field-by-field report.
const (
	MessageTicketCodeRequired = "Field `ticketCode` required"
	MessageFieldsRequired     = "Fields `email`, `ticketCode`, and `seats` required"
)

// SeatPayload mirrors one seat entry in the request body.
type SeatPayload struct {
	Label    string `json:"label"`
	Category string `json:"category"`
}

// SendSeatConfirmationRequest is the payload for
// POST /api/email/sendSeatConfirmation. Two shapes are accepted: ticketCode
// alone (seats resolved from the store) or email+ticketCode+seats supplied
// directly.
type SendSeatConfirmationRequest struct {
	Email      string        `json:"email"`
	TicketCode string        `json:"ticketCode"`
	Seats      []SeatPayload `json:"seats"`
}

// HasDirectSeats reports whether the caller supplied the seat assignment
// itself, bypassing the store lookup.
func (r SendSeatConfirmationRequest) HasDirectSeats() bool {
	return r.Seats != nil || r.Email != ""
}

// Validate type-checks the payload before any network or file I/O happens.
func (r SendSeatConfirmationRequest) Validate() error {
	if r.HasDirectSeats() {
		if r.Email == "" || r.TicketCode == "" || len(r.Seats) == 0 {
			return apperrors.NewValidationError(MessageFieldsRequired)
		}
		for _, seat := range r.Seats {
			if seat.Label == "" || seat.Category == "" {
				return apperrors.NewValidationError(MessageFieldsRequired)
			}
		}
		return nil
	}
	if r.TicketCode == "" {
		return apperrors.NewValidationError(MessageTicketCodeRequired)
	}
	return nil
}

// DomainSeats converts the payload seat list, preserving order.
func (r SendSeatConfirmationRequest) DomainSeats() []domain.Seat {
	if len(r.Seats) == 0 {
		return nil
	}
	seats := make([]domain.Seat, len(r.Seats))
	for i, seat := range r.Seats {
		seats[i] = domain.Seat{Label: seat.Label, Category: seat.Category}
	}
	return seats
}
