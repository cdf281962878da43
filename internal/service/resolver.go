package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nuansacp2025/ticketing/internal/domain"
	"github.com/nuansacp2025/ticketing/internal/repository"
	apperrors "github.com/nuansacp2025/ticketing/pkg/util"
)

// TicketResolver maps a client-supplied ticket code to its unique store
// record.
type TicketResolver struct {
	tickets repository.TicketRepository
	logger  *zap.Logger
}

// NewTicketResolver creates the resolver.
func NewTicketResolver(tickets repository.TicketRepository, logger *zap.Logger) *TicketResolver {
	return &TicketResolver{tickets: tickets, logger: logger}
}

// Resolve returns the reference for code. Ticket codes are unique by
// construction upstream, so any match count other than one means corrupt
// data and surfaces as an invariant violation rather than a client error.
func (r *TicketResolver) Resolve(ctx context.Context, code string) (domain.TicketReference, error) {
	tickets, err := r.tickets.FindByCode(ctx, code)
	if err != nil {
		return "", apperrors.NewUpstreamError("ticket store lookup failed", err)
	}
	if len(tickets) != 1 {
		r.logger.Error("ticket code invariant broken",
			zap.String("ticket_code", code),
			zap.Int("matches", len(tickets)))
		return "", apperrors.NewInvariantViolation(
			fmt.Sprintf("ticket code matched %d records, want exactly 1", len(tickets)), nil)
	}
	return domain.TicketReference(tickets[0].ID), nil
}

// Assignment loads the holder email and ordered seat list for a resolved
// ticket reference.
func (r *TicketResolver) Assignment(ctx context.Context, ref domain.TicketReference) (string, []domain.Seat, error) {
	email, err := r.tickets.HolderEmail(ctx, ref)
	if err != nil {
		return "", nil, apperrors.NewUpstreamError("ticket holder lookup failed", err)
	}
	seats, err := r.tickets.SeatsByTicket(ctx, ref)
	if err != nil {
		return "", nil, apperrors.NewUpstreamError("seat assignment lookup failed", err)
	}
	return email, seats, nil
}
