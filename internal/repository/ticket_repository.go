package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nuansacp2025/ticketing/internal/domain"
)

// TicketRepository encapsulates ticket and seat-assignment lookups against
// the external store.
type TicketRepository interface {
	FindByCode(ctx context.Context, code string) ([]domain.Ticket, error)
	HolderEmail(ctx context.Context, ref domain.TicketReference) (string, error)
	SeatsByTicket(ctx context.Context, ref domain.TicketReference) ([]domain.Seat, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

// FindByCode returns every ticket row matching code. The resolver asserts
// the exactly-one invariant; the repository just reports what it finds.
func (r *ticketRepository) FindByCode(ctx context.Context, code string) ([]domain.Ticket, error) {
	const query = `
        SELECT id, code, customer_id, category, seat_confirmed
        FROM tickets WHERE code=$1`
	rows, err := r.pool.Query(ctx, query, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.Code,
			&ticket.CustomerID,
			&ticket.Category,
			&ticket.SeatConfirmed,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

func (r *ticketRepository) HolderEmail(ctx context.Context, ref domain.TicketReference) (string, error) {
	const query = `
        SELECT c.email
        FROM customers c
        JOIN tickets t ON t.customer_id = c.id
        WHERE t.id=$1`
	var email string
	if err := r.pool.QueryRow(ctx, query, string(ref)).Scan(&email); err != nil {
		return "", err
	}
	return email, nil
}

// SeatsByTicket returns the ordered seat assignment for a ticket. Label
// order keeps the attachment listing deterministic.
func (r *ticketRepository) SeatsByTicket(ctx context.Context, ref domain.TicketReference) ([]domain.Seat, error) {
	const query = `
        SELECT label, category
        FROM seats WHERE ticket_id=$1
        ORDER BY label`
	rows, err := r.pool.Query(ctx, query, string(ref))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seats []domain.Seat
	for rows.Next() {
		var seat domain.Seat
		if err := rows.Scan(&seat.Label, &seat.Category); err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}
	return seats, rows.Err()
}
