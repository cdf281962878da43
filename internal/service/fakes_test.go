package service_test

import (
	"context"

	"github.com/nuansacp2025/ticketing/internal/domain"
	"github.com/nuansacp2025/ticketing/internal/mailer"
)

// fakeTicketRepo is an in-memory TicketRepository with call counting.
type fakeTicketRepo struct {
	tickets []domain.Ticket
	email   string
	seats   []domain.Seat
	err     error

	findCalls int
}

func (f *fakeTicketRepo) FindByCode(ctx context.Context, code string) ([]domain.Ticket, error) {
	f.findCalls++
	if f.err != nil {
		return nil, f.err
	}
	var matches []domain.Ticket
	for _, ticket := range f.tickets {
		if ticket.Code == code {
			matches = append(matches, ticket)
		}
	}
	return matches, nil
}

func (f *fakeTicketRepo) HolderEmail(ctx context.Context, ref domain.TicketReference) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.email, nil
}

func (f *fakeTicketRepo) SeatsByTicket(ctx context.Context, ref domain.TicketReference) ([]domain.Seat, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.seats, nil
}

// fakeMailer records sends and optionally fails.
type fakeMailer struct {
	err   error
	calls int
	last  mailer.Message
}

func (f *fakeMailer) Send(ctx context.Context, msg mailer.Message) error {
	f.calls++
	f.last = msg
	return f.err
}
