package domain

// TicketReference is the opaque store handle that uniquely identifies one
// ticket record. Exactly one record matches a valid ticket code.
type TicketReference string

// Ticket mirrors one row of the tickets table.
type Ticket struct {
	ID            string
	Code          string
	CustomerID    string
	Category      string
	SeatConfirmed bool
}
