package events

import (
	"time"

	"github.com/nuansacp2025/ticketing/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventDeliverySucceeded EventType = "delivery_succeeded"
	EventDeliveryFailed    EventType = "delivery_failed"
)

// Event represents a delivery outcome emitted by the coordinator.
type Event struct {
	ID         string                `json:"id"`
	Type       EventType             `json:"type"`
	TicketCode string                `json:"ticket_code"`
	Timestamp  time.Time             `json:"timestamp"`
	Record     domain.DeliveryRecord `json:"record"`
}
