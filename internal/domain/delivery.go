package domain

import "time"

// DeliveryStatus enumerates terminal outcomes of a confirmation request.
type DeliveryStatus string

const (
	DeliveryStatusSucceeded DeliveryStatus = "SUCCEEDED"
	DeliveryStatusFailed    DeliveryStatus = "FAILED"
)

// DeliveryRecord captures the terminal outcome of one seat-confirmation
// request. Constructed once per request, never retried.
type DeliveryRecord struct {
	ID          string         `json:"id"`
	TicketCode  string         `json:"ticket_code"`
	Recipient   string         `json:"recipient"`
	Attachments int            `json:"attachments"`
	Status      DeliveryStatus `json:"status"`
	Detail      string         `json:"detail,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}
