package service

import (
	"fmt"
	"strings"

	"github.com/nuansacp2025/ticketing/internal/config"
	"github.com/nuansacp2025/ticketing/internal/domain"
	"github.com/nuansacp2025/ticketing/internal/mailer"
)

const confirmationTemplate = "seat_confirmation.html"

// EmailComposer builds the outbound confirmation message. Pure function of
// its inputs, no I/O.
type EmailComposer struct {
	eventName string
	shareLink string
}

// NewEmailComposer creates the composer.
func NewEmailComposer(cfg config.EventConfig) *EmailComposer {
	return &EmailComposer{eventName: cfg.Name, shareLink: cfg.ShareLink}
}

// Compose builds the message for one delivery. Seats and attachments must be
// the same length and order-aligned; a mismatch is a programmer error.
func (c *EmailComposer) Compose(recipient, ticketCode string, seats []domain.Seat, attachments []domain.SeatPDFArtifact) (mailer.Message, error) {
	if len(seats) != len(attachments) {
		return mailer.Message{}, fmt.Errorf("compose: %d seats but %d attachments", len(seats), len(attachments))
	}

	listing := make([]string, len(seats))
	for i, seat := range seats {
		listing[i] = fmt.Sprintf("%s (%s)", seat.Label, seat.Category)
	}

	parts := make([]mailer.Attachment, len(attachments))
	for i, artifact := range attachments {
		parts[i] = mailer.Attachment{Filename: artifact.Filename, Content: artifact.Content}
	}

	return mailer.Message{
		To:           recipient,
		Subject:      fmt.Sprintf("%s Seat Confirmation", c.eventName),
		TemplateName: confirmationTemplate,
		Context: map[string]string{
			"ticket_code": ticketCode,
			"share_link":  c.shareLink,
			"seat_num":    strings.Join(listing, ", "),
		},
		Attachments: parts,
	}, nil
}
