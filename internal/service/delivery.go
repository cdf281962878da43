package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nuansacp2025/ticketing/internal/domain"
	"github.com/nuansacp2025/ticketing/internal/events"
	"github.com/nuansacp2025/ticketing/internal/mailer"
	apperrors "github.com/nuansacp2025/ticketing/pkg/util"
)

// DeliveryRequest is a validated confirmation request handed to the
// coordinator by the transport layer.
type DeliveryRequest struct {
	TicketCode string
	// Email and Seats are set when the caller bypassed the resolver.
	Email string
	Seats []domain.Seat
	// Direct marks the bypass variant; otherwise the seat assignment is
	// resolved from the store.
	Direct bool
}

// DeliveryCoordinator owns the request lifecycle from validated payload to
// terminal outcome: resolve, render, compose, send. Failures short-circuit;
// nothing is retried.
type DeliveryCoordinator struct {
	resolver   *TicketResolver
	generator  *SeatPDFGenerator
	composer   *EmailComposer
	mailer     mailer.Mailer
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewDeliveryCoordinator wires the pipeline.
func NewDeliveryCoordinator(
	resolver *TicketResolver,
	generator *SeatPDFGenerator,
	composer *EmailComposer,
	m mailer.Mailer,
	dispatcher events.Dispatcher,
	logger *zap.Logger,
) *DeliveryCoordinator {
	return &DeliveryCoordinator{
		resolver:   resolver,
		generator:  generator,
		composer:   composer,
		mailer:     m,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Deliver runs one confirmation request end to end and returns the terminal
// record, or the DomainError describing which step failed.
func (d *DeliveryCoordinator) Deliver(ctx context.Context, req DeliveryRequest) (*domain.DeliveryRecord, error) {
	recipient := req.Email
	seats := req.Seats

	if !req.Direct {
		ref, err := d.resolver.Resolve(ctx, req.TicketCode)
		if err != nil {
			return nil, d.fail(ctx, req.TicketCode, recipient, 0, err)
		}
		recipient, seats, err = d.resolver.Assignment(ctx, ref)
		if err != nil {
			return nil, d.fail(ctx, req.TicketCode, recipient, 0, err)
		}
	}

	artifacts, err := d.generator.Generate(seats)
	if err != nil {
		return nil, d.fail(ctx, req.TicketCode, recipient, 0, err)
	}

	msg, err := d.composer.Compose(recipient, req.TicketCode, seats, artifacts)
	if err != nil {
		return nil, d.fail(ctx, req.TicketCode, recipient, len(artifacts), apperrors.NewInternalError(err))
	}

	if err := d.mailer.Send(ctx, msg); err != nil {
		upstream := apperrors.NewUpstreamError("email provider send failed", err)
		return nil, d.fail(ctx, req.TicketCode, recipient, len(artifacts), upstream)
	}

	rec := newRecord(req.TicketCode, recipient, len(artifacts), domain.DeliveryStatusSucceeded, "")
	d.publish(ctx, events.EventDeliverySucceeded, rec)
	d.logger.Info("seat confirmation delivered",
		zap.String("ticket_code", req.TicketCode),
		zap.Int("seats", len(seats)))
	return &rec, nil
}

// fail records the terminal failure and passes the original error through.
func (d *DeliveryCoordinator) fail(ctx context.Context, ticketCode, recipient string, attachments int, err error) error {
	rec := newRecord(ticketCode, recipient, attachments, domain.DeliveryStatusFailed, err.Error())
	d.publish(ctx, events.EventDeliveryFailed, rec)
	return err
}

func (d *DeliveryCoordinator) publish(ctx context.Context, eventType events.EventType, rec domain.DeliveryRecord) {
	if d.dispatcher == nil {
		return
	}
	_ = d.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		TicketCode: rec.TicketCode,
		Timestamp:  rec.Timestamp,
		Record:     rec,
	})
}

func newRecord(ticketCode, recipient string, attachments int, status domain.DeliveryStatus, detail string) domain.DeliveryRecord {
	return domain.DeliveryRecord{
		ID:          uuid.NewString(),
		TicketCode:  ticketCode,
		Recipient:   recipient,
		Attachments: attachments,
		Status:      status,
		Detail:      detail,
		Timestamp:   time.Now().UTC(),
	}
}
