package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/nuansacp2025/ticketing/internal/events"
	"github.com/nuansacp2025/ticketing/internal/observability"
	"github.com/nuansacp2025/ticketing/internal/repository"
)

// DeliveryWorker records terminal delivery outcomes published on the
// dispatcher: metrics always, the redis delivery log when available.
type DeliveryWorker struct {
	log     repository.DeliveryLogRepository
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewDeliveryWorker constructs the worker.
func NewDeliveryWorker(log repository.DeliveryLogRepository, metrics *observability.Metrics, logger *zap.Logger) *DeliveryWorker {
	return &DeliveryWorker{log: log, metrics: metrics, logger: logger}
}

// Register subscribes the worker to delivery outcome events.
func (w *DeliveryWorker) Register(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	dispatcher.Subscribe(events.EventDeliverySucceeded, w.handle)
	dispatcher.Subscribe(events.EventDeliveryFailed, w.handle)
}

func (w *DeliveryWorker) handle(ctx context.Context, event events.Event) error {
	w.metrics.RecordDelivery(string(event.Record.Status))
	if w.log == nil {
		return nil
	}
	// Best-effort: a delivery log miss never fails the request.
	if err := w.log.Record(ctx, event.Record); err != nil {
		w.logger.Warn("delivery log write failed",
			zap.String("ticket_code", event.TicketCode),
			zap.Error(err))
	}
	return nil
}
