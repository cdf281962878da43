package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nuansacp2025/ticketing/internal/domain"
)

const deliveryLogKeyPrefix = "delivery:last:"

// DeliveryLogRepository keeps a best-effort record of the most recent
// delivery per ticket code. Diagnostic only; the pipeline never reads it
// back to make decisions.
type DeliveryLogRepository interface {
	Record(ctx context.Context, rec domain.DeliveryRecord) error
	Last(ctx context.Context, ticketCode string) (*domain.DeliveryRecord, error)
}

type deliveryLogRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDeliveryLogRepository instantiates the redis-backed delivery log.
func NewDeliveryLogRepository(client *redis.Client, ttl time.Duration) DeliveryLogRepository {
	return &deliveryLogRepository{client: client, ttl: ttl}
}

func (r *deliveryLogRepository) Record(ctx context.Context, rec domain.DeliveryRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, deliveryLogKeyPrefix+rec.TicketCode, payload, r.ttl).Err()
}

func (r *deliveryLogRepository) Last(ctx context.Context, ticketCode string) (*domain.DeliveryRecord, error) {
	payload, err := r.client.Get(ctx, deliveryLogKeyPrefix+ticketCode).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rec domain.DeliveryRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
