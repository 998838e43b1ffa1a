// pix-broker/internal/queue/kafka.go
package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// ChargeCreated is published after a provider accepts a PIX charge. Consumers
// (reconciliation, notifications) key on EventID for dedup.
type ChargeCreated struct {
	EventID     string    `json:"event_id"`
	AccountID   string    `json:"account_id"`
	LinkID      string    `json:"link_id"`
	Gateway     string    `json:"gateway"`
	AmountCents int64     `json:"amount_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

type Bus struct {
	writer *kafka.Writer
}

func New(brokers []string, topic string) *Bus {
	return &Bus{writer: &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}}
}

func (b *Bus) Close() error { return b.writer.Close() }

// PublishChargeCreated keys messages by account so one merchant's charges
// stay ordered on a single partition.
func (b *Bus) PublishChargeCreated(ctx context.Context, ev ChargeCreated) error {
	if ev.EventID == "" {
		ev.EventID = uuid.NewString()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return b.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.AccountID),
		Value: payload,
		Time:  ev.CreatedAt,
	})
}
