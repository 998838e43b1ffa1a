// pix-broker/cmd/events-worker/main.go
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"

	"github.com/example/pix-broker/internal/queue"
)

// Consumes pix.charges.created for reconciliation logging. Charges the broker
// created but the provider never settled show up here first.
func main() {
	brokers := env("KAFKA_BROKERS", "kafka:9092")
	topic := env("KAFKA_TOPIC", "pix.charges.created")

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{brokers},
		Topic:    topic,
		GroupID:  "pix-events-worker",
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer r.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("[events-worker] started")
	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			log.Printf("read err: %v", err)
			return
		}
		var ev queue.ChargeCreated
		if err := json.Unmarshal(m.Value, &ev); err != nil {
			log.Printf("bad msg: %v", err)
			continue
		}
		log.Printf("[events-worker] charge %s account=%s link=%s gateway=%s amount=%d",
			ev.EventID, ev.AccountID, ev.LinkID, ev.Gateway, ev.AmountCents)
	}
}

func env(k, d string) string { if v := os.Getenv(k); v != "" { return v }; return d }
