package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer publishes workflow events (status transitions, document reviews)
// for downstream consumers. Publishing is best-effort: a broker outage must
// never fail the originating request.
type Producer struct {
	writer *kafka.Writer
}

// Events is the shared producer, set in main at startup. Nil when no broker
// is configured.
var Events *Producer

func NewProducer(broker, topic string) *Producer {
	if broker == "" {
		return nil
	}

	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(broker),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			WriteTimeout: 10 * time.Second,
		},
	}
}

// Event is the wire format for one workflow event.
type Event struct {
	Type       string    `json:"type"` // e.g. application.status_changed, document.reviewed
	UserID     uint      `json:"user_id"`
	Payload    any       `json:"payload,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publish sends one event. Skips silently when no broker is configured.
func (p *Producer) Publish(eventType string, userID uint, payload any) {
	if p == nil || p.writer == nil {
		return
	}

	value, err := json.Marshal(Event{
		Type:       eventType,
		UserID:     userID,
		Payload:    payload,
		OccurredAt: time.Now(),
	})
	if err != nil {
		log.Printf("Failed to encode event %s: %v", eventType, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(eventType),
		Value: value,
		Time:  time.Now(),
	}); err != nil {
		log.Printf("Failed to publish event %s: %v", eventType, err)
	}
}
