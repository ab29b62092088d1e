// Package kafka publishes viewer selection events to the analytics topic.
// The publisher is feature-flagged via KAFKA_ENABLED; the viewer works
// identically without it.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/coastal-vuln-viewer/internal/config"
	"github.com/couchcryptid/coastal-vuln-viewer/internal/viewer"
)

// Publisher produces selection events to a Kafka topic.
// It implements the http adapter's EventPublisher.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured analytics topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireOne,
	}
	return &Publisher{writer: w, logger: logger}
}

// Publish serializes and sends one selection event.
func (p *Publisher) Publish(ctx context.Context, event viewer.Event) error {
	msg, err := serializeEvent(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeEvent marshals an event into a Kafka message keyed by session, so
// one session's events stay ordered within a partition.
func serializeEvent(event viewer.Event) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize selection event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.SessionID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "event_id", Value: []byte(event.ID)},
			{Key: "source", Value: []byte("coastal-vuln-viewer")},
		},
	}, nil
}
