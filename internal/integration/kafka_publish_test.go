//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/couchcryptid/coastal-vuln-viewer/internal/adapter/kafka"
	"github.com/couchcryptid/coastal-vuln-viewer/internal/config"
	"github.com/couchcryptid/coastal-vuln-viewer/internal/domain"
	"github.com/couchcryptid/coastal-vuln-viewer/internal/viewer"
)

const testEventsTopic = "test-viewer-selection-events"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka runs a single-node Kafka in a container and returns its broker address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0",
		tckafka.WithClusterID(fmt.Sprintf("test-cluster-%d", time.Now().UnixNano())))
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()

	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)

	controllerConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer controllerConn.Close()

	require.NoError(t, controllerConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

// TestPublisherEndToEnd publishes selection events through the real producer
// and verifies key, headers, and payload on the wire.
func TestPublisherEndToEnd(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testEventsTopic)

	cfg := &config.Config{
		KafkaEnabled: true,
		KafkaBrokers: []string{broker},
		KafkaTopic:   testEventsTopic,
	}

	publisher := kafka.NewPublisher(cfg, discardLogger())
	t.Cleanup(func() { _ = publisher.Close() })

	sessionID := uuid.NewString()
	landmark := domain.Landmark{
		Name:                  "Anibong Shoreline",
		Geomorphology:         domain.SubAssessment{Score: 1, Description: "Low-lying shoreline"},
		NaturalBuffers:        domain.SubAssessment{Score: 1, Description: "Mangroves removed"},
		EngineeringStructures: domain.SubAssessment{Score: 2, Description: "Partial seawall"},
	}

	selected := viewer.NewSelectionEvent(sessionID, &landmark)
	cleared := viewer.NewSelectionEvent(sessionID, nil)
	require.NoError(t, publisher.Publish(ctx, selected))
	require.NoError(t, publisher.Publish(ctx, cleared))

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testEventsTopic,
		GroupID:     fmt.Sprintf("test-consumer-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
	defer readCancel()

	first, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read first event")

	assert.Equal(t, sessionID, string(first.Key), "events are keyed by session")
	headers := make(map[string]string, len(first.Headers))
	for _, h := range first.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, selected.ID, headers["event_id"])
	assert.Equal(t, "coastal-vuln-viewer", headers["source"])

	var got viewer.Event
	require.NoError(t, json.Unmarshal(first.Value, &got))
	assert.Equal(t, "Anibong Shoreline", got.Landmark)
	assert.InDelta(t, 1.33, got.Index, 1e-9)
	assert.Equal(t, "orange", got.Severity)
	assert.Equal(t, sessionID, got.SessionID)
	assert.False(t, got.OccurredAt.IsZero())

	second, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read cleared event")
	assert.Equal(t, sessionID, string(second.Key), "same session stays on one partition")

	var gotCleared viewer.Event
	require.NoError(t, json.Unmarshal(second.Value, &gotCleared))
	assert.Empty(t, gotCleared.Landmark, "cleared selection carries no landmark")
	assert.Empty(t, gotCleared.Severity)
}
