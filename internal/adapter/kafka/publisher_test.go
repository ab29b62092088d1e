package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/coastal-vuln-viewer/internal/viewer"
)

func TestSerializeEvent(t *testing.T) {
	event := viewer.Event{
		ID:         "evt-1",
		SessionID:  "sess-1",
		Landmark:   "Anibong Shoreline",
		Index:      1.33,
		Severity:   "orange",
		OccurredAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	msg, err := serializeEvent(event)
	require.NoError(t, err)

	assert.Equal(t, []byte("sess-1"), msg.Key, "messages are keyed by session for partition ordering")
	assert.JSONEq(t, `{
		"id": "evt-1",
		"session_id": "sess-1",
		"landmark": "Anibong Shoreline",
		"index": 1.33,
		"severity": "orange",
		"occurred_at": "2025-06-01T12:00:00Z"
	}`, string(msg.Value))

	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "event_id", msg.Headers[0].Key)
	assert.Equal(t, []byte("evt-1"), msg.Headers[0].Value)
	assert.Equal(t, "source", msg.Headers[1].Key)
	assert.Equal(t, []byte("coastal-vuln-viewer"), msg.Headers[1].Value)
}

func TestSerializeEvent_ClearedSelection(t *testing.T) {
	event := viewer.Event{
		ID:         "evt-2",
		SessionID:  "sess-1",
		OccurredAt: time.Date(2025, 6, 1, 12, 0, 1, 0, time.UTC),
	}

	msg, err := serializeEvent(event)
	require.NoError(t, err)

	assert.NotContains(t, string(msg.Value), "landmark", "cleared selections omit landmark fields")
	assert.NotContains(t, string(msg.Value), "severity")
}
