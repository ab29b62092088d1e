package viewer

import (
	"time"

	"github.com/google/uuid"

	"github.com/couchcryptid/coastal-vuln-viewer/internal/domain"
)

// Event records one selection change for the analytics stream. Landmark
// fields are empty when the selection was cleared.
type Event struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	Landmark   string    `json:"landmark,omitempty"`
	Index      float64   `json:"index,omitempty"`
	Severity   string    `json:"severity,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewSelectionEvent builds the event for a selection change. Pass a nil
// landmark for a cleared selection.
func NewSelectionEvent(sessionID string, l *domain.Landmark) Event {
	e := Event{
		ID:         uuid.NewString(),
		SessionID:  sessionID,
		OccurredAt: domain.Now(),
	}
	if l != nil {
		e.Landmark = l.Name
		index := domain.ComputeIndex(*l)
		e.Index = index
		e.Severity = domain.Classify(index).String()
	}
	return e
}
