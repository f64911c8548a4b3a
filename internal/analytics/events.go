// Package analytics records what searches do, not what they look for. Every
// search produces a SearchEvent that is shipped to Kafka in batches; the
// query text itself never leaves the process.
package analytics

import (
	"context"
	"time"

	"github.com/tbourn/go-docsearch-backend/internal/search"
)

// EventType discriminates event payloads on the topic.
type EventType string

const (
	EventSearch     EventType = "search"
	EventZeroResult EventType = "zero_result"
)

// Search outcomes, shared with the search metrics.
const (
	OutcomeOK       = "ok"
	OutcomeNoText   = "no_text"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeTooLarge = "too_large"
	OutcomeError    = "error"
)

// SearchEvent describes one search run.
type SearchEvent struct {
	Type         EventType      `json:"type"`
	Outcome      string         `json:"outcome"`
	DocumentID   string         `json:"document_id"`
	QueryRunes   int            `json:"query_runes"`
	Options      search.Options `json:"options"`
	Results      int            `json:"results"`
	Truncated    bool           `json:"truncated"`
	PagesScanned int            `json:"pages_scanned"`
	LatencyMs    int64          `json:"latency_ms"`
	Timestamp    time.Time      `json:"timestamp"`
	RequestID    string         `json:"request_id,omitempty"`
}

// Tracker receives search events. Implementations must not block the caller.
type Tracker interface {
	TrackSearch(ctx context.Context, ev SearchEvent)
}

// Noop discards every event. It is used when no broker is configured.
type Noop struct{}

// TrackSearch implements Tracker.
func (Noop) TrackSearch(context.Context, SearchEvent) {}
