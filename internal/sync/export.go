package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/trailmark/trailmark/internal/store"
)

// header is the first JSONL record written by ExportJSONL.
type header struct {
	Version      string    `json:"version"`
	Type         string    `json:"type"`
	Timestamp    time.Time `json:"timestamp"`
	SessionCount int       `json:"session_count"`
	EventCount   int       `json:"event_count"`
}

// record wraps a single JSONL line with a type discriminator.
type record struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// ExportJSONL writes every event from the store as JSONL to w, grouped by
// session in most-recently-active order and timeline-ordered within each
// session. The header line carries counts for integrity checks on restore.
func ExportJSONL(ctx context.Context, s store.Store, w io.Writer) error {
	summaries, err := s.SessionSummaries(ctx)
	if err != nil {
		return fmt.Errorf("session summaries: %w", err)
	}

	eventCount := 0
	timelines := make([][]any, 0, len(summaries))
	for _, summary := range summaries {
		events, err := s.EventsBySession(ctx, summary.SessionID)
		if err != nil {
			return fmt.Errorf("events for %s: %w", summary.SessionID, err)
		}
		timeline := make([]any, 0, len(events))
		for _, e := range events {
			timeline = append(timeline, e)
		}
		timelines = append(timelines, timeline)
		eventCount += len(events)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(header{
		Version:      "1",
		Type:         "header",
		Timestamp:    time.Now().UTC(),
		SessionCount: len(summaries),
		EventCount:   eventCount,
	}); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}

	for i, summary := range summaries {
		if err := enc.Encode(record{Type: "session", Data: summary}); err != nil {
			return fmt.Errorf("encode session %s: %w", summary.SessionID, err)
		}
		for _, e := range timelines[i] {
			if err := enc.Encode(record{Type: "event", Data: e}); err != nil {
				return fmt.Errorf("encode event for %s: %w", summary.SessionID, err)
			}
		}
	}

	return nil
}
