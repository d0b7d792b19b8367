// Package server implements the event ingestion and aggregation service and
// its HTTP/JSON boundary.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/trailmark/trailmark/internal/model"
	"github.com/trailmark/trailmark/internal/store"
)

// EventsServer holds the core ingestion and aggregation operations over the
// event store. Every operation is a stateless unit of work; concurrency
// safety is delegated to the store backend.
type EventsServer struct {
	store  store.Store
	logger *slog.Logger
}

// NewEventsServer returns a new EventsServer backed by the given store.
func NewEventsServer(s store.Store, logger *slog.Logger) *EventsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventsServer{store: s, logger: logger}
}

// inputError indicates invalid user input.
// The transport layer maps this to 400.
type inputError string

func (e inputError) Error() string { return string(e) }

// trackEventInput is the inbound payload for event ingestion. A zero
// timestamp is treated as absent, matching the required-field contract.
type trackEventInput struct {
	SessionID string   `json:"session_id"`
	EventType string   `json:"event_type"`
	PageURL   string   `json:"page_url"`
	Timestamp int64    `json:"timestamp"`
	ClickX    *float64 `json:"click_x"`
	ClickY    *float64 `json:"click_y"`
}

// TrackEvent validates the payload, persists it, and returns the stored event
// with its assigned id. Duplicate submissions create duplicate records; the
// client is the sole source of truth for session identity.
func (s *EventsServer) TrackEvent(ctx context.Context, in trackEventInput) (*model.Event, error) {
	event := &model.Event{
		SessionID: in.SessionID,
		EventType: in.EventType,
		PageURL:   in.PageURL,
		Timestamp: in.Timestamp,
		ClickX:    in.ClickX,
		ClickY:    in.ClickY,
	}

	if err := model.ValidateEvent(event); err != nil {
		return nil, err
	}

	if err := s.store.InsertEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	return event, nil
}

// ListSessions returns the per-session roll-ups, most recently active first.
// An empty store yields an empty slice, not an error.
func (s *EventsServer) ListSessions(ctx context.Context) ([]*model.SessionSummary, error) {
	summaries, err := s.store.SessionSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("session summaries: %w", err)
	}
	if summaries == nil {
		summaries = []*model.SessionSummary{}
	}
	return summaries, nil
}

// SessionTimeline returns all events for a session ordered by timestamp. An
// unknown session is a valid, empty result.
func (s *EventsServer) SessionTimeline(ctx context.Context, sessionID string) ([]*model.Event, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, inputError("Session ID is required")
	}

	events, err := s.store.EventsBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("session events: %w", err)
	}
	if events == nil {
		events = []*model.Event{}
	}
	return events, nil
}

// Heatmap returns the click coordinates recorded on a page. Only click-typed
// events contribute; a page with no clicks yields an empty slice.
func (s *EventsServer) Heatmap(ctx context.Context, pageURL string) ([]*model.HeatmapPoint, error) {
	if strings.TrimSpace(pageURL) == "" {
		return nil, inputError("Page URL is required")
	}

	events, err := s.store.EventsByTypeAndPage(ctx, "click", pageURL)
	if err != nil {
		return nil, fmt.Errorf("heatmap events: %w", err)
	}

	points := make([]*model.HeatmapPoint, 0, len(events))
	for _, e := range events {
		points = append(points, &model.HeatmapPoint{
			ClickX:    e.ClickX,
			ClickY:    e.ClickY,
			Timestamp: e.Timestamp,
		})
	}
	return points, nil
}

// ListPages returns every distinct page URL in first-seen order.
func (s *EventsServer) ListPages(ctx context.Context) ([]string, error) {
	pages, err := s.store.DistinctPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("distinct pages: %w", err)
	}
	if pages == nil {
		pages = []string{}
	}
	return pages, nil
}
