// Package client provides a transport-agnostic interface for the trailmark
// service and an HTTP/JSON implementation that talks to its REST API.
package client

import (
	"context"
	"fmt"

	"github.com/trailmark/trailmark/internal/model"
)

// AnalyticsClient is the interface the CLI commands use to communicate with
// the trailmark server.
type AnalyticsClient interface {
	// TrackEvent submits an event and returns the stored record.
	TrackEvent(ctx context.Context, req *TrackEventRequest) (*model.Event, error)

	// Read views
	ListSessions(ctx context.Context) ([]*model.SessionSummary, error)
	SessionTimeline(ctx context.Context, sessionID string) ([]*model.Event, error)
	Heatmap(ctx context.Context, pageURL string) ([]*model.HeatmapPoint, error)
	ListPages(ctx context.Context) ([]string, error)

	// Health
	Health(ctx context.Context) (string, error)

	// Lifecycle
	Close() error
}

// TrackEventRequest holds parameters for submitting an event.
type TrackEventRequest struct {
	SessionID string   `json:"session_id"`
	EventType string   `json:"event_type"`
	PageURL   string   `json:"page_url"`
	Timestamp int64    `json:"timestamp"`
	ClickX    *float64 `json:"click_x,omitempty"`
	ClickY    *float64 `json:"click_y,omitempty"`
}

// APIError is returned when the server responds with an error envelope.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}
