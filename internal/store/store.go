package store

import (
	"context"

	"github.com/trailmark/trailmark/internal/model"
)

// Store defines the persistence interface for the event log. The log is
// append-only: there is no update or delete.
type Store interface {
	// InsertEvent persists a validated event and assigns its id.
	InsertEvent(ctx context.Context, event *model.Event) error

	// EventsBySession returns all events for a session ordered by timestamp
	// ascending, ties broken by insertion order.
	EventsBySession(ctx context.Context, sessionID string) ([]*model.Event, error)

	// EventsByTypeAndPage returns all events matching the given type and page
	// URL. Order is not significant.
	EventsByTypeAndPage(ctx context.Context, eventType, pageURL string) ([]*model.Event, error)

	// SessionSummaries groups all events by session and returns count plus
	// first/last timestamps per session, ordered by last_seen descending.
	SessionSummaries(ctx context.Context) ([]*model.SessionSummary, error)

	// DistinctPages returns every page URL ever stored, in first-seen order.
	DistinctPages(ctx context.Context) ([]string, error)

	// Lifecycle
	Close() error
}
