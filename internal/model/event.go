// Package model defines the persisted event record and the derived read-view
// types shared by the store, the server, and the client.
package model

// Event is a single recorded user interaction (page view, click, or any other
// client-defined type). The id is assigned by the store on insert; everything
// else is client-supplied and stored verbatim.
type Event struct {
	ID        int64  `json:"id"`
	SessionID string `json:"session_id"`
	EventType string `json:"event_type"`
	PageURL   string `json:"page_url"`
	// Timestamp is client-supplied milliseconds since epoch, not
	// server-corrected.
	Timestamp int64    `json:"timestamp"`
	ClickX    *float64 `json:"click_x,omitempty"`
	ClickY    *float64 `json:"click_y,omitempty"`
}

// SessionSummary is the per-session roll-up: event count plus the first and
// last observed timestamps.
type SessionSummary struct {
	SessionID  string `json:"session_id"`
	EventCount int64  `json:"event_count"`
	FirstSeen  int64  `json:"first_seen"`
	LastSeen   int64  `json:"last_seen"`
}

// HeatmapPoint is the projection of a click event used for heatmap rendering.
// Identifiers are deliberately omitted.
type HeatmapPoint struct {
	ClickX    *float64 `json:"click_x"`
	ClickY    *float64 `json:"click_y"`
	Timestamp int64    `json:"timestamp"`
}
