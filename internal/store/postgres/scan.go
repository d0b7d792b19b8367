package postgres

import (
	"database/sql"
	"fmt"

	"github.com/trailmark/trailmark/internal/model"
)

// scanEvent scans a single row into a model.Event. The row must contain
// columns in the order defined by eventColumns.
func scanEvent(rows *sql.Rows) (*model.Event, error) {
	var e model.Event
	var clickX, clickY sql.NullFloat64

	err := rows.Scan(
		&e.ID,
		&e.SessionID,
		&e.EventType,
		&e.PageURL,
		&e.Timestamp,
		&clickX,
		&clickY,
	)
	if err != nil {
		return nil, err
	}

	if clickX.Valid {
		v := clickX.Float64
		e.ClickX = &v
	}
	if clickY.Valid {
		v := clickY.Float64
		e.ClickY = &v
	}

	return &e, nil
}

// scanEvents drains rows into a slice of events.
func scanEvents(rows *sql.Rows) ([]*model.Event, error) {
	var events []*model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

// nullFloatPtr converts an optional coordinate to its nullable SQL form.
func nullFloatPtr(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
