package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/trailmark/trailmark/internal/model"
)

// eventColumns is the column list used for SELECT statements on the events table.
const eventColumns = `id, session_id, event_type, page_url, ts, click_x, click_y`

// executor is the interface satisfied by both *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func queryInsertEvent(ctx context.Context, db executor, e *model.Event) error {
	err := db.QueryRowContext(ctx, `
		INSERT INTO events (session_id, event_type, page_url, ts, click_x, click_y)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		e.SessionID,
		e.EventType,
		e.PageURL,
		e.Timestamp,
		nullFloatPtr(e.ClickX),
		nullFloatPtr(e.ClickY),
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func queryEventsBySession(ctx context.Context, db executor, sessionID string) ([]*model.Event, error) {
	// id breaks timestamp ties in insertion order.
	rows, err := db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE session_id = $1
		ORDER BY ts ASC, id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func queryEventsByTypeAndPage(ctx context.Context, db executor, eventType, pageURL string) ([]*model.Event, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE event_type = $1 AND page_url = $2`,
		eventType, pageURL,
	)
	if err != nil {
		return nil, fmt.Errorf("query events by type and page: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func querySessionSummaries(ctx context.Context, db executor) ([]*model.SessionSummary, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT session_id, COUNT(*) AS event_count, MIN(ts) AS first_seen, MAX(ts) AS last_seen
		FROM events
		GROUP BY session_id
		ORDER BY last_seen DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	defer rows.Close()

	var summaries []*model.SessionSummary
	for rows.Next() {
		var s model.SessionSummary
		if err := rows.Scan(&s.SessionID, &s.EventCount, &s.FirstSeen, &s.LastSeen); err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		summaries = append(summaries, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session summaries: %w", err)
	}
	return summaries, nil
}

func queryDistinctPages(ctx context.Context, db executor) ([]string, error) {
	// First-seen order keeps the result deterministic across backends.
	rows, err := db.QueryContext(ctx, `
		SELECT page_url
		FROM events
		GROUP BY page_url
		ORDER BY MIN(id) ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query distinct pages: %w", err)
	}
	defer rows.Close()

	var pages []string
	for rows.Next() {
		var page string
		if err := rows.Scan(&page); err != nil {
			return nil, fmt.Errorf("scan page url: %w", err)
		}
		pages = append(pages, page)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pages: %w", err)
	}
	return pages, nil
}

func (s *PostgresStore) InsertEvent(ctx context.Context, event *model.Event) error {
	return queryInsertEvent(ctx, s.db, event)
}

func (s *PostgresStore) EventsBySession(ctx context.Context, sessionID string) ([]*model.Event, error) {
	return queryEventsBySession(ctx, s.db, sessionID)
}

func (s *PostgresStore) EventsByTypeAndPage(ctx context.Context, eventType, pageURL string) ([]*model.Event, error) {
	return queryEventsByTypeAndPage(ctx, s.db, eventType, pageURL)
}

func (s *PostgresStore) SessionSummaries(ctx context.Context) ([]*model.SessionSummary, error) {
	return querySessionSummaries(ctx, s.db)
}

func (s *PostgresStore) DistinctPages(ctx context.Context) ([]string, error) {
	return queryDistinctPages(ctx, s.db)
}
