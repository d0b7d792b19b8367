package sync

import (
	"context"
	"sort"

	"github.com/trailmark/trailmark/internal/model"
)

// mockStore is a minimal in-memory store for sync tests.
type mockStore struct {
	events []*model.Event
	nextID int64
}

func newMockStore() *mockStore {
	return &mockStore{}
}

func (m *mockStore) InsertEvent(_ context.Context, e *model.Event) error {
	m.nextID++
	e.ID = m.nextID
	cp := *e
	m.events = append(m.events, &cp)
	return nil
}

func (m *mockStore) EventsBySession(_ context.Context, sessionID string) ([]*model.Event, error) {
	var result []*model.Event
	for _, e := range m.events {
		if e.SessionID == sessionID {
			result = append(result, e)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Timestamp != result[j].Timestamp {
			return result[i].Timestamp < result[j].Timestamp
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *mockStore) EventsByTypeAndPage(_ context.Context, eventType, pageURL string) ([]*model.Event, error) {
	var result []*model.Event
	for _, e := range m.events {
		if e.EventType == eventType && e.PageURL == pageURL {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockStore) SessionSummaries(_ context.Context) ([]*model.SessionSummary, error) {
	byID := make(map[string]*model.SessionSummary)
	var order []string
	for _, e := range m.events {
		s, ok := byID[e.SessionID]
		if !ok {
			s = &model.SessionSummary{SessionID: e.SessionID, FirstSeen: e.Timestamp, LastSeen: e.Timestamp}
			byID[e.SessionID] = s
			order = append(order, e.SessionID)
		}
		s.EventCount++
		if e.Timestamp < s.FirstSeen {
			s.FirstSeen = e.Timestamp
		}
		if e.Timestamp > s.LastSeen {
			s.LastSeen = e.Timestamp
		}
	}
	result := make([]*model.SessionSummary, 0, len(order))
	for _, id := range order {
		result = append(result, byID[id])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LastSeen > result[j].LastSeen
	})
	return result, nil
}

func (m *mockStore) DistinctPages(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var result []string
	for _, e := range m.events {
		if !seen[e.PageURL] {
			seen[e.PageURL] = true
			result = append(result, e.PageURL)
		}
	}
	return result, nil
}

func (m *mockStore) Close() error {
	return nil
}
