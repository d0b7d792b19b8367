package model

import (
	"errors"
	"testing"
)

func validEvent() *Event {
	return &Event{
		SessionID: "session_1700000000000_abc123",
		EventType: "page_view",
		PageURL:   "https://example.com/",
		Timestamp: 1700000000000,
	}
}

func TestValidateEventValid(t *testing.T) {
	if err := ValidateEvent(validEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Optional coordinates don't affect validity.
	x, y := 5.0, 9.0
	e := validEvent()
	e.EventType = "click"
	e.ClickX = &x
	e.ClickY = &y
	if err := ValidateEvent(e); err != nil {
		t.Fatalf("unexpected error with coordinates: %v", err)
	}
}

func TestValidateEventMissingFields(t *testing.T) {
	for _, tc := range []struct {
		name      string
		mutate    func(*Event)
		wantField string
	}{
		{"EmptySessionID", func(e *Event) { e.SessionID = "" }, "session_id"},
		{"WhitespaceSessionID", func(e *Event) { e.SessionID = "   " }, "session_id"},
		{"EmptyEventType", func(e *Event) { e.EventType = "" }, "event_type"},
		{"EmptyPageURL", func(e *Event) { e.PageURL = "" }, "page_url"},
		{"ZeroTimestamp", func(e *Event) { e.Timestamp = 0 }, "timestamp"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e := validEvent()
			tc.mutate(e)

			err := ValidateEvent(e)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if ve.Error() != "Missing required fields" {
				t.Errorf("Error() = %q, want %q", ve.Error(), "Missing required fields")
			}
			found := false
			for _, fe := range ve.Errors {
				if fe.Field == tc.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected field error for %q, got %v", tc.wantField, ve.FieldMessages())
			}
		})
	}
}

func TestValidateEventAllMissing(t *testing.T) {
	err := ValidateEvent(&Event{})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(ve.Errors) != 4 {
		t.Errorf("len(Errors) = %d, want 4: %v", len(ve.Errors), ve.FieldMessages())
	}
}
