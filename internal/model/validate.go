package model

import "strings"

// ValidationError holds a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation failure on a named field.
type FieldError struct {
	Field   string
	Message string
}

// Error returns the fixed boundary message for missing required fields. The
// per-field details are carried in Errors and surfaced in the response
// envelope's errors list.
func (e *ValidationError) Error() string {
	return "Missing required fields"
}

// HasErrors reports whether the validation error contains any field errors.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// FieldMessages returns the field errors formatted as "field: message" lines.
func (e *ValidationError) FieldMessages() []string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return msgs
}

// ValidateEvent checks an Event for constraint violations before it reaches
// the store. It returns a *ValidationError if any required field is missing,
// or nil if the event is valid. click_x/click_y are intentionally not
// validated; they pass through as supplied.
func ValidateEvent(e *Event) error {
	var ve ValidationError

	if strings.TrimSpace(e.SessionID) == "" {
		ve.Errors = append(ve.Errors, FieldError{Field: "session_id", Message: "is required"})
	}
	if strings.TrimSpace(e.EventType) == "" {
		ve.Errors = append(ve.Errors, FieldError{Field: "event_type", Message: "is required"})
	}
	if strings.TrimSpace(e.PageURL) == "" {
		ve.Errors = append(ve.Errors, FieldError{Field: "page_url", Message: "is required"})
	}
	if e.Timestamp == 0 {
		ve.Errors = append(ve.Errors, FieldError{Field: "timestamp", Message: "is required"})
	}

	if ve.HasErrors() {
		return &ve
	}
	return nil
}
