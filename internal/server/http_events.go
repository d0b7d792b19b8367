package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/trailmark/trailmark/internal/model"
)

// handleTrackEvent handles POST /api/v1/events.
func (s *EventsServer) handleTrackEvent(w http.ResponseWriter, r *http.Request) {
	var in trackEventInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	event, err := s.TrackEvent(r.Context(), in)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	eventsIngestedTotal.Inc()
	writeData(w, http.StatusCreated, event, "Event tracked successfully")
}

// handleListSessions handles GET /api/v1/events/sessions.
func (s *EventsServer) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.ListSessions(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, sessions, "Sessions fetched successfully")
}

// handleSessionTimeline handles GET /api/v1/events/sessions/{session_id}.
// An unknown session yields an empty sequence, not an error.
func (s *EventsServer) handleSessionTimeline(w http.ResponseWriter, r *http.Request) {
	events, err := s.SessionTimeline(r.Context(), r.PathValue("session_id"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, events, "Session events fetched successfully")
}

// handleHeatmap handles GET /api/v1/events/heatmap?page_url=...
func (s *EventsServer) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	points, err := s.Heatmap(r.Context(), r.URL.Query().Get("page_url"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, points, "Heatmap data fetched successfully")
}

// handleListPages handles GET /api/v1/events/pages.
func (s *EventsServer) handleListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := s.ListPages(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, pages, "Pages fetched successfully")
}

// writeServiceError maps core errors onto the envelope: validation and input
// errors are client errors, everything else is a persistence-layer failure.
func (s *EventsServer) writeServiceError(w http.ResponseWriter, err error) {
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		writeError(w, http.StatusBadRequest, ve.Error(), ve.FieldMessages()...)
		return
	}

	var ie inputError
	if errors.As(err, &ie) {
		writeError(w, http.StatusBadRequest, ie.Error())
		return
	}

	s.logger.Error("request failed", "error", err)
	writeError(w, http.StatusInternalServerError, "Internal Server Error")
}
