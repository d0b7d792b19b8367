package server

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPOptions configures the transport layer around the core handlers.
type HTTPOptions struct {
	// CORSOrigin is the value of Access-Control-Allow-Origin ("*" allows all).
	CORSOrigin string
	// MaxBodyBytes caps the ingest request body size.
	MaxBodyBytes int64
}

// DefaultHTTPOptions mirror the deployment defaults: open CORS, 16 KiB bodies.
func DefaultHTTPOptions() HTTPOptions {
	return HTTPOptions{CORSOrigin: "*", MaxBodyBytes: 16 << 10}
}

// NewHTTPHandler returns an http.Handler with all routes registered and the
// middleware chain applied.
func (s *EventsServer) NewHTTPHandler(opts HTTPOptions) http.Handler {
	if opts.CORSOrigin == "" {
		opts.CORSOrigin = "*"
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 16 << 10
	}

	mux := http.NewServeMux()
	mux.Handle("POST /api/v1/events",
		maxBytesMiddleware(opts.MaxBodyBytes, instrument("track_event", s.handleTrackEvent)))
	mux.HandleFunc("GET /api/v1/events/sessions", instrument("list_sessions", s.handleListSessions))
	mux.HandleFunc("GET /api/v1/events/sessions/{session_id}", instrument("session_timeline", s.handleSessionTimeline))
	mux.HandleFunc("GET /api/v1/events/heatmap", instrument("heatmap", s.handleHeatmap))
	mux.HandleFunc("GET /api/v1/events/pages", instrument("list_pages", s.handleListPages))
	mux.HandleFunc("GET /api/v1/health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	var handler http.Handler = mux
	handler = corsMiddleware(opts.CORSOrigin, handler)
	handler = requestLogMiddleware(s.logger, handler)
	handler = recoveryMiddleware(s.logger, handler)
	return handler
}

// handleHealth handles GET /api/v1/health.
func (s *EventsServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// successResponse is the envelope for every successful response.
type successResponse struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message,omitempty"`
}

// errorResponse is the envelope shared by every error response.
type errorResponse struct {
	Success    bool     `json:"success"`
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors"`
}

// writeJSON writes a raw JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeData writes a success envelope around data.
func writeData(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, successResponse{
		Success:    true,
		StatusCode: status,
		Data:       data,
		Message:    message,
	})
}

// writeError writes an error envelope. The errors list is never null.
func writeError(w http.ResponseWriter, status int, message string, errs ...string) {
	if errs == nil {
		errs = []string{}
	}
	writeJSON(w, status, errorResponse{
		Success:    false,
		StatusCode: status,
		Message:    message,
		Errors:     errs,
	})
}
