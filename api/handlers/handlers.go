// Package handlers provides HTTP handlers for the biopm API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aria-lang/biopm/internal/analysis"
	"github.com/aria-lang/biopm/internal/pattern"
	"github.com/aria-lang/biopm/internal/sequence"
	"github.com/aria-lang/biopm/internal/status"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 64 << 20

// Handler serves the API with a configured analyzer.
type Handler struct {
	Analyzer  *analysis.Analyzer
	Translate bool // used when a request does not say
}

// New creates a handler.
func New(a *analysis.Analyzer, translate bool) *Handler {
	return &Handler{Analyzer: a, Translate: translate}
}

// Routes returns the API router, to be mounted under /api.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/pattern", h.PatternHandler)
	r.Post("/analyze", h.AnalyzeHandler)
	r.Post("/rank", h.RankHandler)
	r.Post("/compare", h.CompareHandler)
	r.Get("/categories", CategoriesHandler)
	return r
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) translate(requested *bool) bool {
	if requested != nil {
		return *requested
	}
	return h.Translate
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// writeError maps analysis errors to status codes: malformed input is 400,
// well-formed input that cannot be analyzed is 422.
func writeError(w http.ResponseWriter, err error) {
	var (
		seqErr     sequence.SequenceError
		codonLen   *pattern.InvalidCodonLengthError
		translate  *pattern.TranslateError
		corrupt    *analysis.CorruptAlignmentError
		statusErr  status.StatusError
		statusCode = http.StatusInternalServerError
	)
	switch {
	case errors.As(err, &seqErr), errors.As(err, &codonLen), errors.As(err, &statusErr):
		statusCode = http.StatusBadRequest
	case errors.As(err, &translate), errors.As(err, &corrupt):
		statusCode = http.StatusUnprocessableEntity
	}
	writeJSON(w, statusCode, ErrorResponse{Error: err.Error()})
}
