package handlers

import (
	"net/http"
	"strings"

	"github.com/aria-lang/biopm/internal/analysis"
	"github.com/aria-lang/biopm/internal/pattern"
	"github.com/aria-lang/biopm/internal/report"
	"github.com/aria-lang/biopm/internal/sequence"
	"github.com/aria-lang/biopm/internal/status"
)

// PairRequest is an aligned query and reference.
type PairRequest struct {
	ID        string `json:"id,omitempty"`
	Query     string `json:"query"`
	Reference string `json:"reference"`
	Translate *bool  `json:"translate,omitempty"`
	Pattern   bool   `json:"pattern,omitempty"`
}

// PatternHandler returns the mutation pattern of a pair.
func (h *Handler) PatternHandler(w http.ResponseWriter, r *http.Request) {
	var req PairRequest
	if !decode(w, r, &req) {
		return
	}

	p, err := pattern.Extract(req.Query, req.Reference, h.translate(req.Translate), h.Analyzer.Translator)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p.Record())
}

// AnalyzeHandler classifies a pair.
func (h *Handler) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req PairRequest
	if !decode(w, r, &req) {
		return
	}

	st, err := h.Analyzer.Analyze(req.Query, req.Reference, h.translate(req.Translate))
	if err != nil {
		writeError(w, err)
		return
	}

	rec := st.Record()
	rec.ID = req.ID
	if !req.Pattern {
		rec.Pattern = nil
	}
	writeJSON(w, http.StatusOK, rec)
}

// QueryItem is one query of a rank request.
type QueryItem struct {
	ID       string `json:"id"`
	Sequence string `json:"sequence"`
}

// RankRequest holds queries aligned against one reference, either as a list
// or as aligned FASTA text with the reference first.
type RankRequest struct {
	Reference string      `json:"reference,omitempty"`
	Queries   []QueryItem `json:"queries,omitempty"`
	FASTA     string      `json:"fasta,omitempty"`
	Translate *bool       `json:"translate,omitempty"`
	Pattern   bool        `json:"pattern,omitempty"`
}

func (req *RankRequest) resolve() (string, []analysis.Query, error) {
	if req.FASTA == "" {
		queries := make([]analysis.Query, len(req.Queries))
		for i, q := range req.Queries {
			queries[i] = analysis.Query{ID: q.ID, Bases: q.Sequence}
		}
		if req.Reference == "" {
			return "", nil, &sequence.EmptySequenceError{Name: "reference"}
		}
		return req.Reference, queries, nil
	}

	records, err := sequence.ParseFASTA(strings.NewReader(req.FASTA))
	if err != nil {
		return "", nil, err
	}
	ref, rest, err := sequence.SplitAlignment(records)
	if err != nil {
		return "", nil, err
	}
	return ref.Bases, analysis.QueriesFrom(rest), nil
}

// RankHandler ranks queries against a reference, best first.
func (h *Handler) RankHandler(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if !decode(w, r, &req) {
		return
	}

	reference, queries, err := req.resolve()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	results, err := h.Analyzer.Rank(r.Context(), reference, queries, h.translate(req.Translate))
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, report.FromResults(results, req.Pattern))
}

// CompareRequest asks how a pair's status ranks against a category.
type CompareRequest struct {
	PairRequest
	Category string `json:"category"`
}

// CompareResponse reports the comparison of a status with a category.
type CompareResponse struct {
	Status     string `json:"status"`
	Category   string `json:"category"`
	Comparison int    `json:"comparison"`
	Is         bool   `json:"is"`
	AtLeast    bool   `json:"at_least"`
}

// CompareHandler classifies a pair and compares the result with a category
// name. Only the categories take part in the comparison.
func (h *Handler) CompareHandler(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if !decode(w, r, &req) {
		return
	}

	category, err := status.ParseCategory(req.Category)
	if err != nil {
		writeError(w, err)
		return
	}

	st, err := h.Analyzer.Analyze(req.Query, req.Reference, h.translate(req.Translate))
	if err != nil {
		writeError(w, err)
		return
	}

	cmp, err := st.CompareTo(req.Category)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CompareResponse{
		Status:     st.Category().String(),
		Category:   category.String(),
		Comparison: cmp,
		Is:         cmp == 0,
		AtLeast:    cmp >= 0,
	})
}

// CategoriesHandler lists the categories, best first.
func CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, report.CategoryRecords())
}
