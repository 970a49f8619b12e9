// Package report renders analysis results as a text table, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/aria-lang/biopm/internal/analysis"
	"github.com/aria-lang/biopm/internal/pattern"
	"github.com/aria-lang/biopm/internal/stats"
	"github.com/aria-lang/biopm/internal/status"
)

// Format selects an output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// UnknownFormatError is returned for an unsupported output format.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format %q (want text, json or yaml)", e.Name)
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case Text, JSON, YAML:
		return f, nil
	case "":
		return Text, nil
	}
	return "", &UnknownFormatError{Name: name}
}

// Failure records a query that could not be analyzed.
type Failure struct {
	ID    string `json:"id" yaml:"id"`
	Error string `json:"error" yaml:"error"`
}

// SummaryRecord is the serializable form of stats.Summary.
type SummaryRecord struct {
	Count           int            `json:"count" yaml:"count"`
	Translated      int            `json:"translated" yaml:"translated"`
	MinScore        float64        `json:"min_score" yaml:"min_score"`
	MaxScore        float64        `json:"max_score" yaml:"max_score"`
	MeanScore       float64        `json:"mean_score" yaml:"mean_score"`
	MedianScore     float64        `json:"median_score" yaml:"median_score"`
	ExactRatio      float64        `json:"exact_ratio" yaml:"exact_ratio"`
	AcceptableRatio float64        `json:"acceptable_ratio" yaml:"acceptable_ratio"`
	Categories      map[string]int `json:"categories" yaml:"categories"`
}

// NewSummaryRecord converts a summary.
func NewSummaryRecord(s *stats.Summary) *SummaryRecord {
	r := &SummaryRecord{
		Count:           s.Count,
		Translated:      s.Translated,
		MinScore:        s.MinScore,
		MaxScore:        s.MaxScore,
		MeanScore:       s.MeanScore,
		MedianScore:     s.MedianScore,
		ExactRatio:      s.Distribution.ExactRatio(),
		AcceptableRatio: s.Distribution.AcceptableRatio(),
		Categories:      make(map[string]int),
	}
	for _, c := range status.Categories() {
		r.Categories[c.String()] = s.Distribution.Count(c)
	}
	return r
}

// Report is a ranked set of results.
type Report struct {
	Results  []status.Record `json:"results" yaml:"results"`
	Failures []Failure       `json:"failures,omitempty" yaml:"failures,omitempty"`
	Summary  *SummaryRecord  `json:"summary,omitempty" yaml:"summary,omitempty"`

	summary *stats.Summary
}

// FromResults builds a report keeping the order of results. Patterns are
// included when withPattern is set.
func FromResults(results []analysis.Result, withPattern bool) *Report {
	r := &Report{Results: make([]status.Record, 0, len(results))}
	for _, res := range results {
		if res.Err != nil {
			r.Failures = append(r.Failures, Failure{ID: res.ID, Error: res.Err.Error()})
			continue
		}
		rec := res.Status.Record()
		rec.ID = res.ID
		if !withPattern {
			rec.Pattern = nil
		}
		r.Results = append(r.Results, rec)
	}

	if s, err := stats.FromStatuses(analysis.Statuses(results)); err == nil {
		r.summary = s
		r.Summary = NewSummaryRecord(s)
	}
	return r
}

// Single builds a report of one status.
func Single(id string, st status.Status, withPattern bool) *Report {
	return FromResults([]analysis.Result{{ID: id, Status: st}}, withPattern)
}

// Write renders the report.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case JSON:
		return writeJSON(w, r)
	case YAML:
		return writeYAML(w, r)
	case Text, "":
		return r.writeText(w)
	}
	return &UnknownFormatError{Name: string(f)}
}

func (r *Report) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tID\tSTATUS\tSCORE\tLENGTH\tGAPS\tNT_PM\tAA_PM")
	for i, rec := range r.Results {
		aa := "-"
		if rec.AaPM != nil {
			aa = fmt.Sprint(*rec.AaPM)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.6f\t%d\t%d\t%d\t%s\n",
			i+1, orDash(rec.ID), rec.Status, rec.Score, rec.Length, rec.Gaps, rec.NtPM, aa)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, rec := range r.Results {
		if rec.Pattern == nil || len(rec.Pattern.Mutations) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", orDash(rec.ID))
		if err := writePatternText(w, *rec.Pattern); err != nil {
			return err
		}
	}

	if len(r.Failures) > 0 {
		fmt.Fprintln(w, "\nFailed:")
		for _, f := range r.Failures {
			fmt.Fprintf(w, "  %s: %s\n", orDash(f.ID), f.Error)
		}
	}

	if r.summary != nil && r.summary.Count > 1 {
		fmt.Fprintf(w, "\n%s\n", r.summary)
	}
	return nil
}

// WritePattern renders a pattern on its own.
func WritePattern(w io.Writer, rec pattern.Record, f Format) error {
	switch f {
	case JSON:
		return writeJSON(w, rec)
	case YAML:
		return writeYAML(w, rec)
	case Text, "":
		return writePatternText(w, rec)
	}
	return &UnknownFormatError{Name: string(f)}
}

func writePatternText(w io.Writer, rec pattern.Record) error {
	aa := make(map[int]string, len(rec.AminoAcids))
	for _, a := range rec.AminoAcids {
		aa[a.Position] = a.Notation
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, m := range rec.Mutations {
		if n, ok := aa[m.Codon]; ok {
			fmt.Fprintf(tw, "  %s\t%s\n", m.Notation, n)
		} else {
			fmt.Fprintf(tw, "  %s\n", m.Notation)
		}
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
