// Package analysis ties pattern extraction and classification together:
// it analyzes one query against its aligned reference, or ranks many
// queries aligned against the same reference.
package analysis

import (
	"fmt"
	"log"
	"runtime"

	"github.com/aria-lang/biopm/internal/codon"
	"github.com/aria-lang/biopm/internal/pattern"
	"github.com/aria-lang/biopm/internal/sequence"
	"github.com/aria-lang/biopm/internal/status"
)

// CorruptAlignmentError reports a pattern that disagrees with the raw
// alignment, such as a column that is a gap on both sides.
type CorruptAlignmentError struct {
	Position int // 1-based, 0 when not tied to a column
	Reason   string
}

func (e *CorruptAlignmentError) Error() string {
	if e.Position > 0 {
		return fmt.Sprintf("corrupt alignment at position %d: %s", e.Position, e.Reason)
	}
	return "corrupt alignment: " + e.Reason
}

// Analyzer classifies aligned query/reference pairs.
type Analyzer struct {
	Translator codon.Translator
	Classifier status.Classifier
	Workers    int         // used by Rank; NumCPU when <= 0
	Logger     *log.Logger // optional
}

// NewAnalyzer creates an analyzer. A nil translator means the standard
// genetic code.
func NewAnalyzer(tr codon.Translator, classifier status.Classifier) *Analyzer {
	if tr == nil {
		tr = codon.Standard()
	}
	return &Analyzer{
		Translator: tr,
		Classifier: classifier,
		Workers:    runtime.NumCPU(),
	}
}

// Analyze extracts the mutation pattern of query against reference and
// classifies it. With translate unset the amino acid consequence is unknown
// and the status is NA.
func (a *Analyzer) Analyze(query, reference string, translate bool) (status.Status, error) {
	p, err := pattern.Extract(query, reference, translate, a.translator())
	if err != nil {
		return status.Status{}, err
	}

	counts := p.Counts()
	if err := checkConsistency(query, reference, counts); err != nil {
		return status.Status{}, err
	}

	category, err := a.Classifier.Classify(status.Input{
		Counts:     counts,
		Translated: translate,
		Query:      query,
		Reference:  reference,
		Pattern:    p,
	})
	if err != nil {
		return status.Status{}, err
	}

	return status.NewWithDetail(category, counts, status.Detail{
		Query:      query,
		Reference:  reference,
		Length:     len(query),
		Translated: translate,
		Pattern:    p,
	}), nil
}

// checkConsistency asserts the pattern invariants against the raw inputs.
func checkConsistency(query, reference string, counts pattern.Counts) error {
	q := &sequence.Sequence{Bases: query}
	r := &sequence.Sequence{Bases: reference}

	literal := q.CountGaps() + r.CountGaps()
	if counts.Gaps == literal {
		return nil
	}
	if q.HasGaps() && r.HasGaps() {
		for i := 0; i < len(query); i++ {
			if query[i] == sequence.Gap && reference[i] == sequence.Gap {
				return &CorruptAlignmentError{
					Position: i + 1,
					Reason:   "gap in both query and reference",
				}
			}
		}
	}
	return &CorruptAlignmentError{
		Reason: fmt.Sprintf("pattern holds %d gaps, sequences hold %d", counts.Gaps, literal),
	}
}

func (a *Analyzer) translator() codon.Translator {
	if a.Translator == nil {
		return codon.Standard()
	}
	return a.Translator
}

func (a *Analyzer) logf(format string, args ...interface{}) {
	if a.Logger != nil {
		a.Logger.Printf(format, args...)
	}
}
