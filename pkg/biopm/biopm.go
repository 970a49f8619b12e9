// Package biopm provides a high-level API for point-mutation analysis of
// aligned nucleotide sequences.
//
// Example usage:
//
//	st, err := biopm.Analyze("ATGACC", "ATGGCC", true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(st.Category(), st.NtPM()) // PM 1
//
//	a := biopm.NewAnalyzer(nil, biopm.Classifier{})
//	results, err := a.Rank(ctx, reference, queries, true)
package biopm

import (
	"fmt"
	"io"
	"os"

	"github.com/aria-lang/biopm/internal/analysis"
	"github.com/aria-lang/biopm/internal/codon"
	"github.com/aria-lang/biopm/internal/pattern"
	"github.com/aria-lang/biopm/internal/sequence"
	"github.com/aria-lang/biopm/internal/stats"
	"github.com/aria-lang/biopm/internal/status"
)

// Re-export types for convenience
type (
	Sequence   = sequence.Sequence
	Pattern    = pattern.Pattern
	Mutation   = pattern.Mutation
	AAMutation = pattern.AAMutation
	Counts     = pattern.Counts
	Category   = status.Category
	Status     = status.Status
	Classifier = status.Classifier
	Analyzer   = analysis.Analyzer
	Query      = analysis.Query
	Result     = analysis.Result
	Translator = codon.Translator
	Summary    = stats.Summary
)

// Categories, worst to best.
const (
	NA             = status.NA
	PM             = status.PM
	CodonOptimized = status.CodonOptimized
	PMInDB         = status.PMInDB
	Conserved      = status.Conserved
	Y              = status.Y
)

// Extract computes the mutation pattern of query against its aligned
// reference using the standard genetic code.
func Extract(query, reference string, translate bool) (*Pattern, error) {
	return pattern.Extract(query, reference, translate, nil)
}

// Analyze classifies query against reference with the standard genetic code
// and no predicates.
func Analyze(query, reference string, translate bool) (Status, error) {
	return analysis.NewAnalyzer(nil, status.Classifier{}).Analyze(query, reference, translate)
}

// NewAnalyzer creates an analyzer. A nil translator means the standard code.
func NewAnalyzer(tr Translator, classifier Classifier) *Analyzer {
	return analysis.NewAnalyzer(tr, classifier)
}

// CodonTable returns an NCBI genetic code by id.
func CodonTable(id int) (Translator, error) {
	t, err := codon.ByID(id)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// FormatMutation renders a single-base change, e.g. "109A>G" or "200delT".
func FormatMutation(pos int, ref, query byte) string {
	return pattern.FormatMutation(pos, ref, query)
}

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(name string) (Category, error) {
	return status.ParseCategory(name)
}

// Compare orders two statuses: -1, 0 or 1.
func Compare(a, b Status) int {
	return status.Compare(a, b)
}

// Summarize aggregates statuses.
func Summarize(statuses []Status) (*Summary, error) {
	return stats.FromStatuses(statuses)
}

// ReadFASTA reads an aligned multi-FASTA file.
func ReadFASTA(filename string) ([]*Sequence, error) {
	return sequence.ReadFASTA(filename)
}

// ParseFASTA parses aligned FASTA records from a reader.
func ParseFASTA(r io.Reader) ([]*Sequence, error) {
	return sequence.ParseFASTA(r)
}

// ReadAlignment reads an aligned multi-FASTA file whose first record is the
// reference.
func ReadAlignment(filename string) (*Sequence, []Query, error) {
	records, err := sequence.ReadFASTA(filename)
	if err != nil {
		return nil, nil, err
	}
	ref, queries, err := sequence.SplitAlignment(records)
	if err != nil {
		return nil, nil, err
	}
	return ref, analysis.QueriesFrom(queries), nil
}

// WriteFASTA writes sequences to a FASTA file.
func WriteFASTA(filename string, sequences []*Sequence) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	for _, seq := range sequences {
		_, err := file.WriteString(seq.ToFASTA())
		if err != nil {
			return fmt.Errorf("writing sequence: %w", err)
		}
	}

	return nil
}

// Version returns the biopm version.
func Version() string {
	return "1.0.0"
}

// Info returns information about biopm.
func Info() string {
	return fmt.Sprintf(`biopm v%s - Point Mutation Analysis for Aligned Sequences

Features:
  - Nucleotide mutation patterns with HGVS-like notation
  - Codon translation (NCBI tables %v) with IUPAC ambiguity codes
  - Status classification: Y, Conserved, PM_IN_DB, Codon_optimized, PM, NA
  - Total ordering and scoring of statuses for ranking
  - Concurrent ranking of many queries against one reference
  - Aligned multi-FASTA input, text/JSON/YAML output
`, Version(), codon.SupportedTables())
}
