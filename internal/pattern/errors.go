package pattern

import "fmt"

// PatternError is the base error type for pattern extraction.
type PatternError interface {
	error
	IsPatternError()
}

// InvalidCodonLengthError is returned when translation is requested for a
// sequence whose length is not a whole number of codons.
type InvalidCodonLengthError struct {
	Length int
}

func (e *InvalidCodonLengthError) Error() string {
	return fmt.Sprintf("sequence length must be a multiple of 3 in translate mode, got %d", e.Length)
}

func (e *InvalidCodonLengthError) IsPatternError() {}

// TranslateError is returned when a codon of either sequence cannot be
// translated.
type TranslateError struct {
	Sequence string // "query" or "reference"
	Codon    string
	Index    int // 1-based codon index
	Err      error
}

func (e *TranslateError) Error() string {
	return fmt.Sprintf("invalid codon in %s sequence at codon %d: %s", e.Sequence, e.Index, e.Codon)
}

func (e *TranslateError) Unwrap() error {
	return e.Err
}

func (e *TranslateError) IsPatternError() {}
