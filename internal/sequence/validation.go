package sequence

import "fmt"

// SequenceError is the base error type for sequence operations.
type SequenceError interface {
	error
	IsSequenceError()
}

// EmptySequenceError is returned when a sequence is empty.
type EmptySequenceError struct {
	Name string // "query" or "reference", empty when unknown
}

func (e *EmptySequenceError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("empty %s sequence", e.Name)
	}
	return "sequence must have at least one base"
}

func (e *EmptySequenceError) IsSequenceError() {}

// InvalidBaseError is returned when an invalid base is encountered.
type InvalidBaseError struct {
	Position int
	Found    rune
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base '%c' at position %d", e.Found, e.Position)
}

func (e *InvalidBaseError) IsSequenceError() {}

// LengthMismatchError is returned when the two sides of an aligned pair
// differ in length.
type LengthMismatchError struct {
	Query     int
	Reference int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length must be consistent between query and reference: %d != %d",
		e.Query, e.Reference)
}

func (e *LengthMismatchError) IsSequenceError() {}

// Validate checks that a string only holds aligned-alphabet symbols.
// Positions in the returned error are 0-based.
func Validate(bases string) error {
	for i := 0; i < len(bases); i++ {
		if !IsValidBase(bases[i]) {
			return &InvalidBaseError{Position: i, Found: rune(bases[i])}
		}
	}
	return nil
}

// IsValidBase checks if a byte is a nucleotide, an IUPAC ambiguity code or
// the gap placeholder. Lowercase is accepted.
func IsValidBase(c byte) bool {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c == Gap || validBases[c]
}

// CheckPair verifies the preconditions shared by every aligned pair
// operation: both sides non-empty and of equal length.
func CheckPair(query, reference string) error {
	if len(query) == 0 {
		return &EmptySequenceError{Name: "query"}
	}
	if len(reference) == 0 {
		return &EmptySequenceError{Name: "reference"}
	}
	if len(query) != len(reference) {
		return &LengthMismatchError{Query: len(query), Reference: len(reference)}
	}
	return nil
}
