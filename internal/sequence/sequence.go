// Package sequence provides aligned nucleotide sequence types with validation.
//
// Sequences handled here come out of a pairwise alignment: they may hold
// the gap placeholder '-' and IUPAC ambiguity codes besides A, C, G, T and U.
package sequence

import (
	"fmt"
	"strings"
)

// Gap is the placeholder used by aligners for a missing base.
const Gap = '-'

// CodonSize is the number of bases per codon.
const CodonSize = 3

// Valid non-gap symbols: nucleotides plus IUPAC ambiguity codes.
var validBases = map[byte]bool{
	'A': true, 'C': true, 'G': true, 'T': true, 'U': true,
	'R': true, 'Y': true, 'S': true, 'W': true, 'K': true, 'M': true,
	'B': true, 'D': true, 'H': true, 'V': true, 'N': true,
}

// Sequence represents one validated row of a pairwise alignment.
type Sequence struct {
	Bases       string
	ID          string
	Description string
}

// New creates a new aligned sequence with validation.
func New(bases string) (*Sequence, error) {
	normalized := Upper(bases)

	if len(normalized) == 0 {
		return nil, &EmptySequenceError{}
	}

	if err := Validate(normalized); err != nil {
		return nil, err
	}

	return &Sequence{Bases: normalized}, nil
}

// WithMetadata creates a new sequence with full metadata.
func WithMetadata(bases, id, description string) (*Sequence, error) {
	seq, err := New(bases)
	if err != nil {
		return nil, err
	}

	seq.ID = id
	seq.Description = description
	return seq, nil
}

// Len returns the aligned length, gaps included.
func (s *Sequence) Len() int {
	return len(s.Bases)
}

// CountGaps counts gap placeholders.
func (s *Sequence) CountGaps() int {
	return strings.Count(s.Bases, string(Gap))
}

// HasGaps reports whether the sequence holds at least one gap.
func (s *Sequence) HasGaps() bool {
	return strings.IndexByte(s.Bases, Gap) >= 0
}

// Ungapped returns the bases with every gap placeholder removed.
func (s *Sequence) Ungapped() string {
	return Ungap(s.Bases)
}

// Upper folds ASCII lowercase letters to uppercase one byte at a time, so
// the result always has the same length and column layout as bases.
func Upper(bases string) string {
	var b []byte
	for i := 0; i < len(bases); i++ {
		if c := bases[i]; c >= 'a' && c <= 'z' {
			if b == nil {
				b = []byte(bases)
			}
			b[i] = c - ('a' - 'A')
		}
	}
	if b == nil {
		return bases
	}
	return string(b)
}

// Ungap removes gap placeholders from a raw string.
func Ungap(bases string) string {
	return strings.ReplaceAll(bases, string(Gap), "")
}

// CountAmbiguous counts IUPAC ambiguity codes (anything other than
// A, C, G, T, U and the gap).
func (s *Sequence) CountAmbiguous() int {
	count := 0
	for i := 0; i < len(s.Bases); i++ {
		switch s.Bases[i] {
		case 'A', 'C', 'G', 'T', 'U', Gap:
		default:
			count++
		}
	}
	return count
}

// Codon returns the 1-based codon window.
func (s *Sequence) Codon(index int) (string, error) {
	start, end := CodonBounds(index)
	if index < 1 || end > len(s.Bases) {
		return "", fmt.Errorf("codon %d out of range for length %d", index, len(s.Bases))
	}
	return s.Bases[start:end], nil
}

// CodonIndex returns the 1-based codon owning a 1-based nucleotide position.
func CodonIndex(pos int) int {
	return (pos + CodonSize - 1) / CodonSize
}

// CodonBounds returns the half-open 0-based slice bounds of a 1-based codon.
func CodonBounds(index int) (start, end int) {
	start = (index - 1) * CodonSize
	return start, start + CodonSize
}

// ToFASTA returns the sequence in FASTA format.
func (s *Sequence) ToFASTA() string {
	var header string
	if s.ID != "" {
		header = ">" + s.ID
		if s.Description != "" {
			header += " " + s.Description
		}
	} else {
		header = ">sequence"
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteRune('\n')

	// Split sequence into 80-character lines
	for i := 0; i < len(s.Bases); i += 80 {
		end := i + 80
		if end > len(s.Bases) {
			end = len(s.Bases)
		}
		sb.WriteString(s.Bases[i:end])
		sb.WriteRune('\n')
	}

	return sb.String()
}

// Name returns the ID, or a positional fallback.
func (s *Sequence) Name(fallback int) string {
	if s.ID != "" {
		return s.ID
	}
	return fmt.Sprintf("seq%d", fallback)
}
