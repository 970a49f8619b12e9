// Package pattern extracts the positional mutation pattern between a query
// sequence and its pairwise-aligned reference.
//
// A plain pattern lists every mismatching nucleotide position. A translated
// pattern additionally retranslates each codon touched by a mismatch in both
// sequences and records the amino acid pair, together with the owning codon
// of every mismatching position.
package pattern

import (
	"strings"
	"sync"

	"github.com/aria-lang/biopm/internal/codon"
	"github.com/aria-lang/biopm/internal/sequence"
)

// Mutation is a single mismatching nucleotide position.
type Mutation struct {
	Position  int // 1-based
	Reference byte
	Query     byte
}

// String renders the mutation in HGVS-like notation.
func (m Mutation) String() string {
	return FormatMutation(m.Position, m.Reference, m.Query)
}

// IsGap reports whether either side is the gap placeholder.
func (m Mutation) IsGap() bool {
	return m.Reference == sequence.Gap || m.Query == sequence.Gap
}

// AAMutation is the amino acid pair of a codon holding at least one
// nucleotide mismatch. Reference and Query may be equal (synonymous change).
type AAMutation struct {
	Codon     int // 1-based codon index
	Reference byte
	Query     byte
}

// String renders the amino acid change using the codon index as position.
func (m AAMutation) String() string {
	return FormatMutation(m.Codon, m.Reference, m.Query)
}

// IsSubstitution reports whether the codon translates differently and
// neither side is a gap.
func (m AAMutation) IsSubstitution() bool {
	return m.Reference != m.Query && m.Reference != codon.GapCode && m.Query != codon.GapCode
}

// Entry pairs a nucleotide mutation with the amino acid change of its codon.
// AminoAcid is nil for plain patterns.
type Entry struct {
	Nucleotide Mutation
	AminoAcid  *AAMutation
}

// Counts are the diff statistics drawn from a pattern.
type Counts struct {
	Gaps int // positions where either side is a gap
	NtPM int // nucleotide substitutions without gaps
	AaPM int // amino acid substitutions without gaps
}

// Pattern is the immutable result of Extract.
type Pattern struct {
	mutations   []Mutation
	aaMutations []AAMutation
	byPosition  map[int]int
	byCodon     map[int]int
	codonOf     map[int]int
	translated  bool

	entriesOnce sync.Once
	entries     []Entry
}

// Extract compares query with its aligned reference. Both sequences are
// upper-cased first, byte by byte. With translate set, every codon touched by a mismatch
// is translated in both sequences with tr (the standard table when nil).
func Extract(query, reference string, translate bool, tr codon.Translator) (*Pattern, error) {
	if err := sequence.CheckPair(query, reference); err != nil {
		return nil, err
	}
	if translate && len(query)%sequence.CodonSize != 0 {
		return nil, &InvalidCodonLengthError{Length: len(query)}
	}

	query = sequence.Upper(query)
	reference = sequence.Upper(reference)

	p := &Pattern{byPosition: make(map[int]int)}
	for i := 0; i < len(query); i++ {
		if query[i] != reference[i] {
			p.byPosition[i+1] = len(p.mutations)
			p.mutations = append(p.mutations, Mutation{
				Position:  i + 1,
				Reference: reference[i],
				Query:     query[i],
			})
		}
	}
	if !translate {
		return p, nil
	}

	if tr == nil {
		tr = codon.Standard()
	}
	if err := p.translate(query, reference, tr); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pattern) translate(query, reference string, tr codon.Translator) error {
	p.translated = true
	p.byCodon = make(map[int]int)
	p.codonOf = make(map[int]int, len(p.mutations))

	previous := 0
	for _, m := range p.mutations {
		idx := sequence.CodonIndex(m.Position)
		if idx != previous {
			start, end := sequence.CodonBounds(idx)

			qaa, err := translateCodon(tr, query[start:end])
			if err != nil {
				return &TranslateError{Sequence: "query", Codon: query[start:end], Index: idx, Err: err}
			}
			raa, err := translateCodon(tr, reference[start:end])
			if err != nil {
				return &TranslateError{Sequence: "reference", Codon: reference[start:end], Index: idx, Err: err}
			}

			p.byCodon[idx] = len(p.aaMutations)
			p.aaMutations = append(p.aaMutations, AAMutation{Codon: idx, Reference: raa, Query: qaa})
		}
		previous = idx
		p.codonOf[m.Position] = idx
	}
	return nil
}

func translateCodon(tr codon.Translator, c string) (byte, error) {
	if strings.IndexByte(c, sequence.Gap) >= 0 {
		return codon.GapCode, nil
	}
	if tr.IsStop(c) {
		return codon.StopCode, nil
	}
	return tr.Translate(c)
}

// Translated reports whether amino acid level data is present.
func (p *Pattern) Translated() bool {
	return p.translated
}

// Len returns the number of mismatching nucleotide positions.
func (p *Pattern) Len() int {
	return len(p.mutations)
}

// Empty reports whether the sequences were identical.
func (p *Pattern) Empty() bool {
	return len(p.mutations) == 0
}

// Mutations returns the nucleotide mutations in ascending position order.
func (p *Pattern) Mutations() []Mutation {
	out := make([]Mutation, len(p.mutations))
	copy(out, p.mutations)
	return out
}

// AAMutations returns the amino acid entries in ascending codon order.
func (p *Pattern) AAMutations() []AAMutation {
	out := make([]AAMutation, len(p.aaMutations))
	copy(out, p.aaMutations)
	return out
}

// Mutation looks up the mutation at a 1-based position.
func (p *Pattern) Mutation(pos int) (Mutation, bool) {
	i, ok := p.byPosition[pos]
	if !ok {
		return Mutation{}, false
	}
	return p.mutations[i], true
}

// AAMutation looks up the amino acid entry of a 1-based codon index.
func (p *Pattern) AAMutation(idx int) (AAMutation, bool) {
	i, ok := p.byCodon[idx]
	if !ok {
		return AAMutation{}, false
	}
	return p.aaMutations[i], true
}

// CodonOf returns the codon owning a mismatching position.
func (p *Pattern) CodonOf(pos int) (int, bool) {
	idx, ok := p.codonOf[pos]
	return idx, ok
}

// Entries flattens the pattern into one entry per nucleotide mutation.
// The list is computed on first use and shared afterwards; callers must not
// modify it.
func (p *Pattern) Entries() []Entry {
	p.entriesOnce.Do(func() {
		p.entries = make([]Entry, 0, len(p.mutations))
		for _, m := range p.mutations {
			e := Entry{Nucleotide: m}
			if p.translated {
				aa := p.aaMutations[p.byCodon[p.codonOf[m.Position]]]
				e.AminoAcid = &aa
			}
			p.entries = append(p.entries, e)
		}
	})
	return p.entries
}

// Counts derives the diff statistics.
func (p *Pattern) Counts() Counts {
	var c Counts
	for _, m := range p.mutations {
		if m.IsGap() {
			c.Gaps++
		} else {
			c.NtPM++
		}
	}
	for _, aa := range p.aaMutations {
		if aa.IsSubstitution() {
			c.AaPM++
		}
	}
	return c
}

// Notations renders every nucleotide mutation.
func (p *Pattern) Notations() []string {
	out := make([]string, len(p.mutations))
	for i, m := range p.mutations {
		out[i] = m.String()
	}
	return out
}

// AANotations renders every amino acid entry.
func (p *Pattern) AANotations() []string {
	out := make([]string, len(p.aaMutations))
	for i, m := range p.aaMutations {
		out[i] = m.String()
	}
	return out
}

// Equal reports whether two patterns hold the same entries.
func (p *Pattern) Equal(other *Pattern) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.translated != other.translated ||
		len(p.mutations) != len(other.mutations) ||
		len(p.aaMutations) != len(other.aaMutations) {
		return false
	}
	for i := range p.mutations {
		if p.mutations[i] != other.mutations[i] {
			return false
		}
	}
	for i := range p.aaMutations {
		if p.aaMutations[i] != other.aaMutations[i] {
			return false
		}
	}
	for pos, idx := range p.codonOf {
		if other.codonOf[pos] != idx {
			return false
		}
	}
	return true
}
