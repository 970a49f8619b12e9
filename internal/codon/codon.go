// Package codon translates nucleotide triplets into one-letter amino acid
// codes using NCBI genetic code tables.
package codon

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aria-lang/biopm/internal/sequence"
)

const (
	// GapCode is returned for any codon window that holds a gap placeholder.
	GapCode byte = '-'
	// StopCode is returned for stop codons.
	StopCode byte = '*'
	// UnknownCode is returned for ambiguous codons whose expansions disagree.
	UnknownCode byte = 'X'
)

// Translator maps a 3-base codon to a one-letter amino acid code.
type Translator interface {
	Translate(codon string) (byte, error)
	IsStop(codon string) bool
}

// UnknownCodonError is returned when a codon cannot be resolved.
type UnknownCodonError struct {
	Codon string
}

func (e *UnknownCodonError) Error() string {
	return fmt.Sprintf("invalid codon: %s", e.Codon)
}

// UnknownTableError is returned for an unsupported genetic code id.
type UnknownTableError struct {
	ID int
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("unsupported genetic code table %d (supported: %v)", e.ID, SupportedTables())
}

// Standard genetic code: DNA codon to amino acid (single letter).
var standardCodons = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',

	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// Reassignments relative to the standard code.
var vertebrateMitochondrial = map[string]byte{
	"AGA": '*', "AGG": '*', "ATA": 'M', "TGA": 'W',
}

var iupac = map[byte]string{
	'A': "A", 'C': "C", 'G': "G", 'T': "T",
	'R': "AG", 'Y': "CT", 'S': "GC", 'W': "AT",
	'K': "GT", 'M': "AC", 'B': "CGT", 'D': "AGT",
	'H': "ACT", 'V': "ACG", 'N': "ACGT",
}

// Table is a genetic code. It is read-only after construction and safe for
// concurrent use.
type Table struct {
	ID     int
	Name   string
	codons map[string]byte
}

var tables = map[int]*Table{
	1:  newTable(1, "Standard", nil),
	2:  newTable(2, "Vertebrate Mitochondrial", vertebrateMitochondrial),
	11: newTable(11, "Bacterial, Archaeal and Plant Plastid", nil),
}

func newTable(id int, name string, overrides map[string]byte) *Table {
	codons := make(map[string]byte, len(standardCodons))
	for c, aa := range standardCodons {
		codons[c] = aa
	}
	for c, aa := range overrides {
		codons[c] = aa
	}
	return &Table{ID: id, Name: name, codons: codons}
}

// Standard returns NCBI table 1.
func Standard() *Table {
	return tables[1]
}

// ByID returns the NCBI genetic code with the given id.
func ByID(id int) (*Table, error) {
	t, ok := tables[id]
	if !ok {
		return nil, &UnknownTableError{ID: id}
	}
	return t, nil
}

// SupportedTables lists the available table ids in ascending order.
func SupportedTables() []int {
	ids := make([]int, 0, len(tables))
	for id := range tables {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Translate returns the amino acid for a codon. A codon containing the gap
// placeholder yields GapCode and a stop codon yields StopCode. Ambiguity
// codes are expanded; when the expansions disagree the result is B (D/N),
// Z (E/Q), J (I/L) or X.
func (t *Table) Translate(codon string) (byte, error) {
	if len(codon) != 3 {
		return 0, &UnknownCodonError{Codon: codon}
	}
	c := normalize(codon)
	if strings.IndexByte(c, '-') >= 0 {
		return GapCode, nil
	}
	if aa, ok := t.codons[c]; ok {
		return aa, nil
	}

	residues, err := t.expand(c)
	if err != nil {
		return 0, &UnknownCodonError{Codon: codon}
	}
	return collapse(residues), nil
}

// IsStop reports whether every reading of the codon is a stop.
func (t *Table) IsStop(codon string) bool {
	if len(codon) != 3 {
		return false
	}
	c := normalize(codon)
	if strings.IndexByte(c, '-') >= 0 {
		return false
	}
	if aa, ok := t.codons[c]; ok {
		return aa == StopCode
	}
	residues, err := t.expand(c)
	if err != nil {
		return false
	}
	return len(residues) == 1 && residues[StopCode]
}

// expand resolves every concrete codon an ambiguous codon stands for.
func (t *Table) expand(c string) (map[byte]bool, error) {
	options := make([]string, 3)
	for i := 0; i < 3; i++ {
		o, ok := iupac[c[i]]
		if !ok {
			return nil, fmt.Errorf("invalid base %q", c[i])
		}
		options[i] = o
	}

	residues := make(map[byte]bool)
	buf := make([]byte, 3)
	for _, a := range []byte(options[0]) {
		for _, b := range []byte(options[1]) {
			for _, d := range []byte(options[2]) {
				buf[0], buf[1], buf[2] = a, b, d
				residues[t.codons[string(buf)]] = true
			}
		}
	}
	return residues, nil
}

func collapse(residues map[byte]bool) byte {
	if len(residues) == 1 {
		for aa := range residues {
			return aa
		}
	}
	if len(residues) == 2 {
		switch {
		case residues['D'] && residues['N']:
			return 'B'
		case residues['E'] && residues['Q']:
			return 'Z'
		case residues['I'] && residues['L']:
			return 'J'
		}
	}
	return UnknownCode
}

func normalize(codon string) string {
	return strings.ReplaceAll(sequence.Upper(codon), "U", "T")
}
