// Package predicate provides ready-made classification predicates: a
// catalogue of known amino acid changes and a codon optimization heuristic.
package predicate

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aria-lang/biopm/internal/pattern"
	"github.com/aria-lang/biopm/internal/status"
)

// Catalogue is a set of amino acid changes known to be acceptable, written
// in the notation of pattern.FormatMutation with the codon index as
// position, e.g. "18T>P".
type Catalogue struct {
	known map[string]bool
}

type catalogueFile struct {
	Mutations []string `yaml:"mutations"`
}

// NewCatalogue builds a catalogue from notations.
func NewCatalogue(notations ...string) *Catalogue {
	c := &Catalogue{known: make(map[string]bool, len(notations))}
	for _, n := range notations {
		n = strings.ToUpper(strings.TrimSpace(n))
		if n != "" {
			c.known[n] = true
		}
	}
	return c
}

// ParseCatalogue reads a YAML catalogue:
//
//	mutations:
//	  - 18T>P
//	  - 20A>G
func ParseCatalogue(r io.Reader) (*Catalogue, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalogue: %w", err)
	}
	var f catalogueFile
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing catalogue: %w", err)
		}
	}
	return NewCatalogue(f.Mutations...), nil
}

// LoadCatalogue reads a YAML catalogue file.
func LoadCatalogue(path string) (*Catalogue, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalogue: %w", err)
	}
	defer file.Close()

	return ParseCatalogue(file)
}

// Len returns the number of catalogued changes.
func (c *Catalogue) Len() int {
	return len(c.known)
}

// Contains reports whether a notation is catalogued.
func (c *Catalogue) Contains(notation string) bool {
	return c.known[strings.ToUpper(strings.TrimSpace(notation))]
}

// Notations lists the catalogue in sorted order.
func (c *Catalogue) Notations() []string {
	out := make([]string, 0, len(c.known))
	for n := range c.known {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Marshal writes the catalogue back as YAML.
func (c *Catalogue) Marshal() ([]byte, error) {
	return yaml.Marshal(catalogueFile{Mutations: c.Notations()})
}

// InDB matches when the pattern changes the protein and every such change
// is catalogued.
func (c *Catalogue) InDB(ntPM, aaPM, gaps int, query, reference string, p *pattern.Pattern) (bool, error) {
	if p == nil || !p.Translated() || aaPM == 0 {
		return false, nil
	}
	changes := 0
	for _, aa := range p.AAMutations() {
		if !aa.IsSubstitution() {
			continue
		}
		changes++
		if !c.Contains(aa.String()) {
			return false, nil
		}
	}
	return changes > 0, nil
}

// Predicate returns InDB as a status.InDBPredicate.
func (c *Catalogue) Predicate() status.InDBPredicate {
	return c.InDB
}

// MinChanges treats a synonymous pattern as codon optimized once it holds at
// least that many nucleotide substitutions. Zero or less disables it.
type MinChanges int

// Optimized implements status.OptimizedPredicate.
func (m MinChanges) Optimized(ntPM, aaPM int) (bool, error) {
	if m <= 0 {
		return false, nil
	}
	return aaPM == 0 && ntPM >= int(m), nil
}

// Predicate returns Optimized as a status.OptimizedPredicate, or nil when
// disabled.
func (m MinChanges) Predicate() status.OptimizedPredicate {
	if m <= 0 {
		return nil
	}
	return m.Optimized
}
