// Package status classifies a mutation pattern into a point-mutation status
// and defines a total order over statuses for ranking.
//
// Categories from best to worst:
//
//	Y > Conserved > PM_IN_DB > Codon_optimized > PM > NA
package status

import (
	"fmt"
	"strings"
)

// Category is the classification outcome. Larger values rank higher.
type Category int

const (
	// NA means not assignable: the alignment has gaps or no translation was done.
	NA Category = iota
	// PM is a point mutation changing the protein.
	PM
	// CodonOptimized is a synonymous change judged to be deliberate recoding.
	CodonOptimized
	// PMInDB is a protein-changing mutation already catalogued as known.
	PMInDB
	// Conserved is a nucleotide change that keeps the protein.
	Conserved
	// Y means identical at the nucleotide level.
	Y
)

var categoryNames = [...]string{
	NA:             "NA",
	PM:             "PM",
	CodonOptimized: "Codon_optimized",
	PMInDB:         "PM_IN_DB",
	Conserved:      "Conserved",
	Y:              "Y",
}

// lookup keys are lower case.
var categoryByName = map[string]Category{
	"na":              NA,
	"null":            NA,
	"pm":              PM,
	"codon_optimized": CodonOptimized,
	"pm_in_db":        PMInDB,
	"conserved":       Conserved,
	"y":               Y,
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	return c >= NA && c <= Y
}

// Weight is the base score of the category.
func (c Category) Weight() float64 {
	return float64(c) * CategoryStep
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory resolves a category name case-insensitively. "Null" is
// accepted as an alias of NA.
func ParseCategory(name string) (Category, error) {
	c, ok := categoryByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return NA, &UnknownCategoryError{Name: name}
	}
	return c, nil
}

// Categories lists every category from best to worst.
func Categories() []Category {
	return []Category{Y, Conserved, PMInDB, CodonOptimized, PM, NA}
}
