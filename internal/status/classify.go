package status

import "github.com/aria-lang/biopm/internal/pattern"

// InDBPredicate reports whether the amino acid changes of a pattern are
// already catalogued as known.
type InDBPredicate func(ntPM, aaPM, gaps int, query, reference string, p *pattern.Pattern) (bool, error)

// OptimizedPredicate reports whether a synonymous change looks like
// deliberate codon optimization.
type OptimizedPredicate func(ntPM, aaPM int) (bool, error)

// Input is everything the classifier looks at.
type Input struct {
	Counts     pattern.Counts
	Translated bool
	Query      string
	Reference  string
	Pattern    *pattern.Pattern
}

// Classifier decides the category of a pattern. Both predicates are
// optional; a nil predicate never matches.
type Classifier struct {
	InDB      InDBPredicate
	Optimized OptimizedPredicate
}

// Classify applies the rules in order, first match wins:
//
//  1. gaps present           -> NA
//  2. not translated         -> NA
//  3. no nucleotide change   -> Y
//  4. no amino acid change   -> Conserved (Codon_optimized if Optimized)
//  5. otherwise              -> PM (PM_IN_DB if InDB)
//
// Predicate errors are returned as is.
func (c Classifier) Classify(in Input) (Category, error) {
	switch {
	case in.Counts.Gaps > 0:
		return NA, nil
	case !in.Translated:
		return NA, nil
	case in.Counts.NtPM == 0:
		return Y, nil
	case in.Counts.AaPM == 0:
		if c.Optimized != nil {
			ok, err := c.Optimized(in.Counts.NtPM, in.Counts.AaPM)
			if err != nil {
				return NA, err
			}
			if ok {
				return CodonOptimized, nil
			}
		}
		return Conserved, nil
	default:
		if c.InDB != nil {
			ok, err := c.InDB(in.Counts.NtPM, in.Counts.AaPM, in.Counts.Gaps, in.Query, in.Reference, in.Pattern)
			if err != nil {
				return NA, err
			}
			if ok {
				return PMInDB, nil
			}
		}
		return PM, nil
	}
}

// Classify runs a Classifier without predicates.
func Classify(in Input) Category {
	c, _ := Classifier{}.Classify(in)
	return c
}
