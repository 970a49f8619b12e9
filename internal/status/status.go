package status

import (
	"sort"

	"github.com/aria-lang/biopm/internal/pattern"
	"github.com/aria-lang/biopm/internal/sequence"
)

// Score parameters. The penalties of one status add up to less than
// CategoryStep so a category never drops below the next one down.
const (
	CategoryStep    = 2.0
	GapPenalty      = 1.0
	GapCountPenalty = 0.5
	AAPenalty       = 0.25
	NTPenalty       = 0.05

	// MaxLength is the largest count that still orders correctly; larger
	// counts are clamped.
	MaxLength = 10000000
)

// Detail carries the analysed sequences alongside a status.
type Detail struct {
	Query      string // pairwise, gaps kept
	Reference  string
	Length     int
	Translated bool
	Pattern    *pattern.Pattern
}

// Status is a classified sequence. The zero value is an NA status with no
// mismatches.
type Status struct {
	category Category
	counts   pattern.Counts
	detail   Detail
	score    float64
}

// New returns a status with the given counts and no sequence detail.
func New(c Category, counts pattern.Counts) Status {
	return NewWithDetail(c, counts, Detail{})
}

// NewWithDetail returns a status carrying the sequences and pattern it was
// derived from.
func NewWithDetail(c Category, counts pattern.Counts, d Detail) Status {
	return Status{
		category: c,
		counts:   counts,
		detail:   d,
		score:    Score(c, counts),
	}
}

// Score computes the ranking score of a category with its counts.
func Score(c Category, counts pattern.Counts) float64 {
	gaps := clamp(counts.Gaps)
	score := c.Weight() -
		GapCountPenalty*float64(gaps)/MaxLength -
		AAPenalty*float64(clamp(counts.AaPM))/MaxLength -
		NTPenalty*float64(clamp(counts.NtPM))/MaxLength
	if gaps > 0 {
		score -= GapPenalty
	}
	return score
}

func clamp(n int) int {
	switch {
	case n < 0:
		return 0
	case n > MaxLength:
		return MaxLength
	}
	return n
}

func (s Status) String() string {
	return s.category.String()
}

// Category returns the classification.
func (s Status) Category() Category { return s.category }

// Counts returns the diff statistics.
func (s Status) Counts() pattern.Counts { return s.counts }

// Gaps returns the number of gapped positions.
func (s Status) Gaps() int { return s.counts.Gaps }

// NtPM returns the number of nucleotide substitutions.
func (s Status) NtPM() int { return s.counts.NtPM }

// AaPM returns the number of amino acid substitutions. ok is false when the
// pattern was not translated.
func (s Status) AaPM() (n int, ok bool) {
	return s.counts.AaPM, s.detail.Translated
}

// Score returns the ranking score.
func (s Status) Score() float64 { return s.score }

// Pattern returns the embedded pattern, if any.
func (s Status) Pattern() *pattern.Pattern { return s.detail.Pattern }

// Length returns the aligned length.
func (s Status) Length() int { return s.detail.Length }

// Translated reports whether amino acid consequences were evaluated.
func (s Status) Translated() bool { return s.detail.Translated }

// PairwiseQuery returns the aligned query, gaps kept.
func (s Status) PairwiseQuery() string { return s.detail.Query }

// PairwiseReference returns the aligned reference, gaps kept.
func (s Status) PairwiseReference() string { return s.detail.Reference }

// Query returns the query without gaps.
func (s Status) Query() string { return sequence.Ungap(s.detail.Query) }

// Reference returns the reference without gaps.
func (s Status) Reference() string { return sequence.Ungap(s.detail.Reference) }

// Sort orders statuses best first. Equal scores keep their input order.
func Sort(statuses []Status) {
	sort.SliceStable(statuses, func(i, j int) bool {
		return statuses[i].Greater(statuses[j])
	})
}

// Best returns the highest ranked status.
func Best(statuses []Status) (Status, bool) {
	if len(statuses) == 0 {
		return Status{}, false
	}
	best := statuses[0]
	for _, s := range statuses[1:] {
		if s.Greater(best) {
			best = s
		}
	}
	return best, true
}
