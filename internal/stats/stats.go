// Package stats provides summaries over sets of analyzed statuses.
package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aria-lang/biopm/internal/status"
)

// Distribution counts statuses per category.
type Distribution struct {
	Counts map[status.Category]int
	Total  int
}

// FromCategories creates a distribution from a list of categories.
func FromCategories(categories []status.Category) *Distribution {
	dist := &Distribution{
		Counts: make(map[status.Category]int, len(status.Categories())),
		Total:  len(categories),
	}
	for _, cat := range categories {
		dist.Counts[cat]++
	}
	return dist
}

// Count returns the number of statuses in a category.
func (d *Distribution) Count(c status.Category) int {
	return d.Counts[c]
}

// ExactRatio returns the proportion of queries identical to the reference.
func (d *Distribution) ExactRatio() float64 {
	if d.Total == 0 {
		return 0.0
	}
	return float64(d.Counts[status.Y]) / float64(d.Total)
}

// AcceptableRatio returns the proportion of queries whose protein is either
// unchanged or changed only in known ways.
func (d *Distribution) AcceptableRatio() float64 {
	if d.Total == 0 {
		return 0.0
	}
	acceptable := d.Counts[status.Y] + d.Counts[status.Conserved] +
		d.Counts[status.PMInDB] + d.Counts[status.CodonOptimized]
	return float64(acceptable) / float64(d.Total)
}

func (d *Distribution) String() string {
	var b strings.Builder
	b.WriteString("Distribution {\n")
	for _, c := range status.Categories() {
		fmt.Fprintf(&b, "  %s: %d\n", c, d.Counts[c])
	}
	b.WriteString("}")
	return b.String()
}

// Summary aggregates a set of statuses.
type Summary struct {
	Count        int
	Translated   int
	MinScore     float64
	MaxScore     float64
	MeanScore    float64
	MedianScore  float64
	TotalGaps    int
	TotalNtPM    int
	TotalAaPM    int
	Best         status.Status
	Distribution *Distribution
}

// FromStatuses calculates a summary for a collection of statuses.
func FromStatuses(statuses []status.Status) (*Summary, error) {
	if len(statuses) == 0 {
		return nil, fmt.Errorf("status list cannot be empty")
	}

	count := len(statuses)
	scores := make([]float64, count)
	categories := make([]status.Category, count)

	s := &Summary{Count: count}
	for i, st := range statuses {
		scores[i] = st.Score()
		categories[i] = st.Category()
		s.TotalGaps += st.Gaps()
		s.TotalNtPM += st.NtPM()
		if aa, ok := st.AaPM(); ok {
			s.TotalAaPM += aa
			s.Translated++
		}
	}

	sorted := make([]float64, count)
	copy(sorted, scores)
	sort.Float64s(sorted)

	s.MinScore = sorted[0]
	s.MaxScore = sorted[count-1]

	sum := 0.0
	for _, v := range scores {
		sum += v
	}
	s.MeanScore = sum / float64(count)

	mid := count / 2
	if count%2 == 0 {
		s.MedianScore = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		s.MedianScore = sorted[mid]
	}

	s.Best, _ = status.Best(statuses)
	s.Distribution = FromCategories(categories)
	return s, nil
}

func (s *Summary) String() string {
	return fmt.Sprintf(`Summary {
  count: %d (translated %d)
  best: %s
  score range: %.6f - %.6f
  mean score: %.6f
  median score: %.6f
  gaps: %d, nt_pm: %d, aa_pm: %d
  exact: %.1f%%
  acceptable: %.1f%%
}`, s.Count, s.Translated, s.Best.Category(),
		s.MinScore, s.MaxScore, s.MeanScore, s.MedianScore,
		s.TotalGaps, s.TotalNtPM, s.TotalAaPM,
		s.Distribution.ExactRatio()*100, s.Distribution.AcceptableRatio()*100)
}
