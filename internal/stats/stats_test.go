package stats

import (
	"strings"
	"testing"

	"github.com/aria-lang/biopm/internal/pattern"
	"github.com/aria-lang/biopm/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func translated(c status.Category, counts pattern.Counts) status.Status {
	return status.NewWithDetail(c, counts, status.Detail{Translated: true})
}

func TestFromCategories(t *testing.T) {
	dist := FromCategories([]status.Category{
		status.Y, status.Y, status.Conserved, status.PM, status.NA,
		status.PMInDB, status.CodonOptimized, status.PM,
	})

	assert.Equal(t, 8, dist.Total)
	assert.Equal(t, 2, dist.Count(status.Y))
	assert.Equal(t, 2, dist.Count(status.PM))
	assert.Equal(t, 1, dist.Count(status.NA))
	assert.InDelta(t, 2.0/8.0, dist.ExactRatio(), 0.0001)
	// Y, Y, Conserved, PMInDB, CodonOptimized
	assert.InDelta(t, 5.0/8.0, dist.AcceptableRatio(), 0.0001)
}

func TestDistributionEmpty(t *testing.T) {
	dist := FromCategories(nil)

	assert.Equal(t, 0, dist.Total)
	assert.Equal(t, 0.0, dist.ExactRatio())
	assert.Equal(t, 0.0, dist.AcceptableRatio())
}

func TestDistributionString(t *testing.T) {
	dist := FromCategories([]status.Category{status.Y, status.NA})
	out := dist.String()

	assert.Contains(t, out, "Y: 1")
	assert.Contains(t, out, "NA: 1")
	assert.Contains(t, out, "Codon_optimized: 0")
	assert.Less(t, strings.Index(out, "Y:"), strings.Index(out, "NA:"))
}

func TestFromStatuses(t *testing.T) {
	statuses := []status.Status{
		translated(status.PM, pattern.Counts{NtPM: 2, AaPM: 1}),
		translated(status.Y, pattern.Counts{}),
		translated(status.NA, pattern.Counts{Gaps: 3, NtPM: 1}),
		status.New(status.NA, pattern.Counts{NtPM: 4}),
	}

	s, err := FromStatuses(statuses)
	require.NoError(t, err)

	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 3, s.Translated)
	assert.Equal(t, 3, s.TotalGaps)
	assert.Equal(t, 7, s.TotalNtPM)
	assert.Equal(t, 1, s.TotalAaPM)
	assert.Equal(t, status.Y, s.Best.Category())
	assert.InDelta(t, status.Y.Weight(), s.MaxScore, 0.0001)
	assert.InDelta(t, status.NA.Weight()-status.GapPenalty, s.MinScore, 0.0001)
	assert.Equal(t, 1, s.Distribution.Count(status.PM))
	assert.Equal(t, 2, s.Distribution.Count(status.NA))
}

func TestFromStatusesMedian(t *testing.T) {
	odd, err := FromStatuses([]status.Status{
		status.New(status.Y, pattern.Counts{}),
		status.New(status.Conserved, pattern.Counts{}),
		status.New(status.PM, pattern.Counts{}),
	})
	require.NoError(t, err)
	assert.InDelta(t, status.Conserved.Weight(), odd.MedianScore, 0.0001)
	assert.InDelta(t, (status.Y.Weight()+status.Conserved.Weight()+status.PM.Weight())/3, odd.MeanScore, 0.0001)

	even, err := FromStatuses([]status.Status{
		status.New(status.Y, pattern.Counts{}),
		status.New(status.PM, pattern.Counts{}),
	})
	require.NoError(t, err)
	assert.InDelta(t, (status.Y.Weight()+status.PM.Weight())/2, even.MedianScore, 0.0001)
}

func TestFromStatusesEmpty(t *testing.T) {
	_, err := FromStatuses(nil)
	require.Error(t, err)
}

func TestSummaryString(t *testing.T) {
	s, err := FromStatuses([]status.Status{
		translated(status.Y, pattern.Counts{}),
		translated(status.PM, pattern.Counts{NtPM: 1, AaPM: 1}),
	})
	require.NoError(t, err)

	out := s.String()
	assert.Contains(t, out, "count: 2 (translated 2)")
	assert.Contains(t, out, "best: Y")
	assert.Contains(t, out, "exact: 50.0%")
	assert.Contains(t, out, "acceptable: 50.0%")
}
