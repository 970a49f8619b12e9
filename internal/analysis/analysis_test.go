package analysis

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/aria-lang/biopm/internal/codon"
	"github.com/aria-lang/biopm/internal/pattern"
	"github.com/aria-lang/biopm/internal/predicate"
	"github.com/aria-lang/biopm/internal/sequence"
	"github.com/aria-lang/biopm/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeScenarios(t *testing.T) {
	ref60 := strings.Repeat("ATGGCC", 10)

	tests := []struct {
		name      string
		query     string
		reference string
		want      status.Category
		gaps      int
		ntPM      int
		aaPM      int
	}{
		{"identical", ref60, ref60, status.Y, 0, 0, 0},
		{"synonymous", "ATGGGCGCT", "ATGGGCGCC", status.Conserved, 0, 1, 0},
		{"missense", "ATGACC", "ATGGCC", status.PM, 0, 1, 1},
		{"gap", "ATG-CC", "ATGGCC", status.NA, 1, 0, 0},
	}

	a := NewAnalyzer(nil, status.Classifier{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := a.Analyze(tt.query, tt.reference, true)
			require.NoError(t, err)

			assert.Equal(t, tt.want, st.Category())
			assert.Equal(t, tt.gaps, st.Gaps())
			assert.Equal(t, tt.ntPM, st.NtPM())
			aa, ok := st.AaPM()
			assert.True(t, ok)
			assert.Equal(t, tt.aaPM, aa)
			assert.Equal(t, len(tt.query), st.Length())
			assert.True(t, st.Translated())
			require.NotNil(t, st.Pattern())
		})
	}
}

func TestAnalyzeUntranslated(t *testing.T) {
	a := NewAnalyzer(nil, status.Classifier{})

	st, err := a.Analyze("ATGGCC", "ATGGCC", false)
	require.NoError(t, err)
	assert.Equal(t, status.NA, st.Category())
	_, ok := st.AaPM()
	assert.False(t, ok)
	assert.False(t, st.Translated())
}

func TestAnalyzeErrors(t *testing.T) {
	a := NewAnalyzer(nil, status.Classifier{})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := a.Analyze("ATG", "ATGGCC", true)
		var lm *sequence.LengthMismatchError
		assert.True(t, errors.As(err, &lm))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := a.Analyze("", "ATG", true)
		var empty *sequence.EmptySequenceError
		assert.True(t, errors.As(err, &empty))
	})

	t.Run("incomplete codon", func(t *testing.T) {
		_, err := a.Analyze("ATGG", "ATGG", true)
		var cl *pattern.InvalidCodonLengthError
		assert.True(t, errors.As(err, &cl))
	})

	t.Run("double gap", func(t *testing.T) {
		_, err := a.Analyze("AT-", "AT-", false)
		var corrupt *CorruptAlignmentError
		require.True(t, errors.As(err, &corrupt))
		assert.Equal(t, 3, corrupt.Position)
		assert.Contains(t, err.Error(), "position 3")
	})

	t.Run("non-ascii query", func(t *testing.T) {
		for _, q := range []string{"A\xffA", "ɐA"} {
			require.NotPanics(t, func() {
				_, err := a.Analyze(q, "AAA", true)
				var te *pattern.TranslateError
				assert.True(t, errors.As(err, &te), "%q", q)
			})
		}
	})

	t.Run("predicate failure", func(t *testing.T) {
		boom := errors.New("lookup failed")
		failing := NewAnalyzer(nil, status.Classifier{
			InDB: func(int, int, int, string, string, *pattern.Pattern) (bool, error) { return false, boom },
		})
		_, err := failing.Analyze("ATGACC", "ATGGCC", true)
		assert.ErrorIs(t, err, boom)
	})
}

func TestCheckConsistency(t *testing.T) {
	assert.NoError(t, checkConsistency("AT-C", "ATGC", pattern.Counts{Gaps: 1}))
	assert.NoError(t, checkConsistency("ATGC", "ATGC", pattern.Counts{}))

	err := checkConsistency("A-GC", "AT-C", pattern.Counts{Gaps: 1})
	var corrupt *CorruptAlignmentError
	require.True(t, errors.As(err, &corrupt))
	assert.Equal(t, 0, corrupt.Position)
	assert.EqualError(t, err, "corrupt alignment: pattern holds 1 gaps, sequences hold 2")

	err = checkConsistency("A--C", "AT-C", pattern.Counts{Gaps: 2})
	require.True(t, errors.As(err, &corrupt))
	assert.Equal(t, 3, corrupt.Position)
}

func TestAnalyzeWithPredicates(t *testing.T) {
	a := NewAnalyzer(nil, status.Classifier{
		InDB:      predicate.NewCatalogue("2A>T").Predicate(),
		Optimized: predicate.MinChanges(2).Predicate(),
	})

	st, err := a.Analyze("ATGACC", "ATGGCC", true)
	require.NoError(t, err)
	assert.Equal(t, status.PMInDB, st.Category())

	// CTG and TTA both encode leucine
	st, err = a.Analyze("TTAGCC", "CTGGCC", true)
	require.NoError(t, err)
	assert.Equal(t, status.CodonOptimized, st.Category())
}

func TestAnalyzeMitochondrialTable(t *testing.T) {
	mito, err := codon.ByID(2)
	require.NoError(t, err)

	// ATA encodes methionine in vertebrate mitochondria
	a := NewAnalyzer(mito, status.Classifier{})
	st, err := a.Analyze("ATAGCC", "ATGGCC", true)
	require.NoError(t, err)
	assert.Equal(t, status.Conserved, st.Category())

	std := NewAnalyzer(nil, status.Classifier{})
	st, err = std.Analyze("ATAGCC", "ATGGCC", true)
	require.NoError(t, err)
	assert.Equal(t, status.PM, st.Category())
}

func TestRank(t *testing.T) {
	var buf bytes.Buffer
	a := NewAnalyzer(nil, status.Classifier{})
	a.Workers = 3
	a.Logger = log.New(&buf, "", 0)

	queries := []Query{
		{ID: "gap", Bases: "ATG-CC"},
		{ID: "short", Bases: "ATGG"},
		{ID: "missense", Bases: "ATGACC"},
		{ID: "identical", Bases: "ATGGCC"},
		{ID: "synonymous", Bases: "ATGGCT"},
	}

	results, err := a.Rank(context.Background(), "ATGGCC", queries, true)
	require.NoError(t, err)
	require.Len(t, results, len(queries))

	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"identical", "synonymous", "missense", "gap", "short"}, ids)

	assert.Equal(t, status.Y, results[0].Status.Category())
	assert.Equal(t, 3, results[0].Index)
	assert.Error(t, results[4].Err)
	assert.Equal(t, 1, results[4].Index)

	assert.Len(t, Statuses(results), 4)
	assert.Contains(t, buf.String(), "ranked 5 queries (1 failed)")
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	a := NewAnalyzer(nil, status.Classifier{})
	a.Workers = 4

	queries := make([]Query, 20)
	for i := range queries {
		queries[i] = Query{ID: string(rune('a' + i)), Bases: "ATGGCC"}
	}

	results, err := a.Rank(context.Background(), "ATGGCC", queries, true)
	require.NoError(t, err)
	for i, r := range results {
		assert.Equal(t, i, r.Index)
	}
}

func TestRankCancelled(t *testing.T) {
	a := NewAnalyzer(nil, status.Classifier{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Rank(ctx, "ATGGCC", []Query{{ID: "q", Bases: "ATGGCC"}}, true)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRankEmpty(t *testing.T) {
	a := NewAnalyzer(nil, status.Classifier{})

	results, err := a.Rank(context.Background(), "ATGGCC", nil, true)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func BenchmarkAnalyze(b *testing.B) {
	ref := strings.Repeat("ATGGCCGGCGCC", 100)
	query := strings.Replace(ref, "GCC", "GCT", 50)
	a := NewAnalyzer(nil, status.Classifier{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.Analyze(query, ref, true)
	}
}

func TestQueriesFrom(t *testing.T) {
	named, err := sequence.WithMetadata("ATGGCC", "q1", "")
	require.NoError(t, err)
	anon, err := sequence.New("ATG-CC")
	require.NoError(t, err)

	got := QueriesFrom([]*sequence.Sequence{named, anon})
	assert.Equal(t, []Query{
		{ID: "q1", Bases: "ATGGCC"},
		{ID: "seq2", Bases: "ATG-CC"},
	}, got)
}
