package analysis

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/aria-lang/biopm/internal/sequence"
	"github.com/aria-lang/biopm/internal/status"
)

// Query is one sequence aligned against the shared reference.
type Query struct {
	ID    string
	Bases string
}

// QueriesFrom converts parsed records. Records without an ID are named by
// their 1-based position.
func QueriesFrom(records []*sequence.Sequence) []Query {
	out := make([]Query, len(records))
	for i, rec := range records {
		out[i] = Query{ID: rec.Name(i + 1), Bases: rec.Bases}
	}
	return out
}

// Result is the outcome for one query. Err is set instead of Status when the
// query could not be analyzed.
type Result struct {
	Index  int // position in the input
	ID     string
	Status status.Status
	Err    error
}

// Rank analyzes every query against reference on a bounded pool of
// goroutines and returns the results best first. Failed queries are placed
// last, in input order. Cancelling ctx stops dispatching new queries.
func (a *Analyzer) Rank(ctx context.Context, reference string, queries []Query, translate bool) ([]Result, error) {
	workers := a.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(queries) {
		workers = len(queries)
	}

	start := time.Now()
	results := make([]Result, len(queries))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				st, err := a.Analyze(queries[i].Bases, reference, translate)
				results[i] = Result{Index: i, ID: queries[i].ID, Status: st, Err: err}
			}
		}()
	}

	var cancelled error
dispatch:
	for i := range queries {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if cancelled != nil {
		return nil, cancelled
	}

	SortResults(results)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	a.logf("ranked %d queries (%d failed) on %d workers in %s",
		len(queries), failed, workers, time.Since(start))

	return results, nil
}

// SortResults orders results best first, failures last in input order.
func SortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		ri, rj := results[i], results[j]
		switch {
		case ri.Err != nil && rj.Err != nil:
			return ri.Index < rj.Index
		case ri.Err != nil:
			return false
		case rj.Err != nil:
			return true
		}
		if c := status.Compare(ri.Status, rj.Status); c != 0 {
			return c > 0
		}
		return ri.Index < rj.Index
	})
}

// Statuses returns the statuses of successful results in order.
func Statuses(results []Result) []status.Status {
	out := make([]status.Status, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			out = append(out, r.Status)
		}
	}
	return out
}
