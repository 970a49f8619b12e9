package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aria-lang/biopm/internal/status"
)

// CategoryRecord describes one category in ranking order.
type CategoryRecord struct {
	Rank   int     `json:"rank" yaml:"rank"`
	Name   string  `json:"name" yaml:"name"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// CategoryRecords lists the categories best first.
func CategoryRecords() []CategoryRecord {
	cats := status.Categories()
	out := make([]CategoryRecord, len(cats))
	for i, c := range cats {
		out[i] = CategoryRecord{Rank: i + 1, Name: c.String(), Weight: c.Weight()}
	}
	return out
}

// WriteCategories renders the category ladder.
func WriteCategories(w io.Writer, f Format) error {
	records := CategoryRecords()
	switch f {
	case JSON:
		return writeJSON(w, records)
	case YAML:
		return writeYAML(w, records)
	case Text, "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "RANK\tCATEGORY\tWEIGHT")
		for _, r := range records {
			fmt.Fprintf(tw, "%d\t%s\t%.1f\n", r.Rank, r.Name, r.Weight)
		}
		return tw.Flush()
	}
	return &UnknownFormatError{Name: string(f)}
}
