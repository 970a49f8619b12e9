package pattern

import (
	"fmt"

	"github.com/aria-lang/biopm/internal/sequence"
)

// FormatMutation renders one mutation in HGVS-like notation:
//
//	(109, A, G) -> 109A>G
//	(200, T, -) -> 200delT
//	(360, -, C) -> 360insC
//	(450, A, A) -> 450A=A
func FormatMutation(pos int, ref, query byte) string {
	return FormatMutationGap(pos, ref, query, sequence.Gap)
}

// FormatMutationGap is FormatMutation with a custom gap symbol.
func FormatMutationGap(pos int, ref, query, gap byte) string {
	switch {
	case ref == query:
		return fmt.Sprintf("%d%c=%c", pos, ref, query)
	case ref == gap:
		return fmt.Sprintf("%dins%c", pos, query)
	case query == gap:
		return fmt.Sprintf("%ddel%c", pos, ref)
	default:
		return fmt.Sprintf("%d%c>%c", pos, ref, query)
	}
}
