// Command biopm classifies aligned nucleotide sequences by their point
// mutations against a reference.
//
// Usage:
//
//	biopm [command] [flags]
//
// Commands:
//
//	analyze     Classify one query against a reference
//	rank        Rank every query of an aligned FASTA file
//	pattern     Show the mutation pattern of a query
//	categories  List the status categories, best first
//	version     Show version information
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
