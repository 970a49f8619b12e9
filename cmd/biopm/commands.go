package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aria-lang/biopm/internal/analysis"
	"github.com/aria-lang/biopm/internal/codon"
	"github.com/aria-lang/biopm/internal/pattern"
	"github.com/aria-lang/biopm/internal/report"
	"github.com/aria-lang/biopm/internal/sequence"
)

func (a *app) analyzeCmd() *cobra.Command {
	var pair pairFlags
	var id string
	var showPattern bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Classify one query against its aligned reference",
		Example: `  biopm analyze -q ATGACC -r ATGGCC
  biopm analyze -f pair.fasta -o json --pattern`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fileID, query, reference, err := pair.resolve()
			if err != nil {
				return err
			}
			if id == "" {
				id = fileID
			}

			an, err := a.analyzer(cmd)
			if err != nil {
				return err
			}
			st, err := an.Analyze(query, reference, a.cfg.Translate)
			if err != nil {
				return err
			}
			return report.Single(id, st, showPattern).Write(cmd.OutOrStdout(), a.cfg.OutputFormat())
		},
	}

	pair.register(cmd)
	cmd.Flags().StringVar(&id, "id", "", "name shown for the query")
	cmd.Flags().BoolVarP(&showPattern, "pattern", "p", false, "include the mutation pattern")
	return cmd
}

func (a *app) rankCmd() *cobra.Command {
	var file string
	var top int
	var showPattern bool

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank every query of an aligned FASTA file, best first",
		Long: `Rank every query of an aligned FASTA file, best first.

The first record is the reference; every other record is a query aligned
against it. Queries that cannot be analyzed are listed after the ranking.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := sequence.ReadFASTA(file)
			if err != nil {
				return err
			}
			ref, queries, err := sequence.SplitAlignment(records)
			if err != nil {
				return err
			}

			an, err := a.analyzer(cmd)
			if err != nil {
				return err
			}
			results, err := an.Rank(cmd.Context(), ref.Bases, analysis.QueriesFrom(queries), a.cfg.Translate)
			if err != nil {
				return err
			}

			rep := report.FromResults(results, showPattern)
			if top > 0 && top < len(rep.Results) {
				rep.Results = rep.Results[:top]
			}
			return rep.Write(cmd.OutOrStdout(), a.cfg.OutputFormat())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "aligned FASTA file: reference first, then queries")
	cmd.Flags().IntVarP(&top, "top", "n", 0, "show only the n best queries (0 shows all)")
	cmd.Flags().BoolVarP(&showPattern, "pattern", "p", false, "include mutation patterns")
	cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) patternCmd() *cobra.Command {
	var pair pairFlags

	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Show the mutation pattern of a query against its reference",
		Example: `  biopm pattern -q ATG-CC -r ATGGCC
  biopm pattern -q TTAGCC -r CTGGCC --codon-table 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, query, reference, err := pair.resolve()
			if err != nil {
				return err
			}
			table, err := codon.ByID(a.cfg.CodonTable)
			if err != nil {
				return err
			}
			p, err := pattern.Extract(query, reference, a.cfg.Translate, table)
			if err != nil {
				return err
			}
			if p.Empty() && a.cfg.OutputFormat() == report.Text {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no mutations")
				return err
			}
			return report.WritePattern(cmd.OutOrStdout(), p.Record(), a.cfg.OutputFormat())
		},
	}

	pair.register(cmd)
	return cmd
}

func (a *app) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the status categories, best first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report.WriteCategories(cmd.OutOrStdout(), a.cfg.OutputFormat())
		},
	}
}
