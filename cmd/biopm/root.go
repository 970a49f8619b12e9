package main

import (
	"fmt"
	"io"
	"log"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aria-lang/biopm/internal/analysis"
	"github.com/aria-lang/biopm/internal/config"
	"github.com/aria-lang/biopm/internal/sequence"
	"github.com/aria-lang/biopm/pkg/biopm"
)

// app carries the settings shared by every command.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
	cfg     *config.Config
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	rootCmd := &cobra.Command{
		Use:   "biopm",
		Short: "Classify aligned sequences by their point mutations against a reference",
		Long: `Classify aligned sequences by their point mutations against a reference.

Every query is compared with its aligned reference base by base. Mismatches
are translated codon by codon and the query is given a status, from best to
worst: Y (identical), Conserved (same protein), PM_IN_DB (known protein
change), Codon_optimized, PM (protein change) and NA (gapped or untranslated).`,
		Version:       biopm.Version(),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./biopm.yaml or $HOME/.biopm/biopm.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")
	pf.StringP("format", "o", "text", "output format: text, json or yaml")
	pf.Bool("translate", true, "translate codons to find amino acid changes")
	pf.Int("codon-table", 1, "NCBI genetic code id (1, 2 or 11)")
	pf.String("known-mutations", "", "YAML catalogue of known amino acid changes")
	pf.Int("min-optimized", 0, "synonymous changes needed to call a query codon optimized (0 disables)")
	pf.Int("workers", runtime.NumCPU(), "goroutines used to rank queries")

	// Bind the parameters to viper
	a.v.BindPFlag(config.KeyFormat, pf.Lookup("format"))
	a.v.BindPFlag(config.KeyTranslate, pf.Lookup("translate"))
	a.v.BindPFlag(config.KeyCodonTable, pf.Lookup("codon-table"))
	a.v.BindPFlag(config.KeyKnownMutations, pf.Lookup("known-mutations"))
	a.v.BindPFlag(config.KeyMinOptimized, pf.Lookup("min-optimized"))
	a.v.BindPFlag(config.KeyWorkers, pf.Lookup("workers"))

	rootCmd.AddCommand(
		a.analyzeCmd(),
		a.rankCmd(),
		a.patternCmd(),
		a.categoriesCmd(),
		versionCmd(),
	)
	return rootCmd
}

func (a *app) load() error {
	if err := config.ReadFile(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) analyzer(cmd *cobra.Command) (*analysis.Analyzer, error) {
	var logger *log.Logger
	if a.verbose {
		logger = log.New(cmd.ErrOrStderr(), "biopm: ", log.LstdFlags)
	}
	return a.cfg.Analyzer(logger)
}

// pairFlags holds the inputs of commands that take a single pair.
type pairFlags struct {
	query     string
	reference string
	file      string
}

func (p *pairFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.query, "query", "q", "", "aligned query sequence")
	cmd.Flags().StringVarP(&p.reference, "reference", "r", "", "aligned reference sequence")
	cmd.Flags().StringVarP(&p.file, "file", "f", "", "aligned FASTA file: reference first, then the query")
}

// resolve returns the query id and the aligned pair.
func (p *pairFlags) resolve() (id, query, reference string, err error) {
	if p.file == "" {
		if p.query == "" || p.reference == "" {
			return "", "", "", fmt.Errorf("either --file or both --query and --reference are required")
		}
		return "", p.query, p.reference, nil
	}

	records, err := sequence.ReadFASTA(p.file)
	if err != nil {
		return "", "", "", err
	}
	ref, queries, err := sequence.SplitAlignment(records)
	if err != nil {
		return "", "", "", err
	}
	if len(queries) > 1 {
		return "", "", "", fmt.Errorf("%s holds %d queries, use rank", p.file, len(queries))
	}
	return queries[0].Name(1), queries[0].Bases, ref.Bases, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), biopm.Info())
			return err
		},
	}
}
