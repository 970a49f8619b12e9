// Package config holds the application wide settings, unmarshalled from
// Viper (defaults, biopm.yaml, BIOPM_ environment variables and flags).
package config

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/aria-lang/biopm/internal/analysis"
	"github.com/aria-lang/biopm/internal/codon"
	"github.com/aria-lang/biopm/internal/predicate"
	"github.com/aria-lang/biopm/internal/report"
	"github.com/aria-lang/biopm/internal/status"
)

// Setting keys.
const (
	KeyTranslate      = "translate"
	KeyCodonTable     = "codon-table"
	KeyWorkers        = "workers"
	KeyFormat         = "format"
	KeyKnownMutations = "known-mutations"
	KeyMinOptimized   = "optimized.min-nt-pm"
	KeyServerHost     = "server.host"
	KeyServerPort     = "server.port"
)

// OptimizedConfig tunes the codon optimization heuristic.
type OptimizedConfig struct {
	// minimum synonymous substitutions to call a query codon optimized,
	// 0 disables the heuristic
	MinNtPM int `mapstructure:"min-nt-pm"`
}

// ServerConfig is for the HTTP API.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Config is the root-level settings struct.
type Config struct {
	// translate codons to compute amino acid changes
	Translate bool `mapstructure:"translate"`

	// NCBI genetic code id
	CodonTable int `mapstructure:"codon-table"`

	// goroutines used when ranking many queries
	Workers int `mapstructure:"workers"`

	// output format: text, json or yaml
	Format string `mapstructure:"format"`

	// path to a YAML catalogue of known amino acid changes
	KnownMutations string `mapstructure:"known-mutations"`

	Optimized OptimizedConfig `mapstructure:"optimized"`
	Server    ServerConfig    `mapstructure:"server"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyTranslate, true)
	v.SetDefault(KeyCodonTable, 1)
	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetDefault(KeyFormat, string(report.Text))
	v.SetDefault(KeyKnownMutations, "")
	v.SetDefault(KeyMinOptimized, 0)
	v.SetDefault(KeyServerHost, "localhost")
	v.SetDefault(KeyServerPort, 8080)
}

// NewViper returns a Viper instance with defaults, the biopm.yaml search
// path and BIOPM_ environment variables (dashes and dots become
// underscores, e.g. BIOPM_CODON_TABLE).
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetConfigName("biopm")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join("$HOME", ".biopm"))

	v.SetEnvPrefix("BIOPM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile reads the settings file. An explicit path must exist; without
// one a missing biopm.yaml is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	}
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if path == "" && errors.As(err, &notFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Load decodes and validates the settings.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks ranges and names.
func (c *Config) Validate() error {
	if _, err := codon.ByID(c.CodonTable); err != nil {
		return err
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", c.Workers)
	}
	if c.Optimized.MinNtPM < 0 {
		return fmt.Errorf("optimized.min-nt-pm must not be negative: %d", c.Optimized.MinNtPM)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}

// OutputFormat returns the parsed output format.
func (c *Config) OutputFormat() report.Format {
	f, err := report.ParseFormat(c.Format)
	if err != nil {
		return report.Text
	}
	return f
}

// Address returns host:port for the HTTP API.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Classifier builds the classifier from the configured predicates.
func (c *Config) Classifier() (status.Classifier, error) {
	var cl status.Classifier
	if c.KnownMutations != "" {
		cat, err := predicate.LoadCatalogue(c.KnownMutations)
		if err != nil {
			return cl, err
		}
		cl.InDB = cat.Predicate()
	}
	cl.Optimized = predicate.MinChanges(c.Optimized.MinNtPM).Predicate()
	return cl, nil
}

// Analyzer builds an analyzer from the settings. logger may be nil.
func (c *Config) Analyzer(logger *log.Logger) (*analysis.Analyzer, error) {
	table, err := codon.ByID(c.CodonTable)
	if err != nil {
		return nil, err
	}
	cl, err := c.Classifier()
	if err != nil {
		return nil, err
	}

	a := analysis.NewAnalyzer(table, cl)
	if c.Workers > 0 {
		a.Workers = c.Workers
	}
	a.Logger = logger
	return a, nil
}
