package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAnalyzeCommand(t *testing.T) {
	out, err := run(t, "analyze", "-q", "ATGACC", "-r", "ATGGCC", "--id", "v1")
	require.NoError(t, err)
	assert.Contains(t, out, "v1")
	assert.Contains(t, out, "PM")
}

func TestAnalyzeCommandJSON(t *testing.T) {
	out, err := run(t, "analyze", "-q", "ATGGCT", "-r", "ATGGCC", "-o", "json")
	require.NoError(t, err)

	var decoded struct {
		Results []struct {
			Status string `json:"status"`
			NtPM   int    `json:"nt_pm"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Results, 1)
	assert.Equal(t, "Conserved", decoded.Results[0].Status)
	assert.Equal(t, 1, decoded.Results[0].NtPM)
}

func TestAnalyzeCommandUntranslated(t *testing.T) {
	out, err := run(t, "analyze", "-q", "ATGGCC", "-r", "ATGGCC", "--translate=false")
	require.NoError(t, err)
	assert.Contains(t, out, "NA")
}

func TestAnalyzeCommandFile(t *testing.T) {
	path := writeFile(t, "pair.fasta", ">ref\nATGGCC\n>q1\nATG-CC\n")

	out, err := run(t, "analyze", "-f", path, "--pattern")
	require.NoError(t, err)
	assert.Contains(t, out, "q1")
	assert.Contains(t, out, "NA")
	assert.Contains(t, out, "4delG")
}

func TestAnalyzeCommandErrors(t *testing.T) {
	_, err := run(t, "analyze", "-q", "ATG")
	require.Error(t, err)

	_, err = run(t, "analyze", "-q", "ATG", "-r", "ATGGCC")
	require.Error(t, err)

	_, err = run(t, "analyze", "-q", "ATG", "-r", "ATG", "--codon-table", "42")
	require.Error(t, err)

	path := writeFile(t, "many.fasta", ">ref\nATG\n>a\nATG\n>b\nATA\n")
	_, err = run(t, "analyze", "-f", path)
	require.Error(t, err)
}

func TestAnalyzeCommandKnownMutations(t *testing.T) {
	known := writeFile(t, "known.yaml", "mutations:\n  - 2A>T\n")

	out, err := run(t, "analyze", "-q", "ATGACC", "-r", "ATGGCC", "--known-mutations", known)
	require.NoError(t, err)
	assert.Contains(t, out, "PM_IN_DB")
}

func TestRankCommand(t *testing.T) {
	path := writeFile(t, "aln.fasta", `>ref
ATGGCC
>missense
ATGACC
>same
ATGGCC
>broken
ATGG
`)

	out, err := run(t, "rank", "-f", path)
	require.NoError(t, err)
	assert.Less(t, bytes.Index([]byte(out), []byte("same")), bytes.Index([]byte(out), []byte("missense")))
	assert.Contains(t, out, "Failed:")
	assert.Contains(t, out, "broken")
	assert.Contains(t, out, "Summary {")

	out, err = run(t, "rank", "-f", path, "--top", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "same")
	assert.NotContains(t, out, "missense")
}

func TestRankCommandRequiresFile(t *testing.T) {
	_, err := run(t, "rank")
	require.Error(t, err)
}

func TestPatternCommand(t *testing.T) {
	out, err := run(t, "pattern", "-q", "ATGACC", "-r", "ATGGCC")
	require.NoError(t, err)
	assert.Contains(t, out, "4G>A")
	assert.Contains(t, out, "2A>T")

	out, err = run(t, "pattern", "-q", "ATGGCC", "-r", "ATGGCC")
	require.NoError(t, err)
	assert.Contains(t, out, "no mutations")
}

func TestCategoriesCommand(t *testing.T) {
	out, err := run(t, "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "PM_IN_DB")
	assert.Less(t, bytes.Index([]byte(out), []byte("Conserved")), bytes.Index([]byte(out), []byte("NA")))
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "biopm v")
}

func TestConfigFlag(t *testing.T) {
	cfg := writeFile(t, "biopm.yaml", "format: yaml\n")

	out, err := run(t, "--config", cfg, "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Y")
}
