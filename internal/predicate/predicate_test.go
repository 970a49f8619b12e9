package predicate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aria-lang/biopm/internal/pattern"
	"github.com/aria-lang/biopm/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogueYAML = `mutations:
  - 18T>P
  - " 2a>t "
`

func TestParseCatalogue(t *testing.T) {
	c, err := ParseCatalogue(strings.NewReader(catalogueYAML))
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Contains("18T>P"))
	assert.True(t, c.Contains("2A>T"))
	assert.True(t, c.Contains("2a>t"))
	assert.False(t, c.Contains("18T>A"))
	assert.Equal(t, []string{"18T>P", "2A>T"}, c.Notations())
}

func TestParseCatalogueEmpty(t *testing.T) {
	c, err := ParseCatalogue(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestParseCatalogueInvalid(t *testing.T) {
	_, err := ParseCatalogue(strings.NewReader("mutations: {not: [a list"))
	require.Error(t, err)
}

func TestLoadCatalogue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "known.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogueYAML), 0o644))

	c, err := LoadCatalogue(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, err = LoadCatalogue(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestCatalogueMarshalRoundTrip(t *testing.T) {
	c := NewCatalogue("5G>A", "1M>I")
	data, err := c.Marshal()
	require.NoError(t, err)

	back, err := ParseCatalogue(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, c.Notations(), back.Notations())
}

func TestCatalogueInDB(t *testing.T) {
	// codon 2 GCC (A) -> ACC (T)
	p, err := pattern.Extract("ATGACC", "ATGGCC", true, nil)
	require.NoError(t, err)
	counts := p.Counts()

	known := NewCatalogue("2A>T")
	ok, err := known.InDB(counts.NtPM, counts.AaPM, counts.Gaps, "ATGACC", "ATGGCC", p)
	require.NoError(t, err)
	assert.True(t, ok)

	unknown := NewCatalogue("2A>S")
	ok, err = unknown.InDB(counts.NtPM, counts.AaPM, counts.Gaps, "ATGACC", "ATGGCC", p)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCatalogueInDBNeedsEveryChange(t *testing.T) {
	// codon 1 ATG (M) -> ATA (I), codon 2 GCC (A) -> ACC (T)
	p, err := pattern.Extract("ATAACC", "ATGGCC", true, nil)
	require.NoError(t, err)
	counts := p.Counts()
	require.Equal(t, 2, counts.AaPM)

	partial := NewCatalogue("2A>T")
	ok, err := partial.InDB(counts.NtPM, counts.AaPM, counts.Gaps, "", "", p)
	require.NoError(t, err)
	assert.False(t, ok)

	full := NewCatalogue("2A>T", "1M>I")
	ok, err = full.InDB(counts.NtPM, counts.AaPM, counts.Gaps, "", "", p)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCatalogueInDBWithoutTranslation(t *testing.T) {
	c := NewCatalogue("2A>T")

	ok, err := c.InDB(1, 1, 0, "", "", nil)
	require.NoError(t, err)
	assert.False(t, ok)

	plain, err := pattern.Extract("ATGACC", "ATGGCC", false, nil)
	require.NoError(t, err)
	ok, err = c.InDB(1, 1, 0, "", "", plain)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCatalogueWithClassifier(t *testing.T) {
	p, err := pattern.Extract("ATGACC", "ATGGCC", true, nil)
	require.NoError(t, err)

	c := status.Classifier{InDB: NewCatalogue("2A>T").Predicate()}
	cat, err := c.Classify(status.Input{Counts: p.Counts(), Translated: true, Pattern: p})
	require.NoError(t, err)
	assert.Equal(t, status.PMInDB, cat)
}

func TestMinChanges(t *testing.T) {
	m := MinChanges(3)

	ok, err := m.Optimized(3, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Optimized(2, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = m.Optimized(5, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NotNil(t, m.Predicate())
	assert.Nil(t, MinChanges(0).Predicate())

	ok, err = MinChanges(0).Optimized(100, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}
