package stats_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/tf2stats/internal/stats"
)

const catalogJSON = `{
	"stats": [
		{"name": "Class.accum.iKills", "description": "Kills as Class"},
		{"name": "TF_SCOUT_LONG_DISTANCE_RUNNER_STAT", "description": "Distance run"}
	]
}`

const catalogYAML = `
stats:
  - name: Class.accum.iKills
    description: Kills as Class
  - name: TF_SCOUT_LONG_DISTANCE_RUNNER_STAT
    description: Distance run
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestParseCatalogJSON(t *testing.T) {
	c, err := stats.ParseCatalogJSON([]byte(catalogJSON))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	d, ok := c.Lookup("TF_SCOUT_LONG_DISTANCE_RUNNER_STAT")
	assert.True(t, ok)
	assert.Equal(t, "Distance run", d)
}

func TestParseCatalogYAML(t *testing.T) {
	c, err := stats.ParseCatalogYAML([]byte(catalogYAML))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	d, ok := c.Match("Class.accum.iKills")
	assert.True(t, ok)
	assert.Equal(t, "Kills as Class", d)
}

func TestParseCatalogJSON_Invalid(t *testing.T) {
	_, err := stats.ParseCatalogJSON([]byte(`{"stats": [`))
	assert.Error(t, err)
}

func TestLoadCatalog_ByExtension(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "stat_names.json")
	yamlPath := filepath.Join(dir, "stat_names.yaml")
	writeFile(t, jsonPath, catalogJSON)
	writeFile(t, yamlPath, catalogYAML)

	fromJSON, err := stats.LoadCatalog(jsonPath)
	require.NoError(t, err)
	fromYAML, err := stats.LoadCatalog(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, fromJSON.Len(), fromYAML.Len())
}

func TestLoadCatalog_Missing(t *testing.T) {
	_, err := stats.LoadCatalog(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestCatalog_DuplicateNamesLastWins(t *testing.T) {
	c := stats.NewCatalog([]stats.CatalogEntry{
		{Name: "A", Description: "first"},
		{Name: "A", Description: "second"},
	})
	assert.Equal(t, 1, c.Len())
	d, _ := c.Lookup("A")
	assert.Equal(t, "second", d)
}

func TestCatalog_MatchFirstInNameOrder(t *testing.T) {
	c := stats.NewCatalog([]stats.CatalogEntry{
		{Name: `Class\.accum\.i.*`, Description: "wide"},
		{Name: `Class\.accum\.iK.*`, Description: "narrow"},
	})
	d, ok := c.Match("Class.accum.iKills")
	require.True(t, ok)
	// `Class\.accum\.i.*` sorts before `Class\.accum\.iK.*`
	assert.Equal(t, "wide", d)
}

func TestCatalog_InvalidPatternMatchesLiterally(t *testing.T) {
	c := stats.NewCatalog([]stats.CatalogEntry{{Name: "weird(name", Description: "literal"}})
	d, ok := c.Match("weird(name")
	assert.True(t, ok)
	assert.Equal(t, "literal", d)
	_, ok = c.Match("weirdname")
	assert.False(t, ok)
}

func TestEmptyCatalog(t *testing.T) {
	c := stats.EmptyCatalog()
	assert.Zero(t, c.Len())
	_, ok := c.Match("anything")
	assert.False(t, ok)
}

func TestLoadCatalog_ShippedFile(t *testing.T) {
	c, err := stats.LoadCatalog(filepath.Join("..", "..", "stat_names.json"))
	require.NoError(t, err)
	r := stats.NewResolver(c)
	assert.Equal(t, "Total kills as Pyro",
		r.DescribeClassStat(stats.ClassStat{FullName: "Pyro.accum.iNumberOfKills", Class: stats.ClassPyro}))
	assert.Equal(t, "Total Mann vs. Machine time as Medic",
		r.DescribeClassStat(stats.ClassStat{FullName: "Medic.mvm.accum.iPlayTime", Class: stats.ClassMedic, Mode: stats.ModeCoop}))
}
