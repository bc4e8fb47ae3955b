package scraper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/engagement-cli/internal/model"
)

func TestDefaultTables_Valid(t *testing.T) {
	require.NoError(t, DefaultTables().Validate())
}

func TestLoadTables_EmptyPathReturnsDefaults(t *testing.T) {
	tables, err := LoadTables("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTables(), tables)
}

func TestLoadTables_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	yaml := `
category_factors:
  hiring: 9.9
  podcast: 1.5
source_weights:
  linkedin: 2.0
default_source_weight: 0.8
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	tables, err := LoadTables(path)
	require.NoError(t, err)

	assert.Equal(t, 9.9, tables.CategoryFactors["hiring"])
	assert.Equal(t, 1.5, tables.CategoryFactors["podcast"])
	assert.Equal(t, 2.0, tables.SourceWeights["linkedin"])
	assert.Equal(t, 0.8, tables.DefaultSourceWeight)

	// Untouched entries keep their default values.
	assert.Equal(t, 2.4, tables.CategoryFactors["news"])
	assert.Equal(t, 1.25, tables.SourceWeights["crunchbase"])
	assert.Equal(t, 24.0, tables.RunsPerDay[model.FrequencyHourly])
}

func TestLoadTables_MissingFile(t *testing.T) {
	_, err := LoadTables(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadTables_RejectsInvalidEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("category_factors:\n  hiring: -1\n"), 0o644))

	_, err := LoadTables(path)
	assert.Error(t, err)
}

func TestLoadTables_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("category_factors: [not a map"), 0o644))

	_, err := LoadTables(path)
	assert.Error(t, err)
}

func TestValidate_MissingFrequency(t *testing.T) {
	tables := DefaultTables()
	delete(tables.RunsPerDay, model.FrequencyWeekly)

	assert.Error(t, tables.Validate())
}

func TestValidate_NonPositiveDefaults(t *testing.T) {
	tables := DefaultTables()
	tables.DefaultCategoryFactor = 0

	assert.Error(t, tables.Validate())
}
