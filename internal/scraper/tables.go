// Package scraper estimates daily signal and credit consumption for a
// scraper assignment from data-driven cost tables.
package scraper

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/engagement-cli/internal/model"
)

// Tables holds the estimator's lookup tables. They are loaded and
// validated once at process start, never mutated afterwards.
type Tables struct {
	RunsPerDay            map[model.Frequency]float64 `yaml:"runs_per_day"`
	CategoryFactors       map[string]float64          `yaml:"category_factors"`
	SourceWeights         map[string]float64          `yaml:"source_weights"`
	DefaultCategoryFactor float64                     `yaml:"default_category_factor"`
	DefaultSourceWeight   float64                     `yaml:"default_source_weight"`
}

// DefaultTables returns the built-in cost tables.
func DefaultTables() Tables {
	return Tables{
		RunsPerDay: map[model.Frequency]float64{
			model.FrequencyHourly: 24,
			model.FrequencyDaily:  1,
			model.FrequencyWeekly: 1.0 / 7.0,
		},
		CategoryFactors: map[string]float64{
			"news":            2.4,
			"hiring":          2.8,
			"technographic":   3.1,
			"funding":         3.6,
			"social":          4.2,
			"reviews":         4.7,
			"intent":          5.3,
			"executive_moves": 5.8,
		},
		SourceWeights: map[string]float64{
			"company_site": 0.9,
			"rss":          0.95,
			"twitter":      1.0,
			"job_boards":   1.05,
			"news_api":     1.1,
			"github":       1.15,
			"crunchbase":   1.25,
			"linkedin":     1.35,
		},
		DefaultCategoryFactor: 3.0,
		DefaultSourceWeight:   1.0,
	}
}

// LoadTables reads cost tables from a YAML file, filling gaps from the
// defaults and validating the result. An empty path returns defaults.
func LoadTables(path string) (Tables, error) {
	t := DefaultTables()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, eris.Wrapf(err, "scraper: read tables %s", path)
	}

	var loaded Tables
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return Tables{}, eris.Wrap(err, "scraper: parse tables")
	}

	// Merge: the file overrides defaults key by key.
	for k, v := range loaded.RunsPerDay {
		t.RunsPerDay[k] = v
	}
	for k, v := range loaded.CategoryFactors {
		t.CategoryFactors[k] = v
	}
	for k, v := range loaded.SourceWeights {
		t.SourceWeights[k] = v
	}
	if loaded.DefaultCategoryFactor > 0 {
		t.DefaultCategoryFactor = loaded.DefaultCategoryFactor
	}
	if loaded.DefaultSourceWeight > 0 {
		t.DefaultSourceWeight = loaded.DefaultSourceWeight
	}

	if err := t.Validate(); err != nil {
		return Tables{}, err
	}
	return t, nil
}

// Validate checks that every table entry is positive and every known
// frequency has a runs-per-day entry.
func (t Tables) Validate() error {
	for _, f := range []model.Frequency{model.FrequencyHourly, model.FrequencyDaily, model.FrequencyWeekly} {
		v, ok := t.RunsPerDay[f]
		if !ok {
			return eris.Errorf("scraper: missing runs_per_day for %s", f)
		}
		if v <= 0 {
			return eris.Errorf("scraper: runs_per_day for %s must be positive", f)
		}
	}
	for k, v := range t.CategoryFactors {
		if v <= 0 {
			return eris.Errorf("scraper: category factor %s must be positive", k)
		}
	}
	for k, v := range t.SourceWeights {
		if v <= 0 {
			return eris.Errorf("scraper: source weight %s must be positive", k)
		}
	}
	if t.DefaultCategoryFactor <= 0 || t.DefaultSourceWeight <= 0 {
		return eris.New("scraper: default factor and weight must be positive")
	}
	return nil
}

func (t Tables) categoryFactor(category string) float64 {
	if f, ok := t.CategoryFactors[category]; ok {
		return f
	}
	return t.DefaultCategoryFactor
}

func (t Tables) sourceWeight(name string) float64 {
	if w, ok := t.SourceWeights[name]; ok {
		return w
	}
	return t.DefaultSourceWeight
}

func (t Tables) runsPerDay(f model.Frequency) float64 {
	if r, ok := t.RunsPerDay[f]; ok {
		return r
	}
	// Unknown frequency: safest assumption is a daily cadence.
	return 1
}
