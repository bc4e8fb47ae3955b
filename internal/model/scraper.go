package model

// Frequency is how often a scraper assignment runs.
type Frequency string

const (
	FrequencyHourly Frequency = "hourly"
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// ScraperSource is one configured source within a scraper assignment.
type ScraperSource struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	Limit   int    `json:"limit"` // requested signals per run
}

// ScraperAssignment configures a recurring signal scrape.
type ScraperAssignment struct {
	Frequency         Frequency       `json:"frequency"`
	Sources           []ScraperSource `json:"sources"`
	MaxSignalsPerRun  int             `json:"max_signals_per_run"`
	BaseCreditsPerRun int             `json:"base_credits_per_run"`
	Category          string          `json:"category"`
}

// SourceEstimate is the projected consumption of a single source.
type SourceEstimate struct {
	Source         string `json:"source"`
	Enabled        bool   `json:"enabled"`
	RequestedLimit int    `json:"requested_limit"`
	SignalsPerRun  int    `json:"signals_per_run"`
	SignalsPerDay  int    `json:"signals_per_day"`
	CreditsPerRun  int    `json:"credits_per_run"`
	CreditsPerDay  int    `json:"credits_per_day"`
}

// ScraperEstimate is the projected daily consumption of an assignment.
type ScraperEstimate struct {
	RunsPerDay    float64          `json:"runs_per_day"`
	SignalsPerRun int              `json:"signals_per_run"`
	SignalsPerDay int              `json:"signals_per_day"`
	CreditsPerRun int              `json:"credits_per_run"`
	CreditsPerDay int              `json:"credits_per_day"`
	Sources       []SourceEstimate `json:"sources"`
}
