package scraper

import (
	"math"

	"github.com/sells-group/engagement-cli/internal/model"
)

// Estimator projects signal and credit consumption for scraper
// assignments. Pure and total: defined for all valid configurations.
type Estimator struct {
	tables Tables
}

// NewEstimator creates an Estimator over the given tables.
func NewEstimator(t Tables) *Estimator {
	return &Estimator{tables: t}
}

// Estimate computes projected per-run and per-day consumption for an
// assignment, with a per-source breakdown. When the summed per-source
// limits exceed the per-run cap, every source's contribution shrinks
// proportionally. A cap of zero means uncapped.
func (e *Estimator) Estimate(a model.ScraperAssignment) model.ScraperEstimate {
	a = sanitizeAssignment(a)
	runs := e.tables.runsPerDay(a.Frequency)
	factor := e.tables.categoryFactor(a.Category)

	requested := 0
	for _, s := range a.Sources {
		if s.Enabled && s.Limit > 0 {
			requested += s.Limit
		}
	}

	capped := requested
	if a.MaxSignalsPerRun > 0 && requested > a.MaxSignalsPerRun {
		capped = a.MaxSignalsPerRun
	}

	scale := 0.0
	if requested > 0 {
		scale = float64(capped) / float64(requested)
	}

	breakdown := make([]model.SourceEstimate, 0, len(a.Sources))
	creditsPerRun := float64(a.BaseCreditsPerRun)
	for _, s := range a.Sources {
		se := model.SourceEstimate{
			Source:         s.Name,
			Enabled:        s.Enabled,
			RequestedLimit: s.Limit,
		}
		if s.Enabled && s.Limit > 0 {
			signals := float64(s.Limit) * scale
			credits := signals * factor * e.tables.sourceWeight(s.Name)
			creditsPerRun += credits

			se.SignalsPerRun = roundNonNegative(signals)
			se.SignalsPerDay = roundNonNegative(signals * runs)
			se.CreditsPerRun = roundNonNegative(credits)
			se.CreditsPerDay = roundNonNegative(credits * runs)
		}
		breakdown = append(breakdown, se)
	}

	return model.ScraperEstimate{
		RunsPerDay:    runs,
		SignalsPerRun: capped,
		SignalsPerDay: roundNonNegative(float64(capped) * runs),
		CreditsPerRun: roundNonNegative(creditsPerRun),
		CreditsPerDay: roundNonNegative(creditsPerRun * runs),
		Sources:       breakdown,
	}
}

// sanitizeAssignment coerces counters into valid ranges before the
// formulas run.
func sanitizeAssignment(a model.ScraperAssignment) model.ScraperAssignment {
	out := a
	if out.MaxSignalsPerRun < 0 {
		out.MaxSignalsPerRun = 0
	}
	if out.BaseCreditsPerRun < 0 {
		out.BaseCreditsPerRun = 0
	}
	out.Sources = make([]model.ScraperSource, len(a.Sources))
	for i, s := range a.Sources {
		if s.Limit < 0 {
			s.Limit = 0
		}
		out.Sources[i] = s
	}
	return out
}

func roundNonNegative(v float64) int {
	r := int(math.Round(v))
	if r < 0 {
		return 0
	}
	return r
}
