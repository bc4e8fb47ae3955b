package engine

import (
	"math"

	"github.com/sells-group/engagement-cli/internal/model"
)

// healthFacts are the per-account numbers the classifier rules read.
type healthFacts struct {
	HealthScore int
	RecencyDays int
	CoveragePct int
	Signals7d   int
}

// riskRule pairs a risk tier with its predicate. Rules are evaluated in
// order; the first match wins.
type riskRule struct {
	level model.RiskLevel
	match func(healthFacts) bool
}

var riskRules = []riskRule{
	{model.RiskAtRisk, func(f healthFacts) bool {
		return f.HealthScore < 62 || f.RecencyDays >= 7 || (f.CoveragePct < 20 && f.Signals7d > 0)
	}},
	{model.RiskWatch, func(f healthFacts) bool {
		return f.HealthScore < 78 || f.RecencyDays >= 4 || f.CoveragePct < 35
	}},
	{model.RiskHealthy, func(healthFacts) bool { return true }},
}

// ClassifyRisk applies the ordered risk rules to an account's facts.
func ClassifyRisk(f healthFacts) model.RiskLevel {
	for _, r := range riskRules {
		if r.match(f) {
			return r.level
		}
	}
	return model.RiskHealthy
}

// LeadCoveragePct returns the enrichment coverage as a whole percentage
// in [0,100]. A zero lead target yields 0 rather than dividing by zero.
func LeadCoveragePct(enriched, target int) int {
	if target <= 0 {
		return 0
	}
	pct := int(math.Round(float64(enriched) / float64(target) * 100))
	return clampInt(pct, 0, 100)
}

// EngagementScore measures funnel depth and recent activity on a 0-100
// scale: in-funnel leads weigh 20, enriched leads 2, 7-day signals 10.
func EngagementScore(inFunnel, leadsEnriched, signals7d int) float64 {
	return clampFloat(float64(inFunnel)*20+float64(leadsEnriched)*2+float64(signals7d)*10, 0, 100)
}

// RecencyScore decays 12 points per day since the last signal, floored
// at 8 so stale accounts keep a nonzero contribution.
func RecencyScore(recencyDays int) float64 {
	return clampFloat(100-float64(recencyDays)*12, 8, 100)
}

// HealthScore combines relevance, lead coverage, signal recency, and
// engagement into the weighted 0-100 composite.
func HealthScore(relevance float64, coveragePct int, recency, engagement float64) int {
	score := relevance*0.45 + float64(coveragePct)*0.25 + recency*0.20 + engagement*0.10
	return clampInt(int(math.Round(score)), 0, 100)
}

// HealthDelta estimates the day-over-day health trend, bounded to ±18.
func HealthDelta(signals7d, recencyDays, coveragePct int) int {
	coverageTerm := -3.0
	if coveragePct >= 40 {
		coverageTerm = 4.0
	}
	delta := float64(signals7d)*3 - float64(recencyDays)*1.8 + coverageTerm
	return clampInt(int(math.Round(delta)), -18, 18)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
