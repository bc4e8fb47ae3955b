package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/engagement-cli/internal/model"
)

func TestLeadCoveragePct(t *testing.T) {
	tests := []struct {
		name     string
		enriched int
		target   int
		expected int
	}{
		{"zero target never divides", 10, 0, 0},
		{"half", 10, 20, 50},
		{"full", 20, 20, 100},
		{"over target clamps", 30, 20, 100},
		{"none", 0, 20, 0},
		{"rounds", 1, 3, 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LeadCoveragePct(tt.enriched, tt.target))
		})
	}
}

func TestEngagementScore(t *testing.T) {
	assert.Equal(t, 50.0, EngagementScore(0, 10, 3))
	assert.Equal(t, 100.0, EngagementScore(5, 10, 3)) // clamped
	assert.Equal(t, 0.0, EngagementScore(0, 0, 0))
}

func TestRecencyScore(t *testing.T) {
	assert.Equal(t, 100.0, RecencyScore(0))
	assert.Equal(t, 88.0, RecencyScore(1))
	assert.Equal(t, 8.0, RecencyScore(30)) // floored at 8
}

func TestHealthScore_EndToEndScenario(t *testing.T) {
	// relevance 90, coverage 50, recency 1 day, 3 signals in 7d,
	// 10 enriched leads, none in funnel.
	engagement := EngagementScore(0, 10, 3)
	recency := RecencyScore(1)

	assert.Equal(t, 50.0, engagement)
	assert.Equal(t, 88.0, recency)

	health := HealthScore(90, 50, recency, engagement)
	assert.Equal(t, 76, health)

	risk := ClassifyRisk(healthFacts{HealthScore: health, RecencyDays: 1, CoveragePct: 50, Signals7d: 3})
	assert.Equal(t, model.RiskWatch, risk)
}

func TestHealthScore_Bounds(t *testing.T) {
	for _, relevance := range []float64{0, 25, 50, 75, 100} {
		for _, coverage := range []int{0, 40, 100} {
			for _, recencyDays := range []int{0, 3, 10, 60} {
				for _, signals := range []int{0, 2, 15} {
					health := HealthScore(relevance, coverage, RecencyScore(recencyDays), EngagementScore(signals, signals*2, signals))
					assert.GreaterOrEqual(t, health, 0)
					assert.LessOrEqual(t, health, 100)

					delta := HealthDelta(signals, recencyDays, coverage)
					assert.GreaterOrEqual(t, delta, -18)
					assert.LessOrEqual(t, delta, 18)
				}
			}
		}
	}
}

func TestHealthDelta(t *testing.T) {
	// 3 signals, 1 day recency, coverage >= 40: 9 - 1.8 + 4 = 11.2 -> 11
	assert.Equal(t, 11, HealthDelta(3, 1, 50))
	// No signals, very stale, low coverage: bounded below at -18.
	assert.Equal(t, -18, HealthDelta(0, 30, 0))
	// Heavy signal volume bounded above at +18.
	assert.Equal(t, 18, HealthDelta(10, 0, 80))
}

func TestClassifyRisk_LowHealthAlwaysAtRisk(t *testing.T) {
	// healthScore < 62 forces at_risk regardless of other inputs.
	for _, f := range []healthFacts{
		{HealthScore: 61, RecencyDays: 0, CoveragePct: 100, Signals7d: 0},
		{HealthScore: 30, RecencyDays: 1, CoveragePct: 90, Signals7d: 5},
		{HealthScore: 0, RecencyDays: 0, CoveragePct: 100, Signals7d: 10},
	} {
		assert.Equal(t, model.RiskAtRisk, ClassifyRisk(f))
	}
}

func TestClassifyRisk_RuleOrder(t *testing.T) {
	tests := []struct {
		name     string
		facts    healthFacts
		expected model.RiskLevel
	}{
		{"stale signals at risk", healthFacts{HealthScore: 90, RecencyDays: 7, CoveragePct: 80}, model.RiskAtRisk},
		{"low coverage with activity at risk", healthFacts{HealthScore: 90, RecencyDays: 0, CoveragePct: 15, Signals7d: 2}, model.RiskAtRisk},
		{"low coverage without activity only watch", healthFacts{HealthScore: 90, RecencyDays: 0, CoveragePct: 15, Signals7d: 0}, model.RiskWatch},
		{"borderline health watch", healthFacts{HealthScore: 77, RecencyDays: 0, CoveragePct: 80}, model.RiskWatch},
		{"slightly stale watch", healthFacts{HealthScore: 90, RecencyDays: 4, CoveragePct: 80}, model.RiskWatch},
		{"healthy", healthFacts{HealthScore: 85, RecencyDays: 1, CoveragePct: 60, Signals7d: 3}, model.RiskHealthy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyRisk(tt.facts))
		})
	}
}
