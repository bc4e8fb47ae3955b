package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/engagement-cli/internal/model"
)

// healthyFacts returns facts that fall through to the final catch-all row.
func healthyFacts() actionFacts {
	return actionFacts{
		Name:          "Acme Analytics",
		OwnerAssigned: true,
		CoveragePct:   60,
		InFunnelLeads: 2,
		Signals7d:     3,
		RecencyDays:   1,
		Risk:          model.RiskHealthy,
	}
}

func TestPlanAction_DecisionTable(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*actionFacts)
		priority  model.ActionPriority
		dueOffset time.Duration
		credits   int
	}{
		{"unassigned owner", func(f *actionFacts) { f.OwnerAssigned = false }, model.PriorityHigh, 4 * time.Hour, 40},
		{"low coverage", func(f *actionFacts) { f.CoveragePct = 19 }, model.PriorityHigh, 6 * time.Hour, 180},
		{"signals but empty funnel", func(f *actionFacts) { f.InFunnelLeads = 0 }, model.PriorityMedium, 20 * time.Hour, 120},
		{"at risk", func(f *actionFacts) { f.Risk = model.RiskAtRisk }, model.PriorityMedium, 24 * time.Hour, 90},
		{"stale signals", func(f *actionFacts) { f.RecencyDays = 5 }, model.PriorityMedium, 36 * time.Hour, 70},
		{"healthy fallthrough", func(*actionFacts) {}, model.PriorityLow, 60 * time.Hour, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := healthyFacts()
			tt.mutate(&f)

			action := PlanAction(f, testNow)

			assert.Equal(t, tt.priority, action.Priority)
			assert.Equal(t, testNow.Add(tt.dueOffset), action.Due)
			assert.Equal(t, tt.credits, action.EstimatedCredits)
			assert.NotEmpty(t, action.Action)
			assert.NotEmpty(t, action.Reason)
		})
	}
}

func TestPlanAction_FirstMatchWins(t *testing.T) {
	// Unassigned owner outranks everything else even when multiple
	// rows would match.
	f := healthyFacts()
	f.OwnerAssigned = false
	f.CoveragePct = 5
	f.Risk = model.RiskAtRisk
	f.RecencyDays = 20

	action := PlanAction(f, testNow)

	assert.Equal(t, "Assign an owner", action.Action)
	assert.Equal(t, model.PriorityHigh, action.Priority)
	assert.Equal(t, 40, action.EstimatedCredits)
}

func TestPlanAction_ReasonMentionsFunnel(t *testing.T) {
	f := healthyFacts()
	f.Risk = model.RiskAtRisk
	f.FunnelName = "Executive outbound"

	action := PlanAction(f, testNow)

	assert.Equal(t, "Re-engage account", action.Action)
	assert.Contains(t, action.Reason, "Executive outbound")
}
