package engine

import (
	"fmt"
	"time"

	"github.com/sells-group/engagement-cli/internal/model"
)

// actionFacts are the per-account inputs the planner rules read.
type actionFacts struct {
	Name          string
	OwnerAssigned bool
	CoveragePct   int
	InFunnelLeads int
	Signals7d     int
	RecencyDays   int
	Risk          model.RiskLevel
	FunnelName    string
}

// actionRule is one row of the planner decision table. Rows are
// evaluated in order; the first match wins. The final row matches
// unconditionally.
type actionRule struct {
	match     func(actionFacts) bool
	priority  model.ActionPriority
	dueOffset time.Duration
	credits   int
	action    func(actionFacts) string
	reason    func(actionFacts) string
}

var actionRules = []actionRule{
	{
		match:     func(f actionFacts) bool { return !f.OwnerAssigned },
		priority:  model.PriorityHigh,
		dueOffset: 4 * time.Hour,
		credits:   40,
		action:    func(actionFacts) string { return "Assign an owner" },
		reason: func(f actionFacts) string {
			return fmt.Sprintf("%s has no assigned owner; nobody is on the hook for follow-up", f.Name)
		},
	},
	{
		match:     func(f actionFacts) bool { return f.CoveragePct < 20 },
		priority:  model.PriorityHigh,
		dueOffset: 6 * time.Hour,
		credits:   180,
		action:    func(actionFacts) string { return "Enrich lead contacts" },
		reason: func(f actionFacts) string {
			return fmt.Sprintf("lead coverage is %d%%, well below the 20%% floor", f.CoveragePct)
		},
	},
	{
		match:     func(f actionFacts) bool { return f.InFunnelLeads == 0 && f.Signals7d > 0 },
		priority:  model.PriorityMedium,
		dueOffset: 20 * time.Hour,
		credits:   120,
		action:    func(actionFacts) string { return "Enroll leads in a funnel" },
		reason: func(f actionFacts) string {
			return fmt.Sprintf("%d fresh signals this week but no leads in a funnel yet", f.Signals7d)
		},
	},
	{
		match:     func(f actionFacts) bool { return f.Risk == model.RiskAtRisk },
		priority:  model.PriorityMedium,
		dueOffset: 24 * time.Hour,
		credits:   90,
		action:    func(actionFacts) string { return "Re-engage account" },
		reason: func(f actionFacts) string {
			if f.FunnelName != "" {
				return fmt.Sprintf("account is at risk; revisit the %s sequence", f.FunnelName)
			}
			return "account health has dropped into the at-risk tier"
		},
	},
	{
		match:     func(f actionFacts) bool { return f.RecencyDays > 4 },
		priority:  model.PriorityMedium,
		dueOffset: 36 * time.Hour,
		credits:   70,
		action:    func(actionFacts) string { return "Refresh signal scrape" },
		reason: func(f actionFacts) string {
			return fmt.Sprintf("no new signals for %d days; data is going stale", f.RecencyDays)
		},
	},
	{
		match:     func(actionFacts) bool { return true },
		priority:  model.PriorityLow,
		dueOffset: 60 * time.Hour,
		credits:   25,
		action:    func(actionFacts) string { return "Monitor" },
		reason:    func(actionFacts) string { return "account is healthy and current; routine check-in" },
	},
}

// PlanAction walks the decision table and returns the recommended next
// action for an account. Pure: it never mutates its inputs.
func PlanAction(f actionFacts, now time.Time) model.NextAction {
	for _, r := range actionRules {
		if !r.match(f) {
			continue
		}
		return model.NextAction{
			Action:           r.action(f),
			Priority:         r.priority,
			Due:              now.Add(r.dueOffset),
			Reason:           r.reason(f),
			EstimatedCredits: r.credits,
		}
	}
	// Unreachable: the last rule always matches.
	return model.NextAction{}
}
