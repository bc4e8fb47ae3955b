package engine

import (
	"time"

	"github.com/sells-group/engagement-cli/internal/model"
)

// stageFacts are the counts the lifecycle rules read.
type stageFacts struct {
	InFunnelLeads int
	LeadsEnriched int
	Signals7d     int
	DiscoveredAt  time.Time
	Now           time.Time
}

// stageRule pairs a lifecycle stage with its predicate. Evaluated in
// order, first match wins.
type stageRule struct {
	stage model.Stage
	match func(stageFacts) bool
}

var stageRules = []stageRule{
	{model.StageCustomer, func(f stageFacts) bool { return f.InFunnelLeads >= 8 }},
	{model.StageInFunnel, func(f stageFacts) bool { return f.InFunnelLeads > 0 }},
	{model.StageEngaging, func(f stageFacts) bool { return f.LeadsEnriched >= 8 }},
	{model.StageMonitoring, func(f stageFacts) bool {
		return f.Signals7d > 0 || !f.DiscoveredAt.Before(f.Now.Add(-4*24*time.Hour))
	}},
	{model.StageNew, func(stageFacts) bool { return true }},
}

// DetectStage classifies an account into its funnel-lifecycle stage.
func DetectStage(f stageFacts) model.Stage {
	for _, r := range stageRules {
		if r.match(f) {
			return r.stage
		}
	}
	return model.StageNew
}
