package engine

import (
	"sort"

	"github.com/sells-group/engagement-cli/internal/model"
)

// maxQueueLength bounds the action queue.
const maxQueueLength = 8

// BuildQueue filters and ranks accounts into the bounded action queue.
// Kept: accounts whose action priority is not low, or which are at risk.
// Order: priority rank, then due time, then health score ascending
// (lower health surfaces first), then company ID for a deterministic
// final tie-break.
func BuildQueue(accounts []model.ComputedAccount) []model.QueueItem {
	items := make([]model.QueueItem, 0, len(accounts))
	for _, a := range accounts {
		if a.NextAction.Priority == model.PriorityLow && a.RiskLevel != model.RiskAtRisk {
			continue
		}
		items = append(items, model.QueueItem{
			CompanyID:        a.CompanyID,
			Name:             a.Name,
			Action:           a.NextAction.Action,
			Priority:         a.NextAction.Priority,
			Due:              a.NextAction.Due,
			Reason:           a.NextAction.Reason,
			EstimatedCredits: a.NextAction.EstimatedCredits,
			HealthScore:      a.HealthScore,
			RiskLevel:        a.RiskLevel,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		if !a.Due.Equal(b.Due) {
			return a.Due.Before(b.Due)
		}
		if a.HealthScore != b.HealthScore {
			return a.HealthScore < b.HealthScore
		}
		return a.CompanyID < b.CompanyID
	})

	if len(items) > maxQueueLength {
		items = items[:maxQueueLength]
	}
	return items
}
