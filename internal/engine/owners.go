package engine

import (
	"math"
	"sort"

	"github.com/sells-group/engagement-cli/internal/model"
)

// ComputeOwnerPerformance rolls per-account metrics up to one record per
// owner in the directory. Owners with no assigned accounts get a zeroed
// record so capacity dashboards can still see them.
func ComputeOwnerPerformance(owners []model.Owner, accounts []model.ComputedAccount) []model.OwnerPerformance {
	byOwner := make(map[string][]model.ComputedAccount, len(owners))
	for _, a := range accounts {
		if a.OwnerID == "" {
			continue
		}
		byOwner[a.OwnerID] = append(byOwner[a.OwnerID], a)
	}

	perf := make([]model.OwnerPerformance, 0, len(owners))
	for _, o := range owners {
		p := model.OwnerPerformance{
			OwnerID: o.ID,
			Name:    o.Name,
			Role:    o.Role,
			Team:    o.Team,
		}

		assigned := byOwner[o.ID]
		if n := len(assigned); n > 0 {
			healthSum, coverageSum := 0, 0
			for _, a := range assigned {
				healthSum += a.HealthScore
				coverageSum += a.LeadCoveragePct
				if a.RiskLevel == model.RiskAtRisk {
					p.AtRiskAccounts++
				}
				if a.NextAction.Priority != model.PriorityLow {
					p.OpenActions++
				}
				p.SignalsLast7d += a.SignalsLast7d
			}
			p.ManagedAccounts = n
			p.AvgHealthScore = int(math.Round(float64(healthSum) / float64(n)))
			p.AvgLeadCoveragePct = int(math.Round(float64(coverageSum) / float64(n)))
		}

		perf = append(perf, p)
	}

	return perf
}

// RankOwners drops idle owners and sorts the rest by managed-account
// count descending, then average health descending, then owner ID.
func RankOwners(perf []model.OwnerPerformance) []model.OwnerPerformance {
	ranked := make([]model.OwnerPerformance, 0, len(perf))
	for _, p := range perf {
		if p.ManagedAccounts > 0 {
			ranked = append(ranked, p)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.ManagedAccounts != b.ManagedAccounts {
			return a.ManagedAccounts > b.ManagedAccounts
		}
		if a.AvgHealthScore != b.AvgHealthScore {
			return a.AvgHealthScore > b.AvgHealthScore
		}
		return a.OwnerID < b.OwnerID
	})

	return ranked
}
