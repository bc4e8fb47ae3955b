package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/engagement-cli/internal/model"
)

func ownedAccount(ownerID string, health, coverage, signals7d int, risk model.RiskLevel, priority model.ActionPriority) model.ComputedAccount {
	return model.ComputedAccount{
		CompanyID:       "co-" + ownerID,
		OwnerID:         ownerID,
		HealthScore:     health,
		LeadCoveragePct: coverage,
		SignalsLast7d:   signals7d,
		RiskLevel:       risk,
		NextAction:      model.NextAction{Priority: priority},
	}
}

func TestComputeOwnerPerformance_Averages(t *testing.T) {
	owners := []model.Owner{{ID: "own-1", Name: "Dana", Role: model.RoleManager, Team: "Growth"}}
	accounts := []model.ComputedAccount{
		ownedAccount("own-1", 80, 50, 2, model.RiskHealthy, model.PriorityLow),
		ownedAccount("own-1", 60, 30, 1, model.RiskAtRisk, model.PriorityMedium),
	}

	perf := ComputeOwnerPerformance(owners, accounts)

	require.Len(t, perf, 1)
	p := perf[0]
	assert.Equal(t, 2, p.ManagedAccounts)
	assert.Equal(t, 1, p.AtRiskAccounts)
	assert.Equal(t, 70, p.AvgHealthScore)
	assert.Equal(t, 40, p.AvgLeadCoveragePct)
	assert.Equal(t, 1, p.OpenActions)
	assert.Equal(t, 3, p.SignalsLast7d)
}

func TestComputeOwnerPerformance_IdleOwnerZeroed(t *testing.T) {
	owners := []model.Owner{
		{ID: "own-1", Name: "Dana"},
		{ID: "own-2", Name: "Marcus"},
	}
	accounts := []model.ComputedAccount{
		ownedAccount("own-1", 75, 40, 0, model.RiskWatch, model.PriorityMedium),
	}

	perf := ComputeOwnerPerformance(owners, accounts)

	require.Len(t, perf, 2)
	assert.Equal(t, 1, perf[0].ManagedAccounts)
	// Idle owner still listed with a zeroed record.
	assert.Equal(t, "own-2", perf[1].OwnerID)
	assert.Zero(t, perf[1].ManagedAccounts)
	assert.Zero(t, perf[1].AvgHealthScore)
}

func TestComputeOwnerPerformance_UnassignedAccountsIgnored(t *testing.T) {
	owners := []model.Owner{{ID: "own-1"}}
	accounts := []model.ComputedAccount{
		{CompanyID: "co-x", HealthScore: 10, RiskLevel: model.RiskAtRisk}, // no owner
		ownedAccount("own-1", 90, 80, 1, model.RiskHealthy, model.PriorityLow),
	}

	perf := ComputeOwnerPerformance(owners, accounts)

	require.Len(t, perf, 1)
	assert.Equal(t, 1, perf[0].ManagedAccounts)
	assert.Equal(t, 90, perf[0].AvgHealthScore)
}

func TestRankOwners(t *testing.T) {
	perf := []model.OwnerPerformance{
		{OwnerID: "own-idle", ManagedAccounts: 0},
		{OwnerID: "own-b", ManagedAccounts: 2, AvgHealthScore: 60},
		{OwnerID: "own-a", ManagedAccounts: 2, AvgHealthScore: 80},
		{OwnerID: "own-c", ManagedAccounts: 5, AvgHealthScore: 40},
	}

	ranked := RankOwners(perf)

	require.Len(t, ranked, 3)
	assert.Equal(t, "own-c", ranked[0].OwnerID) // most managed first
	assert.Equal(t, "own-a", ranked[1].OwnerID) // higher avg health on tie
	assert.Equal(t, "own-b", ranked[2].OwnerID)
}

func TestRankOwners_IDTieBreak(t *testing.T) {
	perf := []model.OwnerPerformance{
		{OwnerID: "own-z", ManagedAccounts: 1, AvgHealthScore: 70},
		{OwnerID: "own-a", ManagedAccounts: 1, AvgHealthScore: 70},
	}

	ranked := RankOwners(perf)

	require.Len(t, ranked, 2)
	assert.Equal(t, "own-a", ranked[0].OwnerID)
}
