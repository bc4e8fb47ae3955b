package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/engagement-cli/internal/model"
)

func queueAccount(id string, priority model.ActionPriority, due time.Time, health int, risk model.RiskLevel) model.ComputedAccount {
	return model.ComputedAccount{
		CompanyID:   id,
		Name:        "Account " + id,
		HealthScore: health,
		RiskLevel:   risk,
		NextAction: model.NextAction{
			Action:           "act",
			Priority:         priority,
			Due:              due,
			Reason:           "reason",
			EstimatedCredits: 10,
		},
	}
}

func TestBuildQueue_FiltersLowPriority(t *testing.T) {
	due := testNow.Add(time.Hour)
	accounts := []model.ComputedAccount{
		queueAccount("a", model.PriorityLow, due, 90, model.RiskHealthy),
		queueAccount("b", model.PriorityLow, due, 50, model.RiskAtRisk), // kept: at risk
		queueAccount("c", model.PriorityHigh, due, 80, model.RiskWatch),
	}

	queue := BuildQueue(accounts)

	require.Len(t, queue, 2)
	for _, item := range queue {
		if item.Priority == model.PriorityLow {
			assert.Equal(t, model.RiskAtRisk, item.RiskLevel)
		}
	}
}

func TestBuildQueue_Ordering(t *testing.T) {
	early := testNow.Add(1 * time.Hour)
	late := testNow.Add(10 * time.Hour)

	accounts := []model.ComputedAccount{
		queueAccount("d", model.PriorityMedium, early, 70, model.RiskWatch),
		queueAccount("a", model.PriorityHigh, late, 80, model.RiskWatch),
		queueAccount("b", model.PriorityHigh, early, 75, model.RiskWatch),
		queueAccount("c", model.PriorityHigh, early, 40, model.RiskAtRisk),
	}

	queue := BuildQueue(accounts)

	require.Len(t, queue, 4)
	// High before medium; earlier due first; lower health first on ties.
	assert.Equal(t, "c", queue[0].CompanyID)
	assert.Equal(t, "b", queue[1].CompanyID)
	assert.Equal(t, "a", queue[2].CompanyID)
	assert.Equal(t, "d", queue[3].CompanyID)
}

func TestBuildQueue_DeterministicTieBreak(t *testing.T) {
	due := testNow.Add(time.Hour)
	accounts := []model.ComputedAccount{
		queueAccount("z", model.PriorityHigh, due, 50, model.RiskAtRisk),
		queueAccount("a", model.PriorityHigh, due, 50, model.RiskAtRisk),
		queueAccount("m", model.PriorityHigh, due, 50, model.RiskAtRisk),
	}

	queue := BuildQueue(accounts)

	require.Len(t, queue, 3)
	assert.Equal(t, "a", queue[0].CompanyID)
	assert.Equal(t, "m", queue[1].CompanyID)
	assert.Equal(t, "z", queue[2].CompanyID)
}

func TestBuildQueue_BoundedAtEight(t *testing.T) {
	due := testNow.Add(time.Hour)
	var accounts []model.ComputedAccount
	for i := 0; i < 20; i++ {
		accounts = append(accounts,
			queueAccount(fmt.Sprintf("co-%02d", i), model.PriorityHigh, due, 50+i, model.RiskAtRisk))
	}

	queue := BuildQueue(accounts)

	require.Len(t, queue, 8)
	// Lower health surfaces first, so the 8 lowest scores survive.
	assert.Equal(t, 50, queue[0].HealthScore)
	assert.Equal(t, 57, queue[7].HealthScore)
}

func TestBuildQueue_Empty(t *testing.T) {
	assert.Empty(t, BuildQueue(nil))
}
