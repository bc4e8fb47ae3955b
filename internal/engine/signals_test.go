package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/engagement-cli/internal/model"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestSummarizeSignals_NoSignals(t *testing.T) {
	c := model.Company{DiscoveredAt: testNow.Add(-10 * 24 * time.Hour)}

	sum := SummarizeSignals(c, testNow)

	assert.Equal(t, c.DiscoveredAt, sum.LastSignalAt)
	assert.Equal(t, 10, sum.RecencyDays)
	assert.Equal(t, 0, sum.Last7Days)
}

func TestSummarizeSignals_RecencyAndVolume(t *testing.T) {
	c := model.Company{
		DiscoveredAt: testNow.Add(-60 * 24 * time.Hour),
		Signals: []model.Signal{
			{OccurredAt: testNow.Add(-25 * time.Hour)},
			{OccurredAt: testNow.Add(-2 * 24 * time.Hour)},
			{OccurredAt: testNow.Add(-3 * 24 * time.Hour)},
			{OccurredAt: testNow.Add(-10 * 24 * time.Hour)}, // outside 7d window
		},
	}

	sum := SummarizeSignals(c, testNow)

	assert.Equal(t, testNow.Add(-25*time.Hour), sum.LastSignalAt)
	assert.Equal(t, 1, sum.RecencyDays)
	assert.Equal(t, 3, sum.Last7Days)
}

func TestSummarizeSignals_FutureSignalNotCounted(t *testing.T) {
	c := model.Company{
		DiscoveredAt: testNow.Add(-5 * 24 * time.Hour),
		Signals: []model.Signal{
			{OccurredAt: testNow.Add(2 * time.Hour)}, // clock skew upstream
		},
	}

	sum := SummarizeSignals(c, testNow)

	// Recency never goes negative.
	assert.Equal(t, 0, sum.RecencyDays)
	assert.Equal(t, 0, sum.Last7Days)
}

func TestSummarizeSignals_SignalExactlyNow(t *testing.T) {
	c := model.Company{
		DiscoveredAt: testNow.Add(-30 * 24 * time.Hour),
		Signals:      []model.Signal{{OccurredAt: testNow}},
	}

	sum := SummarizeSignals(c, testNow)

	assert.Equal(t, 0, sum.RecencyDays)
	assert.Equal(t, 1, sum.Last7Days)
}
