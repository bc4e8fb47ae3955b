// Package engine computes derived account health, risk, stage, action,
// queue, and owner rollups from a raw entity snapshot. All computation
// is pure and side-effect-free: inputs are never mutated.
package engine

import (
	"time"

	"github.com/sells-group/engagement-cli/internal/model"
)

// SignalSummary reduces a company's signal history to recency and
// trailing-7-day volume.
type SignalSummary struct {
	LastSignalAt time.Time
	RecencyDays  int
	Last7Days    int
}

// SummarizeSignals computes the signal summary for a company as of now.
// When the company has no signals, recency is measured from its
// discovery timestamp. Total: it never fails.
func SummarizeSignals(c model.Company, now time.Time) SignalSummary {
	last := c.DiscoveredAt
	count7d := 0
	cutoff := now.Add(-7 * 24 * time.Hour)

	for _, s := range c.Signals {
		if s.OccurredAt.After(last) {
			last = s.OccurredAt
		}
		if !s.OccurredAt.Before(cutoff) && !s.OccurredAt.After(now) {
			count7d++
		}
	}

	recency := int(now.Sub(last).Hours() / 24)
	if recency < 0 {
		recency = 0
	}

	return SignalSummary{
		LastSignalAt: last,
		RecencyDays:  recency,
		Last7Days:    count7d,
	}
}
