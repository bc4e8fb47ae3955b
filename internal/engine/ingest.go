package engine

import (
	"math"

	"github.com/sells-group/engagement-cli/internal/model"
)

// Sanitization happens once at the ingestion boundary; the scoring
// formulas themselves assume well-typed input.

// SanitizeInput coerces malformed upstream records to safe defaults:
// non-finite scores become 0, negative counts become 0, relevance is
// clamped to [0,100]. Returns a cleaned copy; the input is not mutated.
func SanitizeInput(in model.SnapshotInput) model.SnapshotInput {
	out := in
	out.Companies = make([]model.Company, len(in.Companies))
	for i, c := range in.Companies {
		c.Employees = nonNegative(c.Employees)
		c.LeadsEnriched = nonNegative(c.LeadsEnriched)
		c.LeadTarget = nonNegative(c.LeadTarget)
		c.RelevanceScore = clampFloat(finiteOrZero(c.RelevanceScore), 0, 100)
		out.Companies[i] = c
	}

	out.Owners = make([]model.Owner, len(in.Owners))
	for i, o := range in.Owners {
		o.ResponseSLAHours = nonNegative(o.ResponseSLAHours)
		o.MaxAccounts = nonNegative(o.MaxAccounts)
		out.Owners[i] = o
	}

	return out
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
