package store

import (
	"context"
	"time"

	"github.com/sells-group/engagement-cli/internal/model"
)

// FixtureStore is an in-memory Store over a fixed snapshot input. It
// stands in for a real data source in demos and tests.
type FixtureStore struct {
	in model.SnapshotInput
}

// NewFixture creates a FixtureStore over the given input.
func NewFixture(in model.SnapshotInput) *FixtureStore {
	return &FixtureStore{in: in}
}

func (f *FixtureStore) Companies(context.Context) ([]model.Company, error) {
	return f.in.Companies, nil
}

func (f *FixtureStore) Leads(context.Context) ([]model.Lead, error) {
	return f.in.Leads, nil
}

func (f *FixtureStore) Owners(context.Context) ([]model.Owner, error) {
	return f.in.Owners, nil
}

func (f *FixtureStore) ICPNames(context.Context) (map[string]string, error) {
	return f.in.ICPNames, nil
}

func (f *FixtureStore) FunnelNames(context.Context) (map[string]string, error) {
	return f.in.FunnelNames, nil
}

func (f *FixtureStore) Close() error { return nil }

// DemoInput returns a small deterministic dataset relative to now,
// covering every lifecycle stage and risk tier.
func DemoInput(now time.Time) model.SnapshotInput {
	day := 24 * time.Hour

	return model.SnapshotInput{
		ICPNames: map[string]string{
			"icp-saas": "B2B SaaS scale-ups",
			"icp-fin":  "Mid-market fintech",
		},
		FunnelNames: map[string]string{
			"fun-exec":  "Executive outbound",
			"fun-trial": "Trial nurture",
		},
		Owners: []model.Owner{
			{ID: "own-1", Name: "Dana Whitfield", Role: model.RoleManager, Team: "Growth", ResponseSLAHours: 8, MaxAccounts: 20},
			{ID: "own-2", Name: "Marcus Lee", Role: model.RoleRep, Team: "Growth", ResponseSLAHours: 24, MaxAccounts: 30},
			{ID: "own-3", Name: "Priya Raman", Role: model.RoleRep, Team: "Enterprise", ResponseSLAHours: 24, MaxAccounts: 30},
		},
		Companies: []model.Company{
			{
				ID: "co-acme", Name: "Acme Analytics", Domain: "acmeanalytics.io", Industry: "Analytics",
				Employees: 120, FundingStage: "Series B", EnrichmentStatus: "enriched",
				LeadsEnriched: 10, LeadTarget: 20, RelevanceScore: 90,
				DiscoveredAt: now.Add(-40 * day), ICPID: "icp-saas", OwnerID: "own-1",
				Signals: []model.Signal{
					{Type: model.SignalHiring, Summary: "Hiring 4 data engineers", OccurredAt: now.Add(-1 * day)},
					{Type: model.SignalNews, Summary: "Launched EU region", OccurredAt: now.Add(-3 * day)},
					{Type: model.SignalIntent, Summary: "Visited pricing page cluster", OccurredAt: now.Add(-5 * day)},
				},
			},
			{
				ID: "co-bolt", Name: "Bolt Payments", Domain: "boltpay.com", Industry: "Fintech",
				Employees: 450, FundingStage: "Series C", EnrichmentStatus: "enriched",
				LeadsEnriched: 18, LeadTarget: 24, RelevanceScore: 84,
				DiscoveredAt: now.Add(-90 * day), ICPID: "icp-fin", OwnerID: "own-1",
				Signals: []model.Signal{
					{Type: model.SignalFunding, Summary: "Raised $60M Series C", OccurredAt: now.Add(-2 * day)},
					{Type: model.SignalHiring, Summary: "Opened 12 sales roles", OccurredAt: now.Add(-1 * day)},
				},
			},
			{
				ID: "co-cirro", Name: "Cirro Cloud", Domain: "cirro.dev", Industry: "Infrastructure",
				Employees: 35, FundingStage: "Seed", EnrichmentStatus: "enriching",
				LeadsEnriched: 2, LeadTarget: 15, RelevanceScore: 72,
				DiscoveredAt: now.Add(-12 * day), ICPID: "icp-saas", OwnerID: "own-2",
				Signals: []model.Signal{
					{Type: model.SignalTech, Summary: "Adopted Kubernetes", OccurredAt: now.Add(-2 * day)},
				},
			},
			{
				ID: "co-drift", Name: "Driftline Logistics", Domain: "driftline.co", Industry: "Logistics",
				Employees: 800, FundingStage: "Series D", EnrichmentStatus: "pending",
				LeadsEnriched: 0, LeadTarget: 0, RelevanceScore: 55,
				DiscoveredAt: now.Add(-20 * day), ICPID: "icp-fin",
				Signals: []model.Signal{
					{Type: model.SignalLeadership, Summary: "New CRO appointed", OccurredAt: now.Add(-9 * day)},
				},
			},
			{
				ID: "co-ember", Name: "Ember Health", Domain: "emberhealth.com", Industry: "Healthtech",
				Employees: 60, FundingStage: "Series A", EnrichmentStatus: "enriched",
				LeadsEnriched: 12, LeadTarget: 16, RelevanceScore: 88,
				DiscoveredAt: now.Add(-150 * day), ICPID: "icp-saas", OwnerID: "own-2",
				Signals: []model.Signal{
					{Type: model.SignalIntent, Summary: "Requested security review", OccurredAt: now.Add(-1 * day)},
					{Type: model.SignalNews, Summary: "Partnership with regional payer", OccurredAt: now.Add(-4 * day)},
				},
			},
			{
				ID: "co-flux", Name: "Fluxon Robotics", Domain: "fluxon.ai", Industry: "Robotics",
				Employees: 210, FundingStage: "Series B", EnrichmentStatus: "enriched",
				LeadsEnriched: 6, LeadTarget: 18, RelevanceScore: 65,
				DiscoveredAt: now.Add(-2 * day), ICPID: "icp-saas", OwnerID: "own-3",
			},
		},
		Leads: []model.Lead{
			{ID: "ld-1", CompanyID: "co-acme", Status: model.LeadEnriched, EnrichedAt: now.Add(-10 * day)},
			{ID: "ld-2", CompanyID: "co-bolt", Status: model.LeadInFunnel, FunnelID: "fun-exec", EnrichedAt: now.Add(-30 * day)},
			{ID: "ld-3", CompanyID: "co-bolt", Status: model.LeadInFunnel, FunnelID: "fun-exec", EnrichedAt: now.Add(-25 * day)},
			{ID: "ld-4", CompanyID: "co-bolt", Status: model.LeadInFunnel, FunnelID: "fun-trial", EnrichedAt: now.Add(-20 * day)},
			{ID: "ld-5", CompanyID: "co-cirro", Status: model.LeadEnriching, EnrichedAt: now.Add(-5 * day)},
			{ID: "ld-6", CompanyID: "co-ember", Status: model.LeadInFunnel, FunnelID: "fun-trial", EnrichedAt: now.Add(-60 * day)},
			{ID: "ld-7", CompanyID: "co-ember", Status: model.LeadEnriched, EnrichedAt: now.Add(-8 * day)},
			{ID: "ld-8", CompanyID: "co-flux", Status: model.LeadDiscovered, EnrichedAt: now.Add(-1 * day)},
		},
	}
}
