package model

import "time"

// SignalType tags an observed buying-intent event.
type SignalType string

const (
	SignalHiring     SignalType = "hiring"
	SignalFunding    SignalType = "funding"
	SignalIntent     SignalType = "intent"
	SignalNews       SignalType = "news"
	SignalTech       SignalType = "tech"
	SignalLeadership SignalType = "leadership"
)

// LeadStatus represents where a lead sits in the enrichment flow.
type LeadStatus string

const (
	LeadDiscovered LeadStatus = "discovered"
	LeadEnriching  LeadStatus = "enriching"
	LeadEnriched   LeadStatus = "enriched"
	LeadInFunnel   LeadStatus = "in_funnel"
)

// OwnerRole distinguishes managers from reps.
type OwnerRole string

const (
	RoleManager OwnerRole = "manager"
	RoleRep     OwnerRole = "rep"
)

// Signal is a timestamped observed event about a company. Immutable once
// recorded.
type Signal struct {
	Type       SignalType `json:"type"`
	Summary    string     `json:"summary"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// Company is a raw discovered account as fed into the scoring engine.
type Company struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Domain           string    `json:"domain"`
	Industry         string    `json:"industry"`
	Employees        int       `json:"employees"`
	FundingStage     string    `json:"funding_stage"`
	Signals          []Signal  `json:"signals"`
	EnrichmentStatus string    `json:"enrichment_status"`
	LeadsEnriched    int       `json:"leads_enriched"`
	LeadTarget       int       `json:"lead_target"`
	RelevanceScore   float64   `json:"relevance_score"`
	DiscoveredAt     time.Time `json:"discovered_at"`
	ICPID            string    `json:"icp_id"`
	OwnerID          string    `json:"owner_id,omitempty"` // empty = unassigned
}

// Lead belongs to exactly one company. FunnelID is set only for leads
// with status in_funnel.
type Lead struct {
	ID         string     `json:"id"`
	CompanyID  string     `json:"company_id"`
	Status     LeadStatus `json:"status"`
	FunnelID   string     `json:"funnel_id,omitempty"`
	EnrichedAt time.Time  `json:"enriched_at"`
}

// Owner is a member of the sales team that accounts can be assigned to.
type Owner struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Role             OwnerRole `json:"role"`
	Team             string    `json:"team"`
	ResponseSLAHours int       `json:"response_sla_hours"`
	MaxAccounts      int       `json:"max_accounts"`
}

// SnapshotInput is the full set of raw entities the engine consumes.
// Read-only: the engine never mutates it.
type SnapshotInput struct {
	Companies   []Company         `json:"companies"`
	Leads       []Lead            `json:"leads"`
	Owners      []Owner           `json:"owners"`
	ICPNames    map[string]string `json:"icp_names"`
	FunnelNames map[string]string `json:"funnel_names"`
}
