package model

import "time"

// RiskLevel is a three-tier classification of account health trajectory.
type RiskLevel string

const (
	RiskHealthy RiskLevel = "healthy"
	RiskWatch   RiskLevel = "watch"
	RiskAtRisk  RiskLevel = "at_risk"
)

// Stage is the funnel-lifecycle stage of an account.
type Stage string

const (
	StageNew        Stage = "new"
	StageMonitoring Stage = "monitoring"
	StageEngaging   Stage = "engaging"
	StageInFunnel   Stage = "in_funnel"
	StageCustomer   Stage = "customer"
)

// ActionPriority is the urgency tier of a recommended action.
type ActionPriority string

const (
	PriorityHigh   ActionPriority = "high"
	PriorityMedium ActionPriority = "medium"
	PriorityLow    ActionPriority = "low"
)

// Rank returns the sort rank of a priority: high=0, medium=1, low=2.
// Unknown values sort last.
func (p ActionPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// NextAction is the recommended next step for an account.
type NextAction struct {
	Action           string         `json:"action"`
	Priority         ActionPriority `json:"priority"`
	Due              time.Time      `json:"due"`
	Reason           string         `json:"reason"`
	EstimatedCredits int            `json:"estimated_credits"`
}

// ComputedAccount is the derived view of a single company. It is a
// value recomputed fresh on every run, never mutated in place.
type ComputedAccount struct {
	CompanyID         string     `json:"company_id"`
	Name              string     `json:"name"`
	Domain            string     `json:"domain"`
	Industry          string     `json:"industry"`
	ICPName           string     `json:"icp_name,omitempty"`
	FunnelName        string     `json:"funnel_name,omitempty"`
	OwnerID           string     `json:"owner_id,omitempty"`
	HealthScore       int        `json:"health_score"`
	HealthDelta       int        `json:"health_delta"`
	RiskLevel         RiskLevel  `json:"risk_level"`
	Stage             Stage      `json:"stage"`
	NextAction        NextAction `json:"next_action"`
	LeadCoveragePct   int        `json:"lead_coverage_pct"`
	SignalsLast7d     int        `json:"signals_last_7d"`
	SignalRecencyDays int        `json:"signal_recency_days"`
	LastSignalAt      time.Time  `json:"last_signal_at"`
	InFunnelLeads     int        `json:"in_funnel_leads"`
	LeadsEnriched     int        `json:"leads_enriched"`
	PipelineValue     int64      `json:"pipeline_value"`
}

// QueueItem is one entry of the ranked action queue.
type QueueItem struct {
	CompanyID        string         `json:"company_id"`
	Name             string         `json:"name"`
	Action           string         `json:"action"`
	Priority         ActionPriority `json:"priority"`
	Due              time.Time      `json:"due"`
	Reason           string         `json:"reason"`
	EstimatedCredits int            `json:"estimated_credits"`
	HealthScore      int            `json:"health_score"`
	RiskLevel        RiskLevel      `json:"risk_level"`
}

// OwnerPerformance is the per-owner rollup of assigned accounts.
type OwnerPerformance struct {
	OwnerID            string    `json:"owner_id"`
	Name               string    `json:"name"`
	Role               OwnerRole `json:"role"`
	Team               string    `json:"team"`
	ManagedAccounts    int       `json:"managed_accounts"`
	AtRiskAccounts     int       `json:"at_risk_accounts"`
	AvgHealthScore     int       `json:"avg_health_score"`
	AvgLeadCoveragePct int       `json:"avg_lead_coverage_pct"`
	OpenActions        int       `json:"open_actions"`
	SignalsLast7d      int       `json:"signals_last_7d"`
}

// Overview aggregates the full account set for the dashboard header.
type Overview struct {
	TotalAccounts  int   `json:"total_accounts"`
	HealthyCount   int   `json:"healthy_count"`
	WatchCount     int   `json:"watch_count"`
	AtRiskCount    int   `json:"at_risk_count"`
	AvgHealthScore int   `json:"avg_health_score"`
	OpenActions    int   `json:"open_actions"`
	SignalsLast7d  int   `json:"signals_last_7d"`
	PipelineValue  int64 `json:"pipeline_value"`
}

// Snapshot is the engine's complete derived output for one run.
type Snapshot struct {
	GeneratedAt      time.Time          `json:"generated_at"`
	Overview         Overview           `json:"overview"`
	Accounts         []ComputedAccount  `json:"accounts"`
	Queue            []QueueItem        `json:"queue"`
	OwnerPerformance []OwnerPerformance `json:"owner_performance"`
}
