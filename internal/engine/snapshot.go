package engine

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/engagement-cli/internal/config"
	"github.com/sells-group/engagement-cli/internal/model"
)

// Engine computes account snapshots. Safe for concurrent use: it holds
// no mutable state.
type Engine struct {
	maxParallel    int
	computeTimeout time.Duration
}

// New creates an Engine from config, applying defaults for zero values.
func New(cfg config.EngineConfig) *Engine {
	maxParallel := cfg.MaxParallel
	if maxParallel <= 0 {
		maxParallel = 8
	}
	timeoutSecs := cfg.ComputeTimeoutSecs
	if timeoutSecs <= 0 {
		timeoutSecs = 5
	}
	return &Engine{
		maxParallel:    maxParallel,
		computeTimeout: time.Duration(timeoutSecs) * time.Second,
	}
}

// leadStats holds the per-company lead rollup used during scoring.
type leadStats struct {
	inFunnel   int
	funnelName string
	funnelAt   time.Time
}

// ComputeSnapshot derives the full snapshot from raw entities as of now.
// Per-company units are independent, so they are scored in parallel
// under a bounded group. The timeout is a guard against pathologically
// large inputs, not an expected path.
func (e *Engine) ComputeSnapshot(ctx context.Context, in model.SnapshotInput, now time.Time) (*model.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, e.computeTimeout)
	defer cancel()

	in = SanitizeInput(in)
	stats := collectLeadStats(in.Leads, in.FunnelNames)

	accounts := make([]model.ComputedAccount, len(in.Companies))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxParallel)
	for i, c := range in.Companies {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			accounts[i] = computeAccount(c, stats[c.ID], in.ICPNames, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "engine: compute accounts")
	}

	// Deterministic account ordering regardless of goroutine scheduling.
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].CompanyID < accounts[j].CompanyID
	})

	snap := &model.Snapshot{
		GeneratedAt:      now,
		Accounts:         accounts,
		Queue:            BuildQueue(accounts),
		OwnerPerformance: RankOwners(ComputeOwnerPerformance(in.Owners, accounts)),
		Overview:         buildOverview(accounts),
	}

	zap.L().Debug("engine: snapshot computed",
		zap.Int("accounts", len(snap.Accounts)),
		zap.Int("queue", len(snap.Queue)),
		zap.Int("owners", len(snap.OwnerPerformance)),
	)

	return snap, nil
}

// collectLeadStats indexes leads by company: in-funnel count plus the
// funnel of the earliest-enrolled in-funnel lead (ties broken by lead ID
// for stable output).
func collectLeadStats(leads []model.Lead, funnelNames map[string]string) map[string]leadStats {
	byID := make(map[string]string, len(leads)) // companyID -> chosen lead ID
	stats := make(map[string]leadStats)
	for _, l := range leads {
		if l.Status != model.LeadInFunnel {
			continue
		}
		s := stats[l.CompanyID]
		s.inFunnel++
		chosen := byID[l.CompanyID]
		if chosen == "" || l.EnrichedAt.Before(s.funnelAt) ||
			(l.EnrichedAt.Equal(s.funnelAt) && l.ID < chosen) {
			s.funnelAt = l.EnrichedAt
			s.funnelName = funnelNames[l.FunnelID]
			byID[l.CompanyID] = l.ID
		}
		stats[l.CompanyID] = s
	}
	return stats
}

// computeAccount runs the full scoring pipeline for one company.
func computeAccount(c model.Company, ls leadStats, icpNames map[string]string, now time.Time) model.ComputedAccount {
	sig := SummarizeSignals(c, now)
	coverage := LeadCoveragePct(c.LeadsEnriched, c.LeadTarget)

	engagement := EngagementScore(ls.inFunnel, c.LeadsEnriched, sig.Last7Days)
	recency := RecencyScore(sig.RecencyDays)
	health := HealthScore(c.RelevanceScore, coverage, recency, engagement)
	delta := HealthDelta(sig.Last7Days, sig.RecencyDays, coverage)

	risk := ClassifyRisk(healthFacts{
		HealthScore: health,
		RecencyDays: sig.RecencyDays,
		CoveragePct: coverage,
		Signals7d:   sig.Last7Days,
	})

	stage := DetectStage(stageFacts{
		InFunnelLeads: ls.inFunnel,
		LeadsEnriched: c.LeadsEnriched,
		Signals7d:     sig.Last7Days,
		DiscoveredAt:  c.DiscoveredAt,
		Now:           now,
	})

	action := PlanAction(actionFacts{
		Name:          c.Name,
		OwnerAssigned: c.OwnerID != "",
		CoveragePct:   coverage,
		InFunnelLeads: ls.inFunnel,
		Signals7d:     sig.Last7Days,
		RecencyDays:   sig.RecencyDays,
		Risk:          risk,
		FunnelName:    ls.funnelName,
	}, now)

	return model.ComputedAccount{
		CompanyID:         c.ID,
		Name:              c.Name,
		Domain:            c.Domain,
		Industry:          c.Industry,
		ICPName:           icpNames[c.ICPID],
		FunnelName:        ls.funnelName,
		OwnerID:           c.OwnerID,
		HealthScore:       health,
		HealthDelta:       delta,
		RiskLevel:         risk,
		Stage:             stage,
		NextAction:        action,
		LeadCoveragePct:   coverage,
		SignalsLast7d:     sig.Last7Days,
		SignalRecencyDays: sig.RecencyDays,
		LastSignalAt:      sig.LastSignalAt,
		InFunnelLeads:     ls.inFunnel,
		LeadsEnriched:     c.LeadsEnriched,
		PipelineValue:     pipelineValue(c.Employees, ls.inFunnel, c.LeadsEnriched),
	}
}

// dealBand maps employee count to an approximate deal size in dollars.
func dealBand(employees int) int64 {
	switch {
	case employees <= 50:
		return 8_000
	case employees <= 200:
		return 15_000
	case employees <= 1000:
		return 30_000
	default:
		return 60_000
	}
}

// pipelineValue estimates the dollar value of an account's open
// pipeline: full deal size per in-funnel lead plus a tenth per enriched
// lead not yet enrolled.
func pipelineValue(employees, inFunnel, leadsEnriched int) int64 {
	band := dealBand(employees)
	return band*int64(inFunnel) + band/10*int64(leadsEnriched)
}

// buildOverview aggregates the account set for the dashboard header.
func buildOverview(accounts []model.ComputedAccount) model.Overview {
	ov := model.Overview{TotalAccounts: len(accounts)}
	if len(accounts) == 0 {
		return ov
	}

	healthSum := 0
	for _, a := range accounts {
		healthSum += a.HealthScore
		switch a.RiskLevel {
		case model.RiskHealthy:
			ov.HealthyCount++
		case model.RiskWatch:
			ov.WatchCount++
		case model.RiskAtRisk:
			ov.AtRiskCount++
		}
		if a.NextAction.Priority != model.PriorityLow {
			ov.OpenActions++
		}
		ov.SignalsLast7d += a.SignalsLast7d
		ov.PipelineValue += a.PipelineValue
	}
	ov.AvgHealthScore = int(math.Round(float64(healthSum) / float64(len(accounts))))

	return ov
}
