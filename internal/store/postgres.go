package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/engagement-cli/internal/config"
	"github.com/sells-group/engagement-cli/internal/db"
	"github.com/sells-group/engagement-cli/internal/model"
)

// PostgresStore implements Store over pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

const (
	sqlCompanies = `SELECT id, name, domain, industry, employees, funding_stage, enrichment_status,
		leads_enriched, lead_target, relevance_score, discovered_at, icp_id, owner_id
		FROM companies ORDER BY id`
	sqlSignals = `SELECT company_id, type, summary, occurred_at FROM signals ORDER BY company_id, occurred_at`
	sqlLeads   = `SELECT id, company_id, status, funnel_id, enriched_at FROM leads ORDER BY id`
	sqlOwners  = `SELECT id, name, role, team, response_sla_hours, max_accounts FROM owners ORDER BY id`
	sqlICPs    = `SELECT id, name FROM icps`
	sqlFunnels = `SELECT id, name FROM funnels`
)

// NewPostgres creates a PostgresStore with a connection pool sized per config.
func NewPostgres(ctx context.Context, cfg config.StoreConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if cfg.MaxConns > 0 {
		maxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		minConns = cfg.MinConns
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}

	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

// NewPostgresFromPool wraps an existing pool; used by tests.
func NewPostgresFromPool(pool db.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

// Companies loads all companies with their signal histories attached.
func (s *PostgresStore) Companies(ctx context.Context) ([]model.Company, error) {
	rows, err := s.pool.Query(ctx, sqlCompanies)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: query companies")
	}
	defer rows.Close()

	var companies []model.Company
	index := make(map[string]int)
	for rows.Next() {
		var c model.Company
		var ownerID, icpID *string
		if err := rows.Scan(&c.ID, &c.Name, &c.Domain, &c.Industry, &c.Employees,
			&c.FundingStage, &c.EnrichmentStatus, &c.LeadsEnriched, &c.LeadTarget,
			&c.RelevanceScore, &c.DiscoveredAt, &icpID, &ownerID); err != nil {
			return nil, eris.Wrap(err, "postgres: scan company")
		}
		if icpID != nil {
			c.ICPID = *icpID
		}
		if ownerID != nil {
			c.OwnerID = *ownerID
		}
		index[c.ID] = len(companies)
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "postgres: iterate companies")
	}

	sigRows, err := s.pool.Query(ctx, sqlSignals)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: query signals")
	}
	defer sigRows.Close()

	for sigRows.Next() {
		var companyID string
		var sig model.Signal
		if err := sigRows.Scan(&companyID, &sig.Type, &sig.Summary, &sig.OccurredAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan signal")
		}
		if i, ok := index[companyID]; ok {
			companies[i].Signals = append(companies[i].Signals, sig)
		}
	}
	if err := sigRows.Err(); err != nil {
		return nil, eris.Wrap(err, "postgres: iterate signals")
	}

	return companies, nil
}

func (s *PostgresStore) Leads(ctx context.Context) ([]model.Lead, error) {
	rows, err := s.pool.Query(ctx, sqlLeads)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: query leads")
	}
	defer rows.Close()

	var leads []model.Lead
	for rows.Next() {
		var l model.Lead
		var funnelID *string
		if err := rows.Scan(&l.ID, &l.CompanyID, &l.Status, &funnelID, &l.EnrichedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan lead")
		}
		if funnelID != nil {
			l.FunnelID = *funnelID
		}
		leads = append(leads, l)
	}
	return leads, eris.Wrap(rows.Err(), "postgres: iterate leads")
}

func (s *PostgresStore) Owners(ctx context.Context) ([]model.Owner, error) {
	rows, err := s.pool.Query(ctx, sqlOwners)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: query owners")
	}
	defer rows.Close()

	var owners []model.Owner
	for rows.Next() {
		var o model.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.Role, &o.Team, &o.ResponseSLAHours, &o.MaxAccounts); err != nil {
			return nil, eris.Wrap(err, "postgres: scan owner")
		}
		owners = append(owners, o)
	}
	return owners, eris.Wrap(rows.Err(), "postgres: iterate owners")
}

func (s *PostgresStore) ICPNames(ctx context.Context) (map[string]string, error) {
	return s.nameMap(ctx, sqlICPs, "icps")
}

func (s *PostgresStore) FunnelNames(ctx context.Context) (map[string]string, error) {
	return s.nameMap(ctx, sqlFunnels, "funnels")
}

func (s *PostgresStore) nameMap(ctx context.Context, query, table string) (map[string]string, error) {
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: query %s", table)
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, eris.Wrapf(err, "postgres: scan %s", table)
		}
		names[id] = name
	}
	return names, eris.Wrapf(rows.Err(), "postgres: iterate %s", table)
}
