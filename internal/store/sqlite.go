package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/engagement-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	db.SetMaxOpenConns(1)
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS icps (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS funnels (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS owners (
	id                 TEXT PRIMARY KEY,
	name               TEXT NOT NULL,
	role               TEXT NOT NULL DEFAULT 'rep',
	team               TEXT NOT NULL DEFAULT '',
	response_sla_hours INTEGER NOT NULL DEFAULT 24,
	max_accounts       INTEGER NOT NULL DEFAULT 25
);

CREATE TABLE IF NOT EXISTS companies (
	id                TEXT PRIMARY KEY,
	name              TEXT NOT NULL,
	domain            TEXT NOT NULL DEFAULT '',
	industry          TEXT NOT NULL DEFAULT '',
	employees         INTEGER NOT NULL DEFAULT 0,
	funding_stage     TEXT NOT NULL DEFAULT '',
	enrichment_status TEXT NOT NULL DEFAULT '',
	leads_enriched    INTEGER NOT NULL DEFAULT 0,
	lead_target       INTEGER NOT NULL DEFAULT 0,
	relevance_score   REAL NOT NULL DEFAULT 0,
	discovered_at     DATETIME NOT NULL,
	icp_id            TEXT REFERENCES icps(id),
	owner_id          TEXT REFERENCES owners(id)
);

CREATE TABLE IF NOT EXISTS signals (
	id          TEXT PRIMARY KEY,
	company_id  TEXT NOT NULL REFERENCES companies(id),
	type        TEXT NOT NULL,
	summary     TEXT NOT NULL DEFAULT '',
	occurred_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS leads (
	id          TEXT PRIMARY KEY,
	company_id  TEXT NOT NULL REFERENCES companies(id),
	status      TEXT NOT NULL DEFAULT 'discovered',
	funnel_id   TEXT REFERENCES funnels(id),
	enriched_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_signals_company_id ON signals(company_id);
CREATE INDEX IF NOT EXISTS idx_leads_company_id ON leads(company_id);
CREATE INDEX IF NOT EXISTS idx_companies_owner_id ON companies(owner_id);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Seed loads a snapshot input into the database. Existing rows are kept;
// callers seed into a fresh file.
func (s *SQLiteStore) Seed(ctx context.Context, in model.SnapshotInput) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin seed")
	}
	defer tx.Rollback()

	for id, name := range in.ICPNames {
		if _, err := tx.ExecContext(ctx, `INSERT INTO icps (id, name) VALUES (?, ?)`, id, name); err != nil {
			return eris.Wrap(err, "sqlite: insert icp")
		}
	}
	for id, name := range in.FunnelNames {
		if _, err := tx.ExecContext(ctx, `INSERT INTO funnels (id, name) VALUES (?, ?)`, id, name); err != nil {
			return eris.Wrap(err, "sqlite: insert funnel")
		}
	}
	for _, o := range in.Owners {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO owners (id, name, role, team, response_sla_hours, max_accounts) VALUES (?, ?, ?, ?, ?, ?)`,
			o.ID, o.Name, string(o.Role), o.Team, o.ResponseSLAHours, o.MaxAccounts); err != nil {
			return eris.Wrap(err, "sqlite: insert owner")
		}
	}
	for _, c := range in.Companies {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO companies (id, name, domain, industry, employees, funding_stage, enrichment_status,
				leads_enriched, lead_target, relevance_score, discovered_at, icp_id, owner_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.Domain, c.Industry, c.Employees, c.FundingStage, c.EnrichmentStatus,
			c.LeadsEnriched, c.LeadTarget, c.RelevanceScore, c.DiscoveredAt.UTC(),
			nullable(c.ICPID), nullable(c.OwnerID)); err != nil {
			return eris.Wrapf(err, "sqlite: insert company %s", c.ID)
		}
		for _, sig := range c.Signals {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO signals (id, company_id, type, summary, occurred_at) VALUES (?, ?, ?, ?, ?)`,
				uuid.New().String(), c.ID, string(sig.Type), sig.Summary, sig.OccurredAt.UTC()); err != nil {
				return eris.Wrapf(err, "sqlite: insert signal for %s", c.ID)
			}
		}
	}
	for _, l := range in.Leads {
		id := l.ID
		if id == "" {
			id = uuid.New().String()
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO leads (id, company_id, status, funnel_id, enriched_at) VALUES (?, ?, ?, ?, ?)`,
			id, l.CompanyID, string(l.Status), nullable(l.FunnelID), l.EnrichedAt.UTC()); err != nil {
			return eris.Wrapf(err, "sqlite: insert lead %s", id)
		}
	}

	return eris.Wrap(tx.Commit(), "sqlite: commit seed")
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (s *SQLiteStore) Companies(ctx context.Context) ([]model.Company, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, domain, industry, employees, funding_stage, enrichment_status,
			leads_enriched, lead_target, relevance_score, discovered_at, icp_id, owner_id
		 FROM companies ORDER BY id`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query companies")
	}
	defer rows.Close()

	var companies []model.Company
	index := make(map[string]int)
	for rows.Next() {
		var c model.Company
		var icpID, ownerID sql.NullString
		var discovered time.Time
		if err := rows.Scan(&c.ID, &c.Name, &c.Domain, &c.Industry, &c.Employees,
			&c.FundingStage, &c.EnrichmentStatus, &c.LeadsEnriched, &c.LeadTarget,
			&c.RelevanceScore, &discovered, &icpID, &ownerID); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan company")
		}
		c.DiscoveredAt = discovered
		c.ICPID = icpID.String
		c.OwnerID = ownerID.String
		index[c.ID] = len(companies)
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate companies")
	}

	sigRows, err := s.db.QueryContext(ctx,
		`SELECT company_id, type, summary, occurred_at FROM signals ORDER BY company_id, occurred_at`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query signals")
	}
	defer sigRows.Close()

	for sigRows.Next() {
		var companyID string
		var sig model.Signal
		if err := sigRows.Scan(&companyID, &sig.Type, &sig.Summary, &sig.OccurredAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan signal")
		}
		if i, ok := index[companyID]; ok {
			companies[i].Signals = append(companies[i].Signals, sig)
		}
	}
	if err := sigRows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate signals")
	}

	return companies, nil
}

func (s *SQLiteStore) Leads(ctx context.Context) ([]model.Lead, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, company_id, status, funnel_id, enriched_at FROM leads ORDER BY id`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query leads")
	}
	defer rows.Close()

	var leads []model.Lead
	for rows.Next() {
		var l model.Lead
		var funnelID sql.NullString
		if err := rows.Scan(&l.ID, &l.CompanyID, &l.Status, &funnelID, &l.EnrichedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan lead")
		}
		l.FunnelID = funnelID.String
		leads = append(leads, l)
	}
	return leads, eris.Wrap(rows.Err(), "sqlite: iterate leads")
}

func (s *SQLiteStore) Owners(ctx context.Context) ([]model.Owner, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, role, team, response_sla_hours, max_accounts FROM owners ORDER BY id`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query owners")
	}
	defer rows.Close()

	var owners []model.Owner
	for rows.Next() {
		var o model.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.Role, &o.Team, &o.ResponseSLAHours, &o.MaxAccounts); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan owner")
		}
		owners = append(owners, o)
	}
	return owners, eris.Wrap(rows.Err(), "sqlite: iterate owners")
}

func (s *SQLiteStore) ICPNames(ctx context.Context) (map[string]string, error) {
	return s.nameMap(ctx, `SELECT id, name FROM icps`, "icps")
}

func (s *SQLiteStore) FunnelNames(ctx context.Context) (map[string]string, error) {
	return s.nameMap(ctx, `SELECT id, name FROM funnels`, "funnels")
}

func (s *SQLiteStore) nameMap(ctx context.Context, query, table string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: query %s", table)
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, eris.Wrapf(err, "sqlite: scan %s", table)
		}
		names[id] = name
	}
	return names, eris.Wrapf(rows.Err(), "sqlite: iterate %s", table)
}
