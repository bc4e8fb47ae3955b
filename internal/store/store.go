// Package store sources raw snapshot entities for the engine. The
// interface is read-only: the engine never writes derived output back.
package store

import (
	"context"

	"github.com/sells-group/engagement-cli/internal/model"
	"github.com/sells-group/engagement-cli/internal/resilience"
)

// Store is the narrow read-only repository the engine pulls from.
type Store interface {
	Companies(ctx context.Context) ([]model.Company, error)
	Leads(ctx context.Context) ([]model.Lead, error)
	Owners(ctx context.Context) ([]model.Owner, error)
	ICPNames(ctx context.Context) (map[string]string, error)
	FunnelNames(ctx context.Context) (map[string]string, error)
	Close() error
}

// FetchInput assembles a full snapshot input from the store.
func FetchInput(ctx context.Context, s Store) (*model.SnapshotInput, error) {
	companies, err := s.Companies(ctx)
	if err != nil {
		return nil, err
	}
	leads, err := s.Leads(ctx)
	if err != nil {
		return nil, err
	}
	owners, err := s.Owners(ctx)
	if err != nil {
		return nil, err
	}
	icps, err := s.ICPNames(ctx)
	if err != nil {
		return nil, err
	}
	funnels, err := s.FunnelNames(ctx)
	if err != nil {
		return nil, err
	}

	return &model.SnapshotInput{
		Companies:   companies,
		Leads:       leads,
		Owners:      owners,
		ICPNames:    icps,
		FunnelNames: funnels,
	}, nil
}

// FetchInputWithRetry wraps FetchInput with backoff against transient
// store failures.
func FetchInputWithRetry(ctx context.Context, s Store, cfg resilience.RetryConfig) (*model.SnapshotInput, error) {
	return resilience.DoVal(ctx, cfg, func(ctx context.Context) (*model.SnapshotInput, error) {
		return FetchInput(ctx, s)
	})
}
