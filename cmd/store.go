package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/engagement-cli/internal/config"
	"github.com/sells-group/engagement-cli/internal/store"
)

// openStore builds a Store from config. The fixture driver serves the
// built-in demo dataset and needs no database.
func openStore(ctx context.Context, cfg config.StoreConfig) (store.Store, error) {
	switch cfg.Driver {
	case "postgres":
		return store.NewPostgres(ctx, cfg)
	case "sqlite":
		if cfg.DatabaseURL == "" {
			return nil, eris.New("store: sqlite driver requires database_url")
		}
		return store.NewSQLite(cfg.DatabaseURL)
	case "fixture", "":
		return store.NewFixture(store.DemoInput(time.Now().UTC())), nil
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
}
