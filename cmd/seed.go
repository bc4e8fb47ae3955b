package main

import (
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/engagement-cli/internal/store"
)

var seedDBPath string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a sqlite snapshot database loaded with the demo dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		path := seedDBPath
		if path == "" {
			path = cfg.Store.DatabaseURL
		}
		if path == "" {
			return eris.New("seed: no database path; set --db or store.database_url")
		}

		st, err := store.NewSQLite(path)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Migrate(ctx); err != nil {
			return err
		}
		if err := st.Seed(ctx, store.DemoInput(time.Now().UTC())); err != nil {
			return err
		}

		zap.L().Info("seeded demo dataset", zap.String("path", path))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedDBPath, "db", "", "sqlite database path (default from config)")
	rootCmd.AddCommand(seedCmd)
}
