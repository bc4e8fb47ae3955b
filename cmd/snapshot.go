package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/engagement-cli/internal/engine"
	"github.com/sells-group/engagement-cli/internal/model"
	"github.com/sells-group/engagement-cli/internal/resilience"
	"github.com/sells-group/engagement-cli/internal/store"
)

var (
	snapshotFormat string
	snapshotNow    string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Compute the account health snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		now := time.Now().UTC()
		if snapshotNow != "" {
			parsed, err := time.Parse(time.RFC3339, snapshotNow)
			if err != nil {
				return eris.Wrap(err, "snapshot: parse --now")
			}
			now = parsed.UTC()
		}

		st, err := openStore(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close()

		retryCfg := resilience.DefaultRetryConfig()
		retryCfg.OnRetry = resilience.RetryLogger("fetch snapshot input")
		input, err := store.FetchInputWithRetry(ctx, st, retryCfg)
		if err != nil {
			return eris.Wrap(err, "snapshot: fetch input")
		}

		snap, err := engine.New(cfg.Engine).ComputeSnapshot(ctx, *input, now)
		if err != nil {
			return err
		}

		zap.L().Info("snapshot computed",
			zap.Int("accounts", len(snap.Accounts)),
			zap.Int("queue", len(snap.Queue)),
		)

		if snapshotFormat == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(snap)
		}
		printSnapshotSummary(snap)
		return nil
	},
}

func printSnapshotSummary(snap *model.Snapshot) {
	ov := snap.Overview
	fmt.Printf("Accounts: %d  (healthy %d / watch %d / at risk %d)\n",
		ov.TotalAccounts, ov.HealthyCount, ov.WatchCount, ov.AtRiskCount)
	fmt.Printf("Avg health: %d   Open actions: %d   Signals (7d): %d   Pipeline: $%d\n\n",
		ov.AvgHealthScore, ov.OpenActions, ov.SignalsLast7d, ov.PipelineValue)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRIORITY\tACCOUNT\tACTION\tDUE\tHEALTH\tRISK")
	for _, item := range snap.Queue {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			item.Priority, item.Name, item.Action,
			item.Due.Format("Jan 02 15:04"), item.HealthScore, item.RiskLevel)
	}
	w.Flush()

	if len(snap.OwnerPerformance) > 0 {
		fmt.Println()
		w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "OWNER\tTEAM\tMANAGED\tAT RISK\tAVG HEALTH\tOPEN")
		for _, p := range snap.OwnerPerformance {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n",
				p.Name, p.Team, p.ManagedAccounts, p.AtRiskAccounts, p.AvgHealthScore, p.OpenActions)
		}
		w.Flush()
	}
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotFormat, "format", "summary", "output format: summary or json")
	snapshotCmd.Flags().StringVar(&snapshotNow, "now", "", "override computation time (RFC3339) for reproducible output")
	rootCmd.AddCommand(snapshotCmd)
}
