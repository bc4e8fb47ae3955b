package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/engagement-cli/internal/model"
	"github.com/sells-group/engagement-cli/internal/scraper"
)

var (
	estimateFrequency   string
	estimateCategory    string
	estimateSources     []string
	estimateMaxPerRun   int
	estimateBaseCredits int
	estimateFormat      string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate daily signal and credit usage for a scraper assignment",
	Example: `  engagement-cli estimate --frequency daily --category hiring \
    --source linkedin=40 --source job_boards=25 --max-per-run 50 --base-credits 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, err := parseSourceFlags(estimateSources)
		if err != nil {
			return err
		}

		assignment := model.ScraperAssignment{
			Frequency:         model.Frequency(estimateFrequency),
			Sources:           sources,
			MaxSignalsPerRun:  estimateMaxPerRun,
			BaseCreditsPerRun: estimateBaseCredits,
			Category:          estimateCategory,
		}

		tables, err := scraper.LoadTables(cfg.Scraper.TablesPath)
		if err != nil {
			return err
		}

		est := scraper.NewEstimator(tables).Estimate(assignment)

		if estimateFormat == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(est)
		}
		printEstimate(est)
		return nil
	},
}

// parseSourceFlags parses repeated --source name=limit values. A
// trailing ":off" marks the source disabled but still listed.
func parseSourceFlags(flags []string) ([]model.ScraperSource, error) {
	sources := make([]model.ScraperSource, 0, len(flags))
	for _, f := range flags {
		name, limitStr, ok := strings.Cut(f, "=")
		if !ok || name == "" {
			return nil, eris.Errorf("estimate: invalid --source %q, want name=limit", f)
		}

		enabled := true
		if rest, found := strings.CutSuffix(limitStr, ":off"); found {
			enabled = false
			limitStr = rest
		}

		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			return nil, eris.Errorf("estimate: invalid limit in --source %q", f)
		}

		sources = append(sources, model.ScraperSource{Name: name, Enabled: enabled, Limit: limit})
	}
	return sources, nil
}

func printEstimate(est model.ScraperEstimate) {
	fmt.Printf("Runs/day: %.3f   Signals/run: %d   Signals/day: %d\n",
		est.RunsPerDay, est.SignalsPerRun, est.SignalsPerDay)
	fmt.Printf("Credits/run: %d   Credits/day: %d\n\n", est.CreditsPerRun, est.CreditsPerDay)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SOURCE\tENABLED\tREQUESTED\tSIGNALS/DAY\tCREDITS/DAY")
	for _, s := range est.Sources {
		fmt.Fprintf(w, "%s\t%t\t%d\t%d\t%d\n",
			s.Source, s.Enabled, s.RequestedLimit, s.SignalsPerDay, s.CreditsPerDay)
	}
	w.Flush()
}

func init() {
	estimateCmd.Flags().StringVar(&estimateFrequency, "frequency", "daily", "run frequency: hourly, daily, weekly")
	estimateCmd.Flags().StringVar(&estimateCategory, "category", "", "signal category for cost factor lookup")
	estimateCmd.Flags().StringArrayVar(&estimateSources, "source", nil, "source as name=limit (repeatable, append :off to disable)")
	estimateCmd.Flags().IntVar(&estimateMaxPerRun, "max-per-run", 0, "hard cap on signals per run (0 = uncapped)")
	estimateCmd.Flags().IntVar(&estimateBaseCredits, "base-credits", 0, "base credits consumed per run")
	estimateCmd.Flags().StringVar(&estimateFormat, "format", "summary", "output format: summary or json")
	rootCmd.AddCommand(estimateCmd)
}
