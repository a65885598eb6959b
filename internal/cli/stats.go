package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/dataset"
	"github.com/jonathan-long-lin/prompt-analyzer/internal/insights"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Compute analytics over a historical dataset",
	Long: `Load JSONL prompt records and print one analytics view as JSON.

Examples:
  prompt-analyzer stats --view overview --file data/prompts.jsonl
  prompt-analyzer stats --view users --limit 10 --file data/prompts.jsonl
  prompt-analyzer stats --view temporal --period weekly --file data/prompts.jsonl`,
	RunE: runStats,
}

var (
	statsView   string
	statsPeriod string
	statsLimit  int
	statsFiles  []string
)

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVar(&statsView, "view", "overview",
		"View to compute: overview, users, temporal, models, categories, quality")
	statsCmd.Flags().StringVar(&statsPeriod, "period", "daily",
		"Bucketing period for the temporal view: hourly, daily, weekly, monthly")
	statsCmd.Flags().IntVar(&statsLimit, "limit", 0, "Limit for the users view (0 = all)")
	statsCmd.Flags().StringSliceVar(&statsFiles, "file", nil, "Dataset file(s) to load (repeatable)")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	files := statsFiles
	if len(files) == 0 {
		files = cfg.Dataset.Files
	}
	if len(files) == 0 {
		return fmt.Errorf("no dataset files given: use --file or set dataset.files in the config")
	}

	loader := dataset.NewLoader(dataset.Options{
		Strict:          cfg.Dataset.Strict,
		NormalizeLegacy: cfg.Dataset.NormalizeLegacy,
		Logger:          slog.Default(),
	})
	records, err := loader.LoadFiles(files...)
	if err != nil {
		return err
	}

	var view any
	switch statsView {
	case "overview":
		view = insights.ComputeOverview(records)
	case "users":
		view = insights.ComputeUsers(records, statsLimit)
	case "temporal":
		period, err := insights.ParsePeriod(statsPeriod)
		if err != nil {
			return err
		}
		view = insights.ComputeTemporal(records, period)
	case "models":
		view = insights.ComputeModels(records)
	case "categories":
		view = insights.ComputeCategories(records)
	case "quality":
		view = insights.ComputeQuality(records, cfg.QualityBands())
	default:
		return fmt.Errorf("unknown view %q", statsView)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(view)
}
