package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/analyzer"
	"github.com/jonathan-long-lin/prompt-analyzer/internal/dataset"
	"github.com/jonathan-long-lin/prompt-analyzer/internal/telemetry"
	"github.com/jonathan-long-lin/prompt-analyzer/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Load the historical dataset and start the JSON API.

Examples:
  prompt-analyzer serve                          # Listen on :8080
  prompt-analyzer serve --addr :3000             # Listen on :3000
  prompt-analyzer serve --config config.yaml     # Dataset and lexicons from config`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutting down")
		cancel()
	}()

	loader := dataset.NewLoader(dataset.Options{
		Strict:          cfg.Dataset.Strict,
		NormalizeLegacy: cfg.Dataset.NormalizeLegacy,
		Logger:          logger,
	})
	records, err := loader.LoadFiles(cfg.Dataset.Files...)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	logger.Info("dataset loaded", "records", len(records), "files", len(cfg.Dataset.Files))

	var metrics telemetry.Metrics = telemetry.NewNoOpMetrics()
	if cfg.Telemetry.Enabled {
		exporter, err := telemetry.NewExporter(ctx, telemetry.Config{
			Endpoint: cfg.Telemetry.Endpoint,
			Enabled:  cfg.Telemetry.Enabled,
			Insecure: cfg.Telemetry.Insecure,
		})
		if err != nil {
			logger.Warn("telemetry disabled", "reason", err.Error())
		} else {
			metrics = exporter
			defer func() {
				if err := exporter.Close(context.Background()); err != nil {
					logger.Error("failed to close telemetry exporter: " + err.Error())
				}
			}()
		}
	}
	metrics.RecordLoad(ctx, len(records))

	a := analyzer.New(analyzer.Lexicon{
		StopWords:     cfg.Analyzer.StopWords,
		PositiveWords: cfg.Analyzer.PositiveWords,
		NegativeWords: cfg.Analyzer.NegativeWords,
	})

	server := web.NewServer(cfg.Server.Addr, a, records, cfg.QualityBands(), metrics, logger)
	return server.Start(ctx)
}
