// Package telemetry exports engine usage metrics to an OTEL Collector.
// The engine itself stays pure; the transport layer records metrics
// around engine calls through the Metrics interface.
package telemetry

import (
	"context"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
)

// Metrics records engine usage for an external observability system.
type Metrics interface {
	// RecordAnalysis records one completed prompt analysis.
	RecordAnalysis(ctx context.Context, result *domain.AnalysisResult)
	// RecordAggregation records one analytics view computation.
	RecordAggregation(ctx context.Context, view string, records int)
	// RecordLoad records a completed dataset load.
	RecordLoad(ctx context.Context, records int)
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}
