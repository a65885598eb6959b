package telemetry

import (
	"context"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
)

// NoOpMetrics is a metrics recorder that does nothing.
type NoOpMetrics struct{}

// NewNoOpMetrics creates a new no-op recorder for graceful degradation.
func NewNoOpMetrics() *NoOpMetrics {
	return &NoOpMetrics{}
}

func (n *NoOpMetrics) RecordAnalysis(ctx context.Context, result *domain.AnalysisResult) {}

func (n *NoOpMetrics) RecordAggregation(ctx context.Context, view string, records int) {}

func (n *NoOpMetrics) RecordLoad(ctx context.Context, records int) {}

func (n *NoOpMetrics) Close(ctx context.Context) error { return nil }
