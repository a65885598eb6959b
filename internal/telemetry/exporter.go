package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
)

const (
	serviceName    = "prompt-analyzer"
	serviceVersion = "1.0.0"
)

// Config holds exporter configuration.
type Config struct {
	Endpoint string
	Enabled  bool
	Insecure bool
}

// Exporter exports engine metrics to an OTEL Collector over OTLP/gRPC.
type Exporter struct {
	provider          *sdkmetric.MeterProvider
	meter             metric.Meter
	analysesTotal     metric.Int64Counter
	readabilityHist   metric.Float64Histogram
	aggregationsTotal metric.Int64Counter
	recordsLoaded     metric.Int64Counter
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("telemetry exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	analysesTotal, err := meter.Int64Counter(
		"prompt_analyzer_analyses_total",
		metric.WithDescription("Total number of prompt analyses performed"),
		metric.WithUnit("{analysis}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating analyses counter: %w", err)
	}

	readabilityHist, err := meter.Float64Histogram(
		"prompt_analyzer_readability_score",
		metric.WithDescription("Distribution of readability scores"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating readability histogram: %w", err)
	}

	aggregationsTotal, err := meter.Int64Counter(
		"prompt_analyzer_aggregations_total",
		metric.WithDescription("Total number of analytics view computations"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating aggregations counter: %w", err)
	}

	recordsLoaded, err := meter.Int64Counter(
		"prompt_analyzer_records_loaded_total",
		metric.WithDescription("Total number of dataset records loaded"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating records counter: %w", err)
	}

	return &Exporter{
		provider:          provider,
		meter:             meter,
		analysesTotal:     analysesTotal,
		readabilityHist:   readabilityHist,
		aggregationsTotal: aggregationsTotal,
		recordsLoaded:     recordsLoaded,
	}, nil
}

// RecordAnalysis records one completed prompt analysis.
func (e *Exporter) RecordAnalysis(ctx context.Context, result *domain.AnalysisResult) {
	opt := metric.WithAttributes(
		attribute.String("complexity_level", string(result.ComplexityLevel)),
		attribute.String("sentiment", string(result.Sentiment)),
	)
	e.analysesTotal.Add(ctx, 1, opt)
	e.readabilityHist.Record(ctx, result.ReadabilityScore, opt)
}

// RecordAggregation records one analytics view computation.
func (e *Exporter) RecordAggregation(ctx context.Context, view string, records int) {
	e.aggregationsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("view", view),
		attribute.Int("records", records),
	))
}

// RecordLoad records a completed dataset load.
func (e *Exporter) RecordLoad(ctx context.Context, records int) {
	e.recordsLoaded.Add(ctx, int64(records))
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
