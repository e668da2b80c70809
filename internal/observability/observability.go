// Package observability wires OpenTelemetry trace and metric providers for
// the service. Export goes to an OTLP HTTP endpoint when
// OTEL_EXPORTER_OTLP_ENDPOINT is set; otherwise providers stay in-process so
// instrumented code keeps working without a collector.
package observability

import (
	"context"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"

	"github.com/Murtaza813/Takhteet/internal/observability/logging"
)

type Config struct {
	ServiceInfo  logging.ServiceInfo
	Environment  logging.Environment
	LogLevel     slog.Level
	SamplingRate float64

	// TraceExporter and MetricReader override the OTLP pipeline. Platform
	// wiring in cmd supplies these for gcloud builds.
	TraceExporter sdktrace.SpanExporter
	MetricReader  sdkmetric.Reader
}

type Resources struct {
	logger         *slog.Logger
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
}

func Init(ctx context.Context, cfg Config) (*Resources, error) {
	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceInfo.Name),
		semconv.ServiceVersion(cfg.ServiceInfo.Version),
		semconv.DeploymentEnvironmentName(string(cfg.Environment)),
	))
	if err != nil {
		return nil, err
	}

	r := &Resources{
		logger: logging.NewLogger(cfg.ServiceInfo, cfg.Environment, cfg.LogLevel),
	}

	sampling := cfg.SamplingRate
	if sampling <= 0 {
		sampling = 1.0
	}

	traceOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampling))),
	}
	metricOpts := []sdkmetric.Option{
		sdkmetric.WithResource(res),
	}

	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")

	switch {
	case cfg.TraceExporter != nil:
		traceOpts = append(traceOpts, sdktrace.WithBatcher(cfg.TraceExporter))
	case endpoint != "":
		traceExporter, err := otlptracehttp.New(ctx)
		if err != nil {
			return nil, err
		}
		traceOpts = append(traceOpts, sdktrace.WithBatcher(traceExporter))
	}

	switch {
	case cfg.MetricReader != nil:
		metricOpts = append(metricOpts, sdkmetric.WithReader(cfg.MetricReader))
	case endpoint != "":
		metricExporter, err := otlpmetrichttp.New(ctx)
		if err != nil {
			return nil, err
		}
		metricOpts = append(metricOpts, sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(30*time.Second)),
		))
	}

	r.tracerProvider = sdktrace.NewTracerProvider(traceOpts...)
	r.meterProvider = sdkmetric.NewMeterProvider(metricOpts...)

	otel.SetTracerProvider(r.tracerProvider)
	otel.SetMeterProvider(r.meterProvider)

	return r, nil
}

func (r *Resources) Logger() *slog.Logger {
	return r.logger
}

func (r *Resources) Shutdown(ctx context.Context) error {
	var firstErr error
	if r.tracerProvider != nil {
		if err := r.tracerProvider.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}
	if r.meterProvider != nil {
		if err := r.meterProvider.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
