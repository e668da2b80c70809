//go:build gcloud

package main

import (
	"context"
	"os"
	"time"

	mexporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/metric"
	texporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/trace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/Murtaza813/Takhteet/internal/config"
	"github.com/Murtaza813/Takhteet/internal/observability"
	"github.com/Murtaza813/Takhteet/internal/observability/logging"
)

// initObservability exports telemetry to Cloud Trace and Cloud Monitoring.
// Without a project ID the default OTLP pipeline applies.
func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "takhteet"
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	obsCfg := observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    serviceName,
			Version: Version,
		},
		Environment:  env,
		LogLevel:     cfg.LogLevel,
		SamplingRate: 1.0,
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT_ID")
	}
	if projectID != "" {
		traceExporter, err := texporter.New(texporter.WithProjectID(projectID))
		if err != nil {
			return nil, err
		}
		metricExporter, err := mexporter.New(mexporter.WithProjectID(projectID))
		if err != nil {
			return nil, err
		}
		obsCfg.TraceExporter = traceExporter
		obsCfg.MetricReader = sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(60*time.Second))
	}

	return observability.Init(ctx, obsCfg)
}
