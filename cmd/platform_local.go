//go:build !gcloud

package main

import (
	"context"
	"os"

	"github.com/Murtaza813/Takhteet/internal/config"
	"github.com/Murtaza813/Takhteet/internal/observability"
	"github.com/Murtaza813/Takhteet/internal/observability/logging"
)

// initObservability wires the default telemetry pipeline: OTLP HTTP export
// when OTEL_EXPORTER_OTLP_ENDPOINT is set, in-process providers otherwise.
func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "takhteet"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    serviceName,
			Version: Version,
		},
		Environment:  env,
		LogLevel:     cfg.LogLevel,
		SamplingRate: 1.0,
	})
}
