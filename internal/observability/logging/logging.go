package logging

import (
	"log/slog"
	"os"
)

// Environment selects the log output format.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// ServiceInfo identifies the running binary in logs and telemetry.
type ServiceInfo struct {
	Name    string
	Version string
}

// NewLogger builds the process logger: human-readable text in dev, JSON
// elsewhere, tagged with the service identity.
func NewLogger(info ServiceInfo, env Environment, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if env == EnvDev {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler).With(
		slog.String("service", info.Name),
		slog.String("version", info.Version),
	)
}
