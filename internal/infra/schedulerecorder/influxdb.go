//go:build !gcloud

package schedulerecorder

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/Murtaza813/Takhteet/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.GenerationRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "generation result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, generation result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "generation result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordGeneration(ctx context.Context, record domain.GenerationRecord) error {
	runID := record.RunID
	if runID == "" {
		runID = "default"
	}

	point := influxdb2.NewPoint(
		"generation_result",
		map[string]string{
			"run_id":    runID,
			"direction": record.Direction,
			"pace":      record.Pace,
			"month":     strconv.Itoa(record.Year) + "-" + strconv.Itoa(record.Month),
			"feasible":  strconv.FormatBool(record.Feasible),
		},
		map[string]interface{}{
			"working_days":    record.WorkingDays,
			"days_needed":     record.DaysNeeded,
			"requested_pages": record.RequestedPages,
			"planned_pages":   record.PlannedPages,
			"shortfall_pages": record.ShortfallPages,
			"duration_ms":     record.Duration.Milliseconds(),
		},
		time.Now(),
	)

	return r.writeAPI.WritePoint(ctx, point)
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	return r.writeAPI.Flush(ctx)
}

func (r *influxDBRecorder) Close() error {
	r.client.Close()
	return nil
}
