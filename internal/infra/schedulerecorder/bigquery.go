//go:build gcloud

package schedulerecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/Murtaza813/Takhteet/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt     time.Time `bigquery:"recorded_at"`
	RunID          string    `bigquery:"run_id"`
	Student        string    `bigquery:"student"`
	Year           int64     `bigquery:"year"`
	Month          int64     `bigquery:"month"`
	Direction      string    `bigquery:"direction"`
	Pace           string    `bigquery:"pace"`
	Feasible       bool      `bigquery:"feasible"`
	WorkingDays    int64     `bigquery:"working_days"`
	DaysNeeded     int64     `bigquery:"days_needed"`
	RequestedPages float64   `bigquery:"requested_pages"`
	PlannedPages   float64   `bigquery:"planned_pages"`
	ShortfallPages float64   `bigquery:"shortfall_pages"`
	DurationMs     int64     `bigquery:"duration_ms"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.GenerationRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "generation result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, generation result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, generation result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	table := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable)

	slog.InfoContext(ctx, "generation result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: table.Inserter(),
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordGeneration(ctx context.Context, record domain.GenerationRecord) error {
	row := &bigQueryRecord{
		RecordedAt:     time.Now(),
		RunID:          record.RunID,
		Student:        record.Student,
		Year:           int64(record.Year),
		Month:          int64(record.Month),
		Direction:      record.Direction,
		Pace:           record.Pace,
		Feasible:       record.Feasible,
		WorkingDays:    int64(record.WorkingDays),
		DaysNeeded:     int64(record.DaysNeeded),
		RequestedPages: record.RequestedPages,
		PlannedPages:   record.PlannedPages,
		ShortfallPages: record.ShortfallPages,
		DurationMs:     record.Duration.Milliseconds(),
	}

	if err := r.inserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert generation result to BigQuery",
			slog.String("error", err.Error()),
			slog.String("run_id", record.RunID),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(_ context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
