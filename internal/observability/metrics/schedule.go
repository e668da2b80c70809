package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const scheduleMeterName = "schedule.service"

type ScheduleMetrics struct {
	generations        metric.Int64Counter
	generationDuration metric.Float64Histogram
	shortfallPages     metric.Float64Histogram
	workingDays        metric.Int64Histogram
}

func NewScheduleMetrics() (*ScheduleMetrics, error) {
	meter := otel.Meter(scheduleMeterName)

	generations, err := meter.Int64Counter(
		"schedule_generations_total",
		metric.WithDescription("Total number of schedule generation runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, err
	}

	generationDuration, err := meter.Float64Histogram(
		"schedule_generation_duration_seconds",
		metric.WithDescription("Time spent generating a schedule"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5,
		),
	)
	if err != nil {
		return nil, err
	}

	shortfallPages, err := meter.Float64Histogram(
		"schedule_shortfall_pages",
		metric.WithDescription("Pages short of the requested distance per run"),
		metric.WithUnit("{page}"),
		metric.WithExplicitBucketBoundaries(0.5, 1, 2, 5, 10, 20, 50),
	)
	if err != nil {
		return nil, err
	}

	workingDays, err := meter.Int64Histogram(
		"schedule_working_days",
		metric.WithDescription("Working days available per generation run"),
		metric.WithUnit("{day}"),
		metric.WithExplicitBucketBoundaries(5, 10, 15, 20, 25, 31),
	)
	if err != nil {
		return nil, err
	}

	return &ScheduleMetrics{
		generations:        generations,
		generationDuration: generationDuration,
		shortfallPages:     shortfallPages,
		workingDays:        workingDays,
	}, nil
}

func (m *ScheduleMetrics) RecordGeneration(ctx context.Context, direction, pace, outcome string) {
	m.generations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("direction", direction),
		attribute.String("pace", pace),
		attribute.String("outcome", outcome),
	))
}

func (m *ScheduleMetrics) RecordGenerationDuration(ctx context.Context, outcome string, duration time.Duration) {
	m.generationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *ScheduleMetrics) RecordShortfall(ctx context.Context, pages float64) {
	if pages <= 0 {
		return
	}
	m.shortfallPages.Record(ctx, pages)
}

func (m *ScheduleMetrics) RecordWorkingDays(ctx context.Context, days int) {
	m.workingDays.Record(ctx, int64(days))
}
