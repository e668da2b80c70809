package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const scheduleTracerName = "github.com/Murtaza813/Takhteet/internal/service/schedule"

func ScheduleTracer() trace.Tracer {
	return otel.Tracer(scheduleTracerName)
}

func StartFeasibilitySpan(ctx context.Context, distance float64, workingDays int) (context.Context, trace.Span) {
	return ScheduleTracer().Start(ctx, "schedule.feasibility_check",
		trace.WithAttributes(
			attribute.Float64("check.distance_pages", distance),
			attribute.Int("check.working_days", workingDays),
		),
	)
}

func StartPaginationSpan(ctx context.Context, direction, pace string) (context.Context, trace.Span) {
	return ScheduleTracer().Start(ctx, "schedule.pagination",
		trace.WithAttributes(
			attribute.String("pagination.direction", direction),
			attribute.String("pagination.pace", pace),
		),
	)
}

func StartAssemblySpan(ctx context.Context, year, month int) (context.Context, trace.Span) {
	return ScheduleTracer().Start(ctx, "schedule.assembly",
		trace.WithAttributes(
			attribute.Int("assembly.year", year),
			attribute.Int("assembly.month", month),
		),
	)
}

func RecordFeasibilityResult(span trace.Span, feasible bool, daysNeeded, daysAvailable int) {
	span.SetAttributes(
		attribute.Bool("check.feasible", feasible),
		attribute.Int("check.days_needed", daysNeeded),
		attribute.Int("check.days_available", daysAvailable),
	)
	span.SetStatus(codes.Ok, "")
}

func RecordPaginationResult(span trace.Span, entries int, total float64, err error) {
	span.SetAttributes(
		attribute.Int("pagination.entries", entries),
		attribute.Float64("pagination.total_pages", total),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordAssemblyResult(span trace.Span, records, shortfallDays int) {
	span.SetAttributes(
		attribute.Int("assembly.records", records),
		attribute.Int("assembly.shortfall_days", shortfallDays),
	)
	span.SetStatus(codes.Ok, "")
}
