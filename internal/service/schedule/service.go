// Package schedule assembles the final month schedule: it gates generation
// on the feasibility check, runs the planner or the backward allocator, lays
// revision assignments over the working days, and emits one record per
// calendar day.
package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/Murtaza813/Takhteet/internal/config"
	"github.com/Murtaza813/Takhteet/internal/domain"
	"github.com/Murtaza813/Takhteet/internal/observability/metrics"
	"github.com/Murtaza813/Takhteet/internal/observability/tracing"
	"github.com/Murtaza813/Takhteet/internal/service/allocator"
	"github.com/Murtaza813/Takhteet/internal/service/calendar"
	"github.com/Murtaza813/Takhteet/internal/service/feasibility"
	"github.com/Murtaza813/Takhteet/internal/service/pace"
	"github.com/Murtaza813/Takhteet/internal/service/planner"
)

type Service struct {
	cfg             *config.ScheduleConfig
	scheduleMetrics *metrics.ScheduleMetrics
}

func NewService(cfg *config.ScheduleConfig, scheduleMetrics *metrics.ScheduleMetrics) *Service {
	if cfg == nil {
		cfg = config.LoadScheduleConfig()
	}
	return &Service{
		cfg:             cfg,
		scheduleMetrics: scheduleMetrics,
	}
}

// Generate runs one scheduling pass. The three outcomes mirror the error
// taxonomy: a nil schedule with a non-nil feasibility result means the
// configuration was rejected as infeasible; an error means the configuration
// itself is invalid; otherwise the schedule is complete, possibly carrying a
// reported shortfall.
func (s *Service) Generate(ctx context.Context, req *domain.ScheduleRequest, runID string) (*domain.Schedule, *feasibility.Result, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	holidays := calendar.Holidays(req.Year, req.Month, req.ExtraHolidays)
	daysInMonth := calendar.DaysIn(req.Year, req.Month)
	workingDays := daysInMonth - len(holidays)
	maxWorkingDays := daysInMonth - len(calendar.Sundays(req.Year, req.Month))
	distance := req.Distance()

	feasCtx, feasSpan := tracing.StartFeasibilitySpan(ctx, distance, workingDays)
	check := feasibility.Check(req, workingDays, maxWorkingDays)
	tracing.RecordFeasibilityResult(feasSpan, check.Feasible, check.DaysNeeded, check.DaysAvailable)
	feasSpan.End()

	if s.scheduleMetrics != nil {
		s.scheduleMetrics.RecordWorkingDays(ctx, workingDays)
	}

	if !check.Feasible {
		slog.InfoContext(feasCtx, "schedule infeasible",
			slog.String("run_id", runID),
			slog.Int("days_needed", check.DaysNeeded),
			slog.Int("days_available", check.DaysAvailable),
			slog.Bool("impossible", check.Impossible),
			slog.Int("alternatives", len(check.Alternatives)),
		)
		s.recordOutcome(ctx, req, "infeasible", time.Since(start))
		return nil, &check, nil
	}

	pagCtx, pagSpan := tracing.StartPaginationSpan(ctx, req.Direction.String(), req.Pace.String())

	pattern, ok := s.pattern(req, distance, workingDays)
	if !ok {
		// The feasibility check accepted this budget, so the adaptive
		// search disagreeing with it indicates a bug, not a user error.
		tracing.RecordPaginationResult(pagSpan, 0, 0, nil)
		pagSpan.End()
		slog.ErrorContext(pagCtx, "mixed pattern search failed after feasibility passed",
			slog.String("run_id", runID),
			slog.Float64("distance", distance),
			slog.Int("working_days", workingDays),
		)
		check.Feasible = false
		s.recordOutcome(ctx, req, "infeasible", time.Since(start))
		return nil, &check, nil
	}

	var entries []domain.PlanEntry
	if req.Direction.IsBackward() {
		section, err := allocator.StartSection(req.StartSurah, req.StartPage)
		if err != nil {
			tracing.RecordPaginationResult(pagSpan, 0, 0, err)
			pagSpan.End()
			s.recordOutcome(ctx, req, "rejected", time.Since(start))
			return nil, nil, err
		}
		result := allocator.Allocate(section, float64(req.StartPage), distance, pattern, workingDays)
		entries = result.Entries
	} else {
		entries = planner.Plan(req.StartPage, req.TargetPage, pattern, workingDays)
	}

	total := 0.0
	for _, e := range entries {
		total += e.Amount
	}
	tracing.RecordPaginationResult(pagSpan, len(entries), total, nil)
	pagSpan.End()

	asmCtx, asmSpan := tracing.StartAssemblySpan(ctx, req.Year, int(req.Month))
	records := s.assemble(req, daysInMonth, holidays, entries)

	sched := &domain.Schedule{
		RunID:          runID,
		Student:        req.Student,
		Year:           req.Year,
		Month:          req.Month,
		Direction:      req.Direction,
		Pace:           req.Pace,
		WorkingDays:    workingDays,
		Holidays:       holidays,
		Records:        records,
		RequestedPages: distance,
		PlannedPages:   total,
	}
	if total < distance {
		sched.ShortfallPages = distance - total
	}
	if len(entries) < workingDays {
		sched.ShortfallDays = workingDays - len(entries)
	}
	tracing.RecordAssemblyResult(asmSpan, len(records), sched.ShortfallDays)
	asmSpan.End()

	outcome := "success"
	if sched.ShortfallPages > 0 || sched.ShortfallDays > 0 {
		outcome = "partial"
		slog.WarnContext(asmCtx, "allocation fell short of the requested distance",
			slog.String("run_id", runID),
			slog.Float64("requested_pages", distance),
			slog.Float64("planned_pages", total),
			slog.Int("uncovered_days", sched.ShortfallDays),
		)
	}
	s.recordOutcome(ctx, req, outcome, time.Since(start))
	if s.scheduleMetrics != nil {
		s.scheduleMetrics.RecordShortfall(ctx, sched.ShortfallPages)
	}

	slog.InfoContext(ctx, "schedule generated",
		slog.String("run_id", runID),
		slog.Int("working_days", workingDays),
		slog.Float64("planned_pages", total),
		slog.String("outcome", outcome),
	)

	return sched, nil, nil
}

// pattern builds the daily-amount template for the request's pace.
func (s *Service) pattern(req *domain.ScheduleRequest, distance float64, workingDays int) (pace.Pattern, bool) {
	if req.Pace == domain.PaceMixed {
		return pace.Mixed(distance, workingDays)
	}
	return pace.Fixed(req.Pace, workingDays), true
}

func (s *Service) recordOutcome(ctx context.Context, req *domain.ScheduleRequest, outcome string, duration time.Duration) {
	if s.scheduleMetrics == nil {
		return
	}
	s.scheduleMetrics.RecordGeneration(ctx, req.Direction.String(), req.Pace.String(), outcome)
	s.scheduleMetrics.RecordGenerationDuration(ctx, outcome, duration)
}
