package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Murtaza813/Takhteet/internal/domain"
	"github.com/Murtaza813/Takhteet/internal/service/schedule"
)

type ScheduleHandler struct {
	scheduleService *schedule.Service
	selectionStore  domain.SelectionStore
	resultRecorder  domain.GenerationRecorder
	validate        *validator.Validate
}

func NewScheduleHandler(
	scheduleService *schedule.Service,
	selectionStore domain.SelectionStore,
	resultRecorder domain.GenerationRecorder,
) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		selectionStore:  selectionStore,
		resultRecorder:  resultRecorder,
		validate:        validator.New(),
	}
}

type generateRequest struct {
	Student       string `json:"student" validate:"required"`
	Year          int    `json:"year" validate:"required,gte=1990,lte=2200"`
	Month         int    `json:"month" validate:"required,gte=1,lte=12"`
	Direction     string `json:"direction" validate:"required,oneof=forward backward"`
	StartPage     int    `json:"start_page" validate:"required,gte=1,lte=604"`
	TargetPage    int    `json:"target_page" validate:"required,gte=1,lte=604"`
	Pace          string `json:"pace" validate:"required,oneof=half full mixed"`
	ExtraHolidays int    `json:"extra_holidays" validate:"gte=0,lte=10"`
	Revision      string `json:"revision" validate:"omitempty,oneof=none manual auto"`
	CurrentJuz    int    `json:"current_juz" validate:"omitempty,gte=1,lte=30"`
	StartSurah    int    `json:"start_surah" validate:"omitempty,gte=1"`
}

// HandleGenerate runs one scheduling pass. Infeasible configurations come
// back as 422 with the structured feasibility result; invalid ones as 400.
func (h *ScheduleHandler) HandleGenerate(c *gin.Context) {
	ctx := c.Request.Context()

	var body generateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	runID := c.GetHeader("X-Run-ID")
	if runID == "" {
		runID = uuid.NewString()
	}

	req := &domain.ScheduleRequest{
		Student:       body.Student,
		Year:          body.Year,
		Month:         time.Month(body.Month),
		Direction:     domain.Direction(body.Direction),
		StartPage:     body.StartPage,
		TargetPage:    body.TargetPage,
		Pace:          domain.PaceMode(body.Pace),
		ExtraHolidays: body.ExtraHolidays,
		Revision:      domain.RevisionMode(body.Revision),
		CurrentJuz:    body.CurrentJuz,
		StartSurah:    body.StartSurah,
	}
	if req.Revision == "" {
		req.Revision = domain.RevisionNone
	}

	// Manual revision reads the stored selection snapshot; the engine
	// itself never touches the store.
	if req.Revision == domain.RevisionManual && h.selectionStore != nil {
		selections, err := h.selectionStore.Get(ctx, req.Student)
		if err != nil {
			slog.ErrorContext(ctx, "failed to load revision selections",
				slog.String("student", req.Student),
				slog.String("error", err.Error()),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load revision selections"})
			return
		}
		req.Selections = selections
	}

	start := time.Now()
	sched, check, err := h.scheduleService.Generate(ctx, req, runID)
	if err != nil {
		if isConfigurationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.ErrorContext(ctx, "schedule generation failed",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "schedule generation failed"})
		return
	}

	record := domain.GenerationRecord{
		RunID:          runID,
		Student:        req.Student,
		Year:           req.Year,
		Month:          int(req.Month),
		Direction:      req.Direction.String(),
		Pace:           req.Pace.String(),
		Duration:       time.Since(start),
		RequestedPages: req.Distance(),
	}

	if check != nil {
		record.WorkingDays = check.DaysAvailable
		record.DaysNeeded = check.DaysNeeded
		h.recordResult(c, record)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":       "target not reachable with this configuration",
			"feasibility": check,
		})
		return
	}

	record.Feasible = true
	record.WorkingDays = sched.WorkingDays
	record.PlannedPages = sched.PlannedPages
	record.ShortfallPages = sched.ShortfallPages
	h.recordResult(c, record)

	c.JSON(http.StatusOK, sched)
}

func (h *ScheduleHandler) recordResult(c *gin.Context, record domain.GenerationRecord) {
	if h.resultRecorder == nil {
		return
	}
	if err := h.resultRecorder.RecordGeneration(c.Request.Context(), record); err != nil {
		slog.WarnContext(c.Request.Context(), "failed to record generation result",
			slog.String("run_id", record.RunID),
			slog.String("error", err.Error()),
		)
	}
}

func isConfigurationError(err error) bool {
	for _, target := range []error{
		domain.ErrInvalidDirection,
		domain.ErrInvalidPace,
		domain.ErrInvalidRevisionMode,
		domain.ErrPageOutOfRange,
		domain.ErrTargetBehindStart,
		domain.ErrStartOutsideSurah,
		domain.ErrUnknownSurah,
		domain.ErrInvalidJuz,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
