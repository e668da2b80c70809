package domain

import (
	"context"
	"time"
)

// GenerationRecord captures the outcome of one scheduling run for analysis.
type GenerationRecord struct {
	RunID          string
	Student        string
	Year           int
	Month          int
	Direction      string
	Pace           string
	Feasible       bool
	WorkingDays    int
	DaysNeeded     int
	RequestedPages float64
	PlannedPages   float64
	ShortfallPages float64
	Duration       time.Duration
}

// GenerationRecorder sinks generation outcomes to an external store.
type GenerationRecorder interface {
	RecordGeneration(ctx context.Context, record GenerationRecord) error
	Flush(ctx context.Context) error
	Close() error
}
