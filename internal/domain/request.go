package domain

import (
	"math"
	"time"
)

const (
	// PageCount is the number of pages in the standard Madani mushaf.
	PageCount = 604
	// JuzCount is the number of fixed juz partitions used for revision bucketing.
	JuzCount = 30
	// SlotCount is the length of the repeating weekday-slot cycle for revision.
	SlotCount = 6
	// MaxExtraHolidays bounds the additional non-Sunday holidays per month.
	MaxExtraHolidays = 10
)

// ScheduleRequest is the full configuration for one scheduling run.
// It is immutable for the duration of the run; the engine never writes to it.
type ScheduleRequest struct {
	Student string

	Year  int
	Month time.Month

	Direction  Direction
	StartPage  int
	TargetPage int
	Pace       PaceMode

	ExtraHolidays int

	Revision   RevisionMode
	CurrentJuz int          // auto revision: first juz not yet completed
	Selections SelectionMap // manual revision: snapshot of the slot selection map

	// StartSurah optionally pins the backward allocator's starting section
	// (1-based index into the section table). Zero derives it from StartPage.
	StartSurah int
}

// Distance is the total number of pages between start and target, inclusive.
func (r *ScheduleRequest) Distance() float64 {
	return math.Abs(float64(r.TargetPage)-float64(r.StartPage)) + 1
}

// Validate rejects configurations the engine cannot act on. Bounds that the
// transport layer already enforces are re-checked here so the engine stays
// safe when called directly.
func (r *ScheduleRequest) Validate() error {
	if !r.Direction.Valid() {
		return ErrInvalidDirection
	}
	if !r.Pace.Valid() {
		return ErrInvalidPace
	}
	if r.Revision != "" && !r.Revision.Valid() {
		return ErrInvalidRevisionMode
	}
	if r.StartPage < 1 || r.StartPage > PageCount || r.TargetPage < 1 || r.TargetPage > PageCount {
		return ErrPageOutOfRange
	}
	if r.Direction == DirectionForward && r.TargetPage < r.StartPage {
		return ErrTargetBehindStart
	}
	if r.Direction == DirectionBackward && r.TargetPage > r.StartPage {
		return ErrTargetBehindStart
	}
	if r.Revision == RevisionAuto && (r.CurrentJuz < 1 || r.CurrentJuz > JuzCount) {
		return ErrInvalidJuz
	}
	return nil
}
