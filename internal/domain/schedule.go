package domain

import "time"

// PlanEntry is one working day's worth of new material. Position is the page
// being read that day, fractional to a resolution of half a page. Surah is
// set only by the backward allocator.
type PlanEntry struct {
	Position float64 `json:"position"`
	Amount   float64 `json:"amount"`
	Surah    string  `json:"surah,omitempty"`
}

// ScheduleRecord is the final per-calendar-day output row.
type ScheduleRecord struct {
	Day           int     `json:"day"`
	Date          string  `json:"date"`
	Weekday       string  `json:"weekday"`
	WeekdayArabic string  `json:"weekday_arabic"`
	Holiday       bool    `json:"holiday"`
	Slot          int     `json:"slot,omitempty"`
	Jadeen        string  `json:"jadeen"`
	Page          float64 `json:"page,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	Surah         string  `json:"surah,omitempty"`
	ReviewWindow  string  `json:"review_window,omitempty"`
	Revision      string  `json:"revision,omitempty"`
	RevisionUnits []int   `json:"revision_units,omitempty"`
}

// Schedule is the full result of one run: one record per calendar day of the
// month, holidays included. Re-running with the same request yields an
// identical value; nothing here depends on the wall clock.
type Schedule struct {
	RunID       string           `json:"run_id"`
	Student     string           `json:"student,omitempty"`
	Year        int              `json:"year"`
	Month       time.Month       `json:"month"`
	Direction   Direction        `json:"direction"`
	Pace        PaceMode         `json:"pace"`
	WorkingDays int              `json:"working_days"`
	Holidays    []int            `json:"holidays"`
	Records     []ScheduleRecord `json:"records"`

	RequestedPages float64 `json:"requested_pages"`
	PlannedPages   float64 `json:"planned_pages"`
	// ShortfallPages is nonzero when the backward allocator ran out of
	// sections before covering the requested distance.
	ShortfallPages float64 `json:"shortfall_pages,omitempty"`
	// ShortfallDays counts working days left without a jadeen entry.
	ShortfallDays int `json:"shortfall_days,omitempty"`
}

// SplitAtMidMonth splits the records at the mid-month boundary. Display
// layers paginate printed schedules at this point.
func (s *Schedule) SplitAtMidMonth() (first, second []ScheduleRecord) {
	mid := (len(s.Records) + 1) / 2
	return s.Records[:mid], s.Records[mid:]
}
