package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Murtaza813/Takhteet/internal/domain"
	"github.com/Murtaza813/Takhteet/internal/service/calendar"
	"github.com/Murtaza813/Takhteet/internal/service/revision"
)

// Weekday display labels, indexed by time.Weekday.
var weekdayArabic = [7]string{
	"الأحد", "الإثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت",
}

const holidayLabel = "OFF / عطلة"

var markerLabels = map[revision.Marker]string{
	revision.MarkerAssignLater:     "Assign later / يحدد لاحقا",
	revision.MarkerNotAssigned:     "Not yet assigned / لم يحدد بعد",
	revision.MarkerNoPriorMaterial: "Revision day / يوم مراجعة",
}

// assemble turns plan entries, holidays, and revision assignments into one
// record per calendar day. The weekday-slot counter advances on working days
// only; working days beyond the produced entries carry no jadeen.
func (s *Service) assemble(req *domain.ScheduleRequest, daysInMonth int, holidays []int, entries []domain.PlanEntry) []domain.ScheduleRecord {
	isHoliday := make(map[int]bool, len(holidays))
	for _, d := range holidays {
		isHoliday[d] = true
	}

	records := make([]domain.ScheduleRecord, 0, daysInMonth)
	worked := 0

	for day := 1; day <= daysInMonth; day++ {
		weekday := calendar.Weekday(req.Year, req.Month, day)
		rec := domain.ScheduleRecord{
			Day:           day,
			Date:          time.Date(req.Year, req.Month, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
			Weekday:       weekday.String(),
			WeekdayArabic: weekdayArabic[weekday],
		}

		if isHoliday[day] {
			rec.Holiday = true
			rec.Jadeen = holidayLabel
			records = append(records, rec)
			continue
		}

		slot := worked%domain.SlotCount + 1
		rec.Slot = slot

		if worked < len(entries) {
			entry := entries[worked]
			rec.Page = entry.Position
			rec.Amount = entry.Amount
			rec.Surah = entry.Surah
			rec.Jadeen = jadeenLabel(entry)
			rec.ReviewWindow = s.reviewWindow(req.Direction, entry.Position)
		}

		assignment := revision.ForSlot(req, slot)
		if assignment.Marker != "" {
			rec.Revision = markerLabels[assignment.Marker]
		} else {
			rec.Revision = juzLabel(assignment.Units)
			rec.RevisionUnits = assignment.Units
		}

		worked++
		records = append(records, rec)
	}

	return records
}

// reviewWindow derives the presentational recent-review span for a day's
// position: the pages most recently memorized before reaching it. For
// forward hifz that is the window immediately preceding the position; for
// backward hifz it is the window immediately after it, since later pages
// were memorized first.
func (s *Service) reviewWindow(dir domain.Direction, position float64) string {
	page := int(position)
	if dir.IsBackward() {
		lo := page + 1
		hi := page + s.cfg.BackwardReviewWindowPages
		if hi > domain.PageCount {
			hi = domain.PageCount
		}
		return pageRangeLabel(lo, hi)
	}

	hi := page - 1
	lo := page - s.cfg.ForwardReviewWindowPages
	if lo < 1 {
		lo = 1
	}
	return pageRangeLabel(lo, hi)
}

func pageRangeLabel(lo, hi int) string {
	if lo > hi {
		return "None"
	}
	if lo == hi {
		return fmt.Sprintf("Page %d", lo)
	}
	return fmt.Sprintf("Pages %d-%d", lo, hi)
}

func jadeenLabel(entry domain.PlanEntry) string {
	if entry.Amount == 0 {
		return "Target reached"
	}
	unit := "page"
	if entry.Amount != 1 {
		unit = "pages"
	}
	if entry.Amount == 0.5 {
		return fmt.Sprintf("Page %s (half page)", formatPage(entry.Position))
	}
	return fmt.Sprintf("Page %s (%s %s)", formatPage(entry.Position), formatPage(entry.Amount), unit)
}

func juzLabel(units []int) string {
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = strconv.Itoa(u)
	}
	return "Juz " + strings.Join(parts, ", ")
}

// formatPage renders a half-page resolution value without trailing zeros.
func formatPage(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
