// Package planner walks a flat page plan from start toward target over the
// working days of the month, one entry per day. Only forward traversal lives
// here; backward plans need surah boundary awareness and go through the
// allocator instead.
package planner

import (
	"github.com/Murtaza813/Takhteet/internal/domain"
	"github.com/Murtaza813/Takhteet/internal/service/pace"
)

// Plan produces one entry per working day. The position advances by each
// day's amount and is clamped at the target; once the full distance is
// consumed, remaining days carry a zero amount at the target position.
// Amounts cycle through the pattern template.
func Plan(start, target int, pat pace.Pattern, days int) []domain.PlanEntry {
	if days <= 0 || len(pat.Amounts) == 0 {
		return nil
	}

	pos := float64(start)
	remaining := float64(target-start) + 1
	entries := make([]domain.PlanEntry, 0, days)

	for d := 0; d < days; d++ {
		amount := pat.Amounts[d%len(pat.Amounts)]
		if amount > remaining {
			amount = remaining
		}
		entries = append(entries, domain.PlanEntry{Position: pos, Amount: amount})
		remaining -= amount

		pos += amount
		if pos > float64(target) {
			pos = float64(target)
		}
	}

	return entries
}
