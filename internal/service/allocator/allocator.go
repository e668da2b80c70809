// Package allocator specializes pagination for backward hifz: within a surah
// section the position moves toward the section end, and a day's amount never
// crosses a section boundary. Sections are traversed in backward order, i.e.
// the previous surah in reading order comes next.
package allocator

import (
	"fmt"

	"github.com/Murtaza813/Takhteet/internal/domain"
	"github.com/Murtaza813/Takhteet/internal/quran"
	"github.com/Murtaza813/Takhteet/internal/service/pace"
)

// Result is the outcome of a backward allocation. Days produced may be fewer
// than requested when the section table is exhausted; the caller compares
// Total against the requested distance and reports any shortfall.
type Result struct {
	Entries []domain.PlanEntry
	Total   float64
}

// StartSection resolves the section the allocation begins in. A nonzero
// startSurah pins the section and the start position must lie inside its
// range; zero derives the section from the position.
func StartSection(startSurah int, startPage int) (quran.Section, error) {
	if startSurah != 0 {
		sec, ok := quran.SectionByIndex(startSurah)
		if !ok {
			return quran.Section{}, fmt.Errorf("section %d: %w", startSurah, domain.ErrUnknownSurah)
		}
		if !sec.Contains(float64(startPage)) {
			return quran.Section{}, fmt.Errorf("page %d not in %s (%d..%d): %w",
				startPage, sec.Name, sec.StartPage, sec.EndPage, domain.ErrStartOutsideSurah)
		}
		return sec, nil
	}

	sec, ok := quran.SectionForPage(float64(startPage))
	if !ok {
		return quran.Section{}, fmt.Errorf("page %d: %w", startPage, domain.ErrPageOutOfRange)
	}
	return sec, nil
}

// Allocate produces up to days entries starting at startPage inside sec.
// Each day's amount is the pattern amount capped at the pages remaining in
// the current section and at the distance still requested; when a section is
// exhausted the allocator advances to the next section in backward traversal
// order. Once the requested distance is consumed, remaining days carry a zero
// amount at the final position. Running out of sections ends the allocation
// early with a partial result.
func Allocate(sec quran.Section, startPage float64, distance float64, pat pace.Pattern, days int) Result {
	if days <= 0 || len(pat.Amounts) == 0 {
		return Result{}
	}

	pos := startPage
	entries := make([]domain.PlanEntry, 0, days)
	total := 0.0

	for d := 0; d < days; d++ {
		if total >= distance {
			entries = append(entries, domain.PlanEntry{Position: pos, Surah: sec.Name})
			continue
		}

		remaining := sec.PagesFrom(pos)
		if remaining <= 0 {
			next, ok := quran.NextBackward(sec)
			if !ok {
				break
			}
			sec = next
			pos = float64(sec.StartPage)
			remaining = sec.PagesFrom(pos)
		}

		amount := pat.Amounts[d%len(pat.Amounts)]
		if amount > remaining {
			amount = remaining
		}
		if amount > distance-total {
			amount = distance - total
		}

		entries = append(entries, domain.PlanEntry{
			Position: pos,
			Amount:   amount,
			Surah:    sec.Name,
		})
		pos += amount
		total += amount
	}

	return Result{Entries: entries, Total: total}
}
