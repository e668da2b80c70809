// Package pace builds daily-amount patterns for the three pace modes. Fixed
// patterns repeat a constant rate; the mixed pattern is found by an adaptive
// search for the smallest number of full days that still covers the distance.
package pace

import (
	"math"

	"github.com/Murtaza813/Takhteet/internal/domain"
)

// Pattern is a day-indexed template of amounts, each 0.5 or 1.0. Consumers
// cycle through Amounts when they run longer than the template.
type Pattern struct {
	Amounts  []float64
	FullDays int
	HalfDays int
	Total    float64
}

// Fixed returns a constant-rate pattern for the given pace over days.
func Fixed(mode domain.PaceMode, days int) Pattern {
	rate := mode.Rate()
	amounts := make([]float64, days)
	for i := range amounts {
		amounts[i] = rate
	}
	p := Pattern{Amounts: amounts, Total: rate * float64(days)}
	if rate == 1.0 {
		p.FullDays = days
	} else {
		p.HalfDays = days
	}
	return p
}

// Mixed searches for the minimum number of full days F so that
// F + 0.5*(days-F) >= distance, then interleaves full days roughly evenly
// among the half days. ok is false when no F in [0, days] covers the
// distance, meaning the mix is infeasible for this day budget.
func Mixed(distance float64, days int) (Pattern, bool) {
	if days <= 0 {
		return Pattern{}, false
	}

	full := -1
	for f := 0; f <= days; f++ {
		if float64(f)+0.5*float64(days-f) >= distance {
			full = f
			break
		}
	}
	if full < 0 {
		return Pattern{}, false
	}
	half := days - full

	// Space full days evenly among half days: a run of `spacing` half days
	// before each full day, then contiguous leftovers of whichever type
	// remains once the other is exhausted.
	spacing := 1
	if full > 0 && half/full > 1 {
		spacing = half / full
	}

	amounts := make([]float64, 0, days)
	h, f := half, full
	for f > 0 && h > 0 {
		run := spacing
		if run > h {
			run = h
		}
		for i := 0; i < run; i++ {
			amounts = append(amounts, 0.5)
		}
		h -= run
		amounts = append(amounts, 1.0)
		f--
	}
	for ; h > 0; h-- {
		amounts = append(amounts, 0.5)
	}
	for ; f > 0; f-- {
		amounts = append(amounts, 1.0)
	}

	return Pattern{
		Amounts:  amounts,
		FullDays: full,
		HalfDays: half,
		Total:    float64(full) + 0.5*float64(half),
	}, true
}

// MinimumDays returns the fewest working days needed to cover the distance
// under the given pace. For mixed pace this searches day budgets up to
// maxDays for the smallest one the adaptive search accepts, falling back to
// the full-pace minimum when none works.
func MinimumDays(mode domain.PaceMode, distance float64, maxDays int) int {
	switch mode {
	case domain.PaceHalf:
		return int(math.Ceil(distance * 2))
	case domain.PaceFull:
		return int(math.Ceil(distance))
	}

	for w := 1; w <= maxDays; w++ {
		if _, ok := Mixed(distance, w); ok {
			return w
		}
	}
	return int(math.Ceil(distance))
}
