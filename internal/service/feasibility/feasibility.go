// Package feasibility gates schedule generation: it decides whether the
// requested distance fits in the month's working days under the chosen pace,
// and when it does not, synthesizes ranked alternative configurations that
// would. Infeasibility is a structured result, never an error.
package feasibility

import (
	"math"

	"github.com/Murtaza813/Takhteet/internal/domain"
	"github.com/Murtaza813/Takhteet/internal/service/pace"
)

// Recommendation is one alternative configuration that passes the same
// feasibility predicate as the primary check.
type Recommendation struct {
	Pace          domain.PaceMode `json:"pace"`
	ExtraHolidays int             `json:"extra_holidays"`
	DaysNeeded    int             `json:"days_needed"`
	DaysAvailable int             `json:"days_available"`
}

// Result is the outcome of the check. When Feasible is false and Impossible
// is true, no pace or holiday combination reaches the target this month and
// SuggestedTarget is the furthest reachable page instead.
type Result struct {
	Feasible      bool             `json:"feasible"`
	DaysNeeded    int              `json:"days_needed"`
	DaysAvailable int              `json:"days_available"`
	Alternatives  []Recommendation `json:"alternatives,omitempty"`

	Impossible      bool    `json:"impossible,omitempty"`
	MaxPages        float64 `json:"max_pages,omitempty"`
	SuggestedTarget int     `json:"suggested_target,omitempty"`
}

// Check decides whether the request fits in workingDays. maxWorkingDays is
// the working-day count with Sundays as the only holidays, the upper bound
// any holiday reduction can reach.
func Check(req *domain.ScheduleRequest, workingDays, maxWorkingDays int) Result {
	distance := req.Distance()
	needed := pace.MinimumDays(req.Pace, distance, maxWorkingDays)

	res := Result{
		DaysNeeded:    needed,
		DaysAvailable: workingDays,
	}
	if workingDays >= needed {
		res.Feasible = true
		return res
	}

	fullMinimum := int(math.Ceil(distance))
	if maxWorkingDays < fullMinimum {
		// Not reachable under any pace or holiday configuration.
		res.Impossible = true
		res.MaxPages = float64(maxWorkingDays) * req.Pace.Rate()
		res.SuggestedTarget = suggestedTarget(req, res.MaxPages)
		return res
	}

	res.Alternatives = recommend(req, distance, maxWorkingDays)
	return res
}

// recommend evaluates candidate configurations in priority order: switch to
// mixed pace at the current holiday count, then shed extra holidays at the
// current pace, then full pace with holidays reduced accordingly. Each
// candidate is re-checked with the same predicate before it is offered.
func recommend(req *domain.ScheduleRequest, distance float64, maxWorkingDays int) []Recommendation {
	type candidate struct {
		pace  domain.PaceMode
		extra int
	}

	var candidates []candidate
	if req.Pace != domain.PaceMixed {
		candidates = append(candidates, candidate{domain.PaceMixed, req.ExtraHolidays})
	}
	if extra, ok := reducedExtra(req.Pace, distance, maxWorkingDays, req.ExtraHolidays); ok {
		candidates = append(candidates, candidate{req.Pace, extra})
	}
	if req.Pace != domain.PaceFull {
		needed := pace.MinimumDays(domain.PaceFull, distance, maxWorkingDays)
		if extra := maxWorkingDays - needed; extra >= 0 {
			// Keep as many of the requested holidays as the full pace allows.
			if extra > req.ExtraHolidays {
				extra = req.ExtraHolidays
			}
			candidates = append(candidates, candidate{domain.PaceFull, extra})
		}
	}

	var recs []Recommendation
	for _, c := range candidates {
		available := maxWorkingDays - c.extra
		needed := pace.MinimumDays(c.pace, distance, maxWorkingDays)
		if available < needed {
			continue
		}
		recs = append(recs, Recommendation{
			Pace:          c.pace,
			ExtraHolidays: c.extra,
			DaysNeeded:    needed,
			DaysAvailable: available,
		})
	}
	return recs
}

// reducedExtra returns the largest extra-holiday count, strictly below the
// current one, that still leaves enough working days for the pace.
func reducedExtra(mode domain.PaceMode, distance float64, maxWorkingDays, currentExtra int) (int, bool) {
	needed := pace.MinimumDays(mode, distance, maxWorkingDays)
	extra := maxWorkingDays - needed
	if extra < 0 {
		return 0, false
	}
	if extra >= currentExtra {
		// No reduction would change anything the caller has not already got.
		return 0, false
	}
	return extra, true
}

// suggestedTarget converts the maximum achievable distance into a revised
// target page in the direction of travel, clamped to the mushaf bounds.
func suggestedTarget(req *domain.ScheduleRequest, maxPages float64) int {
	reach := int(maxPages)
	if reach < 1 {
		reach = 1
	}
	if req.Direction.IsBackward() {
		target := req.StartPage - reach + 1
		if target < 1 {
			target = 1
		}
		return target
	}
	target := req.StartPage + reach - 1
	if target > domain.PageCount {
		target = domain.PageCount
	}
	return target
}
