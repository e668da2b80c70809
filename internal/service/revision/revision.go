// Package revision distributes murajjah over a repeating 6-slot weekday
// cycle. Auto mode spreads the completed juz across slots in fixed groups of
// five so every completed juz comes up at least once per cycle.
package revision

import (
	"sort"

	"github.com/Murtaza813/Takhteet/internal/domain"
)

const groupSize = 5

// Marker distinguishes the non-unit outcomes of an assignment.
type Marker string

const (
	// MarkerAssignLater is emitted in revision mode "none".
	MarkerAssignLater Marker = "assign_later"
	// MarkerNotAssigned is a manual slot the user has not filled yet,
	// distinct from an intentionally empty selection.
	MarkerNotAssigned Marker = "not_assigned"
	// MarkerNoPriorMaterial is emitted in auto mode before anything has
	// been completed.
	MarkerNoPriorMaterial Marker = "no_prior_material"
)

// Assignment is the revision outcome for one weekday slot.
type Assignment struct {
	Slot   int
	Units  []int
	Marker Marker
}

// ForSlot computes the revision assignment for weekday slot s (1..6).
func ForSlot(req *domain.ScheduleRequest, slot int) Assignment {
	switch req.Revision {
	case domain.RevisionManual:
		units := req.Selections.Units(slot)
		if len(units) == 0 {
			return Assignment{Slot: slot, Marker: MarkerNotAssigned}
		}
		out := make([]int, len(units))
		copy(out, units)
		return Assignment{Slot: slot, Units: out}

	case domain.RevisionAuto:
		completed := completedJuz(req.CurrentJuz, req.Direction)
		if len(completed) == 0 {
			return Assignment{Slot: slot, Marker: MarkerNoPriorMaterial}
		}
		return Assignment{Slot: slot, Units: autoUnits(completed, slot)}

	default:
		return Assignment{Slot: slot, Marker: MarkerAssignLater}
	}
}

// completedJuz is every juz strictly before the current one in traversal
// order: lower juz for forward hifz, higher juz for backward hifz.
func completedJuz(current int, dir domain.Direction) []int {
	var juz []int
	if dir.IsBackward() {
		for u := current + 1; u <= domain.JuzCount; u++ {
			juz = append(juz, u)
		}
		return juz
	}
	for u := 1; u < current; u++ {
		juz = append(juz, u)
	}
	return juz
}

// autoUnits partitions the completed juz into fixed groups of five by
// absolute juz number and takes the slot-th member of each group, wrapping
// inside groups smaller than the slot. Fewer than two groups skips the
// grouping and returns the whole completed set.
func autoUnits(completed []int, slot int) []int {
	groups := make(map[int][]int)
	for _, u := range completed {
		k := (u - 1) / groupSize
		groups[k] = append(groups[k], u)
	}
	if len(groups) < 2 {
		out := make([]int, len(completed))
		copy(out, completed)
		sort.Ints(out)
		return out
	}

	keys := make([]int, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	seen := make(map[int]bool)
	var units []int
	for _, k := range keys {
		members := groups[k]
		sort.Ints(members)
		u := members[(slot-1)%len(members)]
		if !seen[u] {
			seen[u] = true
			units = append(units, u)
		}
	}
	sort.Ints(units)
	return units
}
