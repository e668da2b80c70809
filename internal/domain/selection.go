package domain

import (
	"context"
	"sort"
)

// SelectionMap holds the user-curated manual murajjah selections:
// weekday slot (1..6) to the sorted juz indices reviewed on that slot.
type SelectionMap map[int][]int

// Units returns the juz selection for a slot. A missing slot yields nil,
// which renders as "not yet assigned" rather than "intentionally none".
func (m SelectionMap) Units(slot int) []int {
	return m[slot]
}

// Toggle flips membership of a juz in a slot's selection and reports whether
// the juz is present afterwards. The receiver map is mutated in place.
func (m SelectionMap) Toggle(slot, juz int) bool {
	units := m[slot]
	for i, u := range units {
		if u == juz {
			m[slot] = append(units[:i], units[i+1:]...)
			return false
		}
	}
	units = append(units, juz)
	sort.Ints(units)
	m[slot] = units
	return true
}

// SelectionStore persists manual selections between toggle operations.
// Toggling happens outside the engine; the engine only ever sees a snapshot.
type SelectionStore interface {
	// Toggle flips a juz in a student's slot selection and reports whether
	// the juz is selected after the call.
	Toggle(ctx context.Context, student string, slot, juz int) (bool, error)
	// Get returns the full selection map for a student.
	Get(ctx context.Context, student string) (SelectionMap, error)
	// Clear removes a slot's selection entirely.
	Clear(ctx context.Context, student string, slot int) error
}
