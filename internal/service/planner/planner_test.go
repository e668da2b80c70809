package planner

import (
	"testing"

	"github.com/Murtaza813/Takhteet/internal/domain"
	"github.com/Murtaza813/Takhteet/internal/service/pace"
)

func TestPlanFullExactFit(t *testing.T) {
	entries := Plan(1, 26, pace.Fixed(domain.PaceFull, 26), 26)

	if len(entries) != 26 {
		t.Fatalf("len(entries) = %d, want 26", len(entries))
	}
	for i, e := range entries {
		if e.Position != float64(i+1) {
			t.Errorf("entries[%d].Position = %v, want %d", i, e.Position, i+1)
		}
		if e.Amount != 1.0 {
			t.Errorf("entries[%d].Amount = %v, want 1.0", i, e.Amount)
		}
	}
}

func TestPlanClampsAtTarget(t *testing.T) {
	entries := Plan(1, 5, pace.Fixed(domain.PaceFull, 10), 10)

	if len(entries) != 10 {
		t.Fatalf("len(entries) = %d, want 10", len(entries))
	}

	total := 0.0
	for _, e := range entries {
		total += e.Amount
	}
	if total != 5 {
		t.Errorf("cumulative amount = %v, want 5 (never exceeds the distance)", total)
	}

	for i := 5; i < 10; i++ {
		if entries[i].Position != 5 {
			t.Errorf("entries[%d].Position = %v, want clamped to 5", i, entries[i].Position)
		}
		if entries[i].Amount != 0 {
			t.Errorf("entries[%d].Amount = %v, want 0 after target reached", i, entries[i].Amount)
		}
	}
}

func TestPlanHalfPaceFractionalPositions(t *testing.T) {
	entries := Plan(1, 2, pace.Fixed(domain.PaceHalf, 4), 4)

	wantPositions := []float64{1, 1.5, 2, 2}
	wantAmounts := []float64{0.5, 0.5, 0.5, 0.5}
	for i := range entries {
		if entries[i].Position != wantPositions[i] {
			t.Errorf("entries[%d].Position = %v, want %v", i, entries[i].Position, wantPositions[i])
		}
		if entries[i].Amount != wantAmounts[i] {
			t.Errorf("entries[%d].Amount = %v, want %v", i, entries[i].Amount, wantAmounts[i])
		}
	}
}

func TestPlanMonotonic(t *testing.T) {
	pat, ok := pace.Mixed(20, 26)
	if !ok {
		t.Fatal("pattern infeasible")
	}
	entries := Plan(10, 40, pat, 26)

	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1].Position, entries[i].Position
		if cur < prev {
			t.Fatalf("position decreased at %d: %v -> %v", i, prev, cur)
		}
	}

	last := entries[len(entries)-1].Position
	if last > 40 {
		t.Errorf("final position %v passes target 40", last)
	}
}

func TestPlanMixedPatternCycles(t *testing.T) {
	// A 2-day template over 5 days must repeat: 1.0, 0.5, 1.0, 0.5, 1.0.
	pat := pace.Pattern{Amounts: []float64{1.0, 0.5}}
	entries := Plan(1, 100, pat, 5)

	want := []float64{1.0, 0.5, 1.0, 0.5, 1.0}
	for i := range entries {
		if entries[i].Amount != want[i] {
			t.Errorf("entries[%d].Amount = %v, want %v", i, entries[i].Amount, want[i])
		}
	}
}
