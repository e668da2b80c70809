package allocator

import (
	"errors"
	"testing"

	"github.com/Murtaza813/Takhteet/internal/domain"
	"github.com/Murtaza813/Takhteet/internal/quran"
	"github.com/Murtaza813/Takhteet/internal/service/pace"
)

func TestStartSection(t *testing.T) {
	tests := []struct {
		name       string
		startSurah int
		startPage  int
		wantName   string
		wantErr    error
	}{
		{"derived from page", 0, 48, "Al-Baqarah", nil},
		{"pinned and inside range", 2, 48, "Al-Baqarah", nil},
		{"pinned but outside range", 1, 10, "", domain.ErrStartOutsideSurah},
		{"unknown section index", 500, 10, "", domain.ErrUnknownSurah},
		{"page out of range", 0, 700, "", domain.ErrPageOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec, err := StartSection(tt.startSurah, tt.startPage)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("StartSection() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("StartSection() unexpected error: %v", err)
			}
			if sec.Name != tt.wantName {
				t.Errorf("StartSection() section = %s, want %s", sec.Name, tt.wantName)
			}
		})
	}
}

func TestAllocateNeverCrossesSectionBoundary(t *testing.T) {
	sec, ok := quran.SectionByIndex(2) // Al-Baqarah, pages 2..49
	if !ok {
		t.Fatal("section 2 missing")
	}

	result := Allocate(sec, 48.5, 30, pace.Fixed(domain.PaceFull, 10), 10)

	for i, e := range result.Entries {
		s, ok := quran.SectionForPage(e.Position)
		if !ok {
			t.Fatalf("entries[%d] position %v outside mushaf", i, e.Position)
		}
		if e.Position+e.Amount > float64(s.EndPage)+1 {
			t.Errorf("entries[%d] crosses boundary of %s: position %v amount %v end %d",
				i, s.Name, e.Position, e.Amount, s.EndPage)
		}
	}

	// 1.5 pages remain in Al-Baqarah: a full first day, then the half-page
	// section remainder instead of the full pace amount.
	if result.Entries[0].Amount != 1.0 {
		t.Errorf("entries[0].Amount = %v, want 1.0", result.Entries[0].Amount)
	}
	if result.Entries[1].Position != 49.5 || result.Entries[1].Amount != 0.5 {
		t.Errorf("entries[1] = %+v, want position 49.5 amount 0.5 (section remainder)", result.Entries[1])
	}
}

func TestAllocateAdvancesBackward(t *testing.T) {
	sec, ok := quran.SectionByIndex(2) // Al-Baqarah
	if !ok {
		t.Fatal("section 2 missing")
	}

	// Two pages left in Al-Baqarah, then Al-Fatiha's single page.
	result := Allocate(sec, 48, 10, pace.Fixed(domain.PaceFull, 10), 10)

	if len(result.Entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3 (table exhausted)", len(result.Entries))
	}

	wantSurahs := []string{"Al-Baqarah", "Al-Baqarah", "Al-Fatiha"}
	wantPositions := []float64{48, 49, 1}
	for i := range result.Entries {
		if result.Entries[i].Surah != wantSurahs[i] {
			t.Errorf("entries[%d].Surah = %s, want %s", i, result.Entries[i].Surah, wantSurahs[i])
		}
		if result.Entries[i].Position != wantPositions[i] {
			t.Errorf("entries[%d].Position = %v, want %v", i, result.Entries[i].Position, wantPositions[i])
		}
	}

	if result.Total != 3 {
		t.Errorf("Total = %v, want 3", result.Total)
	}
}

func TestAllocateStopsAtDistance(t *testing.T) {
	sec, ok := quran.SectionForPage(582) // An-Naba
	if !ok {
		t.Fatal("section for page 582 missing")
	}

	result := Allocate(sec, 582, 1, pace.Fixed(domain.PaceFull, 5), 5)

	if len(result.Entries) != 5 {
		t.Fatalf("len(entries) = %d, want 5", len(result.Entries))
	}
	if result.Total != 1 {
		t.Errorf("Total = %v, want 1 (capped at requested distance)", result.Total)
	}
	for i := 1; i < len(result.Entries); i++ {
		if result.Entries[i].Amount != 0 {
			t.Errorf("entries[%d].Amount = %v, want 0 after distance consumed", i, result.Entries[i].Amount)
		}
	}
}

func TestAllocateCyclesTemplate(t *testing.T) {
	pat, ok := pace.Mixed(3, 4) // 2 full, 2 half
	if !ok {
		t.Fatal("pattern infeasible")
	}

	sec, ok := quran.SectionForPage(106) // Al-Ma'idah, pages 106..127
	if !ok {
		t.Fatal("section missing")
	}

	result := Allocate(sec, 106, 20, pat, 8)

	if len(result.Entries) != 8 {
		t.Fatalf("len(entries) = %d, want 8", len(result.Entries))
	}
	for i := 4; i < 8; i++ {
		if result.Entries[i].Amount != result.Entries[i-4].Amount {
			t.Errorf("template did not cycle at day %d: %v != %v",
				i, result.Entries[i].Amount, result.Entries[i-4].Amount)
		}
	}
}

func TestAllocateHalfPaceStaysInsideSection(t *testing.T) {
	sec, ok := quran.SectionForPage(50) // Aal-E-Imran, pages 50..76
	if !ok {
		t.Fatal("section missing")
	}

	result := Allocate(sec, 76.5, 5, pace.Fixed(domain.PaceHalf, 4), 4)

	// Half a page remains in Aal-E-Imran; backward traversal then moves to
	// Al-Baqarah, the previous section in reading order.
	if result.Entries[0].Amount != 0.5 {
		t.Fatalf("entries[0].Amount = %v, want 0.5", result.Entries[0].Amount)
	}
	if result.Entries[1].Surah != "Al-Baqarah" {
		t.Errorf("entries[1].Surah = %s, want Al-Baqarah", result.Entries[1].Surah)
	}
	if result.Entries[1].Position != 2 {
		t.Errorf("entries[1].Position = %v, want 2 (start of Al-Baqarah)", result.Entries[1].Position)
	}
}
