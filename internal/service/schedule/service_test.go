package schedule

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/Murtaza813/Takhteet/internal/config"
	"github.com/Murtaza813/Takhteet/internal/domain"
)

func newTestService() *Service {
	return NewService(&config.ScheduleConfig{
		ForwardReviewWindowPages:  10,
		BackwardReviewWindowPages: 9,
	}, nil)
}

// September 2025: 30 days, Sundays on 7, 14, 21, 28, so 26 working days.
func septemberRequest() *domain.ScheduleRequest {
	return &domain.ScheduleRequest{
		Student:    "test-student",
		Year:       2025,
		Month:      time.September,
		Direction:  domain.DirectionForward,
		StartPage:  1,
		TargetPage: 26,
		Pace:       domain.PaceFull,
		Revision:   domain.RevisionNone,
	}
}

func TestGenerateExactFit(t *testing.T) {
	svc := newTestService()

	sched, check, err := svc.Generate(context.Background(), septemberRequest(), "run-1")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if check != nil {
		t.Fatalf("Generate() feasibility = %+v, want nil", check)
	}

	if len(sched.Records) != 30 {
		t.Fatalf("len(Records) = %d, want 30", len(sched.Records))
	}
	if sched.WorkingDays != 26 {
		t.Errorf("WorkingDays = %d, want 26", sched.WorkingDays)
	}
	if !reflect.DeepEqual(sched.Holidays, []int{7, 14, 21, 28}) {
		t.Errorf("Holidays = %v, want [7 14 21 28]", sched.Holidays)
	}
	if sched.PlannedPages != 26 {
		t.Errorf("PlannedPages = %v, want 26", sched.PlannedPages)
	}
	if sched.ShortfallPages != 0 || sched.ShortfallDays != 0 {
		t.Errorf("shortfall = %v pages / %d days, want none", sched.ShortfallPages, sched.ShortfallDays)
	}

	page := 1.0
	for _, rec := range sched.Records {
		if rec.Holiday {
			if rec.Jadeen != holidayLabel {
				t.Errorf("day %d: Jadeen = %q, want %q", rec.Day, rec.Jadeen, holidayLabel)
			}
			if rec.Slot != 0 {
				t.Errorf("day %d: holiday carries slot %d", rec.Day, rec.Slot)
			}
			continue
		}
		if rec.Page != page {
			t.Errorf("day %d: Page = %v, want %v", rec.Day, rec.Page, page)
		}
		if rec.Amount != 1 {
			t.Errorf("day %d: Amount = %v, want 1", rec.Day, rec.Amount)
		}
		page++
	}
}

func TestGenerateSlotCounterSkipsHolidays(t *testing.T) {
	svc := newTestService()

	sched, _, err := svc.Generate(context.Background(), septemberRequest(), "run-1")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Six working days before the first Sunday exhaust the cycle; day 8
	// restarts at slot 1 as if the holiday were not there.
	wantSlots := map[int]int{1: 1, 6: 6, 8: 1, 13: 6, 15: 1}
	for day, want := range wantSlots {
		rec := sched.Records[day-1]
		if rec.Slot != want {
			t.Errorf("day %d: Slot = %d, want %d", day, rec.Slot, want)
		}
	}
}

func TestGenerateReviewWindows(t *testing.T) {
	svc := newTestService()

	sched, _, err := svc.Generate(context.Background(), septemberRequest(), "run-1")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, rec := range sched.Records {
		switch rec.Page {
		case 1:
			if rec.ReviewWindow != "None" {
				t.Errorf("page 1: ReviewWindow = %q, want None", rec.ReviewWindow)
			}
		case 2:
			if rec.ReviewWindow != "Page 1" {
				t.Errorf("page 2: ReviewWindow = %q, want Page 1", rec.ReviewWindow)
			}
		case 11:
			if rec.ReviewWindow != "Pages 1-10" {
				t.Errorf("page 11: ReviewWindow = %q, want Pages 1-10", rec.ReviewWindow)
			}
		}
	}
}

func TestGenerateInfeasible(t *testing.T) {
	svc := newTestService()
	req := septemberRequest()
	req.TargetPage = 30 // 30 pages cannot fit in 26 working days

	sched, check, err := svc.Generate(context.Background(), req, "run-1")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if sched != nil {
		t.Fatal("Generate() returned a schedule for an infeasible request")
	}
	if check == nil {
		t.Fatal("Generate() feasibility = nil, want a result")
	}
	if !check.Impossible {
		t.Errorf("Impossible = false, want true")
	}
	if check.SuggestedTarget != 26 {
		t.Errorf("SuggestedTarget = %d, want 26", check.SuggestedTarget)
	}
}

func TestGenerateInvalidRequest(t *testing.T) {
	svc := newTestService()
	req := septemberRequest()
	req.TargetPage = 0

	_, _, err := svc.Generate(context.Background(), req, "run-1")
	if err == nil {
		t.Fatal("Generate() error = nil, want page range error")
	}
}

func TestGenerateBackwardShortfall(t *testing.T) {
	svc := newTestService()
	req := septemberRequest()
	req.Direction = domain.DirectionBackward
	req.StartPage = 48
	req.TargetPage = 45

	sched, check, err := svc.Generate(context.Background(), req, "run-1")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if check != nil {
		t.Fatalf("Generate() feasibility = %+v, want nil", check)
	}

	// Al-Baqarah holds only pages 48 and 49 from the start, and Al-Fatiha
	// one more; the fourth requested page has nowhere to go.
	if sched.PlannedPages != 3 {
		t.Errorf("PlannedPages = %v, want 3", sched.PlannedPages)
	}
	if sched.ShortfallPages != 1 {
		t.Errorf("ShortfallPages = %v, want 1", sched.ShortfallPages)
	}
	if sched.ShortfallDays != 23 {
		t.Errorf("ShortfallDays = %d, want 23", sched.ShortfallDays)
	}

	var surahs []string
	for _, rec := range sched.Records {
		if rec.Amount > 0 {
			surahs = append(surahs, rec.Surah)
		}
	}
	want := []string{"Al-Baqarah", "Al-Baqarah", "Al-Fatiha"}
	if !reflect.DeepEqual(surahs, want) {
		t.Errorf("memorized surahs = %v, want %v", surahs, want)
	}
}

func TestGenerateBackwardReviewWindow(t *testing.T) {
	svc := newTestService()
	req := septemberRequest()
	req.Direction = domain.DirectionBackward
	req.StartPage = 48
	req.TargetPage = 45

	sched, _, err := svc.Generate(context.Background(), req, "run-1")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	first := sched.Records[0]
	if first.ReviewWindow != "Pages 49-57" {
		t.Errorf("ReviewWindow = %q, want Pages 49-57", first.ReviewWindow)
	}
}

func TestGenerateManualRevision(t *testing.T) {
	svc := newTestService()
	req := septemberRequest()
	req.Revision = domain.RevisionManual
	req.Selections = domain.SelectionMap{1: {2, 7}}

	sched, _, err := svc.Generate(context.Background(), req, "run-1")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	day1 := sched.Records[0] // slot 1
	if day1.Revision != "Juz 2, 7" {
		t.Errorf("slot 1 Revision = %q, want Juz 2, 7", day1.Revision)
	}
	if !reflect.DeepEqual(day1.RevisionUnits, []int{2, 7}) {
		t.Errorf("slot 1 RevisionUnits = %v, want [2 7]", day1.RevisionUnits)
	}

	day2 := sched.Records[1] // slot 2, never selected
	if day2.Revision != markerLabels["not_assigned"] {
		t.Errorf("slot 2 Revision = %q, want %q", day2.Revision, markerLabels["not_assigned"])
	}
}

func TestGenerateAutoRevision(t *testing.T) {
	svc := newTestService()
	req := septemberRequest()
	req.Revision = domain.RevisionAuto
	req.CurrentJuz = 13 // juz 1..12 completed

	sched, _, err := svc.Generate(context.Background(), req, "run-1")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	day1 := sched.Records[0]
	if day1.Revision != "Juz 1, 6, 11" {
		t.Errorf("slot 1 Revision = %q, want Juz 1, 6, 11", day1.Revision)
	}
	if !reflect.DeepEqual(day1.RevisionUnits, []int{1, 6, 11}) {
		t.Errorf("slot 1 RevisionUnits = %v, want [1 6 11]", day1.RevisionUnits)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	svc := newTestService()

	first, _, err := svc.Generate(context.Background(), septemberRequest(), "run-1")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	second, _, err := svc.Generate(context.Background(), septemberRequest(), "run-1")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}
	if string(a) != string(b) {
		t.Error("identical requests produced different schedules")
	}
}
