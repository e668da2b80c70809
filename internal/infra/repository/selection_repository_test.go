package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Murtaza813/Takhteet/internal/domain"
	"github.com/Murtaza813/Takhteet/internal/testutil"
)

func TestSelectionRepositoryToggle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewSelectionRepository(client)

	selected, err := repo.Toggle(ctx, "student-1", 1, 5)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !selected {
		t.Error("first Toggle() = false, want true")
	}

	selected, err = repo.Toggle(ctx, "student-1", 1, 9)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !selected {
		t.Error("Toggle() for a second juz = false, want true")
	}

	got, err := repo.Get(ctx, "student-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !reflect.DeepEqual(got[1], []int{5, 9}) {
		t.Errorf("slot 1 = %v, want [5 9]", got[1])
	}

	// Toggling an existing juz removes it.
	selected, err = repo.Toggle(ctx, "student-1", 1, 5)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if selected {
		t.Error("Toggle() of an existing juz = true, want false")
	}

	got, err = repo.Get(ctx, "student-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !reflect.DeepEqual(got[1], []int{9}) {
		t.Errorf("slot 1 after removal = %v, want [9]", got[1])
	}
}

func TestSelectionRepositoryToggleRemovesEmptySlot(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewSelectionRepository(client)

	if _, err := repo.Toggle(ctx, "student-1", 2, 3); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if _, err := repo.Toggle(ctx, "student-1", 2, 3); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}

	got, err := repo.Get(ctx, "student-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if _, exists := got[2]; exists {
		t.Errorf("slot 2 = %v, want field removed", got[2])
	}
}

func TestSelectionRepositoryGetEmpty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewSelectionRepository(client)

	got, err := repo.Get(ctx, "nobody")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Get() = %v, want empty map", got)
	}
}

func TestSelectionRepositoryClear(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewSelectionRepository(client)

	testutil.SeedSelection(ctx, t, client, "student-1", 3, []int{10, 15})
	testutil.SeedSelection(ctx, t, client, "student-1", 4, []int{2})

	if err := repo.Clear(ctx, "student-1", 3); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	got, err := repo.Get(ctx, "student-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if _, exists := got[3]; exists {
		t.Errorf("slot 3 = %v, want cleared", got[3])
	}
	if !reflect.DeepEqual(got[4], []int{2}) {
		t.Errorf("slot 4 = %v, want [2]", got[4])
	}

	testutil.FlushSelections(ctx, t, client)

	got, err = repo.Get(ctx, "student-1")
	if err != nil {
		t.Fatalf("Get() after flush error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Get() after flush = %v, want empty map", got)
	}
}

func TestSelectionRepositoryValidation(t *testing.T) {
	repo := NewSelectionRepository(nil)
	ctx := context.Background()

	if _, err := repo.Toggle(ctx, "s", 0, 1); !errors.Is(err, domain.ErrInvalidSlot) {
		t.Errorf("Toggle(slot 0) error = %v, want %v", err, domain.ErrInvalidSlot)
	}
	if _, err := repo.Toggle(ctx, "s", 7, 1); !errors.Is(err, domain.ErrInvalidSlot) {
		t.Errorf("Toggle(slot 7) error = %v, want %v", err, domain.ErrInvalidSlot)
	}
	if _, err := repo.Toggle(ctx, "s", 1, 0); !errors.Is(err, domain.ErrInvalidJuz) {
		t.Errorf("Toggle(juz 0) error = %v, want %v", err, domain.ErrInvalidJuz)
	}
	if err := repo.Clear(ctx, "s", 0); !errors.Is(err, domain.ErrInvalidSlot) {
		t.Errorf("Clear(slot 0) error = %v, want %v", err, domain.ErrInvalidSlot)
	}
}
