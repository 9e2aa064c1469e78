package quota

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreLazyInit(t *testing.T) {
	store := NewMemoryStore()
	q, err := store.Current(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if q.Used != 0 {
		t.Fatalf("expected zero count on first use, got %d", q.Used)
	}
	if q.PeriodStart.IsZero() {
		t.Fatalf("expected period start to be set")
	}
}

func TestMemoryStoreIncrement(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		q, err := store.Increment(ctx, "user-1")
		if err != nil {
			t.Fatalf("Increment: %v", err)
		}
		if q.Used != i {
			t.Fatalf("expected count %d, got %d", i, q.Used)
		}
	}

	other, err := store.Current(ctx, "user-2")
	if err != nil {
		t.Fatalf("Current other user: %v", err)
	}
	if other.Used != 0 {
		t.Fatalf("counts must be per user, got %d", other.Used)
	}
}

func TestMemoryStoreRollsOverAtDayBoundary(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	if _, err := store.Increment(ctx, "user-1"); err != nil {
		t.Fatalf("Increment: %v", err)
	}

	// Backdate the record to yesterday.
	store.mu.Lock()
	q := store.data["user-1"]
	q.PeriodStart = q.PeriodStart.Add(-24 * time.Hour)
	store.data["user-1"] = q
	store.mu.Unlock()

	fresh, err := store.Current(ctx, "user-1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if fresh.Used != 0 {
		t.Fatalf("expected rollover to reset count, got %d", fresh.Used)
	}
}

func TestMemoryStoreReset(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	if _, err := store.Increment(ctx, "user-1"); err != nil {
		t.Fatalf("Increment: %v", err)
	}
	q, err := store.Reset(ctx, "user-1")
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if q.Used != 0 {
		t.Fatalf("expected zero after reset, got %d", q.Used)
	}
}
