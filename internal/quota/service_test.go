package quota

import (
	"context"
	"errors"
	"testing"
)

func TestCheckAndPrepareLazyInit(t *testing.T) {
	svc := NewService(NewMemoryStore())
	count, err := svc.CheckAndPrepare(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("CheckAndPrepare: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected zero count for new user, got %d", count)
	}
}

func TestQuotaBoundaryAtDailyLimit(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	for i := 0; i < DailyLimit-1; i++ {
		if _, err := store.Increment(ctx, "user-1"); err != nil {
			t.Fatalf("Increment: %v", err)
		}
	}

	// 19 used: the 20th generation is allowed.
	count, err := svc.CheckAndPrepare(ctx, "user-1")
	if err != nil {
		t.Fatalf("request 20 should pass, got %v", err)
	}
	if count != DailyLimit-1 {
		t.Fatalf("expected count %d, got %d", DailyLimit-1, count)
	}
	if err := svc.CommitIncrement(ctx, "user-1", count); err != nil {
		t.Fatalf("CommitIncrement: %v", err)
	}

	// 20 used: the 21st is rejected.
	if _, err := svc.CheckAndPrepare(ctx, "user-1"); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
}

func TestCommitIncrementIsRelative(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	checked, err := svc.CheckAndPrepare(ctx, "user-1")
	if err != nil {
		t.Fatalf("CheckAndPrepare: %v", err)
	}

	// A concurrent request lands between check and commit. The stale
	// checked count must not overwrite its increment.
	if _, err := store.Increment(ctx, "user-1"); err != nil {
		t.Fatalf("Increment: %v", err)
	}
	if err := svc.CommitIncrement(ctx, "user-1", checked); err != nil {
		t.Fatalf("CommitIncrement: %v", err)
	}

	q, err := store.Current(ctx, "user-1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if q.Used != 2 {
		t.Fatalf("expected both increments to survive, got %d", q.Used)
	}
}
