package memory

import (
	"context"
	"testing"
)

func TestMemoryStoreIsolatesCallers(t *testing.T) {
	ctx := context.Background()
	store := New()

	lib, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	lib.RecentThreads[0].Votes = 99

	again, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if again.RecentThreads[0].Votes == 99 {
		t.Errorf("expected loaded library to be a copy")
	}

	if err := store.Save(ctx, lib); err != nil {
		t.Fatal(err)
	}
	lib.RecentThreads[0].Votes = 1
	saved, _ := store.Load(ctx)
	if saved.RecentThreads[0].Votes != 99 {
		t.Errorf("expected saved votes 99, got %d", saved.RecentThreads[0].Votes)
	}
}

func TestNewStoreStartsFromSeed(t *testing.T) {
	ctx := context.Background()
	first := New()
	lib, _ := first.Load(ctx)
	lib.Plans = nil
	first.Save(ctx, lib)

	second := New()
	fresh, _ := second.Load(ctx)
	if len(fresh.Plans) != 3 {
		t.Errorf("expected a new store to reset to 3 seed plans, got %d", len(fresh.Plans))
	}
}
