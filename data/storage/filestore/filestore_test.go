package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	file := filepath.Join(t.TempDir(), "library.json")

	store, err := New(file)
	if err != nil {
		t.Fatal(err)
	}
	lib, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(lib.Plans) != 3 {
		t.Fatalf("expected seed library with 3 plans, got %d", len(lib.Plans))
	}
	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Errorf("expected no file before the first save")
	}

	lib.PopularThreads[1].Votes = -3
	lib.Schedule[0].Completed = true
	if err := store.Save(ctx, lib); err != nil {
		t.Fatal(err)
	}

	reopened, err := New(file)
	if err != nil {
		t.Fatal(err)
	}
	got, err := reopened.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(lib, got); diff != "" {
		t.Errorf("reloaded library mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStoreInvalidJSON(t *testing.T) {
	file := filepath.Join(t.TempDir(), "library.json")
	if err := os.WriteFile(file, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(file); err == nil {
		t.Errorf("expected error for invalid JSON")
	}
}

func TestFileStoreEmptyFileUsesSeed(t *testing.T) {
	file := filepath.Join(t.TempDir(), "library.json")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	store, err := New(file)
	if err != nil {
		t.Fatal(err)
	}
	lib, _ := store.Load(context.Background())
	if len(lib.Resources) != 8 {
		t.Errorf("expected 8 seed resources, got %d", len(lib.Resources))
	}
}
