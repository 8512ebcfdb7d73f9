package history

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStore_AppendAssignsIDAndTime(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	rec, err := store.Append(Record{Kind: KindCommit, Model: "m", Output: "fix: thing"})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if rec.ID == "" {
		t.Error("Append() did not assign an ID")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("Append() did not assign a timestamp")
	}
}

func TestStore_ListNewestFirst(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := store.Append(Record{
			Kind:      KindExplain,
			Output:    "out",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	records, err := store.List(0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len = %d, want 3", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].CreatedAt.After(records[i-1].CreatedAt) {
			t.Error("records not sorted newest-first")
		}
	}

	limited, err := store.List(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("List(2) len = %d, want 2", len(limited))
	}
}

func TestStore_Get(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	stored, err := store.Append(Record{Kind: KindPR, Output: "title\n\nbody", Branch: "feature/x"})
	if err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(stored.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Output != "title\n\nbody" || got.Branch != "feature/x" {
		t.Errorf("Get() = %+v", got)
	}

	if _, err := store.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestStore_ListSkipsCorruptRecords(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := store.Append(Record{Kind: KindCommit, Output: "ok"}); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "zz-corrupt.json"), []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}

	records, err := store.List(0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("len = %d, want 1 (corrupt record skipped)", len(records))
	}
}
