package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "blobs.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// TestGetMissingKey: a never-written key reads back as nil without error.
func TestGetMissingKey(t *testing.T) {
	s := openTestStore(t)
	got, err := s.Get(context.Background(), KeyWorkoutLog)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("value = %q, want nil", got)
	}
}

// TestPutGetRoundtrip verifies a blob survives a write and that a second
// write replaces it wholesale.
func TestPutGetRoundtrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, KeyUserWorkouts, []byte(`[{"id":"w1"}]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := s.Get(ctx, KeyUserWorkouts)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[{"id":"w1"}]` {
		t.Errorf("value = %s, want original blob", got)
	}

	if err := s.Put(ctx, KeyUserWorkouts, []byte(`[]`)); err != nil {
		t.Fatalf("second put: %v", err)
	}
	got, err = s.Get(ctx, KeyUserWorkouts)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[]` {
		t.Errorf("value = %s, want replacement blob", got)
	}
}

// TestReopenKeepsData: blobs persist across store reopen (and migrations
// are idempotent).
func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blobs.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Put(ctx, KeyMediaOverrides, []byte(`{"a.gif":"/tmp/a.gif"}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.Get(ctx, KeyMediaOverrides)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `{"a.gif":"/tmp/a.gif"}` {
		t.Errorf("value = %s, want persisted blob", got)
	}
}
