package catalog

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/claude/gymkit/internal/storage"
)

func mediaTestService(t *testing.T, assets fstest.MapFS) *Service {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "blobs.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	svc := New(store, assets, "", slog.New(slog.DiscardHandler))
	if err := svc.Load(context.Background(), testData()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return svc
}

// TestMediaPathOverrideWins: an override on the resolved key takes
// precedence over bundled assets.
func TestMediaPathOverrideWins(t *testing.T) {
	assets := fstest.MapFS{"benchpress.gif": &fstest.MapFile{}}
	svc := mediaTestService(t, assets)

	if err := svc.SetOverridePath(context.Background(), "benchpress.gif", "/media/custom.gif"); err != nil {
		t.Fatalf("set override: %v", err)
	}
	got, ok := svc.MediaPath("Bench Press")
	if !ok || got != "/media/custom.gif" {
		t.Errorf("MediaPath = %q, %v; want /media/custom.gif, true", got, ok)
	}
}

// TestMediaPathBundledAsset: without an override, the exercise's own media
// key resolves against the bundled assets.
func TestMediaPathBundledAsset(t *testing.T) {
	assets := fstest.MapFS{"benchpress.gif": &fstest.MapFile{}}
	svc := mediaTestService(t, assets)

	got, ok := svc.MediaPath("Bench Press")
	if !ok || got != "benchpress.gif" {
		t.Errorf("MediaPath = %q, %v; want benchpress.gif, true", got, ok)
	}
}

// TestMediaPathFuzzyGuess: a name not in the catalog falls through to the
// fuzzy-matched key when that asset exists.
func TestMediaPathFuzzyGuess(t *testing.T) {
	assets := fstest.MapFS{"backsquat.gif": &fstest.MapFile{}}
	svc := mediaTestService(t, assets)

	got, ok := svc.MediaPath("Bak Squt")
	if !ok || got != "backsquat.gif" {
		t.Errorf("MediaPath = %q, %v; want backsquat.gif, true", got, ok)
	}
}

// TestMediaPathNotFoundThenReplaced: a failed lookup accepts a replacement
// path, which becomes an override entry.
func TestMediaPathNotFoundThenReplaced(t *testing.T) {
	svc := mediaTestService(t, fstest.MapFS{})

	if got, ok := svc.MediaPath("Bench Press"); ok {
		t.Fatalf("MediaPath = %q, want not found with no assets", got)
	}

	key := svc.ResolveMediaKey("Bench Press")
	if err := svc.ReplaceMedia(context.Background(), key, "/media/replacement.gif"); err != nil {
		t.Fatalf("replace: %v", err)
	}
	got, ok := svc.MediaPath("Bench Press")
	if !ok || got != "/media/replacement.gif" {
		t.Errorf("MediaPath after replace = %q, %v; want /media/replacement.gif, true", got, ok)
	}
}
