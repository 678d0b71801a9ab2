package catalog

import (
	"context"
	"io/fs"

	"github.com/claude/gymkit/internal/match"
	"github.com/claude/gymkit/internal/models"
)

// MediaPath resolves the media asset for an exercise name through the
// lookup chain: override map by resolved media key, bundled asset by the
// exercise's own media key, then the fuzzy-matched guess. When nothing
// resolves it returns ("", false); the caller may supply a replacement path
// via ReplaceMedia.
func (s *Service) MediaPath(name string) (string, bool) {
	key := s.resolver.ResolveMediaKey(name)

	if p, ok := s.OverridePath(key); ok {
		return p, true
	}
	if ex, ok := s.exerciseByName(name); ok && ex.MediaKey != "" && s.assetExists(ex.MediaKey) {
		return ex.MediaKey, true
	}
	if s.assetExists(key) {
		return key, true
	}

	s.log.Warn("media not found", "name", name, "key", key)
	return "", false
}

// ReplaceMedia records a caller-supplied replacement path for a media key
// that failed to resolve. It becomes a new override-map entry.
func (s *Service) ReplaceMedia(ctx context.Context, mediaKey, path string) error {
	return s.SetOverridePath(ctx, mediaKey, path)
}

// exerciseByName finds the catalog entry whose normalized name equals the
// normalized query.
func (s *Service) exerciseByName(name string) (models.Exercise, bool) {
	query := match.Normalize(name)
	for _, e := range s.exerciseSnapshot() {
		if match.Normalize(e.Name) == query {
			return e, true
		}
	}
	return models.Exercise{}, false
}

// assetExists reports whether the bundled asset filesystem holds a file for
// the media key.
func (s *Service) assetExists(mediaKey string) bool {
	if s.assets == nil {
		return false
	}
	_, err := fs.Stat(s.assets, mediaKey)
	return err == nil
}
