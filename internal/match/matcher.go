// Package match resolves arbitrary exercise name strings to the media key of
// the closest catalog entry using normalized Levenshtein distance.
package match

import (
	"log/slog"
	"strings"
	"sync"
	"unicode"

	"github.com/claude/gymkit/internal/models"
)

// DefaultMediaExt is appended to the normalized query when no catalog entry
// yields a usable media key.
const DefaultMediaExt = ".gif"

// SnapshotFunc returns the current catalog exercises in catalog order. The
// resolver calls it on every lookup so matching stays correct across catalog
// replacement; before the catalog load completes it simply sees fewer (or
// zero) entries and degrades to fallback keys.
type SnapshotFunc func() []models.Exercise

// Resolver maps exercise names to media keys. It never fails: when nothing
// usable matches it synthesizes a fallback key and logs a match miss.
type Resolver struct {
	snapshot SnapshotFunc
	mediaExt string
	log      *slog.Logger

	mu      sync.Mutex
	memo    map[string]string
	memoCat []models.Exercise // catalog the memo was built against
}

// NewResolver creates a Resolver over the given catalog snapshot function.
// mediaExt is the extension for synthesized fallback keys; empty selects
// DefaultMediaExt.
func NewResolver(snapshot SnapshotFunc, mediaExt string, log *slog.Logger) *Resolver {
	if snapshot == nil {
		snapshot = func() []models.Exercise { return nil }
	}
	if mediaExt == "" {
		mediaExt = DefaultMediaExt
	}
	return &Resolver{
		snapshot: snapshot,
		mediaExt: mediaExt,
		log:      log,
		memo:     make(map[string]string),
	}
}

// ResolveMediaKey returns the media key of the catalog entry whose normalized
// name is closest to the normalized query. Ties keep the first entry in
// catalog order. With an empty catalog, or when the best match carries no
// media key, it returns normalized(name) + ext and reports a soft miss.
func (r *Resolver) ResolveMediaKey(name string) string {
	query := Normalize(name)
	catalog := r.snapshot()

	r.mu.Lock()
	if !sameCatalog(catalog, r.memoCat) {
		// Catalog changed since the memo was built; start over.
		r.memo = make(map[string]string)
		r.memoCat = catalog
	}
	if key, ok := r.memo[query]; ok {
		r.mu.Unlock()
		return key
	}
	r.mu.Unlock()

	best := -1
	bestDist := 0
	for i, ex := range catalog {
		d := Distance(query, Normalize(ex.Name))
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}

	var key string
	if best == -1 || catalog[best].MediaKey == "" {
		key = query + r.mediaExt
		if r.log != nil {
			r.log.Warn("match miss, synthesized media key", "name", name, "key", key)
		}
	} else {
		key = catalog[best].MediaKey
	}

	r.mu.Lock()
	r.memo[query] = key
	r.mu.Unlock()
	return key
}

// sameCatalog reports whether two snapshots share the same backing array.
// Load replaces the slice wholesale, so an identity check is enough.
func sameCatalog(a, b []models.Exercise) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

// Normalize lowercases a name and strips punctuation and spaces so that
// "Bench   Press!!" and "bench press" compare equal.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Distance is the classic dynamic-programming Levenshtein edit distance over
// Unicode scalars, with insertion, deletion and substitution each costing 1.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
