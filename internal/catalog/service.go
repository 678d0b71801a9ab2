// Package catalog holds the canonical exercise catalog, bundled and
// user-created workouts, the schedule, the workout log, and the media
// override map, and exposes the service boundary the presentation layer
// calls into.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"
	"time"

	"github.com/claude/gymkit/internal/generate"
	"github.com/claude/gymkit/internal/ingest/schedule"
	"github.com/claude/gymkit/internal/match"
	"github.com/claude/gymkit/internal/models"
	"github.com/claude/gymkit/internal/storage"
	"github.com/google/uuid"
)

// Bundled resource names looked up in the data filesystem.
const (
	ExercisesFile = "exercises.json"
	WorkoutsFile  = "workouts.json"
	ScheduleFile  = "schedule.csv"
)

// Service owns the in-memory collections and their persistence. It is
// explicitly constructed and injected; there is no ambient global. Reads and
// mutations are expected on one owner thread — the mutex only exists so the
// two startup loads may overlap safely with fuzzy lookups.
type Service struct {
	store  *storage.Store
	assets fs.FS
	log    *slog.Logger

	resolver  *match.Resolver
	generator *generate.Generator

	mu           sync.RWMutex
	exercises    []models.Exercise
	workouts     []models.Workout
	userWorkouts []models.Workout
	scheduled    []models.ScheduledWorkout
	logEntries   []models.WorkoutLogEntry
	overrides    map[string]string

	subs []func(Event)
}

// New creates a Service backed by the given blob store. assets is the
// bundled media filesystem consulted by the media resolution chain (may be
// nil). mediaExt is the extension for synthesized media keys; empty selects
// the matcher default.
func New(store *storage.Store, assets fs.FS, mediaExt string, log *slog.Logger) *Service {
	s := &Service{
		store:     store,
		assets:    assets,
		log:       log,
		overrides: make(map[string]string),
	}
	s.resolver = match.NewResolver(s.exerciseSnapshot, mediaExt, log)
	s.generator = generate.New(s.exerciseSnapshot, log)
	return s
}

// Generate synthesizes a workout from the catalog under the given
// constraints.
func (s *Service) Generate(c models.WorkoutConstraints) models.GeneratedWorkout {
	return s.generator.Generate(c)
}

// Load populates every collection: the persisted blobs, then the JSON
// catalog and the schedule file as two concurrent tasks. It is a full
// replace, so loading twice yields identical collections. Missing or
// malformed bundled resources degrade to empty collections with a logged
// diagnostic; only a blob-store read failure is returned as an error.
// Fuzzy lookups issued before Load returns see a partial catalog and may
// yield fallback keys.
func (s *Service) Load(ctx context.Context, data fs.FS) error {
	if err := s.loadPersisted(ctx); err != nil {
		return err
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		exercises := loadJSON[[]models.Exercise](data, ExercisesFile, s.log)
		workouts := loadWorkouts(data, s.log)
		s.mu.Lock()
		s.exercises = exercises
		s.workouts = workouts
		s.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		scheduled := s.loadSchedule(data)
		s.mu.Lock()
		s.scheduled = scheduled
		s.mu.Unlock()
	}()
	wg.Wait()

	s.emit(Event{Kind: EventCatalogReplaced})
	s.log.Info("catalog loaded",
		"exercises", len(s.Exercises()),
		"workouts", len(s.Workouts()),
		"scheduled", len(s.ScheduledWorkouts()))
	return nil
}

// loadPersisted reads the three persisted blobs. A key that has never been
// written leaves its collection empty.
func (s *Service) loadPersisted(ctx context.Context) error {
	userWorkouts, err := loadBlob[[]models.Workout](ctx, s.store, storage.KeyUserWorkouts)
	if err != nil {
		return err
	}
	logEntries, err := loadBlob[[]models.WorkoutLogEntry](ctx, s.store, storage.KeyWorkoutLog)
	if err != nil {
		return err
	}
	overrides, err := loadBlob[map[string]string](ctx, s.store, storage.KeyMediaOverrides)
	if err != nil {
		return err
	}
	if overrides == nil {
		overrides = make(map[string]string)
	}

	s.mu.Lock()
	s.userWorkouts = userWorkouts
	s.logEntries = logEntries
	s.overrides = overrides
	s.mu.Unlock()
	return nil
}

func (s *Service) loadSchedule(data fs.FS) []models.ScheduledWorkout {
	f, err := data.Open(ScheduleFile)
	if err != nil {
		s.log.Warn("resource missing", "file", ScheduleFile, "error", err)
		return nil
	}
	defer f.Close()

	scheduled, err := schedule.Parse(f, s.resolver.ResolveMediaKey)
	if err != nil {
		s.log.Warn("decode failure", "file", ScheduleFile, "error", err)
		return nil
	}
	return scheduled
}

// loadJSON decodes one bundled JSON resource, degrading to the zero value on
// a missing file or malformed content.
func loadJSON[T any](data fs.FS, name string, log *slog.Logger) T {
	var out T
	raw, err := fs.ReadFile(data, name)
	if err != nil {
		log.Warn("resource missing", "file", name, "error", err)
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Warn("decode failure", "file", name, "error", err)
		var zero T
		return zero
	}
	return out
}

// loadWorkouts accepts either a bare array of workouts or a wrapper object
// holding a "workouts" field.
func loadWorkouts(data fs.FS, log *slog.Logger) []models.Workout {
	raw, err := fs.ReadFile(data, WorkoutsFile)
	if err != nil {
		log.Warn("resource missing", "file", WorkoutsFile, "error", err)
		return nil
	}
	var workouts []models.Workout
	if err := json.Unmarshal(raw, &workouts); err == nil {
		return workouts
	}
	var wrapper struct {
		Workouts []models.Workout `json:"workouts"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		log.Warn("decode failure", "file", WorkoutsFile, "error", err)
		return nil
	}
	return wrapper.Workouts
}

func loadBlob[T any](ctx context.Context, store *storage.Store, key string) (T, error) {
	var out T
	raw, err := store.Get(ctx, key)
	if err != nil {
		return out, fmt.Errorf("loading %s: %w", key, err)
	}
	if raw == nil {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decoding %s: %w", key, err)
	}
	return out, nil
}

// exerciseSnapshot feeds the fuzzy matcher the current catalog in catalog
// order.
func (s *Service) exerciseSnapshot() []models.Exercise {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exercises
}

// Exercises returns the canonical exercise catalog in catalog order.
func (s *Service) Exercises() []models.Exercise {
	return s.exerciseSnapshot()
}

// Workouts returns the bundled (read-only) workouts.
func (s *Service) Workouts() []models.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workouts
}

// UserWorkouts returns the user-created workouts.
func (s *Service) UserWorkouts() []models.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userWorkouts
}

// ScheduledWorkouts returns the parsed schedule sorted by date ascending.
func (s *Service) ScheduledWorkouts() []models.ScheduledWorkout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scheduled
}

// ScheduledFor returns the scheduled workouts whose date falls on the same
// calendar day as t.
func (s *Service) ScheduledFor(t time.Time) []models.ScheduledWorkout {
	y, m, d := t.Date()
	var out []models.ScheduledWorkout
	for _, w := range s.ScheduledWorkouts() {
		wy, wm, wd := w.Date.Date()
		if wy == y && wm == m && wd == d {
			out = append(out, w)
		}
	}
	return out
}

// WorkoutLog returns the append-only workout log.
func (s *Service) WorkoutLog() []models.WorkoutLogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logEntries
}

// ResolveMediaKey resolves an exercise name to the closest catalog entry's
// media key. It never fails.
func (s *Service) ResolveMediaKey(name string) string {
	return s.resolver.ResolveMediaKey(name)
}

// CreateUserWorkout appends a workout to the user collection and persists
// the collection. A missing ID is assigned. On a persistence failure the
// in-memory state keeps the workout and the error is surfaced to the caller.
func (s *Service) CreateUserWorkout(ctx context.Context, w models.Workout) (models.Workout, error) {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}

	s.mu.Lock()
	s.userWorkouts = append(s.userWorkouts, w)
	snapshot := s.userWorkouts
	s.mu.Unlock()

	s.emit(Event{Kind: EventUserWorkoutAdded, Key: w.ID})
	if err := s.persist(ctx, storage.KeyUserWorkouts, snapshot); err != nil {
		return w, err
	}
	return w, nil
}

// LogWorkout appends an entry to the workout log and persists the log.
func (s *Service) LogWorkout(ctx context.Context, entry models.WorkoutLogEntry) error {
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}

	s.mu.Lock()
	s.logEntries = append(s.logEntries, entry)
	snapshot := s.logEntries
	s.mu.Unlock()

	s.emit(Event{Kind: EventWorkoutLogged, Key: entry.WorkoutName})
	return s.persist(ctx, storage.KeyWorkoutLog, snapshot)
}

// SetOverridePath records a media override (last write wins) and persists
// the override map.
func (s *Service) SetOverridePath(ctx context.Context, mediaKey, path string) error {
	s.mu.Lock()
	s.overrides[mediaKey] = path
	snapshot := make(map[string]string, len(s.overrides))
	for k, v := range s.overrides {
		snapshot[k] = v
	}
	s.mu.Unlock()

	s.emit(Event{Kind: EventOverrideSet, Key: mediaKey})
	return s.persist(ctx, storage.KeyMediaOverrides, snapshot)
}

// OverridePath returns the override for a media key, if any.
func (s *Service) OverridePath(mediaKey string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.overrides[mediaKey]
	return p, ok
}

// persist serializes one collection and rewrites its blob wholesale.
func (s *Service) persist(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.store.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("persisting %s: %w", key, err)
	}
	return nil
}
