// Package generate synthesizes workouts from the exercise catalog under
// user-supplied constraints using a first-fit greedy selection.
package generate

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/claude/gymkit/internal/models"
	"github.com/claude/gymkit/internal/synergy"
	"github.com/google/uuid"
)

// Constraint defaults applied when a field is absent.
const (
	DefaultLengthMinutes = 60
	DefaultIntensity     = "moderate"
	DefaultExperience    = "moderate"
)

var (
	DefaultWorkoutTypes = []string{"weights"}
	DefaultBodyParts    = []string{"full body"}
	DefaultGoals        = []string{"balanced"}
)

// Selection constants.
const (
	// MaxExercises caps how many exercises a generated workout holds.
	MaxExercises = 6
	// RedundancyThreshold rejects a candidate whose synergy score against
	// any already-accepted exercise exceeds it.
	RedundancyThreshold = 20
)

// Rest mapping: base seconds adjusted by experience level.
const (
	baseRestSeconds      = 60
	experienceRestAdjust = 15
)

// SnapshotFunc returns the catalog exercises in catalog order. Selection is
// first-fit greedy over that order, so results depend on it; that dependency
// is intentional.
type SnapshotFunc func() []models.Exercise

// Generator assembles workouts from the catalog.
type Generator struct {
	snapshot SnapshotFunc
	log      *slog.Logger
}

// New creates a Generator over the given catalog snapshot function.
func New(snapshot SnapshotFunc, log *slog.Logger) *Generator {
	return &Generator{snapshot: snapshot, log: log}
}

// Generate applies defaults to the constraints, filters the catalog by body
// part, greedily selects non-redundant exercises, and maps intensity and
// experience to training variables.
func (g *Generator) Generate(c models.WorkoutConstraints) models.GeneratedWorkout {
	c = withDefaults(c)

	candidates := filterByBodyParts(g.snapshot(), c.BodyParts)
	selected := greedySelect(candidates)
	if len(selected) == 0 {
		// No non-redundant combination: take the first candidates as-is.
		selected = candidates
		if len(selected) > MaxExercises {
			selected = selected[:MaxExercises]
		}
	}

	sets, reps := trainingVariables(c.Intensity)
	rest := restLabel(c.Experience)

	exercises := make([]models.GeneratedExercise, 0, len(selected))
	for _, ex := range selected {
		equipment := ex.PrimaryCategory
		if equipment == "" {
			equipment = "Bodyweight"
		}
		exercises = append(exercises, models.GeneratedExercise{
			Name:         ex.Name,
			Sets:         sets,
			Reps:         reps,
			Rest:         rest,
			Equipment:    equipment,
			Instructions: fmt.Sprintf("Perform %s with proper form targeting %s.", ex.Name, equipment),
		})
	}

	w := models.GeneratedWorkout{
		Date:          time.Now(),
		WorkoutID:     uuid.NewString(),
		DurationLabel: fmt.Sprintf("%d minutes", c.LengthMinutes),
		Exercises:     exercises,
	}
	if g.log != nil {
		g.log.Info("generated workout",
			"workoutID", w.WorkoutID,
			"exercises", len(w.Exercises),
			"intensity", c.Intensity,
			"experience", c.Experience)
	}
	return w
}

func withDefaults(c models.WorkoutConstraints) models.WorkoutConstraints {
	if c.LengthMinutes == 0 {
		c.LengthMinutes = DefaultLengthMinutes
	}
	if len(c.WorkoutTypes) == 0 {
		c.WorkoutTypes = DefaultWorkoutTypes
	}
	if c.Intensity == "" {
		c.Intensity = DefaultIntensity
	}
	if len(c.BodyParts) == 0 {
		c.BodyParts = DefaultBodyParts
	}
	if len(c.Goals) == 0 {
		c.Goals = DefaultGoals
	}
	if c.Experience == "" {
		c.Experience = DefaultExperience
	}
	return c
}

// filterByBodyParts keeps exercises whose lowercased name contains any
// requested body-part keyword. "full body" admits the whole catalog.
func filterByBodyParts(catalog []models.Exercise, bodyParts []string) []models.Exercise {
	for _, part := range bodyParts {
		if strings.EqualFold(part, "full body") {
			return catalog
		}
	}
	var out []models.Exercise
	for _, ex := range catalog {
		name := strings.ToLower(ex.Name)
		for _, part := range bodyParts {
			if strings.Contains(name, strings.ToLower(part)) {
				out = append(out, ex)
				break
			}
		}
	}
	return out
}

// greedySelect accepts candidates in order, rejecting any whose synergy
// score against an already-accepted exercise exceeds the redundancy
// threshold, until MaxExercises are accepted. No backtracking.
func greedySelect(candidates []models.Exercise) []models.Exercise {
	var selected []models.Exercise
	for _, ex := range candidates {
		redundant := false
		for _, s := range selected {
			if synergy.Score(ex, s) > RedundancyThreshold {
				redundant = true
				break
			}
		}
		if redundant {
			continue
		}
		selected = append(selected, ex)
		if len(selected) == MaxExercises {
			break
		}
	}
	return selected
}

// trainingVariables maps intensity to (sets, reps). Unknown intensities get
// the moderate mapping.
func trainingVariables(intensity string) (int, string) {
	switch strings.ToLower(intensity) {
	case "hard":
		return 4, "6-8"
	case "easy":
		return 3, "12-15"
	case "recovery":
		return 2, "15-20"
	default:
		return 3, "8-12"
	}
}

// restLabel maps experience to a rest duration label: novices rest longer,
// advanced lifters shorter.
func restLabel(experience string) string {
	seconds := baseRestSeconds
	switch strings.ToLower(experience) {
	case "novice":
		seconds += experienceRestAdjust
	case "advanced":
		seconds -= experienceRestAdjust
	}
	return fmt.Sprintf("%ds", seconds)
}
