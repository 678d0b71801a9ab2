package models

import "time"

// Exercise is a canonical catalog entry. Name is the primary matching key;
// MediaKey may be empty, in which case it is resolved by fuzzy matching or
// synthesized. Catalog entries are immutable once loaded except through a
// full catalog replacement.
type Exercise struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	MediaKey          string `json:"mediaKey"`
	PrimaryCategory   string `json:"primaryCategory,omitempty"`
	SecondaryCategory string `json:"secondaryCategory,omitempty"`
	Sets              int    `json:"sets,omitempty"`
	Reps              string `json:"reps,omitempty"`
}

// Workout is a named ordered collection of exercises. Bundled workouts are
// read-only; user-created workouts live in a separate collection and are
// never merged into the bundled one.
type Workout struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Category        string     `json:"category,omitempty"`
	Equipment       string     `json:"equipment,omitempty"`
	DurationMinutes int        `json:"durationMinutes,omitempty"`
	Exercises       []Exercise `json:"exercises"`
}

// ScheduledSet is one planned set within a scheduled exercise. Reps and
// weight stay free-form strings (ranges like "6-8" are common) because the
// source schedule is human-authored text.
type ScheduledSet struct {
	IsCompleted    bool   `json:"isCompleted"`
	RecordedWeight string `json:"recordedWeight"`
	Reps           string `json:"reps"`
	Weight         string `json:"weight"`
}

// ScheduledExercise is one exercise row from the schedule file, with its
// media key already resolved against the catalog.
type ScheduledExercise struct {
	ExerciseName string         `json:"exerciseName"`
	MediaKey     string         `json:"mediaKey"`
	Sets         []ScheduledSet `json:"sets"`
	Rest         string         `json:"rest,omitempty"`
	Instructions string         `json:"instructions,omitempty"`
}

// ScheduledWorkout groups all schedule rows sharing the same (date,
// workoutID) pair, preserving source row order.
type ScheduledWorkout struct {
	Date      time.Time           `json:"date"`
	WorkoutID string              `json:"workoutID"`
	Category  string              `json:"category"`
	Exercises []ScheduledExercise `json:"exercises"`
}

// WorkoutLogEntry records one completed workout. The log is append-only.
type WorkoutLogEntry struct {
	Date            time.Time `json:"date"`
	WorkoutName     string    `json:"workoutName"`
	DurationMinutes int       `json:"durationMinutes"`
}

// WorkoutConstraints are the user-supplied generation options. Every field
// is optional; zero values trigger the documented defaults in the generator.
type WorkoutConstraints struct {
	LengthMinutes int      `json:"lengthMinutes,omitempty"`
	WorkoutTypes  []string `json:"workoutTypes,omitempty"`
	Intensity     string   `json:"intensity,omitempty"`
	BodyParts     []string `json:"bodyParts,omitempty"`
	Goals         []string `json:"goals,omitempty"`
	Experience    string   `json:"experience,omitempty"`
}

// GeneratedExercise is one exercise in a generated workout, with the
// training variables already mapped from the constraints.
type GeneratedExercise struct {
	Name         string `json:"name"`
	Sets         int    `json:"sets"`
	Reps         string `json:"reps"`
	Rest         string `json:"rest"`
	Equipment    string `json:"equipment"`
	Instructions string `json:"instructions"`
}

// GeneratedWorkout is the output of the workout generator.
type GeneratedWorkout struct {
	Date          time.Time           `json:"date"`
	WorkoutID     string              `json:"workoutID"`
	DurationLabel string              `json:"duration"`
	Exercises     []GeneratedExercise `json:"exercises"`
}
