// Package schedule parses the quoted comma-separated workout schedule format
// into typed scheduled-workout records.
package schedule

import (
	"bufio"
	"io"
	"sort"
	"time"

	"github.com/claude/gymkit/internal/models"
)

// dateLayout is the only accepted date format; rows with any other date
// format are dropped.
const dateLayout = "2006-01-02"

// sentinel marks an absent value in the human-authored schedule.
const sentinel = "N/A"

// minColumns is the required column count per row:
// 0=date, 1=workoutID, 2=exerciseName, 3..12=five (reps,weight) pairs,
// 13=rest, 14=instructions, 15=category.
const minColumns = 16

// ResolveFunc maps an exercise name to its media key. Parse calls it once per
// row so media keys are resolved at parse time.
type ResolveFunc func(name string) string

// Parse reads a schedule file (header line followed by data lines) and
// returns scheduled workouts grouped by (date, workoutID) and sorted by date
// ascending. Malformed rows are skipped silently; a read failure returns an
// empty list alongside the error.
func Parse(r io.Reader, resolve ResolveFunc) ([]models.ScheduledWorkout, error) {
	scanner := bufio.NewScanner(r)
	var workouts []models.ScheduledWorkout
	header := true

	for scanner.Scan() {
		line := scanner.Text()
		if header {
			header = false
			continue
		}
		if line == "" {
			continue
		}

		cols := splitQuoted(line)
		if len(cols) < minColumns {
			continue
		}
		date, err := time.Parse(dateLayout, cols[0])
		if err != nil {
			continue
		}

		ex := models.ScheduledExercise{
			ExerciseName: cols[2],
			MediaKey:     resolve(cols[2]),
			Sets:         parseSets(cols[3:13]),
		}
		if v := cols[13]; v != "" && v != sentinel {
			ex.Rest = v
		}
		if v := cols[14]; v != "" && v != sentinel {
			ex.Instructions = v
		}

		workoutID := cols[1]
		category := cols[15]
		if category == "" {
			category = "UNKNOWN"
		}

		if i := findWorkout(workouts, date, workoutID); i >= 0 {
			workouts[i].Exercises = append(workouts[i].Exercises, ex)
		} else {
			workouts = append(workouts, models.ScheduledWorkout{
				Date:      date,
				WorkoutID: workoutID,
				Category:  category,
				Exercises: []models.ScheduledExercise{ex},
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(workouts, func(i, j int) bool {
		return workouts[i].Date.Before(workouts[j].Date)
	})
	return workouts, nil
}

// parseSets extracts up to five (reps, weight) pairs from the ten set
// columns. A pair counts only when its reps value is present and not the
// sentinel.
func parseSets(cols []string) []models.ScheduledSet {
	var sets []models.ScheduledSet
	for i := 0; i+1 < len(cols); i += 2 {
		reps := cols[i]
		if reps == "" || reps == sentinel {
			continue
		}
		sets = append(sets, models.ScheduledSet{
			Reps:   reps,
			Weight: cols[i+1],
		})
	}
	return sets
}

// findWorkout returns the index of the workout matching (date, workoutID),
// or -1.
func findWorkout(workouts []models.ScheduledWorkout, date time.Time, id string) int {
	for i, w := range workouts {
		if w.WorkoutID == id && w.Date.Equal(date) {
			return i
		}
	}
	return -1
}

// splitQuoted tokenizes a line on commas, honoring double-quote-enclosed
// fields that may contain commas. A quote character toggles quoted state and
// is never emitted; a doubled quote is not an escape, and an unmatched quote
// keeps toggling for the rest of the line.
func splitQuoted(line string) []string {
	var cols []string
	var field []rune
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			cols = append(cols, string(field))
			field = field[:0]
		default:
			field = append(field, r)
		}
	}
	cols = append(cols, string(field))
	return cols
}
