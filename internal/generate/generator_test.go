package generate

import (
	"strings"
	"testing"

	"github.com/claude/gymkit/internal/models"
)

func chestAndLegsCatalog() []models.Exercise {
	return []models.Exercise{
		{Name: "Chest Press", PrimaryCategory: "Machine"},
		{Name: "Incline Chest Press", PrimaryCategory: "Barbell"},
		{Name: "Chest Fly", PrimaryCategory: "Machine"},
		{Name: "Decline Chest Press", PrimaryCategory: "Barbell"},
		{Name: "Cable Chest Fly", PrimaryCategory: "Cable"},
		{Name: "Chest Dip"},
		{Name: "Chest Squeeze Press", PrimaryCategory: "Dumbbell"},
		{Name: "Wide Chest Push Up"},
		{Name: "Leg Press", PrimaryCategory: "Machine"},
		{Name: "Leg Curl", PrimaryCategory: "Machine"},
	}
}

func newTestGenerator(catalog []models.Exercise) *Generator {
	return New(func() []models.Exercise { return catalog }, nil)
}

// TestGenerateBodyPartFilter: requesting chest never yields a leg exercise,
// and at most six exercises are selected.
func TestGenerateBodyPartFilter(t *testing.T) {
	g := newTestGenerator(chestAndLegsCatalog())
	w := g.Generate(models.WorkoutConstraints{BodyParts: []string{"chest"}})

	if len(w.Exercises) == 0 || len(w.Exercises) > MaxExercises {
		t.Fatalf("exercises = %d, want 1..%d", len(w.Exercises), MaxExercises)
	}
	for _, ex := range w.Exercises {
		if strings.Contains(strings.ToLower(ex.Name), "leg") {
			t.Errorf("leg exercise %q selected for chest request", ex.Name)
		}
	}
}

// TestGenerateHardIntensity: every exercise gets 4 sets of "6-8".
func TestGenerateHardIntensity(t *testing.T) {
	g := newTestGenerator(chestAndLegsCatalog())
	w := g.Generate(models.WorkoutConstraints{Intensity: "hard"})

	if len(w.Exercises) == 0 {
		t.Fatal("no exercises generated")
	}
	for _, ex := range w.Exercises {
		if ex.Sets != 4 || ex.Reps != "6-8" {
			t.Errorf("%s = %d sets of %q, want 4 sets of 6-8", ex.Name, ex.Sets, ex.Reps)
		}
	}
}

// TestGenerateIntensityMapping covers the remaining intensity mappings,
// including the unknown-intensity default.
func TestGenerateIntensityMapping(t *testing.T) {
	cases := []struct {
		intensity string
		sets      int
		reps      string
	}{
		{"easy", 3, "12-15"},
		{"recovery", 2, "15-20"},
		{"moderate", 3, "8-12"},
		{"brutal", 3, "8-12"},
		{"", 3, "8-12"},
	}
	g := newTestGenerator(chestAndLegsCatalog())
	for _, c := range cases {
		w := g.Generate(models.WorkoutConstraints{Intensity: c.intensity})
		ex := w.Exercises[0]
		if ex.Sets != c.sets || ex.Reps != c.reps {
			t.Errorf("intensity %q = %d sets of %q, want %d of %q", c.intensity, ex.Sets, ex.Reps, c.sets, c.reps)
		}
	}
}

// TestGenerateRestMapping: novice rests longer, advanced shorter.
func TestGenerateRestMapping(t *testing.T) {
	cases := []struct {
		experience string
		rest       string
	}{
		{"novice", "75s"},
		{"moderate", "60s"},
		{"advanced", "45s"},
		{"", "60s"},
	}
	g := newTestGenerator(chestAndLegsCatalog())
	for _, c := range cases {
		w := g.Generate(models.WorkoutConstraints{Experience: c.experience})
		if got := w.Exercises[0].Rest; got != c.rest {
			t.Errorf("experience %q rest = %q, want %q", c.experience, got, c.rest)
		}
	}
}

// TestGenerateGreedyRedundancy: candidates scoring above the threshold
// against an accepted exercise are skipped, in catalog order.
func TestGenerateGreedyRedundancy(t *testing.T) {
	catalog := []models.Exercise{
		// chest (10) + press (8) + equal secondary (5) = 23 > 20 against
		// each other.
		{Name: "Chest Press", SecondaryCategory: "Chest"},
		{Name: "Incline Chest Press", SecondaryCategory: "Chest"},
		{Name: "Chest Fly", SecondaryCategory: "Shoulders"}, // 10 vs both, kept
	}
	g := newTestGenerator(catalog)
	w := g.Generate(models.WorkoutConstraints{BodyParts: []string{"chest"}})

	if len(w.Exercises) != 2 {
		t.Fatalf("exercises = %d, want 2", len(w.Exercises))
	}
	if w.Exercises[0].Name != "Chest Press" || w.Exercises[1].Name != "Chest Fly" {
		t.Errorf("selection = %q, %q; want Chest Press, Chest Fly", w.Exercises[0].Name, w.Exercises[1].Name)
	}
}

// TestGenerateNoCandidates: a body part matching nothing yields an empty
// workout (the zero-selection fallback has nothing to take either).
func TestGenerateNoCandidates(t *testing.T) {
	g := newTestGenerator(chestAndLegsCatalog())
	w := g.Generate(models.WorkoutConstraints{BodyParts: []string{"calves"}})
	if len(w.Exercises) != 0 {
		t.Errorf("exercises = %d, want 0 for unmatched body part", len(w.Exercises))
	}
}

// TestGenerateDefaults: absent constraints fall back to 60 minutes and the
// full catalog.
func TestGenerateDefaults(t *testing.T) {
	g := newTestGenerator(chestAndLegsCatalog())
	w := g.Generate(models.WorkoutConstraints{})

	if w.DurationLabel != "60 minutes" {
		t.Errorf("duration = %q, want %q", w.DurationLabel, "60 minutes")
	}
	if w.WorkoutID == "" {
		t.Error("workoutID is empty, want a fresh identifier")
	}
	if w.Date.IsZero() {
		t.Error("date is zero, want current timestamp")
	}
	if len(w.Exercises) != MaxExercises {
		t.Errorf("exercises = %d, want %d (full body admits whole catalog)", len(w.Exercises), MaxExercises)
	}
}

// TestGenerateEquipmentAndInstructions: equipment falls back to Bodyweight
// and the instruction string is composed from name and equipment.
func TestGenerateEquipmentAndInstructions(t *testing.T) {
	catalog := []models.Exercise{
		{Name: "Chest Press", PrimaryCategory: "Machine"},
		{Name: "Chest Dip"},
	}
	g := newTestGenerator(catalog)
	w := g.Generate(models.WorkoutConstraints{BodyParts: []string{"chest"}})

	if len(w.Exercises) != 2 {
		t.Fatalf("exercises = %d, want 2", len(w.Exercises))
	}
	if w.Exercises[0].Equipment != "Machine" {
		t.Errorf("equipment = %q, want Machine", w.Exercises[0].Equipment)
	}
	if w.Exercises[1].Equipment != "Bodyweight" {
		t.Errorf("equipment = %q, want Bodyweight fallback", w.Exercises[1].Equipment)
	}
	want := "Perform Chest Press with proper form targeting Machine."
	if got := w.Exercises[0].Instructions; got != want {
		t.Errorf("instructions = %q, want %q", got, want)
	}
}

// TestGenerateCatalogOrderDependence: selection follows catalog iteration
// order, so reordering the catalog changes which redundant entry survives.
func TestGenerateCatalogOrderDependence(t *testing.T) {
	forward := []models.Exercise{
		{Name: "Chest Press", SecondaryCategory: "Chest"},
		{Name: "Incline Chest Press", SecondaryCategory: "Chest"},
	}
	reversed := []models.Exercise{forward[1], forward[0]}

	wf := newTestGenerator(forward).Generate(models.WorkoutConstraints{BodyParts: []string{"chest"}})
	wr := newTestGenerator(reversed).Generate(models.WorkoutConstraints{BodyParts: []string{"chest"}})

	if len(wf.Exercises) != 1 || len(wr.Exercises) != 1 {
		t.Fatalf("exercises = %d/%d, want 1/1", len(wf.Exercises), len(wr.Exercises))
	}
	if wf.Exercises[0].Name != "Chest Press" || wr.Exercises[0].Name != "Incline Chest Press" {
		t.Errorf("first-fit winner = %q/%q, want catalog-order winners", wf.Exercises[0].Name, wr.Exercises[0].Name)
	}
}
