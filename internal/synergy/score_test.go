package synergy

import (
	"testing"

	"github.com/claude/gymkit/internal/models"
)

// TestScoreChestOnly: "chest" in both names fires +10; "press" in only one
// fires nothing.
func TestScoreChestOnly(t *testing.T) {
	a := models.Exercise{Name: "Chest Press"}
	b := models.Exercise{Name: "Incline Chest Fly"}
	if got := Score(a, b); got != 10 {
		t.Errorf("Score = %d, want 10", got)
	}
}

// TestScoreRulesStack verifies rules are independently additive.
func TestScoreRulesStack(t *testing.T) {
	a := models.Exercise{Name: "Chest Press", SecondaryCategory: "Chest"}
	b := models.Exercise{Name: "Incline Chest Press", SecondaryCategory: "chest"}
	// chest+chest (10) + press+press (8) + equal secondary (5)
	if got := Score(a, b); got != 23 {
		t.Errorf("Score = %d, want 23", got)
	}
}

// TestScoreSquat verifies the squat rule fires independently.
func TestScoreSquat(t *testing.T) {
	a := models.Exercise{Name: "Back Squat"}
	b := models.Exercise{Name: "Front Squat"}
	if got := Score(a, b); got != 8 {
		t.Errorf("Score = %d, want 8", got)
	}
}

// TestScoreSymmetric verifies Score(a,b) == Score(b,a) across rule mixes.
func TestScoreSymmetric(t *testing.T) {
	pairs := [][2]models.Exercise{
		{{Name: "Chest Press"}, {Name: "Incline Chest Fly"}},
		{{Name: "Back Squat", SecondaryCategory: "Legs"}, {Name: "Front Squat", SecondaryCategory: "legs"}},
		{{Name: "Overhead Press"}, {Name: "Leg Press", SecondaryCategory: "Legs"}},
		{{Name: "Plank"}, {Name: "Biceps Curl"}},
	}
	for _, p := range pairs {
		if ab, ba := Score(p[0], p[1]), Score(p[1], p[0]); ab != ba {
			t.Errorf("Score(%q, %q) = %d but reversed = %d", p[0].Name, p[1].Name, ab, ba)
		}
	}
}

// TestScoreEmptySecondaryCategories: two empty secondary categories are not
// "equal" for scoring purposes.
func TestScoreEmptySecondaryCategories(t *testing.T) {
	a := models.Exercise{Name: "Plank"}
	b := models.Exercise{Name: "Biceps Curl"}
	if got := Score(a, b); got != 0 {
		t.Errorf("Score = %d, want 0", got)
	}
}
