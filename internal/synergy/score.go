// Package synergy scores pairwise exercise compatibility with simple lexical
// keyword checks. Higher scores mean more overlap (more redundancy).
package synergy

import (
	"strings"

	"github.com/claude/gymkit/internal/models"
)

// Score computes the pairwise compatibility score between two exercises.
// Each rule is independently additive and checks both exercises the same
// way, so the function is symmetric and pure.
func Score(a, b models.Exercise) int {
	an := strings.ToLower(a.Name)
	bn := strings.ToLower(b.Name)

	score := 0
	if strings.Contains(an, "chest") && strings.Contains(bn, "chest") {
		score += 10
	}
	if strings.Contains(an, "squat") && strings.Contains(bn, "squat") {
		score += 8
	}
	if strings.Contains(an, "press") && strings.Contains(bn, "press") {
		score += 8
	}
	if a.SecondaryCategory != "" && b.SecondaryCategory != "" &&
		strings.EqualFold(a.SecondaryCategory, b.SecondaryCategory) {
		score += 5
	}
	return score
}
