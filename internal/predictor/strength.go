package predictor

import (
	"cricket-predictor/internal/domain"
)

// Strength is a team's historical win percentage. The denominator floors
// at 1 so a team with no recorded matches reports 0% instead of dividing
// by zero.
func Strength(t domain.Team) float64 {
	matches := t.MatchesPlayed
	if matches < 1 {
		matches = 1
	}
	return float64(t.Wins) / float64(matches) * 100
}
