package predictor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cricket-predictor/internal/domain"
	"cricket-predictor/internal/predictor"
)

func TestPredictWinIdempotent(t *testing.T) {
	in := predictor.WinInput{
		Team1:        teamA(),
		Team2:        teamB(),
		Venue:        "X",
		TossWinnerID: 1,
	}

	first := predictor.PredictWin(in)
	second := predictor.PredictWin(in)

	assert.Equal(t, first, second)
}

func TestPredictWinTossAndHomeBoostTeam1(t *testing.T) {
	// Without adjustments: 63.64 / (63.64 + 50) = 56%.
	boosted := predictor.PredictWin(predictor.WinInput{
		Team1:        teamA(),
		Team2:        teamB(),
		Venue:        "X",
		TossWinnerID: 1,
	})

	neutral := predictor.PredictWin(predictor.WinInput{
		Team1:        teamA(),
		Team2:        teamB(),
		Venue:        "Somewhere Else",
		TossWinnerID: 2,
	})

	assert.Greater(t, boosted.Team1WinProbability, neutral.Team1WinProbability)
	assert.Greater(t, boosted.Team1WinProbability, 56)
}

func TestPredictWinClampedIndependently(t *testing.T) {
	dominant := domain.Team{ID: 1, Name: "Dominant", Wins: 100, MatchesPlayed: 100}
	winless := domain.Team{ID: 2, Name: "Winless", Wins: 0, MatchesPlayed: 50}

	result := predictor.PredictWin(predictor.WinInput{
		Team1:        dominant,
		Team2:        winless,
		Venue:        "Anywhere",
		TossWinnerID: 1,
	})

	assert.Equal(t, 80, result.Team1WinProbability)
	assert.Equal(t, 20, result.Team2WinProbability)
}

func TestPredictWinZeroTotalDegenerate(t *testing.T) {
	// adjusted1 = 0 - 5 = -5 and rate2 = 5, so the total cancels to zero
	// and the divide-by-zero guard kicks in before clamping.
	unproven := domain.Team{ID: 1, Name: "Unproven", Wins: 0, MatchesPlayed: 0}
	modest := domain.Team{ID: 2, Name: "Modest", Wins: 1, MatchesPlayed: 20}

	result := predictor.PredictWin(predictor.WinInput{
		Team1:        unproven,
		Team2:        modest,
		Venue:        "Anywhere",
		TossWinnerID: 2,
	})

	assert.Equal(t, 20, result.Team1WinProbability)
	assert.Equal(t, 80, result.Team2WinProbability)
}

func TestPredictWinFactors(t *testing.T) {
	result := predictor.PredictWin(predictor.WinInput{
		Team1:        teamA(),
		Team2:        teamB(),
		Venue:        "X",
		TossWinnerID: 1,
	})

	assert.Equal(t, "Based on historical performance", result.Factors.HeadToHead)
	assert.Equal(t, "Team A: 140W-80L, Team B: 100W-100L", result.Factors.RecentForm)
	assert.Equal(t, "Team A", result.Factors.VenueAdvantage)
	assert.Equal(t, "Team A", result.Factors.TossImpact)
}

func TestPredictWinNeutralVenueTossToTeam2(t *testing.T) {
	result := predictor.PredictWin(predictor.WinInput{
		Team1:        teamA(),
		Team2:        teamB(),
		Venue:        "Somewhere Else",
		TossWinnerID: 2,
	})

	assert.Equal(t, "Neutral", result.Factors.VenueAdvantage)
	assert.Equal(t, "Team B", result.Factors.TossImpact)
}

func TestPredictWinProbabilitiesWithinBand(t *testing.T) {
	teams := []domain.Team{
		{ID: 1, Name: "A", Wins: 0, MatchesPlayed: 0},
		{ID: 2, Name: "B", Wins: 10, MatchesPlayed: 10},
		{ID: 3, Name: "C", Wins: 50, MatchesPlayed: 100},
	}

	for _, t1 := range teams {
		for _, t2 := range teams {
			for _, toss := range []int64{t1.ID, t2.ID} {
				result := predictor.PredictWin(predictor.WinInput{
					Team1:        t1,
					Team2:        t2,
					Venue:        "Anywhere",
					TossWinnerID: toss,
				})

				assert.GreaterOrEqual(t, result.Team1WinProbability, 20)
				assert.LessOrEqual(t, result.Team1WinProbability, 80)
				assert.GreaterOrEqual(t, result.Team2WinProbability, 20)
				assert.LessOrEqual(t, result.Team2WinProbability, 80)
			}
		}
	}
}
