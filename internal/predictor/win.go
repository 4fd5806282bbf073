package predictor

import (
	"fmt"
	"math"

	"cricket-predictor/internal/domain"
)

const (
	tossAdvantage  = 5.0
	homeAdvantage  = 8.0
	probFloor      = 20
	probCeiling    = 80
	neutralVenue   = "Neutral"
	headToHeadNote = "Based on historical performance"
)

type WinInput struct {
	Team1        domain.Team
	Team2        domain.Team
	Venue        string
	TossWinnerID int64
}

type WinFactors struct {
	HeadToHead     string `json:"head_to_head"`
	RecentForm     string `json:"recent_form"`
	VenueAdvantage string `json:"venue_advantage"`
	TossImpact     string `json:"toss_impact"`
}

type WinResult struct {
	Team1WinProbability int        `json:"team1_win_probability"`
	Team2WinProbability int        `json:"team2_win_probability"`
	Factors             WinFactors `json:"factors"`
}

// PredictWin splits a win probability between the two teams from their
// strengths, with a toss bonus and a home-ground bonus applied to team1.
// Each side is clamped to [20,80] independently, so the pair does not
// always sum to 100; the original heuristic behaves this way and the
// behavior is kept.
func PredictWin(in WinInput) WinResult {
	rate1 := Strength(in.Team1)
	rate2 := Strength(in.Team2)

	tossAdj := -tossAdvantage
	if in.TossWinnerID == in.Team1.ID {
		tossAdj = tossAdvantage
	}

	homeAdj := 0.0
	if in.Team1.HomeGround == in.Venue {
		homeAdj = homeAdvantage
	}

	adjusted1 := rate1 + tossAdj + homeAdj
	total := adjusted1 + rate2
	if total == 0 {
		total = 1
	}

	prob1 := int(math.Round(adjusted1 / total * 100))
	prob2 := 100 - prob1

	venueAdv := neutralVenue
	if in.Team1.HomeGround == in.Venue {
		venueAdv = in.Team1.Name
	}

	tossImpact := in.Team2.Name
	if in.TossWinnerID == in.Team1.ID {
		tossImpact = in.Team1.Name
	}

	return WinResult{
		Team1WinProbability: clampInt(prob1, probFloor, probCeiling),
		Team2WinProbability: clampInt(prob2, probFloor, probCeiling),
		Factors: WinFactors{
			HeadToHead: headToHeadNote,
			RecentForm: fmt.Sprintf("%s: %dW-%dL, %s: %dW-%dL",
				in.Team1.Name, in.Team1.Wins, in.Team1.Losses,
				in.Team2.Name, in.Team2.Wins, in.Team2.Losses),
			VenueAdvantage: venueAdv,
			TossImpact:     tossImpact,
		},
	}
}
