package server

import (
	"time"

	"cricket-predictor/internal/domain"
)

type teamResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ShortName     string `json:"short_name"`
	HomeGround    string `json:"home_ground"`
	Captain       string `json:"captain"`
	Coach         string `json:"coach"`
	FoundedYear   int    `json:"founded_year"`
	Titles        int    `json:"titles"`
	MatchesPlayed int    `json:"matches_played"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
}

func toTeamResponse(t domain.Team) teamResponse {
	return teamResponse{
		ID:            t.ID,
		Name:          t.Name,
		ShortName:     t.ShortName,
		HomeGround:    t.HomeGround,
		Captain:       t.Captain,
		Coach:         t.Coach,
		FoundedYear:   t.FoundedYear,
		Titles:        t.Titles,
		MatchesPlayed: t.MatchesPlayed,
		Wins:          t.Wins,
		Losses:        t.Losses,
	}
}

type playerResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	TeamID         *int64  `json:"team_id"`
	Role           string  `json:"role"`
	BattingStyle   string  `json:"batting_style"`
	BowlingStyle   string  `json:"bowling_style"`
	Nationality    string  `json:"nationality"`
	Age            int     `json:"age"`
	MatchesPlayed  int     `json:"matches_played"`
	RunsScored     int     `json:"runs_scored"`
	WicketsTaken   int     `json:"wickets_taken"`
	BattingAverage float64 `json:"batting_average"`
	BowlingAverage float64 `json:"bowling_average"`
	StrikeRate     float64 `json:"strike_rate"`
	EconomyRate    float64 `json:"economy_rate"`
	Centuries      int     `json:"centuries"`
	Fifties        int     `json:"fifties"`
	HighestScore   int     `json:"highest_score"`
	BestBowling    string  `json:"best_bowling"`
	PriceCrores    float64 `json:"price_crores"`
	TeamName       string  `json:"team_name"`
	TeamShortName  string  `json:"team_short_name"`
}

func toPlayerResponse(p domain.Player) playerResponse {
	return playerResponse{
		ID:             p.ID,
		Name:           p.Name,
		TeamID:         p.TeamID,
		Role:           p.Role,
		BattingStyle:   p.BattingStyle,
		BowlingStyle:   p.BowlingStyle,
		Nationality:    p.Nationality,
		Age:            p.Age,
		MatchesPlayed:  p.MatchesPlayed,
		RunsScored:     p.RunsScored,
		WicketsTaken:   p.WicketsTaken,
		BattingAverage: p.BattingAverage,
		BowlingAverage: p.BowlingAverage,
		StrikeRate:     p.StrikeRate,
		EconomyRate:    p.EconomyRate,
		Centuries:      p.Centuries,
		Fifties:        p.Fifties,
		HighestScore:   p.HighestScore,
		BestBowling:    p.BestBowling,
		PriceCrores:    p.PriceCrores,
		TeamName:       p.TeamName,
		TeamShortName:  p.TeamShortName,
	}
}

type matchResponse struct {
	ID             int64   `json:"id"`
	Team1ID        *int64  `json:"team1_id"`
	Team2ID        *int64  `json:"team2_id"`
	Venue          string  `json:"venue"`
	MatchDate      string  `json:"match_date"`
	TossWinnerID   *int64  `json:"toss_winner_id"`
	TossDecision   string  `json:"toss_decision"`
	Team1Score     int     `json:"team1_score"`
	Team2Score     int     `json:"team2_score"`
	Team1Wickets   int     `json:"team1_wickets"`
	Team2Wickets   int     `json:"team2_wickets"`
	WinnerID       *int64  `json:"winner_id"`
	ManOfMatchID   *int64  `json:"man_of_match_id"`
	PitchType      string  `json:"pitch_type"`
	Weather        string  `json:"weather"`
	Overs          int     `json:"overs"`
	Team1Name      *string `json:"team1_name"`
	Team1Short     *string `json:"team1_short"`
	Team2Name      *string `json:"team2_name"`
	Team2Short     *string `json:"team2_short"`
	TossWinnerName *string `json:"toss_winner_name"`
	WinnerName     *string `json:"winner_name"`
	ManOfMatchName *string `json:"man_of_match_name"`
}

func toMatchResponse(m domain.Match) matchResponse {
	return matchResponse{
		ID:             m.ID,
		Team1ID:        m.Team1ID,
		Team2ID:        m.Team2ID,
		Venue:          m.Venue,
		MatchDate:      m.MatchDate.Format(time.DateOnly),
		TossWinnerID:   m.TossWinnerID,
		TossDecision:   m.TossDecision,
		Team1Score:     m.Team1Score,
		Team2Score:     m.Team2Score,
		Team1Wickets:   m.Team1Wickets,
		Team2Wickets:   m.Team2Wickets,
		WinnerID:       m.WinnerID,
		ManOfMatchID:   m.ManOfMatchID,
		PitchType:      m.PitchType,
		Weather:        m.Weather,
		Overs:          m.Overs,
		Team1Name:      m.Team1Name,
		Team1Short:     m.Team1Short,
		Team2Name:      m.Team2Name,
		Team2Short:     m.Team2Short,
		TossWinnerName: m.TossWinnerName,
		WinnerName:     m.WinnerName,
		ManOfMatchName: m.ManOfMatchName,
	}
}

type teamStatsResponse struct {
	teamResponse
	TotalPlayers  int     `json:"total_players"`
	AvgBattingAvg float64 `json:"avg_batting_avg"`
	AvgBowlingAvg float64 `json:"avg_bowling_avg"`
	TotalRuns     int     `json:"total_runs"`
	TotalWickets  int     `json:"total_wickets"`
}

func toTeamStatsResponse(ts domain.TeamStats) teamStatsResponse {
	return teamStatsResponse{
		teamResponse:  toTeamResponse(ts.Team),
		TotalPlayers:  ts.TotalPlayers,
		AvgBattingAvg: ts.AvgBattingAvg,
		AvgBowlingAvg: ts.AvgBowlingAvg,
		TotalRuns:     ts.TotalRuns,
		TotalWickets:  ts.TotalWickets,
	}
}

type predictionResponse struct {
	ID                  int64    `json:"id"`
	Team1ID             int64    `json:"team1_id"`
	Team2ID             int64    `json:"team2_id"`
	Venue               string   `json:"venue"`
	PredictedScore      int      `json:"predicted_score"`
	ConfidenceLevel     float64  `json:"confidence_level"`
	WinProbabilityTeam1 float64  `json:"win_probability_team1"`
	WinProbabilityTeam2 float64  `json:"win_probability_team2"`
	ActualScore         *int     `json:"actual_score"`
	ActualWinnerID      *int64   `json:"actual_winner_id"`
	PredictionAccuracy  *float64 `json:"prediction_accuracy"`
	CreatedAt           string   `json:"created_at"`
}

func toPredictionResponse(p domain.Prediction) predictionResponse {
	return predictionResponse{
		ID:                  p.ID,
		Team1ID:             p.Team1ID,
		Team2ID:             p.Team2ID,
		Venue:               p.Venue,
		PredictedScore:      p.PredictedScore,
		ConfidenceLevel:     p.ConfidenceLevel,
		WinProbabilityTeam1: p.WinProbabilityTeam1,
		WinProbabilityTeam2: p.WinProbabilityTeam2,
		ActualScore:         p.ActualScore,
		ActualWinnerID:      p.ActualWinnerID,
		PredictionAccuracy:  p.PredictionAccuracy,
		CreatedAt:           p.CreatedAt.UTC().Format(time.RFC3339),
	}
}
