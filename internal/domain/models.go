package domain

import (
	"time"
)

// Player roles as stored in the players table.
const (
	RoleBatsman      = "Batsman"
	RoleBowler       = "Bowler"
	RoleAllRounder   = "All Rounder"
	RoleWicketKeeper = "Wicket Keeper"
)

type Team struct {
	ID            int64
	Name          string
	ShortName     string
	HomeGround    string
	Captain       string
	Coach         string
	FoundedYear   int
	Titles        int
	MatchesPlayed int
	Wins          int
	Losses        int
	CreatedAt     time.Time
}

type Player struct {
	ID             int64
	Name           string
	TeamID         *int64
	Role           string
	BattingStyle   string
	BowlingStyle   string
	Nationality    string
	Age            int
	MatchesPlayed  int
	RunsScored     int
	WicketsTaken   int
	BattingAverage float64
	BowlingAverage float64
	StrikeRate     float64
	EconomyRate    float64
	Centuries      int
	Fifties        int
	HighestScore   int
	BestBowling    string
	PriceCrores    float64
	CreatedAt      time.Time

	// Joined from the owning team; empty when the player has no team.
	TeamName      string
	TeamShortName string
}

type Match struct {
	ID           int64
	Team1ID      *int64
	Team2ID      *int64
	Venue        string
	MatchDate    time.Time
	TossWinnerID *int64
	TossDecision string
	Team1Score   int
	Team2Score   int
	Team1Wickets int
	Team2Wickets int
	WinnerID     *int64
	ManOfMatchID *int64
	PitchType    string
	Weather      string
	Overs        int
	CreatedAt    time.Time

	// Joined display names; nil when the referenced row is missing.
	Team1Name      *string
	Team1Short     *string
	Team2Name      *string
	Team2Short     *string
	TossWinnerName *string
	WinnerName     *string
	ManOfMatchName *string
}

type PlayerPerformance struct {
	ID           int64
	MatchID      int64
	PlayerID     int64
	RunsScored   int
	BallsFaced   int
	Fours        int
	Sixes        int
	WicketsTaken int
	RunsConceded int
	OversBowled  float64
	Catches      int
	Stumpings    int
	CreatedAt    time.Time
}

// PredictionInput carries the columns the score predictor writes. The
// outcome columns (actual_score, actual_winner_id, prediction_accuracy)
// are backfilled by a separate reconciliation process and never set here.
type PredictionInput struct {
	Team1ID             int64
	Team2ID             int64
	Venue               string
	PredictedScore      int
	ConfidenceLevel     float64
	WinProbabilityTeam1 float64
	WinProbabilityTeam2 float64
}

type Prediction struct {
	ID                  int64
	Team1ID             int64
	Team2ID             int64
	Venue               string
	PredictedScore      int
	ConfidenceLevel     float64
	WinProbabilityTeam1 float64
	WinProbabilityTeam2 float64
	ActualScore         *int
	ActualWinnerID      *int64
	PredictionAccuracy  *float64
	CreatedAt           time.Time
}

// TeamStats is a team row with aggregates over its current squad.
type TeamStats struct {
	Team          Team
	TotalPlayers  int
	AvgBattingAvg float64
	AvgBowlingAvg float64
	TotalRuns     int
	TotalWickets  int
}

type LiveMatch struct {
	MatchID      int64  `json:"match_id"`
	Team1        string `json:"team1"`
	Team2        string `json:"team2"`
	Status       string `json:"status"`
	CurrentScore string `json:"current_score"`
	Target       string `json:"target"`
	Required     string `json:"required"`
	CurrentRR    string `json:"current_rr"`
	RequiredRR   string `json:"required_rr"`
	LastUpdated  string `json:"last_updated"`
}
