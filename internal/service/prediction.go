package service

import (
	"context"

	"cricket-predictor/internal/constants"
	"cricket-predictor/internal/domain"
	"cricket-predictor/internal/predictor"
	"cricket-predictor/internal/repository"

	"github.com/rs/zerolog"
)

type PredictionService struct {
	teams       *repository.TeamRepository
	predictions *repository.PredictionRepository
	rnd         predictor.Source
	logger      zerolog.Logger
}

func NewPredictionService(teams *repository.TeamRepository, predictions *repository.PredictionRepository, rnd predictor.Source, logger zerolog.Logger) *PredictionService {
	return &PredictionService{teams: teams, predictions: predictions, rnd: rnd, logger: logger}
}

type PredictScoreRequest struct {
	Team1ID   int64  `json:"team1_id"`
	Team2ID   int64  `json:"team2_id"`
	Venue     string `json:"venue"`
	PitchType string `json:"pitch_type"`
	Weather   string `json:"weather"`
	Overs     int    `json:"overs"`
}

type PredictWinRequest struct {
	Team1ID      int64  `json:"team1_id"`
	Team2ID      int64  `json:"team2_id"`
	Venue        string `json:"venue"`
	TossWinnerID int64  `json:"toss_winner_id"`
}

// PredictScore resolves both teams, runs the score heuristic, and records
// the prediction. The lookups and the insert run as ordered steps; a
// missing team fails the request before anything is written.
func (s *PredictionService) PredictScore(ctx context.Context, req PredictScoreRequest) (*predictor.ScoreResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if req.Overs <= 0 {
		req.Overs = constants.DefaultOvers
	}

	team1, err := s.teams.Get(ctx, req.Team1ID)
	if err != nil {
		return nil, err
	}
	team2, err := s.teams.Get(ctx, req.Team2ID)
	if err != nil {
		return nil, err
	}

	result := predictor.PredictScore(predictor.ScoreInput{
		Team1:     *team1,
		Team2:     *team2,
		Venue:     req.Venue,
		PitchType: req.PitchType,
		Weather:   req.Weather,
		Overs:     req.Overs,
	}, s.rnd)

	// The stored row keeps the unclamped score and the raw team strengths
	// as provisional win probabilities; reconciliation reads them later.
	id, err := s.predictions.Insert(ctx, &domain.PredictionInput{
		Team1ID:             team1.ID,
		Team2ID:             team2.ID,
		Venue:               req.Venue,
		PredictedScore:      result.RawScore,
		ConfidenceLevel:     result.RawConfidence,
		WinProbabilityTeam1: result.Team1Strength,
		WinProbabilityTeam2: result.Team2Strength,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("prediction_id", id).
		Int64("team1_id", team1.ID).
		Int64("team2_id", team2.ID).
		Str("venue", req.Venue).
		Int("predicted_score", result.PredictedScore).
		Int("confidence", result.Confidence).
		Msg("score predicted")

	return &result, nil
}

// PredictWin resolves both teams and runs the win-probability heuristic.
// Unlike PredictScore it records nothing.
func (s *PredictionService) PredictWin(ctx context.Context, req PredictWinRequest) (*predictor.WinResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	team1, err := s.teams.Get(ctx, req.Team1ID)
	if err != nil {
		return nil, err
	}
	team2, err := s.teams.Get(ctx, req.Team2ID)
	if err != nil {
		return nil, err
	}

	result := predictor.PredictWin(predictor.WinInput{
		Team1:        *team1,
		Team2:        *team2,
		Venue:        req.Venue,
		TossWinnerID: req.TossWinnerID,
	})

	s.logger.Info().
		Int64("team1_id", team1.ID).
		Int64("team2_id", team2.ID).
		Int("team1_win_probability", result.Team1WinProbability).
		Int("team2_win_probability", result.Team2WinProbability).
		Msg("win probability predicted")

	return &result, nil
}

// RecentPredictions lists stored predictions for accuracy auditing.
func (s *PredictionService) RecentPredictions(ctx context.Context, limit int) ([]domain.Prediction, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if limit <= 0 {
		limit = constants.MatchListLimit
	}
	return s.predictions.List(ctx, limit)
}
