package repository

import (
	"context"
	"database/sql"
	"fmt"

	"cricket-predictor/internal/domain"

	"github.com/rs/zerolog"
)

type PredictionRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewPredictionRepository(sqlDB *sql.DB, logger zerolog.Logger) *PredictionRepository {
	return &PredictionRepository{
		db:     sqlDB,
		logger: logger,
	}
}

// Insert appends one prediction row. Predictions are append-only: the
// outcome columns stay NULL until a reconciliation job fills them in.
func (r *PredictionRepository) Insert(ctx context.Context, p *domain.PredictionInput) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO predictions (team1_id, team2_id, venue, predicted_score,
		                         confidence_level, win_probability_team1, win_probability_team2)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Team1ID, p.Team2ID, p.Venue, p.PredictedScore,
		p.ConfidenceLevel, p.WinProbabilityTeam1, p.WinProbabilityTeam2,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Int64("team1_id", p.Team1ID).
			Int64("team2_id", p.Team2ID).
			Msg("failed to insert prediction")
		return 0, fmt.Errorf("failed to insert prediction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	r.logger.Debug().Int64("prediction_id", id).Msg("prediction recorded")
	return id, nil
}

// List returns stored predictions, newest first, for accuracy auditing.
func (r *PredictionRepository) List(ctx context.Context, limit int) ([]domain.Prediction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, team1_id, team2_id, venue, predicted_score, confidence_level,
		       win_probability_team1, win_probability_team2,
		       actual_score, actual_winner_id, prediction_accuracy, created_at
		FROM predictions
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to list predictions")
		return nil, err
	}
	defer rows.Close()

	var predictions []domain.Prediction
	for rows.Next() {
		var p domain.Prediction
		err := rows.Scan(
			&p.ID,
			&p.Team1ID,
			&p.Team2ID,
			&p.Venue,
			&p.PredictedScore,
			&p.ConfidenceLevel,
			&p.WinProbabilityTeam1,
			&p.WinProbabilityTeam2,
			&p.ActualScore,
			&p.ActualWinnerID,
			&p.PredictionAccuracy,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		predictions = append(predictions, p)
	}
	return predictions, rows.Err()
}

func (r *PredictionRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(id) FROM predictions`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
