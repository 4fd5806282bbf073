package repository

import (
	"context"
	"database/sql"
	"fmt"

	"cricket-predictor/internal/domain"

	"github.com/rs/zerolog"
)

type MatchRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewMatchRepository(sqlDB *sql.DB, logger zerolog.Logger) *MatchRepository {
	return &MatchRepository{
		db:     sqlDB,
		logger: logger,
	}
}

// List returns completed fixtures, newest first, joined with the display
// names of both teams, the toss winner, the winner, and the man of the
// match. Dangling foreign keys come back as nil names, never as errors.
func (r *MatchRepository) List(ctx context.Context, limit int) ([]domain.Match, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.id, m.team1_id, m.team2_id, m.venue, m.match_date,
		       m.toss_winner_id, m.toss_decision,
		       m.team1_score, m.team2_score, m.team1_wickets, m.team2_wickets,
		       m.winner_id, m.man_of_match_id, m.pitch_type, m.weather, m.overs,
		       m.created_at,
		       t1.name, t1.short_name,
		       t2.name, t2.short_name,
		       tw.name,
		       w.name,
		       p.name
		FROM matches m
		LEFT JOIN teams t1 ON m.team1_id = t1.id
		LEFT JOIN teams t2 ON m.team2_id = t2.id
		LEFT JOIN teams tw ON m.toss_winner_id = tw.id
		LEFT JOIN teams w ON m.winner_id = w.id
		LEFT JOIN players p ON m.man_of_match_id = p.id
		ORDER BY m.match_date DESC
		LIMIT ?`, limit)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to list matches")
		return nil, err
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		var m domain.Match
		err := rows.Scan(
			&m.ID,
			&m.Team1ID,
			&m.Team2ID,
			&m.Venue,
			&m.MatchDate,
			&m.TossWinnerID,
			&m.TossDecision,
			&m.Team1Score,
			&m.Team2Score,
			&m.Team1Wickets,
			&m.Team2Wickets,
			&m.WinnerID,
			&m.ManOfMatchID,
			&m.PitchType,
			&m.Weather,
			&m.Overs,
			&m.CreatedAt,
			&m.Team1Name,
			&m.Team1Short,
			&m.Team2Name,
			&m.Team2Short,
			&m.TossWinnerName,
			&m.WinnerName,
			&m.ManOfMatchName,
		)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// Insert records a completed fixture. Result columns may be backfilled
// later; the row is otherwise immutable.
func (r *MatchRepository) Insert(ctx context.Context, m *domain.Match) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO matches (team1_id, team2_id, venue, match_date, toss_winner_id,
		                     toss_decision, team1_score, team2_score, team1_wickets,
		                     team2_wickets, winner_id, man_of_match_id, pitch_type,
		                     weather, overs)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Team1ID, m.Team2ID, m.Venue, m.MatchDate, m.TossWinnerID,
		m.TossDecision, m.Team1Score, m.Team2Score, m.Team1Wickets,
		m.Team2Wickets, m.WinnerID, m.ManOfMatchID, m.PitchType,
		m.Weather, m.Overs,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert match: %w", err)
	}
	return res.LastInsertId()
}

// InsertPerformance records one player's contribution to a match.
func (r *MatchRepository) InsertPerformance(ctx context.Context, pp *domain.PlayerPerformance) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO player_performances (match_id, player_id, runs_scored, balls_faced,
		                                 fours, sixes, wickets_taken, runs_conceded,
		                                 overs_bowled, catches, stumpings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		pp.MatchID, pp.PlayerID, pp.RunsScored, pp.BallsFaced,
		pp.Fours, pp.Sixes, pp.WicketsTaken, pp.RunsConceded,
		pp.OversBowled, pp.Catches, pp.Stumpings,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert performance: %w", err)
	}
	return res.LastInsertId()
}
