package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cricket-predictor/internal/domain"

	"github.com/rs/zerolog"
)

type PlayerRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewPlayerRepository(sqlDB *sql.DB, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{
		db:     sqlDB,
		logger: logger,
	}
}

// PlayerFilter narrows the player list; zero values mean no filtering.
type PlayerFilter struct {
	TeamID int64
	Role   string
}

const playerSelect = `
	SELECT p.id, p.name, p.team_id, p.role, p.batting_style, p.bowling_style,
	       p.nationality, p.age, p.matches_played, p.runs_scored, p.wickets_taken,
	       p.batting_average, p.bowling_average, p.strike_rate, p.economy_rate,
	       p.centuries, p.fifties, p.highest_score, p.best_bowling, p.price_crores,
	       p.created_at,
	       COALESCE(t.name, ''), COALESCE(t.short_name, '')
	FROM players p
	LEFT JOIN teams t ON p.team_id = t.id`

func scanPlayer(row interface{ Scan(...any) error }) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.TeamID,
		&p.Role,
		&p.BattingStyle,
		&p.BowlingStyle,
		&p.Nationality,
		&p.Age,
		&p.MatchesPlayed,
		&p.RunsScored,
		&p.WicketsTaken,
		&p.BattingAverage,
		&p.BowlingAverage,
		&p.StrikeRate,
		&p.EconomyRate,
		&p.Centuries,
		&p.Fifties,
		&p.HighestScore,
		&p.BestBowling,
		&p.PriceCrores,
		&p.CreatedAt,
		&p.TeamName,
		&p.TeamShortName,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlayerRepository) List(ctx context.Context, filter PlayerFilter) ([]domain.Player, error) {
	query := playerSelect
	var args []any
	var conds []string

	if filter.TeamID != 0 {
		conds = append(conds, "p.team_id = ?")
		args = append(args, filter.TeamID)
	}
	if filter.Role != "" {
		conds = append(conds, "p.role = ?")
		args = append(args, filter.Role)
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY p.runs_scored DESC, p.wickets_taken DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to list players")
		return nil, err
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

func (r *PlayerRepository) Get(ctx context.Context, id int64) (*domain.Player, error) {
	row := r.db.QueryRowContext(ctx, playerSelect+" WHERE p.id = ?", id)

	p, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("player %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		r.logger.Error().Err(err).Int64("player_id", id).Msg("failed to get player")
		return nil, err
	}
	return p, nil
}

func (r *PlayerRepository) Insert(ctx context.Context, p *domain.Player) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO players (name, team_id, role, batting_style, bowling_style,
		                     nationality, age, matches_played, runs_scored, wickets_taken,
		                     batting_average, bowling_average, strike_rate, economy_rate,
		                     centuries, fifties, highest_score, best_bowling, price_crores)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.TeamID, p.Role, p.BattingStyle, p.BowlingStyle,
		p.Nationality, p.Age, p.MatchesPlayed, p.RunsScored, p.WicketsTaken,
		p.BattingAverage, p.BowlingAverage, p.StrikeRate, p.EconomyRate,
		p.Centuries, p.Fifties, p.HighestScore, p.BestBowling, p.PriceCrores,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert player %q: %w", p.Name, err)
	}
	return res.LastInsertId()
}

// ExistsByNameAndTeam reports whether a player with this name already
// belongs to the team. The seed routine uses it for insert-if-absent
// semantics since player names carry no uniqueness constraint.
func (r *PlayerRepository) ExistsByNameAndTeam(ctx context.Context, name string, teamID *int64) (bool, error) {
	var count int
	var err error
	if teamID == nil {
		err = r.db.QueryRowContext(ctx,
			`SELECT COUNT(id) FROM players WHERE name = ? AND team_id IS NULL`, name).Scan(&count)
	} else {
		err = r.db.QueryRowContext(ctx,
			`SELECT COUNT(id) FROM players WHERE name = ? AND team_id = ?`, name, *teamID).Scan(&count)
	}
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
