package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cricket-predictor/internal/domain"

	"github.com/rs/zerolog"
)

type TeamRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewTeamRepository(sqlDB *sql.DB, logger zerolog.Logger) *TeamRepository {
	return &TeamRepository{
		db:     sqlDB,
		logger: logger,
	}
}

const teamColumns = `id, name, short_name, home_ground, captain, coach, founded_year,
       titles, matches_played, wins, losses, created_at`

func scanTeam(row interface{ Scan(...any) error }) (*domain.Team, error) {
	var t domain.Team
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.ShortName,
		&t.HomeGround,
		&t.Captain,
		&t.Coach,
		&t.FoundedYear,
		&t.Titles,
		&t.MatchesPlayed,
		&t.Wins,
		&t.Losses,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TeamRepository) Get(ctx context.Context, id int64) (*domain.Team, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = ?`, id)

	team, err := scanTeam(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("team %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		r.logger.Error().Err(err).Int64("team_id", id).Msg("failed to get team")
		return nil, err
	}
	return team, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+teamColumns+` FROM teams ORDER BY name`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to list teams")
		return nil, err
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *team)
	}
	return teams, rows.Err()
}

func (r *TeamRepository) Insert(ctx context.Context, t *domain.Team) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO teams (name, short_name, home_ground, captain, coach, founded_year,
		                   titles, matches_played, wins, losses)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Name, t.ShortName, t.HomeGround, t.Captain, t.Coach, t.FoundedYear,
		t.Titles, t.MatchesPlayed, t.Wins, t.Losses,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert team %q: %w", t.Name, err)
	}
	return res.LastInsertId()
}

// InsertIfAbsent inserts a team unless one with the same name exists.
// Team names are unique, which makes the seed routine idempotent.
func (r *TeamRepository) InsertIfAbsent(ctx context.Context, t *domain.Team) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO teams (name, short_name, home_ground, captain, coach, founded_year,
		                             titles, matches_played, wins, losses)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Name, t.ShortName, t.HomeGround, t.Captain, t.Coach, t.FoundedYear,
		t.Titles, t.MatchesPlayed, t.Wins, t.Losses,
	)
	if err != nil {
		return fmt.Errorf("failed to seed team %q: %w", t.Name, err)
	}
	return nil
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+teamColumns+` FROM teams WHERE name = ?`, name)

	team, err := scanTeam(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("team %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return team, nil
}

// SquadAggregates computes roster-wide aggregates for one team.
type SquadAggregates struct {
	TotalPlayers  int
	AvgBattingAvg float64
	AvgBowlingAvg float64
	TotalRuns     int
	TotalWickets  int
}

func (r *TeamRepository) SquadAggregates(ctx context.Context, teamID int64) (*SquadAggregates, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(id),
		       COALESCE(AVG(batting_average), 0),
		       COALESCE(AVG(bowling_average), 0),
		       COALESCE(SUM(runs_scored), 0),
		       COALESCE(SUM(wickets_taken), 0)
		FROM players
		WHERE team_id = ?`, teamID)

	var agg SquadAggregates
	err := row.Scan(&agg.TotalPlayers, &agg.AvgBattingAvg, &agg.AvgBowlingAvg, &agg.TotalRuns, &agg.TotalWickets)
	if err != nil {
		r.logger.Error().Err(err).Int64("team_id", teamID).Msg("failed to aggregate squad stats")
		return nil, err
	}
	return &agg, nil
}
