package service

import (
	"context"

	"cricket-predictor/internal/constants"
	"cricket-predictor/internal/domain"
	"cricket-predictor/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type TeamService struct {
	repo   *repository.TeamRepository
	logger zerolog.Logger
}

func NewTeamService(repo *repository.TeamRepository, logger zerolog.Logger) *TeamService {
	return &TeamService{repo: repo, logger: logger}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	teams, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list teams")
		return nil, err
	}
	return teams, nil
}

func (s *TeamService) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.Get(ctx, id)
}

// TeamStats fetches the team row and its squad aggregates concurrently.
func (s *TeamService) TeamStats(ctx context.Context, id int64) (*domain.TeamStats, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	var team *domain.Team
	var agg *repository.SquadAggregates

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		team, err = s.repo.Get(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		agg, err = s.repo.SquadAggregates(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.TeamStats{
		Team:          *team,
		TotalPlayers:  agg.TotalPlayers,
		AvgBattingAvg: agg.AvgBattingAvg,
		AvgBowlingAvg: agg.AvgBowlingAvg,
		TotalRuns:     agg.TotalRuns,
		TotalWickets:  agg.TotalWickets,
	}, nil
}
