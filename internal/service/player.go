package service

import (
	"context"

	"cricket-predictor/internal/constants"
	"cricket-predictor/internal/domain"
	"cricket-predictor/internal/repository"

	"github.com/rs/zerolog"
)

type PlayerService struct {
	repo   *repository.PlayerRepository
	logger zerolog.Logger
}

func NewPlayerService(repo *repository.PlayerRepository, logger zerolog.Logger) *PlayerService {
	return &PlayerService{repo: repo, logger: logger}
}

func (s *PlayerService) ListPlayers(ctx context.Context, filter repository.PlayerFilter) ([]domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	players, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).
			Int64("team_id", filter.TeamID).
			Str("role", filter.Role).
			Msg("failed to list players")
		return nil, err
	}
	return players, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, id int64) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.Get(ctx, id)
}
