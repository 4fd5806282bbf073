package service

import (
	"context"

	"cricket-predictor/internal/constants"
	"cricket-predictor/internal/domain"
	"cricket-predictor/internal/repository"

	"github.com/rs/zerolog"
)

type MatchService struct {
	repo   *repository.MatchRepository
	logger zerolog.Logger
}

func NewMatchService(repo *repository.MatchRepository, logger zerolog.Logger) *MatchService {
	return &MatchService{repo: repo, logger: logger}
}

func (s *MatchService) ListMatches(ctx context.Context) ([]domain.Match, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	matches, err := s.repo.List(ctx, constants.MatchListLimit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list matches")
		return nil, err
	}
	return matches, nil
}
