package service

import (
	"context"
	"time"

	"cricket-predictor/internal/constants"
	"cricket-predictor/internal/domain"
	"cricket-predictor/internal/feed"

	"github.com/rs/zerolog"
)

type LiveScoreService struct {
	feed   *feed.Client
	logger zerolog.Logger
}

func NewLiveScoreService(feedClient *feed.Client, logger zerolog.Logger) *LiveScoreService {
	return &LiveScoreService{feed: feedClient, logger: logger}
}

// LiveScores returns the provider's live matches, or the built-in fixture
// when no provider is configured or the provider fails. The feed is
// cosmetic and never fails a request.
func (s *LiveScoreService) LiveScores(ctx context.Context) []domain.LiveMatch {
	if s.feed.Enabled() {
		ctx, cancel := context.WithTimeout(ctx, constants.FeedTimeout)
		defer cancel()

		matches, err := s.feed.LiveScores(ctx)
		if err == nil {
			return matches
		}
		s.logger.Warn().Err(err).Msg("live-score feed unavailable, serving fixture")
	}

	return []domain.LiveMatch{
		{
			MatchID:      1,
			Team1:        "Mumbai Indians",
			Team2:        "Chennai Super Kings",
			Status:       "Live",
			CurrentScore: "145/4 (16.2 overs)",
			Target:       "186",
			Required:     "41 runs from 22 balls",
			CurrentRR:    "8.75",
			RequiredRR:   "11.18",
			LastUpdated:  time.Now().UTC().Format(time.RFC3339),
		},
	}
}
