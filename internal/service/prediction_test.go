package service_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cricket-predictor/internal/database"
	"cricket-predictor/internal/domain"
	"cricket-predictor/internal/repository"
	"cricket-predictor/internal/service"
)

type fixedSource struct {
	v float64
}

func (f fixedSource) Float64() float64 {
	return f.v
}

type fixture struct {
	db          *sql.DB
	teams       *repository.TeamRepository
	predictions *repository.PredictionRepository
	svc         *service.PredictionService
	miID        int64
	cskID       int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	teams := repository.NewTeamRepository(db, zerolog.Nop())
	predictions := repository.NewPredictionRepository(db, zerolog.Nop())
	svc := service.NewPredictionService(teams, predictions, fixedSource{0.5}, zerolog.Nop())

	ctx := context.Background()
	miID, err := teams.Insert(ctx, &domain.Team{
		Name: "Mumbai Indians", ShortName: "MI", HomeGround: "Wankhede Stadium",
		MatchesPlayed: 220, Wins: 140, Losses: 80,
	})
	require.NoError(t, err)
	cskID, err := teams.Insert(ctx, &domain.Team{
		Name: "Chennai Super Kings", ShortName: "CSK", HomeGround: "MA Chidambaram Stadium",
		MatchesPlayed: 200, Wins: 100, Losses: 100,
	})
	require.NoError(t, err)

	return &fixture{db: db, teams: teams, predictions: predictions, svc: svc, miID: miID, cskID: cskID}
}

func TestPredictScoreRecordsExactlyOneRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.svc.PredictScore(ctx, service.PredictScoreRequest{
		Team1ID:   f.miID,
		Team2ID:   f.cskID,
		Venue:     "Wankhede Stadium",
		PitchType: "flat",
		Weather:   "sunny",
		Overs:     20,
	})
	require.NoError(t, err)
	assert.Equal(t, 217, result.PredictedScore)

	count, err := f.predictions.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	list, err := f.predictions.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)

	stored := list[0]
	assert.Equal(t, f.miID, stored.Team1ID)
	assert.Equal(t, f.cskID, stored.Team2ID)
	assert.Equal(t, "Wankhede Stadium", stored.Venue)
	assert.Equal(t, result.RawScore, stored.PredictedScore)
	assert.InDelta(t, result.RawConfidence, stored.ConfidenceLevel, 1e-9)
	// raw strengths stored as provisional win probabilities
	assert.InDelta(t, 63.6364, stored.WinProbabilityTeam1, 0.001)
	assert.InDelta(t, 50.0, stored.WinProbabilityTeam2, 0.001)
}

func TestPredictScoreUnknownTeamRecordsNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.PredictScore(ctx, service.PredictScoreRequest{
		Team1ID: f.miID,
		Team2ID: 9999,
		Venue:   "Wankhede Stadium",
		Overs:   20,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	count, err := f.predictions.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPredictScoreDefaultsOvers(t *testing.T) {
	f := newFixture(t)

	with20, err := f.svc.PredictScore(context.Background(), service.PredictScoreRequest{
		Team1ID: f.miID, Team2ID: f.cskID, Venue: "Neutral", Overs: 20,
	})
	require.NoError(t, err)

	withZero, err := f.svc.PredictScore(context.Background(), service.PredictScoreRequest{
		Team1ID: f.miID, Team2ID: f.cskID, Venue: "Neutral",
	})
	require.NoError(t, err)

	assert.Equal(t, with20.PredictedScore, withZero.PredictedScore)
}

func TestPredictWinRecordsNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.svc.PredictWin(ctx, service.PredictWinRequest{
		Team1ID:      f.miID,
		Team2ID:      f.cskID,
		Venue:        "Wankhede Stadium",
		TossWinnerID: f.miID,
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Team1WinProbability, 20)
	assert.LessOrEqual(t, result.Team1WinProbability, 80)

	count, err := f.predictions.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPredictWinUnknownTeam(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.PredictWin(context.Background(), service.PredictWinRequest{
		Team1ID: 9999,
		Team2ID: f.cskID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPredictScoreRepeatedCallsAppend(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := service.PredictScoreRequest{
		Team1ID: f.miID, Team2ID: f.cskID, Venue: "Wankhede Stadium",
		PitchType: "balanced", Weather: "overcast", Overs: 20,
	}

	for i := 0; i < 3; i++ {
		_, err := f.svc.PredictScore(ctx, req)
		require.NoError(t, err)
	}

	count, err := f.predictions.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
