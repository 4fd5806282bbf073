package server_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cricket-predictor/internal/config"
	"cricket-predictor/internal/database"
	"cricket-predictor/internal/domain"
	"cricket-predictor/internal/feed"
	"cricket-predictor/internal/repository"
	"cricket-predictor/internal/seed"
	"cricket-predictor/internal/server"
	"cricket-predictor/internal/service"
)

type fixedSource struct {
	v float64
}

func (f fixedSource) Float64() float64 {
	return f.v
}

func newTestServer(t *testing.T) (*httptest.Server, *sql.DB) {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := zerolog.Nop()
	teams := repository.NewTeamRepository(db, logger)
	players := repository.NewPlayerRepository(db, logger)
	matches := repository.NewMatchRepository(db, logger)
	predictions := repository.NewPredictionRepository(db, logger)

	require.NoError(t, seed.Apply(context.Background(), seed.Default(), teams, players, logger))

	srv := server.New(
		service.NewTeamService(teams, logger),
		service.NewPlayerService(players, logger),
		service.NewMatchService(matches, logger),
		service.NewPredictionService(teams, predictions, fixedSource{0.5}, logger),
		service.NewLiveScoreService(feed.NewClient(&config.Config{}), logger),
		db,
		logger,
	)

	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts, db
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, url string, body any, out any) int {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestListTeams(t *testing.T) {
	ts, _ := newTestServer(t)

	var teams []map[string]any
	code := getJSON(t, ts.URL+"/api/teams", &teams)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, teams, 8)
	// ordered by name
	assert.Equal(t, "Chennai Super Kings", teams[0]["name"])
}

func TestGetTeamNotFound(t *testing.T) {
	ts, _ := newTestServer(t)

	code := getJSON(t, ts.URL+"/api/teams/9999", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestGetTeamInvalidID(t *testing.T) {
	ts, _ := newTestServer(t)

	code := getJSON(t, ts.URL+"/api/teams/abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestListPlayersFilteredByRole(t *testing.T) {
	ts, _ := newTestServer(t)

	var players []map[string]any
	code := getJSON(t, ts.URL+"/api/players?role=Bowler", &players)
	assert.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, players)
	for _, p := range players {
		assert.Equal(t, "Bowler", p["role"])
	}
}

func TestPredictScoreEndpoint(t *testing.T) {
	ts, db := newTestServer(t)

	req := map[string]any{
		"team1_id":   1,
		"team2_id":   2,
		"venue":      "Wankhede Stadium",
		"pitch_type": "flat",
		"weather":    "sunny",
		"overs":      20,
	}

	var result struct {
		PredictedScore     int    `json:"predicted_score"`
		ConfidenceInterval [2]int `json:"confidence_interval"`
		Confidence         int    `json:"confidence"`
		Factors            struct {
			TeamStrength   int `json:"team_strength"`
			VenueAdvantage int `json:"venue_advantage"`
			PitchFactor    int `json:"pitch_factor"`
			WeatherImpact  int `json:"weather_impact"`
		} `json:"factors"`
	}

	code := postJSON(t, ts.URL+"/api/predict_score", req, &result)
	require.Equal(t, http.StatusOK, code)

	assert.GreaterOrEqual(t, result.PredictedScore, 100)
	assert.LessOrEqual(t, result.PredictedScore, 300)
	assert.GreaterOrEqual(t, result.Confidence, 70)
	assert.LessOrEqual(t, result.Confidence, 95)
	assert.Equal(t, 25, result.Factors.PitchFactor)
	assert.Equal(t, 10, result.Factors.WeatherImpact)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(id) FROM predictions").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestPredictScoreUnknownTeam(t *testing.T) {
	ts, db := newTestServer(t)

	req := map[string]any{"team1_id": 1, "team2_id": 9999, "venue": "Wankhede Stadium", "overs": 20}
	code := postJSON(t, ts.URL+"/api/predict_score", req, nil)
	assert.Equal(t, http.StatusNotFound, code)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(id) FROM predictions").Scan(&count))
	assert.Zero(t, count)
}

func TestPredictScoreMalformedBody(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/predict_score", "application/json", bytes.NewReader([]byte(`{"overs": "twenty"`)))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPredictWinEndpoint(t *testing.T) {
	ts, db := newTestServer(t)

	req := map[string]any{
		"team1_id":       1,
		"team2_id":       2,
		"venue":          "Wankhede Stadium",
		"toss_winner_id": 1,
	}

	var result struct {
		Team1WinProbability int `json:"team1_win_probability"`
		Team2WinProbability int `json:"team2_win_probability"`
		Factors             struct {
			HeadToHead     string `json:"head_to_head"`
			RecentForm     string `json:"recent_form"`
			VenueAdvantage string `json:"venue_advantage"`
			TossImpact     string `json:"toss_impact"`
		} `json:"factors"`
	}

	code := postJSON(t, ts.URL+"/api/predict_win", req, &result)
	require.Equal(t, http.StatusOK, code)

	assert.GreaterOrEqual(t, result.Team1WinProbability, 20)
	assert.LessOrEqual(t, result.Team1WinProbability, 80)
	assert.NotEmpty(t, result.Factors.RecentForm)

	// win predictions are never persisted
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(id) FROM predictions").Scan(&count))
	assert.Zero(t, count)
}

func TestTeamStatsEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	var stats struct {
		Name         string `json:"name"`
		TotalPlayers int    `json:"total_players"`
		TotalRuns    int    `json:"total_runs"`
	}
	code := getJSON(t, ts.URL+"/api/team-stats/1", &stats)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Mumbai Indians", stats.Name)
	assert.Equal(t, 5, stats.TotalPlayers)
	assert.Positive(t, stats.TotalRuns)
}

func TestLiveScoresFixture(t *testing.T) {
	ts, _ := newTestServer(t)

	var live []domain.LiveMatch
	code := getJSON(t, ts.URL+"/api/live-scores", &live)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, live, 1)
	assert.Equal(t, "Live", live[0].Status)
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t)

	var health map[string]string
	code := getJSON(t, ts.URL+"/health", &health)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "connected", health["database"])
}

func TestListMatchesEmpty(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/matches")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
