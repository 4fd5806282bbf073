package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"cricket-predictor/internal/domain"
	"cricket-predictor/internal/repository"
	"cricket-predictor/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Server struct {
	teamSvc       *service.TeamService
	playerSvc     *service.PlayerService
	matchSvc      *service.MatchService
	predictionSvc *service.PredictionService
	liveScoreSvc  *service.LiveScoreService
	db            *sql.DB
	logger        zerolog.Logger
}

func New(
	teamSvc *service.TeamService,
	playerSvc *service.PlayerService,
	matchSvc *service.MatchService,
	predictionSvc *service.PredictionService,
	liveScoreSvc *service.LiveScoreService,
	db *sql.DB,
	logger zerolog.Logger,
) *Server {
	return &Server{
		teamSvc:       teamSvc,
		playerSvc:     playerSvc,
		matchSvc:      matchSvc,
		predictionSvc: predictionSvc,
		liveScoreSvc:  liveScoreSvc,
		db:            db,
		logger:        logger,
	}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Get("/teams", s.handleListTeams)
		r.Get("/teams/{id}", s.handleGetTeam)
		r.Get("/team-stats/{id}", s.handleTeamStats)
		r.Get("/players", s.handleListPlayers)
		r.Get("/players/{id}", s.handleGetPlayer)
		r.Get("/matches", s.handleListMatches)
		r.Get("/predictions", s.handleListPredictions)
		r.Get("/live-scores", s.handleLiveScores)
		r.Post("/predict_score", s.handlePredictScore)
		r.Post("/predict_win", s.handlePredictWin)
	})
	r.Get("/health", s.handleHealth)

	return r
}

func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := s.teamSvc.ListTeams(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := make([]teamResponse, len(teams))
	for i, t := range teams {
		resp[i] = toTeamResponse(t)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	team, err := s.teamSvc.GetTeam(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toTeamResponse(*team))
}

func (s *Server) handleTeamStats(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	stats, err := s.teamSvc.TeamStats(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toTeamStatsResponse(*stats))
}

func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	var filter repository.PlayerFilter
	if v := r.URL.Query().Get("team_id"); v != "" {
		teamID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid team_id"})
			return
		}
		filter.TeamID = teamID
	}
	filter.Role = r.URL.Query().Get("role")

	players, err := s.playerSvc.ListPlayers(r.Context(), filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := make([]playerResponse, len(players))
	for i, p := range players {
		resp[i] = toPlayerResponse(p)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	player, err := s.playerSvc.GetPlayer(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toPlayerResponse(*player))
}

func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := s.matchSvc.ListMatches(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := make([]matchResponse, len(matches))
	for i, m := range matches {
		resp[i] = toMatchResponse(m)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListPredictions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	predictions, err := s.predictionSvc.RecentPredictions(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := make([]predictionResponse, len(predictions))
	for i, p := range predictions {
		resp[i] = toPredictionResponse(p)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLiveScores(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.liveScoreSvc.LiveScores(r.Context()))
}

func (s *Server) handlePredictScore(w http.ResponseWriter, r *http.Request) {
	var req service.PredictScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := s.predictionSvc.PredictScore(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handlePredictWin(w http.ResponseWriter, r *http.Request) {
	var req service.PredictWinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := s.predictionSvc.PredictWin(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbStatus := "connected"
	status := "healthy"
	code := http.StatusOK
	if err := s.db.PingContext(r.Context()); err != nil {
		dbStatus = "unreachable"
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	s.writeJSON(w, code, map[string]string{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  dbStatus,
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}
