package fx

import (
	"cricket-predictor/internal/config"
	"cricket-predictor/internal/database"
	"cricket-predictor/internal/feed"
	"cricket-predictor/internal/logger"
	"cricket-predictor/internal/predictor"
	"cricket-predictor/internal/repository"
	"cricket-predictor/internal/server"
	"cricket-predictor/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewTeamRepository),
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(repository.NewMatchRepository),
	fx.Provide(repository.NewPredictionRepository),
	// feed client
	fx.Provide(feed.NewClient),
	// estimators
	fx.Provide(predictor.NewSource),
	// svc
	fx.Provide(service.NewTeamService),
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewPredictionService),
	fx.Provide(service.NewLiveScoreService),
	// server
	fx.Provide(server.New),
)
