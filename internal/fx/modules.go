package fx

import (
	"kingdom-tracker/internal/api"
	"kingdom-tracker/internal/config"
	"kingdom-tracker/internal/database"
	"kingdom-tracker/internal/logger"
	"kingdom-tracker/internal/repository"
	"kingdom-tracker/internal/server"
	"kingdom-tracker/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewKingdomRepository),
	fx.Provide(repository.NewSeasonResultRepository),
	// hub client
	fx.Provide(api.NewHubClient),
	// svc
	fx.Provide(service.NewKingdomService),
	fx.Provide(service.NewAllianceService),
	fx.Provide(service.NewResultService),
	// server
	fx.Provide(server.NewTrackerServer),
)
