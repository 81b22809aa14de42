package lurefx

import (
	"go.uber.org/fx"

	"lure/internal/api/controllers"
	"lure/internal/config"
	"lure/internal/services"
	"lure/pkg/utils"
)

var Module = fx.Provide(
	ProvideLureService,
	ProvideLureController)

func ProvideLureService(
	completion utils.CompletionClientInterface,
	search services.SearchServiceInterface,
	weather services.WeatherServiceInterface,
	cfg *config.Config,
) services.LureServiceInterface {
	return services.NewLureService(completion, search, weather, cfg.DiscoveryCountry, cfg.GuideName)
}

func ProvideLureController(
	lureService services.LureServiceInterface,
	cfg *config.Config,
) *controllers.LureController {
	return controllers.NewLureController(lureService, cfg.IsProduction())
}
