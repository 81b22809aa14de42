package searchfx

import (
	"go.uber.org/fx"

	"lure/internal/config"
	"lure/internal/services"
)

var Module = fx.Provide(ProvideSearchService)

func ProvideSearchService(cfg *config.Config) services.SearchServiceInterface {
	return services.NewTavilySearchService(cfg.TavilyAPIKey)
}
