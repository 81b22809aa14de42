package weatherfx

import (
	"go.uber.org/fx"

	"lure/internal/config"
	"lure/internal/services"
)

var Module = fx.Provide(ProvideWeatherService)

func ProvideWeatherService(cfg *config.Config) services.WeatherServiceInterface {
	return services.NewOpenWeatherService(cfg.WeatherAPIKey, cfg.DiscoveryCountry)
}
