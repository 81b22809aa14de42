package configfx

import (
	"go.uber.org/fx"

	"lure/internal/config"
)

var Module = fx.Provide(ProvideConfig)

// ProvideConfig loads and validates configuration once at startup. A missing
// completion key fails the whole app here instead of per request.
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}
