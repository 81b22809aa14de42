package completionfx

import (
	"go.uber.org/fx"

	"lure/internal/config"
	"lure/pkg/utils"
)

var Module = fx.Provide(ProvideCompletionClient)

func ProvideCompletionClient(cfg *config.Config) (utils.CompletionClientInterface, error) {
	apiKey := cfg.GroqAPIKey
	if cfg.CompletionProvider == config.ProviderGemini {
		apiKey = cfg.GeminiAPIKey
	}
	return utils.NewCompletionClient(cfg.CompletionProvider, apiKey, cfg.CompletionModel)
}
