package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	// ProviderGroq selects the OpenAI-compatible Groq completion endpoint.
	ProviderGroq = "groq"
	// ProviderGemini selects Google's Gemini completion endpoint.
	ProviderGemini = "gemini"

	defaultGroqModel   = "llama-3.3-70b-versatile"
	defaultGeminiModel = "gemini-1.5-flash"
)

// Config holds every runtime setting the service needs. It is loaded once at
// process start and injected; request handlers never read the environment.
type Config struct {
	Port string
	Env  string

	CompletionProvider string
	CompletionModel    string
	GroqAPIKey         string
	GeminiAPIKey       string

	// Optional keys. An empty value silently disables the feature.
	TavilyAPIKey  string
	WeatherAPIKey string

	DiscoveryCountry string
	GuideName        string
}

// IsProduction reports whether error details must be withheld from responses.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load reads configuration from the environment with sensible defaults and
// validates it. The completion API key for the selected provider is mandatory;
// the search and weather keys are not.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("COMPLETION_PROVIDER", ProviderGroq)
	v.SetDefault("DISCOVERY_COUNTRY", "India")
	v.SetDefault("GUIDE_NAME", "L'itinerario nelle pianure")

	cfg := &Config{
		Port:               v.GetString("PORT"),
		Env:                v.GetString("APP_ENV"),
		CompletionProvider: strings.ToLower(v.GetString("COMPLETION_PROVIDER")),
		CompletionModel:    v.GetString("COMPLETION_MODEL"),
		GroqAPIKey:         v.GetString("GROQ_API_KEY"),
		GeminiAPIKey:       v.GetString("GEMINI_API_KEY"),
		TavilyAPIKey:       v.GetString("TAVILY_API_KEY"),
		WeatherAPIKey:      v.GetString("OPENWEATHERMAP_API_KEY"),
		DiscoveryCountry:   v.GetString("DISCOVERY_COUNTRY"),
		GuideName:          v.GetString("GUIDE_NAME"),
	}

	switch cfg.CompletionProvider {
	case ProviderGroq:
		if cfg.GroqAPIKey == "" {
			return nil, fmt.Errorf("%w: GROQ_API_KEY", ErrCompletionKeyMissing)
		}
		if cfg.CompletionModel == "" {
			cfg.CompletionModel = defaultGroqModel
		}
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY", ErrCompletionKeyMissing)
		}
		if cfg.CompletionModel == "" {
			cfg.CompletionModel = defaultGeminiModel
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.CompletionProvider)
	}

	if cfg.TavilyAPIKey == "" {
		log.Debug().Msg("TAVILY_API_KEY not set, search grounding disabled")
	}
	if cfg.WeatherAPIKey == "" {
		log.Debug().Msg("OPENWEATHERMAP_API_KEY not set, live temperature disabled")
	}

	return cfg, nil
}
