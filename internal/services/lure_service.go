package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"lure/internal/models/request_models"
	"lure/internal/models/response_models"
	"lure/pkg/utils"
)

// LureServiceInterface runs the full recommendation pipeline for one request:
// search grounding, prompt building, completion, parsing, normalization,
// weather enrichment and assembly. Strictly sequential, no state between
// requests.
type LureServiceInterface interface {
	GenerateLures(ctx context.Context, req request_models.LureRequest) (*response_models.LureResponse, error)
}

type LureService struct {
	completion utils.CompletionClientInterface
	search     SearchServiceInterface
	weather    WeatherServiceInterface

	discoveryCountry string
	guideName        string
}

func NewLureService(
	completion utils.CompletionClientInterface,
	search SearchServiceInterface,
	weather WeatherServiceInterface,
	discoveryCountry string,
	guideName string,
) LureServiceInterface {
	return &LureService{
		completion:       completion,
		search:           search,
		weather:          weather,
		discoveryCountry: discoveryCountry,
		guideName:        guideName,
	}
}

func (s *LureService) GenerateLures(ctx context.Context, req request_models.LureRequest) (*response_models.LureResponse, error) {
	place := strings.TrimSpace(req.Location)

	// Grounding is best-effort: a failed search degrades the prompt, never
	// the request.
	searchContext, err := s.search.FetchContext(ctx, place, strings.TrimSpace(req.Vibe))
	if err != nil {
		log.Warn().Err(err).Msg("search grounding failed, continuing without context")
		searchContext = ""
	}

	systemPrompt := BuildSystemPrompt(s.guideName)
	userPrompt := BuildUserPrompt(req, searchContext, s.discoveryCountry)

	content, err := s.completion.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	parsed, err := ParseModelPayload(content)
	if err != nil {
		return nil, err
	}

	options := NormalizeOptions(parsed)
	if len(options) == 0 {
		return nil, utils.NewUpstreamError(utils.ErrNoOptions, content)
	}

	// One lookup per request; the weather lookup needs a resolved place name,
	// possibly the first option's, so it always runs after normalization.
	liveTemp := Placeholder
	if target := weatherTarget(place, options); target != "" {
		liveTemp = s.weather.CurrentTempLabel(ctx, target)
	}
	for i := range options {
		options[i].LiveTemp = liveTemp
	}

	return &response_models.LureResponse{
		Options:      options,
		SecretSource: NormalizeSecretSource(parsed, s.guideName),
	}, nil
}

func weatherTarget(requestLocation string, options []response_models.TravelOption) string {
	if requestLocation != "" {
		return requestLocation
	}
	if len(options) > 0 && options[0].Name != Placeholder {
		return options[0].Name
	}
	return ""
}
