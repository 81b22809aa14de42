package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

// WeatherServiceInterface resolves a place name to a formatted current
// temperature. It never fails: every error path resolves to the placeholder,
// so enrichment degrades quality but not availability.
type WeatherServiceInterface interface {
	CurrentTempLabel(ctx context.Context, place string) string
}

// OpenWeatherService chains OpenWeatherMap forward geocoding with the current
// weather endpoint.
type OpenWeatherService struct {
	httpClient  *http.Client
	apiKey      string
	countryHint string
	baseURL     string
}

func NewOpenWeatherService(apiKey, countryHint string) *OpenWeatherService {
	return &OpenWeatherService{
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		apiKey:      apiKey,
		countryHint: countryHint,
		baseURL:     "https://api.openweathermap.org",
	}
}

func (w *OpenWeatherService) CurrentTempLabel(ctx context.Context, place string) string {
	if w.apiKey == "" {
		log.Debug().Msg("live temperature unavailable, no API key")
		return Placeholder
	}
	if place == "" {
		return Placeholder
	}

	lat, lon, err := w.geocode(ctx, place)
	if err != nil {
		log.Warn().Err(err).Str("place", place).Msg("geocoding failed")
		return Placeholder
	}

	temp, err := w.currentTemp(ctx, lat, lon)
	if err != nil {
		log.Warn().Err(err).Str("place", place).Msg("weather lookup failed")
		return Placeholder
	}

	return fmt.Sprintf("%d°C", int(math.Round(temp)))
}

func (w *OpenWeatherService) geocode(ctx context.Context, place string) (lat, lon float64, err error) {
	q := url.Values{}
	q.Set("q", fmt.Sprintf("%s,%s", place, w.countryHint))
	q.Set("limit", "1")
	q.Set("appid", w.apiKey)

	var matches []struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}
	if err := w.getJSON(ctx, "/geo/1.0/direct", q, &matches); err != nil {
		return 0, 0, err
	}
	if len(matches) == 0 {
		return 0, 0, fmt.Errorf("no geocoding match for %q", place)
	}
	return matches[0].Lat, matches[0].Lon, nil
}

func (w *OpenWeatherService) currentTemp(ctx context.Context, lat, lon float64) (float64, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("units", "metric")
	q.Set("appid", w.apiKey)

	var payload struct {
		Main struct {
			Temp *float64 `json:"temp"`
		} `json:"main"`
	}
	if err := w.getJSON(ctx, "/data/2.5/weather", q, &payload); err != nil {
		return 0, err
	}
	if payload.Main.Temp == nil {
		return 0, fmt.Errorf("weather response missing temperature")
	}
	return *payload.Main.Temp, nil
}

func (w *OpenWeatherService) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := w.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("weather request build: %w", err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("weather http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("weather bad status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("weather decode: %w", err)
	}
	return nil
}
