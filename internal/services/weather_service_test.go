package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weatherTestServer(t *testing.T, geo []map[string]float64, temp *float64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/geo/1.0/direct":
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			json.NewEncoder(w).Encode(geo)
		case "/data/2.5/weather":
			assert.Equal(t, "metric", r.URL.Query().Get("units"))
			payload := map[string]any{"main": map[string]any{}}
			if temp != nil {
				payload["main"] = map[string]any{"temp": *temp}
			}
			json.NewEncoder(w).Encode(payload)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
}

func TestCurrentTempLabelRoundsAndFormats(t *testing.T) {
	temp := 23.6
	server := weatherTestServer(t, []map[string]float64{{"lat": 30.1, "lon": 78.3}}, &temp)
	defer server.Close()

	svc := NewOpenWeatherService("test-key", "India")
	svc.baseURL = server.URL

	assert.Equal(t, "24°C", svc.CurrentTempLabel(context.Background(), "Rishikesh"))
}

func TestCurrentTempLabelNoKey(t *testing.T) {
	svc := NewOpenWeatherService("", "India")
	assert.Equal(t, Placeholder, svc.CurrentTempLabel(context.Background(), "Rishikesh"))
}

func TestCurrentTempLabelEmptyPlace(t *testing.T) {
	svc := NewOpenWeatherService("test-key", "India")
	assert.Equal(t, Placeholder, svc.CurrentTempLabel(context.Background(), ""))
}

func TestCurrentTempLabelNoGeocodeMatch(t *testing.T) {
	server := weatherTestServer(t, []map[string]float64{}, nil)
	defer server.Close()

	svc := NewOpenWeatherService("test-key", "India")
	svc.baseURL = server.URL

	assert.Equal(t, Placeholder, svc.CurrentTempLabel(context.Background(), "Nowhereville"))
}

func TestCurrentTempLabelMissingTemperature(t *testing.T) {
	server := weatherTestServer(t, []map[string]float64{{"lat": 30.1, "lon": 78.3}}, nil)
	defer server.Close()

	svc := NewOpenWeatherService("test-key", "India")
	svc.baseURL = server.URL

	assert.Equal(t, Placeholder, svc.CurrentTempLabel(context.Background(), "Rishikesh"))
}

func TestCurrentTempLabelNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	svc := NewOpenWeatherService("test-key", "India")
	svc.baseURL = server.URL

	assert.Equal(t, Placeholder, svc.CurrentTempLabel(context.Background(), "Rishikesh"))
}

func TestGeocodeUsesCountryHint(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		json.NewEncoder(w).Encode([]map[string]float64{})
	}))
	defer server.Close()

	svc := NewOpenWeatherService("test-key", "India")
	svc.baseURL = server.URL

	svc.CurrentTempLabel(context.Background(), "Rishikesh")
	require.Equal(t, "Rishikesh,India", gotQuery)
}
