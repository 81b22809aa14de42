package request_models

import (
	"math"
	"strconv"
	"strings"
)

// LureRequest is the body of POST /api/lure. Vibe is the only required field.
// Coordinates are loosely typed on purpose: clients have sent both numbers and
// numeric strings, and a bad value must degrade to location-unknown mode
// rather than fail the request.
type LureRequest struct {
	Location  string `json:"location"`
	Vibe      string `json:"vibe"`
	Latitude  any    `json:"latitude"`
	Longitude any    `json:"longitude"`
}

// Coordinates returns the user's position when both values are present and
// finite.
func (r LureRequest) Coordinates() (lat, lon float64, ok bool) {
	lat, latOK := coordValue(r.Latitude)
	lon, lonOK := coordValue(r.Longitude)
	if !latOK || !lonOK {
		return 0, 0, false
	}
	return lat, lon, true
}

func coordValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if !math.IsNaN(n) && !math.IsInf(n, 0) {
			return n, true
		}
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f, true
		}
	}
	return 0, false
}
