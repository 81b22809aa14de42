package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lure/internal/models/request_models"
)

func TestBuildSystemPrompt(t *testing.T) {
	prompt := BuildSystemPrompt("L'itinerario nelle pianure")

	assert.Contains(t, prompt, "0% fluff")
	assert.Contains(t, prompt, `"options"`)
	assert.Contains(t, prompt, `"secretSource"`)
	assert.Contains(t, prompt, "L'itinerario nelle pianure")
	assert.Contains(t, prompt, "local currency")
	assert.Contains(t, prompt, "source community")
	assert.Contains(t, prompt, "No markdown")
}

func TestBuildUserPromptLocationConstrained(t *testing.T) {
	req := request_models.LureRequest{Location: "Rishikesh", Vibe: "Spiritual"}

	prompt := BuildUserPrompt(req, "", "India")

	assert.Contains(t, prompt, `"Rishikesh" only`)
	assert.Contains(t, prompt, "Vibe: Spiritual")
	assert.NotContains(t, prompt, "National Discovery")
}

func TestBuildUserPromptOpenDiscovery(t *testing.T) {
	req := request_models.LureRequest{Location: "   ", Vibe: "Adventure"}

	prompt := BuildUserPrompt(req, "", "India")

	assert.Contains(t, prompt, "National Discovery")
	assert.Contains(t, prompt, "anywhere in India")
	assert.Contains(t, prompt, "Vibe: Adventure")
}

func TestBuildUserPromptCoordinates(t *testing.T) {
	req := request_models.LureRequest{
		Vibe:      "Beach",
		Latitude:  float64(15.2993),
		Longitude: float64(74.124),
	}

	prompt := BuildUserPrompt(req, "", "India")
	assert.Contains(t, prompt, "15.2993")
	assert.Contains(t, prompt, "74.124")
	assert.NotContains(t, prompt, "location unknown")
}

func TestBuildUserPromptInvalidCoordinatesDegrade(t *testing.T) {
	req := request_models.LureRequest{
		Vibe:      "Beach",
		Latitude:  "not-a-number",
		Longitude: float64(74.124),
	}

	prompt := BuildUserPrompt(req, "", "India")
	assert.Contains(t, prompt, "User location unknown")
}

func TestBuildUserPromptEmbedsSearchContext(t *testing.T) {
	req := request_models.LureRequest{Location: "Gokarna", Vibe: "Beach"}

	prompt := BuildUserPrompt(req, "Om Beach is a 20 minute rickshaw from town.", "India")
	assert.Contains(t, prompt, "traveller reports")
	assert.Contains(t, prompt, "Om Beach is a 20 minute rickshaw from town.")

	bare := BuildUserPrompt(req, "", "India")
	assert.NotContains(t, bare, "traveller reports")
}
