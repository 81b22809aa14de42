package services

import (
	"fmt"
	"strings"

	"lure/internal/models/request_models"
)

// BuildSystemPrompt encodes the tone contract and the literal output schema.
// The tone rules matter: without them the model pads every option with
// subjective adjectives instead of usable data.
func BuildSystemPrompt(guideName string) string {
	var b strings.Builder

	b.WriteString("You are a professional travel fixer. Provide 100% data, 0% fluff.\n")
	b.WriteString(`- No adjectives like "hidden," "serene," or "mystical." Use only proper nouns and metrics.` + "\n")
	b.WriteString("- Return a single JSON object with two keys:\n")
	b.WriteString(`  1) "options": an array of exactly 3 items. Each item: "name", "zone", "funFact", ` +
		`"distanceKm" (number or string), "topProperties", "iconicCafe", ` +
		`"dailyBudget" (amount in the named local currency, e.g. "₹1,800/day"), ` +
		`"majorExpenses" (object with "stay", "food", "travel", each a short amount string), ` +
		`"redditInsight" (one quoted traveller sentence that names its source community, e.g. r/IndiaTravel).` + "\n")
	fmt.Fprintf(&b, `  2) "secretSource": object containing ONLY content that could come from a premium printed travel guide. `+
		`Use: "guideName": %q, "tips": [ 2-4 short, punchy 1%% tips for this location/vibe—insider advice a printed guide would give ], "isFromGuide": true.`+"\n", guideName)
	b.WriteString(`- For cities like Rishikesh or Varanasi, use zone to distinguish area (e.g. "Tapovan (Hippy)" vs "Ghats (Spiritual)").` + "\n")
	b.WriteString("No markdown. Output only the JSON object.")

	return b.String()
}

// BuildUserPrompt carries the mode branch, vibe, coordinate context, and the
// cleaned search grounding. The geography constraint is purely textual; the
// service never filters results itself.
func BuildUserPrompt(req request_models.LureRequest, searchContext, discoveryCountry string) string {
	location := strings.TrimSpace(req.Location)

	var mode string
	if location != "" {
		mode = fmt.Sprintf("Geography: Ground the search in %q only. Return 3 distinct options in or near this place.", location)
	} else {
		mode = fmt.Sprintf(`Mode: National Discovery. User left "Where to?" empty. Suggest 3 distinct options anywhere in %s that match the vibe.`, discoveryCountry)
	}

	var geoContext string
	if lat, lon, ok := req.Coordinates(); ok {
		geoContext = fmt.Sprintf(`User's current coordinates: %g, %g. For each option set "distanceKm" to approximate km from user (number or string).`, lat, lon)
	} else {
		geoContext = `User location unknown. Set "distanceKm" as approximate km from a sensible center (number or string).`
	}

	prompt := fmt.Sprintf("%s Vibe: %s. %s", mode, strings.TrimSpace(req.Vibe), geoContext)

	if searchContext != "" {
		prompt += "\n\nRecent traveller reports (use to ground names, prices and insights):\n" + searchContext
	}
	return prompt
}
