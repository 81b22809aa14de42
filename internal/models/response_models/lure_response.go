package response_models

// TravelOption is the canonical per-option record. Every field is always
// populated; the normalizer substitutes an em-dash placeholder for anything
// the model omits or malforms.
//
// DistanceKm is deliberately a number-or-string union: upstream models emit
// either, and consumers branch on the runtime type. A numeric value survives
// as float64 only when the raw value was already numeric.
type TravelOption struct {
	Name          string           `json:"name"`
	Zone          string           `json:"zone"`
	FunFact       string           `json:"funFact"`
	LiveTemp      string           `json:"liveTemp"`
	DistanceKm    any              `json:"distanceKm"`
	TopProperties string           `json:"topProperties"`
	IconicCafe    string           `json:"iconicCafe"`
	DailyBudget   string           `json:"dailyBudget"`
	MajorExpenses ExpenseBreakdown `json:"majorExpenses"`
	RedditInsight string           `json:"redditInsight"`
}

type ExpenseBreakdown struct {
	Stay   string `json:"stay"`
	Food   string `json:"food"`
	Travel string `json:"travel"`
}

// SecretSource carries curated-guide tips. IsFromGuide gates display on the
// client; tips hold at most 4 entries.
type SecretSource struct {
	GuideName   string   `json:"guideName"`
	Tips        []string `json:"tips"`
	IsFromGuide bool     `json:"isFromGuide"`
}

type LureResponse struct {
	Options      []TravelOption `json:"options"`
	SecretSource SecretSource   `json:"secretSource"`
}
