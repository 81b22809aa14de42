package services

import (
	"fmt"
	"strconv"
	"strings"

	"lure/internal/models/response_models"
)

// Placeholder marks a field the model omitted or malformed. It is a visible
// token rather than an absent key so the UI never has to null-check.
const Placeholder = "—"

const maxOptions = 3

const maxSecretTips = 4

// NormalizeOptions decodes the untrusted parsed payload into fully-populated
// TravelOption records. The options array normally lives under "options", but
// a bare top-level array is tolerated for compatibility. At most 3 options
// survive.
func NormalizeOptions(parsed any) []response_models.TravelOption {
	var list []any
	switch v := parsed.(type) {
	case map[string]any:
		if arr, ok := v["options"].([]any); ok {
			list = arr
		}
	case []any:
		list = v
	}

	options := make([]response_models.TravelOption, 0, maxOptions)
	for _, item := range list {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}
		options = append(options, normalizeOption(raw))
		if len(options) == maxOptions {
			break
		}
	}
	return options
}

func normalizeOption(o map[string]any) response_models.TravelOption {
	opt := response_models.TravelOption{
		Name:          stringField(o, "name"),
		Zone:          stringField(o, "zone"),
		FunFact:       stringField(o, "funFact", "oneLineHistory", "history"),
		LiveTemp:      Placeholder,
		TopProperties: stringField(o, "topProperties", "topHostel", "stay"),
		IconicCafe:    stringField(o, "iconicCafe", "cafe"),
		DailyBudget:   stringField(o, "dailyBudget"),
		MajorExpenses: normalizeExpenses(o["majorExpenses"]),
		RedditInsight: stringField(o, "redditInsight"),
	}

	// Number stays a number only when the raw type was already numeric.
	dist := firstValue(o, "distanceKm", "distance")
	if n, ok := dist.(float64); ok {
		opt.DistanceKm = n
	} else {
		opt.DistanceKm = coerceString(dist)
	}

	// Legacy flashcards shape folds into the insight field.
	if opt.RedditInsight == Placeholder {
		opt.RedditInsight = insightFromFlashcards(o["flashcards"])
	}

	return opt
}

func normalizeExpenses(v any) response_models.ExpenseBreakdown {
	m, ok := v.(map[string]any)
	if !ok {
		return response_models.ExpenseBreakdown{Stay: Placeholder, Food: Placeholder, Travel: Placeholder}
	}
	return response_models.ExpenseBreakdown{
		Stay:   stringField(m, "stay"),
		Food:   stringField(m, "food"),
		Travel: stringField(m, "travel"),
	}
}

func insightFromFlashcards(v any) string {
	m, ok := v.(map[string]any)
	if !ok {
		return Placeholder
	}
	var parts []string
	for _, key := range []string{"where", "when", "how"} {
		if s := stringField(m, key); s != Placeholder && s != "" {
			parts = append(parts, fmt.Sprintf("%s%s: %s", strings.ToUpper(key[:1]), key[1:], s))
		}
	}
	if len(parts) == 0 {
		return Placeholder
	}
	return strings.Join(parts, ". ")
}

// NormalizeSecretSource applies the same defensive coercion to the curated
// guide block. A missing or malformed block yields the default object with
// isFromGuide false.
func NormalizeSecretSource(parsed any, guideName string) response_models.SecretSource {
	top, ok := parsed.(map[string]any)
	if !ok {
		return defaultSecretSource(guideName)
	}
	raw, ok := top["secretSource"].(map[string]any)
	if !ok {
		return defaultSecretSource(guideName)
	}

	source := response_models.SecretSource{
		GuideName: guideName,
		Tips:      []string{},
	}
	if name, present := raw["guideName"]; present && name != nil {
		source.GuideName = coerceString(name)
	}
	if tips, ok := raw["tips"].([]any); ok {
		for _, t := range tips {
			s := coerceString(t)
			if s == "" || s == Placeholder {
				continue
			}
			source.Tips = append(source.Tips, s)
			if len(source.Tips) == maxSecretTips {
				break
			}
		}
	}
	if fromGuide, ok := raw["isFromGuide"].(bool); ok {
		source.IsFromGuide = fromGuide
	}
	return source
}

func defaultSecretSource(guideName string) response_models.SecretSource {
	return response_models.SecretSource{
		GuideName:   guideName,
		Tips:        []string{},
		IsFromGuide: false,
	}
}

// stringField walks the fallback key chain and coerces the first present
// value. Absent everywhere means the placeholder.
func stringField(o map[string]any, keys ...string) string {
	return coerceString(firstValue(o, keys...))
}

func firstValue(o map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, present := o[key]; present && v != nil {
			return v
		}
	}
	return nil
}

func coerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return Placeholder
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}
