package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// SearchServiceInterface produces a text blob of real-world discussion
// content used to ground the completion prompt. Callers must treat failures
// as degraded grounding, not request failure.
type SearchServiceInterface interface {
	FetchContext(ctx context.Context, place, vibe string) (string, error)
}

// TavilySearchService queries the Tavily search API. An empty API key
// disables the feature entirely.
type TavilySearchService struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewTavilySearchService(apiKey string) *TavilySearchService {
	return &TavilySearchService{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     apiKey,
		baseURL:    "https://api.tavily.com",
	}
}

type tavilyRequest struct {
	APIKey        string `json:"api_key"`
	Query         string `json:"query"`
	SearchDepth   string `json:"search_depth"`
	IncludeAnswer bool   `json:"include_answer"`
	MaxResults    int    `json:"max_results"`
}

type tavilyResponse struct {
	Answer  string `json:"answer"`
	Results []struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	} `json:"results"`
}

func (s *TavilySearchService) FetchContext(ctx context.Context, place, vibe string) (string, error) {
	if s.apiKey == "" {
		log.Debug().Msg("search grounding unavailable, no API key")
		return "", nil
	}

	payload, err := json.Marshal(tavilyRequest{
		APIKey:        s.apiKey,
		Query:         buildSearchQuery(place, vibe),
		SearchDepth:   "basic",
		IncludeAnswer: true,
		MaxResults:    5,
	})
	if err != nil {
		return "", fmt.Errorf("search request encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("search request build: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("search http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("search bad status: %s", resp.Status)
	}

	var result tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("search decode: %w", err)
	}

	var b strings.Builder
	if result.Answer != "" {
		b.WriteString(result.Answer)
		b.WriteString("\n")
	}
	for _, r := range result.Results {
		if strings.TrimSpace(r.Content) == "" {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", r.Title, r.Content)
	}

	return CleanSearchText(b.String()), nil
}

// buildSearchQuery biases results toward substantive trip reports and away
// from pages that serve bot interstitials.
func buildSearchQuery(place, vibe string) string {
	parts := []string{}
	if place != "" {
		parts = append(parts, place)
	}
	parts = append(parts, vibe, "trip report", "2023..2025")
	return strings.Join(parts, " ")
}

// Known interstitial and footer phrases that pollute scraped discussion
// content. Stripped verbatim before the text reaches the prompt.
var boilerplatePhrases = []string{
	"Before you continue, please verify you are a human",
	"Please complete the CAPTCHA to continue",
	"Verify you are not a robot",
	"Press J to jump to the feed",
	"Press question mark to learn the rest of the keyboard shortcuts",
	"Use of this site constitutes acceptance of our User Agreement and Privacy Policy",
	"All rights reserved",
	"Cookies help us deliver our services",
}

var extraWhitespaceRe = regexp.MustCompile(`[ \t]{2,}`)

// CleanSearchText removes known boilerplate phrases and collapses the
// whitespace they leave behind.
func CleanSearchText(text string) string {
	for _, phrase := range boilerplatePhrases {
		text = strings.ReplaceAll(text, phrase, "")
	}
	text = extraWhitespaceRe.ReplaceAllString(text, " ")

	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n")
}
