package services

import (
	"encoding/json"
	"regexp"
	"strings"

	"lure/pkg/utils"
)

// Models sometimes ignore the "no markdown" instruction and wrap the payload
// in code fences anyway.
var fenceRe = regexp.MustCompile("```(?:[jJ][sS][oO][nN])?")

// ParseModelPayload strips markdown fences and decodes the completion text.
// On failure it returns an UpstreamError carrying a bounded excerpt of the
// raw text, never the full payload.
func ParseModelPayload(content string) (any, error) {
	cleaned := strings.TrimSpace(fenceRe.ReplaceAllString(content, ""))

	var parsed any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, utils.NewUpstreamError(utils.ErrInvalidModelJSON, content)
	}
	return parsed, nil
}
