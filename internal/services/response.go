package services

import (
	"encoding/json"
	"regexp"
)

var jsonFencePattern = regexp.MustCompile("```json\\n([\\s\\S]*?)\\n```")

// DecodeJSONResponse parses model output that is supposed to be JSON but may
// be wrapped in prose or markdown fences. It first tries the whole text, then
// a ```json fenced block; anything else fails with MalformedResponseError.
func DecodeJSONResponse(raw string, target interface{}) error {
	if err := json.Unmarshal([]byte(raw), target); err == nil {
		return nil
	}

	if match := jsonFencePattern.FindStringSubmatch(raw); match != nil {
		if err := json.Unmarshal([]byte(match[1]), target); err == nil {
			return nil
		}
	}

	return &MalformedResponseError{Raw: raw}
}
