package utils

import (
	"encoding/json"
	"strings"
)

// Best-effort extraction of a JSON document embedded in free text. The text
// model is asked for JSON only but routinely wraps it in markdown fences or
// prose, so we slice from the first opening bracket to the last closing one
// and let the decoder judge the result. The ok=false return is the expected
// failure path, not an anomaly; callers fall back to canned data on it.

// ExtractJSONArray returns the first-'['-to-last-']' substring of raw if it
// decodes as JSON.
func ExtractJSONArray(raw string) (json.RawMessage, bool) {
	return extractBetween(raw, '[', ']')
}

// ExtractJSONObject returns the first-'{'-to-last-'}' substring of raw if it
// decodes as JSON.
func ExtractJSONObject(raw string) (json.RawMessage, bool) {
	return extractBetween(raw, '{', '}')
}

func extractBetween(raw string, open, close byte) (json.RawMessage, bool) {
	start := strings.IndexByte(raw, open)
	end := strings.LastIndexByte(raw, close)
	if start == -1 || end == -1 || end < start {
		return nil, false
	}

	candidate := raw[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return nil, false
	}
	return json.RawMessage(candidate), true
}
