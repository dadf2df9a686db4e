package llm

import "strings"

// The model is asked for bare JSON but routinely wraps it in prose or
// markdown fences, so responses are scanned for the outermost object
// or array instead of being unmarshalled directly.

// ExtractJSONObject returns the substring from the first '{' to the
// last '}' of s.
func ExtractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// ExtractJSONArray returns the substring from the first '[' to the
// last ']' of s.
func ExtractJSONArray(s string) (string, bool) {
	start := strings.IndexByte(s, '[')
	end := strings.LastIndexByte(s, ']')
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
