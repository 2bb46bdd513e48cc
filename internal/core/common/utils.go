package common

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// ParseJSON cleans and unmarshals a JSON object string into a type T.
// It handles common LLM quirks like surrounding markdown fences or prose
// around the object.
func ParseJSON[T any](response string) (T, error) {
	var zero T

	start := strings.IndexByte(response, '{')
	if start == -1 {
		return zero, fmt.Errorf("no JSON object found in response (missing '{')")
	}
	end := strings.LastIndexByte(response, '}')

	jsonStr := response
	if end > start {
		jsonStr = response[start : end+1]
	}

	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return zero, fmt.Errorf("failed to unmarshal JSON: %w\nData: %s", err, jsonStr)
	}

	return result, nil
}

// Capitalize upper-cases the first letter of s, leaving the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
