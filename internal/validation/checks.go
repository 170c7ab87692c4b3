package validation

import (
	"bytes"
	"encoding/json"

	"github.com/alexisbeaulieu97/ether/internal/theme"
)

const (
	msgMissingName        = "Missing theme name"
	msgMissingType        = "Missing theme type"
	msgMissingColors      = "Missing colors object"
	msgMissingTokenColors = "Missing tokenColors array"
	msgTokenColorsArray   = "tokenColors must be an array"
)

// ValidateTheme is the post-assembly sanity check. Its issues are advisory:
// callers log them and still write the theme.
func ValidateTheme(t *theme.Theme) Report {
	if t == nil {
		return newReport([]Issue{structural("", "Missing theme")})
	}

	var issues []Issue
	if t.Name == "" {
		issues = append(issues, structural("name", msgMissingName))
	}
	if t.Type == "" {
		issues = append(issues, structural("type", msgMissingType))
	}
	if t.Colors == nil {
		issues = append(issues, structural("colors", msgMissingColors))
	}
	if t.TokenColors == nil {
		issues = append(issues, structural("tokenColors", msgMissingTokenColors))
	}
	return newReport(issues)
}

// ValidateThemeDocument runs the same checks against a serialized theme,
// where tokenColors may not be an array at all.
func ValidateThemeDocument(data []byte) Report {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil || doc == nil {
		return newReport([]Issue{structural("", "theme document must be a JSON object")})
	}

	var issues []Issue
	if !nonEmptyString(doc["name"]) {
		issues = append(issues, structural("name", msgMissingName))
	}
	if !nonEmptyString(doc["type"]) {
		issues = append(issues, structural("type", msgMissingType))
	}
	if !hasPrefix(doc["colors"], '{') {
		issues = append(issues, structural("colors", msgMissingColors))
	}

	switch raw := doc["tokenColors"]; {
	case isNull(raw):
		issues = append(issues, structural("tokenColors", msgMissingTokenColors))
	case !hasPrefix(raw, '['):
		issues = append(issues, structural("tokenColors", msgTokenColorsArray))
	}
	return newReport(issues)
}

func structural(field, message string) Issue {
	return Issue{Code: CodeStructural, Field: field, Message: message}
}

func nonEmptyString(raw json.RawMessage) bool {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false
	}
	return s != ""
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func hasPrefix(raw json.RawMessage, b byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == b
}
