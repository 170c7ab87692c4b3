// Package theme holds the assembled editor theme document.
package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Settings is the style applied to a token scope.
type Settings struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`
}

// Scope is one or more TextMate scope selectors. A single selector is
// written as a plain string.
type Scope []string

// MarshalJSON writes a lone selector as a string and several as an array.
func (s Scope) MarshalJSON() ([]byte, error) {
	if len(s) == 1 {
		return marshal(s[0], "")
	}
	return marshal([]string(s), "")
}

// UnmarshalJSON accepts either a string or an array of strings.
func (s *Scope) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = Scope{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("scope must be a string or an array of strings: %w", err)
	}
	*s = Scope(many)
	return nil
}

// TokenColorRule maps scopes to a style for lexical highlighting.
type TokenColorRule struct {
	Name     string   `json:"name,omitempty"`
	Scope    Scope    `json:"scope"`
	Settings Settings `json:"settings"`
}

// Theme is the generated theme document. Field order is the serialized key
// order.
type Theme struct {
	Name                 string           `json:"name"`
	Type                 string           `json:"type"`
	SemanticHighlighting bool             `json:"semanticHighlighting"`
	SemanticTokenColors  *SemanticColors  `json:"semanticTokenColors"`
	TokenColors          []TokenColorRule `json:"tokenColors"`
	Colors               *ColorMap        `json:"colors"`
}

// Marshal renders t as two-space indented JSON without HTML escaping or a
// trailing newline.
func Marshal(t *Theme) ([]byte, error) {
	return MarshalIndent(t)
}

// MarshalIndent encodes v with two-space indentation, leaving '<', '>' and
// '&' unescaped.
func MarshalIndent(v any) ([]byte, error) {
	return marshal(v, "  ")
}

// MarshalCompact encodes v on one line, leaving '<', '>' and '&' unescaped.
func MarshalCompact(v any) ([]byte, error) {
	return marshal(v, "")
}

func marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
