package generator

import (
	"fmt"

	"github.com/alexisbeaulieu97/ether/internal/theme"
	"github.com/alexisbeaulieu97/ether/internal/tokens"
)

// SemanticRule derives the style for one semantic token selector.
type SemanticRule struct {
	Selector   string
	Foreground Source
	FontStyle  string
}

// SemanticTokenTable returns the semantic highlighting rules in output order.
func SemanticTokenTable() []SemanticRule {
	return append([]SemanticRule(nil), semanticTokenTable...)
}

// GenerateSemanticTokenColors expands t into the semantic token color map.
func GenerateSemanticTokenColors(t tokens.BaseTokens) (*theme.SemanticColors, error) {
	colors := theme.NewOrderedMap[theme.Settings](len(semanticTokenTable))
	for _, rule := range semanticTokenTable {
		settings, err := resolveSettings(t, rule.Foreground, nil, rule.FontStyle)
		if err != nil {
			return nil, fmt.Errorf("semanticTokenColors[%s]: %w", rule.Selector, err)
		}
		colors.Set(rule.Selector, settings)
	}
	return colors, nil
}

// Mirrors the lexical rules for the type-aware pass.
var semanticTokenTable = []SemanticRule{
	{Selector: "comment", Foreground: comment, FontStyle: fontItalic},
	{Selector: "keyword", Foreground: purple},
	{Selector: "keyword.controlFlow", Foreground: purple, FontStyle: fontItalic},
	{Selector: "modifier", Foreground: Desaturate(purple, 0.15), FontStyle: fontItalic},
	{Selector: "operator", Foreground: cyan},
	{Selector: "string", Foreground: green},
	{Selector: "regexp", Foreground: Darken(cyan, 0.05)},
	{Selector: "number", Foreground: orange},
	{Selector: "enumMember", Foreground: orange},
	{Selector: "variable", Foreground: red},
	{Selector: "variable.readonly", Foreground: orange},
	{Selector: "variable.defaultLibrary", Foreground: Saturate(red, 0.1), FontStyle: fontItalic},
	{Selector: "parameter", Foreground: Mix(red, editorFg, 0.4), FontStyle: fontItalic},
	{Selector: "property", Foreground: Mix(red, editorFg, 0.25)},
	{Selector: "property.readonly", Foreground: orange},
	{Selector: "function", Foreground: blue},
	{Selector: "function.declaration", Foreground: blue, FontStyle: fontBold},
	{Selector: "function.defaultLibrary", Foreground: cyan},
	{Selector: "method", Foreground: blue},
	{Selector: "method.declaration", Foreground: blue, FontStyle: fontBold},
	{Selector: "macro", Foreground: cyan},
	{Selector: "decorator", Foreground: Mix(blue, editorFg, 0.3), FontStyle: fontItalic},
	{Selector: "class", Foreground: yellow},
	{Selector: "struct", Foreground: yellow},
	{Selector: "type", Foreground: yellow},
	{Selector: "type.defaultLibrary", Foreground: Desaturate(yellow, 0.1), FontStyle: fontItalic},
	{Selector: "interface", Foreground: yellow, FontStyle: fontItalic},
	{Selector: "enum", Foreground: Lighten(yellow, 0.05)},
	{Selector: "typeParameter", Foreground: Darken(yellow, 0.08), FontStyle: fontItalic},
	{Selector: "namespace", Foreground: yellow},
	{Selector: "label", Foreground: cyan},
	{Selector: "selfKeyword", Foreground: Lighten(purple, 0.08), FontStyle: fontItalic},
	{Selector: "*.deprecated", Foreground: warningFg, FontStyle: fontStrikethrough},
}
