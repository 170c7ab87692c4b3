package generator

import (
	"github.com/alexisbeaulieu97/ether/internal/theme"
	"github.com/alexisbeaulieu97/ether/internal/tokens"
)

// BuildTheme assembles a complete theme from t. It performs no validation;
// callers run validation.ValidateBaseTokens first and may run
// validation.ValidateTheme on the result. Each call returns a new Theme.
func BuildTheme(t tokens.BaseTokens) (*theme.Theme, error) {
	semantic, err := GenerateSemanticTokenColors(t)
	if err != nil {
		return nil, err
	}

	tokenColors, err := GenerateTokenColors(t)
	if err != nil {
		return nil, err
	}

	colors, err := GenerateUIColors(t)
	if err != nil {
		return nil, err
	}

	return &theme.Theme{
		Name:                 t.Name,
		Type:                 string(t.Type),
		SemanticHighlighting: true,
		SemanticTokenColors:  semantic,
		TokenColors:          tokenColors,
		Colors:               colors,
	}, nil
}
