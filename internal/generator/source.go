// Package generator expands base tokens into a complete theme.
//
// Every derived color is described by a Source in a fixed table. The tables
// are plain data; Resolve walks them against one palette.
package generator

import (
	"fmt"
	"strconv"

	"github.com/alexisbeaulieu97/ether/internal/color"
	"github.com/alexisbeaulieu97/ether/internal/tokens"
)

// Source derives one color string from a palette.
type Source interface {
	Resolve(t tokens.BaseTokens) (string, error)
	// String describes the derivation, e.g. alpha(accentPrimary, 0.5).
	String() string
}

type tokenSource struct{ field tokens.Field }

// Token passes a base token through unchanged.
func Token(f tokens.Field) Source { return tokenSource{field: f} }

func (s tokenSource) Resolve(t tokens.BaseTokens) (string, error) { return t.Value(s.field), nil }
func (s tokenSource) String() string                              { return string(s.field) }

type literalSource struct{ value string }

// Literal is a palette-independent constant.
func Literal(value string) Source { return literalSource{value: value} }

func (s literalSource) Resolve(tokens.BaseTokens) (string, error) { return s.value, nil }
func (s literalSource) String() string                            { return s.value }

type unarySource struct {
	op     string
	src    Source
	amount float64
	apply  func(string, float64) (string, error)
}

func (s unarySource) Resolve(t tokens.BaseTokens) (string, error) {
	in, err := s.src.Resolve(t)
	if err != nil {
		return "", err
	}
	return s.apply(in, s.amount)
}

func (s unarySource) String() string {
	return fmt.Sprintf("%s(%s, %s)", s.op, s.src, formatAmount(s.amount))
}

// Alpha sets the opacity of src.
func Alpha(src Source, alpha float64) Source {
	return unarySource{op: "alpha", src: src, amount: alpha, apply: color.WithAlpha}
}

// Lighten raises the lightness of src.
func Lighten(src Source, amount float64) Source {
	return unarySource{op: "lighten", src: src, amount: amount, apply: color.Lighten}
}

// Darken lowers the lightness of src.
func Darken(src Source, amount float64) Source {
	return unarySource{op: "darken", src: src, amount: amount, apply: color.Darken}
}

// Saturate raises the saturation of src.
func Saturate(src Source, amount float64) Source {
	return unarySource{op: "saturate", src: src, amount: amount, apply: color.Saturate}
}

// Desaturate lowers the saturation of src.
func Desaturate(src Source, amount float64) Source {
	return unarySource{op: "desaturate", src: src, amount: amount, apply: color.Desaturate}
}

type mixSource struct {
	a, b  Source
	ratio float64
}

// Mix blends a toward b by ratio.
func Mix(a, b Source, ratio float64) Source { return mixSource{a: a, b: b, ratio: ratio} }

func (s mixSource) Resolve(t tokens.BaseTokens) (string, error) {
	a, err := s.a.Resolve(t)
	if err != nil {
		return "", err
	}
	b, err := s.b.Resolve(t)
	if err != nil {
		return "", err
	}
	return color.Mix(a, b, s.ratio)
}

func (s mixSource) String() string {
	return fmt.Sprintf("mix(%s, %s, %s)", s.a, s.b, formatAmount(s.ratio))
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Shorthands for the palette roles used throughout the tables.
var (
	darkest   = Token(tokens.DarkestBackground)
	editorBg  = Token(tokens.EditorBackground)
	inputBg   = Token(tokens.InputBackground)
	panelBg   = Token(tokens.PanelBackground)
	primaryFg = Token(tokens.PrimaryForeground)
	editorFg  = Token(tokens.EditorForeground)
	mutedFg   = Token(tokens.MutedForeground)
	comment   = Token(tokens.Comment)
	accent    = Token(tokens.AccentPrimary)

	red    = Token(tokens.SyntaxRed)
	blue   = Token(tokens.SyntaxBlue)
	green  = Token(tokens.SyntaxGreen)
	yellow = Token(tokens.SyntaxYellow)
	purple = Token(tokens.SyntaxPurple)
	orange = Token(tokens.SyntaxOrange)
	cyan   = Token(tokens.SyntaxCyan)

	errorFg   = Token(tokens.ErrorColor)
	warningFg = Token(tokens.WarningColor)
	infoFg    = Token(tokens.InfoColor)

	gitAdded       = Token(tokens.GitAdded)
	gitModified    = Token(tokens.GitModified)
	gitDeleted     = Token(tokens.GitDeleted)
	gitConflicting = Token(tokens.GitConflicting)
	gitIgnored     = Token(tokens.GitIgnored)

	transparent = Literal("#00000000")
)
