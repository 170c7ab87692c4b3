package color

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// ErrInvalidColor is matched by every InvalidColorError via errors.Is.
var ErrInvalidColor = errors.New("invalid color")

// InvalidColorError reports a string that could not be parsed as a color.
type InvalidColorError struct {
	Value string
}

func (e *InvalidColorError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid color %q", e.Value)
}

// Is lets errors.Is(err, ErrInvalidColor) succeed.
func (e *InvalidColorError) Is(target error) bool {
	return target == ErrInvalidColor
}

const number = `[+-]?\d*\.?\d+`

// The accepted grammar is narrower than CSS: hex needs its leading '#' and
// named colors are rejected.
var (
	hexPattern = regexp.MustCompile(`^#([0-9a-f]{3,4}|[0-9a-f]{6}|[0-9a-f]{8})$`)
	rgbPattern = regexp.MustCompile(`^rgba?\(\s*` + number + `%?\s*[,\s]\s*` + number + `%?\s*[,\s]\s*` + number + `%?\s*(?:[,/]\s*` + number + `%?\s*)?\)$`)
	hslPattern = regexp.MustCompile(`^hsla?\(\s*` + number + `(?:deg)?\s*[,\s]\s*` + number + `%\s*[,\s]\s*` + number + `%\s*(?:[,/]\s*` + number + `%?\s*)?\)$`)
)

// Parse reads a hex (#rgb, #rgba, #rrggbb, #rrggbbaa), rgb()/rgba() or
// hsl()/hsla() string. Channels are clamped to [0,1] and alpha is rounded
// to three decimals.
func Parse(s string) (Color, error) {
	input := strings.ToLower(strings.TrimSpace(s))
	if !hexPattern.MatchString(input) && !rgbPattern.MatchString(input) && !hslPattern.MatchString(input) {
		return Color{}, &InvalidColorError{Value: s}
	}

	parsed, err := csscolorparser.Parse(input)
	if err != nil {
		return Color{}, &InvalidColorError{Value: s}
	}
	return Color{
		R: clamp01(parsed.R),
		G: clamp01(parsed.G),
		B: clamp01(parsed.B),
		A: roundTo(clamp01(parsed.A), 3),
	}, nil
}

// MustParse is Parse for package-level literals; it panics on bad input.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}
