package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA value with every channel in [0,1].
type Color struct {
	R, G, B float64
	A       float64
}

// RGBA holds rounded 0-255 channels and an alpha rounded to three decimals.
type RGBA struct {
	R int     `json:"r"`
	G int     `json:"g"`
	B int     `json:"b"`
	A float64 `json:"a"`
}

// HSLA holds hue in degrees and saturation/lightness in percent.
type HSLA struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
	A float64 `json:"a"`
}

func fromColorful(c colorful.Color, alpha float64) Color {
	c = c.Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: clamp01(alpha)}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// WithAlpha returns c with its opacity replaced.
func (c Color) WithAlpha(alpha float64) Color {
	c.A = clamp01(alpha)
	return c
}

// Lighten shifts HSL lightness by amount (0-1 maps to 0-100 points).
func (c Color) Lighten(amount float64) Color {
	h, s, l := c.colorful().Hsl()
	return fromColorful(colorful.Hsl(h, s, clamp01(l+amount)), c.A)
}

// Darken is Lighten with a negated amount.
func (c Color) Darken(amount float64) Color {
	return c.Lighten(-amount)
}

// Saturate shifts HSL saturation by amount.
func (c Color) Saturate(amount float64) Color {
	h, s, l := c.colorful().Hsl()
	return fromColorful(colorful.Hsl(h, clamp01(s+amount), l), c.A)
}

// Desaturate is Saturate with a negated amount.
func (c Color) Desaturate(amount float64) Color {
	return c.Saturate(-amount)
}

// Mix interpolates every channel linearly; ratio 0 is c, ratio 1 is other.
func (c Color) Mix(other Color, ratio float64) Color {
	ratio = clamp01(ratio)
	blended := c.colorful().BlendRgb(other.colorful(), ratio)
	return fromColorful(blended, c.A+(other.A-c.A)*ratio)
}

// Over composites c onto backdrop using source-over blending.
func (c Color) Over(backdrop Color) Color {
	outA := c.A + backdrop.A*(1-c.A)
	if outA == 0 {
		return Color{}
	}
	channel := func(src, dst float64) float64 {
		return (src*c.A + dst*backdrop.A*(1-c.A)) / outA
	}
	return Color{
		R: channel(c.R, backdrop.R),
		G: channel(c.G, backdrop.G),
		B: channel(c.B, backdrop.B),
		A: outA,
	}
}

// Hex formats c as #rrggbb, or #rrggbbaa when it is not fully opaque.
func (c Color) Hex() string {
	r, g, b := c.colorful().Clamped().RGB255()
	var sb strings.Builder
	sb.Grow(9)
	fmt.Fprintf(&sb, "#%02x%02x%02x", r, g, b)
	if a := roundTo(c.A, 3); a < 1 {
		fmt.Fprintf(&sb, "%02x", int(math.Round(a*255)))
	}
	return sb.String()
}

// RGBA reports the rounded channel values.
func (c Color) RGBA() RGBA {
	r, g, b := c.colorful().Clamped().RGB255()
	return RGBA{R: int(r), G: int(g), B: int(b), A: roundTo(c.A, 3)}
}

// HSLA reports hue, saturation and lightness rounded to whole units.
func (c Color) HSLA() HSLA {
	h, s, l := c.colorful().Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSLA{
		H: math.Round(h),
		S: math.Round(s * 100),
		L: math.Round(l * 100),
		A: roundTo(c.A, 3),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func roundTo(v float64, digits int) float64 {
	base := math.Pow(10, float64(digits))
	return math.Round(v*base) / base
}
