// Package color implements the small color algebra used to derive themes.
//
// Colors cross package boundaries as strings. Each operation parses its
// input, works on the channel representation and formats the result as
// lowercase hex straight away.
package color

// WithAlpha sets the opacity of color to alpha (0-1).
func WithAlpha(color string, alpha float64) (string, error) {
	return apply(color, func(c Color) Color { return c.WithAlpha(alpha) })
}

// Lighten raises HSL lightness by amount (0-1).
func Lighten(color string, amount float64) (string, error) {
	return apply(color, func(c Color) Color { return c.Lighten(amount) })
}

// Darken lowers HSL lightness by amount (0-1).
func Darken(color string, amount float64) (string, error) {
	return apply(color, func(c Color) Color { return c.Darken(amount) })
}

// Saturate raises HSL saturation by amount (0-1).
func Saturate(color string, amount float64) (string, error) {
	return apply(color, func(c Color) Color { return c.Saturate(amount) })
}

// Desaturate lowers HSL saturation by amount (0-1).
func Desaturate(color string, amount float64) (string, error) {
	return apply(color, func(c Color) Color { return c.Desaturate(amount) })
}

// Mix blends color1 toward color2. Ratio 0 yields color1, 1 yields color2.
func Mix(color1, color2 string, ratio float64) (string, error) {
	a, err := Parse(color1)
	if err != nil {
		return "", err
	}
	b, err := Parse(color2)
	if err != nil {
		return "", err
	}
	return a.Mix(b, ratio).Hex(), nil
}

// Composite flattens a translucent foreground onto backdrop.
func Composite(foreground, backdrop string) (string, error) {
	fg, err := Parse(foreground)
	if err != nil {
		return "", err
	}
	bg, err := Parse(backdrop)
	if err != nil {
		return "", err
	}
	return fg.Over(bg).Hex(), nil
}

// ToHex canonicalizes color to lowercase #rrggbb or #rrggbbaa.
func ToHex(color string) (string, error) {
	return apply(color, func(c Color) Color { return c })
}

// ToRGB returns the rounded RGBA components of color.
func ToRGB(color string) (RGBA, error) {
	c, err := Parse(color)
	if err != nil {
		return RGBA{}, err
	}
	return c.RGBA(), nil
}

// ToHSL returns the rounded HSLA components of color.
func ToHSL(color string) (HSLA, error) {
	c, err := Parse(color)
	if err != nil {
		return HSLA{}, err
	}
	return c.HSLA(), nil
}

// IsValid reports whether color parses. It never fails.
func IsValid(color string) bool {
	_, err := Parse(color)
	return err == nil
}

func apply(color string, fn func(Color) Color) (string, error) {
	c, err := Parse(color)
	if err != nil {
		return "", err
	}
	return fn(c).Hex(), nil
}
