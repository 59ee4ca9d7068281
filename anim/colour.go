package anim

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// A Colour is an 8-bit gamma-encoded RGBA colour.
type Colour struct {
	R, G, B, A uint8
}

func (Colour) isValue() {}

type linearColour struct {
	r, g, b, a float64
}

// toLinear approximates the inverse sRGB transfer with a square root.
// Downstream output depends on this exact approximation, so it is not
// the true piecewise sRGB function.
func (c Colour) toLinear() linearColour {
	return linearColour{
		r: math.Sqrt(float64(c.R) / 255),
		g: math.Sqrt(float64(c.G) / 255),
		b: math.Sqrt(float64(c.B) / 255),
		a: float64(c.A) / 255,
	}
}

func fromLinear(c linearColour) Colour {
	return Colour{
		R: clampChannel(c.r * c.r * 255),
		G: clampChannel(c.g * c.g * 255),
		B: clampChannel(c.b * c.b * 255),
		A: clampChannel(c.a * 255),
	}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Blend interpolates towards o in approximately-linear light; the
// alpha channel blends directly in gamma space.
func (c Colour) Blend(o Colour, alpha float64) Colour {
	l0 := c.toLinear()
	l1 := o.toLinear()
	return fromLinear(linearColour{
		r: l0.r*(1-alpha) + l1.r*alpha,
		g: l0.g*(1-alpha) + l1.g*alpha,
		b: l0.b*(1-alpha) + l1.b*alpha,
		a: l0.a*(1-alpha) + l1.a*alpha,
	})
}

// Colorful converts to a go-colorful colour, dropping alpha.
func (c Colour) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// HexColour parses #rgb, #rrggbb and #rrggbbaa colours.
func HexColour(s string) (Colour, error) {
	alpha := uint8(255)
	if strings.HasPrefix(s, "#") && len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Colour{}, fmt.Errorf("anim: bad colour %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Colour{}, fmt.Errorf("anim: bad colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Colour{r, g, b, alpha}, nil
}

func (c Colour) String() string {
	if c.A != 255 {
		return fmt.Sprintf("%s%02x", c.Colorful().Hex(), c.A)
	}
	return c.Colorful().Hex()
}
