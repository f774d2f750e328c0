// Package colormodel converts colors between hex, RGB and HSL representations.
//
// RGBToHSL reports saturation and lightness in percent while HSLToRGB takes
// them as fractions in [0, 1]. HSL.RGB accepts the percent form directly.
package colormodel

import (
	"fmt"
	"math"

	"github.com/MeKo-Tech/colorpicker/internal/hexcodec"
)

// Re-exported so callers need not import hexcodec to match errors.
var (
	ErrInvalidHexFormat = hexcodec.ErrInvalidHexFormat
	ErrOutOfRange       = hexcodec.ErrOutOfRange
)

const (
	hueMax     = 360
	percentMax = 100
)

// RGB is an additive color with channels in [0, 255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// String formats the color as rgb(r, g, b).
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Validate reports whether every channel is in [0, 255].
func (c RGB) Validate() error {
	for _, ch := range [3]int{c.R, c.G, c.B} {
		if ch < 0 || ch > hexcodec.MaxChannel {
			return fmt.Errorf("%s: channel %d: %w", c, ch, ErrOutOfRange)
		}
	}
	return nil
}

// Hex returns the "#rrggbb" form of the color.
func (c RGB) Hex() (string, error) {
	return hexcodec.Format(c.R, c.G, c.B)
}

// HSL holds hue in degrees [0, 360) and saturation and lightness in percent.
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// String formats the color as hsl(h, s%, l%).
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// Validate reports whether hue is in [0, 360) and S and L are in [0, 100].
func (c HSL) Validate() error {
	if c.H < 0 || c.H >= hueMax {
		return fmt.Errorf("%s: hue %d: %w", c, c.H, ErrOutOfRange)
	}
	if c.S < 0 || c.S > percentMax {
		return fmt.Errorf("%s: saturation %d: %w", c, c.S, ErrOutOfRange)
	}
	if c.L < 0 || c.L > percentMax {
		return fmt.Errorf("%s: lightness %d: %w", c, c.L, ErrOutOfRange)
	}
	return nil
}

// RGB converts the percent-based HSL value to RGB.
func (c HSL) RGB() (RGB, error) {
	if err := c.Validate(); err != nil {
		return RGB{}, err
	}
	return HSLToRGB(float64(c.H), float64(c.S)/percentMax, float64(c.L)/percentMax)
}

// Color is one color expressed in all three representations.
type Color struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
	HSL HSL    `json:"hsl"`
}

// NewColor derives the hex and HSL forms of rgb.
func NewColor(rgb RGB) (Color, error) {
	hex, err := rgb.Hex()
	if err != nil {
		return Color{}, err
	}
	hsl, err := RGBToHSL(rgb.R, rgb.G, rgb.B)
	if err != nil {
		return Color{}, err
	}
	return Color{Hex: hex, RGB: rgb, HSL: hsl}, nil
}

// ParseColor parses a hex string into a Color.
func ParseColor(hex string) (Color, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return Color{}, err
	}
	return NewColor(rgb)
}

// HexToRGB parses "#rrggbb", "rrggbb" or the "#rgb" shorthand.
func HexToRGB(hex string) (RGB, error) {
	ch, err := hexcodec.Parse(hex)
	if err != nil {
		return RGB{}, err
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// RGBToHex formats the channels as "#rrggbb".
func RGBToHex(r, g, b int) (string, error) {
	return hexcodec.Format(r, g, b)
}

// RGBToHSL converts 8-bit channels to HSL with hue in degrees and saturation
// and lightness in percent, each rounded to the nearest integer.
func RGBToHSL(r, g, b int) (HSL, error) {
	h, s, l, err := RGBToHSLExact(r, g, b)
	if err != nil {
		return HSL{}, err
	}
	return HSL{
		H: int(math.Round(h)) % hueMax,
		S: int(math.Round(s * percentMax)),
		L: int(math.Round(l * percentMax)),
	}, nil
}

// RGBToHSLExact is RGBToHSL without rounding: hue in degrees [0, 360),
// saturation and lightness as fractions in [0, 1]. Its output can be passed
// straight to HSLToRGB.
func RGBToHSLExact(r, g, b int) (h, s, l float64, err error) {
	if err := (RGB{R: r, G: g, B: b}).Validate(); err != nil {
		return 0, 0, 0, err
	}

	rf := float64(r) / hexcodec.MaxChannel
	gf := float64(g) / hexcodec.MaxChannel
	bf := float64(b) / hexcodec.MaxChannel

	maxv := math.Max(rf, math.Max(gf, bf))
	minv := math.Min(rf, math.Min(gf, bf))
	l = (maxv + minv) / 2

	if maxv == minv {
		return 0, 0, l, nil
	}

	d := maxv - minv
	if l > 0.5 {
		s = d / (2 - maxv - minv)
	} else {
		s = d / (maxv + minv)
	}

	// First matching channel wins when two share the maximum.
	switch maxv {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	case bf:
		h = (rf-gf)/d + 4
	}
	return h / 6 * hueMax, s, l, nil
}

// HSLToRGB converts hue in degrees and saturation and lightness as fractions
// in [0, 1] to 8-bit channels.
func HSLToRGB(h, s, l float64) (RGB, error) {
	if math.IsNaN(h) || h < 0 || h >= hueMax {
		return RGB{}, fmt.Errorf("hue %g: %w", h, ErrOutOfRange)
	}
	if math.IsNaN(s) || s < 0 || s > 1 {
		return RGB{}, fmt.Errorf("saturation %g: %w", s, ErrOutOfRange)
	}
	if math.IsNaN(l) || l < 0 || l > 1 {
		return RGB{}, fmt.Errorf("lightness %g: %w", l, ErrOutOfRange)
	}

	h /= hueMax

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}

	return RGB{
		R: toChannel(r),
		G: toChannel(g),
		B: toChannel(b),
	}, nil
}

// hueToRGB evaluates one channel of the HSL hexcone at hue position t.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// toChannel scales a [0, 1] fraction to the nearest 8-bit value.
func toChannel(v float64) int {
	c := int(math.Round(v * hexcodec.MaxChannel))
	if c < 0 {
		return 0
	}
	if c > hexcodec.MaxChannel {
		return hexcodec.MaxChannel
	}
	return c
}
