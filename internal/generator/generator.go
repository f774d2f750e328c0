// Package generator derives new colors from a base color: tonal palettes
// that step lightness around the base, and uniformly random colors.
package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/MeKo-Tech/colorpicker/internal/colormodel"
)

const (
	// DefaultPaletteCount is used by Palette when Options.Count is zero.
	DefaultPaletteCount = 10
	// DefaultRandomCount is used by RandomN when Options.Count is zero.
	DefaultRandomCount = 1

	// LightnessStep is the lightness change in percentage points between
	// neighbouring palette entries.
	LightnessStep = 10
)

// ErrInvalidCount is returned for a negative color count.
var ErrInvalidCount = errors.New("invalid color count")

// Options configures palette and random generation.
type Options struct {
	// Count is the number of colors to produce. Zero selects the default
	// for the operation.
	Count int
}

func (o Options) count(def int) (int, error) {
	switch {
	case o.Count < 0:
		return 0, fmt.Errorf("count %d: %w", o.Count, ErrInvalidCount)
	case o.Count == 0:
		return def, nil
	default:
		return o.Count, nil
	}
}

// Palette returns a lightness ramp of colors sharing the hue and saturation
// of base. Entry i has lightness l + (i - count/2) * LightnessStep, clamped to
// [0, 100], where count/2 is a real division: an odd count centers the base
// lightness between two entries.
//
// The HSL of each entry reports the base saturation rather than one derived
// from the entry's RGB.
func Palette(base colormodel.RGB, opts Options) ([]colormodel.Color, error) {
	count, err := opts.count(DefaultPaletteCount)
	if err != nil {
		return nil, err
	}

	hsl, err := colormodel.RGBToHSL(base.R, base.G, base.B)
	if err != nil {
		return nil, fmt.Errorf("palette base: %w", err)
	}

	half := float64(count) / 2
	palette := make([]colormodel.Color, 0, count)
	for i := 0; i < count; i++ {
		newL := clamp(float64(hsl.L)+(float64(i)-half)*LightnessStep, 0, 100)

		rgb, err := colormodel.HSLToRGB(float64(hsl.H), float64(hsl.S)/100, newL/100)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		hex, err := rgb.Hex()
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}

		palette = append(palette, colormodel.Color{
			Hex: hex,
			RGB: rgb,
			HSL: colormodel.HSL{H: hsl.H, S: hsl.S, L: int(math.Round(newL))},
		})
	}
	return palette, nil
}

// Generator produces random colors. A Generator is not safe for concurrent
// use; the package-level Random is.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator drawing from src. A nil src uses the
// process-wide random source.
func New(src rand.Source) *Generator {
	if src == nil {
		return &Generator{}
	}
	return &Generator{rng: rand.New(src)}
}

// NewSeeded returns a Generator with a reproducible PCG source.
func NewSeeded(seed uint64) *Generator {
	return New(rand.NewPCG(seed, seed))
}

func (g *Generator) channel() int {
	if g.rng == nil {
		return rand.IntN(256)
	}
	return g.rng.IntN(256)
}

// Random returns a color with each channel drawn uniformly from [0, 255].
func (g *Generator) Random() (colormodel.Color, error) {
	rgb := colormodel.RGB{R: g.channel(), G: g.channel(), B: g.channel()}
	return colormodel.NewColor(rgb)
}

// RandomN returns opts.Count independent random colors.
func (g *Generator) RandomN(opts Options) ([]colormodel.Color, error) {
	count, err := opts.count(DefaultRandomCount)
	if err != nil {
		return nil, err
	}

	colors := make([]colormodel.Color, 0, count)
	for i := 0; i < count; i++ {
		c, err := g.Random()
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// Random returns a uniformly random color from the process-wide source.
func Random() (colormodel.Color, error) {
	return New(nil).Random()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
