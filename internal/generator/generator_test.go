package generator

import (
	"regexp"
	"sync"
	"testing"

	"github.com/MeKo-Tech/colorpicker/internal/colormodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestPalette_Gray(t *testing.T) {
	base, err := colormodel.HexToRGB("#808080")
	require.NoError(t, err)

	palette, err := Palette(base, Options{Count: 3})
	require.NoError(t, err)
	require.Len(t, palette, 3)

	wantL := []int{35, 45, 55}
	wantHex := []string{"#595959", "#737373", "#8c8c8c"}
	for i, c := range palette {
		assert.Equal(t, 0, c.HSL.H, "entry %d hue", i)
		assert.Equal(t, 0, c.HSL.S, "entry %d saturation", i)
		assert.Equal(t, wantL[i], c.HSL.L, "entry %d lightness", i)
		assert.Equal(t, wantHex[i], c.Hex, "entry %d hex", i)
		assert.Equal(t, c.RGB.R, c.RGB.G, "entry %d stays gray", i)
		assert.Equal(t, c.RGB.G, c.RGB.B, "entry %d stays gray", i)
	}
}

func TestPalette_DefaultCount(t *testing.T) {
	palette, err := Palette(colormodel.RGB{R: 255, G: 0, B: 0}, Options{})
	require.NoError(t, err)
	require.Len(t, palette, DefaultPaletteCount)

	// Base lightness 50 sits at index count/2.
	for i, c := range palette {
		assert.Equal(t, i*LightnessStep, c.HSL.L, "entry %d", i)
		assert.Equal(t, 0, c.HSL.H)
		assert.Equal(t, 100, c.HSL.S)
	}
	assert.Equal(t, "#000000", palette[0].Hex)
	assert.Equal(t, "#ff0000", palette[5].Hex)
}

func TestPalette_Clamps(t *testing.T) {
	palette, err := Palette(colormodel.RGB{R: 255, G: 255, B: 255}, Options{Count: 10})
	require.NoError(t, err)

	for i, c := range palette {
		require.GreaterOrEqual(t, c.HSL.L, 0)
		require.LessOrEqual(t, c.HSL.L, 100)
		if i >= 5 {
			assert.Equal(t, 100, c.HSL.L, "entry %d", i)
			assert.Equal(t, "#ffffff", c.Hex, "entry %d", i)
		}
	}

	palette, err = Palette(colormodel.RGB{}, Options{Count: 4})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 10}, lightness(palette))
}

func TestPalette_SingleEntry(t *testing.T) {
	palette, err := Palette(colormodel.RGB{R: 128, G: 128, B: 128}, Options{Count: 1})
	require.NoError(t, err)
	require.Len(t, palette, 1)
	assert.Equal(t, 45, palette[0].HSL.L)
}

func TestPalette_KeepsBaseSaturation(t *testing.T) {
	base := colormodel.RGB{R: 2, G: 228, B: 230}
	palette, err := Palette(base, Options{Count: 6})
	require.NoError(t, err)

	for _, c := range palette {
		assert.Equal(t, 181, c.HSL.H)
		assert.Equal(t, 98, c.HSL.S)
		assert.Regexp(t, hexPattern, c.Hex)
	}
	assert.IsIncreasing(t, lightness(palette))
}

func TestPalette_Errors(t *testing.T) {
	_, err := Palette(colormodel.RGB{R: 1, G: 2, B: 3}, Options{Count: -1})
	require.ErrorIs(t, err, ErrInvalidCount)

	_, err = Palette(colormodel.RGB{R: 300}, Options{Count: 2})
	require.ErrorIs(t, err, colormodel.ErrOutOfRange)
}

func TestRandom_InRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		c, err := Random()
		require.NoError(t, err)
		require.NoError(t, c.RGB.Validate())
		require.Regexp(t, hexPattern, c.Hex)

		want, err := colormodel.NewColor(c.RGB)
		require.NoError(t, err)
		require.Equal(t, want, c)
	}
}

func TestGenerator_Seeded(t *testing.T) {
	a, err := NewSeeded(42).RandomN(Options{Count: 20})
	require.NoError(t, err)
	b, err := NewSeeded(42).RandomN(Options{Count: 20})
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := NewSeeded(43).RandomN(Options{Count: 20})
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerator_RandomN(t *testing.T) {
	g := New(nil)

	colors, err := g.RandomN(Options{})
	require.NoError(t, err)
	assert.Len(t, colors, DefaultRandomCount)

	colors, err = g.RandomN(Options{Count: 7})
	require.NoError(t, err)
	assert.Len(t, colors, 7)

	_, err = g.RandomN(Options{Count: -3})
	require.ErrorIs(t, err, ErrInvalidCount)
}

func TestRandom_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if _, err := Random(); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func lightness(colors []colormodel.Color) []int {
	out := make([]int, len(colors))
	for i, c := range colors {
		out[i] = c.HSL.L
	}
	return out
}
