package gradient_test

import (
	"errors"
	"image/color"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/gruppe-adler/gps-overlay/internal/gradient"
)

var (
	blue = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	red  = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		name  string
		stops []gradient.Stop
		ok    bool
	}{
		{
			name:  "two_stops",
			stops: []gradient.Stop{{Position: 0, Color: blue}, {Position: 1, Color: red}},
			ok:    true,
		},
		{
			name:  "default_table",
			stops: gradient.Default.Stops(),
			ok:    true,
		},
		{
			name: "empty",
		},
		{
			name:  "single_stop",
			stops: []gradient.Stop{{Position: 0, Color: blue}},
		},
		{
			name:  "gap_at_start",
			stops: []gradient.Stop{{Position: 0.1, Color: blue}, {Position: 1, Color: red}},
		},
		{
			name:  "gap_at_end",
			stops: []gradient.Stop{{Position: 0, Color: blue}, {Position: 0.9, Color: red}},
		},
		{
			name:  "out_of_order",
			stops: []gradient.Stop{{Position: 0, Color: blue}, {Position: 0.6, Color: red}, {Position: 0.4, Color: blue}, {Position: 1, Color: red}},
		},
		{
			name:  "duplicate_position",
			stops: []gradient.Stop{{Position: 0, Color: blue}, {Position: 0.5, Color: red}, {Position: 0.5, Color: blue}, {Position: 1, Color: red}},
		},
		{
			name:  "nan_position",
			stops: []gradient.Stop{{Position: 0, Color: blue}, {Position: math.NaN(), Color: red}, {Position: 1, Color: red}},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gradient.New(tc.stops)
			if tc.ok {
				assert.NoError(t, err)
				assert.Equal(t, tc.stops, g.Stops())
			} else {
				assert.True(t, errors.Is(err, gradient.ErrInvalidStops))
				assert.True(t, g == nil)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	for _, tc := range []struct {
		z, min, max float64
		expected    float64
	}{
		{z: 500, min: 500, max: 1800, expected: 0},
		{z: 1800, min: 500, max: 1800, expected: 1},
		{z: 1150, min: 500, max: 1800, expected: 0.5},
		{z: 100, min: 500, max: 1800, expected: 0},
		{z: 9000, min: 500, max: 1800, expected: 1},
		{z: 42, min: 7, max: 7, expected: 0.5},
		{z: -1e9, min: 7, max: 7, expected: 0.5},
	} {
		assert.Equal(t, tc.expected, gradient.Normalize(tc.z, tc.min, tc.max))
	}

	assert.True(t, math.Abs(gradient.Normalize(1000, 500, 1800)-0.385) < 0.001)
}

func TestColorForEndpoints(t *testing.T) {
	stops := gradient.Default.Stops()
	first, last := stops[0].Color, stops[len(stops)-1].Color

	assert.Equal(t, first, gradient.Default.ColorFor(500, 500, 1800))
	assert.Equal(t, last, gradient.Default.ColorFor(1800, 500, 1800))
	assert.Equal(t, uint8(255), gradient.Default.ColorFor(500, 500, 1800).A)
	assert.Equal(t, uint8(255), gradient.Default.ColorFor(1800, 500, 1800).A)

	// Out of range values clamp to the endpoints.
	assert.Equal(t, first, gradient.Default.ColorFor(-1e6, 500, 1800))
	assert.Equal(t, last, gradient.Default.ColorFor(1e6, 500, 1800))
}

func TestColorForDegenerateRange(t *testing.T) {
	mid := gradient.Default.At(0.5)
	assert.Equal(t, color.NRGBA{R: 0, G: 153, B: 51, A: 255}, mid)
	for _, z := range []float64{-1000, 0, 1000, 1e12} {
		assert.Equal(t, mid, gradient.Default.ColorFor(z, 1000, 1000))
	}
}

func TestColorForInterpolates(t *testing.T) {
	g := gradient.MustNew([]gradient.Stop{{Position: 0, Color: blue}, {Position: 1, Color: red}})
	assert.Equal(t, color.NRGBA{R: 128, G: 0, B: 128, A: 255}, g.ColorFor(150, 100, 200))
	assert.Equal(t, color.NRGBA{R: 64, G: 0, B: 191, A: 255}, g.ColorFor(125, 100, 200))
}

func TestColorForStaysWithinBracket(t *testing.T) {
	stops := gradient.Default.Stops()
	r := rand.New(rand.NewPCG(1, 2))
	const min, max = 500.0, 1800.0
	for range 10000 {
		z := min + r.Float64()*(max-min)
		c := gradient.Default.ColorFor(z, min, max)
		assert.Equal(t, uint8(255), c.A)

		pos := gradient.Normalize(z, min, max)
		var lo, hi gradient.Stop
		for i := 0; i < len(stops)-1; i++ {
			if stops[i].Position <= pos && pos <= stops[i+1].Position {
				lo, hi = stops[i], stops[i+1]
				break
			}
		}
		assertBetween(t, c.R, lo.Color.R, hi.Color.R)
		assertBetween(t, c.G, lo.Color.G, hi.Color.G)
		assertBetween(t, c.B, lo.Color.B, hi.Color.B)
	}
}

func assertBetween(t *testing.T, v, a, b uint8) {
	t.Helper()
	assert.True(t, min(a, b) <= v && v <= max(a, b), "%d not within [%d, %d]", v, min(a, b), max(a, b))
}
