package gradient

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidStops is returned for stop tables that cannot be interpolated.
var ErrInvalidStops = errors.New("invalid color stops")

// A Stop anchors a color at a position in [0, 1].
type Stop struct {
	Position float64
	Color    color.NRGBA
}

// A Gradient is a validated, immutable piecewise-linear color ramp.
type Gradient struct {
	stops []Stop
}

// Default is the low-blue to high-red ramp used when no stops are configured.
var Default = MustNew([]Stop{
	{Position: 0.0, Color: color.NRGBA{R: 0, G: 51, B: 204, A: 255}},   // dark blue
	{Position: 0.25, Color: color.NRGBA{R: 204, G: 0, B: 204, A: 255}}, // purple
	{Position: 0.5, Color: color.NRGBA{R: 0, G: 153, B: 51, A: 255}},   // green
	{Position: 0.75, Color: color.NRGBA{R: 255, G: 165, B: 0, A: 255}}, // orange
	{Position: 1.0, Color: color.NRGBA{R: 204, G: 0, B: 0, A: 255}},    // red
})

// New returns a Gradient over stops. The table must start at 0, end at 1
// and have strictly increasing positions.
func New(stops []Stop) (*Gradient, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 stops, got %d", ErrInvalidStops, len(stops))
	}
	for i, stop := range stops {
		if math.IsNaN(stop.Position) || math.IsInf(stop.Position, 0) {
			return nil, fmt.Errorf("%w: stop %d has non-finite position", ErrInvalidStops, i)
		}
		if i > 0 && stop.Position <= stops[i-1].Position {
			return nil, fmt.Errorf("%w: stop %d at %g does not follow %g", ErrInvalidStops, i, stop.Position, stops[i-1].Position)
		}
	}
	if first := stops[0].Position; first != 0 {
		return nil, fmt.Errorf("%w: first stop at %g, expected 0", ErrInvalidStops, first)
	}
	if last := stops[len(stops)-1].Position; last != 1 {
		return nil, fmt.Errorf("%w: last stop at %g, expected 1", ErrInvalidStops, last)
	}
	return &Gradient{
		stops: append([]Stop(nil), stops...),
	}, nil
}

// MustNew is like New but panics on an invalid table.
func MustNew(stops []Stop) *Gradient {
	g, err := New(stops)
	if err != nil {
		panic(err)
	}
	return g
}

// Stops returns a copy of g's stops.
func (g *Gradient) Stops() []Stop {
	return append([]Stop(nil), g.stops...)
}

// Normalize maps z onto [0, 1] relative to [min, max]. A degenerate range
// maps everything to 0.5.
func Normalize(z, min, max float64) float64 {
	t := 0.5
	if max != min {
		t = (z - min) / (max - min)
	}
	return math.Max(0, math.Min(1, t))
}

// ColorFor returns the color of z within [min, max].
func (g *Gradient) ColorFor(z, min, max float64) color.NRGBA {
	return g.At(Normalize(z, min, max))
}

// At returns the color at position t, which is clamped to [0, 1].
func (g *Gradient) At(t float64) color.NRGBA {
	c, _ := g.lookup(math.Max(0, math.Min(1, t)))
	return c
}

// lookup interpolates within the stop pair bracketing t. If no pair
// brackets t it returns the last stop's color and false.
func (g *Gradient) lookup(t float64) (color.NRGBA, bool) {
	for i := 0; i < len(g.stops)-1; i++ {
		lo, hi := g.stops[i], g.stops[i+1]
		if lo.Position <= t && t <= hi.Position {
			local := (t - lo.Position) / (hi.Position - lo.Position)
			return color.NRGBA{
				R: lerp(lo.Color.R, hi.Color.R, local),
				G: lerp(lo.Color.G, hi.Color.G, local),
				B: lerp(lo.Color.B, hi.Color.B, local),
				A: 255,
			}, true
		}
	}
	last := g.stops[len(g.stops)-1].Color
	last.A = 255
	return last, false
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
