package raster

import (
	"io"
	"log/slog"
	"math"

	"github.com/gruppe-adler/gps-overlay/internal/metrics"
	"github.com/gruppe-adler/gps-overlay/internal/record"
)

// Result summarises a drawing pass.
type Result struct {
	Drawn     int
	Skipped   int
	SkippedBy map[record.SkipReason]int
	Blank     int // Blank lines, ignored and not counted as skipped.
}

// A Rasterizer paints points onto a Canvas.
type Rasterizer struct {
	Canvas   *Canvas
	DotSize  float64 // Disc diameter in pixels; <= 1 draws single pixels.
	Resolver Resolver
	RequireZ bool // Skip lines without an elevation.
	Metrics  *metrics.Metrics
}

// Transform maps world coordinates, with the origin at the bottom left, to
// image coordinates on a mapSize canvas, with the origin at the top left.
// Coordinates are not clamped.
func Transform(x, y float64, mapSize int) (float64, float64) {
	return x, float64(mapSize) - y
}

// Draw paints one dot per parseable line of in. Malformed lines are skipped
// and counted, blank lines are ignored. Only read errors are returned.
func (r *Rasterizer) Draw(in io.Reader) (Result, error) {
	result := Result{
		SkippedBy: make(map[record.SkipReason]int),
	}
	logger := Logger()

	reader := record.NewReader(in, r.RequireZ)
	for reader.Next() {
		parsed := reader.Result()
		switch {
		case parsed.Reason == record.ReasonBlank:
			result.Blank++
			continue
		case !parsed.OK():
			result.Skipped++
			result.SkippedBy[parsed.Reason]++
			r.Metrics.Skipped("draw", string(parsed.Reason))
			logger.Debug("skipping line",
				slog.Int("line", reader.Line()),
				slog.String("reason", string(parsed.Reason)),
				slog.String("text", reader.Text()))
			continue
		}
		r.DrawPoint(parsed.Point)
		result.Drawn++
		r.Metrics.Drawn()
	}
	return result, reader.Err()
}

// DrawPoint paints a single point.
func (r *Rasterizer) DrawPoint(p record.Point) {
	size := r.Canvas.Size()
	ix, iy := Transform(p.X, p.Y, size)
	col := r.Resolver.ColorFor(p.Z)

	if r.DotSize > 1 {
		r.Canvas.FillDisc(ix, iy, r.DotSize, col)
		return
	}

	x, y := math.Floor(ix), math.Floor(iy)
	if x < 0 || x >= float64(size) || y < 0 || y >= float64(size) {
		return
	}
	r.Canvas.SetPixel(int(x), int(y), col)
}
