package overlay

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gruppe-adler/gps-overlay/internal/config"
	"github.com/gruppe-adler/gps-overlay/internal/input"
	"github.com/gruppe-adler/gps-overlay/internal/metrics"
	"github.com/gruppe-adler/gps-overlay/internal/raster"
	"github.com/gruppe-adler/gps-overlay/internal/scan"
	"github.com/gruppe-adler/gps-overlay/internal/sink"
)

// Result summarises a render.
type Result struct {
	Drawn    int
	Skipped  int
	Range    *scan.Range // Nil in FixedColor mode.
	Stats    *scan.Stats // Set in DynamicRange mode only.
	Previews []string
}

// Render runs the whole pipeline for cfg: an optional range scan, the
// drawing pass and the final encode, followed by previews, metadata and
// metrics when configured. Progress is printed to progress. Nothing is
// written if the input is missing or has no usable records.
func Render(cfg config.Config, progress io.Writer) (Result, error) {
	var result Result
	var timer time.Time
	p := message.NewPrinter(language.English)

	var m *metrics.Metrics
	if cfg.Metrics != "" {
		m = metrics.New()
	}

	// resolve point colors, scanning the input first if needed
	var resolver raster.Resolver
	switch cfg.Mode {
	case config.FixedColor:
		resolver = raster.FixedColor{Color: cfg.DotColor}
		fmt.Fprintf(progress, "ℹ️  Using fixed color %s\n", sink.HexColor(cfg.DotColor))
	case config.FixedRange:
		result.Range = &scan.Range{Min: cfg.ZMin, Max: cfg.ZMax}
		fmt.Fprintf(progress, "ℹ️  Using fixed Z-Range: Min=%v, Max=%v\n", cfg.ZMin, cfg.ZMax)
	case config.DynamicRange:
		timer = time.Now()
		fmt.Fprintf(progress, "▶️  Scanning %s for elevation range\n", cfg.Input)
		scanner := scan.Scanner{Metrics: m}
		stats, err := scanner.ScanFile(cfg.Input)
		if err != nil {
			return result, err
		}
		result.Stats = &stats
		result.Range = &stats.Range
		fmt.Fprintln(progress, "✔️  Scanned input in", time.Since(timer).String())
		fmt.Fprintf(progress, "ℹ️  Detected Z-Range: Min=%v, Max=%v\n", stats.Range.Min, stats.Range.Max)
	default:
		return result, fmt.Errorf("%w: unknown mode %v", config.ErrInvalid, cfg.Mode)
	}
	if result.Range != nil {
		rangeResolver, err := raster.NewRangeResolver(cfg.Gradient, *result.Range, 0)
		if err != nil {
			return result, err
		}
		resolver = rangeResolver
		m.Range(result.Range.Min, result.Range.Max)
	}

	in, err := input.Open(cfg.Input)
	if err != nil {
		return result, err
	}
	defer in.Close()

	// draw points
	timer = time.Now()
	fmt.Fprintln(progress, "▶️  Drawing points")
	canvas := raster.NewCanvas(cfg.MapSize)
	rasterizer := raster.Rasterizer{
		Canvas:   canvas,
		DotSize:  cfg.DotSize,
		Resolver: resolver,
		RequireZ: cfg.Mode != config.FixedColor,
		Metrics:  m,
	}
	drawn, err := rasterizer.Draw(in)
	if err != nil {
		return result, fmt.Errorf("%s: %w", cfg.Input, err)
	}
	result.Drawn = drawn.Drawn
	result.Skipped = drawn.Skipped
	if drawn.Drawn == 0 {
		return result, fmt.Errorf("%s: %w", cfg.Input, scan.ErrEmptyDataset)
	}
	p.Fprintf(progress, "✔️  Drew %d points (%d lines skipped, %d blank) in %s\n", drawn.Drawn, drawn.Skipped, drawn.Blank, time.Since(timer).String())

	// write image
	timer = time.Now()
	p.Fprintf(progress, "▶️  Saving %d points to %s\n", drawn.Drawn, cfg.Output)
	img := canvas.Image()
	if err := sink.Write(cfg.Output, img); err != nil {
		return result, err
	}
	fmt.Fprintln(progress, "✔️  Saved image in", time.Since(timer).String())

	if len(cfg.Previews) > 0 {
		timer = time.Now()
		fmt.Fprintln(progress, "▶️  Building previews")
		base := strings.TrimSuffix(filepath.Base(cfg.Output), filepath.Ext(cfg.Output))
		result.Previews, err = sink.WritePreviews(filepath.Dir(cfg.Output), base, img, cfg.Previews)
		if err != nil {
			return result, err
		}
		fmt.Fprintln(progress, "✔️  Built previews in", time.Since(timer).String())
	}

	if cfg.Metadata != "" {
		if err := sink.WriteMetadata(cfg.Metadata, metadata(cfg, result)); err != nil {
			return result, err
		}
		fmt.Fprintln(progress, "✔️  Wrote", cfg.Metadata)
	}

	if cfg.Metrics != "" {
		if err := m.WriteTextfile(cfg.Metrics); err != nil {
			return result, err
		}
		fmt.Fprintln(progress, "✔️  Wrote", cfg.Metrics)
	}

	return result, nil
}

func metadata(cfg config.Config, result Result) sink.Metadata {
	meta := sink.Metadata{
		Name:        strings.TrimSuffix(filepath.Base(cfg.Output), filepath.Ext(cfg.Output)),
		Description: fmt.Sprintf("Point overlay of %s", filepath.Base(cfg.Input)),
		Image:       filepath.Base(cfg.Output),
		Size:        cfg.MapSize,
		DotSize:     cfg.DotSize,
		Mode:        cfg.Mode.String(),
		Drawn:       result.Drawn,
		Skipped:     result.Skipped,
	}
	for _, preview := range result.Previews {
		meta.Previews = append(meta.Previews, filepath.Base(preview))
	}

	if cfg.Mode == config.FixedColor {
		meta.Color = sink.HexColor(cfg.DotColor)
		return meta
	}

	zMin, zMax := result.Range.Min, result.Range.Max
	meta.ZMin, meta.ZMax = &zMin, &zMax
	for _, stop := range cfg.Gradient.Stops() {
		meta.ColorStops = append(meta.ColorStops, sink.Stop{
			Position: stop.Position,
			Color:    sink.HexColor(stop.Color),
		})
	}
	if result.Stats != nil {
		meta.Extent = sink.Extent(result.Stats.Bound)
	}
	return meta
}
