package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/gruppe-adler/gps-overlay/internal/gradient"
)

// ErrInvalid is returned for unusable configurations.
var ErrInvalid = errors.New("invalid configuration")

// Defaults.
const (
	DefaultInput   = "gps.txt"
	DefaultOutput  = "map_overlay.png"
	DefaultMapSize = 10240
	DefaultDotSize = 5
)

// A Mode selects how points are colored.
type Mode int

const (
	// DynamicRange colors by elevation within the range found by a scan.
	DynamicRange Mode = iota
	// FixedRange colors by elevation within a configured range.
	FixedRange
	// FixedColor paints every point in one color.
	FixedColor
)

func (m Mode) String() string {
	switch m {
	case DynamicRange:
		return "dynamic"
	case FixedRange:
		return "fixed-range"
	case FixedColor:
		return "fixed-color"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Config is the resolved configuration of a run. It is not modified after
// Resolve returns it.
type Config struct {
	Input    string
	Output   string
	MapSize  int
	DotSize  float64
	Mode     Mode
	DotColor color.NRGBA // FixedColor only.
	ZMin     float64     // FixedRange only.
	ZMax     float64     // FixedRange only.
	Gradient *gradient.Gradient
	Previews []uint
	Metadata string
	Metrics  string
	Verbose  bool
}

// Stop is a color stop in a config file.
type Stop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// File holds the settings of a JSON config file. Unset fields fall back to
// the defaults.
type File struct {
	Input      *string  `json:"input,omitempty"`
	Output     *string  `json:"output,omitempty"`
	MapSize    *int     `json:"mapSize,omitempty"`
	DotSize    *float64 `json:"dotSize,omitempty"`
	DotColor   *Color   `json:"dotColor,omitempty"`
	ZMin       *float64 `json:"zMin,omitempty"`
	ZMax       *float64 `json:"zMax,omitempty"`
	ColorStops []Stop   `json:"colorStops,omitempty"`
	Previews   []uint   `json:"previews,omitempty"`
	Metadata   *string  `json:"metadata,omitempty"`
	Metrics    *string  `json:"metrics,omitempty"`
}

// Load reads a config file.
func Load(path string) (File, error) {
	var file File

	data, err := os.ReadFile(path)
	if err != nil {
		return file, err
	}

	if err := json.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Resolve applies defaults, selects the color mode and validates the result.
func (f File) Resolve() (Config, error) {
	cfg := Config{
		Input:    valueOr(f.Input, DefaultInput),
		Output:   valueOr(f.Output, DefaultOutput),
		MapSize:  valueOr(f.MapSize, DefaultMapSize),
		DotSize:  valueOr(f.DotSize, DefaultDotSize),
		Previews: f.Previews,
		Metadata: valueOr(f.Metadata, ""),
		Metrics:  valueOr(f.Metrics, ""),
		Gradient: gradient.Default,
	}

	switch {
	case f.DotColor != nil && (f.ZMin != nil || f.ZMax != nil):
		return Config{}, fmt.Errorf("%w: dotColor and zMin/zMax are mutually exclusive", ErrInvalid)
	case f.DotColor != nil:
		cfg.Mode = FixedColor
		cfg.DotColor = color.NRGBA(*f.DotColor)
	case f.ZMin != nil && f.ZMax != nil:
		cfg.Mode = FixedRange
		cfg.ZMin, cfg.ZMax = *f.ZMin, *f.ZMax
	case f.ZMin != nil || f.ZMax != nil:
		return Config{}, fmt.Errorf("%w: zMin and zMax must be set together", ErrInvalid)
	default:
		cfg.Mode = DynamicRange
	}

	if f.ColorStops != nil {
		stops := make([]gradient.Stop, len(f.ColorStops))
		for i, stop := range f.ColorStops {
			stops[i] = gradient.Stop{Position: stop.Position, Color: color.NRGBA(stop.Color)}
		}
		g, err := gradient.New(stops)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		cfg.Gradient = g
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
