package config

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/gruppe-adler/gps-overlay/internal/sink"
	"github.com/gruppe-adler/gps-overlay/internal/utils"
)

// MaxMapSize bounds the canvas edge length; a canvas holds 4 bytes per pixel.
const MaxMapSize = 1 << 16

// Validate checks that cfg can be rendered. It does not require the input
// file to exist; a missing input is reported when the run opens it.
func Validate(cfg Config) error {
	if cfg.Input == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalid)
	}
	if utils.IsDirectory(cfg.Input) {
		return fmt.Errorf("%w: input %s is a directory", ErrInvalid, cfg.Input)
	}

	if cfg.MapSize <= 0 || cfg.MapSize > MaxMapSize {
		return fmt.Errorf("%w: map size %d not in [1, %d]", ErrInvalid, cfg.MapSize, MaxMapSize)
	}

	if math.IsNaN(cfg.DotSize) || cfg.DotSize < 0 || cfg.DotSize > float64(cfg.MapSize) {
		return fmt.Errorf("%w: dot size %v not in [0, %d]", ErrInvalid, cfg.DotSize, cfg.MapSize)
	}

	if cfg.Mode == FixedRange {
		if math.IsNaN(cfg.ZMin) || math.IsInf(cfg.ZMin, 0) || math.IsNaN(cfg.ZMax) || math.IsInf(cfg.ZMax, 0) {
			return fmt.Errorf("%w: zMin and zMax must be finite", ErrInvalid)
		}
		if cfg.ZMin > cfg.ZMax {
			return fmt.Errorf("%w: zMin %v is greater than zMax %v", ErrInvalid, cfg.ZMin, cfg.ZMax)
		}
	}

	if cfg.Gradient == nil {
		return fmt.Errorf("%w: no color stops", ErrInvalid)
	}

	if _, err := sink.EncoderFor(cfg.Output); err != nil {
		return fmt.Errorf("%w: output %s: %w", ErrInvalid, cfg.Output, err)
	}

	for _, size := range cfg.Previews {
		if size == 0 {
			return fmt.Errorf("%w: preview size must be positive", ErrInvalid)
		}
	}

	// make sure every output lands in an existing directory
	for _, path := range []string{cfg.Output, cfg.Metadata, cfg.Metrics} {
		if path == "" {
			continue
		}
		if dir := filepath.Dir(path); !utils.IsDirectory(dir) {
			return fmt.Errorf("%w: output directory %s does not exist", ErrInvalid, dir)
		}
	}

	return nil
}
