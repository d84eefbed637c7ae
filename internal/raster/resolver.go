package raster

import (
	"image/color"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gruppe-adler/gps-overlay/internal/gradient"
	"github.com/gruppe-adler/gps-overlay/internal/scan"
)

// A Resolver picks the color of a point from its elevation.
type Resolver interface {
	ColorFor(z float64) color.NRGBA
}

// FixedColor colors every point the same.
type FixedColor struct {
	Color color.NRGBA
}

func (f FixedColor) ColorFor(float64) color.NRGBA {
	return f.Color
}

const defaultColorCacheSize = 4096

// A RangeResolver colors points by their position within a fixed range.
// It serves both statically configured and scanned ranges.
type RangeResolver struct {
	gradient *gradient.Gradient
	rng      scan.Range
	cache    *lru.Cache[float64, color.NRGBA]
}

// NewRangeResolver returns a RangeResolver for g over rng. Colors are
// memoized per elevation value in an LRU of cacheSize entries; a
// non-positive cacheSize selects a default.
func NewRangeResolver(g *gradient.Gradient, rng scan.Range, cacheSize int) (*RangeResolver, error) {
	if cacheSize <= 0 {
		cacheSize = defaultColorCacheSize
	}
	cache, err := lru.New[float64, color.NRGBA](cacheSize)
	if err != nil {
		return nil, err
	}
	return &RangeResolver{
		gradient: g,
		rng:      rng,
		cache:    cache,
	}, nil
}

// Range returns r's elevation range.
func (r *RangeResolver) Range() scan.Range {
	return r.rng
}

func (r *RangeResolver) ColorFor(z float64) color.NRGBA {
	if c, ok := r.cache.Get(z); ok {
		return c
	}
	c := r.gradient.ColorFor(z, r.rng.Min, r.rng.Max)
	r.cache.Add(z, c)
	return c
}
