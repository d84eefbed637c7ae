package sink

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Stop is a color stop as written to the metadata file.
type Stop struct {
	Position float64 `json:"position"`
	Color    string  `json:"color"`
}

// Metadata describes a rendered overlay.
type Metadata struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	Size        int               `json:"size"`
	DotSize     float64           `json:"dotSize"`
	Mode        string            `json:"mode"`
	Color       string            `json:"color,omitempty"`
	ZMin        *float64          `json:"zMin,omitempty"`
	ZMax        *float64          `json:"zMax,omitempty"`
	ColorStops  []Stop            `json:"colorStops,omitempty"`
	Drawn       int               `json:"drawn"`
	Skipped     int               `json:"skipped"`
	Extent      *geojson.Geometry `json:"extent,omitempty"`
	Previews    []string          `json:"previews,omitempty"`
}

// HexColor formats c as #rrggbbaa, or #rrggbb when opaque.
func HexColor(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Extent returns bound as a GeoJSON polygon in world coordinates.
func Extent(bound orb.Bound) *geojson.Geometry {
	return geojson.NewGeometry(bound.ToPolygon())
}

// WriteMetadata writes meta as indented JSON to path.
func WriteMetadata(path string, meta Metadata) error {
	data, err := json.MarshalIndent(meta, "", "    ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o666); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
