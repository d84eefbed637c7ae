package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"regexp"

	"github.com/gogpu/gg"
)

var hexColorRx = regexp.MustCompile(`^#?(?:[0-9A-Fa-f]{3,4}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// ParseColor parses #rgb, #rgba, #rrggbb or #rrggbbaa; the # is optional.
func ParseColor(s string) (color.NRGBA, error) {
	if !hexColorRx.MatchString(s) {
		return color.NRGBA{}, fmt.Errorf("%w: bad color %q", ErrInvalid, s)
	}
	c := gg.Hex(s)
	return color.NRGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: uint8(c.A * 255),
	}, nil
}

// Color is a color.NRGBA read from JSON as a hex string or as an
// [r, g, b] or [r, g, b, a] array.
type Color color.NRGBA

func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseColor(s)
		if err != nil {
			return err
		}
		*c = Color(parsed)
		return nil
	}

	var channels []int
	if err := json.Unmarshal(data, &channels); err != nil {
		return fmt.Errorf("%w: color must be a hex string or an array of 3 or 4 values in [0, 255]: %s", ErrInvalid, data)
	}
	if len(channels) != 3 && len(channels) != 4 {
		return fmt.Errorf("%w: color array needs 3 or 4 values, got %d", ErrInvalid, len(channels))
	}
	rgba := [4]uint8{3: 255}
	for i, v := range channels {
		if v < 0 || v > 255 {
			return fmt.Errorf("%w: color channel %d out of range", ErrInvalid, v)
		}
		rgba[i] = uint8(v)
	}
	*c = Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}
