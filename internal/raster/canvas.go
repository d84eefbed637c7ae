package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// A Canvas is a square, non-premultiplied RGBA buffer with its origin at the
// top left. It is transparent when created. A Canvas has a single writer.
type Canvas struct {
	size   int
	pixmap *gg.Pixmap
}

// NewCanvas returns a transparent size × size canvas.
func NewCanvas(size int) *Canvas {
	return &Canvas{
		size:   size,
		pixmap: gg.NewPixmap(size, size),
	}
}

// Size returns the edge length of c in pixels.
func (c *Canvas) Size() int {
	return c.size
}

// SetPixel overwrites the pixel at (x, y). Pixels outside c are ignored.
func (c *Canvas) SetPixel(x, y int, col color.NRGBA) {
	c.pixmap.SetPixel(x, y, toGG(col))
}

// At returns the pixel at (x, y), or transparent outside c.
func (c *Canvas) At(x, y int) color.NRGBA {
	if x < 0 || x >= c.size || y < 0 || y >= c.size {
		return color.NRGBA{}
	}
	i := 4 * (y*c.size + x)
	pix := c.pixmap.Data()
	return color.NRGBA{R: pix[i], G: pix[i+1], B: pix[i+2], A: pix[i+3]}
}

// FillDisc overwrites every pixel (i, j) with (i-cx)² + (j-cy)² <= r², where
// r is diameter/2. The disc is clipped to c and not anti-aliased.
func (c *Canvas) FillDisc(cx, cy, diameter float64, col color.NRGBA) {
	r := diameter / 2
	if !(r >= 0) {
		return
	}
	last := float64(c.size - 1)
	if cx+r < 0 || cx-r > last || cy+r < 0 || cy-r > last {
		return
	}
	ggCol := toGG(col)
	y0 := max(int(math.Ceil(cy-r)), 0)
	y1 := min(int(math.Floor(cy+r)), c.size-1)
	for y := y0; y <= y1; y++ {
		dy := float64(y) - cy
		half := math.Sqrt(max(r*r-dy*dy, 0))
		x0 := max(int(math.Ceil(cx-half)), 0)
		x1 := min(int(math.Floor(cx+half)), c.size-1)
		for x := x0; x <= x1; x++ {
			c.pixmap.SetPixel(x, y, ggCol)
		}
	}
}

// Image returns c as an image. The image shares c's pixels.
func (c *Canvas) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    c.pixmap.Data(),
		Stride: 4 * c.size,
		Rect:   image.Rect(0, 0, c.size, c.size),
	}
}

// toGG converts col to gg's float representation. gg stores
// uint8(v/255*255), which is exact for every 8 bit v.
func toGG(col color.NRGBA) gg.RGBA {
	return gg.RGBA{
		R: float64(col.R) / 255,
		G: float64(col.G) / 255,
		B: float64(col.B) / 255,
		A: float64(col.A) / 255,
	}
}
