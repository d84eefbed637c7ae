package sink

import (
	"fmt"
	"image"
	"path/filepath"
	"runtime"

	"github.com/nfnt/resize"
	"golang.org/x/sync/errgroup"
)

// WritePreviews writes a downscaled PNG of img per size into dir, named
// <base>_<size>.png, and returns their paths in the order of sizes. The
// longest edge of each preview is size pixels. img is only read.
func WritePreviews(dir, base string, img image.Image, sizes []uint) ([]string, error) {
	paths := make([]string, len(sizes))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, size := range sizes {
		paths[i] = filepath.Join(dir, fmt.Sprintf("%s_%d.png", base, size))
		g.Go(func() error {
			width, height := size, uint(0)
			if img.Bounds().Dy() > img.Bounds().Dx() {
				width, height = 0, size
			}
			preview := resize.Resize(width, height, img, resize.MitchellNetravali)
			return Write(paths[i], preview)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
