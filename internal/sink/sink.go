package sink

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for output paths with an unknown
// extension.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// A WriteError reports a failure to write an output file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %s", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// An Encoder writes an image to w.
type Encoder func(w io.Writer, img image.Image) error

var pngEncoder = &png.Encoder{CompressionLevel: png.BestCompression}

// EncoderFor returns the lossless encoder matching path's extension: PNG
// for .png, deflate-compressed TIFF for .tif and .tiff.
func EncoderFor(path string) (Encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return pngEncoder.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{
				Compression: tiff.Deflate,
				Predictor:   true,
			})
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Write encodes img to path. Alpha is stored exactly as in img.
func Write(path string, img image.Image) error {
	encode, err := EncoderFor(path)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if err := encode(out, img); err != nil {
		_ = out.Close()
		return &WriteError{Path: path, Err: err}
	}

	if err := out.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
