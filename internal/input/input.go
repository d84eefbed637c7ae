package input

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ErrMissingInput is returned when the input file does not exist.
var ErrMissingInput = errors.New("input file not found")

// missingInputError matches both ErrMissingInput and fs.ErrNotExist.
type missingInputError struct {
	err error
}

func (e *missingInputError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingInput, e.err)
}

func (e *missingInputError) Is(target error) bool {
	return target == ErrMissingInput
}

func (e *missingInputError) Unwrap() error {
	return e.err
}

// Open opens the point file at path. Files ending in .gz are decompressed
// transparently.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &missingInputError{err: err}
	} else if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(strings.ToLower(path), ".gz") {
		return file, nil
	}

	gz, err := gzip.NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &gzipFile{Reader: gz, file: file}, nil
}

// gzipFile closes both the gzip stream and the underlying file.
type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (f *gzipFile) Close() error {
	return errors.Join(f.Reader.Close(), f.file.Close())
}
