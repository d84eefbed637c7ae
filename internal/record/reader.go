package record

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
)

// MaxLineLength is the longest line, without its terminator, that is parsed.
// Longer lines are consumed and skipped as ReasonTooLong.
const MaxLineLength = 1 << 20

// A Reader reads Results line by line.
type Reader struct {
	br       *bufio.Reader
	requireZ bool
	line     int
	text     string
	result   Result
	done     bool
	err      error
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader, requireZ bool) *Reader {
	return &Reader{
		br:       bufio.NewReaderSize(r, 64*1024),
		requireZ: requireZ,
	}
}

// Next advances to the next line. It returns false at the end of input or on
// a read error, which is then available from Err.
func (r *Reader) Next() bool {
	if r.done {
		return false
	}

	line, tooLong, err := r.readLine()
	switch {
	case err == io.EOF:
		r.done = true
		if len(line) == 0 && !tooLong {
			return false
		}
	case err != nil:
		r.done = true
		r.err = err
		return false
	}

	r.line++
	if tooLong {
		r.text = ""
		r.result = skip(ReasonTooLong)
		return true
	}
	r.text = strings.TrimSuffix(string(line), "\r")
	r.result = ParseLine(r.text, r.requireZ)
	return true
}

// readLine returns the next line without its "\n". The rest of a line over
// MaxLineLength is discarded and tooLong is set.
func (r *Reader) readLine() (line []byte, tooLong bool, err error) {
	for {
		chunk, err := r.br.ReadSlice('\n')
		if !tooLong {
			line = append(line, chunk...)
			if len(bytes.TrimSuffix(line, []byte{'\n'})) > MaxLineLength {
				tooLong = true
				line = nil
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return bytes.TrimSuffix(line, []byte{'\n'}), tooLong, err
	}
}

// Result returns the parse result of the current line.
func (r *Reader) Result() Result {
	return r.result
}

// Line returns the 1-based number of the current line.
func (r *Reader) Line() int {
	return r.line
}

// Text returns the raw text of the current line. It is empty for lines
// skipped as ReasonTooLong.
func (r *Reader) Text() string {
	return r.text
}

// Err returns the first read error, if any. Malformed lines are not errors.
func (r *Reader) Err() error {
	return r.err
}
