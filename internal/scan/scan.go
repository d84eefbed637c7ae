package scan

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/paulmach/orb"

	"github.com/gruppe-adler/gps-overlay/internal/input"
	"github.com/gruppe-adler/gps-overlay/internal/metrics"
	"github.com/gruppe-adler/gps-overlay/internal/record"
)

// ErrEmptyDataset is returned when the input holds no usable record: one
// with an elevation when scanning, any parseable one when drawing.
var ErrEmptyDataset = errors.New("no usable records found")

// A Range is a closed elevation interval.
type Range struct {
	Min float64
	Max float64
}

// Stats summarises one pass over the input.
type Stats struct {
	Range     Range
	Bound     orb.Bound // Planar extent of the parsed x,y positions.
	Records   int
	Skipped   int
	SkippedBy map[record.SkipReason]int
	Blank     int
}

// A Scanner computes Stats. The zero value is ready to use.
type Scanner struct {
	Metrics *metrics.Metrics
}

// Scan reads r to the end and returns the elevation range of every line
// carrying x, y and z. It returns ErrEmptyDataset if there is none.
func (s *Scanner) Scan(r io.Reader) (Stats, error) {
	stats := Stats{
		Range:     Range{Min: math.Inf(1), Max: math.Inf(-1)},
		SkippedBy: make(map[record.SkipReason]int),
	}

	reader := record.NewReader(r, true)
	for reader.Next() {
		result := reader.Result()
		if result.Reason == record.ReasonBlank {
			stats.Blank++
			continue
		}
		if !result.OK() {
			stats.Skipped++
			stats.SkippedBy[result.Reason]++
			s.Metrics.Skipped("scan", string(result.Reason))
			continue
		}

		p := result.Point
		stats.Range.Min = math.Min(stats.Range.Min, p.Z)
		stats.Range.Max = math.Max(stats.Range.Max, p.Z)
		pt := orb.Point{p.X, p.Y}
		if stats.Records == 0 {
			stats.Bound = pt.Bound()
		} else {
			stats.Bound = stats.Bound.Extend(pt)
		}
		stats.Records++
		s.Metrics.Scanned()
	}
	if err := reader.Err(); err != nil {
		return stats, err
	}

	if stats.Records == 0 {
		return stats, ErrEmptyDataset
	}
	return stats, nil
}

// ScanFile scans the file at path, see input.Open.
func (s *Scanner) ScanFile(path string) (Stats, error) {
	r, err := input.Open(path)
	if err != nil {
		return Stats{}, err
	}
	defer r.Close()

	stats, err := s.Scan(r)
	if err != nil {
		return stats, fmt.Errorf("%s: %w", path, err)
	}
	return stats, nil
}

// Scan is a convenience wrapper around a zero Scanner.
func Scan(r io.Reader) (Stats, error) {
	var s Scanner
	return s.Scan(r)
}
