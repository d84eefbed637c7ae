package scan_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/paulmach/orb"

	"github.com/gruppe-adler/gps-overlay/internal/gradient"
	"github.com/gruppe-adler/gps-overlay/internal/input"
	"github.com/gruppe-adler/gps-overlay/internal/metrics"
	"github.com/gruppe-adler/gps-overlay/internal/record"
	"github.com/gruppe-adler/gps-overlay/internal/scan"
)

func TestScan(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    string
		expected scan.Stats
	}{
		{
			name:  "dynamic_range",
			input: "10,20,1000\n30,5,500\n15,40,1800\n",
			expected: scan.Stats{
				Range:     scan.Range{Min: 500, Max: 1800},
				Bound:     orb.Bound{Min: orb.Point{10, 5}, Max: orb.Point{30, 40}},
				Records:   3,
				SkippedBy: map[record.SkipReason]int{},
			},
		},
		{
			name:  "single_record",
			input: "1,2,3",
			expected: scan.Stats{
				Range:     scan.Range{Min: 3, Max: 3},
				Bound:     orb.Bound{Min: orb.Point{1, 2}, Max: orb.Point{1, 2}},
				Records:   1,
				SkippedBy: map[record.SkipReason]int{},
			},
		},
		{
			name:  "skips_malformed",
			input: "1,2,3\nnotanumber\n\n4,5,x\n4,5,6\n7,8\n",
			expected: scan.Stats{
				Range:   scan.Range{Min: 3, Max: 6},
				Bound:   orb.Bound{Min: orb.Point{1, 2}, Max: orb.Point{4, 5}},
				Records: 2,
				Skipped: 3,
				SkippedBy: map[record.SkipReason]int{
					record.ReasonTooFewFields: 2,
					record.ReasonNotANumber:   1,
				},
				Blank: 1,
			},
		},
		{
			name:  "negative_elevations",
			input: "0,0,-12.5\n1,1,-3\n",
			expected: scan.Stats{
				Range:     scan.Range{Min: -12.5, Max: -3},
				Bound:     orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}},
				Records:   2,
				SkippedBy: map[record.SkipReason]int{},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := scan.Scan(strings.NewReader(tc.input))
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestScanMidpointPosition(t *testing.T) {
	stats, err := scan.Scan(strings.NewReader("0,0,500\n1,1,1000\n2,2,1800\n"))
	assert.NoError(t, err)
	assert.Equal(t, scan.Range{Min: 500, Max: 1800}, stats.Range)

	pos := gradient.Normalize(1000, stats.Range.Min, stats.Range.Max)
	assert.True(t, math.Abs(pos-0.385) < 0.001, "position %v", pos)
}

func TestScanTooLongLine(t *testing.T) {
	long := "1,1,99999," + strings.Repeat("x", 2*record.MaxLineLength)
	stats, err := scan.Scan(strings.NewReader("0,0,500\n" + long + "\n2,2,1800\n"))
	assert.NoError(t, err)
	assert.Equal(t, scan.Range{Min: 500, Max: 1800}, stats.Range)
	assert.Equal(t, 2, stats.Records)
	assert.Equal(t, map[record.SkipReason]int{record.ReasonTooLong: 1}, stats.SkippedBy)
}

func TestScanEmptyDataset(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "blank_lines", input: "\n \n\t\n"},
		{name: "two_fields_only", input: "1,2\n3,4\n"},
		{name: "garbage", input: "a,b,c\nnotanumber\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scan.Scan(strings.NewReader(tc.input))
			assert.True(t, errors.Is(err, scan.ErrEmptyDataset))
		})
	}
}

func TestScanFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gps.txt")
	assert.NoError(t, os.WriteFile(path, []byte("0,0,500\n100,100,1800\nbad\n"), 0o666))

	m := metrics.New()
	s := scan.Scanner{Metrics: m}
	stats, err := s.ScanFile(path)
	assert.NoError(t, err)
	assert.Equal(t, scan.Range{Min: 500, Max: 1800}, stats.Range)
	assert.Equal(t, 2, stats.Records)
	assert.Equal(t, 1, stats.Skipped)

	_, err = s.ScanFile(filepath.Join(dir, "missing.txt"))
	assert.True(t, errors.Is(err, input.ErrMissingInput))

	empty := filepath.Join(dir, "empty.txt")
	assert.NoError(t, os.WriteFile(empty, nil, 0o666))
	_, err = s.ScanFile(empty)
	assert.True(t, errors.Is(err, scan.ErrEmptyDataset))
}
