package record

import (
	"math"
	"strconv"
	"strings"
)

// Delimiter separates the fields of an input line.
const Delimiter = ","

// Point is one parsed input record.
type Point struct {
	X    float64
	Y    float64
	Z    float64
	HasZ bool
}

// Status tells whether a line produced a Point.
type Status int

const (
	Parsed Status = iota
	Skipped
)

// SkipReason says why a line was skipped.
type SkipReason string

const (
	ReasonNone         SkipReason = ""
	ReasonBlank        SkipReason = "blank"
	ReasonTooFewFields SkipReason = "too_few_fields"
	ReasonNotANumber   SkipReason = "not_a_number"
	ReasonTooLong      SkipReason = "too_long"
)

// Result is the outcome of parsing a single line. Point is only meaningful
// when Status is Parsed.
type Result struct {
	Status Status
	Point  Point
	Reason SkipReason
}

// OK reports whether r holds a Point.
func (r Result) OK() bool {
	return r.Status == Parsed
}

func skip(reason SkipReason) Result {
	return Result{Status: Skipped, Reason: reason}
}

// ParseLine parses "x,y[,z[,...]]". With requireZ set, lines without a
// numeric third field are skipped. Without it, a third field is used as z
// when it parses and ignored otherwise. Fields after the third are always
// ignored. ParseLine never fails: bad input yields a Skipped result.
func ParseLine(line string, requireZ bool) Result {
	line = strings.TrimSpace(line)
	if line == "" {
		return skip(ReasonBlank)
	}

	fields := strings.Split(line, Delimiter)

	required := 2
	if requireZ {
		required = 3
	}
	if len(fields) < required {
		return skip(ReasonTooFewFields)
	}

	x, ok := parseField(fields[0])
	if !ok {
		return skip(ReasonNotANumber)
	}
	y, ok := parseField(fields[1])
	if !ok {
		return skip(ReasonNotANumber)
	}
	point := Point{X: x, Y: y}

	if len(fields) >= 3 {
		z, ok := parseField(fields[2])
		switch {
		case ok:
			point.Z = z
			point.HasZ = true
		case requireZ:
			return skip(ReasonNotANumber)
		}
	}

	return Result{Status: Parsed, Point: point}
}

// parseField parses a single trimmed field. NaN and infinities are rejected
// since they can be neither placed nor colored.
func parseField(field string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
