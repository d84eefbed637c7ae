package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Flags are the command line options of the overlay subcommand.
type Flags struct {
	flagSet    *flag.FlagSet
	configPath *string
	input      *string
	output     *string
	mapSize    *int
	dotSize    *float64
	dotColor   *string
	zMin       *float64
	zMax       *float64
	previews   *string
	metadata   *string
	metrics    *string
	verbose    *bool
}

// RegisterFlags defines the overlay options on flagSet.
func RegisterFlags(flagSet *flag.FlagSet) *Flags {
	return &Flags{
		flagSet:    flagSet,
		configPath: flagSet.String("config", "", "Path to JSON config file"),
		input:      flagSet.String("in", DefaultInput, "Path to point file (x,y[,z] per line, optionally .gz)"),
		output:     flagSet.String("out", DefaultOutput, "Path to output image (.png, .tif or .tiff)"),
		mapSize:    flagSet.Int("size", DefaultMapSize, "Edge length of the square output image in pixels"),
		dotSize:    flagSet.Float64("dot", DefaultDotSize, "Dot diameter in pixels, 1 or less draws single pixels"),
		dotColor:   flagSet.String("color", "", "Paint every dot in this color (#rrggbb[aa]) instead of a gradient"),
		zMin:       flagSet.Float64("zmin", 0, "Fixed lower bound of the elevation range (requires -zmax)"),
		zMax:       flagSet.Float64("zmax", 0, "Fixed upper bound of the elevation range (requires -zmin)"),
		previews:   flagSet.String("previews", "", "Comma separated preview sizes, e.g. 256,512,1024"),
		metadata:   flagSet.String("meta", "", "Path to write a JSON metadata file to"),
		metrics:    flagSet.String("metrics", "", "Path to write Prometheus metrics to"),
		verbose:    flagSet.Bool("v", false, "Log skipped lines"),
	}
}

// Config merges the config file named by -config, if any, with the flags
// set explicitly on the command line and resolves the result.
func (f *Flags) Config() (Config, error) {
	var file File
	if *f.configPath != "" {
		var err error
		if file, err = Load(*f.configPath); err != nil {
			return Config{}, err
		}
	}

	var err error
	set := make(map[string]bool)
	f.flagSet.Visit(func(fl *flag.Flag) {
		set[fl.Name] = true
		switch fl.Name {
		case "in":
			file.Input = f.input
		case "out":
			file.Output = f.output
		case "size":
			file.MapSize = f.mapSize
		case "dot":
			file.DotSize = f.dotSize
		case "color":
			c, parseErr := ParseColor(*f.dotColor)
			if parseErr != nil {
				err = parseErr
				return
			}
			file.DotColor = (*Color)(&c)
		case "zmin":
			file.ZMin = f.zMin
		case "zmax":
			file.ZMax = f.zMax
		case "previews":
			sizes, parseErr := parseSizes(*f.previews)
			if parseErr != nil {
				err = parseErr
				return
			}
			file.Previews = sizes
		case "meta":
			file.Metadata = f.metadata
		case "metrics":
			file.Metrics = f.metrics
		}
	})
	if err != nil {
		return Config{}, err
	}

	// A color mode chosen on the command line replaces the file's.
	rangeSet := set["zmin"] || set["zmax"]
	if set["color"] && !rangeSet {
		file.ZMin, file.ZMax = nil, nil
	}
	if rangeSet && !set["color"] {
		file.DotColor = nil
	}

	cfg, err := file.Resolve()
	if err != nil {
		return Config{}, err
	}
	cfg.Verbose = *f.verbose
	return cfg, nil
}

func parseSizes(s string) ([]uint, error) {
	var sizes []uint
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		size, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad preview size %q", ErrInvalid, field)
		}
		sizes = append(sizes, uint(size))
	}
	return sizes, nil
}
