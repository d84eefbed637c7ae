package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gruppe-adler/gps-overlay/internal/overlay"
	"github.com/gruppe-adler/gps-overlay/internal/scan"
)

type command struct {
	name    string
	summary string
	run     func(*flag.FlagSet)
}

var commands []command

func init() {
	commands = []command{
		{"overlay", "Render the points of a x,y[,z] file as colored dots on a transparent image", overlay.Run},
		{"scan", "Report elevation range, extent and skipped lines of a x,y,z file", scan.Run},
		{"help", "Show this help", func(*flag.FlagSet) { usage(os.Stdout) }},
	}
}

func usage(w io.Writer) {
	name := filepath.Base(os.Args[0])

	fmt.Fprintf(w, "Usage: %s <command> [flags]\n\nCommands:\n", name)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  %s overlay -in gps.txt.gz -out map_overlay.png -size 10240\n", name)
	fmt.Fprintf(w, "  %s overlay -in gps.txt -color '#ff000080' -dot 3\n", name)
	fmt.Fprintf(w, "  %s scan -in gps.txt\n", name)
	fmt.Fprintf(w, "\nRun '%s <command> -h' to list the flags of a command.\n", name)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "error: missing command")
		usage(os.Stderr)
		os.Exit(2)
	}

	name := os.Args[1]
	for _, c := range commands {
		if c.name == name {
			c.run(flag.NewFlagSet(name, flag.ExitOnError))
			return
		}
	}

	fmt.Fprintf(os.Stderr, "error: unknown command %q\n", name)
	usage(os.Stderr)
	os.Exit(2)
}
