package scan

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gruppe-adler/gps-overlay/internal/record"
)

// Run is the entrypoint of the scan subcommand.
func Run(flagSet *flag.FlagSet) {
	start := time.Now()

	inputPtr := flagSet.String("in", "gps.txt", "Path to point file (x,y,z per line, optionally .gz)")

	flagSet.Parse(os.Args[2:])

	if *inputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	fmt.Printf("▶️  Scanning %s for elevation range\n", *inputPtr)

	var scanner Scanner
	stats, err := scanner.ScanFile(*inputPtr)
	if err != nil {
		log.Fatal(err)
	}

	p := message.NewPrinter(language.English)
	fmt.Println("✔️  Scanned input in", time.Since(start).String())
	fmt.Printf("ℹ️  Z-Range: Min=%v, Max=%v\n", stats.Range.Min, stats.Range.Max)
	p.Printf("ℹ️  Records: %d, skipped lines: %d, blank lines: %d\n", stats.Records, stats.Skipped, stats.Blank)

	reasons := make([]string, 0, len(stats.SkippedBy))
	for reason := range stats.SkippedBy {
		reasons = append(reasons, string(reason))
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		p.Printf("    %-16s %d\n", reason, stats.SkippedBy[record.SkipReason(reason)])
	}

	fmt.Printf("ℹ️  Extent: x=[%v, %v] y=[%v, %v]\n",
		stats.Bound.Min.X(), stats.Bound.Max.X(),
		stats.Bound.Min.Y(), stats.Bound.Max.Y())
}
