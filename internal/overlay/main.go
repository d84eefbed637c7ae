package overlay

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gruppe-adler/gps-overlay/internal/config"
	"github.com/gruppe-adler/gps-overlay/internal/raster"
)

// Run is the entrypoint of the overlay subcommand.
func Run(flagSet *flag.FlagSet) {
	start := time.Now()

	flags := config.RegisterFlags(flagSet)

	flagSet.Parse(os.Args[2:])

	cfg, err := flags.Config()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("✔️  Validated configuration")

	if cfg.Verbose {
		enableDebugLog(os.Stderr)
	}

	if _, err := Render(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\n    🎉  Finished in %s\n", time.Since(start).String())
}

// enableDebugLog sends per-line diagnostics of the drawing pass to w.
func enableDebugLog(w io.Writer) {
	raster.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
}
