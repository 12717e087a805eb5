package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"viewfit/internal/tui"
)

const debugLog = "viewfit-debug.log"

func main() {
	opts := tui.DefaultOptions()
	mode := flag.String("mode", "fit", "projection onto the viewport: fit or stretch")
	flag.Float64Var(&opts.Zoom, "zoom", opts.Zoom, "initial zoom around the data centre")
	flag.BoolVar(&opts.InvertY, "invert-y", opts.InvertY, "treat data Y as growing upwards")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: viewfit [flags] [file.wkt|.geojson|.json|.csv|.kml]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	switch *mode {
	case "fit":
	case "stretch":
		opts.Stretch = true
	default:
		log.Fatalf("unknown -mode %q (want fit or stretch)", *mode)
	}
	if opts.Zoom <= 0 {
		log.Fatalf("-zoom must be positive, got %v", opts.Zoom)
	}

	// bubbletea owns the terminal, so logs go to a file or nowhere
	if os.Getenv("VIEWFIT_DEBUG") == "1" {
		f, err := tea.LogToFile(debugLog, "viewfit")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var m tea.Model
	if flag.NArg() > 0 {
		m = tui.NewWithPath(flag.Arg(0), opts)
	} else {
		m = tui.New(opts)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
