package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/ringcheck/internal"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Checks rings for crossing edges. Input on stdin (or the file argument) should
// be newline separated points in the form "x y", with each ring separated by an
// extra newline. With --svg, the input is an SVG document with one polygon.
//
// Every ring is validated as a whole. With --moved, each ring is also checked
// for crossings caused by that one vertex, the way an editor checks after a
// drag. With --close-to, reports whether a click at that point would close the
// ring.

var (
	app = kingpin.New("ringcheck", "Find self-intersecting edges in polygon rings.")

	inputPath   = app.Arg("file", "Input file. Reads stdin if omitted.").ExistingFile()
	configPath  = app.Flag("config", "YAML config file.").Short('c').ExistingFile()
	tolerance   = app.Flag("tolerance", "Vertex equality tolerance in map units. Overrides the config.").Float64()
	svg         = app.Flag("svg", "Read the input as an SVG document.").Bool()
	movedVertex = app.Flag("moved", "Vertex that was just moved, as x,y.").String()
	closeTo     = app.Flag("close-to", "Cursor position to test for closing the ring, as x,y.").String()
	resolution  = app.Flag("resolution", "Viewport resolution in map units per pixel, for --close-to.").Default("1").Float64()
	verbose     = app.Flag("verbose", "Name the crossing edges.").Short('v').Bool()
	draw        = app.Flag("draw", "Draw each ring to the terminal (iTerm only).").Bool()
	drawScale   = app.Flag("draw-scale", "Pixels per map unit for --draw.").Default("10").Float64()
	drawDirPath = app.Flag("draw-dir", "Directory for --draw images.").Default(os.TempDir()).String()
)

func main() {
	log.SetFlags(0)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	config, err := loadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	in := io.Reader(os.Stdin)
	if *inputPath != "" {
		file, err := os.Open(*inputPath)
		if err != nil {
			log.Fatalf("Could not open input: %v", err)
		}
		defer file.Close()
		in = file
	}

	rings, err := readInput(in, *svg)
	if err != nil {
		log.Fatalf("Could not read rings: %v", err)
	}
	fmt.Printf("Read %d rings\n", len(rings))

	var movedPoint, cursor *internal.Point
	if *movedVertex != "" {
		movedPoint, err = parseFlagPoint("moved", *movedVertex)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}
	if *closeTo != "" {
		cursor, err = parseFlagPoint("close-to", *closeTo)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	clean := true
	for i, ring := range rings {
		report, err := checkRing(config, ring, movedPoint, cursor)
		if err != nil {
			log.Fatalf("Ring %d: %v", i, err)
		}
		fmt.Printf("Ring %d: %s\n", i, report)
		clean = clean && report.clean()

		if *draw {
			var crossing *internal.Crossing
			if report.crossing.found {
				crossing = &report.crossing.pair
			}
			path := filepath.Join(*drawDirPath, fmt.Sprintf("ring_%d.png", i))
			if err := internal.DbgDraw(ring, crossing, *drawScale, path, os.Stdout); err != nil {
				log.Printf("Could not draw ring %d: %v", i, err)
			}
		}
	}

	if !clean {
		os.Exit(1)
	}
}

func loadConfig() (internal.Config, error) {
	config := internal.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = internal.LoadConfig(*configPath)
		if err != nil {
			return internal.Config{}, err
		}
	}
	if *tolerance != 0 {
		config.Tolerance = *tolerance
	}
	if err := config.Validate(); err != nil {
		return internal.Config{}, err
	}
	return config, nil
}

func readInput(in io.Reader, isSVG bool) ([]internal.Ring, error) {
	if isSVG {
		ring, err := internal.ReadSVGRing(in)
		if err != nil {
			return nil, err
		}
		return []internal.Ring{ring}, nil
	}
	return internal.ReadRings(in)
}

func parseFlagPoint(name, value string) (*internal.Point, error) {
	point, err := internal.ParsePoint(value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --%s", name)
	}
	return &point, nil
}

type scanResult struct {
	found bool
	pair  internal.Crossing
}

type ringReport struct {
	crossing scanResult
	// Only set when a moved vertex was given
	moved    *scanResult
	closes   *bool
}

func checkRing(config internal.Config, ring internal.Ring, moved, cursor *internal.Point) (ringReport, error) {
	scanner := config.Scanner()
	var report ringReport

	// Validate first, so the scans below only ever see finite input
	if err := internal.ValidateFinite(ring, moved); err != nil {
		return report, err
	}
	report.crossing.pair, report.crossing.found = scanner.FindRingCrossing(ring)

	if moved != nil {
		var result scanResult
		result.pair, result.found = scanner.FindCrossing(ring, moved)
		report.moved = &result
	}

	if cursor != nil {
		closes := internal.ClosesRing(ring, *cursor, config.CloseTolerance(*resolution))
		report.closes = &closes
	}
	return report, nil
}

func (r ringReport) clean() bool {
	return !r.crossing.found && (r.moved == nil || !r.moved.found)
}

func (r ringReport) String() string {
	s := describe(r.crossing)
	if r.moved != nil {
		s += fmt.Sprintf("; moved vertex: %s", describe(*r.moved))
	}
	if r.closes != nil {
		s += fmt.Sprintf("; closes: %v", *r.closes)
	}
	return s
}

func describe(result scanResult) string {
	if !result.found {
		return aurora.Green("no crossing").String()
	}
	s := aurora.Red("crossing").String()
	if *verbose {
		s += fmt.Sprintf(" %s %v x %s %v",
			result.pair.A.DbgName(true), result.pair.A.Segment,
			result.pair.B.DbgName(true), result.pair.B.Segment)
	}
	return s
}
