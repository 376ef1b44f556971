package internal

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read rings from newline separated points in the form "x y" (or "x,y"), with
// each ring separated by an empty line.
func ReadRings(in io.Reader) ([]Ring, error) {
	rings := []Ring{}
	scanner := bufio.NewScanner(in)
	ring := Ring{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the ring
		if line == "" {
			if len(ring) > 0 {
				rings = append(rings, ring)
				ring = Ring{}
			}
			continue
		}

		point, err := ParsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		ring = append(ring, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read rings")
	}

	// Handle trailing ring if any
	if len(ring) > 0 {
		rings = append(rings, ring)
	}
	return rings, nil
}

// Parse a point given as "x y" or "x,y".
func ParsePoint(s string) (Point, error) {
	parts := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(parts) != 2 {
		return Point{}, errors.Errorf("invalid point %q", s)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return Point{X: x, Y: y}, nil
}

// Read the ring from an SVG document. This is not a full (or even correct) svg
// parser. It finds the one polygon element in the document and reads its points
// attribute. Winding is left as drawn, since drawing order is what the scanner
// cares about.
func ReadSVGRing(in io.Reader) (Ring, error) {
	rootEl, err := svgparser.Parse(in, true)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygon found in svg")
	}
	if len(polygons) > 1 {
		return nil, errors.Errorf("expected one polygon in svg, found %d", len(polygons))
	}

	// Points are "x,y" pairs separated by whitespace
	ring := Ring{}
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		point, err := ParsePoint(pointString)
		if err != nil {
			return nil, errors.Wrap(err, "invalid polygon points")
		}
		ring = append(ring, point)
	}
	return ring, nil
}
