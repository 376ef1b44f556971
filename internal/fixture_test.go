package internal

import (
	"embed"
	"log"
	"math"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each is an SVG with a single polygon, read with the same reader the command
// line tool uses. If anything goes wrong, the test binary dies.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Ring {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	ring, err := ReadSVGRing(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return ring
}

// Some ad hoc code specified fixtures

// A simple star, alternating between the outer and inner radius.
func SimpleStar(points int) Ring {
	var ring Ring
	const outerRadius = 50
	const innerRadius = 20
	for i := 0; i < points*2; i++ {
		radius := float64(outerRadius)
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / float64(points*2)
		ring = append(ring, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return ring
}

// A star polygon drawn the way you'd draw it without lifting the pen: every
// other point of a regular polygon. Each edge crosses its neighbors' neighbors.
func PenStar(points int) Ring {
	var ring Ring
	const radius = 50
	for i := 0; i < points; i++ {
		angle := 2 * math.Pi * float64(i*2%points) / float64(points)
		ring = append(ring, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return ring
}

// A ring in EPSG:3857 meters around somewhere in Stockholm, with vertices a few
// meters apart. Large coordinates with small differences are what the editor
// actually hands over.
func WebMercatorRing(offsets ...Point) Ring {
	origin := Point{X: 2010000, Y: 8250000}
	ring := make(Ring, 0, len(offsets))
	for _, offset := range offsets {
		ring = append(ring, Point{X: origin.X + offset.X, Y: origin.Y + offset.Y})
	}
	return ring
}
