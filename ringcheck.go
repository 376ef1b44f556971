// Detects self-intersecting polygon edges while a polygon is being drawn.
//
// A map editor that lets users click out a polygon vertex by vertex wants to
// flag the moment an edge crosses another one. This package answers that
// question for the vertex that was just added or dragged, and for a whole ring
// once it is finished. Rings are plain coordinate snapshots in a single planar
// projection; the package keeps no state between calls, so it is safe to call
// from any goroutine on independent snapshots.
package ringcheck

import (
	"io"

	"github.com/osuushi/ringcheck/internal"
)

type Point = internal.Point
type Segment = internal.Segment
type Ring = internal.Ring
type Edge = internal.Edge
type EdgeList = internal.EdgeList
type Crossing = internal.Crossing
type Scanner = internal.Scanner
type Config = internal.Config
type RingError = internal.RingError

// Vertex equality tolerance used by the package level functions, in map units.
const DefaultTolerance = internal.DefaultTolerance

var defaultScanner = internal.Scanner{Tolerance: DefaultTolerance}

// Do the segments (a0, a1) and (b0, b1) properly cross? Touching at an endpoint
// and collinear overlap do not count.
func SegmentsCross(a0x, a0y, a1x, a1y, b0x, b0y, b1x, b1y float64) bool {
	return internal.SegmentsCross(a0x, a0y, a1x, a1y, b0x, b0y, b1x, b1y)
}

// Does the vertex that was just added or moved make one of its edges cross a
// non-adjacent edge of the ring? The ring is implicitly closed. Rings with three
// or fewer vertices, and a nil vertex, are never reported.
//
// Coordinates must be finite. Use CheckForbiddenCrossing to have them checked.
func HasForbiddenCrossing(ring Ring, moved *Point) bool {
	return defaultScanner.HasForbiddenCrossing(ring, moved)
}

// Does any vertex of the ring cause a crossing?
func RingHasCrossing(ring Ring) bool {
	return defaultScanner.RingHasCrossing(ring)
}

func CheckForbiddenCrossing(ring Ring, moved *Point) (bool, error) {
	return defaultScanner.CheckForbiddenCrossing(ring, moved)
}

func CheckRing(ring Ring) (bool, error) {
	return defaultScanner.CheckRing(ring)
}

// Would a click at the cursor close the ring? See PixelTolerance for getting the
// tolerance from a distance on screen.
func ClosesRing(ring Ring, cursor Point, tolerance float64) bool {
	return internal.ClosesRing(ring, cursor, tolerance)
}

func PixelTolerance(pixels, resolution float64) float64 {
	return internal.PixelTolerance(pixels, resolution)
}

func DefaultConfig() Config {
	return internal.DefaultConfig()
}

func LoadConfig(path string) (Config, error) {
	return internal.LoadConfig(path)
}

func ReadRings(in io.Reader) ([]Ring, error) {
	return internal.ReadRings(in)
}

func ReadSVGRing(in io.Reader) (Ring, error) {
	return internal.ReadSVGRing(in)
}
