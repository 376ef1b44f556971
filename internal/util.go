package internal

import "math"

// Default tolerance in map units. Hosts usually hand us EPSG:3857 coordinates,
// which are meters, so this is about a centimeter.
const DefaultTolerance = 0.01

// Vertex equality is never exact. Two points are the same vertex if they agree
// on both axes within the tolerance.
func AlmostEqual(a, b Point, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance && math.Abs(a.Y-b.Y) <= tolerance
}

// Euclidean proximity, used for cursor checks rather than vertex identity.
func IsNear(a, b Point, tolerance float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx+dy*dy <= tolerance*tolerance
}

// Convert a tolerance in screen pixels into map units for the given viewport
// resolution (map units per pixel).
func PixelTolerance(pixels, resolution float64) float64 {
	return pixels * resolution
}

func IsFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s Segment) IsEndpoint(p Point, tolerance float64) bool {
	return AlmostEqual(s.P0, p, tolerance) || AlmostEqual(s.P1, p, tolerance)
}

// Do the segments share an endpoint? Any of the four endpoint pairings count.
func (s Segment) SharesEndpoint(other Segment, tolerance float64) bool {
	return s.IsEndpoint(other.P0, tolerance) || s.IsEndpoint(other.P1, tolerance)
}

func (s Segment) Reverse() Segment {
	return Segment{s.P1, s.P0}
}

// Axis aligned bounds of the segment, as (min, max) corners.
func (s Segment) Extent() (min, max Point) {
	min = Point{math.Min(s.P0.X, s.P1.X), math.Min(s.P0.Y, s.P1.Y)}
	max = Point{math.Max(s.P0.X, s.P1.X), math.Max(s.P0.Y, s.P1.Y)}
	return
}
