package internal

import "fmt"

// Points are plain values. The host owns vertex storage and hands us a snapshot
// on every call, so there is no identity to preserve beyond the coordinates.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

type Segment struct {
	P0, P1 Point
}

func (s Segment) String() string {
	return fmt.Sprintf("%v-%v", s.P0, s.P1)
}

// A ring is a polygon boundary in drawing order. It is always logically closed:
// the last vertex connects back to the first whether or not the first vertex is
// repeated at the end.
type Ring []Point

// An edge is a segment of a ring, along with its position in the edge list.
// The index is what tells two value-equal edges apart.
type Edge struct {
	Index int
	Segment
}

type EdgeList []Edge

// A pair of edges that cross. A is always the edge touching the vertex that was
// being checked.
type Crossing struct {
	A, B Edge
}

func (c Crossing) String() string {
	return fmt.Sprintf("edge %d %v crosses edge %d %v", c.A.Index, c.A.Segment, c.B.Index, c.B.Segment)
}
