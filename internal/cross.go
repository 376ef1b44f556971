package internal

// Do two segments properly cross? The intersection point has to lie strictly
// inside both segments, so segments that only touch at an endpoint do not
// cross. That case belongs to the scanner's adjacency logic.
//
// Each supporting line is written as Ax + By = C and solved directly, then the
// intersection is checked against each segment by comparing squared distances,
// so no square roots are needed.
//
// Parallel lines, including collinear overlapping segments and zero length
// segments, have a zero determinant and never cross.
func SegmentsCross(a0x, a0y, a1x, a1y, b0x, b0y, b1x, b1y float64) bool {
	aA := a1y - a0y
	aB := a0x - a1x
	aC := aA*a0x + aB*a0y

	bA := b1y - b0y
	bB := b0x - b1x
	bC := bA*b0x + bB*b0y

	det := aA*bB - bA*aB
	if det == 0 {
		return false
	}

	x := (bB*aC - aB*bC) / det
	y := (aA*bC - bA*aC) / det

	return strictlyInside(x, y, a0x, a0y, a1x, a1y) && strictlyInside(x, y, b0x, b0y, b1x, b1y)
}

func (s Segment) Crosses(other Segment) bool {
	return SegmentsCross(s.P0.X, s.P0.Y, s.P1.X, s.P1.Y, other.P0.X, other.P0.Y, other.P1.X, other.P1.Y)
}

// Is the point (x, y), known to be on the segment's line, strictly between its
// endpoints? It is iff it is closer to each endpoint than the endpoints are to
// each other.
func strictlyInside(x, y, x0, y0, x1, y1 float64) bool {
	length := squaredDistance(x0, y0, x1, y1)
	return squaredDistance(x0, y0, x, y) < length && squaredDistance(x, y, x1, y1) < length
}

func squaredDistance(x0, y0, x1, y1 float64) float64 {
	dx := x0 - x1
	dy := y0 - y1
	return dx*dx + dy*dy
}
