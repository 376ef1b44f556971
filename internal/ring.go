package internal

// Get the distinct vertices of the ring. If the host stored the ring explicitly
// closed (last vertex repeating the first within tolerance), the repeat is
// dropped. The result shares storage with the ring.
func (r Ring) Vertices(tolerance float64) []Point {
	n := len(r)
	if n > 1 && AlmostEqual(r[n-1], r[0], tolerance) {
		return r[:n-1]
	}
	return r
}

// Build the edge list by connecting consecutive vertices, plus the closing edge
// from the last vertex back to the first.
func (r Ring) Edges(tolerance float64) EdgeList {
	vertices := r.Vertices(tolerance)
	n := len(vertices)
	if n < 2 {
		return nil
	}
	edges := make(EdgeList, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, Edge{Index: i - 1, Segment: Segment{vertices[i-1], vertices[i]}})
	}
	// Two vertices make a single edge. Closing it would just retrace it.
	if n > 2 {
		edges = append(edges, Edge{Index: n - 1, Segment: Segment{vertices[n-1], vertices[0]}})
	}
	return edges
}

func (r Ring) Reverse() Ring {
	reversed := make(Ring, 0, len(r))
	for i := len(r) - 1; i >= 0; i-- {
		reversed = append(reversed, r[i])
	}
	return reversed
}

// Should the cursor close the ring? The cursor has to be near the first vertex,
// and there have to be enough vertices for the result to be a polygon.
func (r Ring) ClosesAt(cursor Point, tolerance float64) bool {
	return len(r) > 2 && IsNear(r[0], cursor, tolerance)
}

// Panic with a ring error if any coordinate is NaN or infinite.
func (r Ring) assertFinite() {
	for i, p := range r {
		if !IsFinite(p) {
			fatalf("vertex %d has non-finite coordinates %v", i, p)
		}
	}
}
