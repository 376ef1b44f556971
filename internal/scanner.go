package internal

// Finds edge crossings caused by a vertex that was just added or dragged.
//
// Only edges incident to the moved vertex can have become invalid, so instead of
// testing every pair of edges, the edges are split into those touching the
// vertex and the rest, and only the pairs between those two groups are tested.
// That is a linear scan per vertex event instead of a quadratic one.
//
// A ring with three or fewer vertices is never reported. While the first few
// points of a shape are being clicked, near-degenerate triangles are common and
// flagging them is just noise.
type Scanner struct {
	// Vertex equality tolerance in map units. Zero means DefaultTolerance. The
	// same tolerance decides whether a vertex is an edge's endpoint, whether two
	// edges are adjacent, and whether a ring is stored explicitly closed.
	Tolerance float64
}

// Minimum number of distinct ring vertices before a crossing can be reported.
const minScanVertices = 4

func (s Scanner) tolerance() float64 {
	if s.Tolerance == 0 {
		return DefaultTolerance
	}
	return s.Tolerance
}

// Does moving (or adding) the given vertex make an edge of the ring cross a
// non-adjacent edge? A nil vertex means nothing moved, so nothing is reported.
func (s Scanner) HasForbiddenCrossing(ring Ring, moved *Point) bool {
	_, found := s.FindCrossing(ring, moved)
	return found
}

// Like HasForbiddenCrossing, but reports the first offending pair of edges.
func (s Scanner) FindCrossing(ring Ring, moved *Point) (Crossing, bool) {
	tolerance := s.tolerance()
	if moved == nil || len(ring.Vertices(tolerance)) < minScanVertices {
		return Crossing{}, false
	}
	return s.findInEdges(ring.Edges(tolerance), *moved)
}

// The edge list form of the scan, for hosts that already maintain edges. The
// edges are used as given; nothing is closed or deduplicated.
func (s Scanner) ScanEdges(edges EdgeList, moved *Point) bool {
	if moved == nil || len(edges) < minScanVertices {
		return false
	}
	_, found := s.findInEdges(edges, *moved)
	return found
}

func (s Scanner) findInEdges(edges EdgeList, moved Point) (Crossing, bool) {
	tolerance := s.tolerance()
	touching, others := partitionEdges(edges, moved, tolerance)
	if len(touching) == 0 {
		// The moved point isn't a vertex of this ring
		return Crossing{}, false
	}

	for _, a := range touching {
		for _, b := range others {
			if crossing, ok := checkPair(a, b, tolerance); ok {
				return crossing, true
			}
		}
	}
	return Crossing{}, false
}

// Split edges into those with an endpoint at the vertex, and everything else.
func partitionEdges(edges EdgeList, vertex Point, tolerance float64) (touching, others EdgeList) {
	for _, edge := range edges {
		if edge.IsEndpoint(vertex, tolerance) {
			touching = append(touching, edge)
		} else {
			others = append(others, edge)
		}
	}
	return
}

// Test a touching edge against another edge. Edges sharing a vertex are
// neighbors on the ring and are allowed to meet there.
func checkPair(a, b Edge, tolerance float64) (Crossing, bool) {
	if a.SharesEndpoint(b.Segment, tolerance) {
		return Crossing{}, false
	}
	// Endpoint order doesn't matter to the primitive. Edges are passed end
	// first, which is how the editor always called it.
	if !a.Reverse().Crosses(b.Reverse()) {
		return Crossing{}, false
	}
	return Crossing{A: a, B: b}, true
}

// Does any vertex of the ring cause a crossing? This runs the vertex scan once
// per vertex, so it validates a whole ring rather than a single edit. Pairs of
// edges are found through an edge index, which skips pairs whose bounds are
// too far apart to cross.
func (s Scanner) RingHasCrossing(ring Ring) bool {
	_, found := s.FindRingCrossing(ring)
	return found
}

func (s Scanner) FindRingCrossing(ring Ring) (Crossing, bool) {
	tolerance := s.tolerance()
	vertices := ring.Vertices(tolerance)
	if len(vertices) < minScanVertices {
		return Crossing{}, false
	}

	index := NewEdgeIndex(ring.Edges(tolerance), tolerance)
	for _, vertex := range vertices {
		touching := index.Touching(vertex)
		for _, a := range touching {
			for _, b := range index.Near(a) {
				if b.IsEndpoint(vertex, tolerance) {
					// Both touch the vertex, so the vertex scan puts them on the same side
					continue
				}
				if crossing, ok := checkPair(a, b, tolerance); ok {
					return crossing, true
				}
			}
		}
	}
	return Crossing{}, false
}

// Would a click at the cursor close the ring? The tolerance is in map
// units, usually derived from a pixel distance with PixelTolerance.
func ClosesRing(ring Ring, cursor Point, tolerance float64) bool {
	return ring.ClosesAt(cursor, tolerance)
}

// Make sure every coordinate is finite. The scans assume finite input and give
// unspecified answers otherwise.
func ValidateFinite(ring Ring, moved *Point) (err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	ring.assertFinite()
	if moved != nil && !IsFinite(*moved) {
		fatalf("moved vertex has non-finite coordinates %v", *moved)
	}
	return nil
}

// Checked variants. These reject non-finite coordinates with an error instead
// of returning an unspecified answer.

func (s Scanner) CheckForbiddenCrossing(ring Ring, moved *Point) (bool, error) {
	if err := ValidateFinite(ring, moved); err != nil {
		return false, err
	}
	return s.HasForbiddenCrossing(ring, moved), nil
}

func (s Scanner) CheckRing(ring Ring) (bool, error) {
	if err := ValidateFinite(ring, nil); err != nil {
		return false, err
	}
	return s.RingHasCrossing(ring), nil
}
