package internal

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference implementations for checking the indexed full ring scan. They are
// deliberately naive.

// Run the vertex scan once per vertex, with no index.
func bruteForceRingCrossing(s Scanner, ring Ring) (Crossing, bool) {
	for _, vertex := range ring.Vertices(s.tolerance()) {
		vertex := vertex
		if crossing, ok := s.FindCrossing(ring, &vertex); ok {
			return crossing, true
		}
	}
	return Crossing{}, false
}

// Test every pair of edges that don't share a vertex. When all coordinates are
// integers, vertex equality within tolerance is exact equality, and this has
// to agree with the per vertex scan.
func allPairsRingCrossing(ring Ring) bool {
	vertices := ring.Vertices(DefaultTolerance)
	if len(vertices) < minScanVertices {
		return false
	}
	edges := ring.Edges(DefaultTolerance)
	for i, a := range edges {
		for _, b := range edges[i+1:] {
			if !a.SharesEndpoint(b.Segment, DefaultTolerance) && a.Crosses(b.Segment) {
				return true
			}
		}
	}
	return false
}

func randomIntRing(r *rand.Rand, n, size int) Ring {
	ring := make(Ring, 0, n)
	for i := 0; i < n; i++ {
		ring = append(ring, Point{X: float64(r.Intn(size)), Y: float64(r.Intn(size))})
	}
	return ring
}

func TestFindRingCrossing_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	var s Scanner
	crossingRings := 0
	for i := 0; i < 2000; i++ {
		ring := randomIntRing(r, 4+r.Intn(10), 20)

		expectedCrossing, expectedFound := bruteForceRingCrossing(s, ring)
		actualCrossing, actualFound := s.FindRingCrossing(ring)
		require.Equal(t, expectedFound, actualFound, "ring %v", ring)
		// The index returns candidates in edge order, so even the reported pair matches
		assert.Equal(t, expectedCrossing, actualCrossing, "ring %v", ring)
		assert.Equal(t, allPairsRingCrossing(ring), actualFound, "ring %v", ring)

		if actualFound {
			crossingRings++
		}
	}
	// Random rings cross a lot, but not always
	assert.Greater(t, crossingRings, 100)
	assert.Less(t, crossingRings, 2000)
}

func TestFindRingCrossing_MatchesBruteForceWithNearVertices(t *testing.T) {
	// Rings on a grid finer than the tolerance, so vertices are often "equal"
	// without being identical.
	r := rand.New(rand.NewSource(7))
	s := Scanner{Tolerance: 0.3}
	for i := 0; i < 1000; i++ {
		ring := randomIntRing(r, 4+r.Intn(8), 30)
		for j := range ring {
			ring[j].X /= 10
			ring[j].Y /= 10
		}

		expectedCrossing, expectedFound := bruteForceRingCrossing(s, ring)
		actualCrossing, actualFound := s.FindRingCrossing(ring)
		require.Equal(t, expectedFound, actualFound, "ring %v", ring)
		assert.Equal(t, expectedCrossing, actualCrossing, "ring %v", ring)
	}
}
