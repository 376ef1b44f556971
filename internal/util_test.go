package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestAlmostEqual(t *testing.T) {
	assert.True(t, AlmostEqual(Point{0, 0}, Point{0, 0}, DefaultTolerance))
	assert.True(t, AlmostEqual(Point{0, 0}, Point{0.005, 0.005}, DefaultTolerance))
	assert.True(t, AlmostEqual(Point{0, 0}, Point{0.01, -0.01}, DefaultTolerance))
	assert.False(t, AlmostEqual(Point{0, 0}, Point{0.011, 0}, DefaultTolerance))
	assert.False(t, AlmostEqual(Point{0, 0}, Point{0, -0.011}, DefaultTolerance))

	// Per axis, not Euclidean: this is farther than the tolerance from the origin
	assert.True(t, AlmostEqual(Point{0, 0}, Point{0.009, 0.009}, DefaultTolerance))
	assert.False(t, IsNear(Point{0, 0}, Point{0.009, 0.009}, DefaultTolerance))
}

func TestIsNear(t *testing.T) {
	assert.True(t, IsNear(Point{1, 1}, Point{4, 5}, 5))
	assert.False(t, IsNear(Point{1, 1}, Point{4, 5.1}, 5))
	assert.Equal(t, 24.0, PixelTolerance(12, 2))
}

func TestSegmentEndpoints(t *testing.T) {
	s := seg(0, 0, 10, 0)
	assert.True(t, s.IsEndpoint(Point{0, 0}, DefaultTolerance))
	assert.True(t, s.IsEndpoint(Point{10.005, 0.005}, DefaultTolerance))
	assert.False(t, s.IsEndpoint(Point{5, 0}, DefaultTolerance))

	assert.True(t, s.SharesEndpoint(seg(10, 0, 10, 10), DefaultTolerance))
	assert.True(t, s.SharesEndpoint(seg(10, 10, 0, 0), DefaultTolerance))
	assert.True(t, s.SharesEndpoint(seg(5, 5, 0.005, 0), DefaultTolerance))
	assert.False(t, s.SharesEndpoint(seg(5, 0, 5, 5), DefaultTolerance))

	assert.Equal(t, seg(10, 0, 0, 0), s.Reverse())
	min, max := seg(3, 8, -1, 2).Extent()
	assert.Equal(t, Point{-1, 2}, min)
	assert.Equal(t, Point{3, 8}, max)
}
