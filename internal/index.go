package internal

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
)

// Node fan-out for the edge R-tree. Rings are tens to hundreds of edges, so
// these only need to be reasonable.
const (
	indexMinChildren = 4
	indexMaxChildren = 16
)

// Keeps rtreego from rejecting zero-size rectangles when the padding is zero.
const minIndexExtent = 1e-9

// An R-tree over the edges of a ring. Every edge's bounds are padded by the
// vertex tolerance, so a query never misses an edge that could share a vertex
// with, or cross, the queried one. Queries are a broad phase only: callers still
// run the exact tests on whatever comes back.
type EdgeIndex struct {
	tree      *rtreego.Rtree
	tolerance float64
}

type indexedEdge struct {
	edge Edge
	rect rtreego.Rect
}

func (e *indexedEdge) Bounds() rtreego.Rect {
	return e.rect
}

func NewEdgeIndex(edges EdgeList, tolerance float64) *EdgeIndex {
	index := &EdgeIndex{tolerance: tolerance}
	spatials := make([]rtreego.Spatial, 0, len(edges))
	for _, edge := range edges {
		min, max := edge.Extent()
		spatials = append(spatials, &indexedEdge{edge: edge, rect: index.rect(min, max)})
	}
	index.tree = rtreego.NewTree(2, indexMinChildren, indexMaxChildren, spatials...)
	return index
}

func (index *EdgeIndex) Size() int {
	return index.tree.Size()
}

// Find the edges that have an endpoint at the vertex, within tolerance.
func (index *EdgeIndex) Touching(vertex Point) EdgeList {
	var result EdgeList
	for _, edge := range index.search(index.rect(vertex, vertex)) {
		if edge.IsEndpoint(vertex, index.tolerance) {
			result = append(result, edge)
		}
	}
	return result
}

// Find the edges whose padded bounds overlap the edge's padded bounds. The edge
// itself is not included.
func (index *EdgeIndex) Near(edge Edge) EdgeList {
	min, max := edge.Extent()
	var result EdgeList
	for _, candidate := range index.search(index.rect(min, max)) {
		if candidate.Index != edge.Index {
			result = append(result, candidate)
		}
	}
	return result
}

// Results are sorted by edge index so that scans built on the index report the
// same crossing the plain scan would find first.
func (index *EdgeIndex) search(rect rtreego.Rect) EdgeList {
	spatials := index.tree.SearchIntersect(rect)
	edges := make(EdgeList, 0, len(spatials))
	for _, spatial := range spatials {
		edges = append(edges, spatial.(*indexedEdge).edge)
	}
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Index < edges[j].Index
	})
	return edges
}

func (index *EdgeIndex) rect(min, max Point) rtreego.Rect {
	pad := math.Max(index.tolerance, 0)
	corner := rtreego.Point{min.X - pad, min.Y - pad}
	lengths := []float64{
		math.Max(max.X-min.X+2*pad, minIndexExtent),
		math.Max(max.Y-min.Y+2*pad, minIndexExtent),
	}
	rect, err := rtreego.NewRect(corner, lengths)
	if err != nil {
		// Lengths are clamped positive, so this only happens on broken input
		fatalf("cannot index bounds %v-%v: %v", min, max, err)
	}
	return rect
}
