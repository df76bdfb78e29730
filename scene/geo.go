package scene

import (
	"errors"
	"fmt"

	"sandbox/core"
)

var (
	ErrGeoFull    = errors.New("geometry buffer full")
	ErrIndexRange = errors.New("index references a missing vertex")
)

// Geo is a paired index/vertex buffer with a capacity fixed at
// construction. Appends never grow the backing arrays.
type Geo struct {
	Indices  []uint16
	Vertices []core.Vertex
}

func NewGeo(indexCapacity, vertexCapacity int) *Geo {
	return &Geo{
		Indices:  make([]uint16, 0, indexCapacity),
		Vertices: make([]core.Vertex, 0, vertexCapacity),
	}
}

func (g *Geo) IndexCapacity() int  { return cap(g.Indices) }
func (g *Geo) VertexCapacity() int { return cap(g.Vertices) }

func (g *Geo) Empty() bool {
	return len(g.Indices) == 0 && len(g.Vertices) == 0
}

// Reset empties both buffers, keeping their storage.
func (g *Geo) Reset() {
	g.Indices = g.Indices[:0]
	g.Vertices = g.Vertices[:0]
}

// Fits reports whether indexCount more indices and vertexCount more
// vertices can be appended without exceeding capacity.
func (g *Geo) Fits(indexCount, vertexCount int) bool {
	return len(g.Indices)+indexCount <= cap(g.Indices) &&
		len(g.Vertices)+vertexCount <= cap(g.Vertices)
}

// AppendVertex stores v and returns its slot.
func (g *Geo) AppendVertex(v core.Vertex) (uint16, error) {
	if len(g.Vertices) == cap(g.Vertices) {
		return 0, fmt.Errorf("append vertex (capacity %d): %w", cap(g.Vertices), ErrGeoFull)
	}
	g.Vertices = append(g.Vertices, v)
	return uint16(len(g.Vertices) - 1), nil
}

// AppendIndex stores i, which must reference an already appended vertex.
func (g *Geo) AppendIndex(i uint16) error {
	if int(i) >= len(g.Vertices) {
		return fmt.Errorf("append index %d (%d vertices): %w", i, len(g.Vertices), ErrIndexRange)
	}
	if len(g.Indices) == cap(g.Indices) {
		return fmt.Errorf("append index (capacity %d): %w", cap(g.Indices), ErrGeoFull)
	}
	g.Indices = append(g.Indices, i)
	return nil
}

// TriangleCount is the number of complete triangles in the index buffer.
func (g *Geo) TriangleCount() int {
	return len(g.Indices) / 3
}
