package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sandbox/core"
)

func TestGeoAppendWithinCapacity(t *testing.T) {
	g := NewGeo(3, 2)
	assert.True(t, g.Empty())
	assert.True(t, g.Fits(3, 2))
	assert.False(t, g.Fits(4, 0))
	assert.False(t, g.Fits(0, 3))

	i0, err := g.AppendVertex(core.Vertex{Value: 1})
	require.NoError(t, err)
	i1, err := g.AppendVertex(core.Vertex{Value: 2})
	require.NoError(t, err)
	assert.Equal(t, uint16(0), i0)
	assert.Equal(t, uint16(1), i1)

	require.NoError(t, g.AppendIndex(i0))
	require.NoError(t, g.AppendIndex(i1))
	require.NoError(t, g.AppendIndex(i1))
	assert.Equal(t, 1, g.TriangleCount())
}

func TestGeoRejectsOverflow(t *testing.T) {
	g := NewGeo(1, 1)
	_, err := g.AppendVertex(core.Vertex{})
	require.NoError(t, err)

	_, err = g.AppendVertex(core.Vertex{})
	assert.ErrorIs(t, err, ErrGeoFull)
	assert.Len(t, g.Vertices, 1)

	require.NoError(t, g.AppendIndex(0))
	assert.ErrorIs(t, g.AppendIndex(0), ErrGeoFull)
	assert.Len(t, g.Indices, 1)
}

func TestGeoRejectsDanglingIndex(t *testing.T) {
	g := NewGeo(4, 4)
	assert.ErrorIs(t, g.AppendIndex(0), ErrIndexRange)

	_, err := g.AppendVertex(core.Vertex{})
	require.NoError(t, err)
	assert.ErrorIs(t, g.AppendIndex(1), ErrIndexRange)
	assert.Empty(t, g.Indices)
}

func TestGeoResetKeepsCapacity(t *testing.T) {
	g := NewGeo(6, 4)
	_, _ = g.AppendVertex(core.Vertex{})
	_ = g.AppendIndex(0)

	g.Reset()
	assert.True(t, g.Empty())
	assert.Equal(t, 6, g.IndexCapacity())
	assert.Equal(t, 4, g.VertexCapacity())
}
