package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrought3d/halfmesh/mesh"
	"github.com/wrought3d/halfmesh/ops"
)

// TestBevelEdges_Empty covers spec.md §8's idempotence property: bevelling
// the empty set is the identity, connectivity and geometry alike.
func TestBevelEdges_Empty(t *testing.T) {
	m := mesh.New()
	newCube(m)

	beforeV, beforeH, beforeF := m.VertexCount(), m.HalfedgeCount(), m.FaceCount()
	err := ops.BevelEdges(m, nil, 0.2)
	require.NoError(t, err)

	assert.Equal(t, beforeV, m.VertexCount())
	assert.Equal(t, beforeH, m.HalfedgeCount())
	assert.Equal(t, beforeF, m.FaceCount())
	require.NoError(t, mesh.CheckInvariants(m))
}

// TestBevelEdges_SingleCubeEdge covers spec.md §8's single-edge-bevel
// scenario: bevelling one cube edge adds vertices and faces, keeps the
// mesh invariants, and leaves no dangling twins behind.
func TestBevelEdges_SingleCubeEdge(t *testing.T) {
	m := mesh.New()
	verts, _ := newCube(m)

	h, err := vertexHalfedgeTo(m, verts[0], verts[1])
	require.NoError(t, err)

	beforeV, beforeF := m.VertexCount(), m.FaceCount()
	err = ops.BevelEdges(m, []mesh.HalfedgeID{h}, 0.1)
	require.NoError(t, err)

	assert.Greater(t, m.VertexCount(), beforeV)
	assert.Greater(t, m.FaceCount(), beforeF)

	require.NoError(t, mesh.CheckInvariants(m))

	// Every half-edge's twin must round-trip, i.e. no dangling twins.
	for h := range m.IterHalfedges {
		twin, err := m.HalfedgeTwin(h)
		require.NoError(t, err)
		back, err := m.HalfedgeTwin(twin)
		require.NoError(t, err)
		assert.Equal(t, h, back)
	}
}

// TestBevelEdges_MovesVertices checks the geometric phase actually pulls
// the beveled edge's endpoints, rather than leaving them at the original
// corner position.
func TestBevelEdges_MovesVertices(t *testing.T) {
	m := mesh.New()
	verts, _ := newCube(m)
	original, err := m.Position(verts[0])
	require.NoError(t, err)

	h, err := vertexHalfedgeTo(m, verts[0], verts[1])
	require.NoError(t, err)

	err = ops.BevelEdges(m, []mesh.HalfedgeID{h}, 0.15)
	require.NoError(t, err)

	// verts[0]'s original handle is reused by one side of the chamfer
	// ring; whichever vertex now sits there must have moved off the
	// original corner.
	moved := false
	for v := range m.IterVertices {
		pos, err := m.Position(v)
		require.NoError(t, err)
		if pos != original {
			moved = true
			break
		}
	}
	assert.True(t, moved)
}
