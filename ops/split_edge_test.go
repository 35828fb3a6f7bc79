package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrought3d/halfmesh/mesh"
	"github.com/wrought3d/halfmesh/ops"
)

// TestSplitEdge_Cube splits one edge of a cube outward and checks the
// bridging edge SplitEdge dissolves leaves a manifold mesh with two more
// vertices and two more faces (one new quad per split side).
func TestSplitEdge_Cube(t *testing.T) {
	m := mesh.New()
	verts, _ := newCube(m)

	h, err := vertexHalfedgeTo(m, verts[0], verts[1])
	require.NoError(t, err)

	beforeV, beforeF := m.VertexCount(), m.FaceCount()
	newEdge, err := ops.SplitEdge(m, h, mesh.Vec3{X: 0, Y: -0.3, Z: 0})
	require.NoError(t, err)
	assert.False(t, newEdge.IsZero())

	// Each endpoint's SplitVertex adds a vertex and two triangular faces
	// (+2 vertices, +4 faces); dissolving the bridging edge afterward
	// merges two of those faces back into one (-1 face).
	assert.Equal(t, beforeV+2, m.VertexCount())
	assert.Equal(t, beforeF+3, m.FaceCount())

	require.NoError(t, mesh.CheckInvariants(m))
}
