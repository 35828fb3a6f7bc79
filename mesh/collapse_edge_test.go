package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrought3d/halfmesh/mesh"
)

func TestCollapseEdge_MergesEndpoints(t *testing.T) {
	m := mesh.New()
	verts, _ := newTetrahedron(m)

	h, err := vertexHalfedgeTo(m, verts[0], verts[1])
	require.NoError(t, err)

	beforeV := m.VertexCount()
	v, err := m.CollapseEdge(h)
	require.NoError(t, err)
	assert.Equal(t, verts[0], v)
	assert.Equal(t, beforeV-1, m.VertexCount())

	// every half-edge that used to start at v1 now starts at v (v0).
	for hid := range m.IterHalfedges {
		src, err := m.HalfedgeVertex(hid)
		require.NoError(t, err)
		assert.NotEqual(t, verts[1], src)
	}
}
