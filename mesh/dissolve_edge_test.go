package mesh_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrought3d/halfmesh/mesh"
)

func TestDissolveEdge_MergesTwoFaces(t *testing.T) {
	m := mesh.New()
	verts, _ := newTetrahedron(m)

	h, err := vertexHalfedgeTo(m, verts[0], verts[1])
	require.NoError(t, err)

	require.NoError(t, m.DissolveEdge(h))

	assert.Equal(t, 3, m.FaceCount())
	require.NoError(t, mesh.CheckInvariants(m))
}

func TestDissolveEdge_RejectsBoundaryHalfedge(t *testing.T) {
	m := mesh.New()
	verts := newPlane(m)

	// the grid's single quad runs (0,0)->(1,0)->(1,1)->(0,1); the boundary
	// half-edge (face = ∅) created by CloseBoundaries runs the other way.
	h, err := vertexHalfedgeTo(m, verts[1][0], verts[0][0])
	require.NoError(t, err)
	isBoundary, err := isHalfedgeBoundary(m, h)
	require.NoError(t, err)
	require.True(t, isBoundary, "test setup: expected a boundary half-edge")

	beforeV, beforeH, beforeF := m.VertexCount(), m.HalfedgeCount(), m.FaceCount()

	err = m.DissolveEdge(h)
	assert.True(t, errors.Is(err, mesh.ErrBoundaryEdgeNotAllowed))
	assert.Equal(t, beforeV, m.VertexCount())
	assert.Equal(t, beforeH, m.HalfedgeCount())
	assert.Equal(t, beforeF, m.FaceCount())
}

func isHalfedgeBoundary(m *mesh.Mesh, h mesh.HalfedgeID) (bool, error) {
	f, err := m.HalfedgeFace(h)
	if err != nil {
		return false, err
	}
	return f.IsZero(), nil
}
