package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrought3d/halfmesh/mesh"
)

func TestSplitVertex_CubeCornerStaysManifold(t *testing.T) {
	m := mesh.New()
	verts, _ := newCube(m)

	// split corner 0 along the edges toward 1 and 3 (its two cube-edge
	// neighbors on the back face).
	w, err := m.SplitVertex(verts[0], verts[3], verts[1], mesh.Vec3{X: -0.1, Y: -0.1, Z: -0.1})
	require.NoError(t, err)
	assert.False(t, w.IsZero())

	assert.Equal(t, 9, m.VertexCount())
	assert.Equal(t, 8, m.FaceCount())
	require.NoError(t, mesh.CheckInvariants(m))
}

func TestSplitVertex_ErrorsOnNonAdjacentVertex(t *testing.T) {
	m := mesh.New()
	verts, _ := newCube(m)

	// verts[6] is the far corner from verts[0]; not adjacent.
	_, err := m.SplitVertex(verts[0], verts[3], verts[6], mesh.Vec3{X: 0.1})
	assert.Error(t, err)
}
