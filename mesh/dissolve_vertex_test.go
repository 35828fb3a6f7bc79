package mesh_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrought3d/halfmesh/mesh"
)

func TestDissolveVertex_UnifiesStarIntoOneFace(t *testing.T) {
	m := mesh.New()
	verts, _ := newCube(m)

	// v0 is incident to three quads; dissolving it should merge them into
	// one hexagonal face and remove v0 along with its three edges.
	newFace, err := m.DissolveVertex(verts[0])
	require.NoError(t, err)

	assert.Equal(t, 7, m.VertexCount())
	assert.Equal(t, 4, m.FaceCount())
	loopVerts, err := m.FaceVertices(newFace)
	require.NoError(t, err)
	assert.Len(t, loopVerts, 6)
	require.NoError(t, mesh.CheckInvariants(m))
}

func TestDissolveVertex_RejectsIsolatedVertex(t *testing.T) {
	m := mesh.New()
	v := m.AllocVertex(mesh.Vec3{})

	_, err := m.DissolveVertex(v)
	assert.True(t, errors.Is(err, mesh.ErrIsolatedVertex))
}
