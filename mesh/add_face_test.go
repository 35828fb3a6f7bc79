package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrought3d/halfmesh/mesh"
)

func TestAddFace_CubeIsManifold(t *testing.T) {
	m := mesh.New()
	_, faces := newCube(m)

	require.Equal(t, 8, m.VertexCount())
	require.Equal(t, 24, m.HalfedgeCount())
	require.Equal(t, 6, m.FaceCount())

	require.NoError(t, mesh.CheckInvariants(m))

	for _, f := range faces {
		verts, err := m.FaceVertices(f)
		require.NoError(t, err)
		assert.Len(t, verts, 4)
	}
}

func TestAddFace_SharedEdgeResolvesTwins(t *testing.T) {
	m := mesh.New()
	newCube(m)

	// every half-edge must have a non-zero twin on a closed cube.
	for h := range m.IterHalfedges {
		twin, err := m.HalfedgeTwin(h)
		require.NoError(t, err)
		assert.False(t, twin.IsZero(), "half-edge %s has no twin", h)
	}
}
