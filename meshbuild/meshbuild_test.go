package meshbuild_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrought3d/halfmesh/mesh"
	"github.com/wrought3d/halfmesh/meshbuild"
)

func TestCube(t *testing.T) {
	m := mesh.New()
	verts, faces := meshbuild.Cube(m)

	assert.Equal(t, 8, m.VertexCount())
	assert.Equal(t, 6, m.FaceCount())
	require.NoError(t, mesh.CheckInvariants(m))

	for _, f := range faces {
		fv, err := m.FaceVertices(f)
		require.NoError(t, err)
		assert.Len(t, fv, 4)
	}
	for _, v := range verts {
		_, err := m.Position(v)
		require.NoError(t, err)
	}
}

func TestTetrahedron(t *testing.T) {
	m := mesh.New()
	_, faces := meshbuild.Tetrahedron(m)

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 4, m.FaceCount())
	require.NoError(t, mesh.CheckInvariants(m))

	for _, f := range faces {
		fv, err := m.FaceVertices(f)
		require.NoError(t, err)
		assert.Len(t, fv, 3)
	}
}

func TestOctahedron(t *testing.T) {
	m := mesh.New()
	_, faces := meshbuild.Octahedron(m)

	assert.Equal(t, 6, m.VertexCount())
	assert.Equal(t, 8, m.FaceCount())
	require.NoError(t, mesh.CheckInvariants(m))

	for _, f := range faces {
		fv, err := m.FaceVertices(f)
		require.NoError(t, err)
		assert.Len(t, fv, 3)
	}
}

// TestPlane checks a grid mesh closes its outer boundary: CheckInvariants
// must pass even though a plane's edge half-edges have no incident face.
func TestPlane(t *testing.T) {
	m := mesh.New()
	grid := meshbuild.Plane(m, 3, 4)

	assert.Equal(t, 3, len(grid))
	assert.Equal(t, 4, len(grid[0]))
	assert.Equal(t, 12, m.VertexCount())
	assert.Equal(t, 2*3, m.FaceCount())
	require.NoError(t, mesh.CheckInvariants(m))

	var boundaryCount int
	for h := range m.IterHalfedges {
		f, err := m.HalfedgeFace(h)
		require.NoError(t, err)
		if f.IsZero() {
			boundaryCount++
		}
	}
	assert.Greater(t, boundaryCount, 0, "a plane's outer ring must have boundary half-edges")
}
