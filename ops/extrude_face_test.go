package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrought3d/halfmesh/mesh"
	"github.com/wrought3d/halfmesh/ops"
)

// TestExtrudeFace_Cube covers spec.md §8's cube-extrusion scenario: a unit
// cube's top face extruded by 1 along its own normal ends up with 12
// vertices, 10 faces, and the new front face sitting at y=2.
func TestExtrudeFace_Cube(t *testing.T) {
	m := mesh.New()
	_, faces := newCube(m)
	topFace := faces[2]

	normal, err := m.FaceNormal(topFace)
	require.NoError(t, err)
	require.Equal(t, mesh.Vec3{X: 0, Y: 1, Z: 0}, normal)

	sides, front, err := ops.ExtrudeFace(m, topFace, normal.Scale(1))
	require.NoError(t, err)
	assert.Len(t, sides, 4)
	assert.False(t, front.IsZero())

	assert.Equal(t, 12, m.VertexCount())
	assert.Equal(t, 10, m.FaceCount())

	frontVerts, err := m.FaceVertices(front)
	require.NoError(t, err)
	require.Len(t, frontVerts, 4)
	for _, v := range frontVerts {
		pos, err := m.Position(v)
		require.NoError(t, err)
		assert.Equal(t, 2.0, pos.Y)
	}

	require.NoError(t, mesh.CheckInvariants(m))
}

func TestExtrudeFace_RemovesOriginalFace(t *testing.T) {
	m := mesh.New()
	_, faces := newCube(m)
	topFace := faces[2]

	before := m.FaceCount()
	_, _, err := ops.ExtrudeFace(m, topFace, mesh.Vec3{X: 0, Y: 1, Z: 0})
	require.NoError(t, err)

	// 4 side faces + 1 front face - 1 removed original = +4.
	assert.Equal(t, before+4, m.FaceCount())
	require.NoError(t, mesh.CheckInvariants(m))
}
