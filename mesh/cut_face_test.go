package mesh_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrought3d/halfmesh/mesh"
)

func TestCutFace_SplitsQuadAcrossDiagonal(t *testing.T) {
	m := mesh.New()
	verts, _ := newCube(m)

	before := m.FaceCount()
	h, err := m.CutFace(verts[0], verts[5]) // diagonal of the bottom quad
	require.NoError(t, err)
	assert.False(t, h.IsZero())
	assert.Equal(t, before+1, m.FaceCount())
	require.NoError(t, mesh.CheckInvariants(m))
}

func TestCutFace_RejectsTriangleFace(t *testing.T) {
	m := mesh.New()
	verts, _ := newTetrahedron(m)

	_, err := m.CutFace(verts[0], verts[2])
	assert.True(t, errors.Is(err, mesh.ErrFaceTooSmallToCut))
}

func TestCutFace_RejectsAlreadyConnectedVertices(t *testing.T) {
	m := mesh.New()
	verts, _ := newCube(m)

	_, err := m.CutFace(verts[0], verts[1])
	assert.True(t, errors.Is(err, mesh.ErrVerticesAlreadyConnected))
}

func TestCutFace_RejectsVerticesSharingNoFace(t *testing.T) {
	m := mesh.New()
	verts, _ := newCube(m)

	_, err := m.CutFace(verts[0], verts[6]) // opposite corners of the cube
	assert.True(t, errors.Is(err, mesh.ErrVerticesShareNoFace))
}
