package traverse_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrought3d/halfmesh/mesh"
	"github.com/wrought3d/halfmesh/traverse"
)

func newCube(m *mesh.Mesh) (verts [8]mesh.VertexID, faces [6]mesh.FaceID) {
	positions := [8]mesh.Vec3{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	}
	for i, p := range positions {
		verts[i] = m.AllocVertex(p)
	}
	pm := mesh.NewPairMap()
	rings := [6][4]int{
		{0, 3, 2, 1}, {4, 5, 6, 7}, {3, 7, 6, 2}, {0, 1, 5, 4}, {0, 4, 7, 3}, {1, 2, 6, 5},
	}
	for i, ring := range rings {
		vs := make([]mesh.VertexID, 4)
		for j, idx := range ring {
			vs[j] = verts[idx]
		}
		faces[i] = m.AddFace(vs, pm)
	}
	return verts, faces
}

func TestVertexCursor_HalfedgeTo(t *testing.T) {
	m := mesh.New()
	verts, _ := newCube(m)

	h, err := traverse.AtVertex(m, verts[0]).HalfedgeTo(verts[1]).TryEnd()
	require.NoError(t, err)

	v, w, err := traverse.AtHalfedge(m, h).SrcDstPair()
	require.NoError(t, err)
	assert.Equal(t, verts[0], v)
	assert.Equal(t, verts[1], w)
}

func TestVertexCursor_HalfedgeToMissingErrors(t *testing.T) {
	m := mesh.New()
	verts, _ := newCube(m)

	_, err := traverse.AtVertex(m, verts[0]).HalfedgeTo(verts[6]).TryEnd()
	assert.True(t, errors.Is(err, traverse.ErrHalfedgeFromToNotFound))
}

func TestVertexCursor_OutgoingAndIncomingHalfedgesAgreeInCount(t *testing.T) {
	m := mesh.New()
	verts, _ := newCube(m)

	out, err := traverse.AtVertex(m, verts[0]).OutgoingHalfedges().TryEnd()
	require.NoError(t, err)
	in, err := traverse.AtVertex(m, verts[0]).IncomingHalfedges().TryEnd()
	require.NoError(t, err)

	assert.Len(t, out, 3) // cube corner valence
	assert.Len(t, in, 3)
}

func TestHalfedgeCursor_ChainedTwinNext(t *testing.T) {
	m := mesh.New()
	verts, _ := newCube(m)

	h, err := traverse.AtVertex(m, verts[0]).HalfedgeTo(verts[1]).TryEnd()
	require.NoError(t, err)

	back, err := traverse.AtHalfedge(m, h).Twin().Next().Twin().Next().TryEnd()
	require.NoError(t, err)
	assert.False(t, back.IsZero())
}

func TestHalfedgeCursor_CycleAroundFanMatchesTwinThenNext(t *testing.T) {
	m := mesh.New()
	verts, _ := newCube(m)

	h, err := traverse.AtVertex(m, verts[0]).Halfedge().TryEnd()
	require.NoError(t, err)

	got, err := traverse.AtHalfedge(m, h).CycleAroundFan().TryEnd()
	require.NoError(t, err)
	want, err := traverse.AtHalfedge(m, h).Twin().Next().TryEnd()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFaceCursor_VerticesReturnsRingInOrder(t *testing.T) {
	m := mesh.New()
	verts, faces := newCube(m)

	got, err := traverse.AtFace(m, faces[0]).Vertices().TryEnd()
	require.NoError(t, err)
	assert.Equal(t, []mesh.VertexID{verts[0], verts[3], verts[2], verts[1]}, got)
}

func TestHalfedgeCursor_End_PanicsOnMissingTwin(t *testing.T) {
	m := mesh.New()
	v := m.AllocVertex(mesh.Vec3{})
	h := m.AllocHalfedge(mesh.HalfedgeFields{Vertex: v})

	assert.Panics(t, func() {
		traverse.AtHalfedge(m, h).Twin().End()
	})
}

func TestErrorPropagatesThroughChain(t *testing.T) {
	m := mesh.New()
	verts, _ := newCube(m)

	// verts[0] and verts[6] are opposite corners; no direct edge exists.
	_, err := traverse.AtVertex(m, verts[0]).HalfedgeTo(verts[6]).Twin().Next().TryEnd()
	assert.Error(t, err)
}
