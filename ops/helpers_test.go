package ops_test

import (
	"errors"

	"github.com/wrought3d/halfmesh/mesh"
)

var errHalfedgeNotFound = errors.New("ops_test: no half-edge between the given vertices")

// newCube builds a unit cube centered on the origin with CCW-wound (as seen
// from outside) quad faces. Returned in the order back, front, top, bottom,
// left, right, matching package meshbuild's Cube.
func newCube(m *mesh.Mesh) (verts [8]mesh.VertexID, faces [6]mesh.FaceID) {
	positions := [8]mesh.Vec3{
		{X: -1, Y: -1, Z: -1},
		{X: 1, Y: -1, Z: -1},
		{X: 1, Y: 1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
		{X: 1, Y: -1, Z: 1},
		{X: 1, Y: 1, Z: 1},
		{X: -1, Y: 1, Z: 1},
	}
	for i, p := range positions {
		verts[i] = m.AllocVertex(p)
	}

	pm := mesh.NewPairMap()
	rings := [6][4]int{
		{0, 3, 2, 1}, // back (-z)
		{4, 5, 6, 7}, // front (+z)
		{3, 7, 6, 2}, // top (+y)
		{0, 1, 5, 4}, // bottom (-y)
		{0, 4, 7, 3}, // left (-x)
		{1, 2, 6, 5}, // right (+x)
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

// newTetrahedron builds a regular-ish tetrahedron with CCW-wound faces.
func newTetrahedron(m *mesh.Mesh) (verts [4]mesh.VertexID, faces [4]mesh.FaceID) {
	positions := [4]mesh.Vec3{
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
	}
	for i, p := range positions {
		verts[i] = m.AllocVertex(p)
	}

	pm := mesh.NewPairMap()
	rings := [4][3]int{
		{0, 1, 2},
		{0, 3, 1},
		{0, 2, 3},
		{1, 3, 2},
	}
	for i, ring := range rings {
		vs := []mesh.VertexID{verts[ring[0]], verts[ring[1]], verts[ring[2]]}
		faces[i] = m.AddFace(vs, pm)
	}
	return verts, faces
}

// vertexHalfedgeTo finds the half-edge from -> to via mesh's exported
// accessors, matching the helper mesh_test uses internally.
func vertexHalfedgeTo(m *mesh.Mesh, from, to mesh.VertexID) (mesh.HalfedgeID, error) {
	start, err := m.VertexHalfedge(from)
	if err != nil {
		return mesh.HalfedgeID{}, err
	}
	h := start
	for {
		twin, err := m.HalfedgeTwin(h)
		if err != nil {
			return mesh.HalfedgeID{}, err
		}
		dst, err := m.HalfedgeVertex(twin)
		if err != nil {
			return mesh.HalfedgeID{}, err
		}
		if dst == to {
			return h, nil
		}
		h, err = m.HalfedgeNext(twin)
		if err != nil {
			return mesh.HalfedgeID{}, err
		}
		if h == start {
			return mesh.HalfedgeID{}, errHalfedgeNotFound
		}
	}
}
