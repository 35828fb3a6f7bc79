package mesh_test

import "github.com/wrought3d/halfmesh/mesh"

// newCube builds a unit cube centered on the origin with CCW-wound (as seen
// from outside) quad faces, the winding convention the rest of the suite
// assumes. Returned in the order back, front, top, bottom, left, right.
func newCube(m *mesh.Mesh) (verts [8]mesh.VertexID, faces [6]mesh.FaceID) {
	positions := [8]mesh.Vec3{
		{X: -1, Y: -1, Z: -1}, // 0
		{X: 1, Y: -1, Z: -1},  // 1
		{X: 1, Y: 1, Z: -1},   // 2
		{X: -1, Y: 1, Z: -1},  // 3
		{X: -1, Y: -1, Z: 1},  // 4
		{X: 1, Y: -1, Z: 1},   // 5
		{X: 1, Y: 1, Z: 1},    // 6
		{X: -1, Y: 1, Z: 1},   // 7
	}
	for i, p := range positions {
		verts[i] = m.AllocVertex(p)
	}

	pm := mesh.NewPairMap()
	rings := [6][4]int{
		{0, 3, 2, 1}, // back (-z), viewed from outside looking toward +z
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

// newPlane builds a 2x2-vertex (single quad) open sheet and closes its
// boundary, returning the grid indexed [x][y].
func newPlane(m *mesh.Mesh) [2][2]mesh.VertexID {
	var grid [2][2]mesh.VertexID
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			grid[x][y] = m.AllocVertex(mesh.Vec3{X: float64(x), Y: 0, Z: float64(y)})
		}
	}
	pm := mesh.NewPairMap()
	m.AddFace([]mesh.VertexID{grid[0][0], grid[1][0], grid[1][1], grid[0][1]}, pm)
	if err := m.CloseBoundaries(); err != nil {
		panic(err)
	}
	return grid
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
