package meshbuild

import "github.com/wrought3d/halfmesh/mesh"

// Cube builds a unit cube centered on the origin with CCW-wound (as seen
// from outside) quad faces — the winding convention the rest of this
// module assumes everywhere. Vertices are returned in a fixed index order
// (back-bottom-left, back-bottom-right, back-top-right, back-top-left,
// then the same four offset to the front), faces in the order back,
// front, top, bottom, left, right.
func Cube(m *mesh.Mesh) (vertices [8]mesh.VertexID, faces [6]mesh.FaceID) {
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
		vertices[i] = m.AllocVertex(p)
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
			vs[j] = vertices[idx]
		}
		faces[i] = m.AddFace(vs, pm)
	}
	return vertices, faces
}

// Tetrahedron builds a regular tetrahedron inscribed in the cube's corners
// (an alternating subset of Cube's eight vertex positions), CCW-wound as
// seen from outside.
func Tetrahedron(m *mesh.Mesh) (vertices [4]mesh.VertexID, faces [4]mesh.FaceID) {
	positions := [4]mesh.Vec3{
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
	}
	for i, p := range positions {
		vertices[i] = m.AllocVertex(p)
	}

	pm := mesh.NewPairMap()
	rings := [4][3]int{
		{0, 1, 2},
		{0, 3, 1},
		{0, 2, 3},
		{1, 3, 2},
	}
	for i, ring := range rings {
		vs := []mesh.VertexID{vertices[ring[0]], vertices[ring[1]], vertices[ring[2]]}
		faces[i] = m.AddFace(vs, pm)
	}
	return vertices, faces
}

// Octahedron builds a regular octahedron (two square pyramids base to
// base) from six axis-aligned vertices and eight triangular faces,
// CCW-wound as seen from outside.
func Octahedron(m *mesh.Mesh) (vertices [6]mesh.VertexID, faces [8]mesh.FaceID) {
	positions := [6]mesh.Vec3{
		{X: 1, Y: 0, Z: 0},  // 0: +x
		{X: -1, Y: 0, Z: 0}, // 1: -x
		{X: 0, Y: 1, Z: 0},  // 2: +y (top apex)
		{X: 0, Y: -1, Z: 0}, // 3: -y (bottom apex)
		{X: 0, Y: 0, Z: 1},  // 4: +z
		{X: 0, Y: 0, Z: -1}, // 5: -z
	}
	for i, p := range positions {
		vertices[i] = m.AllocVertex(p)
	}

	pm := mesh.NewPairMap()
	rings := [8][3]int{
		{2, 4, 0}, {2, 0, 5}, {2, 5, 1}, {2, 1, 4},
		{3, 0, 4}, {3, 5, 0}, {3, 1, 5}, {3, 4, 1},
	}
	for i, ring := range rings {
		vs := []mesh.VertexID{vertices[ring[0]], vertices[ring[1]], vertices[ring[2]]}
		faces[i] = m.AddFace(vs, pm)
	}
	return vertices, faces
}

// Plane builds a row-major grid of xRes x zRes vertices, i.e.
// (xRes-1) x (zRes-1) quads, on the y=0 plane, spanning
// [0, xRes-1] x [0, zRes-1], and closes its outer boundary with
// Mesh.CloseBoundaries so the open sheet satisfies invariant 7 (a
// half-edge with no face is a boundary half-edge threaded into its own
// next loop). Vertex IDs are returned indexed grid[x][z], matching the
// teacher's Grid constructor's row-major "(r,c)" convention.
func Plane(m *mesh.Mesh, xRes, zRes int) [][]mesh.VertexID {
	grid := make([][]mesh.VertexID, xRes)
	for x := 0; x < xRes; x++ {
		grid[x] = make([]mesh.VertexID, zRes)
		for z := 0; z < zRes; z++ {
			grid[x][z] = m.AllocVertex(mesh.Vec3{X: float64(x), Y: 0, Z: float64(z)})
		}
	}

	pm := mesh.NewPairMap()
	for x := 0; x < xRes-1; x++ {
		for z := 0; z < zRes-1; z++ {
			ring := []mesh.VertexID{grid[x][z], grid[x+1][z], grid[x+1][z+1], grid[x][z+1]}
			m.AddFace(ring, pm)
		}
	}
	if err := m.CloseBoundaries(); err != nil {
		panic(err)
	}
	return grid
}
