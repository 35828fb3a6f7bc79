package mesh

// The setters below are the raw, indexed write API spec.md §3 says elements
// are "mutated only via the store's indexed write API". They're unexported:
// package mesh's own primitives are the only callers, and every handle they
// receive was either just allocated in the same primitive or read back from
// the mesh moments earlier, so the arena lookup cannot fail in practice —
// primitives that need to surface a lookup failure do so explicitly via the
// exported Halfedge*/Vertex*/Face* accessors before reaching these setters.

func setNext(m *Mesh, h, next HalfedgeID) {
	d, _ := m.halfedge(h)
	d.next = next
}

func setTwin(m *Mesh, h, twin HalfedgeID) {
	d, _ := m.halfedge(h)
	d.twin = twin
}

func setHalfedgeVertex(m *Mesh, h HalfedgeID, v VertexID) {
	d, _ := m.halfedge(h)
	d.vertex = v
}

func setHalfedgeFace(m *Mesh, h HalfedgeID, f FaceID) {
	d, _ := m.halfedge(h)
	d.face = f
}

func setVertexHalfedge(m *Mesh, v VertexID, h HalfedgeID) {
	d, _ := m.vertex(v)
	d.halfedge = h
}

func setFaceHalfedge(m *Mesh, f FaceID, h HalfedgeID) {
	d, _ := m.face(f)
	d.halfedge = h
}
