package mesh

// AddFace creates a face bounded by vertices, a CCW-ordered vertex ring
// (winding convention fixed module-wide, see SPEC_FULL.md §9). It reuses a half-edge already recorded in pairMap for a
// (vᵢ, vᵢ₊₁) pair — rewriting its face — and otherwise allocates a fresh
// one; either way pairMap is updated so a later AddFace call sharing an
// edge with this one can find it. After linking next around the ring and
// pointing each vertex's outgoing half-edge at its ring edge, a second
// pass resolves twins by looking up the reverse pair (vᵢ₊₁, vᵢ); a twin
// that doesn't exist yet is left zero for a future AddFace to supply.
//
// Precondition (caller's responsibility, not checked): vertices are
// coplanar along a single boundary, wound consistently with any existing
// neighboring faces. Violating this silently produces a structurally
// invalid mesh rather than an error — spec.md §4.D is explicit that this
// is out of AddFace's scope to detect.
func (m *Mesh) AddFace(vertices []VertexID, pairMap PairMap) FaceID {
	n := len(vertices)
	f := m.AllocFace(HalfedgeID{})

	halfedges := make([]HalfedgeID, 0, n)
	for i := 0; i < n; i++ {
		v := vertices[i]
		v2 := vertices[(i+1)%n]

		h, existed := pairMap.get(v, v2)
		if existed {
			hd, _ := m.halfedge(h)
			hd.face = f
		} else {
			h = m.AllocHalfedge(HalfedgeFields{Vertex: v, Face: f})
		}
		pairMap.set(v, v2, h)
		halfedges = append(halfedges, h)

		vd, _ := m.vertex(v)
		vd.halfedge = h
	}

	for i := 0; i < n; i++ {
		ha := halfedges[i]
		hb := halfedges[(i+1)%n]
		had, _ := m.halfedge(ha)
		had.next = hb
	}

	fd, _ := m.face(f)
	fd.halfedge = halfedges[0]

	for i := 0; i < n; i++ {
		a := vertices[i]
		b := vertices[(i+1)%n]
		hAB := halfedges[i]
		if hBA, ok := pairMap.get(b, a); ok {
			hBAd, _ := m.halfedge(hBA)
			hBAd.twin = hAB
			hABd, _ := m.halfedge(hAB)
			hABd.twin = hBA
		}
	}

	return f
}
