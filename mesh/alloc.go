package mesh

// HalfedgeFields bundles the four optional handles a freshly allocated
// half-edge may be given up front; primitives typically allocate a blank
// half-edge (zero HalfedgeFields) and fill fields in afterwards as the
// surrounding connectivity is worked out, mirroring the original
// HalfEdge::default() allocate-then-wire pattern.
type HalfedgeFields struct {
	Vertex VertexID
	Face   FaceID
	Twin   HalfedgeID
	Next   HalfedgeID
}

// AllocVertex allocates a new vertex at pos with no outgoing half-edge
// (isolated). Complexity: O(1).
func (m *Mesh) AllocVertex(pos Vec3) VertexID {
	h := m.vertices.Alloc(vertexData{pos: pos})
	return VertexID{h: h}
}

// AllocHalfedge allocates a new half-edge with the given initial fields.
// Complexity: O(1).
func (m *Mesh) AllocHalfedge(fields HalfedgeFields) HalfedgeID {
	h := m.halfedges.Alloc(halfedgeData{
		vertex: fields.Vertex,
		face:   fields.Face,
		twin:   fields.Twin,
		next:   fields.Next,
	})
	return HalfedgeID{h: h}
}

// AllocFace allocates a new face whose boundary half-edge is initially he
// (which may be the zero HalfedgeID if it will be assigned shortly after).
// Complexity: O(1).
func (m *Mesh) AllocFace(he HalfedgeID) FaceID {
	h := m.faces.Alloc(faceData{halfedge: he})
	return FaceID{h: h}
}

// RemoveVertex frees v's slot, invalidating v and any copies of it.
func (m *Mesh) RemoveVertex(v VertexID) error {
	delete(m.vertexMarks, v)
	if err := m.vertices.Remove(v.h); err != nil {
		return errorf("RemoveVertex", err)
	}
	return nil
}

// RemoveHalfedge frees h's slot, invalidating h and any copies of it.
func (m *Mesh) RemoveHalfedge(h HalfedgeID) error {
	delete(m.halfedgeMarks, h)
	if err := m.halfedges.Remove(h.h); err != nil {
		return errorf("RemoveHalfedge", err)
	}
	return nil
}

// RemoveFace frees f's slot, invalidating f and any copies of it.
func (m *Mesh) RemoveFace(f FaceID) error {
	if err := m.faces.Remove(f.h); err != nil {
		return errorf("RemoveFace", err)
	}
	return nil
}
