package mesh

// DissolveEdge removes h and its twin, merging the two adjacent faces into
// one (the face on h's side is kept; the twin's face is freed).
//
// Precondition: neither side may be a boundary half-edge; violating this
// returns ErrBoundaryEdgeNotAllowed and leaves the mesh untouched.
func (m *Mesh) DissolveEdge(h HalfedgeID) error {
	hL := h
	hR, err := m.HalfedgeTwin(hL)
	if err != nil {
		return errorf("DissolveEdge", err)
	}

	lBoundary, err := m.isBoundary(hL)
	if err != nil {
		return errorf("DissolveEdge", err)
	}
	rBoundary, err := m.isBoundary(hR)
	if err != nil {
		return errorf("DissolveEdge", err)
	}
	if lBoundary || rBoundary {
		return errorf("DissolveEdge", ErrBoundaryEdgeNotAllowed)
	}

	fL, err := m.HalfedgeFace(hL)
	if err != nil {
		return errorf("DissolveEdge", err)
	}
	fR, err := m.HalfedgeFace(hR)
	if err != nil {
		return errorf("DissolveEdge", err)
	}
	v, err := m.HalfedgeVertex(hL)
	if err != nil {
		return errorf("DissolveEdge", err)
	}
	w, err := m.HalfedgeVertex(hR)
	if err != nil {
		return errorf("DissolveEdge", err)
	}

	hLNext, err := m.HalfedgeNext(hL)
	if err != nil {
		return errorf("DissolveEdge", err)
	}
	hLPrev, err := m.previous(hL)
	if err != nil {
		return errorf("DissolveEdge", err)
	}
	hRNext, err := m.HalfedgeNext(hR)
	if err != nil {
		return errorf("DissolveEdge", err)
	}
	hRPrev, err := m.previous(hR)
	if err != nil {
		return errorf("DissolveEdge", err)
	}

	halfedgesR, err := m.halfedgeLoop(hR)
	if err != nil {
		return errorf("DissolveEdge", err)
	}

	setNext(m, hRPrev, hLNext)
	setNext(m, hLPrev, hRNext)
	for _, hr := range halfedgesR {
		setHalfedgeFace(m, hr, fL)
	}

	if fh, _ := m.FaceHalfedge(fL); fh == hL {
		setFaceHalfedge(m, fL, hLPrev)
	}
	if vh, _ := m.VertexHalfedge(v); vh == hL {
		setVertexHalfedge(m, v, hLNext)
	}
	if wh, _ := m.VertexHalfedge(w); wh == hR {
		setVertexHalfedge(m, w, hRNext)
	}

	if err := m.RemoveHalfedge(hL); err != nil {
		return errorf("DissolveEdge", err)
	}
	if err := m.RemoveHalfedge(hR); err != nil {
		return errorf("DissolveEdge", err)
	}
	if err := m.RemoveFace(fR); err != nil {
		return errorf("DissolveEdge", err)
	}
	return nil
}
