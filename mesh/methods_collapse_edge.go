package mesh

// CollapseEdge merges end(h) into start(h): every half-edge previously
// outgoing from w = end(h) is re-homed to v = start(h); both h and its
// twin are deleted, and w is deleted.
//
// Incident faces may become degenerate 2-gons as a result — this is a
// known, intentionally unhandled edge case (see SPEC_FULL.md §9 / the
// Open Question it resolves): fixing it would change what downstream
// operations (bevel, in particular) can assume about the mesh, so it's
// left as-is rather than patched silently.
func (m *Mesh) CollapseEdge(h HalfedgeID) (VertexID, error) {
	t, err := m.HalfedgeTwin(h)
	if err != nil {
		return VertexID{}, errorf("CollapseEdge", err)
	}
	v, err := m.HalfedgeVertex(h)
	if err != nil {
		return VertexID{}, errorf("CollapseEdge", err)
	}
	w, err := m.HalfedgeVertex(t)
	if err != nil {
		return VertexID{}, errorf("CollapseEdge", err)
	}

	hNext, err := m.HalfedgeNext(h)
	if err != nil {
		return VertexID{}, errorf("CollapseEdge", err)
	}
	hPrev, err := m.previous(h)
	if err != nil {
		return VertexID{}, errorf("CollapseEdge", err)
	}
	tNext, err := m.HalfedgeNext(t)
	if err != nil {
		return VertexID{}, errorf("CollapseEdge", err)
	}
	tPrev, err := m.previous(t)
	if err != nil {
		return VertexID{}, errorf("CollapseEdge", err)
	}
	wOutgoing, err := m.outgoingHalfedges(w)
	if err != nil {
		return VertexID{}, errorf("CollapseEdge", err)
	}
	vNextFan := tNext // at_halfedge(h).cycle_around_fan() == next(twin(h)) == tNext

	fH, err := m.HalfedgeFace(h)
	if err != nil {
		return VertexID{}, errorf("CollapseEdge", err)
	}
	fT, err := m.HalfedgeFace(t)
	if err != nil {
		return VertexID{}, errorf("CollapseEdge", err)
	}

	for _, hwo := range wOutgoing {
		setHalfedgeVertex(m, hwo, v)
	}
	setNext(m, tPrev, tNext)
	setNext(m, hPrev, hNext)

	if !fH.IsZero() {
		if fh, _ := m.FaceHalfedge(fH); fh == h {
			setFaceHalfedge(m, fH, hNext)
		}
	}
	if !fT.IsZero() {
		if ft, _ := m.FaceHalfedge(fT); ft == t {
			setFaceHalfedge(m, fT, tNext)
		}
	}
	if vh, _ := m.VertexHalfedge(v); vh == h {
		setVertexHalfedge(m, v, vNextFan)
	}

	if err := m.RemoveHalfedge(t); err != nil {
		return VertexID{}, errorf("CollapseEdge", err)
	}
	if err := m.RemoveHalfedge(h); err != nil {
		return VertexID{}, errorf("CollapseEdge", err)
	}
	if err := m.RemoveVertex(w); err != nil {
		return VertexID{}, errorf("CollapseEdge", err)
	}

	return v, nil
}
