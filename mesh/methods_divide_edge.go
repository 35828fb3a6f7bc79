package mesh

// DivideEdge inserts a new vertex x at lerp(pos(start(h)), pos(end(h)), t),
// splitting the undirected edge in two.
//
// Id stability contract: h continues to refer to the *second* half of the
// edge (from x to the original destination w); a newly allocated
// half-edge occupies the first half (from v to x). h's twin's handle is
// likewise preserved on its second half. ChamferVertex's loop over a
// vertex's outgoing half-edges depends on this: it calls DivideEdge once
// per outgoing half-edge and expects each original handle to keep naming
// a live, correctly-positioned edge afterward.
func (m *Mesh) DivideEdge(h HalfedgeID, t float64) (VertexID, error) {
	hL := h
	hR, err := m.HalfedgeTwin(hL)
	if err != nil {
		return VertexID{}, errorf("DivideEdge", err)
	}
	hLPrev, err := m.previous(hL)
	if err != nil {
		return VertexID{}, errorf("DivideEdge", err)
	}
	hRNext, err := m.HalfedgeNext(hR)
	if err != nil {
		return VertexID{}, errorf("DivideEdge", err)
	}
	fL, err := m.HalfedgeFace(hL)
	if err != nil {
		return VertexID{}, errorf("DivideEdge", err)
	}
	fR, err := m.HalfedgeFace(hR)
	if err != nil {
		return VertexID{}, errorf("DivideEdge", err)
	}
	v, err := m.HalfedgeVertex(hL)
	if err != nil {
		return VertexID{}, errorf("DivideEdge", err)
	}
	w, err := m.HalfedgeVertex(hR)
	if err != nil {
		return VertexID{}, errorf("DivideEdge", err)
	}

	vPos, err := m.Position(v)
	if err != nil {
		return VertexID{}, errorf("DivideEdge", err)
	}
	wPos, err := m.Position(w)
	if err != nil {
		return VertexID{}, errorf("DivideEdge", err)
	}
	pos := vPos.Lerp(wPos, t)

	x := m.AllocVertex(pos)
	hL2 := m.AllocHalfedge(HalfedgeFields{})
	hR2 := m.AllocHalfedge(HalfedgeFields{})

	// next pointers
	setNext(m, hL2, hL)
	setNext(m, hLPrev, hL2)
	setNext(m, hR, hR2)
	setNext(m, hR2, hRNext)

	// twin pointers
	setTwin(m, hL2, hR2)
	setTwin(m, hR2, hL2)
	setTwin(m, hL, hR)
	setTwin(m, hR, hL)

	// vertex pointers
	setHalfedgeVertex(m, hL, x)
	setHalfedgeVertex(m, hR, w)
	setHalfedgeVertex(m, hR2, x)
	setHalfedgeVertex(m, hL2, v)

	// face pointers (may be zero for a boundary half-edge)
	setHalfedgeFace(m, hL2, fL)
	setHalfedgeFace(m, hR2, fR)

	setVertexHalfedge(m, x, hL)
	setVertexHalfedge(m, v, hL2)

	return x, nil
}
