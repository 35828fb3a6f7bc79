package mesh

// DuplicateEdge splits the edge carried by h into two coincident edges,
// separated by a new degenerate 2-sided face. h and its original twin t
// keep their own faces and vertices; two new half-edges h2 (v->w) and t2
// (w->v) are allocated on the new face and cross-twinned with the
// originals: h twins with t2, and t twins with h2 — not with the
// same-direction half-edge on the new face's own side. The result is a
// zero-area sliver face wedged between h's original face and its former
// twin's face — useful as a seed for operations (e.g. a manual bevel)
// that need room to push a new quad in between two faces without first
// cutting anything.
func (m *Mesh) DuplicateEdge(h HalfedgeID) (HalfedgeID, error) {
	t, err := m.HalfedgeTwin(h)
	if err != nil {
		return HalfedgeID{}, errorf("DuplicateEdge", err)
	}
	v, err := m.HalfedgeVertex(h)
	if err != nil {
		return HalfedgeID{}, errorf("DuplicateEdge", err)
	}
	w, err := m.HalfedgeVertex(t)
	if err != nil {
		return HalfedgeID{}, errorf("DuplicateEdge", err)
	}

	newFace := m.AllocFace(HalfedgeID{})
	h2 := m.AllocHalfedge(HalfedgeFields{Vertex: v, Face: newFace, Twin: t})
	t2 := m.AllocHalfedge(HalfedgeFields{Vertex: w, Face: newFace, Twin: h})
	setNext(m, h2, t2)
	setNext(m, t2, h2)
	setTwin(m, h, t2)
	setTwin(m, t, h2)
	setFaceHalfedge(m, newFace, h2)

	return h2, nil
}
