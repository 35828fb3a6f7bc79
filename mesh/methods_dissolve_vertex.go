package mesh

// DissolveVertex removes v and all its incident edges, unifying the
// surrounding faces into a single new face whose boundary is the star's
// outer loop.
//
// Errors with ErrIsolatedVertex if v has no outgoing half-edges, and with
// a half-edge-has-no-face error if any outgoing half-edge of v is a
// boundary half-edge; both are detected before the mesh is modified. Every
// doomed element is collected before anything is deleted, so no traversal
// performed during collection is invalidated by an in-progress removal.
func (m *Mesh) DissolveVertex(v VertexID) (FaceID, error) {
	outgoing, err := m.outgoingHalfedges(v)
	if err != nil {
		return FaceID{}, errorf("DissolveVertex", err)
	}
	if len(outgoing) == 0 {
		return FaceID{}, errorf("DissolveVertex", ErrIsolatedVertex)
	}
	for _, h := range outgoing {
		f, err := m.HalfedgeFace(h)
		if err != nil {
			return FaceID{}, errorf("DissolveVertex", err)
		}
		if f.IsZero() {
			return FaceID{}, errorf("DissolveVertex", errHalfedgeHasNoFace)
		}
	}

	newFace := m.AllocFace(HalfedgeID{})

	type doomed struct {
		tw, h HalfedgeID
		f     FaceID
	}
	toDelete := make([]doomed, 0, len(outgoing))

	for _, h := range outgoing {
		tw, err := m.HalfedgeTwin(h)
		if err != nil {
			return FaceID{}, errorf("DissolveVertex", err)
		}
		w, err := m.HalfedgeVertex(tw)
		if err != nil {
			return FaceID{}, errorf("DissolveVertex", err)
		}
		nxt, err := m.HalfedgeNext(h)
		if err != nil {
			return FaceID{}, errorf("DissolveVertex", err)
		}
		prv, err := m.previous(tw)
		if err != nil {
			return FaceID{}, errorf("DissolveVertex", err)
		}
		f, err := m.HalfedgeFace(h)
		if err != nil {
			return FaceID{}, errorf("DissolveVertex", err)
		}
		if f.IsZero() {
			return FaceID{}, errorf("DissolveVertex", errHalfedgeHasNoFace)
		}

		setNext(m, prv, nxt)
		if wh, _ := m.VertexHalfedge(w); wh == tw {
			setVertexHalfedge(m, w, nxt)
		}

		toDelete = append(toDelete, doomed{tw: tw, h: h, f: f})
	}

	firstNext, err := m.HalfedgeNext(outgoing[0])
	if err != nil {
		return FaceID{}, errorf("DissolveVertex", err)
	}
	outerLoop, err := m.halfedgeLoop(firstNext)
	if err != nil {
		return FaceID{}, errorf("DissolveVertex", err)
	}
	for _, h := range outerLoop {
		setHalfedgeFace(m, h, newFace)
	}
	setFaceHalfedge(m, newFace, outerLoop[0])

	if err := m.RemoveVertex(v); err != nil {
		return FaceID{}, errorf("DissolveVertex", err)
	}
	for _, d := range toDelete {
		if err := m.RemoveHalfedge(d.tw); err != nil {
			return FaceID{}, errorf("DissolveVertex", err)
		}
		if err := m.RemoveHalfedge(d.h); err != nil {
			return FaceID{}, errorf("DissolveVertex", err)
		}
		if err := m.RemoveFace(d.f); err != nil {
			return FaceID{}, errorf("DissolveVertex", err)
		}
	}

	return newFace, nil
}
