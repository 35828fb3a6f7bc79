package mesh

// CutFace inserts a new edge between two non-adjacent vertices sharing a
// face, splitting that face into two. The half-edges of the original
// face's boundary lying between v (inclusive) and w (exclusive), walking
// the cycle, are reassigned to the newly created face; the rest stay with
// the original face.
//
// Errors: ErrVerticesShareNoFace if v and w share no face,
// ErrFaceTooSmallToCut if the shared face has fewer than 4 sides,
// ErrVerticesAlreadyConnected if they're already joined by a half-edge.
// The face-size check runs first, so two corners of a triangle report
// ErrFaceTooSmallToCut.
func (m *Mesh) CutFace(v, w VertexID) (HalfedgeID, error) {
	outgoing, err := m.outgoingHalfedges(v)
	if err != nil {
		return HalfedgeID{}, errorf("CutFace", err)
	}

	var face FaceID
	found := false
	for _, h := range outgoing {
		f, err := m.HalfedgeFace(h)
		if err != nil {
			return HalfedgeID{}, errorf("CutFace", err)
		}
		if f.IsZero() {
			continue
		}
		verts, err := m.FaceVertices(f)
		if err != nil {
			return HalfedgeID{}, errorf("CutFace", err)
		}
		if containsVertex(verts, w) {
			face = f
			found = true
			break
		}
	}
	if !found {
		return HalfedgeID{}, errorf("CutFace", ErrVerticesShareNoFace)
	}

	faceHalfedges, err := m.faceLoop(face)
	if err != nil {
		return HalfedgeID{}, errorf("CutFace", err)
	}
	if len(faceHalfedges) <= 3 {
		return HalfedgeID{}, errorf("CutFace", ErrFaceTooSmallToCut)
	}

	if _, err := m.halfedgeTo(v, w); err == nil {
		return HalfedgeID{}, errorf("CutFace", ErrVerticesAlreadyConnected)
	}

	n := len(faceHalfedges)
	vIdx, wIdx := -1, -1
	for i, h := range faceHalfedges {
		vert, err := m.HalfedgeVertex(h)
		if err != nil {
			return HalfedgeID{}, errorf("CutFace", err)
		}
		if vert == v {
			vIdx = i
		}
		if vert == w {
			wIdx = i
		}
	}

	hVPrevV := faceHalfedges[mod(vIdx-1, n)]
	hVVNext := faceHalfedges[vIdx]
	hWPrevW := faceHalfedges[mod(wIdx-1, n)]
	hWWNext := faceHalfedges[wIdx]

	hVW := m.AllocHalfedge(HalfedgeFields{})
	hWV := m.AllocHalfedge(HalfedgeFields{})
	newFace := m.AllocFace(HalfedgeID{})

	setHalfedgeVertex(m, hVW, v)
	setHalfedgeVertex(m, hWV, w)
	setHalfedgeFace(m, hVW, face)
	setHalfedgeFace(m, hWV, newFace)
	setTwin(m, hVW, hWV)
	setTwin(m, hWV, hVW)
	setNext(m, hVW, hWWNext)
	setNext(m, hWV, hVVNext)
	setFaceHalfedge(m, newFace, hWV)
	setFaceHalfedge(m, face, hVW)

	setNext(m, hVPrevV, hVW)
	setNext(m, hWPrevW, hWV)

	start := vIdx
	end := mod(wIdx-1, n)
	if end < start {
		end += n
	}
	for i := start; i <= end; i++ {
		setHalfedgeFace(m, faceHalfedges[i%n], newFace)
	}

	return hVW, nil
}

func containsVertex(verts []VertexID, target VertexID) bool {
	for _, v := range verts {
		if v == target {
			return true
		}
	}
	return false
}

// mod is Euclidean modulo: always returns a value in [0, n).
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
