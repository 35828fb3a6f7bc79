package mesh

import "fmt"

// SplitVertex splits v into two vertices, v and w = v+delta, joined by a
// new edge. v's fan is partitioned into a "left side" — the outgoing edges
// strictly after v->vr and before v->vl in fan (twin∘next, clockwise)
// order — and a "right side"; left-side outgoing edges are rewired to emit from w instead. Two
// new triangular faces are created spanning the gap on the vl and vr
// sides, absorbing whatever face used to sit at v<->vl and v<->vr.
// Boundary sides (no adjacent face) simply skip face bookkeeping on that
// side.
//
// Errors if vl or vr is not adjacent to v.
func (m *Mesh) SplitVertex(v, vl, vr VertexID, delta Vec3) (VertexID, error) {
	vPos, err := m.Position(v)
	if err != nil {
		return VertexID{}, errorf("SplitVertex", err)
	}

	hRV, err := m.halfedgeTo(vr, v)
	if err != nil {
		return VertexID{}, errorf("SplitVertex", fmt.Errorf("vr not adjacent to v: %w", err))
	}
	hVR, err := m.HalfedgeTwin(hRV)
	if err != nil {
		return VertexID{}, errorf("SplitVertex", err)
	}
	hVL, err := m.halfedgeTo(v, vl)
	if err != nil {
		return VertexID{}, errorf("SplitVertex", fmt.Errorf("vl not adjacent to v: %w", err))
	}
	hLV, err := m.HalfedgeTwin(hVL)
	if err != nil {
		return VertexID{}, errorf("SplitVertex", err)
	}

	incoming, err := m.incomingHalfedges(v)
	if err != nil {
		return VertexID{}, errorf("SplitVertex", err)
	}
	outgoing, err := m.outgoingHalfedges(v)
	if err != nil {
		return VertexID{}, errorf("SplitVertex", err)
	}

	incomingHs := sliceBetween(incoming, indexOf(incoming, hRV), indexOf(incoming, hLV))
	outgoingHs := sliceBetween(outgoing, indexOf(outgoing, hVR), indexOf(outgoing, hVL))

	var fLOld, fROld FaceID
	if boundary, _ := m.isBoundary(hVL); !boundary {
		fLOld, err = m.HalfedgeFace(hVL)
		if err != nil {
			return VertexID{}, errorf("SplitVertex", err)
		}
	}
	if boundary, _ := m.isBoundary(hRV); !boundary {
		fROld, err = m.HalfedgeFace(hRV)
		if err != nil {
			return VertexID{}, errorf("SplitVertex", err)
		}
	}

	prevHRV, err := m.previous(hRV)
	if err != nil {
		return VertexID{}, errorf("SplitVertex", err)
	}
	nextHVL, err := m.HalfedgeNext(hVL)
	if err != nil {
		return VertexID{}, errorf("SplitVertex", err)
	}

	w := m.AllocVertex(vPos.Add(delta))
	hVW := m.AllocHalfedge(HalfedgeFields{})
	hWV := m.AllocHalfedge(HalfedgeFields{})
	hLW := m.AllocHalfedge(HalfedgeFields{})
	hWL := m.AllocHalfedge(HalfedgeFields{})
	hRW := m.AllocHalfedge(HalfedgeFields{})
	hWR := m.AllocHalfedge(HalfedgeFields{})
	fL := m.AllocFace(HalfedgeID{})
	fR := m.AllocFace(HalfedgeID{})

	// Left face: w -> v -> vl -> w
	setNext(m, hWV, hVL)
	setNext(m, hVL, hLW)
	setNext(m, hLW, hWV)
	setHalfedgeFace(m, hWV, fL)
	setHalfedgeFace(m, hVL, fL)
	setHalfedgeFace(m, hLW, fL)

	// Right face: v -> w -> vr -> v
	setNext(m, hVW, hWR)
	setNext(m, hWR, hRV)
	setNext(m, hRV, hVW)
	setHalfedgeFace(m, hVW, fR)
	setHalfedgeFace(m, hWR, fR)
	setHalfedgeFace(m, hRV, fR)

	// Vertices
	setHalfedgeVertex(m, hVW, v)
	setHalfedgeVertex(m, hWV, w)
	setHalfedgeVertex(m, hLW, vl)
	setHalfedgeVertex(m, hWL, w)
	setHalfedgeVertex(m, hRW, vr)
	setHalfedgeVertex(m, hWR, w)

	setFaceHalfedge(m, fL, hLW)
	setFaceHalfedge(m, fR, hWR)
	setVertexHalfedge(m, w, hWV)

	// Twins
	setTwin(m, hVW, hWV)
	setTwin(m, hWV, hVW)
	setTwin(m, hLW, hWL)
	setTwin(m, hWL, hLW)
	setTwin(m, hRW, hWR)
	setTwin(m, hWR, hRW)

	// Readjust old connectivity (faces may be zero for a boundary side).
	setHalfedgeFace(m, hWL, fLOld)
	if !fLOld.IsZero() {
		setFaceHalfedge(m, fLOld, hWL)
	}
	setHalfedgeFace(m, hRW, fROld)
	if !fROld.IsZero() {
		setFaceHalfedge(m, fROld, hRW)
	}
	setVertexHalfedge(m, v, hVW)

	setNext(m, prevHRV, hRW)
	setNext(m, hWL, nextHVL)

	if len(outgoingHs) > 0 {
		setNext(m, hRW, outgoingHs[0])
	} else {
		setNext(m, hRW, hWL)
	}
	if len(incomingHs) > 0 {
		setNext(m, incomingHs[len(incomingHs)-1], hWL)
	}

	for _, outH := range outgoingHs {
		setHalfedgeVertex(m, outH, w)
	}

	return w, nil
}

// indexOf returns the index of target in fan, or -1 if absent.
func indexOf(fan []HalfedgeID, target HalfedgeID) int {
	for i, h := range fan {
		if h == target {
			return i
		}
	}
	return -1
}

// sliceBetween returns the elements strictly between indices start and end
// in a circular slice (exclusive of both endpoints), wrapping around the
// end of the slice as needed — the "clockwise fan between h_R and h_L"
// selection split_vertex performs.
func sliceBetween(fan []HalfedgeID, start, end int) []HalfedgeID {
	n := len(fan)
	if n == 0 || start < 0 || end < 0 {
		return nil
	}
	if end < start {
		end += n
	}
	out := make([]HalfedgeID, 0, n)
	for i := start + 1; i < end; i++ {
		out = append(out, fan[i%n])
	}
	return out
}
