package mesh

import (
	"errors"
	"fmt"
)

// Invariant violation sentinels (spec.md §3/§8), returned by CheckInvariants
// wrapped with the offending element for context.
var (
	ErrTwinNotInvolution     = errors.New("mesh: twin is not an involution")
	ErrFaceLoopBroken        = errors.New("mesh: face loop does not close consistently")
	ErrVertexFanBroken       = errors.New("mesh: vertex fan does not close consistently")
	ErrDuplicateDirectedEdge = errors.New("mesh: duplicate directed edge between same ordered pair")
	ErrOddHalfedgeCount      = errors.New("mesh: half-edge count is odd")
)

// CheckInvariants checks an even half-edge count, twin being an involution
// without fixed points, no duplicate directed (a->b) half-edge, every face
// loop closing and staying on its face, and every vertex fan closing and
// staying on its vertex. It returns the first violation found, wrapped with
// the offending element's id for context. It does not check
// start(next(h)) = start(twin(h)) for every half-edge, nor boundary loops
// on their own. It's O(V+H+F) and meant for tests and debugging; package
// ops never calls it.
func CheckInvariants(m *Mesh) error {
	if m.HalfedgeCount()%2 != 0 {
		return errorf("CheckInvariants", ErrOddHalfedgeCount)
	}

	seen := make(map[[2]VertexID]HalfedgeID, m.HalfedgeCount())
	for h := range m.IterHalfedges {
		t, err := m.HalfedgeTwin(h)
		if err != nil {
			return errorf("CheckInvariants", err)
		}
		tt, err := m.HalfedgeTwin(t)
		if err != nil {
			return errorf("CheckInvariants", err)
		}
		if tt != h || t == h {
			return errorf("CheckInvariants", fmtWrap(ErrTwinNotInvolution, h))
		}

		v, err := m.HalfedgeVertex(h)
		if err != nil {
			return errorf("CheckInvariants", err)
		}
		w, err := m.HalfedgeVertex(t)
		if err != nil {
			return errorf("CheckInvariants", err)
		}
		key := [2]VertexID{v, w}
		if prior, ok := seen[key]; ok && prior != h {
			return errorf("CheckInvariants", fmtWrap(ErrDuplicateDirectedEdge, h))
		}
		seen[key] = h
	}

	for f := range m.IterFaces {
		loop, err := m.faceLoop(f)
		if err != nil {
			return errorf("CheckInvariants", fmtWrap(ErrFaceLoopBroken, f))
		}
		for _, h := range loop {
			hf, err := m.HalfedgeFace(h)
			if err != nil || hf != f {
				return errorf("CheckInvariants", fmtWrap(ErrFaceLoopBroken, f))
			}
		}
	}

	for v := range m.IterVertices {
		start, err := m.VertexHalfedge(v)
		if err != nil {
			return errorf("CheckInvariants", err)
		}
		if start.IsZero() {
			continue
		}
		fan, err := m.outgoingHalfedges(v)
		if err != nil {
			return errorf("CheckInvariants", fmtWrap(ErrVertexFanBroken, v))
		}
		for _, h := range fan {
			hv, err := m.HalfedgeVertex(h)
			if err != nil || hv != v {
				return errorf("CheckInvariants", fmtWrap(ErrVertexFanBroken, v))
			}
		}
	}

	return nil
}

// fmtWrap attaches the offending element's string form to a sentinel,
// keeping it errors.Is-compatible via %w.
func fmtWrap(sentinel error, elem fmt.Stringer) error {
	return fmt.Errorf("%w (%s)", sentinel, elem.String())
}
