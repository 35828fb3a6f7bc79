package traverse

import "github.com/wrought3d/halfmesh/mesh"

// VertexCursor is a lazy query rooted at a vertex.
type VertexCursor struct {
	m   *mesh.Mesh
	v   mesh.VertexID
	err error
}

// AtVertex roots a cursor at v.
func AtVertex(m *mesh.Mesh, v mesh.VertexID) VertexCursor {
	return VertexCursor{m: m, v: v}
}

// End returns the cursor's value, panicking if an earlier step failed.
func (c VertexCursor) End() mesh.VertexID {
	if c.err != nil {
		panic(c.err)
	}
	return c.v
}

// TryEnd returns the cursor's value and any error accumulated so far.
func (c VertexCursor) TryEnd() (mesh.VertexID, error) {
	return c.v, c.err
}

// Halfedge returns v's outgoing half-edge. Errors with ErrMissingHalfedge
// if v is isolated.
func (c VertexCursor) Halfedge() HalfedgeCursor {
	if c.err != nil {
		return HalfedgeCursor{m: c.m, err: c.err}
	}
	h, err := c.m.VertexHalfedge(c.v)
	if err != nil {
		return HalfedgeCursor{m: c.m, err: errorf("Halfedge", err)}
	}
	if h.IsZero() {
		return HalfedgeCursor{m: c.m, err: errorf("Halfedge", ErrMissingHalfedge)}
	}
	return HalfedgeCursor{m: c.m, h: h}
}

// OutgoingHalfedges walks twin∘next from v's outgoing half-edge until the
// start is revisited, returning every outgoing half-edge in fan order. An
// isolated vertex yields an empty list, not an error.
func (c VertexCursor) OutgoingHalfedges() HalfedgeListCursor {
	if c.err != nil {
		return HalfedgeListCursor{m: c.m, err: c.err}
	}
	start, err := c.m.VertexHalfedge(c.v)
	if err != nil {
		return HalfedgeListCursor{m: c.m, err: errorf("OutgoingHalfedges", err)}
	}
	if start.IsZero() {
		return HalfedgeListCursor{m: c.m}
	}

	limit := c.m.HalfedgeCount() + 1
	out := make([]mesh.HalfedgeID, 0, 6)
	h := start
	for i := 0; ; i++ {
		if i > limit {
			return HalfedgeListCursor{m: c.m, err: errorf("OutgoingHalfedges", ErrCycleExceeded)}
		}
		out = append(out, h)
		twin, err := c.m.HalfedgeTwin(h)
		if err != nil {
			return HalfedgeListCursor{m: c.m, err: errorf("OutgoingHalfedges", err)}
		}
		next, err := c.m.HalfedgeNext(twin)
		if err != nil {
			return HalfedgeListCursor{m: c.m, err: errorf("OutgoingHalfedges", err)}
		}
		h = next
		if h == start {
			break
		}
	}
	return HalfedgeListCursor{m: c.m, hs: out}
}

// IncomingHalfedges returns the twin of each of v's outgoing half-edges, in
// the same order OutgoingHalfedges returns them.
func (c VertexCursor) IncomingHalfedges() HalfedgeListCursor {
	outgoing, err := c.OutgoingHalfedges().TryEnd()
	if err != nil {
		return HalfedgeListCursor{m: c.m, err: err}
	}
	in := make([]mesh.HalfedgeID, len(outgoing))
	for i, h := range outgoing {
		twin, err := c.m.HalfedgeTwin(h)
		if err != nil {
			return HalfedgeListCursor{m: c.m, err: errorf("IncomingHalfedges", err)}
		}
		in[i] = twin
	}
	return HalfedgeListCursor{m: c.m, hs: in}
}

// HalfedgeTo returns the specific outgoing half-edge from v whose twin
// starts at w, i.e. the directed edge v->w. Errors with
// ErrHalfedgeFromToNotFound if no such half-edge exists.
func (c VertexCursor) HalfedgeTo(w mesh.VertexID) HalfedgeCursor {
	outgoing, err := c.OutgoingHalfedges().TryEnd()
	if err != nil {
		return HalfedgeCursor{m: c.m, err: err}
	}
	for _, h := range outgoing {
		twin, err := c.m.HalfedgeTwin(h)
		if err != nil {
			return HalfedgeCursor{m: c.m, err: errorf("HalfedgeTo", err)}
		}
		dst, err := c.m.HalfedgeVertex(twin)
		if err != nil {
			return HalfedgeCursor{m: c.m, err: errorf("HalfedgeTo", err)}
		}
		if dst == w {
			return HalfedgeCursor{m: c.m, h: h}
		}
	}
	return HalfedgeCursor{m: c.m, err: errorf("HalfedgeTo", ErrHalfedgeFromToNotFound)}
}

// HalfedgeListCursor is a lazy query producing a list of half-edges.
type HalfedgeListCursor struct {
	m   *mesh.Mesh
	hs  []mesh.HalfedgeID
	err error
}

func (c HalfedgeListCursor) End() []mesh.HalfedgeID {
	if c.err != nil {
		panic(c.err)
	}
	return c.hs
}

func (c HalfedgeListCursor) TryEnd() ([]mesh.HalfedgeID, error) {
	return c.hs, c.err
}
