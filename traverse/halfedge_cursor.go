package traverse

import "github.com/wrought3d/halfmesh/mesh"

// HalfedgeCursor is a lazy query rooted at a half-edge.
type HalfedgeCursor struct {
	m   *mesh.Mesh
	h   mesh.HalfedgeID
	err error
}

// AtHalfedge roots a cursor at h.
func AtHalfedge(m *mesh.Mesh, h mesh.HalfedgeID) HalfedgeCursor {
	return HalfedgeCursor{m: m, h: h}
}

func (c HalfedgeCursor) End() mesh.HalfedgeID {
	if c.err != nil {
		panic(c.err)
	}
	return c.h
}

func (c HalfedgeCursor) TryEnd() (mesh.HalfedgeID, error) {
	return c.h, c.err
}

// Twin returns h's twin. Errors with ErrMissingTwin if none is recorded.
func (c HalfedgeCursor) Twin() HalfedgeCursor {
	if c.err != nil {
		return c
	}
	t, err := c.m.HalfedgeTwin(c.h)
	if err != nil {
		return HalfedgeCursor{m: c.m, err: errorf("Twin", err)}
	}
	if t.IsZero() {
		return HalfedgeCursor{m: c.m, err: errorf("Twin", ErrMissingTwin)}
	}
	return HalfedgeCursor{m: c.m, h: t}
}

// Next returns h's successor around its face (or boundary) loop.
func (c HalfedgeCursor) Next() HalfedgeCursor {
	if c.err != nil {
		return c
	}
	n, err := c.m.HalfedgeNext(c.h)
	if err != nil {
		return HalfedgeCursor{m: c.m, err: errorf("Next", err)}
	}
	if n.IsZero() {
		return HalfedgeCursor{m: c.m, err: errorf("Next", ErrMissingNext)}
	}
	return HalfedgeCursor{m: c.m, h: n}
}

// Previous returns h's predecessor, found by walking Next from h until it
// loops back. O(face valence), bounded by ErrCycleExceeded.
func (c HalfedgeCursor) Previous() HalfedgeCursor {
	if c.err != nil {
		return c
	}
	limit := c.m.HalfedgeCount() + 1
	cur := c.h
	for i := 0; i < limit; i++ {
		next, err := c.m.HalfedgeNext(cur)
		if err != nil {
			return HalfedgeCursor{m: c.m, err: errorf("Previous", err)}
		}
		if next == c.h {
			return HalfedgeCursor{m: c.m, h: cur}
		}
		cur = next
	}
	return HalfedgeCursor{m: c.m, err: errorf("Previous", ErrCycleExceeded)}
}

// CycleAroundFan is twin().next() — the step that walks one position
// around h's start vertex's outgoing fan.
func (c HalfedgeCursor) CycleAroundFan() HalfedgeCursor {
	return c.Twin().Next()
}

// Vertex returns the vertex h starts from.
func (c HalfedgeCursor) Vertex() VertexCursor {
	if c.err != nil {
		return VertexCursor{m: c.m, err: c.err}
	}
	v, err := c.m.HalfedgeVertex(c.h)
	if err != nil {
		return VertexCursor{m: c.m, err: errorf("Vertex", err)}
	}
	return VertexCursor{m: c.m, v: v}
}

// Face returns h's incident face. Errors with ErrMissingFace if h is a
// boundary half-edge; use FaceOrBoundary if that's a valid outcome.
func (c HalfedgeCursor) Face() FaceCursor {
	if c.err != nil {
		return FaceCursor{m: c.m, err: c.err}
	}
	f, err := c.m.HalfedgeFace(c.h)
	if err != nil {
		return FaceCursor{m: c.m, err: errorf("Face", err)}
	}
	if f.IsZero() {
		return FaceCursor{m: c.m, err: errorf("Face", ErrMissingFace)}
	}
	return FaceCursor{m: c.m, f: f}
}

// FaceOrBoundary returns h's incident face, or the zero FaceID (never an
// error) if h is a boundary half-edge.
func (c HalfedgeCursor) FaceOrBoundary() FaceCursor {
	if c.err != nil {
		return FaceCursor{m: c.m, err: c.err}
	}
	f, err := c.m.HalfedgeFace(c.h)
	if err != nil {
		return FaceCursor{m: c.m, err: errorf("FaceOrBoundary", err)}
	}
	return FaceCursor{m: c.m, f: f}
}

// IsBoundary reports whether h has no incident face.
func (c HalfedgeCursor) IsBoundary() (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	f, err := c.m.HalfedgeFace(c.h)
	if err != nil {
		return false, errorf("IsBoundary", err)
	}
	return f.IsZero(), nil
}

// SrcDstPair returns (start(h), start(twin(h))) — the directed vertex pair
// h represents.
func (c HalfedgeCursor) SrcDstPair() (mesh.VertexID, mesh.VertexID, error) {
	if c.err != nil {
		return mesh.VertexID{}, mesh.VertexID{}, c.err
	}
	v, err := c.m.HalfedgeVertex(c.h)
	if err != nil {
		return mesh.VertexID{}, mesh.VertexID{}, errorf("SrcDstPair", err)
	}
	t, err := c.m.HalfedgeTwin(c.h)
	if err != nil {
		return mesh.VertexID{}, mesh.VertexID{}, errorf("SrcDstPair", err)
	}
	w, err := c.m.HalfedgeVertex(t)
	if err != nil {
		return mesh.VertexID{}, mesh.VertexID{}, errorf("SrcDstPair", err)
	}
	return v, w, nil
}
