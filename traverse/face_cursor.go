package traverse

import "github.com/wrought3d/halfmesh/mesh"

// FaceCursor is a lazy query rooted at a face.
type FaceCursor struct {
	m   *mesh.Mesh
	f   mesh.FaceID
	err error
}

// AtFace roots a cursor at f.
func AtFace(m *mesh.Mesh, f mesh.FaceID) FaceCursor {
	return FaceCursor{m: m, f: f}
}

func (c FaceCursor) End() mesh.FaceID {
	if c.err != nil {
		panic(c.err)
	}
	return c.f
}

func (c FaceCursor) TryEnd() (mesh.FaceID, error) {
	return c.f, c.err
}

// Halfedge returns one arbitrary half-edge on f's boundary loop.
func (c FaceCursor) Halfedge() HalfedgeCursor {
	if c.err != nil {
		return HalfedgeCursor{m: c.m, err: c.err}
	}
	h, err := c.m.FaceHalfedge(c.f)
	if err != nil {
		return HalfedgeCursor{m: c.m, err: errorf("Halfedge", err)}
	}
	return HalfedgeCursor{m: c.m, h: h}
}

// Halfedges walks Next from f's boundary half-edge and returns every
// half-edge of the loop, in cycle order.
func (c FaceCursor) Halfedges() HalfedgeListCursor {
	if c.err != nil {
		return HalfedgeListCursor{m: c.m, err: c.err}
	}
	start, err := c.m.FaceHalfedge(c.f)
	if err != nil {
		return HalfedgeListCursor{m: c.m, err: errorf("Halfedges", err)}
	}

	limit := c.m.HalfedgeCount() + 1
	loop := make([]mesh.HalfedgeID, 0, 4)
	h := start
	for i := 0; ; i++ {
		if i > limit {
			return HalfedgeListCursor{m: c.m, err: errorf("Halfedges", ErrCycleExceeded)}
		}
		loop = append(loop, h)
		next, err := c.m.HalfedgeNext(h)
		if err != nil {
			return HalfedgeListCursor{m: c.m, err: errorf("Halfedges", err)}
		}
		h = next
		if h == start {
			break
		}
	}
	return HalfedgeListCursor{m: c.m, hs: loop}
}

// Vertices returns the vertices on f's boundary loop, in winding order.
func (c FaceCursor) Vertices() VertexListCursor {
	loop, err := c.Halfedges().TryEnd()
	if err != nil {
		return VertexListCursor{m: c.m, err: err}
	}
	out := make([]mesh.VertexID, 0, len(loop))
	for _, h := range loop {
		v, err := c.m.HalfedgeVertex(h)
		if err != nil {
			return VertexListCursor{m: c.m, err: errorf("Vertices", err)}
		}
		out = append(out, v)
	}
	return VertexListCursor{m: c.m, vs: out}
}

// VertexListCursor is a lazy query producing a list of vertices.
type VertexListCursor struct {
	m   *mesh.Mesh
	vs  []mesh.VertexID
	err error
}

func (c VertexListCursor) End() []mesh.VertexID {
	if c.err != nil {
		panic(c.err)
	}
	return c.vs
}

func (c VertexListCursor) TryEnd() ([]mesh.VertexID, error) {
	return c.vs, c.err
}
