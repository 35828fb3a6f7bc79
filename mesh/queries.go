package mesh

import (
	"errors"
	"fmt"
)

// errCycleExceeded guards face-loop walks against an inconsistent mesh
// (e.g. a next cycle that never returns to its start) looping forever.
// traverse.ErrCycleExceeded is the public-facing sentinel for the same
// condition reached through the traversal DSL; this package only uses it
// internally, for its own loop, predecessor and fan walks (halfedgeLoop,
// previous, outgoingHalfedges).
var errCycleExceeded = errors.New("mesh: next cycle exceeded element count")

// halfedgeLoop walks next starting at start until start is revisited,
// returning every half-edge of that cycle in order. It bounds the walk at
// HalfedgeCount()+1 steps so a malformed cycle surfaces as an error
// instead of hanging (spec §8 property 2's "≤ N steps").
func (m *Mesh) halfedgeLoop(start HalfedgeID) ([]HalfedgeID, error) {
	limit := m.HalfedgeCount() + 1
	loop := make([]HalfedgeID, 0, 4)
	h := start
	for i := 0; ; i++ {
		if i > limit {
			return nil, errCycleExceeded
		}
		loop = append(loop, h)
		next, err := m.HalfedgeNext(h)
		if err != nil {
			return nil, fmt.Errorf("mesh: halfedgeLoop: %w", err)
		}
		h = next
		if h == start {
			break
		}
	}
	return loop, nil
}

// faceLoop walks next starting at the face's boundary half-edge and
// returns every half-edge of that loop, in cycle order.
func (m *Mesh) faceLoop(f FaceID) ([]HalfedgeID, error) {
	start, err := m.FaceHalfedge(f)
	if err != nil {
		return nil, fmt.Errorf("mesh: faceLoop: %w", err)
	}
	if start.IsZero() {
		return nil, fmt.Errorf("mesh: faceLoop: face has no boundary half-edge")
	}
	return m.halfedgeLoop(start)
}

// previous walks next from h until it loops back, returning h's
// predecessor around its face (or boundary) loop. Edit primitives need
// this internally (e.g. divide_edge, dissolve_edge) before package
// traverse even exists in the call stack; traverse.HalfedgeCursor.Previous
// performs the identical walk through the exported accessor surface for
// external callers. O(face valence), bounded by HalfedgeCount()+1 steps.
func (m *Mesh) previous(h HalfedgeID) (HalfedgeID, error) {
	limit := m.HalfedgeCount() + 1
	cur := h
	for i := 0; i < limit; i++ {
		next, err := m.HalfedgeNext(cur)
		if err != nil {
			return HalfedgeID{}, fmt.Errorf("mesh: previous: %w", err)
		}
		if next == h {
			return cur, nil
		}
		cur = next
	}
	return HalfedgeID{}, errCycleExceeded
}

// FaceVertices returns the vertices on f's boundary loop, in winding order.
func (m *Mesh) FaceVertices(f FaceID) ([]VertexID, error) {
	loop, err := m.faceLoop(f)
	if err != nil {
		return nil, errorf("FaceVertices", err)
	}
	out := make([]VertexID, 0, len(loop))
	for _, h := range loop {
		v, err := m.HalfedgeVertex(h)
		if err != nil {
			return nil, errorf("FaceVertices", err)
		}
		out = append(out, v)
	}
	return out, nil
}

// FaceNormal computes f's normal via Newell's method over its boundary
// loop, which tolerates non-planar or non-convex polygons better than a
// single cross product of two edges. Not normalized-for-robustness beyond
// Vec3.Normalize's zero-length guard (geometric robustness is a declared
// non-goal).
func (m *Mesh) FaceNormal(f FaceID) (Vec3, error) {
	verts, err := m.FaceVertices(f)
	if err != nil {
		return Vec3{}, errorf("FaceNormal", err)
	}
	var normal Vec3
	n := len(verts)
	for i := 0; i < n; i++ {
		cur, err := m.Position(verts[i])
		if err != nil {
			return Vec3{}, errorf("FaceNormal", err)
		}
		next, err := m.Position(verts[(i+1)%n])
		if err != nil {
			return Vec3{}, errorf("FaceNormal", err)
		}
		normal.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		normal.Y += (cur.Z - next.Z) * (cur.X + next.X)
		normal.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	return normal.Normalize(), nil
}

// outgoingHalfedges returns every half-edge starting at v, in fan order:
// start at v's outgoing half-edge, repeatedly apply twin∘next, stop when
// the starting edge is revisited. This is the same walk
// traverse.VertexCursor.OutgoingHalfedges performs; edit primitives that
// need it before construction is finished (dissolve_vertex, collapse_edge)
// use this internal copy directly. An isolated vertex yields an empty
// slice.
func (m *Mesh) outgoingHalfedges(v VertexID) ([]HalfedgeID, error) {
	start, err := m.VertexHalfedge(v)
	if err != nil {
		return nil, fmt.Errorf("mesh: outgoingHalfedges: %w", err)
	}
	if start.IsZero() {
		return nil, nil
	}

	limit := m.HalfedgeCount() + 1
	out := make([]HalfedgeID, 0, 6)
	h := start
	for i := 0; ; i++ {
		if i > limit {
			return nil, errCycleExceeded
		}
		out = append(out, h)
		twin, err := m.HalfedgeTwin(h)
		if err != nil {
			return nil, fmt.Errorf("mesh: outgoingHalfedges: %w", err)
		}
		next, err := m.HalfedgeNext(twin)
		if err != nil {
			return nil, fmt.Errorf("mesh: outgoingHalfedges: %w", err)
		}
		h = next
		if h == start {
			break
		}
	}
	return out, nil
}

// halfedgeTo returns the outgoing half-edge of from whose twin starts at
// to, i.e. the specific directed edge from->to. Mirrors
// traverse.VertexCursor.HalfedgeTo for primitives that need the lookup
// before a traversal cursor can be built on top of them.
func (m *Mesh) halfedgeTo(from, to VertexID) (HalfedgeID, error) {
	outgoing, err := m.outgoingHalfedges(from)
	if err != nil {
		return HalfedgeID{}, fmt.Errorf("mesh: halfedgeTo: %w", err)
	}
	for _, h := range outgoing {
		twin, err := m.HalfedgeTwin(h)
		if err != nil {
			return HalfedgeID{}, fmt.Errorf("mesh: halfedgeTo: %w", err)
		}
		dst, err := m.HalfedgeVertex(twin)
		if err != nil {
			return HalfedgeID{}, fmt.Errorf("mesh: halfedgeTo: %w", err)
		}
		if dst == to {
			return h, nil
		}
	}
	return HalfedgeID{}, fmt.Errorf("mesh: halfedgeTo: no half-edge from %s to %s", from, to)
}

// incomingHalfedges returns the twin of each of v's outgoing half-edges, in
// the same order outgoingHalfedges returns them.
func (m *Mesh) incomingHalfedges(v VertexID) ([]HalfedgeID, error) {
	outgoing, err := m.outgoingHalfedges(v)
	if err != nil {
		return nil, fmt.Errorf("mesh: incomingHalfedges: %w", err)
	}
	in := make([]HalfedgeID, len(outgoing))
	for i, h := range outgoing {
		twin, err := m.HalfedgeTwin(h)
		if err != nil {
			return nil, fmt.Errorf("mesh: incomingHalfedges: %w", err)
		}
		in[i] = twin
	}
	return in, nil
}

// isBoundary reports whether h has no incident face.
func (m *Mesh) isBoundary(h HalfedgeID) (bool, error) {
	f, err := m.HalfedgeFace(h)
	if err != nil {
		return false, fmt.Errorf("mesh: isBoundary: %w", err)
	}
	return f.IsZero(), nil
}

// VertexMark and HalfedgeMark read a previously attached DebugMark, if any.
func (m *Mesh) VertexMark(v VertexID) (DebugMark, bool) {
	mk, ok := m.vertexMarks[v]
	return mk, ok
}

func (m *Mesh) HalfedgeMark(h HalfedgeID) (DebugMark, bool) {
	mk, ok := m.halfedgeMarks[h]
	return mk, ok
}

// SetVertexMark and SetHalfedgeMark attach a label/color for downstream
// visualization. A no-op with respect to mesh correctness (spec §4.B).
func (m *Mesh) SetVertexMark(v VertexID, mark DebugMark) {
	m.vertexMarks[v] = mark
}

func (m *Mesh) SetHalfedgeMark(h HalfedgeID, mark DebugMark) {
	m.halfedgeMarks[h] = mark
}
