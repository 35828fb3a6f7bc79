package mesh

import "github.com/wrought3d/halfmesh/arena"

// Position returns the 3D position of v.
func (m *Mesh) Position(v VertexID) (Vec3, error) {
	d, err := m.vertex(v)
	if err != nil {
		return Vec3{}, errorf("Position", err)
	}
	return d.pos, nil
}

// UpdateVertexPosition replaces v's position with fn(current position).
// Used by the geometric-adjustment phase of bevel/extrude, which needs to
// accumulate several pulls onto the same vertex.
func (m *Mesh) UpdateVertexPosition(v VertexID, fn func(Vec3) Vec3) error {
	d, err := m.vertex(v)
	if err != nil {
		return errorf("UpdateVertexPosition", err)
	}
	d.pos = fn(d.pos)
	return nil
}

// VertexHalfedge returns v's outgoing half-edge, or the zero HalfedgeID if
// v is isolated.
func (m *Mesh) VertexHalfedge(v VertexID) (HalfedgeID, error) {
	d, err := m.vertex(v)
	if err != nil {
		return HalfedgeID{}, errorf("VertexHalfedge", err)
	}
	return d.halfedge, nil
}

// HalfedgeVertex returns the vertex h starts from.
func (m *Mesh) HalfedgeVertex(h HalfedgeID) (VertexID, error) {
	d, err := m.halfedge(h)
	if err != nil {
		return VertexID{}, errorf("HalfedgeVertex", err)
	}
	return d.vertex, nil
}

// HalfedgeFace returns h's incident face, or the zero FaceID if h is a
// boundary half-edge.
func (m *Mesh) HalfedgeFace(h HalfedgeID) (FaceID, error) {
	d, err := m.halfedge(h)
	if err != nil {
		return FaceID{}, errorf("HalfedgeFace", err)
	}
	return d.face, nil
}

// HalfedgeTwin returns h's twin, the oppositely directed half-edge sharing
// the same undirected edge.
func (m *Mesh) HalfedgeTwin(h HalfedgeID) (HalfedgeID, error) {
	d, err := m.halfedge(h)
	if err != nil {
		return HalfedgeID{}, errorf("HalfedgeTwin", err)
	}
	return d.twin, nil
}

// HalfedgeNext returns h's successor around its face loop.
func (m *Mesh) HalfedgeNext(h HalfedgeID) (HalfedgeID, error) {
	d, err := m.halfedge(h)
	if err != nil {
		return HalfedgeID{}, errorf("HalfedgeNext", err)
	}
	return d.next, nil
}

// FaceHalfedge returns one arbitrary half-edge on f's boundary loop.
func (m *Mesh) FaceHalfedge(f FaceID) (HalfedgeID, error) {
	d, err := m.face(f)
	if err != nil {
		return HalfedgeID{}, errorf("FaceHalfedge", err)
	}
	return d.halfedge, nil
}

// IterVertices, IterHalfedges and IterFaces enumerate every live element of
// their kind in arena order, which is stable across read-only iteration and
// is the order package meshio relies on for canonical serialization (spec
// §6). The order is unspecified after any allocation/removal.
func (m *Mesh) IterVertices(yield func(VertexID) bool) {
	m.vertices.Iter(func(h arena.Handle, _ *vertexData) bool {
		return yield(VertexID{h: h})
	})
}

// IterHalfedges enumerates every live half-edge in arena order.
func (m *Mesh) IterHalfedges(yield func(HalfedgeID) bool) {
	m.halfedges.Iter(func(h arena.Handle, _ *halfedgeData) bool {
		return yield(HalfedgeID{h: h})
	})
}

// IterFaces enumerates every live face in arena order.
func (m *Mesh) IterFaces(yield func(FaceID) bool) {
	m.faces.Iter(func(h arena.Handle, _ *faceData) bool {
		return yield(FaceID{h: h})
	})
}
