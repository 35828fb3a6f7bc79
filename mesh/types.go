package mesh

import "github.com/wrought3d/halfmesh/arena"

// VertexID, HalfedgeID and FaceID are typed wrappers over arena.Handle so
// the compiler rejects passing, say, a FaceID where a VertexID is expected
// (spec's WrongKind handle error is thus structural rather than checked at
// runtime for cross-package callers; it remains a runtime error only where
// a raw arena.Handle of unknown kind could otherwise be coerced, which this
// package never does).
type (
	VertexID   struct{ h arena.Handle }
	HalfedgeID struct{ h arena.Handle }
	FaceID     struct{ h arena.Handle }
)

// IsZero reports whether the ID is the zero value, i.e. "no handle" — the
// representation for an optional reference such as Vertex.Halfedge on an
// isolated vertex or HalfEdge.Face on a boundary half-edge.
func (id VertexID) IsZero() bool   { return id.h.IsZero() }
func (id HalfedgeID) IsZero() bool { return id.h.IsZero() }
func (id FaceID) IsZero() bool     { return id.h.IsZero() }

func (id VertexID) String() string   { return "v" + id.h.String() }
func (id HalfedgeID) String() string { return "h" + id.h.String() }
func (id FaceID) String() string     { return "f" + id.h.String() }

// vertexData is the payload stored in the vertex arena.
type vertexData struct {
	pos      Vec3
	halfedge HalfedgeID // outgoing half-edge; zero if isolated
}

// halfedgeData is the payload stored in the half-edge arena: the four
// optional handles spec.md §3 lists (vertex, face, twin, next).
type halfedgeData struct {
	vertex VertexID   // the vertex this half-edge starts from
	face   FaceID     // incident face; zero ⇒ boundary
	twin   HalfedgeID // the oppositely directed half-edge on the same edge
	next   HalfedgeID // successor around the face loop
}

// faceData is the payload stored in the face arena.
type faceData struct {
	halfedge HalfedgeID // one arbitrary half-edge on this face's boundary loop
}

// DebugMark is a label/color attached to an element purely for downstream
// visualization (spec.md §4.B). Setting or reading a mark never affects
// mesh correctness.
type DebugMark struct {
	Label string
	Color Color
}

// Color is a plain RGB triple; the renderer interprets it, this package
// only stores it.
type Color struct {
	R, G, B uint8
}

// Named debug colors, following spec.md §9's "debug color palettes are
// named constants, not configuration".
var (
	ColorRed   = Color{R: 220, G: 40, B: 40}
	ColorGreen = Color{R: 40, G: 180, B: 80}
	ColorBlue  = Color{R: 50, G: 90, B: 220}
	ColorOrange = Color{R: 230, G: 150, B: 20}
)

// NewDebugMark is a small constructor mirroring the label+color pairs the
// original editor attaches ad hoc during edit operations.
func NewDebugMark(label string, color Color) DebugMark {
	return DebugMark{Label: label, Color: color}
}
