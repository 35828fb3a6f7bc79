package arena

import "fmt"

// Handle is an opaque, stable reference to a payload stored in an Arena.
// Index addresses a slot; Generation disambiguates a reused slot from the
// element that previously lived there.
//
// The zero Handle is never returned by Alloc (Index 0 is valid, but a freshly
// allocated arena's first slot has Generation 1, not 0), so callers may use
// the zero value as a sentinel "no handle" when a field is optional — which
// is exactly how Half-edge.Face (absent ⇒ boundary) and Vertex.Halfedge
// (absent ⇒ isolated) are represented in package mesh.
type Handle struct {
	Index      uint32
	Generation uint32
}

// IsZero reports whether h is the zero Handle, i.e. "no handle".
func (h Handle) IsZero() bool { return h == Handle{} }

// String renders a Handle as "idx#gen" for error messages and test output.
func (h Handle) String() string { return fmt.Sprintf("%d#%d", h.Index, h.Generation) }

// slot is one arena cell: a generation counter and, while live, its payload.
type slot[T any] struct {
	generation uint32
	occupied   bool
	value      T
}

// Arena is a generational-index allocator for values of type T. The zero
// value is not usable; construct one with New.
type Arena[T any] struct {
	slots    []slot[T]
	freeList []uint32
	liveLen  int
}

// New constructs an empty Arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}
