// Package arena implements a generational-index allocator: a dense slab of
// payload slots addressed by a stable Handle (slot index + generation).
//
// A mesh's vertices, half-edges and faces are a densely-cyclic graph of
// "pointers" (twin/next/previous/face) that Go cannot express as direct
// ownership without reference cycles. The standard fix is to store every
// element in a flat arena and let all cross-references be handles instead
// of pointers: freeing a slot just bumps its generation, so any handle
// captured before the free is detectably stale rather than dangling.
//
//	a := arena.New[Vertex]()
//	h := a.Alloc(Vertex{Pos: Vec3{}})
//	v, err := a.Get(h)
//	err = a.Remove(h)
//	_, err = a.Get(h) // now arena.ErrStaleHandle
//
// Allocation never reuses a live slot; freed slots are recycled by a free
// list so long-running meshes don't grow without bound.
package arena
