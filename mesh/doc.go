// Package mesh implements the half-edge mesh connectivity engine: three
// generational arenas (vertices, half-edges, faces — see package arena),
// their raw mutators, and the eight edit primitives that rewrite
// connectivity under precise pre/postconditions (add_face, divide_edge,
// split_vertex, dissolve_edge, cut_face, dissolve_vertex, collapse_edge,
// duplicate_edge).
//
// A Mesh exclusively owns its vertices, half-edges and faces. External
// callers hold only opaque, typed handles (VertexID, HalfedgeID, FaceID);
// dereferencing a removed element's handle is a typed error
// (arena.ErrStaleHandle), never undefined behavior.
//
// Mesh is not safe for concurrent use: it is mutated by a single editor
// main loop, one operation at a time (see package ops), with no rollback
// on partial failure. Exclusive access across mutation/read boundaries is
// the caller's responsibility.
//
// Higher-level traversal (package traverse) and compound operations
// (package ops) are built entirely on this package's exported surface.
package mesh
