// Package meshio builds read-only snapshots of a *mesh.Mesh for the two
// out-of-scope external collaborators spec.md §1/§6 names by interface
// only: the GPU rendering pipeline (vertex positions + face vertex lists)
// and a document serializer (the same data, plus debug marks, addressed
// by dense index rather than by handle).
//
// A Snapshot is a plain value: once built it holds no reference back into
// the Mesh it was taken from, so the editor's main loop is free to keep
// mutating the mesh immediately afterward without invalidating a snapshot
// already handed to the renderer (spec.md §5's exclusive-borrow discipline
// is enforced by this copy-out, not by the compiler).
package meshio
