// Package meshbuild provides canonical seed meshes for tests, examples and
// the cmd/meshcli smoke harness: the regular Platonic solids this editor
// can represent as a quad/triangle half-edge mesh (Tetrahedron, Cube,
// Octahedron) and a simple open Plane grid.
//
// Each constructor allocates its vertices in a fixed, documented order and
// wires its faces with a single shared mesh.PairMap, the same
// construction idiom package mesh's own AddFace-based tests use — vertex
// and face ids are therefore deterministic across calls for a given shape,
// which package meshio's snapshot relies on for stable dense-index export.
package meshbuild
