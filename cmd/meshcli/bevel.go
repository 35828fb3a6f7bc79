package main

import (
	"fmt"

	"github.com/wrought3d/halfmesh/mesh"
	"github.com/wrought3d/halfmesh/meshbuild"
	"github.com/wrought3d/halfmesh/meshio"
	"github.com/wrought3d/halfmesh/ops"
)

// runBevel builds a cube and bevels the single edge between its first two
// vertices, matching the single-edge-bevel scenario spec.md §8 describes:
// one new quad face appears, and the edge's two endpoints become four.
func runBevel(a *bevelArgs) error {
	m := mesh.New()
	vertices, _ := meshbuild.Cube(m)

	h, err := findHalfedge(m, vertices[0], vertices[1])
	if err != nil {
		return err
	}

	if err := ops.BevelEdges(m, []mesh.HalfedgeID{h}, a.Amount); err != nil {
		return err
	}

	if err := mesh.CheckInvariants(m); err != nil {
		return fmt.Errorf("invariants violated after bevel: %w", err)
	}

	snap, err := meshio.Build(m)
	if err != nil {
		return err
	}
	fmt.Printf("beveled edge v0->v1 by %v\n", a.Amount)
	fmt.Printf("vertices=%d faces=%d\n", len(snap.VertexPositions), len(snap.Faces))
	return nil
}

// findHalfedge scans m's half-edges for the one running from -> to. It's a
// linear search suitable for this smoke harness's small seed meshes, not a
// general API — package mesh's own indices are keyed by vertex, not by pair.
func findHalfedge(m *mesh.Mesh, from, to mesh.VertexID) (mesh.HalfedgeID, error) {
	for h := range m.IterHalfedges {
		v, err := m.HalfedgeVertex(h)
		if err != nil {
			return mesh.HalfedgeID{}, err
		}
		if v != from {
			continue
		}
		twin, err := m.HalfedgeTwin(h)
		if err != nil {
			return mesh.HalfedgeID{}, err
		}
		dst, err := m.HalfedgeVertex(twin)
		if err != nil {
			return mesh.HalfedgeID{}, err
		}
		if dst == to {
			return h, nil
		}
	}
	return mesh.HalfedgeID{}, fmt.Errorf("no half-edge found from %s to %s", from, to)
}
