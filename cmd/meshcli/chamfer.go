package main

import (
	"fmt"

	"github.com/wrought3d/halfmesh/mesh"
	"github.com/wrought3d/halfmesh/meshbuild"
	"github.com/wrought3d/halfmesh/meshio"
	"github.com/wrought3d/halfmesh/ops"
)

// runChamfer builds a cube and chamfers its first vertex, the corner
// scenario spec.md §8 describes: the corner's three incident edges each
// gain a new vertex, and those three vertices are capped with a new
// triangular face in place of the corner.
func runChamfer(a *chamferArgs) error {
	m := mesh.New()
	vertices, _ := meshbuild.Cube(m)

	newFace, newVertices, err := ops.ChamferVertex(m, vertices[0], a.Amount)
	if err != nil {
		return err
	}

	if err := mesh.CheckInvariants(m); err != nil {
		return fmt.Errorf("invariants violated after chamfer: %w", err)
	}

	snap, err := meshio.Build(m)
	if err != nil {
		return err
	}
	fmt.Printf("chamfered v0 -> new face %s with %d ring vertices\n", newFace, len(newVertices))
	fmt.Printf("vertices=%d faces=%d\n", len(snap.VertexPositions), len(snap.Faces))
	return nil
}
