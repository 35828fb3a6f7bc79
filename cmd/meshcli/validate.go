package main

import (
	"fmt"

	"github.com/wrought3d/halfmesh/mesh"
	"github.com/wrought3d/halfmesh/meshbuild"
	"github.com/wrought3d/halfmesh/meshio"
)

// runValidate builds the named seed mesh, checks its invariants and prints
// a snapshot summary — the harness's baseline check that meshbuild's
// constructors themselves produce valid meshes before any operation ever
// touches them.
func runValidate(a *validateArgs) error {
	m := mesh.New()

	switch a.Shape {
	case "cube":
		meshbuild.Cube(m)
	case "tetrahedron":
		meshbuild.Tetrahedron(m)
	case "octahedron":
		meshbuild.Octahedron(m)
	case "plane":
		meshbuild.Plane(m, 4, 4)
	default:
		return fmt.Errorf("unknown shape %q", a.Shape)
	}

	if err := mesh.CheckInvariants(m); err != nil {
		return fmt.Errorf("invariants violated: %w", err)
	}

	snap, err := meshio.Build(m)
	if err != nil {
		return err
	}
	fmt.Printf("%s: vertices=%d faces=%d, invariants OK\n", a.Shape, len(snap.VertexPositions), len(snap.Faces))
	return nil
}
