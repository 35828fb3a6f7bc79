package main

import (
	"fmt"

	"github.com/wrought3d/halfmesh/mesh"
	"github.com/wrought3d/halfmesh/meshbuild"
	"github.com/wrought3d/halfmesh/meshio"
	"github.com/wrought3d/halfmesh/ops"
)

// runExtrude builds a cube and extrudes its top face along +Y, printing the
// resulting vertex/face counts and a snapshot summary. A unit cube's top
// face normal is (0, 1, 0), so a height of 1 moves the cube's top face to
// y=2 — the scenario spec.md §8 calls out explicitly.
func runExtrude(a *extrudeArgs) error {
	m := mesh.New()
	_, faces := meshbuild.Cube(m)

	topFace := faces[2] // Cube's ring order is back, front, top, bottom, left, right
	normal, err := m.FaceNormal(topFace)
	if err != nil {
		return err
	}

	_, front, err := ops.ExtrudeFace(m, topFace, normal.Scale(a.Height))
	if err != nil {
		return err
	}

	if err := mesh.CheckInvariants(m); err != nil {
		return fmt.Errorf("invariants violated after extrude: %w", err)
	}

	snap, err := meshio.Build(m)
	if err != nil {
		return err
	}
	fmt.Printf("extruded top face -> new front face %s\n", front)
	fmt.Printf("vertices=%d faces=%d\n", len(snap.VertexPositions), len(snap.Faces))
	return nil
}
