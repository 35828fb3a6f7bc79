package traverse_test

import (
	"fmt"

	"github.com/wrought3d/halfmesh/mesh"
	"github.com/wrought3d/halfmesh/traverse"
)

// ExampleAtVertex builds a single triangle, closes its boundary, finds the
// half-edge from one vertex to an adjacent one, then takes two steps around
// its face to reach the triangle's third corner.
func ExampleAtVertex() {
	m := mesh.New()
	a := m.AllocVertex(mesh.Vec3{X: 0, Y: 0, Z: 0})
	b := m.AllocVertex(mesh.Vec3{X: 1, Y: 0, Z: 0})
	c := m.AllocVertex(mesh.Vec3{X: 0, Y: 1, Z: 0})
	m.AddFace([]mesh.VertexID{a, b, c}, mesh.NewPairMap())
	if err := m.CloseBoundaries(); err != nil {
		fmt.Println("error:", err)
		return
	}

	h, err := traverse.AtVertex(m, a).HalfedgeTo(b).TryEnd()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dst, err := traverse.AtHalfedge(m, h).Next().Next().Vertex().TryEnd()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	pos, err := m.Position(dst)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.0f,%.0f,%.0f\n", pos.X, pos.Y, pos.Z)
	// Output: 0,1,0
}
