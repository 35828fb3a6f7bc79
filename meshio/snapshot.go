package meshio

import "github.com/wrought3d/halfmesh/mesh"

// Snapshot is an immutable, dense-indexed view of a mesh: the GPU
// rendering pipeline reads VertexPositions and Faces; a document
// serializer additionally reads VertexMarks/HalfedgeMarks. Dense indices
// replace handles — spec.md §6 guarantees handles themselves are never
// persisted, only the canonical order iterating elements in handle order
// produces.
type Snapshot struct {
	// VertexPositions[i] is the position of the i-th vertex, in the order
	// Mesh.IterVertices produced them when the snapshot was taken.
	VertexPositions []mesh.Vec3

	// Faces[i] lists the dense vertex indices (into VertexPositions) of
	// the i-th face's boundary loop, in winding order.
	Faces [][]int

	// VertexMarks and HalfedgeMarks carry debug labels keyed by dense
	// index, for a serializer or visualization layer that wants them; a
	// renderer ignores both.
	VertexMarks   map[int]mesh.DebugMark
	HalfedgeMarks map[int]mesh.DebugMark
}

// Build walks m once and returns a dense-indexed copy of its current
// vertex positions and face topology. The result holds no reference back
// into m: subsequent mutation of m never observably changes a Snapshot
// already taken.
func Build(m *mesh.Mesh) (Snapshot, error) {
	indexOfVertex := make(map[mesh.VertexID]int, m.VertexCount())
	var positions []mesh.Vec3
	for v := range m.IterVertices {
		pos, err := m.Position(v)
		if err != nil {
			return Snapshot{}, err
		}
		indexOfVertex[v] = len(positions)
		positions = append(positions, pos)
	}

	vertexMarks := make(map[int]mesh.DebugMark)
	for v, idx := range indexOfVertex {
		if mk, ok := m.VertexMark(v); ok {
			vertexMarks[idx] = mk
		}
	}

	indexOfHalfedge := make(map[mesh.HalfedgeID]int, m.HalfedgeCount())
	i := 0
	for h := range m.IterHalfedges {
		indexOfHalfedge[h] = i
		i++
	}
	halfedgeMarks := make(map[int]mesh.DebugMark)
	for h, idx := range indexOfHalfedge {
		if mk, ok := m.HalfedgeMark(h); ok {
			halfedgeMarks[idx] = mk
		}
	}

	var faces [][]int
	for f := range m.IterFaces {
		verts, err := m.FaceVertices(f)
		if err != nil {
			return Snapshot{}, err
		}
		face := make([]int, len(verts))
		for j, v := range verts {
			face[j] = indexOfVertex[v]
		}
		faces = append(faces, face)
	}

	return Snapshot{
		VertexPositions: positions,
		Faces:           faces,
		VertexMarks:     vertexMarks,
		HalfedgeMarks:   halfedgeMarks,
	}, nil
}
