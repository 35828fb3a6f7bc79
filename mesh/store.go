package mesh

import "github.com/wrought3d/halfmesh/arena"

// Mesh is the half-edge connectivity store: three generational arenas
// (vertices, half-edges, faces) plus an auxiliary debug-mark index. It
// exclusively owns every element it allocates; callers hold only the
// typed IDs returned by its allocators.
type Mesh struct {
	vertices  *arena.Arena[vertexData]
	halfedges *arena.Arena[halfedgeData]
	faces     *arena.Arena[faceData]

	vertexMarks   map[VertexID]DebugMark
	halfedgeMarks map[HalfedgeID]DebugMark
}

// New constructs an empty Mesh.
func New() *Mesh {
	return &Mesh{
		vertices:      arena.New[vertexData](),
		halfedges:     arena.New[halfedgeData](),
		faces:         arena.New[faceData](),
		vertexMarks:   make(map[VertexID]DebugMark),
		halfedgeMarks: make(map[HalfedgeID]DebugMark),
	}
}

// VertexCount, HalfedgeCount and FaceCount report the number of live
// elements of each kind. Complexity: O(1).
func (m *Mesh) VertexCount() int   { return m.vertices.Len() }
func (m *Mesh) HalfedgeCount() int { return m.halfedges.Len() }
func (m *Mesh) FaceCount() int     { return m.faces.Len() }

// vertex resolves id to its backing payload, or a wrapped arena.ErrStaleHandle.
func (m *Mesh) vertex(id VertexID) (*vertexData, error) {
	v, err := m.vertices.Get(id.h)
	if err != nil {
		return nil, errorf("vertex", err)
	}
	return v, nil
}

func (m *Mesh) halfedge(id HalfedgeID) (*halfedgeData, error) {
	h, err := m.halfedges.Get(id.h)
	if err != nil {
		return nil, errorf("halfedge", err)
	}
	return h, nil
}

func (m *Mesh) face(id FaceID) (*faceData, error) {
	f, err := m.faces.Get(id.h)
	if err != nil {
		return nil, errorf("face", err)
	}
	return f, nil
}
