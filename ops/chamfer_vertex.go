package ops

import (
	"github.com/wrought3d/halfmesh/mesh"
	"github.com/wrought3d/halfmesh/traverse"
)

// ChamferVertex replaces v with a polygon whose vertices lie along v's
// incident edges. For each outgoing edge of v it calls DivideEdge(h, t),
// relying on DivideEdge's id-stability to keep the outgoing-halfedge order
// stable across the loop; it then cuts the chamfer ring between each
// consecutive pair of new vertices, and finally dissolves v to cap the
// ring with a new face.
//
// newVertices is returned in the same order as v's outgoing half-edges at
// entry — DivideEdge's id-stability contract and bevel_edges_connectivity
// both depend on this ordering.
func ChamferVertex(m *mesh.Mesh, v mesh.VertexID, t float64) (mesh.FaceID, []mesh.VertexID, error) {
	outgoing, err := traverse.AtVertex(m, v).OutgoingHalfedges().TryEnd()
	if err != nil {
		return mesh.FaceID{}, nil, errorf("ChamferVertex", err)
	}

	newVertices := make([]mesh.VertexID, len(outgoing))
	for i, h := range outgoing {
		x, err := m.DivideEdge(h, t)
		if err != nil {
			return mesh.FaceID{}, nil, errorf("ChamferVertex", err)
		}
		newVertices[i] = x
	}

	n := len(newVertices)
	if n >= 2 {
		for i := 0; i < n; i++ {
			a, b := newVertices[i], newVertices[(i+1)%n]
			if _, err := m.CutFace(a, b); err != nil {
				return mesh.FaceID{}, nil, errorf("ChamferVertex", err)
			}
		}
	}

	newFace, err := m.DissolveVertex(v)
	if err != nil {
		return mesh.FaceID{}, nil, errorf("ChamferVertex", err)
	}

	return newFace, newVertices, nil
}
