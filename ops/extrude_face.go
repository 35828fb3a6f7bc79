package ops

import (
	"github.com/wrought3d/halfmesh/mesh"
	"github.com/wrought3d/halfmesh/meshlog"
	"github.com/wrought3d/halfmesh/traverse"
)

// ExtrudeFace duplicates f's vertex ring at offset delta, bridges the old
// and new rings with quad side faces (reusing f's own boundary half-edges
// on the side closest to the parent mesh), caps the new ring with a front
// face, and removes f. It returns the side faces in ring order and the new
// front face.
func ExtrudeFace(m *mesh.Mesh, f mesh.FaceID, delta mesh.Vec3) ([]mesh.FaceID, mesh.FaceID, error) {
	log := meshlog.Std().Op("ExtrudeFace")
	vertices, err := m.FaceVertices(f)
	if err != nil {
		return nil, mesh.FaceID{}, errorf("ExtrudeFace", err)
	}
	halfedges, err := traverse.AtFace(m, f).Halfedges().TryEnd()
	if err != nil {
		return nil, mesh.FaceID{}, errorf("ExtrudeFace", err)
	}

	n := len(vertices)
	newVertices := make([]mesh.VertexID, n)
	for i, v := range vertices {
		pos, err := m.Position(v)
		if err != nil {
			return nil, mesh.FaceID{}, errorf("ExtrudeFace", err)
		}
		newVertices[i] = m.AllocVertex(pos.Add(delta))
	}

	// Pre-populate the pair map with f's own boundary half-edges so the
	// side faces reuse them instead of allocating duplicates.
	pairMap := mesh.NewPairMap()
	for i := 0; i < n; i++ {
		pairMap[[2]mesh.VertexID{vertices[i], vertices[(i+1)%n]}] = halfedges[i]
	}

	// v1->v2 is the direction of the existing half-edges; side faces follow
	// that same winding to preserve mesh orientation.
	sideFaces := make([]mesh.FaceID, n)
	for i := 0; i < n; i++ {
		v1, v2 := vertices[i], vertices[(i+1)%n]
		v1New, v2New := newVertices[i], newVertices[(i+1)%n]
		sideFaces[i] = m.AddFace([]mesh.VertexID{v1, v2, v2New, v1New}, pairMap)
	}

	frontFace := m.AddFace(newVertices, pairMap)

	if err := m.RemoveFace(f); err != nil {
		return nil, mesh.FaceID{}, errorf("ExtrudeFace", err)
	}

	log.Debugf("extruded face %s into %d side faces plus front face %s", f, len(sideFaces), frontFace)
	return sideFaces, frontFace, nil
}
