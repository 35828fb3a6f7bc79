package ops

import (
	"github.com/wrought3d/halfmesh/mesh"
	"github.com/wrought3d/halfmesh/meshlog"
	"github.com/wrought3d/halfmesh/traverse"
)

// ExtrudeFaces extrudes the given set of faces by amount along each face's
// normal. Faces sharing an edge stay connected after the extrude: only the
// silhouette — half-edges of the set whose twin has a face outside it —
// gets beveled; interior edges between two extruded faces, and edges that
// already border the mesh's boundary, are left untouched.
func ExtrudeFaces(m *mesh.Mesh, faces []mesh.FaceID, amount float64) error {
	faceSet := newOrderedSet[mesh.FaceID]()
	for _, f := range faces {
		faceSet.Insert(f)
	}

	var silhouette []mesh.HalfedgeID
	for _, f := range faces {
		hs, err := traverse.AtFace(m, f).Halfedges().TryEnd()
		if err != nil {
			return errorf("ExtrudeFaces", err)
		}
		for _, h := range hs {
			twin, err := m.HalfedgeTwin(h)
			if err != nil {
				return errorf("ExtrudeFaces", err)
			}
			// A boundary twin (no face) is left out of the silhouette,
			// matching the original: only an edge bordering another,
			// non-extruded face counts as part of the set to bevel.
			twinFace, err := m.HalfedgeFace(twin)
			if err == nil && !twinFace.IsZero() && !faceSet.Contains(twinFace) {
				silhouette = append(silhouette, h)
			}
		}
	}

	log := meshlog.Std().Op("ExtrudeFaces")
	log.Debugf("extruding %d faces, silhouette=%d half-edges", len(faces), len(silhouette))
	beveled, err := bevelEdgesConnectivity(m, silhouette)
	if err != nil {
		return errorf("ExtrudeFaces", err)
	}

	// Each extruded face pushes its own boundary vertices along its own
	// normal; a vertex shared by more than one extruded face accumulates
	// one push per face. Pushes are deduplicated per vertex by exact value
	// so a vertex touched twice by the same face's push (its two incident
	// silhouette edges) isn't double-counted.
	moveOps := make(map[mesh.VertexID]*orderedSet[mesh.Vec3])
	push := func(v mesh.VertexID, p mesh.Vec3) {
		set, ok := moveOps[v]
		if !ok {
			set = newOrderedSet[mesh.Vec3]()
			moveOps[v] = set
		}
		set.Insert(p)
	}

	for _, h := range beveled.Items() {
		f, err := m.HalfedgeFace(h)
		if err != nil {
			return errorf("ExtrudeFaces", err)
		}
		if f.IsZero() || !faceSet.Contains(f) {
			continue
		}
		src, dst, err := traverse.AtHalfedge(m, h).SrcDstPair()
		if err != nil {
			return errorf("ExtrudeFaces", err)
		}
		normal, err := m.FaceNormal(f)
		if err != nil {
			return errorf("ExtrudeFaces", err)
		}
		push(src, normal.Scale(amount))
		push(dst, normal.Scale(amount))
	}

	for v, pushes := range moveOps {
		var total mesh.Vec3
		for _, p := range pushes.Items() {
			total = total.Add(p)
		}
		if err := m.UpdateVertexPosition(v, func(pos mesh.Vec3) mesh.Vec3 {
			return pos.Add(total)
		}); err != nil {
			return errorf("ExtrudeFaces", err)
		}
	}

	return nil
}
