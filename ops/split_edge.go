package ops

import (
	"github.com/wrought3d/halfmesh/mesh"
	"github.com/wrought3d/halfmesh/traverse"
)

// SplitEdge splits both endpoints of h by delta, then dissolves the
// redundant bridging edge the two splits leave behind. The edge-loop
// neighbor used for each endpoint's SplitVertex call is obtained via the
// edge-loop walk previous∘twin∘previous from that endpoint's side of h.
func SplitEdge(m *mesh.Mesh, h mesh.HalfedgeID, delta mesh.Vec3) (mesh.HalfedgeID, error) {
	v, w, err := traverse.AtHalfedge(m, h).SrcDstPair()
	if err != nil {
		return mesh.HalfedgeID{}, errorf("SplitEdge", err)
	}

	vPrev, err := traverse.AtVertex(m, v).HalfedgeTo(w).Previous().Twin().Previous().Vertex().TryEnd()
	if err != nil {
		return mesh.HalfedgeID{}, errorf("SplitEdge", err)
	}
	wNext, err := traverse.AtVertex(m, w).HalfedgeTo(v).Previous().Twin().Previous().Vertex().TryEnd()
	if err != nil {
		return mesh.HalfedgeID{}, errorf("SplitEdge", err)
	}

	vSplit, err := m.SplitVertex(v, vPrev, w, delta)
	if err != nil {
		return mesh.HalfedgeID{}, errorf("SplitEdge", err)
	}
	wSplit, err := m.SplitVertex(w, v, wNext, delta)
	if err != nil {
		return mesh.HalfedgeID{}, errorf("SplitEdge", err)
	}

	arcToDissolve, err := traverse.AtVertex(m, wSplit).HalfedgeTo(v).TryEnd()
	if err != nil {
		return mesh.HalfedgeID{}, errorf("SplitEdge", err)
	}
	if err := m.DissolveEdge(arcToDissolve); err != nil {
		return mesh.HalfedgeID{}, errorf("SplitEdge", err)
	}

	newEdge, err := traverse.AtVertex(m, vSplit).HalfedgeTo(wSplit).TryEnd()
	if err != nil {
		return mesh.HalfedgeID{}, errorf("SplitEdge", err)
	}

	return newEdge, nil
}
