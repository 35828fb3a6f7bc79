package ops

import (
	"github.com/wrought3d/halfmesh/mesh"
	"github.com/wrought3d/halfmesh/meshlog"
	"github.com/wrought3d/halfmesh/traverse"
)

// orderedSet is an insertion-ordered set of comparable handles: membership
// checks are O(1) via the backing map, and Items() replays insertion order
// for the handful of spots (the pull-accumulation loop) where a stable
// iteration order keeps DebugMark attachment and test assertions
// deterministic.
type orderedSet[T comparable] struct {
	seen  map[T]struct{}
	items []T
}

func newOrderedSet[T comparable]() *orderedSet[T] {
	return &orderedSet[T]{seen: make(map[T]struct{})}
}

// Insert adds v if absent and reports whether it was newly inserted.
func (s *orderedSet[T]) Insert(v T) bool {
	if _, ok := s.seen[v]; ok {
		return false
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

func (s *orderedSet[T]) Contains(v T) bool {
	_, ok := s.seen[v]
	return ok
}

func (s *orderedSet[T]) Items() []T { return s.items }

// vertexTranslation resolves a vertex handle through a chain of v -> v'
// redirections recorded by collapses performed mid-loop. A collapse can
// invalidate a vertex handle another pending collapse still names; routing
// every lookup through this indirection (rather than re-deriving fresh
// handles some other way) is the mechanism SPEC_FULL.md's bevel section
// calls for.
type vertexTranslation map[mesh.VertexID]mesh.VertexID

func (t vertexTranslation) resolve(v mesh.VertexID) mesh.VertexID {
	for {
		next, ok := t[v]
		if !ok {
			return v
		}
		v = next
	}
}

// bevelEdgesConnectivity rewrites connectivity in preparation for a bevel:
// every input half-edge's undirected edge is duplicated (DuplicateEdge),
// then every endpoint touched by a beveled edge is chamfered with a zero
// offset. Chamfering a vertex produces a ring of new vertices; certain
// consecutive pairs of that ring must then be collapsed back together,
// per the classification of the outgoing-edge pair that produced them
// (beveled / duplicated / neither).
//
// Returns the set of half-edges that participated in the bevel — the ones
// touching one of the mesh's original faces, guaranteed to have a twin
// touching a newly created face.
func bevelEdgesConnectivity(m *mesh.Mesh, halfedges []mesh.HalfedgeID) (*orderedSet[mesh.HalfedgeID], error) {
	edgesToBevel := newOrderedSet[mesh.HalfedgeID]()
	duplicatedEdges := newOrderedSet[mesh.HalfedgeID]()
	verticesToChamfer := newOrderedSet[mesh.VertexID]()

	// --- 1. Duplicate all edges ---
	for _, h := range halfedges {
		twin, err := m.HalfedgeTwin(h)
		if err != nil {
			return nil, errorf("bevelEdgesConnectivity", err)
		}
		// Only handle an undirected edge once, regardless of which of its
		// two half-edges the caller passed in.
		insertedH := edgesToBevel.Insert(h)
		insertedTwin := edgesToBevel.Insert(twin)
		if !(insertedH && insertedTwin) {
			continue
		}

		hDup, err := m.DuplicateEdge(h)
		if err != nil {
			return nil, errorf("bevelEdgesConnectivity", err)
		}
		duplicatedEdges.Insert(hDup)
		hDupNext, err := m.HalfedgeNext(hDup)
		if err != nil {
			return nil, errorf("bevelEdgesConnectivity", err)
		}
		duplicatedEdges.Insert(hDupNext)

		src, dst, err := traverse.AtHalfedge(m, h).SrcDstPair()
		if err != nil {
			return nil, errorf("bevelEdgesConnectivity", err)
		}
		verticesToChamfer.Insert(src)
		verticesToChamfer.Insert(dst)
	}

	// --- 2. Chamfer all vertices ---
	for _, v := range verticesToChamfer.Items() {
		outgoing, err := traverse.AtVertex(m, v).OutgoingHalfedges().TryEnd()
		if err != nil {
			return nil, errorf("bevelEdgesConnectivity", err)
		}

		n := len(outgoing)
		collapseAt := make([]bool, n)
		for i := 0; i < n; i++ {
			h, h2 := outgoing[i], outgoing[(i+1)%n]
			hBeveled, h2Beveled := edgesToBevel.Contains(h), edgesToBevel.Contains(h2)
			hDup, h2Dup := duplicatedEdges.Contains(h), duplicatedEdges.Contains(h2)
			hNeither := !hBeveled && !hDup
			h2Neither := !h2Beveled && !h2Dup
			collapseAt[i] = (hBeveled && h2Neither) ||
				(hDup && h2Beveled) ||
				(hDup && h2Neither) ||
				(hNeither && h2Beveled)
		}

		_, newVerts, err := ChamferVertex(m, v, 0)
		if err != nil {
			return nil, errorf("bevelEdgesConnectivity", err)
		}

		// The translation map is scoped to this vertex's own chamfer ring:
		// collapse_ops below only ever references positions within
		// newVerts, so there is nothing for one vertex's collapses to
		// leak into another's.
		translation := make(vertexTranslation)
		nv := len(newVerts)
		for i := 0; i < nv; i++ {
			if !collapseAt[i] {
				continue
			}
			// Keep w (the later ring vertex) so later iterations of this
			// loop don't reference an id this collapse just freed.
			vv, w := newVerts[i], newVerts[(i+1)%nv]
			vv = translation.resolve(vv)
			w = translation.resolve(w)
			h, err := traverse.AtVertex(m, w).HalfedgeTo(vv).TryEnd()
			if err != nil {
				return nil, errorf("bevelEdgesConnectivity", err)
			}
			if _, err := m.CollapseEdge(h); err != nil {
				return nil, errorf("bevelEdgesConnectivity", err)
			}
			translation[vv] = w
		}
	}

	return edgesToBevel, nil
}

// BevelEdges replaces each of the given half-edges' undirected edges with a
// small quad face, and each touched vertex with a polygon, via the
// duplicate-then-chamfer rewrite bevelEdgesConnectivity performs. Each
// beveled vertex is then pulled toward its neighbors along the original
// edge loop by amount, accumulating one pull per incident beveled edge.
func BevelEdges(m *mesh.Mesh, halfedges []mesh.HalfedgeID, amount float64) error {
	log := meshlog.Std().Op("BevelEdges")
	log.Debugf("connectivity rewrite: %d input half-edges", len(halfedges))
	beveled, err := bevelEdgesConnectivity(m, halfedges)
	if err != nil {
		return errorf("BevelEdges", err)
	}
	log.Debugf("geometric adjustment: %d beveled half-edges, amount=%v", len(beveled.Items()), amount)

	moveOps := make(map[mesh.VertexID]*orderedSet[mesh.Vec3])
	pull := func(v mesh.VertexID, target mesh.Vec3) {
		set, ok := moveOps[v]
		if !ok {
			set = newOrderedSet[mesh.Vec3]()
			moveOps[v] = set
		}
		set.Insert(target)
	}

	for _, h := range beveled.Items() {
		v, w, err := traverse.AtHalfedge(m, h).SrcDstPair()
		if err != nil {
			return errorf("BevelEdges", err)
		}
		vTo, err := traverse.AtHalfedge(m, h).Previous().Vertex().TryEnd()
		if err != nil {
			return errorf("BevelEdges", err)
		}
		vToPos, err := m.Position(vTo)
		if err != nil {
			return errorf("BevelEdges", err)
		}
		wTo, err := traverse.AtHalfedge(m, h).Next().Next().Vertex().TryEnd()
		if err != nil {
			return errorf("BevelEdges", err)
		}
		wToPos, err := m.Position(wTo)
		if err != nil {
			return errorf("BevelEdges", err)
		}
		pull(v, vToPos)
		pull(w, wToPos)
	}

	for v, pulls := range moveOps {
		vPos, err := m.Position(v)
		if err != nil {
			return errorf("BevelEdges", err)
		}
		for _, pullTo := range pulls.Items() {
			dir := pullTo.Sub(vPos).Normalize()
			if err := m.UpdateVertexPosition(v, func(pos mesh.Vec3) mesh.Vec3 {
				return pos.Add(dir.Scale(amount))
			}); err != nil {
				return errorf("BevelEdges", err)
			}
		}
	}

	return nil
}
