package mesh

// CloseBoundaries allocates an explicit boundary half-edge (face = ∅) for
// every half-edge that AddFace left untwinned, and links their next
// pointers into the hole's own loop — so that invariant 7 ("a half-edge
// with face = ∅ is a boundary half-edge; the next cycle through boundary
// half-edges forms a boundary loop") holds for meshes that aren't closed
// surfaces (open sheets like a plane grid, or any mesh with an unmatched
// edge). AddFace itself never does this, exactly like the original
// add_face: it only resolves a twin when the reverse (w, v) pair has
// already been recorded, leaving a genuinely open edge's twin zero.
//
// Assumes a manifold boundary: at most one outgoing and one incoming
// unmatched edge per vertex. Meshes built entirely from AddFace calls that
// close every face (a cube, a tetrahedron) have nothing to do here — this
// is only load-bearing for meshbuild's Plane and similar open shapes.
func (m *Mesh) CloseBoundaries() error {
	type gap struct {
		h    HalfedgeID
		v, w VertexID
	}
	var gaps []gap
	for h := range m.IterHalfedges {
		twin, err := m.HalfedgeTwin(h)
		if err != nil {
			return errorf("CloseBoundaries", err)
		}
		if !twin.IsZero() {
			continue
		}
		v, err := m.HalfedgeVertex(h)
		if err != nil {
			return errorf("CloseBoundaries", err)
		}
		next, err := m.HalfedgeNext(h)
		if err != nil {
			return errorf("CloseBoundaries", err)
		}
		w, err := m.HalfedgeVertex(next)
		if err != nil {
			return errorf("CloseBoundaries", err)
		}
		gaps = append(gaps, gap{h: h, v: v, w: w})
	}
	if len(gaps) == 0 {
		return nil
	}

	boundaryOf := make(map[HalfedgeID]HalfedgeID, len(gaps))
	endingAt := make(map[VertexID]HalfedgeID, len(gaps))
	for _, g := range gaps {
		b := m.AllocHalfedge(HalfedgeFields{Vertex: g.w})
		setTwin(m, g.h, b)
		setTwin(m, b, g.h)
		boundaryOf[g.h] = b
		endingAt[g.w] = g.h // g.h ends at g.w; its boundary twin starts there
	}

	// next(boundaryOf[g.h]) must start where it ends, i.e. at g.v — the
	// vertex where some other gap edge's boundary twin also starts, which
	// is exactly the gap edge that ends at g.v.
	for _, g := range gaps {
		b := boundaryOf[g.h]
		incoming, ok := endingAt[g.v]
		if !ok {
			return errorf("CloseBoundaries", errNonManifoldBoundary)
		}
		setNext(m, b, boundaryOf[incoming])
	}

	return nil
}
