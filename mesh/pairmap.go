package mesh

// PairMap records (from_vertex, to_vertex) -> half-edge during a multi-step
// construction that temporarily leaves twins unresolved (spec.md §3's
// "auxiliary write-time index"). It is owned by the caller building a
// sequence of faces (see AddFace and package meshbuild/ops), not by Mesh
// itself: once construction finishes, nothing further needs it.
type PairMap map[[2]VertexID]HalfedgeID

// NewPairMap returns an empty PairMap ready to be threaded through a
// sequence of AddFace calls.
func NewPairMap() PairMap {
	return make(PairMap)
}

func (p PairMap) get(from, to VertexID) (HalfedgeID, bool) {
	h, ok := p[[2]VertexID{from, to}]
	return h, ok
}

func (p PairMap) set(from, to VertexID, h HalfedgeID) {
	p[[2]VertexID{from, to}] = h
}
