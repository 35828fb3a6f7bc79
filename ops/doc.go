// Package ops implements the compound mesh editors built atop package
// mesh's edit primitives and package traverse's query cursors: ExtrudeFace,
// ChamferVertex, BevelEdges, ExtrudeFaces and SplitEdge.
//
// Each compound operation is a fixed sequence of primitive calls whose
// id-stability contracts (see package mesh's DivideEdge and this package's
// ChamferVertex doc comments) are load-bearing: the sequence only produces a correct
// result if the primitives are called in the documented order, reusing the
// handles each earlier step returns. ops never reaches into package mesh's
// unexported fields — everything here composes through mesh's and
// traverse's exported surfaces, the same surface any external caller has.
package ops
