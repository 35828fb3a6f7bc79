// Package traverse is the chained query surface over a *mesh.Mesh: start
// at a vertex, half-edge or face, chain through its connectivity, and
// force evaluation with End (panics on failure) or TryEnd (returns an
// error). Every step reads mesh through its exported accessors only — it
// never reaches into mesh's unexported fields, so it composes the same
// way an external package would.
//
// A cursor carries a value and a deferred error: each chained step is a
// no-op once an earlier step has failed, so a long chain like
//
//	traverse.AtVertex(m, v).HalfedgeTo(w).Twin().Next().TryEnd()
//
// only needs one error check at the end.
package traverse
