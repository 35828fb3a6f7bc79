package mesh

import (
	"errors"
	"fmt"
)

// Operation-precondition sentinels (spec §7). These are returned to the
// caller verbatim — never silently worked around — when a primitive's
// precondition isn't met.
var (
	// ErrVerticesShareNoFace indicates CutFace's v and w have no common face.
	ErrVerticesShareNoFace = errors.New("mesh: vertices share no face")

	// ErrVerticesAlreadyConnected indicates CutFace's v and w are already
	// joined by a half-edge.
	ErrVerticesAlreadyConnected = errors.New("mesh: vertices are already connected")

	// ErrFaceTooSmallToCut indicates CutFace was asked to cut a face with
	// fewer than 4 sides.
	ErrFaceTooSmallToCut = errors.New("mesh: face has too few sides to cut")

	// ErrBoundaryEdgeNotAllowed indicates DissolveEdge was asked to dissolve
	// a half-edge with no face on one side.
	ErrBoundaryEdgeNotAllowed = errors.New("mesh: boundary edge not allowed")

	// ErrIsolatedVertex indicates DissolveVertex was asked to dissolve a
	// vertex with no outgoing half-edges.
	ErrIsolatedVertex = errors.New("mesh: vertex is isolated")
)

// errorf wraps err with the method name for context, preserving it for
// errors.Is.
func errorf(method string, err error) error {
	return fmt.Errorf("mesh: %s: %w", method, err)
}

// errNonManifoldBoundary is returned by CloseBoundaries if an unmatched
// edge starts at a vertex where no unmatched edge ends, so its boundary
// loop cannot be closed.
var errNonManifoldBoundary = errors.New("mesh: non-manifold boundary vertex")

// errHalfedgeHasNoFace is used internally by primitives that, like the
// original Rust implementation, assume a half-edge has a face and
// propagate a failure rather than silently skip a boundary half-edge
// (DissolveVertex on a star that touches the mesh boundary is the one
// case this surfaces for; spec.md leaves that combination undefined).
var errHalfedgeHasNoFace = errors.New("mesh: half-edge has no face")

