package traverse

import (
	"errors"
	"fmt"
)

// Traversal-error sentinels (spec.md §7's "traversal errors" kind).
var (
	ErrMissingTwin            = errors.New("traverse: half-edge has no twin")
	ErrMissingNext            = errors.New("traverse: half-edge has no next")
	ErrMissingFace            = errors.New("traverse: half-edge has no face (boundary)")
	ErrMissingHalfedge        = errors.New("traverse: vertex has no outgoing half-edge")
	ErrHalfedgeHasNoFace      = errors.New("traverse: half-edge has no face")
	ErrHalfedgeFromToNotFound = errors.New("traverse: no half-edge from the given vertex to the given vertex")
	ErrCycleExceeded          = errors.New("traverse: cycle walk exceeded element count")
)

func errorf(method string, err error) error {
	return fmt.Errorf("traverse: %s: %w", method, err)
}
