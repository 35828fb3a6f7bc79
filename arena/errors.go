package arena

import (
	"errors"
	"fmt"
)

// ErrStaleHandle indicates a Handle's generation no longer matches the slot
// it addresses: the element it once named has been removed (and the slot
// may since have been reused for something else entirely).
var ErrStaleHandle = errors.New("arena: stale handle")

// errorf wraps ErrStaleHandle (or any other arena error) with the method
// name and the offending handle, following the sentinel-plus-context
// wrapping convention used throughout this module.
func errorf(method string, h Handle, err error) error {
	return fmt.Errorf("arena: %s(%v): %w", method, h, err)
}
