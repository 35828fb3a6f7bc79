package ops

import "fmt"

// errorf wraps err with the operation name for context, preserving it for
// errors.Is — mirroring package mesh's and package traverse's own errorf.
func errorf(op string, err error) error {
	return fmt.Errorf("ops: %s: %w", op, err)
}
