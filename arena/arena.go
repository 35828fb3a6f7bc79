package arena

// Alloc stores payload in a fresh or recycled slot and returns its Handle.
// A recycled slot's generation is bumped from its prior occupant, so stale
// handles to the prior occupant remain detectable. Complexity: O(1).
func (a *Arena[T]) Alloc(payload T) Handle {
	if n := len(a.freeList); n > 0 {
		idx := a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		s := &a.slots[idx]
		s.occupied = true
		s.value = payload
		a.liveLen++
		return Handle{Index: idx, Generation: s.generation}
	}

	idx := uint32(len(a.slots))
	a.slots = append(a.slots, slot[T]{generation: 1, occupied: true, value: payload})
	a.liveLen++
	return Handle{Index: idx, Generation: 1}
}

// Remove frees the slot h addresses and bumps its generation so any copy of
// h still held elsewhere becomes detectably stale. Complexity: O(1).
func (a *Arena[T]) Remove(h Handle) error {
	s, err := a.slotFor(h)
	if err != nil {
		return errorf("Remove", h, err)
	}
	var zero T
	s.value = zero
	s.occupied = false
	s.generation++
	a.freeList = append(a.freeList, h.Index)
	a.liveLen--
	return nil
}

// Get returns a pointer to the live payload h addresses, or ErrStaleHandle
// if h's generation doesn't match the slot's current occupant (including
// the case where the slot was never allocated). The returned pointer
// aliases the arena's backing storage: callers mutate through it directly
// instead of calling a separate GetMut, since Go has no const/mut reference
// split to enforce the distinction spec.md's "get / get_mut" implies.
// Complexity: O(1).
func (a *Arena[T]) Get(h Handle) (*T, error) {
	s, err := a.slotFor(h)
	if err != nil {
		return nil, errorf("Get", h, err)
	}
	return &s.value, nil
}

// Len reports the number of live elements. Complexity: O(1).
func (a *Arena[T]) Len() int { return a.liveLen }

// Iter calls yield once per live (Handle, *T) pair in unspecified order,
// stopping early if yield returns false. Mutating the arena (Alloc/Remove)
// from inside yield is not supported.
func (a *Arena[T]) Iter(yield func(Handle, *T) bool) {
	for idx := range a.slots {
		s := &a.slots[idx]
		if !s.occupied {
			continue
		}
		if !yield(Handle{Index: uint32(idx), Generation: s.generation}, &s.value) {
			return
		}
	}
}

// slotFor resolves h to its backing slot, validating bounds and generation.
func (a *Arena[T]) slotFor(h Handle) (*slot[T], error) {
	if int(h.Index) >= len(a.slots) {
		return nil, ErrStaleHandle
	}
	s := &a.slots[h.Index]
	if !s.occupied || s.generation != h.Generation {
		return nil, ErrStaleHandle
	}
	return s, nil
}
