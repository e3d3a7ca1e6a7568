package stackvec

// ForEach invokes fn once per element in strictly increasing index order,
// passing a pointer to the element so fn may mutate it in place. Mutations
// are visible to later accesses and traversals. No-op on invalid buffers.
func (b *Buffer[T]) ForEach(fn func(member *T, index int)) {
	s := b.storage()
	for i := range s {
		fn(&s[i], i)
	}
}

// ForEachValue is the read-only variant of ForEach: fn receives a copy of
// each element and cannot mutate the buffer through it.
func (b *Buffer[T]) ForEachValue(fn func(member T, index int)) {
	s := b.storage()
	for i := range s {
		fn(s[i], i)
	}
}

// WhileEach traverses like ForEach but stops at the first index for which
// fn returns false; fn is never invoked for indices beyond that point.
// When fn always returns true the traversal is identical to ForEach.
func (b *Buffer[T]) WhileEach(fn func(member *T, index int) bool) {
	s := b.storage()
	for i := range s {
		if !fn(&s[i], i) {
			break
		}
	}
}

// WhileEachValue is the read-only variant of WhileEach.
func (b *Buffer[T]) WhileEachValue(fn func(member T, index int) bool) {
	s := b.storage()
	for i := range s {
		if !fn(s[i], i) {
			break
		}
	}
}
