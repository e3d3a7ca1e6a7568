package stackvec

// VisitSlice snapshots src into a raw-view buffer and drives an early-exit
// traversal over the copy. The callback sees the snapshot, so it may
// mutate or even free the source collection without affecting the
// traversal. No-op for an empty source.
func VisitSlice[T any](src []T, fn func(member *T, index int) bool) {
	b := MakeWith(len(src), Options[T]{SkipConstruct: true})
	defer b.Release()
	if !b.IsValid() {
		return
	}
	b.CopyFrom(src)
	b.WhileEach(fn)
}

// VisitSliceValue is the read-only variant of VisitSlice.
func VisitSliceValue[T any](src []T, fn func(member T, index int) bool) {
	b := MakeWith(len(src), Options[T]{SkipConstruct: true})
	defer b.Release()
	if !b.IsValid() {
		return
	}
	b.CopyFrom(src)
	b.WhileEachValue(fn)
}
