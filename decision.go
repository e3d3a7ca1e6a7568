package stackvec

// placement records which storage strategy a buffer was built on.
type placement int

const (
	placementStack placement = iota
	placementHeap
)

// heapReason explains why a verdict resolved to the heap. reasonNone marks
// a stack verdict.
type heapReason int

const (
	reasonNone heapReason = iota
	reasonInlineCapacity
	reasonSizeOverflow
	reasonBadBounds
	reasonNotStackResident
	reasonBadStackPointer
	reasonMarginOverflow
	reasonInsufficientHeadroom

	numHeapReasons
)

func (r heapReason) String() string {
	switch r {
	case reasonNone:
		return "none"
	case reasonInlineCapacity:
		return "inline_capacity"
	case reasonSizeOverflow:
		return "size_overflow"
	case reasonBadBounds:
		return "bad_bounds"
	case reasonNotStackResident:
		return "not_stack_resident"
	case reasonBadStackPointer:
		return "bad_stack_pointer"
	case reasonMarginOverflow:
		return "margin_overflow"
	case reasonInsufficientHeadroom:
		return "insufficient_headroom"
	}
	return "unknown"
}

// decidePlacement produces the storage verdict for a request of count
// elements totalling need bytes, constructed at address self, keeping at
// least margin bytes of stack headroom. The verdict is conservative: every
// inconsistency or arithmetic wrap resolves to the heap. It performs no
// work that grows the stack between measuring the stack pointer and using
// it.
func decidePlacement(count int, need, margin, self uintptr, ctx ThreadContext) (placement, heapReason) {
	if count > InlineSlots {
		return placementHeap, reasonInlineCapacity
	}
	lower, upper := ctx.StackBounds()
	if lower >= upper {
		return placementHeap, reasonBadBounds
	}
	if self < lower || self >= upper {
		// The buffer under construction is itself heap- or
		// static-allocated; embedding its storage would not be
		// stack-resident either.
		return placementHeap, reasonNotStackResident
	}
	sp := ctx.StackPointer()
	if sp <= lower || sp > upper {
		return placementHeap, reasonBadStackPointer
	}
	if need > sp {
		return placementHeap, reasonInsufficientHeadroom
	}
	floor := lower + margin
	if floor < lower {
		return placementHeap, reasonMarginOverflow
	}
	if floor >= sp-need {
		return placementHeap, reasonInsufficientHeadroom
	}
	return placementStack, reasonNone
}
