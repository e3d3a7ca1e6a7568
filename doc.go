// Package stackvec implements a fixed-size, typed contiguous buffer whose
// backing storage is chosen once, at construction, between the unused
// portion of the constructing goroutine's stack and the general heap.
//
// # Overview
//
// A Buffer holds exactly the number of elements requested at construction.
// When the request is small enough and the buffer value itself lives in a
// stack frame with sufficient headroom, the elements are stored in a
// fixed-capacity array embedded directly in the Buffer value, so they are
// reclaimed for free when the enclosing frame unwinds. Otherwise the
// elements come from the heap. Both placements behave identically through
// the API: same indexed access, same iteration, same element-lifetime
// guarantees. This is useful for:
//
//   - Scratch buffers in hot paths that usually fit on the stack
//   - Avoiding heap churn for short-lived, fixed-size working sets
//   - Callback-driven traversal over a snapshot of externally owned data
//
// # Basic Usage
//
//	buf := stackvec.Make[int](10)
//	defer buf.Release()
//
//	buf.ForEach(func(member *int, index int) {
//		*member = index
//	})
//
//	buf.WhileEach(func(member *int, index int) bool {
//		return *member < 5 // stop at the first element >= 5
//	})
//
// # Placement Decision
//
// The placement verdict is computed exactly once, inside Make, and never
// re-evaluated. It is "stack" only when all of the following hold: the
// element count fits the inline capacity (InlineSlots), the buffer value
// under construction is itself stack-resident according to the thread
// context, and after subtracting the requested bytes at least the reserved
// margin of headroom remains above the stack's low bound. Any inconsistency
// or arithmetic overflow in that check resolves to "heap": the decision
// may pessimistically fall back to the heap, never the other way around.
//
// The stack introspection behind the verdict is abstracted as a
// ThreadContext so the decision is testable with synthetic bounds; see
// NewGoroutineContext and FixedContext.
//
// # Element Lifetime
//
// By default the buffer owns its element lifetimes: every slot is
// initialized (zeroed, then passed to the optional Construct hook) in
// increasing index order at construction, and the optional Destroy hook
// runs exactly once per slot at Release. With Options.SkipConstruct the
// buffer is instead a raw view: no hooks run and the caller manages element
// contents, typically by bulk-copying with CopyFrom immediately after
// construction.
//
// # Goroutine Affinity
//
// A Buffer must be constructed, used, and released by a single goroutine.
// The placement decision introspects the current goroutine's stack, and the
// IsStackResident report is meaningless from any other goroutine. There is
// no locking because there is no shared state to protect.
//
// # Diagnostics
//
// Out-of-range indexed access and the allocation path itself are reported
// through a zap logger. The logger is a no-op unless replaced via SetLogger
// or the STACKVEC_DEBUG environment variable is set, in which case a
// development logger traces verdicts, addresses and invalid-index reports.
package stackvec
