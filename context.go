package stackvec

import "unsafe"

const (
	// DefaultReserveMargin is the stack headroom, in bytes, that the
	// placement decision keeps available after satisfying a request.
	DefaultReserveMargin = 16 * 1024

	// defaultStackBudget is the assumed usable stack window below the
	// probe point when no explicit budget is given (1 MiB).
	defaultStackBudget = 1 << 20

	// stackTopSlack widens the estimated upper bound above the probe
	// point so that frames shallower than the probe still count as
	// stack-resident.
	stackTopSlack = 256 * 1024
)

// ThreadContext describes the stack of the goroutine that is about to
// receive an allocation: its address range and its current stack pointer.
// A context is only meaningful on the goroutine it was created for.
type ThreadContext interface {
	// StackBounds returns the stack address range as [lower, upper).
	// lower >= upper marks the bounds as unavailable.
	StackBounds() (lower, upper uintptr)

	// StackPointer returns the current top of the consumed stack region.
	// The stack grows downward, so the unused window is (lower, sp).
	StackPointer() uintptr
}

// FixedContext is a ThreadContext with caller-supplied values. It exists so
// the placement decision can be exercised against synthetic stack layouts.
type FixedContext struct {
	Lower, Upper, SP uintptr
}

// StackBounds returns the fixed [Lower, Upper) range.
func (c FixedContext) StackBounds() (uintptr, uintptr) { return c.Lower, c.Upper }

// StackPointer returns the fixed SP value.
func (c FixedContext) StackPointer() uintptr { return c.SP }

// goroutineContext estimates the current goroutine's stack region from an
// address probe taken at creation time. Go exposes no public API for exact
// goroutine stack bounds, and the runtime may move a stack at any function
// call, so the bounds here are an estimate that is only ever wrong in the
// direction of a heap verdict: a stale or moved stack puts the live stack
// pointer outside the recorded range and the decision falls back to heap.
type goroutineContext struct {
	lower, upper uintptr
}

// NewGoroutineContext creates a ThreadContext for the calling goroutine.
// budget is the assumed usable stack window in bytes below the call site;
// 0 selects a default capped by the process stack limit where the platform
// reports one. Create the context near the top of the goroutine and pass it
// via Options.Context to have deeper frames measured as consumed stack.
func NewGoroutineContext(budget uintptr) ThreadContext {
	if budget == 0 {
		budget = defaultStackBudget
		if lim := systemStackLimit(); lim != 0 && lim < budget {
			budget = lim
		}
	}
	sp := currentStackPointer()
	var lower uintptr
	if sp > budget {
		lower = sp - budget
	}
	// The budget extends below the creation probe; the slack above it only
	// serves the residency test for frames shallower than the probe.
	return &goroutineContext{lower: lower, upper: sp + stackTopSlack}
}

func (c *goroutineContext) StackBounds() (uintptr, uintptr) { return c.lower, c.upper }

func (c *goroutineContext) StackPointer() uintptr { return currentStackPointer() }

// currentStackPointer approximates the goroutine's stack pointer by taking
// the address of a local. Kept noinline so the probe always sits in its own
// frame, one call below the measurement site. The uintptr conversion keeps
// the probe from escaping.
//
//go:noinline
func currentStackPointer() uintptr {
	var probe byte
	return uintptr(unsafe.Pointer(&probe))
}
