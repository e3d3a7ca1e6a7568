// Package stackvec implements a fixed-size typed buffer with stack-or-heap
// placement. Typical usage: build the buffer with Make in the scope that
// needs it, defer Release, and access the elements through At, ForEach or
// WhileEach until the scope exits.
package stackvec

import (
	"unsafe"

	"go.uber.org/zap"
)

// InlineSlots is the capacity, in elements, of the storage array embedded
// in every Buffer value. Requests above this count are always heap-backed.
const InlineSlots = 128

// Buffer is a fixed-size contiguous buffer of T. The zero value is an
// invalid, inert buffer; use Make or MakeWith. A Buffer belongs to the
// goroutine that constructed it and must not be copied while in use: a
// stack-placed copy would duplicate the elements, a heap-placed copy would
// alias them.
type Buffer[T any] struct {
	inline     [InlineSlots]T
	heap       []T
	count      int
	heapBacked bool
	owned      bool
	released   bool
	destroy    func(member *T, index int)
	logger     *zap.Logger
}

// Options configures MakeWith. The zero value selects the defaults used by
// Make: default reserve margin, owned element lifetimes, a fresh goroutine
// context and the package logger.
type Options[T any] struct {
	// ReserveMargin is the stack headroom, in bytes, that must remain
	// available after placing the buffer on the stack. 0 selects
	// DefaultReserveMargin.
	ReserveMargin int

	// SkipConstruct makes the buffer a raw view: no element
	// initialization at construction and no Destroy calls at Release.
	// The caller manages element contents, typically via CopyFrom.
	SkipConstruct bool

	// Construct, when set, runs once per slot in increasing index order
	// after the slot is zeroed. Ignored when SkipConstruct is set.
	// Construct must not fail; types whose initialization can fail
	// should use SkipConstruct and populate manually.
	Construct func(member *T, index int)

	// Destroy, when set, runs once per slot in increasing index order
	// during Release. Ignored when SkipConstruct is set. Destroy must
	// not panic.
	Destroy func(member *T, index int)

	// Context supplies the stack introspection for the placement
	// decision. nil creates a goroutine context at construction time.
	Context ThreadContext

	// Logger receives diagnostics for this buffer. nil selects the
	// package logger.
	Logger *zap.Logger
}

// Make creates a Buffer of count elements with default options. The
// returned buffer is valid iff count > 0 and storage was obtained.
func Make[T any](count int) Buffer[T] {
	return MakeWith(count, Options[T]{})
}

// MakeWith creates a Buffer of count elements per opts. The placement
// verdict is computed here, exactly once, against the address of the buffer
// being built; it is immutable for the buffer's lifetime. count <= 0 yields
// an invalid, inert buffer.
func MakeWith[T any](count int, opts Options[T]) Buffer[T] {
	var b Buffer[T]
	b.logger = opts.Logger
	if count <= 0 {
		return b
	}
	b.count = count
	b.owned = !opts.SkipConstruct
	if b.owned {
		b.destroy = opts.Destroy
	}

	var zero T
	size := unsafe.Sizeof(zero)
	need := uintptr(count) * size

	verdict, reason := placementHeap, reasonSizeOverflow
	if size == 0 || need/size == uintptr(count) {
		margin := uintptr(DefaultReserveMargin)
		if opts.ReserveMargin > 0 {
			margin = uintptr(opts.ReserveMargin)
		}
		ctx := opts.Context
		if ctx == nil {
			ctx = NewGoroutineContext(0)
		}
		self := uintptr(unsafe.Pointer(&b))
		verdict, reason = decidePlacement(count, need, margin, self, ctx)
	}

	if verdict == placementHeap {
		b.heap = make([]T, count)
		b.heapBacked = true
	}
	recordPlacement(verdict, reason)
	b.log().Debug("buffer placed",
		zap.Int("count", count),
		zap.Uint64("bytes", uint64(need)),
		zap.Bool("heapBacked", b.heapBacked),
		zap.String("reason", reason.String()),
	)

	if b.owned && opts.Construct != nil {
		s := b.storage()
		for i := range s {
			opts.Construct(&s[i], i)
		}
	}
	return b
}

// storage re-derives the element slice from the receiver on every call, so
// the by-value construction pattern stays coherent: the inline array
// travels with the Buffer value and is never referenced through a stored
// self-pointer.
func (b *Buffer[T]) storage() []T {
	if b.released || b.count == 0 {
		return nil
	}
	if b.heapBacked {
		return b.heap
	}
	return b.inline[:b.count]
}

func (b *Buffer[T]) log() *zap.Logger {
	if b.logger != nil {
		return b.logger
	}
	return pkgLogger()
}

// Count returns the fixed element count the buffer was built with. It
// remains queryable after Release.
func (b *Buffer[T]) Count() int { return b.count }

// IsValid reports whether the buffer holds storage and at least one
// element. Invalid buffers are legal and inert: traversal is a no-op and
// indexed access is a caller error.
func (b *Buffer[T]) IsValid() bool {
	return b.storage() != nil
}

// IsStackResident reports the recorded placement verdict: true when the
// elements live in the buffer's inline array rather than on the heap. The
// report is meaningless when called from a goroutine other than the
// constructing one.
func (b *Buffer[T]) IsStackResident() bool {
	return b.IsValid() && !b.heapBacked
}

// OwnsElements reports whether the buffer manages element lifetimes itself
// (construction hooks at Make, Destroy hooks at Release) rather than being
// a raw view over caller-managed contents.
func (b *Buffer[T]) OwnsElements() bool { return b.owned }

// At returns a pointer to the element at index. An out-of-range index is a
// caller error: it is reported through the diagnostic logger and the
// subsequent slice access panics.
func (b *Buffer[T]) At(index int) *T {
	s := b.storage()
	if index < 0 || index >= len(s) {
		b.log().Error("index out of range",
			zap.Int("index", index),
			zap.Int("count", b.count),
		)
	}
	return &s[index]
}

// Value returns a copy of the element at index. Same out-of-range policy
// as At.
func (b *Buffer[T]) Value(index int) T {
	return *b.At(index)
}

// Set stores v at index. Same out-of-range policy as At.
func (b *Buffer[T]) Set(index int, v T) {
	*b.At(index) = v
}

// CopyFrom bulk-copies src into the buffer starting at slot 0 and returns
// the number of elements copied (min of len(src) and Count). This is the
// intended way to populate a raw-view buffer built with SkipConstruct.
func (b *Buffer[T]) CopyFrom(src []T) int {
	return copy(b.storage(), src)
}

// Release ends the buffer's lifetime: if the buffer owns its element
// lifetimes, the Destroy hook runs exactly once per slot in increasing
// index order; then heap storage, if any, is dropped. Stack storage needs
// no release call, it unwinds with the enclosing frame. Release is
// idempotent and safe to defer; after it the buffer reports invalid.
func (b *Buffer[T]) Release() {
	if b.released {
		return
	}
	if b.owned && b.destroy != nil {
		s := b.storage()
		for i := range s {
			b.destroy(&s[i], i)
		}
	}
	b.heap = nil
	b.released = true
	if b.count > 0 {
		recordRelease()
	}
}
