package stackvec

import (
	"sync/atomic"
	"unsafe"
)

// ElemSize returns the size in bytes of a single element.
func (b *Buffer[T]) ElemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SizeInBytes returns the total storage footprint of the elements.
func (b *Buffer[T]) SizeInBytes() int {
	return b.count * b.ElemSize()
}

// Stats returns a snapshot of this buffer's shape and placement.
func (b *Buffer[T]) Stats() BufferStats {
	return BufferStats{
		Count:        b.count,
		ElemSize:     b.ElemSize(),
		SizeInBytes:  b.SizeInBytes(),
		HeapBacked:   b.heapBacked,
		OwnsElements: b.owned,
		Released:     b.released,
		InlineSlots:  InlineSlots,
	}
}

// BufferStats contains statistical information about a buffer.
type BufferStats struct {
	Count        int  // Fixed element count
	ElemSize     int  // Size of one element in bytes
	SizeInBytes  int  // Total element storage in bytes
	HeapBacked   bool // Placement verdict recorded at construction
	OwnsElements bool // Whether the buffer manages element lifetimes
	Released     bool // Whether Release has run
	InlineSlots  int  // Inline capacity in elements
}

// Package-wide placement counters. These count construction verdicts and
// releases across all buffers of all element types; they back Allocations
// and the prometheus Collector.
var allocCounters struct {
	stack    atomic.Uint64
	heap     atomic.Uint64
	releases atomic.Uint64
	reasons  [numHeapReasons]atomic.Uint64
}

func recordPlacement(v placement, r heapReason) {
	if v == placementStack {
		allocCounters.stack.Add(1)
		return
	}
	allocCounters.heap.Add(1)
	allocCounters.reasons[r].Add(1)
}

func recordRelease() {
	allocCounters.releases.Add(1)
}

// AllocStats is a snapshot of the package-wide placement counters.
type AllocStats struct {
	StackPlacements uint64            // Verdicts that chose inline storage
	HeapPlacements  uint64            // Verdicts that fell back to the heap
	Releases        uint64            // Buffers released so far
	HeapByReason    map[string]uint64 // Heap verdicts keyed by fallback reason
}

// Allocations returns a snapshot of the package-wide placement counters.
func Allocations() AllocStats {
	s := AllocStats{
		StackPlacements: allocCounters.stack.Load(),
		HeapPlacements:  allocCounters.heap.Load(),
		Releases:        allocCounters.releases.Load(),
		HeapByReason:    make(map[string]uint64),
	}
	for r := reasonInlineCapacity; r < numHeapReasons; r++ {
		if n := allocCounters.reasons[r].Load(); n > 0 {
			s.HeapByReason[r.String()] = n
		}
	}
	return s
}
