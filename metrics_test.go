package stackvec

import "testing"

func TestBufferStats(t *testing.T) {
	b := MakeWith(10, Options[int64]{Context: ampleContext()})
	defer b.Release()

	s := b.Stats()
	if s.Count != 10 {
		t.Errorf("Stats().Count = %d, want 10", s.Count)
	}
	if s.ElemSize != 8 {
		t.Errorf("Stats().ElemSize = %d, want 8", s.ElemSize)
	}
	if s.SizeInBytes != 80 {
		t.Errorf("Stats().SizeInBytes = %d, want 80", s.SizeInBytes)
	}
	if s.HeapBacked {
		t.Error("Stats().HeapBacked = true, want false")
	}
	if !s.OwnsElements {
		t.Error("Stats().OwnsElements = false, want true")
	}
	if s.Released {
		t.Error("Stats().Released = true, want false")
	}
	if s.InlineSlots != InlineSlots {
		t.Errorf("Stats().InlineSlots = %d, want %d", s.InlineSlots, InlineSlots)
	}

	b.Release()
	if !b.Stats().Released {
		t.Error("Stats().Released = false after Release, want true")
	}
}

func TestBufferStatsRawView(t *testing.T) {
	b := MakeWith(3, Options[byte]{Context: tightContext(), SkipConstruct: true})
	defer b.Release()

	s := b.Stats()
	if !s.HeapBacked {
		t.Error("Stats().HeapBacked = false, want true for forced heap placement")
	}
	if s.OwnsElements {
		t.Error("Stats().OwnsElements = true, want false for raw view")
	}
	if s.SizeInBytes != 3 {
		t.Errorf("Stats().SizeInBytes = %d, want 3", s.SizeInBytes)
	}
}

func TestAllocationCounters(t *testing.T) {
	before := Allocations()

	sb := MakeWith(4, Options[int]{Context: ampleContext()})
	hb := MakeWith(4, Options[int]{Context: tightContext()})
	sb.Release()
	hb.Release()

	after := Allocations()
	if got := after.StackPlacements - before.StackPlacements; got != 1 {
		t.Errorf("stack placements delta = %d, want 1", got)
	}
	if got := after.HeapPlacements - before.HeapPlacements; got != 1 {
		t.Errorf("heap placements delta = %d, want 1", got)
	}
	if got := after.Releases - before.Releases; got != 2 {
		t.Errorf("releases delta = %d, want 2", got)
	}
	reason := reasonInsufficientHeadroom.String()
	if after.HeapByReason[reason] <= before.HeapByReason[reason] {
		t.Errorf("heap reason %q did not advance: before=%d after=%d",
			reason, before.HeapByReason[reason], after.HeapByReason[reason])
	}
}

func TestInvalidBufferDoesNotCountRelease(t *testing.T) {
	before := Allocations()

	b := Make[int](0)
	b.Release()

	after := Allocations()
	if after.Releases != before.Releases {
		t.Errorf("invalid buffer advanced release counter by %d",
			after.Releases-before.Releases)
	}
}
