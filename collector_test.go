package stackvec

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestStatsCollectorDescribe(t *testing.T) {
	c := NewStatsCollector()
	ch := make(chan *prometheus.Desc, 8)
	c.Describe(ch)
	close(ch)

	descs := 0
	for range ch {
		descs++
	}
	if descs != 3 {
		t.Errorf("Describe emitted %d descriptors, want 3", descs)
	}
}

func TestStatsCollectorGather(t *testing.T) {
	// Drive at least one verdict of each kind so the counters are live.
	sb := MakeWith(2, Options[int]{Context: ampleContext()})
	hb := MakeWith(2, Options[int]{Context: tightContext()})
	sb.Release()
	hb.Release()

	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(NewStatsCollector()); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}

	want := map[string]bool{
		"stackvec_stack_placements_total": false,
		"stackvec_heap_placements_total":  false,
		"stackvec_releases_total":         false,
	}
	for _, mf := range families {
		if _, ok := want[mf.GetName()]; ok {
			want[mf.GetName()] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("metric family %q missing from gather output", name)
		}
	}

	stats := Allocations()
	for _, mf := range families {
		if mf.GetName() != "stackvec_stack_placements_total" {
			continue
		}
		if len(mf.GetMetric()) != 1 {
			t.Fatalf("stack placements has %d series, want 1", len(mf.GetMetric()))
		}
		got := mf.GetMetric()[0].GetCounter().GetValue()
		if got != float64(stats.StackPlacements) {
			t.Errorf("gathered stack placements = %v, want %v", got, stats.StackPlacements)
		}
	}
}
