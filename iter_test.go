package stackvec

import "testing"

func TestForEachOrderAndVisibility(t *testing.T) {
	b := MakeWith(6, Options[int]{Context: ampleContext()})
	defer b.Release()

	var visited []int
	b.ForEach(func(member *int, index int) {
		visited = append(visited, index)
		*member = index * 10
	})
	if len(visited) != 6 {
		t.Fatalf("visited %d members, want 6", len(visited))
	}
	for i, idx := range visited {
		if idx != i {
			t.Errorf("visit order[%d] = %d, want %d", i, idx, i)
		}
	}

	// Mutations from the first pass must be visible to the second.
	b.ForEach(func(member *int, index int) {
		if *member != index*10 {
			t.Errorf("member[%d] = %d, want %d", index, *member, index*10)
		}
	})
}

func TestForEachValueCannotMutate(t *testing.T) {
	b := MakeWith(3, Options[int]{Context: ampleContext()})
	defer b.Release()

	b.ForEachValue(func(member int, index int) {
		member = 99 // mutates the copy only
		_ = member
	})
	b.ForEachValue(func(member int, index int) {
		if member != 0 {
			t.Errorf("member[%d] = %d, want 0", index, member)
		}
	})
}

func TestWhileEachStopsEarly(t *testing.T) {
	tests := []struct {
		name       string
		stopAt     int
		wantVisits int
	}{
		{"stop at first", 0, 1},
		{"stop mid-way", 4, 5},
		{"stop at last", 7, 8},
		{"never stop", -1, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := MakeWith(8, Options[int]{Context: ampleContext()})
			defer b.Release()

			visits := 0
			b.WhileEach(func(member *int, index int) bool {
				visits++
				return index != tt.stopAt
			})
			if visits != tt.wantVisits {
				t.Errorf("WhileEach visited %d members, want %d", visits, tt.wantVisits)
			}
		})
	}
}

func TestWhileEachValueStopsEarly(t *testing.T) {
	b := MakeWith(5, Options[int]{Context: ampleContext()})
	defer b.Release()
	b.ForEach(func(member *int, index int) { *member = index })

	var seen []int
	b.WhileEachValue(func(member int, index int) bool {
		seen = append(seen, member)
		return member < 2
	})
	want := []int{0, 1, 2}
	if len(seen) != len(want) {
		t.Fatalf("WhileEachValue visited %d members, want %d", len(seen), len(want))
	}
	for i, w := range want {
		if seen[i] != w {
			t.Errorf("seen[%d] = %d, want %d", i, seen[i], w)
		}
	}
}

func TestTraversalOnInvalidBuffer(t *testing.T) {
	var b Buffer[int] // zero value is invalid and inert

	calls := 0
	b.ForEach(func(member *int, index int) { calls++ })
	b.ForEachValue(func(member int, index int) { calls++ })
	b.WhileEach(func(member *int, index int) bool { calls++; return true })
	b.WhileEachValue(func(member int, index int) bool { calls++; return true })
	if calls != 0 {
		t.Errorf("traversal on invalid buffer made %d calls, want 0", calls)
	}
}
