package shuffle

import (
	"math/rand"
	"sort"
	"testing"
)

func TestSliceIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	got := Copy(rng, in)
	if len(got) != len(in) {
		t.Fatalf("length changed: %d != %d", len(got), len(in))
	}

	sorted := append([]int(nil), got...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i+1 {
			t.Fatalf("not a permutation: %v", got)
		}
	}
}

func TestCopyLeavesInputUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	in := []string{"a", "b", "c", "d", "e"}

	_ = Copy(rng, in)

	want := []string{"a", "b", "c", "d", "e"}
	for i := range want {
		if in[i] != want[i] {
			t.Fatalf("input mutated: %v", in)
		}
	}
}

func TestSeededShuffleIsDeterministic(t *testing.T) {
	a := Copy(rand.New(rand.NewSource(7)), []int{1, 2, 3, 4, 5})
	b := Copy(rand.New(rand.NewSource(7)), []int{1, 2, 3, 4, 5})
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different orders: %v vs %v", a, b)
		}
	}
}
