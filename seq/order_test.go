package seq

import (
	"math/rand"
	"testing"
)

type entry struct {
	rank int
	name string
	seq  int // original position, for stability checks
}

func TestOrderBy_ThenBy(t *testing.T) {
	items := []entry{
		{1, "zeta", 0},
		{0, "beta", 1},
		{1, "alpha", 2},
		{0, "alpha", 3},
	}

	got := From(items).
		OrderBy(ByKey(func(e entry) int { return e.rank })).
		ThenBy(ByKey(func(e entry) string { return e.name })).
		ToSlice()

	expected := []entry{
		{0, "alpha", 3},
		{0, "beta", 1},
		{1, "alpha", 2},
		{1, "zeta", 0},
	}
	for i := range expected {
		if got[i].rank != expected[i].rank || got[i].name != expected[i].name {
			t.Errorf("index %d: expected %v, got %v", i, expected[i], got[i])
		}
	}
}

func TestOrderBy_StableOnFullTies(t *testing.T) {
	// All elements tie on every key; original order must survive,
	// whatever the input permutation looked like before the tie keys
	// were computed.
	items := make([]entry, 50)
	for i := range items {
		items[i] = entry{rank: rand.Intn(3), name: "same", seq: i}
	}

	got := From(items).
		OrderBy(ByKey(func(e entry) int { return e.rank })).
		ThenBy(ByKey(func(e entry) string { return e.name })).
		ToSlice()

	lastSeq := map[int]int{0: -1, 1: -1, 2: -1}
	for _, e := range got {
		if e.seq < lastSeq[e.rank] {
			t.Fatalf("stability violated within rank %d: %d after %d", e.rank, e.seq, lastSeq[e.rank])
		}
		lastSeq[e.rank] = e.seq
	}
}

func TestOrderBy_DoesNotMutateSource(t *testing.T) {
	items := []int{3, 1, 2}
	From(items).OrderBy(ByKey(func(n int) int { return n })).ToSlice()
	if items[0] != 3 || items[1] != 1 || items[2] != 2 {
		t.Errorf("source slice was mutated: %v", items)
	}
}

func TestReverse(t *testing.T) {
	got := Of(1, 3, 2).OrderBy(Reverse(ByKey(func(n int) int { return n }))).ToSlice()
	if got[0] != 3 || got[1] != 2 || got[2] != 1 {
		t.Errorf("expected [3 2 1], got %v", got)
	}
}

func TestByKeyCmp(t *testing.T) {
	byLen := ByKeyCmp(func(s string) int { return len(s) }, func(a, b int) int { return a - b })
	got := Of("ccc", "a", "bb").OrderBy(byLen).ToSlice()
	assertStrings(t, got, []string{"a", "bb", "ccc"})
}

func TestOrdered_SortsOnce(t *testing.T) {
	calls := 0
	o := Of(2, 1).OrderBy(func(a, b int) int {
		calls++
		return a - b
	})
	o.ToSlice()
	first := calls
	o.ToSlice()
	if calls != first {
		t.Errorf("expected cached sort, comparer ran again (%d -> %d calls)", first, calls)
	}
}

func TestOrdered_Where(t *testing.T) {
	got := Of(4, 1, 3, 2).
		OrderBy(ByKey(func(n int) int { return n })).
		Where(func(n int) bool { return n%2 == 0 }).
		ToSlice()
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("expected [2 4], got %v", got)
	}
}
