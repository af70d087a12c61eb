package seq

import (
	"cmp"
	"slices"
)

// Comparer orders two elements: negative when a sorts before b, zero
// when they tie at this level.
type Comparer[T any] func(a, b T) int

// ByKey builds a Comparer from a key extractor, ordering ascending by
// the key's natural order.
func ByKey[T any, K cmp.Ordered](key func(T) K) Comparer[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// ByKeyCmp builds a Comparer from a key extractor and an explicit key
// comparator, for key types without a natural order or with a
// non-default one (locale collation, descending, ...).
func ByKeyCmp[T, K any](key func(T) K, compare func(K, K) int) Comparer[T] {
	return func(a, b T) int {
		return compare(key(a), key(b))
	}
}

// Reverse inverts a Comparer.
func Reverse[T any](c Comparer[T]) Comparer[T] {
	return func(a, b T) int { return -c(a, b) }
}

// Ordered is a sequence with a pending multi-key sort. Additional keys
// are appended with ThenBy; the sort runs lazily, once, and is stable,
// so elements tying on every key keep their original relative order.
type Ordered[T any] struct {
	src  *Seq[T]
	cmps []Comparer[T]
	out  *Seq[T]
}

func newOrdered[T any](src *Seq[T], cmps []Comparer[T]) *Ordered[T] {
	return &Ordered[T]{
		src:  src,
		cmps: cmps,
		out: fromFunc(func() []T {
			sorted := slices.Clone(src.ToSlice())
			slices.SortStableFunc(sorted, func(a, b T) int {
				for _, c := range cmps {
					if r := c(a, b); r != 0 {
						return r
					}
				}
				return 0
			})
			return sorted
		}),
	}
}

// OrderBy starts a multi-key sort with the given primary comparer.
func (s *Seq[T]) OrderBy(primary Comparer[T]) *Ordered[T] {
	return newOrdered(s, []Comparer[T]{primary})
}

// ThenBy adds a tie-breaking comparer applied when all earlier keys
// compare equal. The receiver is not modified.
func (o *Ordered[T]) ThenBy(next Comparer[T]) *Ordered[T] {
	cmps := make([]Comparer[T], 0, len(o.cmps)+1)
	cmps = append(cmps, o.cmps...)
	cmps = append(cmps, next)
	return newOrdered(o.src, cmps)
}

// Seq finalizes the key chain, returning the sequence that sorts on
// first materialization.
func (o *Ordered[T]) Seq() *Seq[T] {
	return o.out
}

// ToSlice materializes the sorted sequence. Like Seq.ToSlice, the sort
// runs once per Ordered and the result is cached.
func (o *Ordered[T]) ToSlice() []T {
	return o.out.ToSlice()
}

// Where filters the sorted sequence, preserving sort order.
func (o *Ordered[T]) Where(pred func(T) bool) *Seq[T] {
	return o.out.Where(pred)
}
