// Package seq provides lazy, composable operations over ordered
// sequences: filtering, projection, keyed set operations and stable
// multi-key sorting. Stages are not evaluated until a terminal
// operation (ToSlice, Count, First, Any) runs, and the terminal result
// is cached per sequence object so repeated enumeration does not redo
// upstream work.
package seq

import (
	"cmp"
	"slices"
	"sync"
)

// Seq is a lazily evaluated sequence of T. The zero value is an empty
// sequence. Seq values are safe to enumerate repeatedly; the pipeline
// runs once and the result is cached on first materialization.
type Seq[T any] struct {
	src  func() []T
	once sync.Once
	out  []T
}

func fromFunc[T any](src func() []T) *Seq[T] {
	return &Seq[T]{src: src}
}

// From wraps a slice. The slice is not copied until a terminal
// operation runs; callers should not mutate it mid-pipeline.
func From[T any](items []T) *Seq[T] {
	return fromFunc(func() []T { return items })
}

// Of builds a sequence from its arguments.
func Of[T any](items ...T) *Seq[T] {
	return From(items)
}

// Empty returns an empty sequence.
func Empty[T any]() *Seq[T] {
	return From[T](nil)
}

// FromMap yields the values of m ordered by ascending key, so the
// result is deterministic across runs.
func FromMap[K cmp.Ordered, V any](m map[K]V) *Seq[V] {
	return fromFunc(func() []V {
		keys := make([]K, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		out := make([]V, 0, len(m))
		for _, k := range keys {
			out = append(out, m[k])
		}
		return out
	})
}

// FromKeys yields the keys of m in ascending order. Works for sets
// represented as map[K]struct{}.
func FromKeys[K cmp.Ordered, V any](m map[K]V) *Seq[K] {
	return fromFunc(func() []K {
		keys := make([]K, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		return keys
	})
}

// ToSlice materializes the sequence. The pipeline is evaluated at most
// once; subsequent calls return the cached result. Callers must not
// mutate the returned slice.
func (s *Seq[T]) ToSlice() []T {
	if s == nil || s.src == nil {
		return nil
	}
	s.once.Do(func() {
		s.out = s.src()
	})
	return s.out
}

// Count returns the number of elements.
func (s *Seq[T]) Count() int {
	return len(s.ToSlice())
}

// Any reports whether the sequence has at least one element.
func (s *Seq[T]) Any() bool {
	return s.Count() > 0
}

// First returns the first element, or false if the sequence is empty.
func (s *Seq[T]) First() (T, bool) {
	items := s.ToSlice()
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[0], true
}

// Where keeps the elements for which pred returns true, preserving
// relative order.
func (s *Seq[T]) Where(pred func(T) bool) *Seq[T] {
	return fromFunc(func() []T {
		var out []T
		for _, v := range s.ToSlice() {
			if pred(v) {
				out = append(out, v)
			}
		}
		return out
	})
}

// Select applies fn to every element. For projections to a different
// element type use the package-level Map.
func (s *Seq[T]) Select(fn func(T) T) *Seq[T] {
	return Map(s, fn)
}

// Map projects a sequence of T into a sequence of U.
func Map[T, U any](s *Seq[T], fn func(T) U) *Seq[U] {
	return fromFunc(func() []U {
		in := s.ToSlice()
		out := make([]U, len(in))
		for i, v := range in {
			out[i] = fn(v)
		}
		return out
	})
}
