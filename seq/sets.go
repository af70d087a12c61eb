package seq

// KeyFunc extracts the comparison key used by the set operations. A
// nil KeyFunc means the element itself is the key; in that case the
// element's dynamic type must be comparable.
type KeyFunc[T any] func(T) any

func keyOf[T any](keyFn KeyFunc[T], v T) any {
	if keyFn == nil {
		return any(v)
	}
	return keyFn(v)
}

// Distinct drops elements whose key was already seen. The first
// occurrence wins and relative order is preserved.
func (s *Seq[T]) Distinct(keyFn KeyFunc[T]) *Seq[T] {
	return fromFunc(func() []T {
		seen := make(map[any]struct{})
		var out []T
		for _, v := range s.ToSlice() {
			k := keyOf(keyFn, v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, v)
		}
		return out
	})
}

// Except keeps the elements of s whose key does not occur in other.
func (s *Seq[T]) Except(other *Seq[T], keyFn KeyFunc[T]) *Seq[T] {
	return fromFunc(func() []T {
		drop := make(map[any]struct{})
		for _, v := range other.ToSlice() {
			drop[keyOf(keyFn, v)] = struct{}{}
		}
		var out []T
		for _, v := range s.ToSlice() {
			if _, ok := drop[keyOf(keyFn, v)]; !ok {
				out = append(out, v)
			}
		}
		return out
	})
}

// Union concatenates s and other, dropping duplicate keys. Elements of
// s come first; within each source, order is preserved.
func (s *Seq[T]) Union(other *Seq[T], keyFn KeyFunc[T]) *Seq[T] {
	return fromFunc(func() []T {
		seen := make(map[any]struct{})
		var out []T
		for _, src := range []*Seq[T]{s, other} {
			for _, v := range src.ToSlice() {
				k := keyOf(keyFn, v)
				if _, ok := seen[k]; ok {
					continue
				}
				seen[k] = struct{}{}
				out = append(out, v)
			}
		}
		return out
	})
}

// Intersect keeps the elements of s whose key also occurs in other,
// dropping duplicates. Order follows s.
func (s *Seq[T]) Intersect(other *Seq[T], keyFn KeyFunc[T]) *Seq[T] {
	return fromFunc(func() []T {
		keep := make(map[any]struct{})
		for _, v := range other.ToSlice() {
			keep[keyOf(keyFn, v)] = struct{}{}
		}
		var out []T
		for _, v := range s.ToSlice() {
			k := keyOf(keyFn, v)
			if _, ok := keep[k]; !ok {
				continue
			}
			delete(keep, k)
			out = append(out, v)
		}
		return out
	})
}

// Contains reports whether any element's key equals the key of item.
func (s *Seq[T]) Contains(item T, keyFn KeyFunc[T]) bool {
	want := keyOf(keyFn, item)
	for _, v := range s.ToSlice() {
		if keyOf(keyFn, v) == want {
			return true
		}
	}
	return false
}
