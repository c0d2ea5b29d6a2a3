package sequence

import (
	"errors"
	"iter"
	"sort"
)

// ErrConsumed is reported by Err when a single-pass iterator is traversed again.
var ErrConsumed = errors.New("sequence: single-pass iterator already consumed")

// Iterator is a generic, chainable iterator for any type T.
// Iterators built with Once are single-pass and not safe for concurrent consumption.
type Iterator[T any] struct {
	seq  iter.Seq[T]
	pass *passState
}

type passState struct {
	started bool
	err     error
}

// From creates a new Iterator from a slice of T.
func From[T any](data []T) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			for _, v := range data {
				if !yield(v) {
					return
				}
			}
		},
	}
}

// FromSeq wraps an existing iter.Seq.
func FromSeq[T any](seq iter.Seq[T]) *Iterator[T] {
	return &Iterator[T]{seq: seq}
}

// Once wraps a generator so that it can be traversed exactly once.
// Any later traversal yields nothing and sets Err to ErrConsumed.
func Once[T any](seq iter.Seq[T]) *Iterator[T] {
	state := &passState{}
	return &Iterator[T]{
		pass: state,
		seq: func(yield func(T) bool) {
			if state.started {
				state.err = ErrConsumed
				return
			}
			state.started = true
			seq(yield)
		},
	}
}

// derive builds an iterator over seq that shares the single-pass guard of i.
func derive[T, S any](i *Iterator[T], seq iter.Seq[S]) *Iterator[S] {
	return &Iterator[S]{seq: seq, pass: i.pass}
}

// Err returns ErrConsumed if a single-pass iterator was traversed more than once.
func (i *Iterator[T]) Err() error {
	if i.pass == nil {
		return nil
	}
	return i.pass.err
}

// Consumed reports whether a single-pass iterator has already been started.
// Iterators not built with Once are never consumed.
func (i *Iterator[T]) Consumed() bool {
	return i.pass != nil && i.pass.started
}

// Seq returns the underlying sequence function for the iterator.
// This allows direct access to the iterator's sequence for range-over-func loops.
func (i *Iterator[T]) Seq() iter.Seq[T] {
	return i.seq
}

// Pull converts the iterator into a pull-style next/stop pair.
func (i *Iterator[T]) Pull() (next func() (T, bool), stop func()) {
	return iter.Pull(i.Seq())
}

// Collect exhausts the iterator and returns a slice of all elements.
func (i *Iterator[T]) Collect() []T {
	var out []T
	i.seq(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Sort returns a new Iterator with elements sorted according to the provided less function.
// Sorting is stable and eager.
func (i *Iterator[T]) Sort(less func(a, b T) bool) *Iterator[T] {
	data := i.Collect()
	sort.SliceStable(data, func(a, b int) bool {
		return less(data[a], data[b])
	})
	return From(data)
}

// Each returns an Iterator that calls action on every element as it passes through.
func (i *Iterator[T]) Each(action func(T)) *Iterator[T] {
	return derive[T, T](i, func(yield func(T) bool) {
		i.seq(func(v T) bool {
			action(v)
			return yield(v)
		})
	})
}

// Filter returns a new Iterator containing only elements that satisfy the predicate.
func (i *Iterator[T]) Filter(pred func(T) bool) *Iterator[T] {
	return derive[T, T](i, func(yield func(T) bool) {
		i.seq(func(v T) bool {
			if pred(v) {
				return yield(v)
			}
			return true
		})
	})
}

// Take returns a new Iterator with at most the first n elements.
// The source stops being pulled once n elements were produced.
func (i *Iterator[T]) Take(n int) *Iterator[T] {
	return derive[T, T](i, func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		i.seq(func(v T) bool {
			count++
			if !yield(v) {
				return false
			}
			return count < n
		})
	})
}

// Find returns the first element matching the predicate, or false if not found.
func (i *Iterator[T]) Find(pred func(T) bool) (T, bool) {
	var found T
	ok := false
	i.seq(func(v T) bool {
		if pred(v) {
			found = v
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// Any returns true if any element matches the predicate.
func (i *Iterator[T]) Any(pred func(T) bool) bool {
	_, ok := i.Find(pred)
	return ok
}

// All returns true if all elements match the predicate.
func (i *Iterator[T]) All(pred func(T) bool) bool {
	all := true
	i.seq(func(v T) bool {
		if !pred(v) {
			all = false
			return false
		}
		return true
	})
	return all
}

// First returns the first element, or false if empty.
func (i *Iterator[T]) First() (T, bool) {
	return i.Find(func(T) bool { return true })
}

// Count returns the number of elements in the iterator.
func (i *Iterator[T]) Count() int {
	count := 0
	i.seq(func(_ T) bool {
		count++
		return true
	})
	return count
}

// Map returns an iterator that yields fn(v) for every element of it.
func Map[T any, S any](it *Iterator[T], fn func(T) S) *Iterator[S] {
	return derive[T, S](it, func(yield func(S) bool) {
		it.seq(func(v T) bool {
			return yield(fn(v))
		})
	})
}

// Reduce folds the iterator into a single value starting from init.
func Reduce[T any, A any](it *Iterator[T], init A, reducer func(A, T) A) A {
	acc := init
	it.seq(func(v T) bool {
		acc = reducer(acc, v)
		return true
	})
	return acc
}

// GroupBy groups elements by a key function, returning a map from key to slice of T.
func GroupBy[T any, K comparable](it *Iterator[T], keyFn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	it.seq(func(v T) bool {
		k := keyFn(v)
		groups[k] = append(groups[k], v)
		return true
	})
	return groups
}
