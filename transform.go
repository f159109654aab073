package kaguya

import (
	"iter"
)

type (

	// MapFunc is a pure mapping function used by Map that transforms a value
	// of type In into a value of type Out.
	MapFunc[In, Out any] func(in In) Out

	// Predicate represents a filtering function that returns true when the
	// provided value should be included in the output stream.
	Predicate[T any] func(item T) bool
)

// Map transforms each input value using fn and returns a new sequence
// producing the mapped values, in input order.
//
// Map is lazy: fn is only called when the returned sequence is iterated,
// so it is safe to use on infinite sequences.
func Map[In, Out any](seq iter.Seq[In], fn MapFunc[In, Out]) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		for in := range seq {
			if !yield(fn(in)) {
				return
			}
		}
	}
}

// FlatMap transforms each input value using fn and returns a sequence
// producing the flattened output values.
//
// FlatMap is equivalent to calling Flatten(Map(seq, fn)).
func FlatMap[In, Out any](seq iter.Seq[In], fn MapFunc[In, []Out]) iter.Seq[Out] {
	return Flatten(Map(seq, fn))
}

// Filter returns a sequence that yields only the values for which predicate
// returns true.
func Filter[T any](seq iter.Seq[T], predicate Predicate[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for in := range seq {
			if predicate(in) {
				if !yield(in) {
					return
				}
			}
		}
	}
}

// FilterNot returns a sequence that yields only the values for which
// predicate returns false.
//
// FilterNot is equivalent to calling Filter(seq, Not(predicate)).
func FilterNot[T any](seq iter.Seq[T], predicate Predicate[T]) iter.Seq[T] {
	return Filter(seq, Not(predicate))
}

// Skip returns a sequence that omits the first n values of seq. If seq holds
// fewer than n values the returned sequence is empty.
//
// Skip panics if n is negative.
func Skip[T any](n int, seq iter.Seq[T]) iter.Seq[T] {
	if n < 0 {
		panic("kaguya.Skip: n must be non-negative")
	}

	return func(yield func(T) bool) {
		skipped := 0
		for in := range seq {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(in) {
				return
			}
		}
	}
}

// Take returns a sequence of at most the first n values of seq.
//
// Take stops pulling from seq as soon as n values have been yielded, which
// makes it the usual way to bound an infinite sequence.
//
// Take panics if n is negative.
func Take[T any](n int, seq iter.Seq[T]) iter.Seq[T] {
	if n < 0 {
		panic("kaguya.Take: n must be non-negative")
	}

	return func(yield func(T) bool) {
		if n == 0 {
			return
		}
		taken := 0
		for in := range seq {
			if !yield(in) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}
}

// Flatten converts a sequence of slices into a sequence of their elements,
// emitting the items of each slice in order.
func Flatten[T any](seq iter.Seq[[]T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for slice := range seq {
			for _, item := range slice {
				if !yield(item) {
					return
				}
			}
		}
	}
}

// Chunk groups incoming values into slices of the given size and returns a
// sequence producing those slices.
//
// The final chunk may be smaller than chunkSize. Every chunk has its own
// backing array, so callers may retain chunks freely.
//
// Chunk panics if chunkSize is not positive.
func Chunk[T any](seq iter.Seq[T], chunkSize int) iter.Seq[[]T] {
	if chunkSize <= 0 {
		panic("kaguya.Chunk: chunkSize must be positive")
	}

	return func(yield func([]T) bool) {
		accum := make([]T, 0, chunkSize)
		for i := range seq {
			if len(accum) >= chunkSize {
				if !yield(accum) {
					return
				}
				accum = make([]T, 0, chunkSize)
			}

			accum = append(accum, i)
		}

		if len(accum) > 0 {
			yield(accum)
		}
	}
}

// GroupBy groups consecutive input values according to a key function and
// returns a sequence producing slices of those grouped values.
//
// GroupBy does not reorder values. Values are grouped only when they appear
// consecutively with the same key; when the key returned by keyFunc changes,
// the current group is emitted and a new group is started.
//
// For example, given input values:
//
//	A, A, B, B, A
//
// GroupBy will emit:
//
//	[A, A], [B, B], [A]
func GroupBy[T any, K comparable](seq iter.Seq[T], keyFunc func(T) K) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		accum := make([]T, 0)
		var currentGroupKey K
		for i := range seq {
			k := keyFunc(i)
			if k != currentGroupKey && len(accum) > 0 {
				if !yield(accum) {
					return
				}
				accum = make([]T, 0)
			}
			currentGroupKey = k
			accum = append(accum, i)
		}

		// yield the last group
		if len(accum) > 0 {
			yield(accum)
		}
	}
}
