package kaguya

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Range returns the integers from start up to, but excluding, end.
func Range[N constraints.Integer](start, end N) iter.Seq[N] {
	return func(yield func(N) bool) {
		for n := start; n < end; n++ {
			if !yield(n) {
				return
			}
		}
	}
}

// RangeInclusive returns the integers from start up to and including end.
// It is empty when start > end.
func RangeInclusive[N constraints.Integer](start, end N) iter.Seq[N] {
	return func(yield func(N) bool) {
		if start > end {
			return
		}
		// stop before incrementing so end may be the type's maximum
		for n := start; ; n++ {
			if !yield(n) || n == end {
				return
			}
		}
	}
}

// Iterate returns the infinite sequence seed, fn(seed), fn(fn(seed)), ...
//
// Bound it with Take before handing it to an eager operation.
func Iterate[T any](seed T, fn func(T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := seed; ; v = fn(v) {
			if !yield(v) {
				return
			}
		}
	}
}

// Repeat returns an infinite sequence that yields v forever.
func Repeat[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(v) {
		}
	}
}
