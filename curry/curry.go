// Package curry provides partial-application forms of the kaguya
// combinators.
//
// Each constructor fixes the leading, non-sequence argument of a combinator
// and returns a function that only awaits the sequence:
//
//	double := curry.Map(func(v int) int { return v * 2 })
//	firstTwo := curry.Take[int](2)
//	out := slices.Collect(firstTwo(double(slices.Values(xs))))
//
// Stages of the same element type can be chained with Chain.
package curry

import (
	"iter"

	"github.com/KasperOmsK/kaguya"
)

// Stage is a sequence transformation awaiting its input sequence.
type Stage[In, Out any] func(seq iter.Seq[In]) iter.Seq[Out]

// Map returns a Stage applying kaguya.Map with fn.
func Map[In, Out any](fn kaguya.MapFunc[In, Out]) Stage[In, Out] {
	return func(seq iter.Seq[In]) iter.Seq[Out] {
		return kaguya.Map(seq, fn)
	}
}

// FlatMap returns a Stage applying kaguya.FlatMap with fn.
func FlatMap[In, Out any](fn kaguya.MapFunc[In, []Out]) Stage[In, Out] {
	return func(seq iter.Seq[In]) iter.Seq[Out] {
		return kaguya.FlatMap(seq, fn)
	}
}

// Filter returns a Stage applying kaguya.Filter with predicate.
func Filter[T any](predicate kaguya.Predicate[T]) Stage[T, T] {
	return func(seq iter.Seq[T]) iter.Seq[T] {
		return kaguya.Filter(seq, predicate)
	}
}

// FilterNot returns a Stage applying kaguya.FilterNot with predicate.
func FilterNot[T any](predicate kaguya.Predicate[T]) Stage[T, T] {
	return func(seq iter.Seq[T]) iter.Seq[T] {
		return kaguya.FilterNot(seq, predicate)
	}
}

// Skip returns a Stage dropping the first n values.
//
// Skip panics immediately if n is negative.
func Skip[T any](n int) Stage[T, T] {
	if n < 0 {
		panic("curry.Skip: n must be non-negative")
	}
	return func(seq iter.Seq[T]) iter.Seq[T] {
		return kaguya.Skip(n, seq)
	}
}

// Take returns a Stage keeping at most the first n values.
//
// Take panics immediately if n is negative.
func Take[T any](n int) Stage[T, T] {
	if n < 0 {
		panic("curry.Take: n must be non-negative")
	}
	return func(seq iter.Seq[T]) iter.Seq[T] {
		return kaguya.Take(n, seq)
	}
}

// Chunk returns a Stage applying kaguya.Chunk with chunkSize.
//
// Chunk panics immediately if chunkSize is not positive.
func Chunk[T any](chunkSize int) Stage[T, []T] {
	if chunkSize <= 0 {
		panic("curry.Chunk: chunkSize must be positive")
	}
	return func(seq iter.Seq[T]) iter.Seq[[]T] {
		return kaguya.Chunk(seq, chunkSize)
	}
}

// GroupBy returns a Stage applying kaguya.GroupBy with keyFunc.
func GroupBy[T any, K comparable](keyFunc func(T) K) Stage[T, []T] {
	return func(seq iter.Seq[T]) iter.Seq[[]T] {
		return kaguya.GroupBy(seq, keyFunc)
	}
}

// Chain runs stages left to right, feeding each stage the output of the
// previous one. With no stages the returned Stage yields its input unchanged.
func Chain[T any](stages ...Stage[T, T]) Stage[T, T] {
	return func(seq iter.Seq[T]) iter.Seq[T] {
		for _, stage := range stages {
			seq = stage(seq)
		}
		return seq
	}
}
