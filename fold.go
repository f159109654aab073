package kaguya

import (
	"iter"

	"github.com/KasperOmsK/kaguya/internal/iterx"
)

// FoldFunc combines an accumulator of type A with an item of type T and
// returns the new accumulator. Both Foldl and Foldr pass the accumulator
// first.
type FoldFunc[A, T any] func(acc A, item T) A

// Foldl reduces seq from left to right:
//
//	fn(...fn(fn(init, x1), x2)..., xN)
//
// An empty seq returns init unchanged. seq must be finite.
func Foldl[A, T any](init A, fn FoldFunc[A, T], seq iter.Seq[T]) A {
	acc := init
	for item := range seq {
		acc = fn(acc, item)
	}
	return acc
}

// Foldr reduces seq from right to left:
//
//	fn(...fn(fn(init, xN), xN-1)..., x1)
//
// The accumulator is still the first argument of fn; only the visiting order
// differs from Foldl, so for non-commutative fn the two disagree:
//
//	concat := func(acc, s string) string { return acc + "<|>" + s }
//	kaguya.Foldr("", concat, names) // "<|>Kaguya<|>Houraisan" for [Houraisan Kaguya]
//
// An empty seq returns init unchanged. seq must be finite; it is buffered in
// full before fn is first called.
func Foldr[A, T any](init A, fn FoldFunc[A, T], seq iter.Seq[T]) A {
	return Foldl(init, fn, iterx.Backward(seq))
}
