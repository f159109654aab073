package curry

import (
	"iter"

	"github.com/KasperOmsK/kaguya"
)

// Each fold comes in three shapes, differing in how many arguments are fixed
// up front:
//
//	Foldl[T](init)(fn, seq)
//	FoldlWith(init, fn)(seq)
//	FoldlStep[T](init)(fn)(seq)
//
// The item type T cannot be inferred from init alone, so Foldl and FoldlStep
// take it as their first type argument: curry.Foldl[int](5).

// Foldl fixes the seed of kaguya.Foldl.
func Foldl[T, A any](init A) func(fn kaguya.FoldFunc[A, T], seq iter.Seq[T]) A {
	return func(fn kaguya.FoldFunc[A, T], seq iter.Seq[T]) A {
		return kaguya.Foldl(init, fn, seq)
	}
}

// FoldlWith fixes the seed and the combining function of kaguya.Foldl.
func FoldlWith[A, T any](init A, fn kaguya.FoldFunc[A, T]) func(seq iter.Seq[T]) A {
	return func(seq iter.Seq[T]) A {
		return kaguya.Foldl(init, fn, seq)
	}
}

// FoldlStep fixes the seed of kaguya.Foldl and returns a function awaiting
// the combining function, which in turn awaits the sequence.
func FoldlStep[T, A any](init A) func(fn kaguya.FoldFunc[A, T]) func(seq iter.Seq[T]) A {
	return func(fn kaguya.FoldFunc[A, T]) func(seq iter.Seq[T]) A {
		return FoldlWith(init, fn)
	}
}

// Foldr fixes the seed of kaguya.Foldr.
func Foldr[T, A any](init A) func(fn kaguya.FoldFunc[A, T], seq iter.Seq[T]) A {
	return func(fn kaguya.FoldFunc[A, T], seq iter.Seq[T]) A {
		return kaguya.Foldr(init, fn, seq)
	}
}

// FoldrWith fixes the seed and the combining function of kaguya.Foldr.
func FoldrWith[A, T any](init A, fn kaguya.FoldFunc[A, T]) func(seq iter.Seq[T]) A {
	return func(seq iter.Seq[T]) A {
		return kaguya.Foldr(init, fn, seq)
	}
}

// FoldrStep is FoldlStep for kaguya.Foldr.
func FoldrStep[T, A any](init A) func(fn kaguya.FoldFunc[A, T]) func(seq iter.Seq[T]) A {
	return func(fn kaguya.FoldFunc[A, T]) func(seq iter.Seq[T]) A {
		return FoldrWith(init, fn)
	}
}
