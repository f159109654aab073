package kaguya

import (
	"iter"
	"slices"

	"github.com/samber/lo"
)

// The Ls family builds lists the way a list comprehension does. Unlike the
// other combinators the result is an eagerly materialized slice, so source
// must be finite.

// Ls returns the values of source as a slice.
func Ls[T any](source iter.Seq[T]) []T {
	out := slices.Collect(source)
	if out == nil {
		return []T{}
	}
	return out
}

// LsWhere returns the values of source for which predicate holds.
func LsWhere[T any](source iter.Seq[T], predicate Predicate[T]) []T {
	return LsMapWhere(Identity[T], source, predicate)
}

// LsMap returns fn applied to every value of source.
func LsMap[In, Out any](fn MapFunc[In, Out], source iter.Seq[In]) []Out {
	return LsMapWhere(fn, source, func(In) bool { return true })
}

// LsMapWhere returns fn(x) for every x of source for which predicate(x)
// holds. predicate sees the original value, before fn is applied:
//
//	kaguya.LsMapWhere(inc, kaguya.RangeInclusive(1, 5), isEven) // [3 5]
func LsMapWhere[In, Out any](fn MapFunc[In, Out], source iter.Seq[In], predicate Predicate[In]) []Out {
	return lo.FilterMap(Ls(source), func(item In, _ int) (Out, bool) {
		if !predicate(item) {
			var zero Out
			return zero, false
		}
		return fn(item), true
	})
}
