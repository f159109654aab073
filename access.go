package kaguya

import (
	"iter"

	"github.com/samber/mo"
)

// Head returns the first value of seq, or None if seq is empty.
//
// Head pulls a single value and stops, so seq may be infinite.
func Head[T any](seq iter.Seq[T]) mo.Option[T] {
	for item := range seq {
		return mo.Some(item)
	}
	return mo.None[T]()
}

// Tail returns every value of seq except the first, or None if seq is empty.
// A single-valued seq yields Some of an empty slice.
//
// seq must be finite.
func Tail[T any](seq iter.Seq[T]) mo.Option[[]T] {
	first := true
	rest := []T{}
	for item := range seq {
		if first {
			first = false
			continue
		}
		rest = append(rest, item)
	}
	if first {
		return mo.None[[]T]()
	}
	return mo.Some(rest)
}

// Last returns the final value of seq, or None if seq is empty.
//
// seq must be finite.
func Last[T any](seq iter.Seq[T]) mo.Option[T] {
	last := mo.None[T]()
	for item := range seq {
		last = mo.Some(item)
	}
	return last
}

// Init returns every value of seq except the last, or None if seq is empty.
//
// Init holds one value back until it sees the next, so seq must be finite.
func Init[T any](seq iter.Seq[T]) mo.Option[[]T] {
	var (
		pending T
		seen    bool
	)
	front := []T{}
	for item := range seq {
		if seen {
			front = append(front, pending)
		}
		pending, seen = item, true
	}
	if !seen {
		return mo.None[[]T]()
	}
	return mo.Some(front)
}
