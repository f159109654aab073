package iterx

import (
	"iter"
)

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

// Backward drains in and returns a sequence yielding its items from last to
// first. in must be finite.
func Backward[T any](in iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var buf []T
		for item := range in {
			buf = append(buf, item)
		}
		for i := len(buf) - 1; i >= 0; i-- {
			if !yield(buf[i]) {
				break
			}
		}
	}
}
