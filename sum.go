package kaguya

import (
	"iter"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Number is the set of types Sum can add.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds every value of seq, starting from zero. It is Foldl with + and a
// zero seed. seq must be finite.
func Sum[N Number](seq iter.Seq[N]) N {
	return Foldl(0, func(acc N, item N) N { return acc + item }, seq)
}

// SumRange adds every integer from start to end, both included. It returns
// zero when start > end.
func SumRange[N constraints.Integer](start, end N) N {
	return Sum(RangeInclusive(start, end))
}

// SumOf adds an explicit list of values.
func SumOf[N Number](values ...N) N {
	return lo.Sum(values)
}
