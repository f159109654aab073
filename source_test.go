package kaguya_test

import (
	"math"
	"slices"
	"testing"

	"github.com/KasperOmsK/kaguya"

	"github.com/stretchr/testify/require"
)

func TestRange(t *testing.T) {
	require.Equal(t, []int{0, 1, 2, 3}, slices.Collect(kaguya.Range(0, 4)))
	require.Empty(t, slices.Collect(kaguya.Range(4, 4)))
	require.Empty(t, slices.Collect(kaguya.Range(5, 1)))
}

func TestRangeInclusive(t *testing.T) {
	require.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(kaguya.RangeInclusive(1, 5)))
	require.Equal(t, []int{4}, slices.Collect(kaguya.RangeInclusive(4, 4)))
	require.Empty(t, slices.Collect(kaguya.RangeInclusive(5, 1)))
}

func TestRangeInclusive_TypeMaximum(t *testing.T) {
	got := slices.Collect(kaguya.RangeInclusive[uint8](math.MaxUint8-2, math.MaxUint8))

	require.Equal(t, []uint8{253, 254, 255}, got)
}

func TestIterate(t *testing.T) {
	powers := kaguya.Iterate(1, func(v int) int { return v * 2 })

	require.Equal(t, []int{1, 2, 4, 8, 16}, slices.Collect(kaguya.Take(5, powers)))
}

func TestRepeat(t *testing.T) {
	require.Equal(t, []string{"k", "k", "k"}, slices.Collect(kaguya.Take(3, kaguya.Repeat("k"))))
}
