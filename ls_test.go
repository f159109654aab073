package kaguya_test

import (
	"testing"

	"github.com/KasperOmsK/kaguya"
	"github.com/google/go-cmp/cmp"
)

func TestLs(t *testing.T) {
	isEven := func(x int) bool { return x&1 == 0 }

	tests := []struct {
		name string
		got  []int
		want []int
	}{
		{
			name: "transform, source and predicate",
			got:  kaguya.LsMapWhere(func(x int) int { return x + 1 }, kaguya.RangeInclusive(1, 5), isEven),
			want: []int{3, 5},
		},
		{
			name: "source and predicate",
			got:  kaguya.LsWhere(kaguya.RangeInclusive(0, 4), isEven),
			want: []int{0, 2, 4},
		},
		{
			name: "transform and source",
			got:  kaguya.LsMap(func(x int) int { return x * x }, kaguya.RangeInclusive(0, 4)),
			want: []int{0, 1, 4, 9, 16},
		},
		{
			name: "source only",
			got:  kaguya.Ls(kaguya.RangeInclusive(0, 4)),
			want: []int{0, 1, 2, 3, 4},
		},
		{
			name: "empty source",
			got:  kaguya.Ls(kaguya.Range(0, 0)),
			want: []int{},
		},
		{
			name: "nothing matches",
			got:  kaguya.LsWhere(seqOf(1, 3, 5), isEven),
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestLsMapWhere_PredicateSeesOriginal(t *testing.T) {
	var seen []int
	got := kaguya.LsMapWhere(
		func(x int) string { return string(rune('a' + x)) },
		seqOf(0, 1, 2, 3),
		func(x int) bool {
			seen = append(seen, x)
			return x >= 2
		},
	)

	if diff := cmp.Diff([]string{"c", "d"}, got); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, seen); diff != "" {
		t.Fatal(diff)
	}
}
