/*
Package kaguya provides functional-style combinators for iter.Seq and for
plain functions: composition, lazy transformations, folds, sequence accessors
and list comprehensions.

Composition chains unary functions. Compose applies the rightmost function
first, the way mathematics writes it; Pipe applies the leftmost function first,
the way data flows:

	inc := func(x int) int { return x + 1 }
	double := func(x int) int { return x * 2 }

	kaguya.Compose(inc, double)(3) // inc(double(3)) == 7
	kaguya.Pipe(inc, double)(3)    // double(inc(3)) == 8

Map, Filter, FilterNot, Skip, Take, FlatMap, Flatten, Chunk and GroupBy return
a new iter.Seq wrapping their input. Nothing is computed until the result is
iterated, and iteration stops pulling from the input as soon as the consumer
stops, so they all work on infinite sequences:

	naturals := kaguya.Iterate(0, inc)
	evens := kaguya.Filter(naturals, func(x int) bool { return x%2 == 0 })
	for v := range kaguya.Take(3, evens) {
		fmt.Println(v) // 0, 2, 4
	}

Foldl, Foldr, Sum, Tail, Init, Last and the Ls comprehension builders are
eager and need a finite input. Head, Tail, Init and Last report an empty input
as an absent mo.Option rather than an error.

Every combinator that takes a function or count before the sequence also has
a curried form in package curry, returning a function that awaits only the
sequence.
*/
package kaguya
