package kaguya

// Compose returns the mathematical composition of f and g:
// Compose(f, g)(x) == f(g(x)). The rightmost function is applied first.
//
// The intermediate type B may differ from both A and C, so Compose can be
// used to project values from one type to another:
//
//	words := func(s string) []string { return strings.Split(s, " ") }
//	count := kaguya.Compose(func(w []string) int { return len(w) }, words)
//	count("Houraisan Kaguya") // 2
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Compose3 is Compose for three functions: Compose3(f, g, h)(x) == f(g(h(x))).
func Compose3[A, B, C, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return Compose(f, Compose(g, h))
}

// Compose4 is Compose for four functions.
func Compose4[A, B, C, D, E any](f func(D) E, g func(C) D, h func(B) C, i func(A) B) func(A) E {
	return Compose(f, Compose3(g, h, i))
}

// Compose5 is Compose for five functions.
func Compose5[A, B, C, D, E, F any](f func(E) F, g func(D) E, h func(C) D, i func(B) C, j func(A) B) func(A) F {
	return Compose(f, Compose4(g, h, i, j))
}

// Pipe returns the left-to-right composition of f and g:
// Pipe(f, g)(x) == g(f(x)). The leftmost function is applied first, which
// reads in the same order the data flows.
func Pipe[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Pipe3 is Pipe for three functions: Pipe3(f, g, h)(x) == h(g(f(x))).
func Pipe3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return Pipe(Pipe(f, g), h)
}

// Pipe4 is Pipe for four functions.
func Pipe4[A, B, C, D, E any](f func(A) B, g func(B) C, h func(C) D, i func(D) E) func(A) E {
	return Pipe(Pipe3(f, g, h), i)
}

// Pipe5 is Pipe for five functions.
func Pipe5[A, B, C, D, E, F any](f func(A) B, g func(B) C, h func(C) D, i func(D) E, j func(E) F) func(A) F {
	return Pipe(Pipe4(f, g, h, i), j)
}

// ComposeAll composes any number of functions of the same type, rightmost
// first. At least two functions are required.
func ComposeAll[T any](f, g func(T) T, rest ...func(T) T) func(T) T {
	fns := append([]func(T) T{f, g}, rest...)
	return func(v T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			v = fns[i](v)
		}
		return v
	}
}

// PipeAll chains any number of functions of the same type, leftmost first.
// At least two functions are required.
func PipeAll[T any](f, g func(T) T, rest ...func(T) T) func(T) T {
	fns := append([]func(T) T{f, g}, rest...)
	return func(v T) T {
		for _, fn := range fns {
			v = fn(v)
		}
		return v
	}
}

// Identity returns its argument unchanged.
func Identity[T any](v T) T {
	return v
}

// Not returns a predicate that holds exactly when predicate does not.
func Not[T any](predicate Predicate[T]) Predicate[T] {
	return func(item T) bool {
		return !predicate(item)
	}
}
