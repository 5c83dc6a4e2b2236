// Package wrappers provides fluent, chainable wrappers around Go's built-in
// containers and strings.
//
// # Overview
//
// Each wrapper extends one primitive and keeps its behaviour:
//
//	*Iterable[T]   lazy iter.Seq[T]          Concat, Slice, Firsts, Lasts, Tee...
//	*List[T]       mutable []T               Append(a, b), Extend(x, y), Pop...
//	*Tuple[T]      immutable []T             every operation returns a new Tuple
//	*Dict[K, V]    map[K]V                   Plus (additive merge), Subset, Swap...
//	String         string                    Split on regexes, Replace, Join, ToBool...
//
// The short aliases live in package ww:
//
//	ww.L(1, 2).Append(3, 4).Join(",") // → "1,2,3,4"
//
// # Transparency
//
// Operations that would return a primitive of a wrapped kind return the
// wrapper instead, so chains compose without re-wrapping:
//
//	ww.S("a,b;c").Split(",", ";").Map(String.Upper).Join("-") // → "A-B-C"
//
// The escape hatches All, ToSlice, ToMap, Seq and Unwrap return the raw
// primitive.
//
// # Mutability
//
// List mutators and Dict.Add, Dict.Delete and Dict.Merge change the
// receiver and return it. Tuple, String and Dict.Plus never mutate.
//
// # Errors
//
// Methods taking arguments that can be malformed return an error. Lazy
// Iterable methods cannot, so they record the first error on the returned
// Iterable, which then yields nothing:
//
//	g := ww.G(seq).Slice(0, 10, 0)
//	for v := range g.All() { ... } // never runs
//	if err := g.Err(); err != nil { ... } // itertools: step must be greater than 0
//
// Compare errors with errors.Is against the sentinels in errors.go.
//
// # Debugging
//
// Every wrapper has Pretty, Dump and Log. Log emits a zap debug record and
// returns the receiver so it can sit in the middle of a chain.
package wrappers
