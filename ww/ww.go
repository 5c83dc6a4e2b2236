package ww

import (
	"iter"

	"github.com/hasbyte1/go-ww/wrappers"
)

// Version of the module.
const Version = "0.1.0"

// G wraps the items of the slices, concatenated, in a lazy Iterable.
func G[T any](sources ...[]T) *wrappers.Iterable[T] {
	return wrappers.IterableFrom(sources...)
}

// GSeq wraps the sequences, concatenated, in a lazy Iterable.
func GSeq[T any](seqs ...iter.Seq[T]) *wrappers.Iterable[T] {
	return wrappers.NewIterable(seqs...)
}

// S wraps text in a String with the default options.
func S(text string) wrappers.String { return wrappers.NewString(text) }

// Sd wraps text after removing its common indentation.
func Sd(text string) wrappers.String { return wrappers.Dedented(text) }

// F renders a brace template with the named vars.
//
//	ww.F("{name} has {n:,d} points", map[string]any{"name": "ann", "n": 1500})
func F(template string, vars map[string]any) (wrappers.String, error) {
	return wrappers.Fmt(template, vars)
}

// L creates a mutable List.
func L[T any](items ...T) *wrappers.List[T] { return wrappers.NewList(items...) }

// T creates an immutable Tuple.
func T[E any](items ...E) *wrappers.Tuple[E] { return wrappers.NewTuple(items...) }

// D wraps a copy of m in a Dict.
func D[K comparable, V any](m map[K]V) *wrappers.Dict[K, V] { return wrappers.NewDict(m) }
