package wrappers

import (
	"cmp"
	"iter"

	"github.com/hasbyte1/go-ww/itertools"
)

// This file holds the Iterable operations that change the item type. Go
// methods cannot introduce type parameters, so they are functions:
//
//	lengths := wrappers.Map(words, func(w string) int { return len(w) })

// Number is satisfied by the built-in integer and floating-point types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Map applies fn to every item of g.
func Map[T, U any](g *Iterable[T], fn func(T) U) *Iterable[U] {
	src := g.All()
	return deriveAs(g, func(yield func(U) bool) {
		for item := range src {
			if !yield(fn(item)) {
				return
			}
		}
	})
}

// FlatMap applies fn to every item of g and yields the items of every
// resulting sequence.
func FlatMap[T, U any](g *Iterable[T], fn func(T) iter.Seq[U]) *Iterable[U] {
	src := g.All()
	return deriveAs(g, func(yield func(U) bool) {
		for item := range src {
			for v := range fn(item) {
				if !yield(v) {
					return
				}
			}
		}
	})
}

// Reduce folds the items of g with fn, starting from initial.
func Reduce[T, U any](g *Iterable[T], fn func(acc U, item T) U, initial U) U {
	acc := initial
	for item := range g.All() {
		acc = fn(acc, item)
	}
	return acc
}

// Zip pairs the items of g with those of other. It stops at the shorter.
func Zip[A, B any](g *Iterable[A], other iter.Seq[B]) *Iterable[Pair[A, B]] {
	src := g.All()
	return deriveAs(g, func(yield func(Pair[A, B]) bool) {
		for a, b := range itertools.Zip(src, other) {
			if !yield(Pair[A, B]{First: a, Second: b}) {
				return
			}
		}
	})
}

// ZipN yields one slice per position holding the item of g and of every
// other sequence. It stops at the shortest.
func ZipN[T any](g *Iterable[T], others ...iter.Seq[T]) *Iterable[[]T] {
	return deriveAs(g, itertools.ZipN(append([]iter.Seq[T]{g.All()}, others...)...))
}

// Chunks yields consecutive slices of size items; the last may be shorter.
func Chunks[T any](g *Iterable[T], size int) *Iterable[[]T] {
	seq, err := itertools.Chunks(g.All(), size)
	if err != nil {
		return failed[[]T](cmp.Or(g.err, err))
	}
	return deriveAs(g, seq)
}

// Window yields sliding windows of size items.
func Window[T any](g *Iterable[T], size int) *Iterable[[]T] {
	seq, err := itertools.Window(g.All(), size)
	if err != nil {
		return failed[[]T](cmp.Or(g.err, err))
	}
	return deriveAs(g, seq)
}

// Enumerate pairs every item of g with its position, counting from start.
func Enumerate[T any](g *Iterable[T], start int) *Iterable[Pair[int, T]] {
	src := g.All()
	return deriveAs(g, func(yield func(Pair[int, T]) bool) {
		for i, item := range itertools.Enumerate(src, start) {
			if !yield(Pair[int, T]{First: i, Second: item}) {
				return
			}
		}
	})
}

// GroupBy sorts the items of g by key, then yields one Pair per key with
// the Tuple of items sharing it:
//
//	GroupBy(Range(0, 6, 1), func(n int) int { return n % 2 }, false)
//	// → (0, [0 2 4]) (1, [1 3 5])
func GroupBy[T any, K cmp.Ordered](g *Iterable[T], key func(T) K, reverse bool) *Iterable[Pair[K, *Tuple[T]]] {
	src := g.All()
	return deriveAs(g, func(yield func(Pair[K, *Tuple[T]]) bool) {
		for k, items := range itertools.GroupBy(src, key, reverse) {
			if !yield(Pair[K, *Tuple[T]]{First: k, Second: &Tuple[T]{items: items}}) {
				return
			}
		}
	})
}

// Unique yields the items of g not seen before, in order.
func Unique[T comparable](g *Iterable[T]) *Iterable[T] {
	src := g.All()
	return g.derive(func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for item := range src {
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			if !yield(item) {
				return
			}
		}
	})
}

// Difference yields the items of g that are not in other. other is read
// entirely on the first pull.
func Difference[T comparable](g *Iterable[T], other iter.Seq[T]) *Iterable[T] {
	src := g.All()
	return g.derive(func(yield func(T) bool) {
		drop := make(map[T]struct{})
		for item := range other {
			drop[item] = struct{}{}
		}
		for item := range src {
			if _, found := drop[item]; found {
				continue
			}
			if !yield(item) {
				return
			}
		}
	})
}

// ToSet reads the items of g into a set.
func ToSet[T comparable](g *Iterable[T]) map[T]struct{} {
	set := make(map[T]struct{})
	for item := range g.All() {
		set[item] = struct{}{}
	}
	return set
}

// Sum adds the items of g.
func Sum[T Number](g *Iterable[T]) T {
	var total T
	for item := range g.All() {
		total += item
	}
	return total
}
