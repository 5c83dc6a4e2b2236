package itertools

import (
	"cmp"
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Conditional boundaries
// ─────────────────────────────────────────────────────────────────────────────

// StartsWhen drops items until fn returns true once, then yields that item
// and every item after it.
//
//	StartsWhen(slices.Values([]int{1, 7, 2, 9}), func(n int) bool { return n > 5 })
//	// → 7, 2, 9
func StartsWhen[T any](seq iter.Seq[T], fn func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		started := false
		for item := range seq {
			if !started {
				if !fn(item) {
					continue
				}
				started = true
			}
			if !yield(item) {
				return
			}
		}
	}
}

// StopsWhen yields items until fn returns true. The matching item is not
// yielded.
func StopsWhen[T any](seq iter.Seq[T], fn func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range seq {
			if fn(item) || !yield(item) {
				return
			}
		}
	}
}

// Between yields items from the first one matching start up to (excluding)
// the first following one matching stop.
func Between[T any](seq iter.Seq[T], start, stop func(T) bool) iter.Seq[T] {
	return StopsWhen(StartsWhen(seq, start), stop)
}

// ─────────────────────────────────────────────────────────────────────────────
// Indexing & slicing
// ─────────────────────────────────────────────────────────────────────────────

// Slice yields the items at positions start, start+step, ... strictly below
// stop. A negative stop means "to the end". The source is not read past
// stop.
//
// Returns [ErrInvalidIndex] for a negative start and [ErrInvalidStep] for a
// step lower than 1.
func Slice[T any](seq iter.Seq[T], start, stop, step int) (iter.Seq[T], error) {
	if start < 0 {
		return nil, errors.Wrapf(ErrInvalidIndex, "start is %d", start)
	}
	if step < 1 {
		return nil, errors.Wrapf(ErrInvalidStep, "step is %d", step)
	}
	return func(yield func(T) bool) {
		if stop >= 0 && stop <= start {
			return
		}
		i, next := 0, start
		for item := range seq {
			if i == next {
				if !yield(item) {
					return
				}
				next += step
			}
			i++
			if stop >= 0 && i >= stop {
				return
			}
		}
	}, nil
}

// AtIndex returns the item at index, consuming the sequence up to it.
//
// A negative index counts from the end. The whole sequence is read and
// |index| items are held in memory to find it.
func AtIndex[T any](seq iter.Seq[T], index int) (T, error) {
	var zero T
	if index < 0 {
		n := -index
		ring := make([]T, 0, n)
		pos := 0
		for item := range seq {
			if len(ring) < n {
				ring = append(ring, item)
				continue
			}
			ring[pos] = item
			pos = (pos + 1) % n
		}
		if len(ring) < n {
			return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d", index)
		}
		return ring[pos], nil
	}
	i := 0
	for item := range seq {
		if i == index {
			return item, nil
		}
		i++
	}
	return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d", index)
}

// FirstTrue returns the first item for which fn returns true, or
// [ErrNoMatch]. The sequence is consumed up to the match.
func FirstTrue[T any](seq iter.Seq[T], fn func(T) bool) (T, error) {
	for item := range seq {
		if fn(item) {
			return item, nil
		}
	}
	var zero T
	return zero, ErrNoMatch
}

// Firsts yields exactly n items: the first n of seq, padded with def when
// seq is shorter. Returns [ErrInvalidSize] when n is negative.
func Firsts[T any](seq iter.Seq[T], n int, def T) (iter.Seq[T], error) {
	if n < 0 {
		return nil, errors.WithHint(
			errors.Wrapf(ErrInvalidSize, "items is %d but should be greater than 0", n),
			"to get the last items, use Lasts()",
		)
	}
	return func(yield func(T) bool) {
		count := 0
		if n > 0 {
			for item := range seq {
				if !yield(item) {
					return
				}
				count++
				if count == n {
					return
				}
			}
		}
		for ; count < n; count++ {
			if !yield(def) {
				return
			}
		}
	}, nil
}

// Lasts yields exactly n items: the last n of seq, preceded by def padding
// when seq is shorter. The source is read entirely on the first pull.
func Lasts[T any](seq iter.Seq[T], n int, def T) (iter.Seq[T], error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "items is %d but should be greater than 0", n)
	}
	return func(yield func(T) bool) {
		if n == 0 {
			return
		}
		ring := make([]T, 0, n)
		pos := 0
		for item := range seq {
			if len(ring) < n {
				ring = append(ring, item)
				continue
			}
			ring[pos] = item
			pos = (pos + 1) % n
		}
		for i := len(ring); i < n; i++ {
			if !yield(def) {
				return
			}
		}
		for i := range ring {
			if !yield(ring[(pos+i)%len(ring)]) {
				return
			}
		}
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// SkipDuplicates yields every item whose key has not been seen before,
// preserving order.
//
// key computes the fingerprint of an item. Pass nil to use the item itself.
// Keys that are not comparable (slices, maps, structs holding them) are
// replaced by their [Fingerprint], so any key function is accepted.
func SkipDuplicates[T any](seq iter.Seq[T], key func(T) any) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[any]struct{})
		for item := range seq {
			var k any = item
			if key != nil {
				k = key(item)
			}
			k = HashKey(k)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(item) {
				return
			}
		}
	}
}

// Chunks yields consecutive groups of size items. The last group may be
// shorter. Returns [ErrInvalidSize] when size is lower than 1.
func Chunks[T any](seq iter.Seq[T], size int) (iter.Seq[[]T], error) {
	if size < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "chunk size is %d", size)
	}
	return func(yield func([]T) bool) {
		chunk := make([]T, 0, size)
		for item := range seq {
			chunk = append(chunk, item)
			if len(chunk) == size {
				if !yield(chunk) {
					return
				}
				chunk = make([]T, 0, size)
			}
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}, nil
}

// Window yields overlapping groups of size items, rolling one item in and
// one item out at each step:
//
//	Window(slices.Values([]int{1, 2, 3}), 2) // → [1 2] [2 3]
//
// When seq holds fewer than size items, the single partial window is
// yielded, so an empty seq yields one empty window. Each yielded slice is
// a fresh copy.
func Window[T any](seq iter.Seq[T], size int) (iter.Seq[[]T], error) {
	if size < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "window size is %d", size)
	}
	return func(yield func([]T) bool) {
		buf := make([]T, 0, size)
		for item := range seq {
			if len(buf) < size {
				buf = append(buf, item)
				if len(buf) == size && !yield(slices.Clone(buf)) {
					return
				}
				continue
			}
			copy(buf, buf[1:])
			buf[size-1] = item
			if !yield(slices.Clone(buf)) {
				return
			}
		}
		if len(buf) < size {
			yield(slices.Clone(buf))
		}
	}, nil
}

// GroupBy sorts the items by key, then yields each key with the run of
// items sharing it. The sort is stable; reverse sorts keys in descending
// order. The source is read entirely on the first pull.
//
//	GroupBy(slices.Values([]int{1, 2, 3, 4}), func(n int) int { return n % 2 }, false)
//	// → (0, [2 4]) (1, [1 3])
func GroupBy[T any, K cmp.Ordered](seq iter.Seq[T], key func(T) K, reverse bool) iter.Seq2[K, []T] {
	return func(yield func(K, []T) bool) {
		items := slices.Collect(seq)
		slices.SortStableFunc(items, func(a, b T) int {
			c := cmp.Compare(key(a), key(b))
			if reverse {
				return -c
			}
			return c
		})
		for i := 0; i < len(items); {
			k := key(items[i])
			j := i + 1
			for j < len(items) && key(items[j]) == k {
				j++
			}
			if !yield(k, items[i:j:j]) {
				return
			}
			i = j
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Combining
// ─────────────────────────────────────────────────────────────────────────────

// Concat yields the items of every sequence in order.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for item := range seq {
				if !yield(item) {
					return
				}
			}
		}
	}
}

// Cycle yields the items of seq forever. The first pass is recorded and
// replayed, so seq is only read once. An empty seq yields nothing.
//
// Never range over a Cycle without a way out: slice it or break.
func Cycle[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var saved []T
		for item := range seq {
			saved = append(saved, item)
			if !yield(item) {
				return
			}
		}
		if len(saved) == 0 {
			return
		}
		for {
			for _, item := range saved {
				if !yield(item) {
					return
				}
			}
		}
	}
}

// Repeat yields the items of seq n times in a row. seq is only read once.
func Repeat[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		var saved []T
		for item := range seq {
			saved = append(saved, item)
			if !yield(item) {
				return
			}
		}
		for i := 1; i < n; i++ {
			for _, item := range saved {
				if !yield(item) {
					return
				}
			}
		}
	}
}

// Enumerate pairs every item with its position, counting from start.
func Enumerate[T any](seq iter.Seq[T], start int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := start
		for item := range seq {
			if !yield(i, item) {
				return
			}
			i++
		}
	}
}

// Zip pairs the items of a and b. It stops at the shorter sequence.
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		next, stop := iter.Pull(b)
		defer stop()
		for x := range a {
			y, ok := next()
			if !ok || !yield(x, y) {
				return
			}
		}
	}
}

// ZipN yields one slice per position holding the item of every sequence at
// that position. It stops at the shortest sequence.
func ZipN[T any](seqs ...iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(seqs) == 0 {
			return
		}
		nexts := make([]func() (T, bool), len(seqs))
		for i, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()
			nexts[i] = next
		}
		for {
			row := make([]T, len(nexts))
			for i, next := range nexts {
				v, ok := next()
				if !ok {
					return
				}
				row[i] = v
			}
			if !yield(row) {
				return
			}
		}
	}
}
