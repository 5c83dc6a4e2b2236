package wrappers

import (
	"cmp"
	"io"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-ww/itertools"
	"github.com/hasbyte1/go-ww/textutil"
)

// Iterable is a lazy, one-shot chain over an [iter.Seq].
//
// Most methods return a new Iterable wrapping a lazy transformation of the
// remaining items; nothing is read until the result is ranged over or a
// consuming method (Count, Join, List, At...) is called. Whether the
// underlying sequence can be re-read depends on the sequence: treat an
// Iterable as consumed once read.
//
// # Creating an Iterable
//
//	g := wrappers.NewIterable(slices.Values([]int{1, 2, 3}))
//	g := wrappers.IterableFrom([]int{1, 2}, []int{3})
//	g := wrappers.Range(0, 10, 2)
//
// # Errors
//
// Methods that cannot return an error record it instead: the returned
// Iterable yields nothing and [Iterable.Err] reports the cause. Errors
// propagate through further chained calls.
//
// # Type-changing operations
//
// Methods cannot introduce type parameters, so operations that change the
// item type are package-level functions: [Map], [FlatMap], [Reduce], [Zip],
// [ZipN], [Chunks], [Window], [Enumerate], [GroupBy], [Unique],
// [Difference], [ToSet] and [Sum].
type Iterable[T any] struct {
	seq   iter.Seq[T]
	next  func() (T, bool)
	stops []func()
	err   error
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewIterable wraps seqs, concatenated.
func NewIterable[T any](seqs ...iter.Seq[T]) *Iterable[T] {
	if len(seqs) == 1 {
		return &Iterable[T]{seq: seqs[0]}
	}
	return &Iterable[T]{seq: itertools.Concat(seqs...)}
}

// IterableFrom wraps the items of the slices, concatenated.
func IterableFrom[T any](sources ...[]T) *Iterable[T] {
	return &Iterable[T]{seq: func(yield func(T) bool) {
		for _, s := range sources {
			for _, item := range s {
				if !yield(item) {
					return
				}
			}
		}
	}}
}

// Range yields start, start+step, ... up to stop excluded, like Python's
// range. A zero step records [ErrInvalidStep].
func Range(start, stop, step int) *Iterable[int] {
	if step == 0 {
		return failed[int](errors.Wrap(ErrInvalidStep, "range step must not be zero"))
	}
	return &Iterable[int]{seq: func(yield func(int) bool) {
		for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
			if !yield(i) {
				return
			}
		}
	}}
}

// Count yields start, start+step, ... forever.
func Count(start, step int) *Iterable[int] {
	return &Iterable[int]{seq: func(yield func(int) bool) {
		for i := start; ; i += step {
			if !yield(i) {
				return
			}
		}
	}}
}

func failed[T any](err error) *Iterable[T] {
	return &Iterable[T]{seq: func(func(T) bool) {}, err: err}
}

// derive wraps seq, carrying over the error of g.
func (g *Iterable[T]) derive(seq iter.Seq[T]) *Iterable[T] {
	return &Iterable[T]{seq: seq, err: g.err}
}

func deriveAs[T, U any](g *Iterable[T], seq iter.Seq[U]) *Iterable[U] {
	return &Iterable[U]{seq: seq, err: g.err}
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// All returns the remaining items as an [iter.Seq], for use with range.
func (g *Iterable[T]) All() iter.Seq[T] {
	if g.err != nil {
		return func(func(T) bool) {}
	}
	if g.next == nil {
		return g.seq
	}
	next := g.next
	return func(yield func(T) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Next returns the next item. ok is false when the Iterable is exhausted
// or errored. Call [Iterable.Stop] if you stop calling Next before the end.
func (g *Iterable[T]) Next() (T, bool) {
	if g.err != nil {
		var zero T
		return zero, false
	}
	if g.next == nil {
		next, stop := iter.Pull(g.seq)
		g.next = next
		g.stops = append(g.stops, stop)
	}
	return g.next()
}

// NextOr returns the next item, or def when there is none.
func (g *Iterable[T]) NextOr(def T) T {
	if v, ok := g.Next(); ok {
		return v
	}
	return def
}

// Stop releases the resources held by [Iterable.Next]. It is safe to call
// several times and on an Iterable Next was never called on.
func (g *Iterable[T]) Stop() {
	for _, stop := range g.stops {
		stop()
	}
	g.stops = nil
}

// Err returns the error recorded by the chain, if any.
func (g *Iterable[T]) Err() error { return g.err }

// Each calls fn(item, index) for every remaining item.
func (g *Iterable[T]) Each(fn func(T, int)) {
	i := 0
	for item := range g.All() {
		fn(item, i)
		i++
	}
}

// Consume reads every remaining item, discarding them, and returns g.
func (g *Iterable[T]) Consume() *Iterable[T] {
	for range g.All() {
	}
	return g
}

// ─────────────────────────────────────────────────────────────────────────────
// Combining
// ─────────────────────────────────────────────────────────────────────────────

// Concat yields the items of g, then those of others.
func (g *Iterable[T]) Concat(others ...iter.Seq[T]) *Iterable[T] {
	return g.derive(itertools.Concat(append([]iter.Seq[T]{g.All()}, others...)...))
}

// Prepend yields the items of others, then those of g.
func (g *Iterable[T]) Prepend(others ...iter.Seq[T]) *Iterable[T] {
	return g.derive(itertools.Concat(append(slices.Clone(others), g.All())...))
}

// Without yields the items of g whose key is not the key of an item of
// other. other is read entirely on the first pull. key may be nil to use
// the items themselves; non-comparable keys are fingerprinted.
func (g *Iterable[T]) Without(other iter.Seq[T], key func(T) any) *Iterable[T] {
	if key == nil {
		key = func(item T) any { return item }
	}
	src := g.All()
	return g.derive(func(yield func(T) bool) {
		drop := make(map[any]struct{})
		for item := range other {
			drop[itertools.HashKey(key(item))] = struct{}{}
		}
		for item := range src {
			if _, found := drop[itertools.HashKey(key(item))]; found {
				continue
			}
			if !yield(item) {
				return
			}
		}
	})
}

// Repeat yields the items of g n times in a row.
func (g *Iterable[T]) Repeat(n int) *Iterable[T] {
	return g.derive(itertools.Repeat(g.All(), n))
}

// Cycle yields the items of g forever. Only range over it with a way out.
func (g *Iterable[T]) Cycle() *Iterable[T] {
	return g.derive(itertools.Cycle(g.All()))
}

// Tee returns n independent Iterables over the remaining items of g. g
// itself must not be used afterwards: it records [ErrTeeCalled].
func (g *Iterable[T]) Tee(n int) []*Iterable[T] {
	if n < 1 {
		n = 2
	}
	seqs := itertools.Tee(g.All(), n)
	out := make([]*Iterable[T], n)
	for i, seq := range seqs {
		out[i] = g.derive(seq)
	}
	if g.err == nil {
		g.err = ErrTeeCalled
	}
	return out
}

// Copy returns an independent Iterable over the remaining items of g. g
// keeps working.
func (g *Iterable[T]) Copy() *Iterable[T] {
	if g.err != nil {
		return failed[T](g.err)
	}
	seqs := itertools.Tee(g.All(), 2)
	g.seq, g.next = seqs[0], nil
	return g.derive(seqs[1])
}

// ─────────────────────────────────────────────────────────────────────────────
// Indexing & slicing
// ─────────────────────────────────────────────────────────────────────────────

// At returns the item at index, reading g up to it. A negative index
// reads g entirely.
func (g *Iterable[T]) At(index int) (T, error) {
	if g.err != nil {
		var zero T
		return zero, g.err
	}
	return itertools.AtIndex(g.All(), index)
}

// FirstTrue returns the first item matching fn, or [ErrNoMatch].
func (g *Iterable[T]) FirstTrue(fn func(T) bool) (T, error) {
	if g.err != nil {
		var zero T
		return zero, g.err
	}
	return itertools.FirstTrue(g.All(), fn)
}

// Slice yields the items at positions start, start+step, ... below stop.
// A negative stop means "to the end".
func (g *Iterable[T]) Slice(start, stop, step int) *Iterable[T] {
	seq, err := itertools.Slice(g.All(), start, stop, step)
	if err != nil {
		return failed[T](cmp.Or(g.err, err))
	}
	return g.derive(seq)
}

// StartsWhen drops items until fn is true, then yields the rest.
func (g *Iterable[T]) StartsWhen(fn func(T) bool) *Iterable[T] {
	return g.derive(itertools.StartsWhen(g.All(), fn))
}

// StopsWhen yields items until fn is true.
func (g *Iterable[T]) StopsWhen(fn func(T) bool) *Iterable[T] {
	return g.derive(itertools.StopsWhen(g.All(), fn))
}

// Between yields items from the first matching start up to the first
// following one matching stop, excluded.
func (g *Iterable[T]) Between(start, stop func(T) bool) *Iterable[T] {
	return g.derive(itertools.Between(g.All(), start, stop))
}

// Firsts yields exactly n items: the first n, padded with def.
func (g *Iterable[T]) Firsts(n int, def T) *Iterable[T] {
	seq, err := itertools.Firsts(g.All(), n, def)
	if err != nil {
		return failed[T](cmp.Or(g.err, err))
	}
	return g.derive(seq)
}

// Lasts yields exactly n items: the last n, preceded by def padding.
func (g *Iterable[T]) Lasts(n int, def T) *Iterable[T] {
	seq, err := itertools.Lasts(g.All(), n, def)
	if err != nil {
		return failed[T](cmp.Or(g.err, err))
	}
	return g.derive(seq)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every item. Use the package-level [Map] to change the
// item type.
func (g *Iterable[T]) Map(fn func(T) T) *Iterable[T] {
	return Map(g, fn)
}

// Filter yields the items for which fn returns true.
func (g *Iterable[T]) Filter(fn func(T) bool) *Iterable[T] {
	src := g.All()
	return g.derive(func(yield func(T) bool) {
		for item := range src {
			if fn(item) && !yield(item) {
				return
			}
		}
	})
}

// Reject yields the items for which fn returns false.
func (g *Iterable[T]) Reject(fn func(T) bool) *Iterable[T] {
	return g.Filter(func(item T) bool { return !fn(item) })
}

// Reduce folds the items with fn, starting from the first item. It
// returns [ErrEmpty] when there is none.
func (g *Iterable[T]) Reduce(fn func(acc, item T) T) (T, error) {
	var acc T
	if g.err != nil {
		return acc, g.err
	}
	first := true
	for item := range g.All() {
		if first {
			acc, first = item, false
			continue
		}
		acc = fn(acc, item)
	}
	if first {
		return acc, errors.Wrap(ErrEmpty, "reduce of empty iterable with no initial value")
	}
	return acc, nil
}

// Fold folds the items with fn, starting from initial.
func (g *Iterable[T]) Fold(initial T, fn func(acc, item T) T) T {
	return Reduce(g, fn, initial)
}

// SkipDuplicates yields the items whose key was not seen before. A nil key
// uses the items themselves.
func (g *Iterable[T]) SkipDuplicates(key func(T) any) *Iterable[T] {
	return g.derive(itertools.SkipDuplicates(g.All(), key))
}

// Sorted yields the items sorted by compare, stable. g is read entirely on
// the first pull.
func (g *Iterable[T]) Sorted(compare func(a, b T) int) *Iterable[T] {
	src := g.All()
	return g.derive(func(yield func(T) bool) {
		items := slices.Collect(src)
		slices.SortStableFunc(items, compare)
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	})
}

// Reverse yields the items in reverse order. g is read entirely on the
// first pull.
func (g *Iterable[T]) Reverse() *Iterable[T] {
	src := g.All()
	return g.derive(func(yield func(T) bool) {
		items := slices.Collect(src)
		for i := len(items) - 1; i >= 0; i-- {
			if !yield(items[i]) {
				return
			}
		}
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Consuming
// ─────────────────────────────────────────────────────────────────────────────

// Count reads every remaining item and returns how many there were.
func (g *Iterable[T]) Count() int {
	n := 0
	for range g.All() {
		n++
	}
	return n
}

// Sample returns n items picked at random without replacement. When g
// holds fewer than n items, the missing ones are def. g is read entirely.
func (g *Iterable[T]) Sample(n int, def T) *List[T] {
	items := slices.Collect(g.All())
	for len(items) < n {
		items = append(items, def)
	}
	rand.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	if n < 0 {
		n = 0
	}
	return &List[T]{items: items[:n:n]}
}

// Random returns one item picked at random, reading g entirely. ok is
// false when g is empty.
func (g *Iterable[T]) Random() (T, bool) {
	items := slices.Collect(g.All())
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[rand.IntN(len(items))], true
}

// ToSlice reads the remaining items into a new slice.
func (g *Iterable[T]) ToSlice() []T {
	return slices.Collect(g.All())
}

// List reads the remaining items into a [List].
func (g *Iterable[T]) List() *List[T] {
	return &List[T]{items: g.ToSlice()}
}

// Tuple reads the remaining items into a [Tuple].
func (g *Iterable[T]) Tuple() *Tuple[T] {
	return &Tuple[T]{items: g.ToSlice()}
}

// Join renders every item in its default form and joins them with sep.
// An errored chain yields no items, so Join returns the empty String;
// check [Iterable.Err], or use [Iterable.JoinFormat] which returns it.
//
//	Range(0, 3, 1).Join(",") // → "0,1,2"
func (g *Iterable[T]) Join(sep string) String {
	s, _ := textutil.Join(sep, toAny(g.ToSlice()), textutil.DefaultJoinTemplate, nil)
	return NewString(s)
}

// JoinFormat renders every item with template through formatter (nil for
// [textutil.FormatValue]) and joins them with sep.
func (g *Iterable[T]) JoinFormat(sep, template string, formatter textutil.Formatter) (String, error) {
	if g.err != nil {
		return String{}, g.err
	}
	return NewString(sep).JoinFormat(toAny(g.ToSlice()), template, formatter)
}

// ─────────────────────────────────────────────────────────────────────────────
// Debugging
// ─────────────────────────────────────────────────────────────────────────────

// String implements [fmt.Stringer] without consuming anything.
func (g *Iterable[T]) String() string {
	if g.err != nil {
		return "<Iterable error: " + g.err.Error() + ">"
	}
	return "<Iterable>"
}

// Dump writes the pretty form of the remaining items to w (os.Stdout when
// nil) and returns an Iterable over the same items.
func (g *Iterable[T]) Dump(w io.Writer) *Iterable[T] {
	items := g.ToSlice()
	dump(w, items)
	return g.derive(slices.Values(items))
}

// Log emits a debug record with the remaining items and returns an
// Iterable over the same items. The items are only read when the logger
// is enabled for debug.
func (g *Iterable[T]) Log(logger *zap.Logger, msg string) *Iterable[T] {
	if logger == nil || !logger.Core().Enabled(zap.DebugLevel) {
		return g
	}
	items := g.ToSlice()
	logValue(logger, msg, "Iterable", len(items), items)
	return g.derive(slices.Values(items))
}
