package wrappers

import (
	"encoding/json"
	"io"
	"iter"
	"slices"
	"sort"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-ww/textutil"
)

// List is a mutable, generic wrapper around a slice of T.
//
// Unlike [Tuple], the mutators (Append, Extend, Insert, Sort, Reverse,
// Clear) change the receiver and return it, so calls chain:
//
//	l := wrappers.NewList(1, 2)
//	l.Append(3, 4).Extend([]int{5}, []int{6}) // l is now [1 2 3 4 5 6]
//
// Appending several values at once is the same as chaining single appends.
// Map, Filter, Zip and Copy return a new List.
type List[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewList creates a List from a variadic list of items (copied).
func NewList[T any](items ...T) *List[T] {
	return ListFrom(items)
}

// ListFrom creates a List from a slice (the slice is copied).
func ListFrom[T any](items []T) *List[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &List[T]{items: dst}
}

// ListFromSeq creates a List holding the items of seq.
func ListFromSeq[T any](seq iter.Seq[T]) *List[T] {
	return &List[T]{items: slices.Collect(seq)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (l *List[T]) All() []T { return slices.Clone(l.items) }

// ToSlice is an alias for [List.All].
func (l *List[T]) ToSlice() []T { return l.All() }

// Seq returns an iterator over the items.
func (l *List[T]) Seq() iter.Seq[T] { return slices.Values(l.items) }

// Iter returns a lazy [Iterable] over a snapshot of the items.
func (l *List[T]) Iter() *Iterable[T] { return IterableFrom(l.All()) }

// Tuple returns an immutable copy of the list.
func (l *List[T]) Tuple() *Tuple[T] { return TupleFrom(l.items) }

// Len returns the number of items.
func (l *List[T]) Len() int { return len(l.items) }

// IsEmpty reports whether the list holds no items.
func (l *List[T]) IsEmpty() bool { return len(l.items) == 0 }

// Get returns the item at index. A negative index counts from the end.
func (l *List[T]) Get(index int) (T, bool) {
	var zero T
	i, ok := normIndex(index, len(l.items))
	if !ok {
		return zero, false
	}
	return l.items[i], true
}

// Index returns the position of the first item matching fn, or
// [ErrValueNotFound].
func (l *List[T]) Index(fn func(T) bool) (int, error) {
	if i := slices.IndexFunc(l.items, fn); i >= 0 {
		return i, nil
	}
	return -1, ErrValueNotFound
}

// Contains reports whether at least one item satisfies fn.
func (l *List[T]) Contains(fn func(T) bool) bool {
	return slices.ContainsFunc(l.items, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// In-place mutators
// ─────────────────────────────────────────────────────────────────────────────

// Append adds values at the end and returns l.
func (l *List[T]) Append(values ...T) *List[T] {
	l.items = append(l.items, values...)
	return l
}

// Extend adds the items of every slice at the end and returns l.
func (l *List[T]) Extend(sources ...[]T) *List[T] {
	for _, s := range sources {
		l.items = append(l.items, s...)
	}
	return l
}

// ExtendSeq adds the items of every sequence at the end and returns l.
func (l *List[T]) ExtendSeq(seqs ...iter.Seq[T]) *List[T] {
	for _, seq := range seqs {
		l.items = slices.AppendSeq(l.items, seq)
	}
	return l
}

// Insert inserts values before index and returns l. A negative index
// counts from the end; out-of-range indices are clamped, so Insert never
// fails.
func (l *List[T]) Insert(index int, values ...T) *List[T] {
	n := len(l.items)
	if index < 0 {
		index += n
	}
	index = max(0, min(index, n))
	l.items = slices.Insert(l.items, index, values...)
	return l
}

// Sort sorts the items in place with less and returns l. The sort is
// stable.
func (l *List[T]) Sort(less func(a, b T) bool) *List[T] {
	sort.SliceStable(l.items, func(i, j int) bool { return less(l.items[i], l.items[j]) })
	return l
}

// Reverse reverses the items in place and returns l.
func (l *List[T]) Reverse() *List[T] {
	slices.Reverse(l.items)
	return l
}

// Clear removes every item and returns l.
func (l *List[T]) Clear() *List[T] {
	clear(l.items)
	l.items = l.items[:0]
	return l
}

// Set replaces the item at index. A negative index counts from the end.
func (l *List[T]) Set(index int, v T) (*List[T], error) {
	i, ok := normIndex(index, len(l.items))
	if !ok {
		return l, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", index, len(l.items))
	}
	l.items[i] = v
	return l, nil
}

// Remove deletes the first item matching fn. It returns
// [ErrValueNotFound] and leaves l untouched when none does.
func (l *List[T]) Remove(fn func(T) bool) (*List[T], error) {
	i := slices.IndexFunc(l.items, fn)
	if i < 0 {
		return l, ErrValueNotFound
	}
	l.items = slices.Delete(l.items, i, i+1)
	return l, nil
}

// Pop removes and returns the item at index. A negative index counts from
// the end: Pop(-1) removes the last item.
func (l *List[T]) Pop(index int) (T, error) {
	var zero T
	i, ok := normIndex(index, len(l.items))
	if !ok {
		return zero, errors.Wrapf(ErrIndexOutOfRange, "pop index %d, length %d", index, len(l.items))
	}
	item := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	return item, nil
}

// PopOr is [List.Pop] returning def when index is out of range.
func (l *List[T]) PopOr(index int, def T) T {
	if item, err := l.Pop(index); err == nil {
		return item
	}
	return def
}

// PopOrFunc is [List.Pop] returning fn() when index is out of range. fn is
// only called in that case.
func (l *List[T]) PopOrFunc(index int, fn func() T) T {
	if item, err := l.Pop(index); err == nil {
		return item
	}
	return fn()
}

// ─────────────────────────────────────────────────────────────────────────────
// New-list operations
// ─────────────────────────────────────────────────────────────────────────────

// Copy returns a shallow copy of l.
func (l *List[T]) Copy() *List[T] { return ListFrom(l.items) }

// Map returns a new List with fn applied to every item. Use [Map] on
// [List.Iter] to change the item type.
func (l *List[T]) Map(fn func(T) T) *List[T] {
	out := make([]T, len(l.items))
	for i, item := range l.items {
		out[i] = fn(item)
	}
	return &List[T]{items: out}
}

// Filter returns a new List with the items for which fn returns true.
func (l *List[T]) Filter(fn func(T) bool) *List[T] {
	out := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return &List[T]{items: out}
}

// ZipLists returns a new List of rows: the i-th row holds the i-th item of
// l and of every other slice. It stops at the shortest.
func ZipLists[T any](l *List[T], others ...[]T) *List[[]T] {
	n := len(l.items)
	for _, o := range others {
		n = min(n, len(o))
	}
	out := make([][]T, n)
	for i := range out {
		row := make([]T, 0, len(others)+1)
		row = append(row, l.items[i])
		for _, o := range others {
			row = append(row, o[i])
		}
		out[i] = row
	}
	return &List[[]T]{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & strings
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item and returns l.
func (l *List[T]) Each(fn func(T, int)) *List[T] {
	for i, item := range l.items {
		fn(item, i)
	}
	return l
}

// Tap calls fn(l) for side-effects and returns l.
func (l *List[T]) Tap(fn func(*List[T])) *List[T] {
	fn(l)
	return l
}

// Join renders every item in its default form and joins them with sep.
func (l *List[T]) Join(sep string) String {
	s, _ := textutil.Join(sep, toAny(l.items), textutil.DefaultJoinTemplate, nil)
	return NewString(s)
}

// JoinFormat renders every item with template through formatter (nil for
// [textutil.FormatValue]) and joins them with sep.
//
//	NewList("0", "1", "2").JoinFormat(",", "{}#", nil) // → "0#,1#,2#"
func (l *List[T]) JoinFormat(sep, template string, formatter textutil.Formatter) (String, error) {
	return NewString(sep).JoinFormat(toAny(l.items), template, formatter)
}

// ToJSON serialises the items to a JSON array.
func (l *List[T]) ToJSON() ([]byte, error) { return json.Marshal(l.items) }

// String returns a JSON representation of the list.
// It implements [fmt.Stringer].
func (l *List[T]) String() string { return jsonString(l.items) }

// ─────────────────────────────────────────────────────────────────────────────
// Comparison & debugging
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports whether both lists hold equal items in the same order.
func (l *List[T]) Equal(other *List[T]) bool {
	if l == nil || other == nil {
		return l == other
	}
	return equal(l.items, other.items)
}

// Pretty returns the items pretty-printed.
func (l *List[T]) Pretty() string { return prettyString(l.items) }

// Dump writes the pretty form to w (os.Stdout when nil) and returns l.
func (l *List[T]) Dump(w io.Writer) *List[T] {
	dump(w, l.items)
	return l
}

// Log emits a debug record with the items and returns l.
func (l *List[T]) Log(logger *zap.Logger, msg string) *List[T] {
	logValue(logger, msg, "List", len(l.items), l.items)
	return l
}
