package wrappers

import (
	"encoding/json"
	"io"
	"iter"
	"reflect"
	"slices"
	"sort"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-ww/textutil"
)

// Tuple is an immutable, generic wrapper around a slice of T.
//
// Every method that transforms the tuple returns a *new* Tuple, leaving the
// original unchanged. A Tuple is safe for concurrent reads.
//
//	t := wrappers.NewTuple(3, 1, 2)
//	t.Sort(func(a, b int) bool { return a < b }).Take(2) // → (1, 2); t is unchanged
type Tuple[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewTuple creates a Tuple from a variadic list of items (copied).
func NewTuple[T any](items ...T) *Tuple[T] {
	return TupleFrom(items)
}

// TupleFrom creates a Tuple from a slice (the slice is copied).
func TupleFrom[T any](items []T) *Tuple[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Tuple[T]{items: dst}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (t *Tuple[T]) All() []T { return slices.Clone(t.items) }

// ToSlice is an alias for [Tuple.All].
func (t *Tuple[T]) ToSlice() []T { return t.All() }

// Seq returns an iterator over the items.
func (t *Tuple[T]) Seq() iter.Seq[T] { return slices.Values(t.items) }

// Iter returns a lazy [Iterable] over the items.
func (t *Tuple[T]) Iter() *Iterable[T] { return NewIterable(t.Seq()) }

// ToList returns a mutable copy of the tuple.
func (t *Tuple[T]) ToList() *List[T] { return ListFrom(t.items) }

// Len returns the number of items.
func (t *Tuple[T]) Len() int { return len(t.items) }

// Count returns the number of items satisfying fn.
func (t *Tuple[T]) Count(fn func(T) bool) int {
	n := 0
	for _, item := range t.items {
		if fn(item) {
			n++
		}
	}
	return n
}

// Get returns the item at index. A negative index counts from the end.
func (t *Tuple[T]) Get(index int) (T, bool) {
	var zero T
	i, ok := normIndex(index, len(t.items))
	if !ok {
		return zero, false
	}
	return t.items[i], true
}

// Has reports whether index is a valid position, counting negative
// indices from the end.
func (t *Tuple[T]) Has(index int) bool {
	_, ok := normIndex(index, len(t.items))
	return ok
}

// First returns the first item. ok is false when the tuple is empty.
func (t *Tuple[T]) First() (T, bool) { return t.Get(0) }

// Last returns the last item. ok is false when the tuple is empty.
func (t *Tuple[T]) Last() (T, bool) { return t.Get(-1) }

// Contains reports whether at least one item satisfies fn.
func (t *Tuple[T]) Contains(fn func(T) bool) bool {
	return slices.ContainsFunc(t.items, fn)
}

// Index returns the position of the first item matching fn, or
// [ErrValueNotFound].
func (t *Tuple[T]) Index(fn func(T) bool) (int, error) {
	if i := slices.IndexFunc(t.items, fn); i >= 0 {
		return i, nil
	}
	return -1, ErrValueNotFound
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new tuple with only the items for which fn returns true.
func (t *Tuple[T]) Filter(fn func(T) bool) *Tuple[T] {
	out := make([]T, 0, len(t.items))
	for _, item := range t.items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return &Tuple[T]{items: out}
}

// Reject is the complement of [Tuple.Filter].
func (t *Tuple[T]) Reject(fn func(T) bool) *Tuple[T] {
	return t.Filter(func(item T) bool { return !fn(item) })
}

// Map returns a new tuple with fn applied to every item.
func (t *Tuple[T]) Map(fn func(T) T) *Tuple[T] {
	out := make([]T, len(t.items))
	for i, item := range t.items {
		out[i] = fn(item)
	}
	return &Tuple[T]{items: out}
}

// Reverse returns a new tuple with the items in reverse order.
func (t *Tuple[T]) Reverse() *Tuple[T] {
	out := t.All()
	slices.Reverse(out)
	return &Tuple[T]{items: out}
}

// Sort returns a new tuple sorted by less. The sort is stable.
func (t *Tuple[T]) Sort(less func(a, b T) bool) *Tuple[T] {
	out := t.All()
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return &Tuple[T]{items: out}
}

// Concat returns a new tuple with the items of others appended.
func (t *Tuple[T]) Concat(others ...*Tuple[T]) *Tuple[T] {
	out := t.All()
	for _, o := range others {
		out = append(out, o.items...)
	}
	return &Tuple[T]{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns at most n items from the start.
// A negative n returns items from the end (Take(-3) ≡ last 3 items).
func (t *Tuple[T]) Take(n int) *Tuple[T] {
	total := len(t.items)
	if n < 0 {
		return TupleFrom(t.items[max(0, total+n):])
	}
	return TupleFrom(t.items[:min(n, total)])
}

// Skip returns a new tuple without the first n items.
// A negative n drops items from the end.
func (t *Tuple[T]) Skip(n int) *Tuple[T] {
	total := len(t.items)
	if n < 0 {
		return TupleFrom(t.items[:max(0, total+n)])
	}
	return TupleFrom(t.items[min(n, total):])
}

// Slice returns at most length items starting at offset.
// A negative offset counts from the end; a negative length means "to the
// end".
func (t *Tuple[T]) Slice(offset, length int) *Tuple[T] {
	total := len(t.items)
	if offset < 0 {
		offset = max(0, total+offset)
	}
	if offset >= total {
		return &Tuple[T]{items: []T{}}
	}
	if length < 0 {
		return TupleFrom(t.items[offset:])
	}
	return TupleFrom(t.items[offset:min(total, offset+length)])
}

// Chunk splits the tuple into consecutive tuples of size items. The last
// may be shorter. It returns [ErrInvalidSize] when size < 1.
func (t *Tuple[T]) Chunk(size int) ([]*Tuple[T], error) {
	if size < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "chunk size is %d", size)
	}
	chunks := make([]*Tuple[T], 0, (len(t.items)+size-1)/size)
	for c := range slices.Chunk(t.items, size) {
		chunks = append(chunks, TupleFrom(c))
	}
	return chunks, nil
}

// Partition splits the tuple in two: the items for which fn returns true,
// then the rest.
func (t *Tuple[T]) Partition(fn func(T) bool) (*Tuple[T], *Tuple[T]) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range t.items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return &Tuple[T]{items: pass}, &Tuple[T]{items: fail}
}

// Sum returns the sum of the values extracted by fn.
func (t *Tuple[T]) Sum(fn func(T) float64) float64 {
	var sum float64
	for _, item := range t.items {
		sum += fn(item)
	}
	return sum
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversion
// ─────────────────────────────────────────────────────────────────────────────

// ToDict builds a Dict from the items, each of which must hold a key and a
// value: a [Pair], a 2-item slice, array, List or Tuple, or a 2-rune
// string. Later keys win.
//
// It returns [ErrNotIterable] or [ErrNotPair] naming the position of the
// first bad item, and [ErrUnhashableKey] when a key cannot be a map key.
// Use [PairsToDict] for a typed result.
func (t *Tuple[T]) ToDict() (*Dict[any, any], error) {
	out := make(map[any]any, len(t.items))
	for i, item := range t.items {
		k, v, err := keyValue(item)
		if err != nil {
			return nil, errors.Wrapf(err, "%v (position %d)", item, i)
		}
		if k != nil && !reflect.ValueOf(k).Comparable() {
			return nil, errors.Wrapf(ErrUnhashableKey, "key %v of type %T (position %d)", k, k, i)
		}
		out[k] = v
	}
	return &Dict[any, any]{m: out}, nil
}

func keyValue(item any) (any, any, error) {
	switch x := item.(type) {
	case anyPair:
		k, v := x.pairValues()
		return k, v, nil
	case anySequence:
		items := x.anyItems()
		if len(items) != 2 {
			return nil, nil, errors.Wrapf(ErrNotPair, "contains %d elements, 2 are required", len(items))
		}
		return items[0], items[1], nil
	case string:
		runes := []rune(x)
		if len(runes) != 2 {
			return nil, nil, errors.Wrapf(ErrNotPair, "contains %d elements, 2 are required", len(runes))
		}
		return string(runes[0]), string(runes[1]), nil
	}
	rv := reflect.ValueOf(item)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() != 2 {
			return nil, nil, errors.Wrapf(ErrNotPair, "contains %d elements, 2 are required", rv.Len())
		}
		return rv.Index(0).Interface(), rv.Index(1).Interface(), nil
	}
	return nil, nil, errors.WithHint(ErrNotIterable,
		"a dictionary can only be built from pairs, such as Pair values or 2-item slices")
}

// anySequence lets ToDict read Lists and Tuples of any item type.
type anySequence interface {
	anyItems() []any
}

func (t *Tuple[T]) anyItems() []any { return toAny(t.items) }
func (l *List[T]) anyItems() []any  { return toAny(l.items) }

// PairsToDict builds a typed Dict from a tuple of pairs. Later keys win.
func PairsToDict[K comparable, V any](t *Tuple[Pair[K, V]]) *Dict[K, V] {
	out := make(map[K]V, len(t.items))
	for _, p := range t.items {
		out[p.First] = p.Second
	}
	return &Dict[K, V]{m: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Strings
// ─────────────────────────────────────────────────────────────────────────────

// Join renders every item in its default form and joins them with sep.
func (t *Tuple[T]) Join(sep string) String {
	s, _ := textutil.Join(sep, toAny(t.items), textutil.DefaultJoinTemplate, nil)
	return NewString(s)
}

// JoinFormat renders every item with template through formatter (nil for
// [textutil.FormatValue]) and joins them with sep.
func (t *Tuple[T]) JoinFormat(sep, template string, formatter textutil.Formatter) (String, error) {
	return NewString(sep).JoinFormat(toAny(t.items), template, formatter)
}

// ToJSON serialises the items to a JSON array.
func (t *Tuple[T]) ToJSON() ([]byte, error) { return json.Marshal(t.items) }

// String returns a JSON representation of the tuple.
// It implements [fmt.Stringer].
func (t *Tuple[T]) String() string { return jsonString(t.items) }

// ─────────────────────────────────────────────────────────────────────────────
// Comparison & debugging
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports whether both tuples hold equal items in the same order.
func (t *Tuple[T]) Equal(other *Tuple[T]) bool {
	if t == nil || other == nil {
		return t == other
	}
	return equal(t.items, other.items)
}

// Pretty returns the items pretty-printed.
func (t *Tuple[T]) Pretty() string { return prettyString(t.items) }

// Dump writes the pretty form to w (os.Stdout when nil) and returns t.
func (t *Tuple[T]) Dump(w io.Writer) *Tuple[T] {
	dump(w, t.items)
	return t
}

// Log emits a debug record with the items and returns t.
func (t *Tuple[T]) Log(logger *zap.Logger, msg string) *Tuple[T] {
	logValue(logger, msg, "Tuple", len(t.items), t.items)
	return t
}
