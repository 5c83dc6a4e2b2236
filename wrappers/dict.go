package wrappers

import (
	"cmp"
	"encoding/json"
	"io"
	"iter"
	"maps"
	"slices"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Dict is a generic wrapper around map[K]V.
//
// Add, Delete and Merge change the receiver and return it. Plus is the
// additive merge: it returns a new Dict holding the keys of the receiver
// and of every argument, later values winning on conflicts. It is
// associative:
//
//	a.Plus(b).Plus(c) ≡ a.Plus(b.Plus(c)) ≡ a.Plus(b, c)
type Dict[K comparable, V any] struct {
	m map[K]V
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewDict creates a Dict from m (copied). A nil m gives an empty Dict.
func NewDict[K comparable, V any](m map[K]V) *Dict[K, V] {
	out := make(map[K]V, len(m))
	maps.Copy(out, m)
	return &Dict[K, V]{m: out}
}

// DictFromSeq creates a Dict from key/value pairs. Later keys win.
func DictFromSeq[K comparable, V any](seq iter.Seq2[K, V]) *Dict[K, V] {
	m := maps.Collect(seq)
	if m == nil {
		m = make(map[K]V)
	}
	return &Dict[K, V]{m: m}
}

// FromKeys creates a Dict mapping every key to value.
func FromKeys[K comparable, V any](value V, keys ...K) *Dict[K, V] {
	return FromKeysFunc(func(K) V { return value }, keys...)
}

// FromKeysFunc creates a Dict mapping every key to fn(key).
func FromKeysFunc[K comparable, V any](fn func(K) V, keys ...K) *Dict[K, V] {
	m := make(map[K]V, len(keys))
	for _, k := range keys {
		m[k] = fn(k)
	}
	return &Dict[K, V]{m: m}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of keys.
func (d *Dict[K, V]) Len() int { return len(d.m) }

// Get returns the value of k and whether k is present.
func (d *Dict[K, V]) Get(k K) (V, bool) {
	v, ok := d.m[k]
	return v, ok
}

// GetOr returns the value of k, or def when k is missing.
func (d *Dict[K, V]) GetOr(k K, def V) V {
	if v, ok := d.m[k]; ok {
		return v
	}
	return def
}

// Has reports whether k is present.
func (d *Dict[K, V]) Has(k K) bool {
	_, ok := d.m[k]
	return ok
}

// Keys returns the keys, in no particular order.
func (d *Dict[K, V]) Keys() *Iterable[K] {
	return IterableFrom(slices.Collect(maps.Keys(d.m)))
}

// Values returns the values, in no particular order.
func (d *Dict[K, V]) Values() *Iterable[V] {
	return IterableFrom(slices.Collect(maps.Values(d.m)))
}

// Items returns the key/value pairs, in no particular order.
func (d *Dict[K, V]) Items() *Iterable[Pair[K, V]] {
	items := make([]Pair[K, V], 0, len(d.m))
	for k, v := range d.m {
		items = append(items, Pair[K, V]{First: k, Second: v})
	}
	return IterableFrom(items)
}

// All returns an iterator over the key/value pairs.
func (d *Dict[K, V]) All() iter.Seq2[K, V] { return maps.All(d.m) }

// ToMap returns a copy of the underlying map.
func (d *Dict[K, V]) ToMap() map[K]V { return maps.Clone(d.m) }

// ─────────────────────────────────────────────────────────────────────────────
// In-place mutators
// ─────────────────────────────────────────────────────────────────────────────

// Add sets k to v and returns d.
func (d *Dict[K, V]) Add(k K, v V) *Dict[K, V] {
	d.m[k] = v
	return d
}

// Delete removes keys and returns d. Missing keys are ignored.
func (d *Dict[K, V]) Delete(keys ...K) *Dict[K, V] {
	for _, k := range keys {
		delete(d.m, k)
	}
	return d
}

// Merge copies the keys of others into d, in order, and returns d.
func (d *Dict[K, V]) Merge(others ...*Dict[K, V]) *Dict[K, V] {
	for _, o := range others {
		if o != nil {
			maps.Copy(d.m, o.m)
		}
	}
	return d
}

// ─────────────────────────────────────────────────────────────────────────────
// New-dict operations
// ─────────────────────────────────────────────────────────────────────────────

// Copy returns a shallow copy of d.
func (d *Dict[K, V]) Copy() *Dict[K, V] { return NewDict(d.m) }

// Plus returns a new Dict holding the keys of d and of others. On
// conflicts the rightmost value wins. d is unchanged.
func (d *Dict[K, V]) Plus(others ...*Dict[K, V]) *Dict[K, V] {
	return d.Copy().Merge(others...)
}

// Subset returns a new Dict restricted to keys. A key missing from d
// returns [ErrKeyNotFound] naming it; use [Dict.SubsetOr] to default it
// instead.
func (d *Dict[K, V]) Subset(keys ...K) (*Dict[K, V], error) {
	if err := d.checkKeys(keys); err != nil {
		return nil, err
	}
	var zero V
	return d.SubsetOr(zero, keys...), nil
}

// SubsetOr returns a new Dict restricted to keys. Missing keys map to def.
func (d *Dict[K, V]) SubsetOr(def V, keys ...K) *Dict[K, V] {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		out[k] = d.GetOr(k, def)
	}
	return &Dict[K, V]{m: out}
}

// SubsetFunc returns a new Dict with the entries for which fn returns
// true.
func (d *Dict[K, V]) SubsetFunc(fn func(K, V) bool) *Dict[K, V] {
	out := make(map[K]V)
	for k, v := range d.m {
		if fn(k, v) {
			out[k] = v
		}
	}
	return &Dict[K, V]{m: out}
}

// ISubset lazily yields the key/value pair of every key, in the given
// order. Keys are checked when ISubset is called: a missing one is
// recorded on the returned Iterable as [ErrKeyNotFound].
func (d *Dict[K, V]) ISubset(keys ...K) *Iterable[Pair[K, V]] {
	if err := d.checkKeys(keys); err != nil {
		return failed[Pair[K, V]](err)
	}
	return NewIterable(func(yield func(Pair[K, V]) bool) {
		for _, k := range keys {
			v, ok := d.m[k]
			if !ok {
				continue
			}
			if !yield(Pair[K, V]{First: k, Second: v}) {
				return
			}
		}
	})
}

func (d *Dict[K, V]) checkKeys(keys []K) error {
	for _, k := range keys {
		if _, ok := d.m[k]; !ok {
			return errors.Wrapf(ErrKeyNotFound, "key %v", k)
		}
	}
	return nil
}

// Swap returns a new Dict mapping values to keys. When several keys share
// a value, only one of them survives.
func Swap[K, V comparable](d *Dict[K, V]) *Dict[V, K] {
	out := make(map[V]K, len(d.m))
	for k, v := range d.m {
		out[v] = k
	}
	return &Dict[V, K]{m: out}
}

// SortedKeys returns the keys of d in ascending order.
func SortedKeys[K cmp.Ordered, V any](d *Dict[K, V]) []K {
	return slices.Sorted(maps.Keys(d.m))
}

// ─────────────────────────────────────────────────────────────────────────────
// Strings, comparison & debugging
// ─────────────────────────────────────────────────────────────────────────────

// ToJSON serialises the map to a JSON object.
func (d *Dict[K, V]) ToJSON() ([]byte, error) { return json.Marshal(d.m) }

// String returns a JSON representation of the dict.
// It implements [fmt.Stringer].
func (d *Dict[K, V]) String() string { return jsonString(d.m) }

// Equal reports whether both dicts hold the same keys with equal values.
func (d *Dict[K, V]) Equal(other *Dict[K, V]) bool {
	if d == nil || other == nil {
		return d == other
	}
	return equal(d.m, other.m)
}

// Pretty returns the map pretty-printed.
func (d *Dict[K, V]) Pretty() string { return prettyString(d.m) }

// Dump writes the pretty form to w (os.Stdout when nil) and returns d.
func (d *Dict[K, V]) Dump(w io.Writer) *Dict[K, V] {
	dump(w, d.m)
	return d
}

// Log emits a debug record with the entries and returns d.
func (d *Dict[K, V]) Log(logger *zap.Logger, msg string) *Dict[K, V] {
	logValue(logger, msg, "Dict", len(d.m), d.m)
	return d
}
