package wrappers_test

import (
	"maps"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-ww/wrappers"
)

func strInts(m map[string]int) *wrappers.Dict[string, int] { return wrappers.NewDict(m) }

func TestDictConstructors(t *testing.T) {
	src := map[string]int{"a": 1}
	d := wrappers.NewDict(src)
	src["a"] = 2
	v, _ := d.Get("a")
	assert.Equal(t, 1, v, "NewDict copies the map")

	assert.Zero(t, wrappers.NewDict[string, int](nil).Len())
	assert.Equal(t, map[string]int{"x": 1}, wrappers.DictFromSeq(maps.All(map[string]int{"x": 1})).ToMap())
	assert.Equal(t, map[string]int{"a": 0, "b": 0}, wrappers.FromKeys(0, "a", "b").ToMap())
	assert.Equal(t, map[string]int{"a": 1, "bb": 2}, wrappers.FromKeysFunc(func(k string) int { return len(k) }, "a", "bb").ToMap())
}

func TestDictAccessors(t *testing.T) {
	d := strInts(map[string]int{"a": 1, "b": 2})

	v, ok := d.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = d.Get("z")
	assert.False(t, ok)
	assert.Equal(t, 9, d.GetOr("z", 9))
	assert.True(t, d.Has("b"))

	assert.ElementsMatch(t, []string{"a", "b"}, d.Keys().ToSlice())
	assert.ElementsMatch(t, []int{1, 2}, d.Values().ToSlice())
	assert.ElementsMatch(t, []wrappers.Pair[string, int]{wrappers.MakePair("a", 1), wrappers.MakePair("b", 2)}, d.Items().ToSlice())
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, maps.Collect(d.All()))
	assert.Equal(t, []string{"a", "b"}, wrappers.SortedKeys(d))
}

func TestDictMutators(t *testing.T) {
	d := strInts(map[string]int{"a": 1})
	got := d.Add("b", 2).Delete("a", "missing").Merge(strInts(map[string]int{"c": 3}), nil)
	assert.Same(t, d, got)
	assert.Equal(t, map[string]int{"b": 2, "c": 3}, d.ToMap())
}

func TestDictPlus(t *testing.T) {
	a := strInts(map[string]int{"x": 1, "y": 1})
	b := strInts(map[string]int{"y": 2})
	c := strInts(map[string]int{"z": 3})

	sum := a.Plus(b, c)
	assert.Equal(t, map[string]int{"x": 1, "y": 2, "z": 3}, sum.ToMap())
	assert.Equal(t, map[string]int{"x": 1, "y": 1}, a.ToMap(), "Plus leaves the receiver unchanged")
}

func TestDictPlusProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	dicts := gen.MapOf(gen.AlphaString(), gen.Int())

	properties.Property("plus is associative", prop.ForAll(
		func(a, b, c map[string]int) bool {
			da, db, dc := strInts(a), strInts(b), strInts(c)
			left := da.Plus(db).Plus(dc)
			right := da.Plus(db.Plus(dc))
			return left.Equal(right) && left.Equal(da.Plus(db, dc))
		},
		dicts, dicts, dicts,
	))

	properties.Property("plus keeps the rightmost value", prop.ForAll(
		func(a, b map[string]int) bool {
			sum := strInts(a).Plus(strInts(b))
			for k, v := range b {
				if got, _ := sum.Get(k); got != v {
					return false
				}
			}
			for k, v := range a {
				if _, inB := b[k]; !inB {
					if got, _ := sum.Get(k); got != v {
						return false
					}
				}
			}
			return true
		},
		dicts, dicts,
	))

	properties.Property("plus does not mutate its operands", prop.ForAll(
		func(a, b map[string]int) bool {
			da, db := strInts(a), strInts(b)
			da.Plus(db)
			return maps.Equal(da.ToMap(), a) && maps.Equal(db.ToMap(), b)
		},
		dicts, dicts,
	))

	properties.TestingRun(t)
}

func TestDictSubset(t *testing.T) {
	d := strInts(map[string]int{"a": 1, "b": 2, "c": 3})

	sub, err := d.Subset("a", "c")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "c": 3}, sub.ToMap())

	_, err = d.Subset("a", "nope")
	assert.ErrorIs(t, err, wrappers.ErrKeyNotFound)
	assert.Contains(t, err.Error(), "nope")

	assert.Equal(t, map[string]int{"b": 2, "z": -1}, d.SubsetOr(-1, "b", "z").ToMap())
	assert.Equal(t, map[string]int{"c": 3}, d.SubsetFunc(func(_ string, v int) bool { return v > 2 }).ToMap())
}

func TestDictISubset(t *testing.T) {
	d := strInts(map[string]int{"a": 1, "b": 2, "c": 3})

	pairs := d.ISubset("c", "a")
	assert.Equal(t, []wrappers.Pair[string, int]{
		wrappers.MakePair("c", 3), wrappers.MakePair("a", 1),
	}, pairs.ToSlice())
	assert.NoError(t, pairs.Err())

	missing := d.ISubset("c", "z")
	assert.Empty(t, missing.ToSlice())
	assert.ErrorIs(t, missing.Err(), wrappers.ErrKeyNotFound)
}

func TestDictSwapCopy(t *testing.T) {
	d := strInts(map[string]int{"a": 1, "b": 2})
	assert.Equal(t, map[int]string{1: "a", 2: "b"}, wrappers.Swap(d).ToMap())

	c := d.Copy()
	c.Add("c", 3)
	assert.False(t, d.Has("c"))
	assert.False(t, d.Equal(c))
	assert.True(t, d.Equal(d.Copy()))
}

func TestDictStrings(t *testing.T) {
	d := strInts(map[string]int{"b": 2, "a": 1})
	assert.Equal(t, `{"a":1,"b":2}`, d.String())

	b, err := d.ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"b":2}`, string(b))
	assert.Contains(t, d.Pretty(), "a")
}

// ─────────────────────────────────────────────────────────────────────────────
// Dot notation
// ─────────────────────────────────────────────────────────────────────────────

func nestedConfig() *wrappers.Dict[string, any] {
	return wrappers.NewDict(map[string]any{
		"db": map[string]any{
			"host": "localhost",
			"port": 5432,
		},
		"cache": wrappers.NewDict(map[string]any{"ttl": 60}),
		"name":  "app",
	})
}

func TestDot(t *testing.T) {
	flat := wrappers.Dot(nestedConfig())
	assert.Equal(t, map[string]any{
		"db.host":   "localhost",
		"db.port":   5432,
		"cache.ttl": 60,
		"name":      "app",
	}, flat.ToMap())

	back := wrappers.Undot(flat)
	assert.Equal(t, "localhost", wrappers.DotGet(back, "db.host"))
	assert.Equal(t, 60, wrappers.DotGet(back, "cache.ttl"))
	assert.Equal(t, wrappers.SortedKeys(flat), wrappers.SortedKeys(wrappers.Dot(back)))
}

func TestDotGetHas(t *testing.T) {
	cfg := nestedConfig()
	assert.Equal(t, 5432, wrappers.DotGet(cfg, "db.port"))
	assert.Equal(t, 60, wrappers.DotGet(cfg, "cache.ttl"), "nested dicts are traversed")
	assert.Nil(t, wrappers.DotGet(cfg, "db.user"))
	assert.Equal(t, "root", wrappers.DotGet(cfg, "db.user", "root"))
	assert.Equal(t, "x", wrappers.DotGet(cfg, "name.first", "x"))

	assert.True(t, wrappers.DotHas(cfg, "db.host", "cache.ttl"))
	assert.False(t, wrappers.DotHas(cfg, "db.host", "db.user"))
	assert.False(t, wrappers.DotHas(cfg))
}

func TestDotSetForget(t *testing.T) {
	cfg := nestedConfig()
	assert.Same(t, cfg, wrappers.DotSet(cfg, "db.user", "app"))
	assert.Equal(t, "app", wrappers.DotGet(cfg, "db.user"))

	wrappers.DotSet(cfg, "cache.size", 10)
	assert.Equal(t, 10, wrappers.DotGet(cfg, "cache.size"))

	wrappers.DotSet(cfg, "name.first", "x")
	assert.Equal(t, "x", wrappers.DotGet(cfg, "name.first"), "a scalar on the path is replaced")

	wrappers.DotForget(cfg, "db.port")
	assert.False(t, wrappers.DotHas(cfg, "db.port"))
	assert.True(t, wrappers.DotHas(cfg, "db"))
	wrappers.DotForget(cfg, "missing.key")
}

func TestDeepMerge(t *testing.T) {
	dst := nestedConfig()
	src := wrappers.NewDict(map[string]any{
		"db":    map[string]any{"port": 6543, "user": "u"},
		"cache": map[string]any{"ttl": 5},
		"name":  map[string]any{"short": "a"},
	})
	wrappers.DeepMerge(dst, src)

	assert.Equal(t, "localhost", wrappers.DotGet(dst, "db.host"))
	assert.Equal(t, 6543, wrappers.DotGet(dst, "db.port"))
	assert.Equal(t, "u", wrappers.DotGet(dst, "db.user"))
	assert.Equal(t, 5, wrappers.DotGet(dst, "cache.ttl"))
	assert.Equal(t, "a", wrappers.DotGet(dst, "name.short"))
	assert.Equal(t, []string{"cache.ttl", "db.host", "db.port", "db.user", "name.short"}, wrappers.SortedKeys(wrappers.Dot(dst)))

	assert.Same(t, dst, wrappers.DeepMerge(dst, nil))
}
