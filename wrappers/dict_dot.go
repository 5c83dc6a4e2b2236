package wrappers

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for nested dicts
//
// These functions read, write and test values in a Dict[string, any] whose
// values may themselves be a map[string]any or a *Dict[string, any], using
// dot-separated key paths.
//
//	cfg := NewDict(map[string]any{
//	    "db": map[string]any{"host": "localhost", "port": 5432},
//	})
//
//	DotGet(cfg, "db.host")  → "localhost"
//	DotSet(cfg, "db.user", "app")
//	DotHas(cfg, "db.port")  → true
//	DotForget(cfg, "db.port")
// ─────────────────────────────────────────────────────────────────────────────

// nested returns the map behind v when v is a nested level.
func nested(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case *Dict[string, any]:
		if t == nil {
			return nil, false
		}
		return t.m, true
	}
	return nil, false
}

// Dot flattens a nested dict into a single-level Dict with dot-notation
// keys.
//
//	Dot(NewDict(map[string]any{"a": map[string]any{"b": 1}}))
//	// → {"a.b": 1}
func Dot(d *Dict[string, any]) *Dict[string, any] {
	out := make(map[string]any)
	dotFlatten("", d.m, out)
	return &Dict[string, any]{m: out}
}

func dotFlatten(prefix string, m, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if inner, ok := nested(v); ok && len(inner) > 0 {
			dotFlatten(key, inner, out)
		} else {
			out[key] = v
		}
	}
}

// Undot expands a flat dot-notation dict into nested map[string]any
// levels. It is the inverse of [Dot].
func Undot(d *Dict[string, any]) *Dict[string, any] {
	out := &Dict[string, any]{m: make(map[string]any)}
	for _, key := range SortedKeys(d) {
		DotSet(out, key, d.m[key])
	}
	return out
}

// DotGet returns the value at the dot-notation key, or def[0] (nil when
// not given) if the path does not exist.
func DotGet(d *Dict[string, any], key string, def ...any) any {
	var fallback any
	if len(def) > 0 {
		fallback = def[0]
	}
	segments := strings.Split(key, ".")
	current := d.m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return fallback
		}
		if i == len(segments)-1 {
			return val
		}
		if current, ok = nested(val); !ok {
			return fallback
		}
	}
	return fallback
}

// DotSet writes value at the dot-notation key, creating intermediate
// levels as needed, and returns d. A non-map value on the path is
// replaced by a new level.
func DotSet(d *Dict[string, any], key string, value any) *Dict[string, any] {
	dotSet(d.m, key, value)
	return d
}

func dotSet(m map[string]any, key string, value any) {
	seg, rest, found := strings.Cut(key, ".")
	if !found {
		m[key] = value
		return
	}
	inner, ok := nested(m[seg])
	if !ok {
		inner = make(map[string]any)
		m[seg] = inner
	}
	dotSet(inner, rest, value)
}

// DotHas reports whether every dot-notation key exists in d. It is false
// when no key is given.
func DotHas(d *Dict[string, any], keys ...string) bool {
	if len(keys) == 0 {
		return false
	}
	for _, key := range keys {
		if !hasPath(d.m, strings.Split(key, ".")) {
			return false
		}
	}
	return true
}

func hasPath(m map[string]any, segments []string) bool {
	val, ok := m[segments[0]]
	if !ok {
		return false
	}
	if len(segments) == 1 {
		return true
	}
	inner, ok := nested(val)
	if !ok {
		return false
	}
	return hasPath(inner, segments[1:])
}

// DotForget removes the dot-notation key from d and returns d. Emptied
// intermediate levels are kept.
func DotForget(d *Dict[string, any], key string) *Dict[string, any] {
	dotForget(d.m, key)
	return d
}

func dotForget(m map[string]any, key string) {
	seg, rest, found := strings.Cut(key, ".")
	if !found {
		delete(m, key)
		return
	}
	if inner, ok := nested(m[seg]); ok {
		dotForget(inner, rest)
	}
}

// DeepMerge merges src into dst and returns dst. Values in src overwrite
// those of dst, except when both sides hold a nested level: these are
// merged recursively.
func DeepMerge(dst, src *Dict[string, any]) *Dict[string, any] {
	if src != nil {
		deepMerge(dst.m, src.m)
	}
	return dst
}

func deepMerge(dst, src map[string]any) {
	for k, srcVal := range src {
		if dstMap, ok := nested(dst[k]); ok {
			if srcMap, ok := nested(srcVal); ok {
				deepMerge(dstMap, srcMap)
				continue
			}
		}
		dst[k] = srcVal
	}
}
