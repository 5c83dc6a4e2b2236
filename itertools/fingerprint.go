package itertools

import (
	"fmt"
	"reflect"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a BLAKE2b-256 digest of the Go-syntax representation
// of v, prefixed by its dynamic type.
//
// Two values with the same type and the same %#v output share a
// fingerprint. Pointers are fingerprinted by address, not by target.
// The result is an array and can be used as a map key.
func Fingerprint(v any) [blake2b.Size256]byte {
	return blake2b.Sum256(fmt.Appendf(nil, "%T:%#v", v, v))
}

// HashKey returns k itself when it can be used as a map key, and its
// [Fingerprint] otherwise.
func HashKey(k any) any {
	if k == nil {
		return nil
	}
	if reflect.ValueOf(k).Comparable() {
		return k
	}
	return Fingerprint(k)
}
