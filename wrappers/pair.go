package wrappers

import "fmt"

// Pair holds two values of possibly different types. It is the element
// type of [Dict.Items], [Enumerate] and the package-level [Zip].
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair returns Pair{First: a, Second: b}.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Unpack returns both values, for multiple assignment.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// String returns "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// pairValues lets Tuple.ToDict read a Pair of any type parameters.
func (p Pair[A, B]) pairValues() (any, any) {
	return p.First, p.Second
}

type anyPair interface {
	pairValues() (any, any)
}
