// Package ww is the short import surface of the wrappers: one-letter
// constructors meant for interactive code, scripts and tests.
//
//	import "github.com/hasbyte1/go-ww/ww"
//
//	ww.L(1, 2).Append(3).Join(",")              // → "1,2,3"
//	ww.S("a,b;c").Split(",", ";").Count()       // → 3
//	ww.D(map[string]int{"a": 1}).Plus(defaults)  // additive merge
//	ww.G([]int{0, 1, 2, 3}).Slice(1, 3, 1)     // lazy → 1 2
//
// Every constructor returns a type of package wrappers; see there for the
// methods.
package ww
