// Package itertools provides standalone, lazy helper functions over Go 1.23
// range-over-func iterators ([iter.Seq] and [iter.Seq2]).
//
// These are the building blocks behind the wrappers.Iterable type. Use them
// directly when you want the behaviour without wrapping anything:
//
//	chunks, _ := itertools.Chunks(slices.Values([]int{0, 1, 2, 3, 4}), 2)
//	for c := range chunks {
//	    fmt.Println(c) // [0 1] [2 3] [4]
//	}
//
// # Laziness
//
// Every function that returns a sequence is lazy: nothing is read from the
// source until the result is ranged over, and reading stops as soon as the
// consumer stops. The exceptions are documented on the function ([GroupBy]
// sorts, [Lasts] and negative [AtIndex] keep a bounded buffer).
//
// # Consumption
//
// Whether a source can be ranged over twice depends on the source.
// [slices.Values] can; a sequence built on a channel or a pull iterator
// cannot. Functions never re-read their input unless stated ([Cycle] and
// [Repeat] replay from an internal copy instead).
//
// # Errors
//
// Argument errors are reported eagerly, before any item is read. Compare
// them with errors.Is against the sentinels in errors.go.
package itertools
