package itertools

import "github.com/cockroachdb/errors"

// Sentinel errors returned by the helpers in this package.
var (
	// ErrIndexOutOfRange is returned by [AtIndex] when the sequence is
	// shorter than the requested position.
	ErrIndexOutOfRange = errors.New("itertools: index out of range")

	// ErrInvalidIndex is returned when a slice boundary is negative.
	ErrInvalidIndex = errors.New("itertools: slice boundaries must be positive or 0")

	// ErrInvalidStep is returned by [Slice] when step is lower than 1.
	ErrInvalidStep = errors.New("itertools: step must be greater than 0")

	// ErrInvalidSize is returned when a chunk, window or item count is out
	// of range.
	ErrInvalidSize = errors.New("itertools: invalid size")

	// ErrNoMatch is returned by [FirstTrue] when no item satisfies the
	// predicate.
	ErrNoMatch = errors.New("itertools: no item matches the given condition")

	// ErrEmpty is returned when an operation needs at least one item.
	ErrEmpty = errors.New("itertools: empty sequence")
)
