package wrappers

import (
	"github.com/cockroachdb/errors"

	"github.com/hasbyte1/go-ww/itertools"
	"github.com/hasbyte1/go-ww/textutil"
)

// Sentinel errors returned by the wrappers.
var (
	// ErrTeeCalled is recorded on an Iterable after [Iterable.Tee]: the
	// copies own the remaining items.
	ErrTeeCalled = errors.New("wrappers: cannot iterate after Tee has been called")

	// ErrValueNotFound is returned by Index and Remove when no item
	// matches.
	ErrValueNotFound = errors.New("wrappers: value not found")

	// ErrKeyNotFound is returned by [Dict.Subset] and recorded by
	// [Dict.ISubset] for a key the Dict does not hold.
	ErrKeyNotFound = errors.New("wrappers: key not found")

	// ErrNotIterable is returned by [Tuple.ToDict] for an element that is
	// neither a Pair nor a slice or array.
	ErrNotIterable = errors.New("wrappers: element is not iterable")

	// ErrNotPair is returned by [Tuple.ToDict] for a slice or array element
	// that does not hold exactly 2 items.
	ErrNotPair = errors.New("wrappers: element does not hold 2 items")

	// ErrUnhashableKey is returned by [Tuple.ToDict] when a key cannot be
	// used as a map key.
	ErrUnhashableKey = errors.New("wrappers: unhashable key")

	// ErrMissingDependency is returned by a feature whose pluggable
	// dependency is not configured.
	ErrMissingDependency = errors.New("wrappers: missing optional dependency")

	// ErrEncodingRequired is returned by [FromBytes] when no encoding is
	// given.
	ErrEncodingRequired = errors.New("wrappers: encoding is required")

	// ErrUnknownEncoding is returned for an encoding name that cannot be
	// resolved.
	ErrUnknownEncoding = errors.New("wrappers: unknown encoding")

	// ErrDecode is returned by [FromBytes] in strict mode when the bytes
	// are not valid in the given encoding.
	ErrDecode = errors.New("wrappers: cannot decode bytes")

	// ErrEncode is returned by [String.Encode] for text the encoding
	// cannot represent.
	ErrEncode = errors.New("wrappers: cannot encode text")

	// ErrInvalidOptions is returned by [Options.Validate].
	ErrInvalidOptions = errors.New("wrappers: invalid options")
)

// Errors of the helper packages, re-exported so callers match one package.
var (
	ErrIndexOutOfRange = itertools.ErrIndexOutOfRange
	ErrInvalidIndex    = itertools.ErrInvalidIndex
	ErrInvalidStep     = itertools.ErrInvalidStep
	ErrInvalidSize     = itertools.ErrInvalidSize
	ErrNoMatch         = itertools.ErrNoMatch
	ErrEmpty           = itertools.ErrEmpty

	ErrInvalidFlag             = textutil.ErrInvalidFlag
	ErrUnsupportedFlag         = textutil.ErrUnsupportedFlag
	ErrFlagsWithoutSeparator   = textutil.ErrFlagsWithoutSeparator
	ErrNegativeMaxSplit        = textutil.ErrNegativeMaxSplit
	ErrMismatchedSubstitutions = textutil.ErrMismatchedSubstitutions
	ErrMismatchedLengths       = textutil.ErrMismatchedLengths
	ErrInvalidTemplate         = textutil.ErrInvalidTemplate
	ErrMissingArgument         = textutil.ErrMissingArgument
	ErrInvalidFormat           = textutil.ErrInvalidFormat
	ErrNotBoolean              = textutil.ErrNotBoolean
)
