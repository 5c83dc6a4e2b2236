package textutil

import "github.com/cockroachdb/errors"

// Sentinel errors returned by textutil helpers.
var (
	// ErrInvalidFlag is returned by [ParseFlags] for an unknown letter.
	ErrInvalidFlag = errors.New("textutil: invalid regex flag")

	// ErrUnsupportedFlag is returned by [ParseFlags] for a known letter
	// that RE2 cannot honour (verbose and debug modes).
	ErrUnsupportedFlag = errors.New("textutil: regex flag not supported by RE2")

	// ErrFlagsWithoutSeparator is returned by [Multisplit] when flags are
	// given but no separator is.
	ErrFlagsWithoutSeparator = errors.New("textutil: flags require at least one separator")

	// ErrNegativeMaxSplit is returned by [Multisplit] for a negative limit.
	ErrNegativeMaxSplit = errors.New("textutil: maxsplit must be a positive number or 0")

	// ErrMismatchedSubstitutions is returned by [Multireplace] when the
	// number of substitutions is neither 1 nor the number of patterns.
	ErrMismatchedSubstitutions = errors.New("textutil: need exactly one substitution per pattern or only one substitution")

	// ErrMismatchedLengths is returned by [MakeTrans] when from and to
	// hold a different number of runes.
	ErrMismatchedLengths = errors.New("textutil: translation arguments must have the same length")

	// ErrInvalidTemplate is returned by [Format] for malformed braces or
	// field names.
	ErrInvalidTemplate = errors.New("textutil: invalid template")

	// ErrMissingArgument is returned by [Format] when a field refers to an
	// argument, key, index or field that does not exist.
	ErrMissingArgument = errors.New("textutil: missing template argument")

	// ErrInvalidFormat is returned by [Format] for a format spec that is
	// malformed or does not apply to the value.
	ErrInvalidFormat = errors.New("textutil: invalid format spec")

	// ErrNotBoolean is returned by [ParseBool].
	ErrNotBoolean = errors.New("textutil: cannot be converted to a boolean")
)
