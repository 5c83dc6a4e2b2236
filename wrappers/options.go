package wrappers

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/text/language"

	"github.com/hasbyte1/go-ww/textutil"
)

// Formatter renders a brace template. [textutil.Format] is the default.
type Formatter func(template string, args []any, kwargs map[string]any) (string, error)

// Options configures a [String] at construction time. The zero value of a
// field means "no default": use [DefaultOptions] as a starting point.
type Options struct {
	// JoinTemplate renders each item in [String.Join]. Defaults to "{}".
	JoinTemplate string

	// Flags are the regex flag letters applied by Split and Replace when
	// the call does not set its own, see [textutil.ParseFlags].
	Flags string

	// Language drives Upper, Lower and Title. Defaults to language.Und.
	Language language.Tag

	// Detector guesses the charset of raw bytes. [FromBytesWith] uses it
	// to suggest an encoding when called without one; when nil, that
	// error is marked [ErrMissingDependency]. Defaults to [HTMLDetector].
	Detector Detector

	// Formatter renders templates in [String.Format] and [Fmt]. Defaults
	// to [textutil.Format].
	Formatter Formatter
}

// DefaultOptions returns the options used by [NewString].
func DefaultOptions() Options {
	return Options{
		JoinTemplate: textutil.DefaultJoinTemplate,
		Language:     language.Und,
		Detector:     HTMLDetector{},
		Formatter:    textutil.Format,
	}
}

// Validate checks that the options are usable.
func (o Options) Validate() error {
	if o.JoinTemplate == "" {
		return errors.WithHint(
			errors.Wrap(ErrInvalidOptions, "JoinTemplate is empty"),
			`use "{}" to render items with their default form`,
		)
	}
	if _, err := textutil.ParseFlags(o.Flags); err != nil {
		return errors.Wrapf(errors.Mark(err, ErrInvalidOptions), "Flags %q", o.Flags)
	}
	return nil
}

var defaultOptions = func() *Options {
	o := DefaultOptions()
	return &o
}()
