package wrappers

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/google/shlex"
	"github.com/mozillazg/go-slugify"
	"github.com/mozillazg/go-unidecode"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/hasbyte1/go-ww/textutil"
)

// String is an immutable string with chainable methods and a few
// construction-time defaults (see [Options]).
//
// Methods that produce text return a String carrying the same options;
// methods that produce several strings return an [Iterable] or a [List] of
// String. The zero value is the empty string with [DefaultOptions].
type String struct {
	text string
	opts *Options
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewString wraps text with the default options.
func NewString(text string) String {
	return String{text: text, opts: defaultOptions}
}

// NewStringWith wraps text with opts. It returns [ErrInvalidOptions] when
// opts does not validate.
func NewStringWith(text string, opts Options) (String, error) {
	if err := opts.Validate(); err != nil {
		return String{}, err
	}
	return String{text: text, opts: &opts}, nil
}

// Dedented wraps text after removing its common indentation, so that
// multi-line literals can follow the indentation of the code:
//
//	msg := wrappers.Dedented(`
//	    Dear {name},
//	      thanks.
//	`)
func Dedented(text string) String {
	return NewString(textutil.Dedent(text))
}

// Fmt renders template with the named vars, using the default formatter.
func Fmt(template string, vars map[string]any) (String, error) {
	return NewString(template).Format(nil, vars)
}

func (s String) options() *Options {
	if s.opts == nil {
		return defaultOptions
	}
	return s.opts
}

func (s String) with(text string) String {
	return String{text: text, opts: s.opts}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Unwrap returns the underlying string.
func (s String) Unwrap() string { return s.text }

// String implements [fmt.Stringer].
func (s String) String() string { return s.text }

// Repr returns the Go-quoted form of the string.
func (s String) Repr() string { return strconv.Quote(s.text) }

// Len returns the number of runes.
func (s String) Len() int { return utf8.RuneCountInString(s.text) }

// Options returns a copy of the construction-time options.
func (s String) Options() Options { return *s.options() }

// At returns the rune at index as a String. A negative index counts from
// the end.
func (s String) At(index int) (String, error) {
	runes := []rune(s.text)
	i, ok := normIndex(index, len(runes))
	if !ok {
		return String{}, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", index, len(runes))
	}
	return s.with(string(runes[i])), nil
}

// Slice returns the runes in [start, end). Negative bounds count from the
// end and out-of-range bounds are clamped, as with Python slices.
func (s String) Slice(start, end int) String {
	runes := []rune(s.text)
	n := len(runes)
	clamp := func(i int) int {
		if i < 0 {
			i += n
		}
		return max(0, min(i, n))
	}
	start, end = clamp(start), clamp(end)
	if start >= end {
		return s.with("")
	}
	return s.with(string(runes[start:end]))
}

// Index returns the rune index of the first occurrence of sub, or -1.
func (s String) Index(sub string) int {
	i := strings.Index(s.text, sub)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(s.text[:i])
}

// Count returns the number of non-overlapping occurrences of sub.
func (s String) Count(sub string) int { return strings.Count(s.text, sub) }

// Contains reports whether sub is within s.
func (s String) Contains(sub string) bool { return strings.Contains(s.text, sub) }

// HasPrefix reports whether s begins with prefix.
func (s String) HasPrefix(prefix string) bool { return strings.HasPrefix(s.text, prefix) }

// HasSuffix reports whether s ends with suffix.
func (s String) HasSuffix(suffix string) bool { return strings.HasSuffix(s.text, suffix) }

// ─────────────────────────────────────────────────────────────────────────────
// Transformations
// ─────────────────────────────────────────────────────────────────────────────

// Upper maps s to upper case using the configured language.
func (s String) Upper() String {
	return s.with(cases.Upper(s.options().Language).String(s.text))
}

// Lower maps s to lower case using the configured language.
func (s String) Lower() String {
	return s.with(cases.Lower(s.options().Language).String(s.text))
}

// Title upper-cases the first letter of every word and lower-cases the
// rest.
func (s String) Title() String {
	return s.with(cases.Title(s.options().Language).String(s.text))
}

// Casefold returns the case-folded form of s, for caseless matching.
func (s String) Casefold() String {
	return s.with(cases.Fold().String(s.text))
}

// Normalize returns s in the given Unicode normalization form.
func (s String) Normalize(form norm.Form) String {
	return s.with(form.String(s.text))
}

// TrimSpace removes leading and trailing white space.
func (s String) TrimSpace() String { return s.with(strings.TrimSpace(s.text)) }

// Trim removes leading and trailing runes contained in cutset.
func (s String) Trim(cutset string) String { return s.with(strings.Trim(s.text, cutset)) }

// Repeat returns n copies of s. A negative n gives the empty string.
func (s String) Repeat(n int) String {
	if n <= 0 {
		return s.with("")
	}
	return s.with(strings.Repeat(s.text, n))
}

// Add returns s followed by the default rendering of other.
func (s String) Add(other any) String {
	o, _ := textutil.FormatValue(other, textutil.DefaultJoinTemplate)
	return s.with(s.text + o)
}

// Translate maps every rune through table, see [textutil.MakeTrans].
func (s String) Translate(table textutil.Table) String {
	return s.with(textutil.Translate(s.text, table))
}

// Dedent removes the whitespace margin common to every line.
func (s String) Dedent() String { return s.with(textutil.Dedent(s.text)) }

// Indent prefixes every non-empty line.
func (s String) Indent(prefix string) String { return s.with(textutil.Indent(s.text, prefix)) }

// Wrap re-flows the text into lines of at most width bytes.
func (s String) Wrap(width int) String { return s.with(textutil.Wrap(s.text, width)) }

// Slug returns a lower-case, dash-separated ASCII form of s suitable for
// URLs.
func (s String) Slug() String { return s.with(slugify.Slugify(s.text)) }

// ASCII transliterates s to its closest ASCII form.
func (s String) ASCII() String { return s.with(unidecode.Unidecode(s.text)) }

// ─────────────────────────────────────────────────────────────────────────────
// Split / Replace
// ─────────────────────────────────────────────────────────────────────────────

// Split splits s on every separator, each a regular expression, applying
// the configured flags. Without separators it splits on white space.
//
// Errors are recorded on the returned Iterable.
//
//	NewString("a,b;c/d").Split(",", ";", "/") // → a b c d
func (s String) Split(seps ...string) *Iterable[String] {
	return s.SplitWith(textutil.SplitOptions{}, seps...)
}

// SplitWith is [String.Split] with a split limit and explicit flags. When
// opts.Flags is empty and seps is not, the configured flags apply.
func (s String) SplitWith(opts textutil.SplitOptions, seps ...string) *Iterable[String] {
	if opts.Flags == "" && len(seps) > 0 {
		opts.Flags = s.options().Flags
	}
	chunks, err := textutil.Multisplit(s.text, seps, opts)
	if err != nil {
		return failed[String](err)
	}
	return IterableFrom(s.wrapAll(chunks))
}

// Fields splits s on runs of white space.
func (s String) Fields() *Iterable[String] {
	return IterableFrom(s.wrapAll(strings.Fields(s.text)))
}

// ShellSplit splits s the way a POSIX shell splits a command line,
// honouring quotes and escapes.
func (s String) ShellSplit() (*List[String], error) {
	words, err := shlex.Split(s.text)
	if err != nil {
		return nil, errors.Wrapf(err, "shell split %q", s.text)
	}
	return ListFrom(s.wrapAll(words)), nil
}

func (s String) wrapAll(chunks []string) []String {
	out := make([]String, len(chunks))
	for i, c := range chunks {
		out[i] = s.with(c)
	}
	return out
}

// Replace replaces every match of the pattern regex with sub, which may
// refer to groups as $1 or ${name}.
func (s String) Replace(pattern, sub string) (String, error) {
	return s.ReplaceWith([]string{pattern}, []string{sub}, textutil.ReplaceOptions{})
}

// ReplaceWith replaces every match of every pattern. subs holds one
// substitution per pattern, or a single one for all of them.
func (s String) ReplaceWith(patterns, subs []string, opts textutil.ReplaceOptions) (String, error) {
	if opts.Flags == "" {
		opts.Flags = s.options().Flags
	}
	out, err := textutil.Multireplace(s.text, patterns, subs, opts)
	if err != nil {
		return String{}, err
	}
	return s.with(out), nil
}

// ReplaceFunc replaces every match of every pattern with fn applied to the
// matched text.
func (s String) ReplaceFunc(patterns []string, fn func(String) String, opts textutil.ReplaceOptions) (String, error) {
	if opts.Flags == "" {
		opts.Flags = s.options().Flags
	}
	out, err := textutil.MultireplaceFunc(s.text, patterns, func(m string) string {
		return fn(s.with(m)).text
	}, opts)
	if err != nil {
		return String{}, err
	}
	return s.with(out), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Join / Format
// ─────────────────────────────────────────────────────────────────────────────

// Join renders every item with the configured join template, then joins
// them with s as the separator:
//
//	NewString(";").Join(0, 1, 2) // → "0;1;2"
func (s String) Join(items ...any) (String, error) {
	return s.JoinFormat(items, s.options().JoinTemplate, nil)
}

// JoinFormat is [String.Join] with an explicit template and per-item
// formatter. A nil formatter means [textutil.FormatValue].
func (s String) JoinFormat(items []any, template string, formatter textutil.Formatter) (String, error) {
	out, err := textutil.Join(s.text, items, template, formatter)
	if err != nil {
		return String{}, err
	}
	return s.with(out), nil
}

// Format renders s as a brace template, see [textutil.Format].
//
// It returns [ErrMissingDependency] when the options carry no formatter.
func (s String) Format(args []any, kwargs map[string]any) (String, error) {
	f := s.options().Formatter
	if f == nil {
		return String{}, errors.WithHint(
			errors.Wrap(ErrMissingDependency, "no formatter configured"),
			"set Options.Formatter, for example to textutil.Format",
		)
	}
	out, err := f(s.text, args, kwargs)
	if err != nil {
		return String{}, err
	}
	return s.with(out), nil
}

// ToBool converts the usual spellings of a boolean (1/0, true/false,
// on/off, yes/no, empty), ignoring case. When s is none of them, def[0] is
// returned if given, [ErrNotBoolean] otherwise.
func (s String) ToBool(def ...bool) (bool, error) {
	b, err := textutil.ParseBool(s.text)
	if err != nil && len(def) > 0 {
		return def[0], nil
	}
	return b, err
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison & debugging
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports whether both strings hold the same text. Options are
// ignored.
func (s String) Equal(other String) bool { return s.text == other.text }

// EqualFold reports whether both strings are equal under case folding.
func (s String) EqualFold(other String) bool {
	f := cases.Fold()
	return f.String(s.text) == f.String(other.text)
}

// Pretty returns the pretty-printed text.
func (s String) Pretty() string { return prettyString(s.text) }

// Dump writes the pretty form to w (os.Stdout when nil) and returns s.
func (s String) Dump(w io.Writer) String {
	dump(w, s.text)
	return s
}

// Log emits a debug record with the text and returns s.
func (s String) Log(logger *zap.Logger, msg string) String {
	logValue(logger, msg, "String", s.Len(), s.text)
	return s
}
