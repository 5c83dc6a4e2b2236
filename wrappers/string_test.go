package wrappers_test

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/hasbyte1/go-ww/textutil"
	"github.com/hasbyte1/go-ww/wrappers"
)

func unwrapAll(strs []wrappers.String) []string {
	out := make([]string, len(strs))
	for i, s := range strs {
		out[i] = s.Unwrap()
	}
	return out
}

func withOptions(t *testing.T, text string, edit func(*wrappers.Options)) wrappers.String {
	t.Helper()
	opts := wrappers.DefaultOptions()
	edit(&opts)
	s, err := wrappers.NewStringWith(text, opts)
	require.NoError(t, err)
	return s
}

// ─────────────────────────────────────────────────────────────────────────────
// Construction & options
// ─────────────────────────────────────────────────────────────────────────────

func TestStringZeroValue(t *testing.T) {
	var s wrappers.String
	assert.Equal(t, "", s.Unwrap())
	assert.Equal(t, "{}", s.Options().JoinTemplate)
	assert.Equal(t, "A", s.Add("a").Upper().Unwrap())
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, wrappers.DefaultOptions().Validate())

	_, err := wrappers.NewStringWith("x", wrappers.Options{})
	assert.ErrorIs(t, err, wrappers.ErrInvalidOptions)
	assert.NotEmpty(t, errors.GetAllHints(err))

	opts := wrappers.DefaultOptions()
	opts.Flags = "iz"
	_, err = wrappers.NewStringWith("x", opts)
	assert.ErrorIs(t, err, wrappers.ErrInvalidOptions)
	assert.ErrorIs(t, err, wrappers.ErrInvalidFlag)
}

func TestDedentedAndFmt(t *testing.T) {
	assert.Equal(t, "\na\n  b\n", wrappers.Dedented("\n    a\n      b\n").Unwrap())

	s, err := wrappers.Fmt("{name} is {age:d}", map[string]any{"name": "Ann", "age": 3})
	require.NoError(t, err)
	assert.Equal(t, "Ann is 3", s.Unwrap())
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestStringAccessors(t *testing.T) {
	s := wrappers.NewString("héllo")

	assert.Equal(t, 5, s.Len())
	assert.Equal(t, "héllo", s.String())
	assert.Equal(t, `"héllo"`, s.Repr())

	r, err := s.At(-1)
	require.NoError(t, err)
	assert.Equal(t, "o", r.Unwrap())
	r, err = s.At(1)
	require.NoError(t, err)
	assert.Equal(t, "é", r.Unwrap())
	_, err = s.At(5)
	assert.ErrorIs(t, err, wrappers.ErrIndexOutOfRange)

	assert.Equal(t, "él", s.Slice(1, 3).Unwrap())
	assert.Equal(t, "llo", s.Slice(-3, 100).Unwrap())
	assert.Equal(t, "", s.Slice(3, 1).Unwrap())

	assert.Equal(t, 2, s.Index("l"))
	assert.Equal(t, -1, s.Index("z"))
	assert.Equal(t, 2, s.Count("l"))
	assert.True(t, s.Contains("éll"))
	assert.True(t, s.HasPrefix("hé"))
	assert.True(t, s.HasSuffix("lo"))
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformations
// ─────────────────────────────────────────────────────────────────────────────

func TestStringCase(t *testing.T) {
	s := wrappers.NewString("hello wORLD")
	assert.Equal(t, "HELLO WORLD", s.Upper().Unwrap())
	assert.Equal(t, "hello world", s.Lower().Unwrap())
	assert.Equal(t, "Hello World", s.Title().Unwrap())
	assert.Equal(t, "strasse", wrappers.NewString("Straße").Casefold().Unwrap())
	assert.True(t, wrappers.NewString("STRASSE").EqualFold(wrappers.NewString("straße")))

	turkish := withOptions(t, "i", func(o *wrappers.Options) { o.Language = language.Turkish })
	assert.Equal(t, "İ", turkish.Upper().Unwrap())
}

func TestStringNormalize(t *testing.T) {
	s := wrappers.NewString("\u00e9")
	assert.Equal(t, "e\u0301", s.Normalize(norm.NFD).Unwrap())
	assert.Equal(t, "\u00e9", s.Normalize(norm.NFD).Normalize(norm.NFC).Unwrap())
}

func TestStringTransformations(t *testing.T) {
	assert.Equal(t, "a b", wrappers.NewString("  a b\n").TrimSpace().Unwrap())
	assert.Equal(t, "a", wrappers.NewString("--a-").Trim("-").Unwrap())
	assert.Equal(t, "abab", wrappers.NewString("ab").Repeat(2).Unwrap())
	assert.Equal(t, "", wrappers.NewString("ab").Repeat(-1).Unwrap())
	assert.Equal(t, "n=1.5", wrappers.NewString("n=").Add(1.5).Unwrap())

	table, err := textutil.MakeTrans("abc", "xyz", "d")
	require.NoError(t, err)
	assert.Equal(t, "xyz", wrappers.NewString("abcd").Translate(table).Unwrap())

	assert.Equal(t, "a\n  b", wrappers.NewString("  a\n    b").Dedent().Unwrap())
	assert.Equal(t, "> a\n> b", wrappers.NewString("a\nb").Indent("> ").Unwrap())
	assert.Equal(t, "aa bb\ncc", wrappers.NewString("aa bb cc").Wrap(5).Unwrap())
	assert.Equal(t, "hello-world", wrappers.NewString("Hello World!").Slug().Unwrap())
	assert.Equal(t, "cafe", wrappers.NewString("café").ASCII().Unwrap())
}

func TestStringKeepsOptions(t *testing.T) {
	s := withOptions(t, "a b", func(o *wrappers.Options) { o.JoinTemplate = "[{}]" })
	up := s.Upper().TrimSpace()
	assert.Equal(t, "[{}]", up.Options().JoinTemplate)

	words := s.Split().ToSlice()
	require.Len(t, words, 2)
	assert.Equal(t, "[{}]", words[1].Options().JoinTemplate)
}

// ─────────────────────────────────────────────────────────────────────────────
// Split & replace
// ─────────────────────────────────────────────────────────────────────────────

func TestStringSplit(t *testing.T) {
	got := wrappers.NewString("a,b;c/d").Split(",", ";", "/").ToSlice()
	assert.Equal(t, []string{"a", "b", "c", "d"}, unwrapAll(got))

	got = wrappers.NewString(" a  b\tc ").Split().ToSlice()
	assert.Equal(t, []string{"a", "b", "c"}, unwrapAll(got))

	got = wrappers.NewString("a b c").SplitWith(textutil.SplitOptions{MaxSplit: 1}).ToSlice()
	assert.Equal(t, []string{"a", "b c"}, unwrapAll(got))

	got = wrappers.NewString("x y").Fields().ToSlice()
	assert.Equal(t, []string{"x", "y"}, unwrapAll(got))
}

func TestStringSplitFlags(t *testing.T) {
	s := withOptions(t, "aXbxc", func(o *wrappers.Options) { o.Flags = "i" })
	assert.Equal(t, []string{"a", "b", "c"}, unwrapAll(s.Split("x").ToSlice()))

	plain := wrappers.NewString("aXbxc")
	assert.Equal(t, []string{"aXb", "c"}, unwrapAll(plain.Split("x").ToSlice()))
}

func TestStringSplitErrors(t *testing.T) {
	g := wrappers.NewString("a b").SplitWith(textutil.SplitOptions{Flags: "i"})
	assert.Empty(t, g.ToSlice())
	assert.ErrorIs(t, g.Err(), wrappers.ErrFlagsWithoutSeparator)

	g = wrappers.NewString("a b").SplitWith(textutil.SplitOptions{MaxSplit: -1})
	assert.ErrorIs(t, g.Err(), wrappers.ErrNegativeMaxSplit)
}

func TestStringShellSplit(t *testing.T) {
	l, err := wrappers.NewString(`cp "my file" 'b c' d\ e`).ShellSplit()
	require.NoError(t, err)
	assert.Equal(t, []string{"cp", "my file", "b c", "d e"}, unwrapAll(l.All()))

	_, err = wrappers.NewString(`echo "open`).ShellSplit()
	assert.Error(t, err)
}

func TestStringReplace(t *testing.T) {
	s, err := wrappers.NewString("2024-01-02").Replace(`(\d+)-(\d+)-(\d+)`, "$3/$2/$1")
	require.NoError(t, err)
	assert.Equal(t, "02/01/2024", s.Unwrap())

	s, err = wrappers.NewString("abc").ReplaceWith([]string{"a", "b"}, []string{"1", "2"}, textutil.ReplaceOptions{})
	require.NoError(t, err)
	assert.Equal(t, "12c", s.Unwrap())

	s, err = wrappers.NewString("a,b;c").ReplaceWith([]string{",", ";"}, []string{"-"}, textutil.ReplaceOptions{MaxReplace: 1})
	require.NoError(t, err)
	assert.Equal(t, "a-b;c", s.Unwrap())

	_, err = wrappers.NewString("abc").ReplaceWith([]string{"a", "b"}, []string{"1", "2", "3"}, textutil.ReplaceOptions{})
	assert.ErrorIs(t, err, wrappers.ErrMismatchedSubstitutions)

	s, err = wrappers.NewString("a1b22").ReplaceFunc([]string{`\d+`}, func(m wrappers.String) wrappers.String {
		return m.Repeat(2)
	}, textutil.ReplaceOptions{})
	require.NoError(t, err)
	assert.Equal(t, "a11b2222", s.Unwrap())

	insensitive := withOptions(t, "aA", func(o *wrappers.Options) { o.Flags = "i" })
	s, err = insensitive.Replace("a", "x")
	require.NoError(t, err)
	assert.Equal(t, "xx", s.Unwrap())
}

// ─────────────────────────────────────────────────────────────────────────────
// Join, format & bool
// ─────────────────────────────────────────────────────────────────────────────

func TestStringJoin(t *testing.T) {
	s, err := wrappers.NewString(";").Join(0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "0;1;2", s.Unwrap())

	sep := withOptions(t, ",", func(o *wrappers.Options) { o.JoinTemplate = "[{}]" })
	s, err = sep.Join("a", 1.0)
	require.NoError(t, err)
	assert.Equal(t, "[a],[1.0]", s.Unwrap())

	s, err = wrappers.NewString(" ").JoinFormat([]any{1, 2}, "{:03d}", nil)
	require.NoError(t, err)
	assert.Equal(t, "001 002", s.Unwrap())

	_, err = wrappers.NewString(" ").JoinFormat([]any{"x"}, "{:d}", nil)
	assert.ErrorIs(t, err, wrappers.ErrInvalidFormat)
}

func TestStringFormat(t *testing.T) {
	s, err := wrappers.NewString("{0}-{1}").Format([]any{"a", 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, "a-2", s.Unwrap())

	_, err = wrappers.NewString("{missing}").Format(nil, nil)
	assert.ErrorIs(t, err, wrappers.ErrMissingArgument)

	custom := withOptions(t, "ignored", func(o *wrappers.Options) {
		o.Formatter = func(string, []any, map[string]any) (string, error) { return "custom", nil }
	})
	s, err = custom.Format(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "custom", s.Unwrap())

	none := withOptions(t, "{}", func(o *wrappers.Options) { o.Formatter = nil })
	_, err = none.Format([]any{1}, nil)
	assert.ErrorIs(t, err, wrappers.ErrMissingDependency)
	assert.Contains(t, errors.GetAllHints(err), "set Options.Formatter, for example to textutil.Format")
}

func TestStringToBool(t *testing.T) {
	for in, want := range map[string]bool{"Yes": true, "1": true, "ON": true, "no": false, "": false, "False": false} {
		got, err := wrappers.NewString(in).ToBool()
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := wrappers.NewString("maybe").ToBool()
	assert.ErrorIs(t, err, wrappers.ErrNotBoolean)
	_, err = wrappers.NewString(" 1 ").ToBool()
	assert.ErrorIs(t, err, wrappers.ErrNotBoolean, "surrounding whitespace is not trimmed")

	got, err := wrappers.NewString("maybe").ToBool(true)
	require.NoError(t, err)
	assert.True(t, got)
}

// ─────────────────────────────────────────────────────────────────────────────
// Bytes & encodings
// ─────────────────────────────────────────────────────────────────────────────

var latin1Cafe = []byte{'c', 'a', 'f', 0xe9}

func TestFromBytes(t *testing.T) {
	s, err := wrappers.FromBytes(latin1Cafe, "latin-1", wrappers.DecodeStrict)
	require.NoError(t, err)
	assert.Equal(t, "café", s.Unwrap())

	s, err = wrappers.FromBytes([]byte("café"), "UTF_8", wrappers.DecodeStrict)
	require.NoError(t, err)
	assert.Equal(t, "café", s.Unwrap())

	s, err = wrappers.FromBytes([]byte("abc"), "ascii", wrappers.DecodeStrict)
	require.NoError(t, err)
	assert.Equal(t, "abc", s.Unwrap())
}

func TestFromBytesModes(t *testing.T) {
	_, err := wrappers.FromBytes(latin1Cafe, "utf-8", wrappers.DecodeStrict)
	assert.ErrorIs(t, err, wrappers.ErrDecode)

	s, err := wrappers.FromBytes(latin1Cafe, "utf-8", wrappers.DecodeReplace)
	require.NoError(t, err)
	assert.Equal(t, "caf\uFFFD", s.Unwrap())

	s, err = wrappers.FromBytes(latin1Cafe, "utf-8", wrappers.DecodeIgnore)
	require.NoError(t, err)
	assert.Equal(t, "caf", s.Unwrap())

	_, err = wrappers.FromBytes(latin1Cafe, "ascii", wrappers.DecodeStrict)
	assert.ErrorIs(t, err, wrappers.ErrDecode)

	s, err = wrappers.FromBytes(latin1Cafe, "ascii", wrappers.DecodeReplace)
	require.NoError(t, err)
	assert.Equal(t, "caf\uFFFD", s.Unwrap())

	s, err = wrappers.FromBytes(latin1Cafe, "us-ascii", wrappers.DecodeIgnore)
	require.NoError(t, err)
	assert.Equal(t, "caf", s.Unwrap())
}

func TestFromBytesErrors(t *testing.T) {
	_, err := wrappers.FromBytes(latin1Cafe, "", wrappers.DecodeStrict)
	assert.ErrorIs(t, err, wrappers.ErrEncodingRequired)
	hints := errors.GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], `"windows-1252"`)

	_, err = wrappers.FromBytes(latin1Cafe, "klingon", wrappers.DecodeStrict)
	assert.ErrorIs(t, err, wrappers.ErrUnknownEncoding)
}

type fixedDetector string

func (d fixedDetector) Detect([]byte) (string, bool) { return string(d), true }

func TestFromBytesWith(t *testing.T) {
	opts := wrappers.DefaultOptions()
	opts.JoinTemplate = "<{}>"
	s, err := wrappers.FromBytesWith(latin1Cafe, "latin1", wrappers.DecodeStrict, opts)
	require.NoError(t, err)
	assert.Equal(t, "café", s.Unwrap())
	assert.Equal(t, "<{}>", s.Options().JoinTemplate)

	opts.Detector = fixedDetector("koi8-r")
	_, err = wrappers.FromBytesWith(latin1Cafe, "", wrappers.DecodeStrict, opts)
	assert.ErrorIs(t, err, wrappers.ErrEncodingRequired)
	assert.NotErrorIs(t, err, wrappers.ErrMissingDependency)
	assert.Contains(t, errors.FlattenHints(err), `"koi8-r"`)

	opts.Detector = nil
	_, err = wrappers.FromBytesWith(latin1Cafe, "", wrappers.DecodeStrict, opts)
	assert.ErrorIs(t, err, wrappers.ErrEncodingRequired)
	assert.ErrorIs(t, err, wrappers.ErrMissingDependency)
	assert.Contains(t, errors.FlattenHints(err), "Options.Detector")

	s, err = wrappers.FromBytesWith([]byte("abc"), "ascii", wrappers.DecodeStrict, opts)
	require.NoError(t, err, "a nil Detector only matters without an encoding")
	assert.Equal(t, "abc", s.Unwrap())

	opts.JoinTemplate = ""
	_, err = wrappers.FromBytesWith(latin1Cafe, "latin1", wrappers.DecodeStrict, opts)
	assert.ErrorIs(t, err, wrappers.ErrInvalidOptions)
}

func TestFromBytesDetect(t *testing.T) {
	s, name, err := wrappers.FromBytesDetect([]byte("héllo"), wrappers.HTMLDetector{}, wrappers.DecodeStrict)
	require.NoError(t, err)
	assert.Equal(t, "utf-8", name)
	assert.Equal(t, "héllo", s.Unwrap())

	d := wrappers.HTMLDetector{ContentType: "text/plain; charset=iso-8859-1"}
	s, _, err = wrappers.FromBytesDetect(latin1Cafe, d, wrappers.DecodeStrict)
	require.NoError(t, err)
	assert.Equal(t, "café", s.Unwrap())

	_, _, err = wrappers.FromBytesDetect(latin1Cafe, nil, wrappers.DecodeStrict)
	assert.ErrorIs(t, err, wrappers.ErrMissingDependency)
}

func TestStringEncode(t *testing.T) {
	b, err := wrappers.NewString("café").Encode("iso-8859-1")
	require.NoError(t, err)
	assert.Equal(t, latin1Cafe, b)

	b, err = wrappers.NewString("café").Encode("utf-8")
	require.NoError(t, err)
	assert.Equal(t, []byte("café"), b)

	_, err = wrappers.NewString("café").Encode("ascii")
	assert.ErrorIs(t, err, wrappers.ErrEncode)

	_, err = wrappers.NewString("€").Encode("latin1")
	assert.ErrorIs(t, err, wrappers.ErrEncode)

	_, err = wrappers.NewString("x").Encode("nope")
	assert.ErrorIs(t, err, wrappers.ErrUnknownEncoding)
}

// ─────────────────────────────────────────────────────────────────────────────
// Debugging
// ─────────────────────────────────────────────────────────────────────────────

func TestStringDebugging(t *testing.T) {
	s := wrappers.NewString("hi")
	assert.True(t, s.Equal(wrappers.NewString("hi")))
	assert.False(t, s.Equal(wrappers.NewString("HI")))
	assert.Contains(t, s.Pretty(), "hi")

	var buf bytes.Buffer
	assert.Equal(t, s, s.Dump(&buf))
	assert.Contains(t, buf.String(), "hi")
}
