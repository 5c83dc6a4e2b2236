package wrappers

import (
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// DecodeMode tells [FromBytes] what to do with bytes that are not valid in
// the chosen encoding.
type DecodeMode int

const (
	// DecodeStrict fails with [ErrDecode].
	DecodeStrict DecodeMode = iota
	// DecodeReplace substitutes U+FFFD.
	DecodeReplace
	// DecodeIgnore drops the invalid bytes.
	DecodeIgnore
)

// Detector guesses the encoding of raw bytes. certain is false when the
// guess is a fallback.
type Detector interface {
	Detect(b []byte) (name string, certain bool)
}

// HTMLDetector sniffs the encoding with the WHATWG algorithm: byte order
// marks, an optional Content-Type header value, <meta> tags, and finally
// a UTF-8 validity check. It works on any text, not only HTML.
type HTMLDetector struct {
	// ContentType is an optional HTTP Content-Type value such as
	// "text/plain; charset=latin1".
	ContentType string
}

// Detect implements [Detector].
func (d HTMLDetector) Detect(b []byte) (string, bool) {
	_, name, certain := charset.DetermineEncoding(b, d.ContentType)
	return name, certain
}

// DetectEncoding returns the encoding name guessed by d, or
// [ErrMissingDependency] when d is nil.
func DetectEncoding(b []byte, d Detector) (string, bool, error) {
	if d == nil {
		return "", false, errors.WithHint(
			errors.Wrap(ErrMissingDependency, "no charset detector configured"),
			"pass a Detector, for example wrappers.HTMLDetector{}",
		)
	}
	name, certain := d.Detect(b)
	return name, certain, nil
}

// FromBytes decodes b from the named encoding with [DefaultOptions].
//
// The encoding is required. When it is missing, the error hints at the
// encoding guessed by [HTMLDetector]. Names are resolved against the IANA
// registry first, then the WHATWG labels; "ascii" is supported too.
func FromBytes(b []byte, encodingName string, mode DecodeMode) (String, error) {
	return FromBytesWith(b, encodingName, mode, DefaultOptions())
}

// FromBytesWith decodes b like [FromBytes] and returns a String carrying
// opts. When the encoding is missing, opts.Detector suggests one in the
// error hint; without a Detector the error is also marked
// [ErrMissingDependency].
func FromBytesWith(b []byte, encodingName string, mode DecodeMode, opts Options) (String, error) {
	if err := opts.Validate(); err != nil {
		return String{}, err
	}
	if strings.TrimSpace(encodingName) == "" {
		return String{}, missingEncoding(b, opts.Detector)
	}
	text, err := decode(b, encodingName, mode)
	if err != nil {
		return String{}, err
	}
	return String{text: text, opts: &opts}, nil
}

func missingEncoding(b []byte, d Detector) error {
	if d == nil {
		return errors.WithHint(
			errors.Mark(ErrEncodingRequired, ErrMissingDependency),
			"pass the encoding of the bytes, or set Options.Detector to get a suggestion",
		)
	}
	guess, _ := d.Detect(b)
	return errors.WithHintf(ErrEncodingRequired,
		"if you don't know which encoding was used, try %q or \"utf-8\"; "+
			"if that fails, get a partial decoding with \"ascii\" and DecodeReplace or DecodeIgnore",
		guess)
}

// FromBytesDetect guesses the encoding of b with d, then decodes it. It
// returns the decoded String and the encoding name used.
func FromBytesDetect(b []byte, d Detector, mode DecodeMode) (String, string, error) {
	name, _, err := DetectEncoding(b, d)
	if err != nil {
		return String{}, "", err
	}
	s, err := FromBytes(b, name, mode)
	return s, name, err
}

// Encode returns s encoded with the named encoding. Runes that the
// encoding cannot represent yield [ErrEncode].
func (s String) Encode(encodingName string) ([]byte, error) {
	if isASCII(encodingName) {
		for i, r := range s.text {
			if r >= utf8.RuneSelf {
				return nil, errors.Wrapf(ErrEncode, "ascii cannot encode %q at byte %d", r, i)
			}
		}
		return []byte(s.text), nil
	}
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewEncoder().Bytes([]byte(s.text))
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, ErrEncode), "encode to %s", encodingName)
	}
	return out, nil
}

func decode(b []byte, name string, mode DecodeMode) (string, error) {
	if isASCII(name) {
		return decodeASCII(b, mode)
	}
	enc, err := lookupEncoding(name)
	if err != nil {
		return "", err
	}
	if enc == unicode.UTF8 {
		switch mode {
		case DecodeStrict:
			if !utf8.Valid(b) {
				return "", errors.Wrap(ErrDecode, "invalid utf-8")
			}
			return string(b), nil
		case DecodeIgnore:
			return strings.ToValidUTF8(string(b), ""), nil
		}
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.Wrapf(errors.Mark(err, ErrDecode), "decode from %s", name)
	}
	text := string(out)
	switch mode {
	case DecodeStrict:
		if strings.ContainsRune(text, utf8.RuneError) {
			return "", errors.Wrapf(ErrDecode, "invalid %s input", name)
		}
	case DecodeIgnore:
		text = strings.ReplaceAll(text, string(utf8.RuneError), "")
	}
	return text, nil
}

func decodeASCII(b []byte, mode DecodeMode) (string, error) {
	var sb strings.Builder
	sb.Grow(len(b))
	for i, c := range b {
		if c < utf8.RuneSelf {
			sb.WriteByte(c)
			continue
		}
		switch mode {
		case DecodeStrict:
			return "", errors.Wrapf(ErrDecode, "ascii cannot decode byte 0x%02x at position %d", c, i)
		case DecodeReplace:
			sb.WriteRune(utf8.RuneError)
		}
	}
	return sb.String(), nil
}

func normalizeEncodingName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}

func isASCII(name string) bool {
	switch normalizeEncodingName(name) {
	case "ascii", "us-ascii", "646":
		return true
	}
	return false
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	n := normalizeEncodingName(name)
	if n == "utf8" {
		n = "utf-8"
	}
	for _, candidate := range []string{n, strings.ReplaceAll(n, "-", "")} {
		if e, err := ianaindex.IANA.Encoding(candidate); err == nil && e != nil {
			return e, nil
		}
		if e, _ := charset.Lookup(candidate); e != nil {
			return e, nil
		}
	}
	return nil, errors.WithHint(
		errors.Wrapf(ErrUnknownEncoding, "%q", name),
		"use an IANA name such as \"utf-8\", \"iso-8859-1\" or \"windows-1252\"",
	)
}
