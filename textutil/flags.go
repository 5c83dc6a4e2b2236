package textutil

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseFlags converts a string of flag letters into an RE2 flag group such
// as "(?is)". An empty string yields "".
//
// Accepted letters:
//
//	i      case-insensitive
//	m      multi-line: ^ and $ match at line boundaries
//	s .    dot matches \n
//	u a l  accepted, no effect (RE2 is always Unicode-aware)
//
// The verbose (x, v) and debug (d) letters return [ErrUnsupportedFlag];
// anything else returns [ErrInvalidFlag].
func ParseFlags(flags string) (string, error) {
	var i, m, s bool
	for _, f := range flags {
		switch f {
		case 'i':
			i = true
		case 'm':
			m = true
		case 's', '.':
			s = true
		case 'u', 'a', 'l':
		case 'x', 'v', 'd':
			return "", errors.Wrapf(ErrUnsupportedFlag, "%q", f)
		default:
			return "", errors.Wrapf(ErrInvalidFlag, "%q", f)
		}
	}
	var b strings.Builder
	if i {
		b.WriteByte('i')
	}
	if m {
		b.WriteByte('m')
	}
	if s {
		b.WriteByte('s')
	}
	if b.Len() == 0 {
		return "", nil
	}
	return "(?" + b.String() + ")", nil
}

// Compile compiles pattern with the given flag letters.
func Compile(pattern, flags string) (*regexp.Regexp, error) {
	prefix, err := ParseFlags(flags)
	if err != nil {
		return nil, err
	}
	return regexp.Compile(prefix + pattern)
}

func compileAll(patterns []string, flags string, what string) ([]*regexp.Regexp, error) {
	prefix, err := ParseFlags(flags)
	if err != nil {
		return nil, err
	}
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		re, err := regexp.Compile(prefix + p)
		if err != nil {
			return nil, errors.Wrapf(err, "%s %q at index %d", what, p, i)
		}
		out[i] = re
	}
	return out, nil
}
