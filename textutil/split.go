package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// SplitOptions tunes [Multisplit].
type SplitOptions struct {
	// MaxSplit limits the number of chunks produced before the remainder is
	// returned unsplit. 0 means no limit.
	MaxSplit int

	// Flags are regex flag letters, see [ParseFlags].
	Flags string
}

// Multisplit is strings.Split with several separators, each being a regular
// expression.
//
// Without separators, s is split on runs of white space like
// [strings.Fields], honouring MaxSplit; passing Flags then is an error.
//
// With separators, s is split on the last separator first, and each chunk
// is split again on the remaining ones:
//
//	Multisplit("a,b;c/d=a,b;c/d", []string{",", ";", "[/=]"}, SplitOptions{MaxSplit: 4})
//	// → ["a", "b", "c", "d", "a,b;c/d"]
func Multisplit(s string, seps []string, opts SplitOptions) ([]string, error) {
	if opts.MaxSplit < 0 {
		return nil, errors.Wrapf(ErrNegativeMaxSplit, "maxsplit is %d", opts.MaxSplit)
	}
	if len(seps) == 0 {
		if opts.Flags != "" {
			return nil, errors.WithHint(ErrFlagsWithoutSeparator,
				"flags only make sense when splitting on a regex")
		}
		return splitWhitespace(s, opts.MaxSplit), nil
	}
	res, err := compileAll(seps, opts.Flags, "separator")
	if err != nil {
		return nil, err
	}
	if opts.MaxSplit == 0 {
		return splitAll(s, res), nil
	}
	return splitMax(s, res, opts.MaxSplit), nil
}

func splitAll(s string, seps []*regexp.Regexp) []string {
	if len(seps) == 0 {
		return []string{s}
	}
	last, rest := seps[len(seps)-1], seps[:len(seps)-1]
	var out []string
	for _, chunk := range last.Split(s, -1) {
		out = append(out, splitAll(chunk, rest)...)
	}
	return out
}

// splitMax splits head first, one cut at a time, and charges every chunk
// produced by the recursion against the limit.
func splitMax(s string, seps []*regexp.Regexp, limit int) []string {
	if len(seps) == 0 {
		return []string{s}
	}
	sep, rest := seps[len(seps)-1], seps[:len(seps)-1]
	var out []string
	for {
		if limit <= 0 {
			return append(out, s)
		}
		parts := sep.Split(s, 2)
		if len(parts) < 2 {
			return append(out, s)
		}
		for _, chunk := range splitMax(parts[0], rest, limit) {
			out = append(out, chunk)
			limit--
		}
		s = parts[1]
	}
}

func splitWhitespace(s string, limit int) []string {
	if limit == 0 {
		return strings.Fields(s)
	}
	var out []string
	for len(out) < limit {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		if s == "" {
			return out
		}
		i := strings.IndexFunc(s, unicode.IsSpace)
		if i < 0 {
			return append(out, s)
		}
		out = append(out, s[:i])
		s = s[i:]
	}
	if s = strings.TrimLeftFunc(s, unicode.IsSpace); s != "" {
		out = append(out, s)
	}
	return out
}
