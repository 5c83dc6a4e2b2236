package textutil

import (
	"regexp"

	"github.com/cockroachdb/errors"
)

// ReplaceOptions tunes [Multireplace] and [MultireplaceFunc].
type ReplaceOptions struct {
	// MaxReplace is the total number of replacements allowed across all
	// patterns. 0 means no limit.
	MaxReplace int

	// Flags are regex flag letters, see [ParseFlags].
	Flags string
}

// Multireplace replaces every match of every pattern, in order.
//
// Pass either one substitution for all patterns, or exactly one per
// pattern; anything else returns [ErrMismatchedSubstitutions].
// Substitutions may reference groups with $1 or ${name}.
//
//	Multireplace("a,b;c/d", []string{",", ";", "/"}, []string{","}, ReplaceOptions{})
//	// → "a,b,c,d"
func Multireplace(s string, patterns, subs []string, opts ReplaceOptions) (string, error) {
	switch {
	case len(subs) == 1 && len(patterns) > 0:
		one := subs[0]
		subs = make([]string, len(patterns))
		for i := range subs {
			subs[i] = one
		}
	case len(subs) != len(patterns):
		return "", errors.Wrapf(ErrMismatchedSubstitutions,
			"%d patterns, %d substitutions", len(patterns), len(subs))
	}
	res, err := compileAll(patterns, opts.Flags, "pattern")
	if err != nil {
		return "", err
	}
	return replaceEach(s, res, opts.MaxReplace, func(i int, dst []byte, src string, m []int) []byte {
		return res[i].ExpandString(dst, subs[i], src, m)
	}), nil
}

// MultireplaceFunc replaces every match of every pattern with the result
// of fn applied to the matched text.
func MultireplaceFunc(s string, patterns []string, fn func(match string) string, opts ReplaceOptions) (string, error) {
	res, err := compileAll(patterns, opts.Flags, "pattern")
	if err != nil {
		return "", err
	}
	return replaceEach(s, res, opts.MaxReplace, func(_ int, dst []byte, src string, m []int) []byte {
		return append(dst, fn(src[m[0]:m[1]])...)
	}), nil
}

type expandFunc func(pattern int, dst []byte, src string, match []int) []byte

func replaceEach(s string, res []*regexp.Regexp, budget int, expand expandFunc) string {
	for i, re := range res {
		n := -1
		if budget > 0 {
			n = budget
		}
		var count int
		s, count = replaceN(re, s, n, func(dst []byte, src string, m []int) []byte {
			return expand(i, dst, src, m)
		})
		if budget > 0 {
			budget -= count
			if budget == 0 {
				break
			}
		}
	}
	return s
}

// replaceN replaces at most n matches (all when n < 0) and reports how many
// were replaced.
func replaceN(re *regexp.Regexp, s string, n int, expand func(dst []byte, src string, m []int) []byte) (string, int) {
	matches := re.FindAllStringSubmatchIndex(s, n)
	if len(matches) == 0 {
		return s, 0
	}
	out := make([]byte, 0, len(s))
	last := 0
	for _, m := range matches {
		out = append(out, s[last:m[0]]...)
		out = expand(out, s, m)
		last = m[1]
	}
	out = append(out, s[last:]...)
	return string(out), len(matches)
}
