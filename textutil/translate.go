package textutil

import (
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Table maps runes to their replacement. A negative replacement deletes
// the rune.
type Table map[rune]rune

// MakeTrans builds a [Table] mapping the i-th rune of from to the i-th rune
// of to, and deleting every rune of deletions. Deletions win over mappings.
func MakeTrans(from, to, deletions string) (Table, error) {
	if utf8.RuneCountInString(from) != utf8.RuneCountInString(to) {
		return nil, errors.Wrapf(ErrMismatchedLengths, "from %q, to %q", from, to)
	}
	table := make(Table, len(from)+len(deletions))
	target := []rune(to)
	i := 0
	for _, r := range from {
		table[r] = target[i]
		i++
	}
	for _, r := range deletions {
		table[r] = -1
	}
	return table, nil
}

// Translate applies table to every rune of s.
func Translate(s string, table Table) string {
	return strings.Map(func(r rune) rune {
		if v, ok := table[r]; ok {
			return v
		}
		return r
	}, s)
}
