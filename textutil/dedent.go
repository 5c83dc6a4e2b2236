package textutil

import (
	"strings"

	"github.com/kr/text"
)

// Dedent removes the whitespace margin common to every non-blank line.
//
// Lines holding only spaces and tabs are emptied and ignored when computing
// the margin. Tabs and spaces are not equivalent: "\t" and "  " have no
// common margin.
//
//	Dedent("\n    hello\n      world\n") // → "\nhello\n  world\n"
func Dedent(s string) string {
	lines := strings.Split(s, "\n")
	margin, found := "", false
	for i, line := range lines {
		rest := strings.TrimLeft(line, " \t")
		if rest == "" {
			lines[i] = ""
			continue
		}
		indent := line[:len(line)-len(rest)]
		switch {
		case !found:
			margin, found = indent, true
		case strings.HasPrefix(indent, margin):
		case strings.HasPrefix(margin, indent):
			margin = indent
		default:
			margin = commonPrefix(margin, indent)
		}
	}
	if margin == "" {
		return strings.Join(lines, "\n")
	}
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, margin)
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}

// Indent inserts prefix at the start of every non-empty line of s.
func Indent(s, prefix string) string {
	return text.Indent(s, prefix)
}

// Wrap re-flows the words of s into lines of at most width bytes, with
// minimal raggedness. A single word longer than width gets its own line.
func Wrap(s string, width int) string {
	return text.Wrap(s, width)
}
