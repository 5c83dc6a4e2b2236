// Package textutil provides standalone string helpers: de-indentation,
// multi-separator split, multi-pattern replace, rune translation tables,
// brace-template formatting and join helpers.
//
// They are the building blocks behind wrappers.String. Use them directly
// when you want the behaviour on plain Go strings:
//
//	chunks, _ := textutil.Multisplit("a,b;c/d", []string{",", ";", "/"}, textutil.SplitOptions{})
//	// → ["a", "b", "c", "d"]
//
//	out, _ := textutil.Multireplace("a1b33c-d", []string{`\d+`}, []string{","}, textutil.ReplaceOptions{})
//	// → "a,b,c-d"
//
// # Regular expressions
//
// Separators and patterns are RE2 regular expressions (see [regexp]).
// Flags are passed as a string of letters, see [ParseFlags]. Substitutions
// use Go expansion syntax: $1, ${name}, $$ for a literal dollar.
//
// # Templates
//
// [Format] renders brace templates in the style of Python's str.format:
//
//	textutil.Format("{name}: {score:>10,.2f}", nil, map[string]any{"name": "bob", "score": 12345.678})
//	// → "bob:  12,345.68"
package textutil
