package textutil

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// DefaultJoinTemplate renders each item with its default form.
const DefaultJoinTemplate = "{}"

// Formatter renders one value with a brace template. [FormatValue] is the
// default implementation.
type Formatter func(value any, template string) (string, error)

// Join renders every item with template through formatter, then joins the
// results with sep. An empty template means [DefaultJoinTemplate] and a nil
// formatter means [FormatValue].
//
//	Join(", ", []any{1, 2.5, "x"}, "<{}>", nil) // → "<1>, <2.5>, <x>"
func Join(sep string, items []any, template string, formatter Formatter) (string, error) {
	if template == "" {
		template = DefaultJoinTemplate
	}
	if formatter == nil {
		formatter = FormatValue
	}
	parts := make([]string, len(items))
	for i, item := range items {
		s, err := formatter(item, template)
		if err != nil {
			return "", errors.Wrapf(err, "join item %d", i)
		}
		parts[i] = s
	}
	return strings.Join(parts, sep), nil
}
