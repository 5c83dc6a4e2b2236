package textutil

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/text/cases"
)

var folder = cases.Fold()

var booleans = map[string]bool{
	"1": true, "true": true, "on": true, "yes": true,
	"0": false, "false": false, "off": false, "no": false, "": false,
}

// ParseBool converts the usual spellings of a boolean. Matching ignores
// case only, so " yes " is not a boolean; the empty string is false.
func ParseBool(s string) (bool, error) {
	key := folder.String(s)
	if b, ok := booleans[key]; ok {
		return b, nil
	}
	return false, errors.WithHint(
		errors.Wrapf(ErrNotBoolean, "%q", s),
		"accepted values are 1/0, true/false, on/off, yes/no and the empty string; pass a default to fall back instead",
	)
}
