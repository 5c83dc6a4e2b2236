package wrappers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/kr/pretty"
	"go.uber.org/zap"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers shared by every wrapper: pretty printing, equality, dumping and
// debug logging.
// ─────────────────────────────────────────────────────────────────────────────

// equalOpts lets cmp look into unexported fields of user types held by a
// wrapper, and treats nil and empty containers alike. Nested wrappers
// compare through their own Equal method.
var equalOpts = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateEmpty(),
}

func equal(a, b any) bool {
	return cmp.Equal(a, b, equalOpts...)
}

// Diff returns a human-readable report of the differences between two
// values, wrapped or not, in the (-a +b) format of go-cmp. It returns ""
// when they are equal.
func Diff(a, b any) string {
	return cmp.Diff(a, b, equalOpts...)
}

func prettyString(v any) string {
	return pretty.Sprint(v)
}

func dump(w io.Writer, v any) {
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintln(w, prettyString(v))
}

// logValue emits one debug record describing a wrapper. A nil logger is a
// no-op.
func logValue(logger *zap.Logger, msg, kind string, length int, v any) {
	if logger == nil {
		return
	}
	if ce := logger.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(
			zap.String("kind", kind),
			zap.Int("len", length),
			zap.String("value", prettyString(v)),
		)
	}
}

// jsonString renders v as JSON, falling back to %v when v cannot be
// marshalled.
func jsonString(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// toAny converts items to []any for the formatting helpers.
func toAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// normIndex resolves a possibly negative index against n. ok is false when
// the result is out of range.
func normIndex(index, n int) (int, bool) {
	if index < 0 {
		index += n
	}
	return index, index >= 0 && index < n
}
