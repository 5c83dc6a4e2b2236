package textutil

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
)

// Format renders template, replacing every brace field with an argument.
//
// Fields:
//
//	{}           next positional argument
//	{0}          positional argument by index
//	{name}       kwargs["name"]
//	{name[0]}    index into a slice, array, string or map
//	{name.Field} struct field (through pointers) or map key
//	{x!r}        Go-quoted form; !s plain form; !a ASCII-quoted form
//	{x:spec}     format spec, see below
//
// The spec follows [[fill]align][sign][#][0][width][,][.precision][type]:
// align is one of < > ^ =, sign one of + - space, type one of
// s d n c x X o b f F e E g G %. A spec may itself hold fields, as in
// "{:{width}}". Write {{ and }} for literal braces.
func Format(template string, args []any, kwargs map[string]any) (string, error) {
	f := &formatter{args: args, kwargs: kwargs}
	return f.render(template, 0)
}

// FormatValue renders template with v as the single positional argument.
// It is the default per-item formatter of [Join].
func FormatValue(v any, template string) (string, error) {
	return Format(template, []any{v}, nil)
}

type formatter struct {
	args   []any
	kwargs map[string]any
	auto   int
	manual bool
}

func (f *formatter) render(template string, depth int) (string, error) {
	if depth > 1 {
		return "", errors.Wrap(ErrInvalidTemplate, "max string recursion exceeded")
	}
	var b strings.Builder
	for i := 0; i < len(template); {
		switch c := template[i]; c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := closingBrace(template, i)
			if end < 0 {
				return "", errors.Wrapf(ErrInvalidTemplate, "single '{' at offset %d", i)
			}
			out, err := f.field(template[i+1:end], depth)
			if err != nil {
				return "", err
			}
			b.WriteString(out)
			i = end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", errors.Wrapf(ErrInvalidTemplate, "single '}' at offset %d", i)
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), nil
}

func closingBrace(s string, open int) int {
	depth := 0
	for j := open; j < len(s); j++ {
		switch s[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

func (f *formatter) field(field string, depth int) (string, error) {
	name, conv, spec := splitField(field)
	v, err := f.resolve(name)
	if err != nil {
		return "", err
	}
	switch conv {
	case "":
	case "r":
		v = repr(v)
	case "s":
		v = fmt.Sprint(v)
	case "a":
		v = strconv.QuoteToASCII(fmt.Sprint(v))
	default:
		return "", errors.Wrapf(ErrInvalidTemplate, "unknown conversion %q", conv)
	}
	if strings.ContainsRune(spec, '{') {
		if spec, err = f.render(spec, depth+1); err != nil {
			return "", err
		}
	}
	return formatSpecValue(v, spec)
}

// splitField cuts "name!conv:spec". Brackets in the name may hold ! or :.
func splitField(field string) (name, conv, spec string) {
	i, bracket := 0, false
	for ; i < len(field); i++ {
		c := field[i]
		if c == '[' {
			bracket = true
		} else if c == ']' {
			bracket = false
		} else if !bracket && (c == '!' || c == ':') {
			break
		}
	}
	name, rest := field[:i], field[i:]
	if strings.HasPrefix(rest, "!") {
		rest = rest[1:]
		j := strings.IndexByte(rest, ':')
		if j < 0 {
			return name, rest, ""
		}
		conv, rest = rest[:j], rest[j:]
	}
	return name, conv, strings.TrimPrefix(rest, ":")
}

func (f *formatter) resolve(name string) (any, error) {
	head := name
	if i := strings.IndexAny(name, ".["); i >= 0 {
		head = name[:i]
	}
	var v any
	switch {
	case head == "":
		if f.manual {
			return nil, errors.Wrap(ErrInvalidTemplate, "cannot switch from manual field numbering to automatic")
		}
		if f.auto >= len(f.args) {
			return nil, errors.Wrapf(ErrMissingArgument, "positional argument %d", f.auto)
		}
		v = f.args[f.auto]
		f.auto++
	case isDigits(head):
		if f.auto > 0 {
			return nil, errors.Wrap(ErrInvalidTemplate, "cannot switch from automatic field numbering to manual")
		}
		f.manual = true
		idx, _ := strconv.Atoi(head)
		if idx >= len(f.args) {
			return nil, errors.Wrapf(ErrMissingArgument, "positional argument %d", idx)
		}
		v = f.args[idx]
	default:
		var ok bool
		if v, ok = f.kwargs[head]; !ok {
			return nil, errors.Wrapf(ErrMissingArgument, "%q", head)
		}
	}
	return access(v, name[len(head):], name)
}

// access walks ".Field" and "[key]" accessors.
func access(v any, path, name string) (any, error) {
	for path != "" {
		var key string
		var indexed bool
		switch path[0] {
		case '.':
			end := strings.IndexAny(path[1:], ".[")
			if end < 0 {
				end = len(path) - 1
			}
			key, path = path[1:end+1], path[end+1:]
		case '[':
			end := strings.IndexByte(path, ']')
			if end < 0 {
				return nil, errors.Wrapf(ErrInvalidTemplate, "missing ']' in field %q", name)
			}
			key, path, indexed = path[1:end], path[end+1:], true
		default:
			return nil, errors.Wrapf(ErrInvalidTemplate, "unexpected %q in field %q", path[0], name)
		}
		if key == "" {
			return nil, errors.Wrapf(ErrInvalidTemplate, "empty attribute in field %q", name)
		}
		next, ok := lookup(reflect.ValueOf(v), key, indexed)
		if !ok {
			return nil, errors.Wrapf(ErrMissingArgument, "%q has no %q", name, key)
		}
		v = next
	}
	return v, nil
}

func lookup(rv reflect.Value, key string, indexed bool) (any, bool) {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		var k reflect.Value
		switch {
		case kt.Kind() == reflect.String:
			k = reflect.ValueOf(key).Convert(kt)
		case isDigits(key) && kt.Kind() >= reflect.Int && kt.Kind() <= reflect.Int64:
			n, _ := strconv.ParseInt(key, 10, 64)
			k = reflect.ValueOf(n).Convert(kt)
		default:
			return nil, false
		}
		out := rv.MapIndex(k)
		if !out.IsValid() {
			return nil, false
		}
		return out.Interface(), true
	case reflect.Slice, reflect.Array, reflect.String:
		if !indexed || !isDigits(key) {
			return nil, false
		}
		i, _ := strconv.Atoi(key)
		if rv.Kind() == reflect.String {
			runes := []rune(rv.String())
			if i >= len(runes) {
				return nil, false
			}
			return string(runes[i]), true
		}
		if i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.Struct:
		fv := rv.FieldByName(key)
		if !fv.IsValid() || !fv.CanInterface() {
			return nil, false
		}
		return fv.Interface(), true
	}
	return nil, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func repr(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	if s, ok := v.(fmt.Stringer); ok {
		return strconv.Quote(s.String())
	}
	return fmt.Sprintf("%#v", v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Format spec
// ─────────────────────────────────────────────────────────────────────────────

// maxWidth bounds width and precision so a template cannot request an
// arbitrarily large allocation.
const maxWidth = 1 << 16

type formatSpec struct {
	fill      rune
	align     byte
	sign      byte
	alt       bool
	width     int
	comma     bool
	precision int
	verb      byte
}

func parseSpec(spec string) (formatSpec, error) {
	fs := formatSpec{fill: ' ', precision: -1}
	invalid := func() (formatSpec, error) {
		return formatSpec{}, errors.Wrapf(ErrInvalidFormat, "%q", spec)
	}
	s := spec
	if r, size := utf8.DecodeRuneInString(s); size > 0 && len(s) > size && strings.IndexByte("<>=^", s[size]) >= 0 {
		fs.fill, fs.align, s = r, s[size], s[size+1:]
	} else if s != "" && strings.IndexByte("<>=^", s[0]) >= 0 {
		fs.align, s = s[0], s[1:]
	}
	if s != "" && strings.IndexByte("+- ", s[0]) >= 0 {
		fs.sign, s = s[0], s[1:]
	}
	if s != "" && s[0] == '#' {
		fs.alt, s = true, s[1:]
	}
	if s != "" && s[0] == '0' {
		if fs.align == 0 {
			fs.fill, fs.align = '0', '='
		}
		s = s[1:]
	}
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n > 0 {
		w, err := strconv.Atoi(s[:n])
		if err != nil || w > maxWidth {
			return invalid()
		}
		fs.width, s = w, s[n:]
	}
	if s != "" && s[0] == ',' {
		fs.comma, s = true, s[1:]
	}
	if s != "" && s[0] == '.' {
		n = 1
		for n < len(s) && s[n] >= '0' && s[n] <= '9' {
			n++
		}
		p, err := strconv.Atoi(s[1:n])
		if n == 1 || err != nil || p > maxWidth {
			return invalid()
		}
		fs.precision, s = p, s[n:]
	}
	if len(s) > 1 {
		return invalid()
	}
	if s != "" {
		if strings.IndexByte("sdncxXobfFeEgG%", s[0]) < 0 {
			return invalid()
		}
		fs.verb = s[0]
	}
	return fs, nil
}

func formatSpecValue(v any, spec string) (string, error) {
	if spec == "" {
		if s, ok := v.(string); ok {
			return s, nil
		}
		if isFloat(v) {
			f, _ := toFloat(v)
			return reprFloat(f), nil
		}
		return fmt.Sprint(v), nil
	}
	fs, err := parseSpec(spec)
	if err != nil {
		return "", err
	}
	switch fs.verb {
	case 'd', 'n', 'c', 'x', 'X', 'o', 'b':
		neg, mag, ok := toInt(v)
		if !ok {
			return "", errors.Wrapf(ErrInvalidFormat, "unknown format code %q for value of type %T", fs.verb, v)
		}
		return fs.pad(fs.signOf(neg), fs.intDigits(mag), true), nil
	case 'f', 'F', 'e', 'E', 'g', 'G', '%':
		f, ok := toFloat(v)
		if !ok {
			return "", errors.Wrapf(ErrInvalidFormat, "unknown format code %q for value of type %T", fs.verb, v)
		}
		return fs.pad(fs.signOf(math.Signbit(f)), fs.floatDigits(math.Abs(f)), true), nil
	case 's':
		return fs.pad("", fs.truncate(fmt.Sprint(v)), false), nil
	}
	if neg, mag, ok := toInt(v); ok {
		return fs.pad(fs.signOf(neg), fs.intDigits(mag), true), nil
	}
	if f, ok := toFloat(v); ok {
		return fs.pad(fs.signOf(math.Signbit(f)), fs.floatDigits(math.Abs(f)), true), nil
	}
	return fs.pad("", fs.truncate(fmt.Sprint(v)), false), nil
}

func (fs formatSpec) signOf(neg bool) string {
	switch {
	case neg:
		return "-"
	case fs.sign == '+':
		return "+"
	case fs.sign == ' ':
		return " "
	}
	return ""
}

func (fs formatSpec) truncate(s string) string {
	if fs.precision >= 0 && utf8.RuneCountInString(s) > fs.precision {
		return string([]rune(s)[:fs.precision])
	}
	return s
}

func (fs formatSpec) intDigits(mag uint64) string {
	var digits, prefix string
	switch fs.verb {
	case 'x':
		digits, prefix = strconv.FormatUint(mag, 16), "0x"
	case 'X':
		digits, prefix = strings.ToUpper(strconv.FormatUint(mag, 16)), "0X"
	case 'o':
		digits, prefix = strconv.FormatUint(mag, 8), "0o"
	case 'b':
		digits, prefix = strconv.FormatUint(mag, 2), "0b"
	case 'c':
		return string(rune(mag))
	default:
		digits = strconv.FormatUint(mag, 10)
		if fs.comma {
			digits = group(digits)
		}
	}
	if fs.alt {
		return prefix + digits
	}
	return digits
}

func (fs formatSpec) floatDigits(f float64) string {
	prec := fs.precision
	var out string
	switch fs.verb {
	case 0:
		if prec < 0 {
			out = reprFloat(f)
		} else {
			out = strconv.FormatFloat(f, 'g', max(prec, 1), 64)
		}
	case '%':
		if prec < 0 {
			prec = 6
		}
		out = strconv.FormatFloat(f*100, 'f', prec, 64)
	case 'g', 'G':
		if prec < 0 {
			prec = 6
		}
		out = strconv.FormatFloat(f, 'g', max(prec, 1), 64)
	default:
		if prec < 0 {
			prec = 6
		}
		out = strconv.FormatFloat(f, lower(fs.verb), prec, 64)
	}
	if fs.comma {
		intPart, rest := out, ""
		if i := strings.IndexAny(out, ".e"); i >= 0 {
			intPart, rest = out[:i], out[i:]
		}
		out = group(intPart) + rest
	}
	if fs.verb == '%' {
		out += "%"
	}
	if fs.verb == 'F' || fs.verb == 'E' || fs.verb == 'G' {
		out = strings.ToUpper(out)
	}
	return out
}

// reprFloat renders f the shortest way that reads back, keeping a decimal
// point, and switches to exponent form outside [1e-4, 1e16).
func reprFloat(f float64) string {
	abs := math.Abs(f)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// group inserts thousands separators in a string of decimal digits.
func group(digits string) string {
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return digits
	}
	return humanize.BigComma(n)
}

func (fs formatSpec) pad(sign, body string, numeric bool) string {
	n := utf8.RuneCountInString(sign) + utf8.RuneCountInString(body)
	if fs.width <= n {
		return sign + body
	}
	fill := strings.Repeat(string(fs.fill), fs.width-n)
	align := fs.align
	if align == 0 {
		align = '<'
		if numeric {
			align = '>'
		}
	}
	switch align {
	case '>':
		return fill + sign + body
	case '=':
		return sign + fill + body
	case '^':
		left := (fs.width - n) / 2
		return strings.Repeat(string(fs.fill), left) + sign + body +
			strings.Repeat(string(fs.fill), fs.width-n-left)
	}
	return sign + body + fill
}

func isFloat(v any) bool {
	switch v.(type) {
	case float32, float64:
		return true
	}
	return false
}

func toInt(v any) (neg bool, mag uint64, ok bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < 0 {
			return true, uint64(-(n + 1)) + 1, true
		}
		return false, uint64(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return false, rv.Uint(), true
	}
	return false, 0, false
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	}
	return 0, false
}
