package passgen

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// ParseLength converts loosely typed input, such as a decoded config value, into a Length.
//
//	nil, ""                  -> DefaultLength()
//	12, int64(12), 12.0      -> Exact(12)
//	[]int{8, 10}, []any{...} -> Choices (members that are not whole numbers are dropped)
//	map{"min": 8, "max": 12} -> Span{8, 12}
//	"12", "8-12", "8..12"    -> Exact, Span
//	"8,10,12"                -> Choices
//
// Anything else fails with ErrInvalidLengthType.
func ParseLength(v any) (Length, error) {
	switch t := v.(type) {
	case nil:
		return DefaultLength(), nil
	case Length:
		return t, nil
	case string:
		return parseLengthExpr(t)
	case []int:
		return append(Choices(nil), t...), nil
	case []any:
		return choicesOf(t), nil
	case map[string]any:
		return spanOf(t, v)
	}

	if n, ok := wholeNumber(v); ok {
		return Exact(n), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return choicesOf(items), nil
	}

	return nil, invalidLengthType(v)
}

func invalidLengthType(v any) error {
	return errors.Wrapf(ErrInvalidLengthType, "length is neither an integer, a range nor a list (got %T)", v)
}

// wholeNumber accepts any integer kind, and floats without a fractional part
// since JSON decoding yields float64.
func wholeNumber(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

func choicesOf(items []any) Choices {
	out := make(Choices, 0, len(items))
	for _, item := range items {
		if n, ok := wholeNumber(item); ok {
			out = append(out, n)
		}
	}
	return out
}

func spanOf(m map[string]any, orig any) (Length, error) {
	var (
		s  Span
		md mapstructure.Metadata
	)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &s,
		Metadata:    &md,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(m); err != nil {
		return nil, errors.Wrapf(ErrInvalidLengthType, "decoding length range %v: %v", orig, err)
	}
	if len(md.Keys) != 2 {
		return nil, errors.Wrapf(ErrInvalidLengthType, "length range %v needs both min and max", orig)
	}
	return s, nil
}

func parseLengthExpr(expr string) (Length, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return DefaultLength(), nil
	}
	if n, err := strconv.Atoi(expr); err == nil {
		return Exact(n), nil
	}

	if strings.Contains(expr, ",") {
		parts := strings.Split(expr, ",")
		out := make(Choices, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, invalidLengthType(expr)
			}
			out = append(out, n)
		}
		return out, nil
	}

	lo, hi, ok := strings.Cut(expr, "..")
	if !ok && len(expr) > 1 {
		// skip a leading sign so "-2-4" splits after -2
		if i := strings.Index(expr[1:], "-"); i >= 0 {
			lo, hi, ok = expr[:i+1], expr[i+2:], true
		}
	}
	if !ok {
		return nil, invalidLengthType(expr)
	}
	from, err1 := strconv.Atoi(strings.TrimSpace(lo))
	to, err2 := strconv.Atoi(strings.TrimSpace(hi))
	if err1 != nil || err2 != nil {
		return nil, invalidLengthType(expr)
	}
	return Span{Min: from, Max: to}, nil
}
