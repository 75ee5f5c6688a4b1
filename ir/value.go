package ir

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Value is a scalar cell value.
type Value struct {
	Type Type

	String  string
	Number  string
	Float64 float64
}

func Null() Value {
	return Value{Type: NullType}
}

func FromString(v string) Value {
	return Value{Type: StringType, String: v}
}

func FromFloat(f float64) Value {
	return Value{
		Type:    NumberType,
		Number:  strconv.FormatFloat(f, 'f', -1, 64),
		Float64: f,
	}
}

func FromInt(i int64) Value {
	return Value{
		Type:    NumberType,
		Number:  strconv.FormatInt(i, 10),
		Float64: float64(i),
	}
}

// FromNumber makes a number from its literal text, keeping the literal
// so it can be written back unchanged.
func FromNumber(lit string) (Value, error) {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q", ErrNumber, lit)
	}
	return Value{Type: NumberType, Number: lit, Float64: f}, nil
}

// FromAny converts a decoded JSON or YAML scalar to a Value.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case string:
		return FromString(x), nil
	case float64:
		return FromFloat(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		return FromNumber(strconv.FormatUint(x, 10))
	case fmt.Stringer:
		// json.Number from decoders using UseNumber
		return FromNumber(x.String())
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrNotValue, v)
	}
}

func (v Value) IsNull() bool { return v.Type == NullType }

// Text gives the value as it would appear in a delimited text cell.
func (v Value) Text() string {
	switch v.Type {
	case StringType:
		return v.String
	case NumberType:
		return v.Number
	default:
		return ""
	}
}

// Any gives the value as a plain Go value: nil, float64 or string.
func (v Value) Any() any {
	switch v.Type {
	case StringType:
		return v.String
	case NumberType:
		return v.Float64
	default:
		return nil
	}
}

// ParseFloat attempts to read v as a floating point number. Numbers always
// succeed, strings succeed when their trimmed text parses and Null never
// does.
func (v Value) ParseFloat() (float64, bool) {
	switch v.Type {
	case NumberType:
		return v.Float64, true
	case StringType:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.String), 64)
		if err == nil {
			return f, true
		}
		if ne := (*strconv.NumError)(nil); errors.As(err, &ne) && ne.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	default:
		return 0, false
	}
}

func (v Value) GoString() string {
	switch v.Type {
	case StringType:
		return strconv.Quote(v.String)
	case NumberType:
		return v.Number
	default:
		return "null"
	}
}

// Equal reports whether a and b are the same value. Numbers compare by
// numeric value, so 20 and 20.0 are equal, but a number never equals a
// string.
func Equal(a, b Value) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case StringType:
		return a.String == b.String
	case NumberType:
		return a.Float64 == b.Float64
	default:
		return true
	}
}
