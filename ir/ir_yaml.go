package ir

import (
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/token"
)

// MarshalYAML gives the plain value for YAML encoders. Integral number
// literals become int64 so they are written without a fraction. Strings
// which would not read back as the same string are double quoted.
func (v Value) MarshalYAML() (any, error) {
	switch v.Type {
	case StringType:
		if token.IsNeedQuoted(v.String) || plainYAML(v.String) {
			return v.String, nil
		}
		return quotedYAML(v.String), nil
	case NumberType:
		if i, err := strconv.ParseInt(v.Number, 10, 64); err == nil {
			return i, nil
		}
		return v.Float64, nil
	default:
		return nil, nil
	}
}

// plainYAML reports whether s decodes as itself when written as a plain
// scalar. The encoder leaves some keywords such as .inf and .nan
// unquoted although they decode as numbers.
func plainYAML(s string) bool {
	var x any
	if err := yaml.Unmarshal([]byte(s), &x); err != nil {
		return false
	}
	got, ok := x.(string)
	return ok && got == s
}

type quotedYAML string

func (q quotedYAML) MarshalYAML() ([]byte, error) {
	return []byte(strconv.Quote(string(q))), nil
}
