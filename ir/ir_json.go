package ir

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Type {
	case StringType:
		return json.Marshal(v.String)
	case NumberType:
		if v.Number != "" && json.Valid([]byte(v.Number)) {
			return []byte(v.Number), nil
		}
		return []byte(strconv.FormatFloat(v.Float64, 'g', -1, 64)), nil
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return err
	}
	res, err := FromAny(x)
	if err != nil {
		return fmt.Errorf("cannot decode %s: %w", d, err)
	}
	*v = res
	return nil
}
