package patch

import (
	"fmt"
	"strconv"
)

// Validate checks that a decoded document (as produced by a JSON or YAML
// decoder into an any) has the shape of a patch:
//
//	{
//	  "_index":  [string, ...]          # at least one
//	  "added":   [{column: scalar}, ...]
//	  "removed": [{column: scalar}, ...]
//	  "changed": [{"key": [scalar, ...], "fields": {column: {"from": scalar, "to": scalar}}}, ...]
//	}
//
// where a scalar is a string, a number or null. Every key must have one
// value per index column and every change at least one field.
func Validate(doc any) error {
	top, ok := asObject(doc)
	if !ok {
		return ErrInvalidPatch.New(fmt.Sprintf("expected an object, got %s", kind(doc)))
	}
	for _, f := range []string{"_index", "added", "removed", "changed"} {
		if _, ok := top[f]; !ok {
			return ErrInvalidPatch.New(fmt.Sprintf("missing required field %q", f))
		}
	}

	index, ok := top["_index"].([]any)
	if !ok {
		return invalidAt("_index", "expected an array, got %s", kind(top["_index"]))
	}
	if len(index) == 0 {
		return invalidAt("_index", "must name at least one column")
	}
	for i, c := range index {
		if _, ok := c.(string); !ok {
			return invalidAt(elem("_index", i), "expected a string, got %s", kind(c))
		}
	}

	for _, f := range []string{"added", "removed"} {
		if err := validateRecords(f, top[f]); err != nil {
			return err
		}
	}

	changed, ok := top["changed"].([]any)
	if !ok {
		return invalidAt("changed", "expected an array, got %s", kind(top["changed"]))
	}
	for i, c := range changed {
		if err := validateChange(elem("changed", i), c, len(index)); err != nil {
			return err
		}
	}
	return nil
}

// IsValid reports whether doc passes Validate.
func IsValid(doc any) bool {
	return Validate(doc) == nil
}

func validateRecords(path string, v any) error {
	recs, ok := v.([]any)
	if !ok {
		return invalidAt(path, "expected an array, got %s", kind(v))
	}
	for i, r := range recs {
		rp := elem(path, i)
		obj, ok := asObject(r)
		if !ok {
			return invalidAt(rp, "expected an object, got %s", kind(r))
		}
		for col, cv := range obj {
			if !isScalar(cv) {
				return invalidAt(rp+"."+col, "expected a scalar, got %s", kind(cv))
			}
		}
	}
	return nil
}

func validateChange(path string, v any, arity int) error {
	obj, ok := asObject(v)
	if !ok {
		return invalidAt(path, "expected an object, got %s", kind(v))
	}
	k, ok := obj["key"].([]any)
	if !ok {
		return invalidAt(path+".key", "expected an array, got %s", kind(obj["key"]))
	}
	if len(k) != arity {
		return invalidAt(path+".key", "expected %d values, got %d", arity, len(k))
	}
	for i, kv := range k {
		if !isScalar(kv) {
			return invalidAt(elem(path+".key", i), "expected a scalar, got %s", kind(kv))
		}
	}
	fields, ok := asObject(obj["fields"])
	if !ok {
		return invalidAt(path+".fields", "expected an object, got %s", kind(obj["fields"]))
	}
	if len(fields) == 0 {
		return invalidAt(path+".fields", "must hold at least one field")
	}
	for col, d := range fields {
		fp := path + ".fields." + col
		delta, ok := asObject(d)
		if !ok {
			return invalidAt(fp, "expected an object, got %s", kind(d))
		}
		for _, side := range []string{"from", "to"} {
			sv, ok := delta[side]
			if !ok {
				return invalidAt(fp, "missing required field %q", side)
			}
			if !isScalar(sv) {
				return invalidAt(fp+"."+side, "expected a scalar, got %s", kind(sv))
			}
		}
	}
	return nil
}

func asObject(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, true
	case map[any]any:
		res := make(map[string]any, len(x))
		for k, v := range x {
			s, ok := k.(string)
			if !ok {
				return nil, false
			}
			res[s] = v
		}
		return res, true
	}
	return nil, false
}

func isScalar(v any) bool {
	switch v.(type) {
	case nil, string, float64, float32, int, int64, uint64:
		return true
	case fmt.Stringer:
		// json.Number
		return true
	}
	return false
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any, map[any]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	}
	if isScalar(v) {
		return "number"
	}
	return fmt.Sprintf("%T", v)
}

func elem(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func invalidAt(path, msg string, args ...any) error {
	return ErrInvalidPatch.New(path + ": " + fmt.Sprintf(msg, args...))
}

// Validate checks the invariants of a typed patch: at least one index
// column, keys of matching arity and no empty changes.
func (p *Patch) Validate() error {
	if len(p.Index) == 0 {
		return invalidAt("_index", "must name at least one column")
	}
	for i, c := range p.Changed {
		path := elem("changed", i)
		if len(c.Key) != len(p.Index) {
			return invalidAt(path+".key", "expected %d values, got %d", len(p.Index), len(c.Key))
		}
		if len(c.Fields) == 0 {
			return invalidAt(path+".fields", "must hold at least one field")
		}
	}
	return nil
}
