package patch

import (
	"fmt"

	"github.com/signadot/csvdiff/ir"
)

// FromDocument validates a decoded document and converts it to a Patch.
func FromDocument(doc any) (*Patch, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}
	top, _ := asObject(doc)
	p := &Patch{}
	for _, c := range top["_index"].([]any) {
		p.Index = append(p.Index, c.(string))
	}
	var err error
	if p.Added, err = recordsOf("added", top["added"]); err != nil {
		return nil, err
	}
	if p.Removed, err = recordsOf("removed", top["removed"]); err != nil {
		return nil, err
	}
	changed := top["changed"].([]any)
	p.Changed = make([]Change, 0, len(changed))
	for i, cv := range changed {
		path := elem("changed", i)
		obj, _ := asObject(cv)
		c := Change{Fields: map[string]FieldDelta{}}
		for j, kv := range obj["key"].([]any) {
			v, err := ir.FromAny(kv)
			if err != nil {
				return nil, invalidAt(elem(path+".key", j), "%v", err)
			}
			c.Key = append(c.Key, v)
		}
		fields, _ := asObject(obj["fields"])
		for col, dv := range fields {
			delta, _ := asObject(dv)
			from, err := ir.FromAny(delta["from"])
			if err != nil {
				return nil, invalidAt(path+".fields."+col+".from", "%v", err)
			}
			to, err := ir.FromAny(delta["to"])
			if err != nil {
				return nil, invalidAt(path+".fields."+col+".to", "%v", err)
			}
			c.Fields[col] = FieldDelta{From: from, To: to}
		}
		p.Changed = append(p.Changed, c)
	}
	return p, nil
}

func recordsOf(path string, v any) ([]ir.Record, error) {
	arr := v.([]any)
	res := make([]ir.Record, 0, len(arr))
	for i, rv := range arr {
		obj, _ := asObject(rv)
		r := make(ir.Record, len(obj))
		for col, cv := range obj {
			val, err := ir.FromAny(cv)
			if err != nil {
				return nil, invalidAt(fmt.Sprintf("%s.%s", elem(path, i), col), "%v", err)
			}
			r[col] = val
		}
		res = append(res, r)
	}
	return res, nil
}
