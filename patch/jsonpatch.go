package patch

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/signadot/csvdiff/debug"
	"github.com/signadot/csvdiff/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// IndexMember is the member of a keyed document holding its index columns.
const IndexMember = "_index"

// A keyed document is a JSON object with one member per record, named by
// the JSON encoding of the record's key, plus the IndexMember. JSON Patch
// (RFC 6902) operations produced by ToJSONPatch address records and
// fields within such a document.

type jsonOp struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// KeyMember gives the keyed document member name for k.
func KeyMember(k ir.Key) (string, error) {
	d, err := json.Marshal(k)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func pointer(parts ...string) string {
	buf := &strings.Builder{}
	for _, p := range parts {
		buf.WriteByte('/')
		p = strings.ReplaceAll(p, "~", "~0")
		buf.WriteString(strings.ReplaceAll(p, "/", "~1"))
	}
	return buf.String()
}

// ToJSONPatch renders p as JSON Patch operations over a keyed document,
// ordered add, remove, change. The first operation tests the document's
// index columns. When strict is set, removals and changes are preceded by
// test operations on the values p expects to find.
func ToJSONPatch(p *Patch, strict bool) ([]byte, error) {
	index, err := json.Marshal(p.Index)
	if err != nil {
		return nil, err
	}
	ops := []jsonOp{{Op: "test", Path: pointer(IndexMember), Value: index}}
	for _, r := range p.Added {
		k, missing := ir.KeyOf(r, p.Index)
		if missing != "" {
			return nil, ErrInvalidPatch.New(fmt.Sprintf("added record lacks index column %q", missing))
		}
		op, err := recordOp("add", k, r)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	for _, r := range p.Removed {
		k, missing := ir.KeyOf(r, p.Index)
		if missing != "" {
			return nil, ErrInvalidPatch.New(fmt.Sprintf("removed record lacks index column %q", missing))
		}
		if strict {
			op, err := recordOp("test", k, r)
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
		}
		op, err := recordOp("remove", k, nil)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	for _, c := range p.Changed {
		m, err := KeyMember(c.Key)
		if err != nil {
			return nil, err
		}
		for _, col := range c.Columns() {
			d := c.Fields[col]
			if strict && !d.From.IsNull() {
				from, err := json.Marshal(d.From)
				if err != nil {
					return nil, err
				}
				ops = append(ops, jsonOp{Op: "test", Path: pointer(m, col), Value: from})
			}
			to, err := json.Marshal(d.To)
			if err != nil {
				return nil, err
			}
			ops = append(ops, jsonOp{Op: "add", Path: pointer(m, col), Value: to})
		}
	}
	return json.Marshal(ops)
}

func recordOp(op string, k ir.Key, r ir.Record) (jsonOp, error) {
	m, err := KeyMember(k)
	if err != nil {
		return jsonOp{}, err
	}
	res := jsonOp{Op: op, Path: pointer(m)}
	if r == nil {
		return res, nil
	}
	res.Value, err = json.Marshal(r)
	return res, err
}

// KeyedDocument renders records as a keyed document on index.
func KeyedDocument(recs []ir.Record, index []string) ([]byte, error) {
	doc := make(map[string]any, len(recs)+1)
	doc[IndexMember] = index
	for _, r := range recs {
		k, missing := ir.KeyOf(r, index)
		if missing != "" {
			return nil, fmt.Errorf("record lacks index column %q", missing)
		}
		m, err := KeyMember(k)
		if err != nil {
			return nil, err
		}
		doc[m] = r
	}
	return json.Marshal(doc)
}

// IsJSONPatch reports whether d looks like a JSON Patch document, that is
// a JSON array rather than an object.
func IsJSONPatch(d []byte) bool {
	d = bytes.TrimSpace(d)
	return len(d) != 0 && d[0] == '['
}

// ApplyJSONPatch applies JSON Patch operations produced by ToJSONPatch to
// recs, returning the resulting records in canonical order. The index
// columns are read from the leading test operation.
func ApplyJSONPatch(recs []ir.Record, ops []byte) ([]ir.Record, error) {
	var raw []jsonOp
	if err := json.Unmarshal(ops, &raw); err != nil {
		return nil, ErrInvalidPatch.New(err.Error())
	}
	var index []string
	for _, op := range raw {
		if op.Op == "test" && op.Path == pointer(IndexMember) {
			if err := json.Unmarshal(op.Value, &index); err != nil {
				return nil, ErrInvalidPatch.New(fmt.Sprintf("bad index columns: %v", err))
			}
			break
		}
	}
	if len(index) == 0 {
		return nil, ErrInvalidPatch.New("json patch does not test " + pointer(IndexMember))
	}
	jp, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, ErrInvalidPatch.New(err.Error())
	}
	doc, err := KeyedDocument(recs, index)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("applying %d json patch operations on %v\n", len(raw), index)
	}
	out, err := jp.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("cannot apply json patch: %w", err)
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(out, &members); err != nil {
		return nil, err
	}
	res := make([]ir.Record, 0, len(members))
	for m, d := range members {
		if m == IndexMember {
			continue
		}
		var r ir.Record
		if err := json.Unmarshal(d, &r); err != nil {
			return nil, fmt.Errorf("record %s: %w", m, err)
		}
		res = append(res, r)
	}
	ir.SortRecords(res)
	return res, nil
}
