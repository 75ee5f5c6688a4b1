package patch

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/signadot/csvdiff/ir"
)

func decode(t *testing.T, src string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(src))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path string
	}{
		{"ok", `{"_index":["id"],"added":[],"removed":[],"changed":[]}`, ""},
		{"ok changed", `{"_index":["id"],"added":[{"id":"1","x":null}],"removed":[],
			"changed":[{"key":["2"],"fields":{"amt":{"from":"30","to":33}}}]}`, ""},
		{"not an object", `[]`, "expected an object"},
		{"missing index", `{"added":[],"removed":[],"changed":[]}`, `"_index"`},
		{"missing changed", `{"_index":["id"],"added":[],"removed":[]}`, `"changed"`},
		{"empty index", `{"_index":[],"added":[],"removed":[],"changed":[]}`, "_index: must name"},
		{"index not strings", `{"_index":[1],"added":[],"removed":[],"changed":[]}`, "_index[0]"},
		{"nested record", `{"_index":["id"],"added":[{"id":{"a":1}}],"removed":[],"changed":[]}`, "added[0].id"},
		{"removed not object", `{"_index":["id"],"added":[],"removed":["x"],"changed":[]}`, "removed[0]"},
		{"key arity", `{"_index":["id","name"],"added":[],"removed":[],
			"changed":[{"key":["2"],"fields":{"amt":{"from":"30","to":"33"}}}]}`, "changed[0].key"},
		{"empty fields", `{"_index":["id"],"added":[],"removed":[],
			"changed":[{"key":["2"],"fields":{}}]}`, "changed[0].fields"},
		{"missing to", `{"_index":["id"],"added":[],"removed":[],
			"changed":[{"key":["2"],"fields":{"amt":{"from":"30"}}}]}`, `changed[0].fields.amt: missing required field "to"`},
		{"boolean", `{"_index":["id"],"added":[],"removed":[],
			"changed":[{"key":[true],"fields":{"amt":{"from":"30","to":"1"}}}]}`, "changed[0].key[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(decode(t, tt.doc))
			if tt.path == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error mentioning %q", tt.path)
			}
			if !ErrInvalidPatch.Is(err) {
				t.Errorf("error %v is not an invalid patch error", err)
			}
			if !strings.Contains(err.Error(), tt.path) {
				t.Errorf("error %q does not mention %q", err, tt.path)
			}
		})
	}
}

func TestFromDocument(t *testing.T) {
	doc := decode(t, `{
		"_index": ["id"],
		"added": [{"amt": "50", "id": "4", "name": "zed"}],
		"changed": [{"key": ["2"], "fields": {"amt": {"from": "30", "to": "33"}}}],
		"removed": [{"amt": "40", "id": "3", "name": "mia"}]
	}`)
	if !IsValid(doc) {
		t.Fatal("sample document invalid")
	}
	p, err := FromDocument(doc)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sample(), p); diff != "" {
		t.Errorf("patch (-want +got):\n%s", diff)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("typed validate: %v", err)
	}
}

func TestFromDocumentNumbers(t *testing.T) {
	p, err := FromDocument(decode(t, `{"_index":["id"],"added":[{"id":1,"amt":2.50}],"removed":[],"changed":[]}`))
	if err != nil {
		t.Fatal(err)
	}
	amt := p.Added[0]["amt"]
	if amt.Type != ir.NumberType || amt.Number != "2.50" {
		t.Errorf("got %#v, want literal 2.50", amt)
	}
	if !IsTyped(p) {
		t.Errorf("expected typed patch")
	}
}

func TestPatchValidate(t *testing.T) {
	p := sample()
	p.Changed[0].Key = append(p.Changed[0].Key, ir.FromString("extra"))
	if err := p.Validate(); err == nil || !ErrInvalidPatch.Is(err) {
		t.Errorf("expected invalid patch, got %v", err)
	}
	p = sample()
	p.Index = nil
	if err := p.Validate(); err == nil {
		t.Errorf("expected error for empty index")
	}
}
