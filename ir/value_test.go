package ir

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		v  Value
		f  float64
		ok bool
	}{
		{FromString("1.5"), 1.5, true},
		{FromString(" 2 "), 2, true},
		{FromString("1e3"), 1000, true},
		{FromString("red"), 0, false},
		{FromString(""), 0, false},
		{FromInt(7), 7, true},
		{Null(), 0, false},
	}
	for _, tt := range tests {
		f, ok := tt.v.ParseFloat()
		if ok != tt.ok || f != tt.f {
			t.Errorf("%#v.ParseFloat() = (%v, %t), want (%v, %t)", tt.v, f, ok, tt.f, tt.ok)
		}
	}
}

func TestKeyID(t *testing.T) {
	n, err := FromNumber("1.0")
	if err != nil {
		t.Fatal(err)
	}
	if (Key{FromInt(1)}).ID() != (Key{n}).ID() {
		t.Errorf("equal numbers gave different ids")
	}
	if (Key{FromInt(1)}).ID() == (Key{FromString("1")}).ID() {
		t.Errorf("number and string share an id")
	}
	if (Key{FromString("a:b"), FromString("c")}).ID() == (Key{FromString("a"), FromString("b:c")}).ID() {
		t.Errorf("ambiguous id for multi column key")
	}
	negZero, err := FromNumber("-0")
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(negZero, FromInt(0)) || (Key{negZero}).ID() != (Key{FromInt(0)}).ID() {
		t.Errorf("-0 and 0 gave different ids")
	}
	if (Key{Null()}).ID() == (Key{FromString("")}).ID() {
		t.Errorf("null and empty string share an id")
	}
}

func TestKeyOf(t *testing.T) {
	r := FromStrings(map[string]string{"id": "1", "name": "eva"})
	k, missing := KeyOf(r, []string{"name", "id"})
	if missing != "" {
		t.Fatalf("unexpected missing column %q", missing)
	}
	if diff := cmp.Diff(Key{FromString("eva"), FromString("1")}, k); diff != "" {
		t.Errorf("key mismatch (-want +got):\n%s", diff)
	}
	if _, missing := KeyOf(r, []string{"id", "amount"}); missing != "amount" {
		t.Errorf("got missing %q, want amount", missing)
	}
}

func TestValueJSON(t *testing.T) {
	r := Record{
		"a": FromString("20"),
		"b": FromInt(20),
		"c": Null(),
	}
	d, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"a":"20","b":20,"c":null}` {
		t.Errorf("got %s", d)
	}
	var back Record
	if err := json.Unmarshal(d, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(r) {
		t.Errorf("got %#v, want %#v", back, r)
	}
	var v Value
	if err := json.Unmarshal([]byte("true"), &v); err == nil {
		t.Errorf("expected error decoding a boolean")
	}
}

func TestRecordWithoutCopies(t *testing.T) {
	r := FromStrings(map[string]string{"id": "1", "ts": "now"})
	w := r.Without("ts")
	if _, ok := r["ts"]; !ok {
		t.Errorf("Without mutated its receiver")
	}
	if _, ok := w["ts"]; ok {
		t.Errorf("Without kept ts")
	}
}

func TestRecordIsText(t *testing.T) {
	r := FromStrings(map[string]string{"id": "1"})
	r["gap"] = Null()
	if !r.IsText() {
		t.Errorf("strings and nulls should be text")
	}
	r["n"] = FromInt(1)
	if r.IsText() {
		t.Errorf("number counted as text")
	}
}
