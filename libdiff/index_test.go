package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/csvdiff/ir"
)

func rec(kvs ...string) ir.Record {
	r := ir.Record{}
	for i := 0; i+1 < len(kvs); i += 2 {
		r[kvs[i]] = ir.FromString(kvs[i+1])
	}
	return r
}

func key(vs ...string) ir.Key {
	k := make(ir.Key, len(vs))
	for i, v := range vs {
		k[i] = ir.FromString(v)
	}
	return k
}

func TestMakeIndexErrors(t *testing.T) {
	recs := []ir.Record{rec("id", "1", "name", "eva")}
	if _, err := MakeIndex(recs, nil); !ErrInvalidKey.Is(err) {
		t.Errorf("empty columns: got %v, want invalid key", err)
	}
	_, err := MakeIndex(recs, []string{"id", "nope"})
	if !ErrInvalidKey.Is(err) {
		t.Fatalf("missing column: got %v, want invalid key", err)
	}
	if want := `invalid key: invalid column name "nope" as key`; err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestMakeIndexLastWins(t *testing.T) {
	recs := []ir.Record{
		rec("id", "1", "v", "a"),
		rec("id", "2", "v", "b"),
		rec("id", "1", "v", "c"),
	}
	ix, err := MakeIndex(recs, []string{"id"})
	if err != nil {
		t.Fatal(err)
	}
	if ix.Len() != 2 {
		t.Fatalf("got %d keys, want 2", ix.Len())
	}
	r, ok := ix.Get(key("1"))
	if !ok {
		t.Fatal("key 1 missing")
	}
	if diff := cmp.Diff(rec("id", "1", "v", "c"), r); diff != "" {
		t.Errorf("last record should win (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]ir.Key{key("1"), key("2")}, ix.Keys()); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
}

func TestMakeIndexMultiColumn(t *testing.T) {
	recs := []ir.Record{
		rec("name", "a", "type", "1", "sheep", "7"),
		rec("name", "a", "type", "2", "sheep", "12"),
	}
	ix, err := MakeIndex(recs, []string{"name", "type"})
	if err != nil {
		t.Fatal(err)
	}
	if !ix.Has(key("a", "2")) || ix.Has(key("2", "a")) {
		t.Errorf("multi column keys are positional")
	}
}

func TestIndexDeleteAndSet(t *testing.T) {
	ix, err := MakeIndex([]ir.Record{rec("id", "1"), rec("id", "2")}, []string{"id"})
	if err != nil {
		t.Fatal(err)
	}
	if !ix.Delete(key("1")) {
		t.Fatal("delete of present key reported absent")
	}
	if ix.Delete(key("1")) {
		t.Fatal("second delete reported present")
	}
	ix.Set(key("3"), rec("id", "3"))
	ix.Set(key("1"), rec("id", "1", "back", "yes"))
	if diff := cmp.Diff([]ir.Key{key("1"), key("2"), key("3")}, ix.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestFilterIgnored(t *testing.T) {
	orig := rec("id", "1", "name", "eva", "ts", "x")
	ix, err := MakeIndex([]ir.Record{orig}, []string{"id"})
	if err != nil {
		t.Fatal(err)
	}
	filtered := ix.FilterIgnored([]string{"ts", "absent"})
	r, _ := filtered.Get(key("1"))
	if diff := cmp.Diff(rec("id", "1", "name", "eva"), r); diff != "" {
		t.Errorf("filtered record (-want +got):\n%s", diff)
	}
	if _, ok := orig["ts"]; !ok {
		t.Errorf("FilterIgnored mutated the source record")
	}
	r, _ = ix.Get(key("1"))
	if _, ok := r["ts"]; !ok {
		t.Errorf("FilterIgnored mutated the source index")
	}
}
