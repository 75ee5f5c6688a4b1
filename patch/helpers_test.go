package patch

import "github.com/signadot/csvdiff/ir"

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

func delta(from, to string) FieldDelta {
	return FieldDelta{From: ir.FromString(from), To: ir.FromString(to)}
}

// sample is the patch between
//
//	id,name,amt        id,name,amt
//	1,eva,20           1,eva,20
//	2,bob,30    ->     2,bob,33
//	3,mia,40           4,zed,50
func sample() *Patch {
	return Assemble(
		[]string{"id"},
		[]ir.Record{rec("id", "4", "name", "zed", "amt", "50")},
		[]ir.Record{rec("id", "3", "name", "mia", "amt", "40")},
		[]Change{{Key: key("2"), Fields: map[string]FieldDelta{"amt": delta("30", "33")}}},
	)
}
