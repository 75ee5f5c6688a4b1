package libdiff

import (
	"maps"
	"slices"

	"github.com/signadot/csvdiff/debug"
	"github.com/signadot/csvdiff/ir"
	"github.com/signadot/csvdiff/patch"
)

// DiffShared returns the keys in shared whose records in from and to hold
// different (column, value) pairs.
func DiffShared(from, to *Index, shared KeySet) KeySet {
	changed := KeySet{}
	for id, k := range shared {
		if !from.recs[id].Equal(to.recs[id]) {
			changed[id] = k
		}
	}
	if debug.Diff() {
		debug.Logf("%d of %d shared keys changed\n", len(changed), len(shared))
	}
	return changed
}

// DiffRecord computes the field deltas between two versions of a record.
// A column missing on one side is compared as null.
func DiffRecord(from, to ir.Record) map[string]patch.FieldDelta {
	cols := slices.Collect(maps.Keys(from))
	for c := range to {
		if _, ok := from[c]; !ok {
			cols = append(cols, c)
		}
	}
	res := map[string]patch.FieldDelta{}
	for _, c := range cols {
		f, t := from.Get(c), to.Get(c)
		if ir.Equal(f, t) {
			continue
		}
		res[c] = patch.FieldDelta{From: f, To: t}
	}
	return res
}

// Changes builds the change entries for changed keys.
func Changes(from, to *Index, changed KeySet) []patch.Change {
	res := make([]patch.Change, 0, len(changed))
	for id, k := range changed {
		fields := DiffRecord(from.recs[id], to.recs[id])
		if len(fields) == 0 {
			// only presence differs, e.g. a missing column against null
			continue
		}
		res = append(res, patch.Change{Key: k, Fields: fields})
	}
	return res
}
