package libdiff

import (
	"slices"

	"github.com/signadot/csvdiff/ir"
)

// KeySet is a set of keys indexed by their ID.
type KeySet map[string]ir.Key

// Sorted returns the keys of s in ascending order.
func (s KeySet) Sorted() []ir.Key {
	res := make([]ir.Key, 0, len(s))
	for _, k := range s {
		res = append(res, k)
	}
	slices.SortFunc(res, ir.Key.Compare)
	return res
}

// DiffKeys splits the keys of from and to into those only in from
// (removed), only in to (added) and in both (shared).
func DiffKeys(from, to *Index) (removed, added, shared KeySet) {
	removed, added, shared = KeySet{}, KeySet{}, KeySet{}
	for id := range from.recs {
		if _, ok := to.recs[id]; ok {
			shared[id] = from.keys[id]
			continue
		}
		removed[id] = from.keys[id]
	}
	for id := range to.recs {
		if _, ok := from.recs[id]; !ok {
			added[id] = to.keys[id]
		}
	}
	return removed, added, shared
}
