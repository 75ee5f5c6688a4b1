package libdiff

import (
	"fmt"
	"slices"

	"github.com/signadot/csvdiff/debug"
	"github.com/signadot/csvdiff/ir"
)

// Index maps index keys to records. When several records share a key the
// last one added wins.
type Index struct {
	Columns []string

	keys  map[string]ir.Key
	recs  map[string]ir.Record
	order []string
}

func NewIndex(columns []string) (*Index, error) {
	if len(columns) == 0 {
		return nil, ErrInvalidKey.New("must provide one or more columns to index on")
	}
	return &Index{
		Columns: slices.Clone(columns),
		keys:    map[string]ir.Key{},
		recs:    map[string]ir.Record{},
	}, nil
}

// MakeIndex indexes records on columns. The records are held, not copied.
func MakeIndex(records []ir.Record, columns []string) (*Index, error) {
	ix, err := NewIndex(columns)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		k, err := ix.KeyOf(r)
		if err != nil {
			return nil, err
		}
		ix.Set(k, r)
	}
	if debug.Index() {
		debug.Logf("indexed %d records into %d keys on %v\n", len(records), ix.Len(), columns)
	}
	return ix, nil
}

// KeyOf extracts the key of r for this index.
func (ix *Index) KeyOf(r ir.Record) (ir.Key, error) {
	k, missing := ir.KeyOf(r, ix.Columns)
	if missing != "" {
		return nil, ErrInvalidKey.New(fmt.Sprintf("invalid column name %q as key", missing))
	}
	return k, nil
}

func (ix *Index) Len() int {
	return len(ix.recs)
}

func (ix *Index) Has(k ir.Key) bool {
	_, ok := ix.recs[k.ID()]
	return ok
}

func (ix *Index) Get(k ir.Key) (ir.Record, bool) {
	r, ok := ix.recs[k.ID()]
	return r, ok
}

func (ix *Index) Set(k ir.Key, r ir.Record) {
	id := k.ID()
	if _, seen := ix.keys[id]; !seen {
		ix.keys[id] = k
		ix.order = append(ix.order, id)
	}
	ix.recs[id] = r
}

// Delete removes k, reporting whether it was present.
func (ix *Index) Delete(k ir.Key) bool {
	id := k.ID()
	if _, ok := ix.recs[id]; !ok {
		return false
	}
	delete(ix.recs, id)
	return true
}

// Keys returns the present keys in the order they were first added.
func (ix *Index) Keys() []ir.Key {
	res := make([]ir.Key, 0, len(ix.recs))
	for _, id := range ix.order {
		if _, ok := ix.recs[id]; ok {
			res = append(res, ix.keys[id])
		}
	}
	return res
}

// Records returns the present records in the order their keys were first
// added.
func (ix *Index) Records() []ir.Record {
	res := make([]ir.Record, 0, len(ix.recs))
	for _, id := range ix.order {
		if r, ok := ix.recs[id]; ok {
			res = append(res, r)
		}
	}
	return res
}

// FilterIgnored returns an index over copies of the records lacking the
// ignore columns. Keys are unchanged and ix is left as is.
func (ix *Index) FilterIgnored(ignore []string) *Index {
	res := &Index{
		Columns: slices.Clone(ix.Columns),
		keys:    make(map[string]ir.Key, len(ix.keys)),
		recs:    make(map[string]ir.Record, len(ix.recs)),
		order:   make([]string, 0, len(ix.recs)),
	}
	for _, id := range ix.order {
		r, ok := ix.recs[id]
		if !ok {
			continue
		}
		res.keys[id] = ix.keys[id]
		res.recs[id] = r.Without(ignore...)
		res.order = append(res.order, id)
	}
	return res
}
