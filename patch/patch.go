package patch

import (
	"maps"
	"slices"

	"github.com/signadot/csvdiff/ir"
)

// Patch describes the edits turning one dataset into another, addressed by
// the values of the index columns.
type Patch struct {
	Index   []string    `json:"_index" yaml:"_index"`
	Added   []ir.Record `json:"added" yaml:"added"`
	Changed []Change    `json:"changed" yaml:"changed"`
	Removed []ir.Record `json:"removed" yaml:"removed"`
}

// Change holds the differing fields of a record present on both sides.
type Change struct {
	Fields map[string]FieldDelta `json:"fields" yaml:"fields"`
	Key    ir.Key                `json:"key" yaml:"key"`
}

type FieldDelta struct {
	From ir.Value `json:"from" yaml:"from"`
	To   ir.Value `json:"to" yaml:"to"`
}

// Assemble builds a patch in canonical order: added and removed records are
// sorted with ir.SortRecords and changes by key. The argument slices are
// sorted in place.
func Assemble(index []string, added, removed []ir.Record, changed []Change) *Patch {
	if added == nil {
		added = []ir.Record{}
	}
	if removed == nil {
		removed = []ir.Record{}
	}
	if changed == nil {
		changed = []Change{}
	}
	ir.SortRecords(added)
	ir.SortRecords(removed)
	SortChanges(changed)
	return &Patch{
		Index:   slices.Clone(index),
		Added:   added,
		Changed: changed,
		Removed: removed,
	}
}

func SortChanges(cs []Change) {
	slices.SortStableFunc(cs, func(a, b Change) int {
		return a.Key.Compare(b.Key)
	})
}

// IsEmpty reports whether p makes no edits.
func (p *Patch) IsEmpty() bool {
	return len(p.Added) == 0 && len(p.Removed) == 0 && len(p.Changed) == 0
}

func (p *Patch) Clone() *Patch {
	res := &Patch{
		Index:   slices.Clone(p.Index),
		Added:   ir.CloneRecords(p.Added),
		Removed: ir.CloneRecords(p.Removed),
		Changed: make([]Change, len(p.Changed)),
	}
	for i, c := range p.Changed {
		res.Changed[i] = Change{
			Key:    slices.Clone(c.Key),
			Fields: maps.Clone(c.Fields),
		}
	}
	return res
}

// Columns gives the sorted field names of a change.
func (c Change) Columns() []string {
	return slices.Sorted(maps.Keys(c.Fields))
}
