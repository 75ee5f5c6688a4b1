package csvdiff

import (
	"github.com/signadot/csvdiff/debug"
	"github.com/signadot/csvdiff/ir"
	"github.com/signadot/csvdiff/libdiff"
	"github.com/signadot/csvdiff/patch"
)

type PatchConfig struct {
	Strict bool
}

type PatchOpt func(*PatchConfig)

// Strict sets whether Patch fails on conflicts. It defaults to true.
func Strict(v bool) PatchOpt {
	return func(c *PatchConfig) { c.Strict = v }
}

// Patch applies p to records, returning the patched records in canonical
// order. records are not modified.
//
// Additions are applied first, then removals, then changes. In strict mode
// the first conflict is returned as a *ConflictError and no records are
// produced. Otherwise additions overwrite, removals of absent keys are
// ignored and changes to absent keys are skipped.
func Patch(records []ir.Record, p *patch.Patch, opts ...PatchOpt) ([]ir.Record, error) {
	cfg := &PatchConfig{Strict: true}
	for _, o := range opts {
		o(cfg)
	}
	ix, err := libdiff.MakeIndex(ir.CloneRecords(records), p.Index)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	a := &applier{cfg: cfg, ix: ix}
	if err := a.add(p.Added); err != nil {
		return nil, err
	}
	if err := a.remove(p.Removed); err != nil {
		return nil, err
	}
	if err := a.change(p.Changed); err != nil {
		return nil, err
	}
	res := ix.Records()
	ir.SortRecords(res)
	return res, nil
}

type applier struct {
	cfg *PatchConfig
	ix  *libdiff.Index
}

func (a *applier) add(recs []ir.Record) error {
	added, err := libdiff.MakeIndex(recs, a.ix.Columns)
	if err != nil {
		return err
	}
	for _, k := range added.Keys() {
		if a.cfg.Strict && a.ix.Has(k) {
			return &ConflictError{Reason: KeyExists, Key: k}
		}
		r, _ := added.Get(k)
		if debug.Patch() {
			debug.Logf("add %s\n", k)
		}
		a.ix.Set(k, r.Clone())
	}
	return nil
}

func (a *applier) remove(recs []ir.Record) error {
	removed, err := libdiff.MakeIndex(recs, a.ix.Columns)
	if err != nil {
		return err
	}
	for _, k := range removed.Keys() {
		if a.cfg.Strict {
			cur, ok := a.ix.Get(k)
			if !ok {
				return &ConflictError{Reason: KeyMissing, Key: k}
			}
			want, _ := removed.Get(k)
			if !cur.Equal(want) {
				return &ConflictError{Reason: RecordChanged, Key: k}
			}
		}
		if debug.Patch() {
			debug.Logf("remove %s\n", k)
		}
		a.ix.Delete(k)
	}
	return nil
}

func (a *applier) change(cs []patch.Change) error {
	for _, c := range cs {
		cur, ok := a.ix.Get(c.Key)
		if !ok {
			if a.cfg.Strict {
				return &ConflictError{Reason: ChangeKeyMissing, Key: c.Key}
			}
			if debug.Patch() {
				debug.Logf("skip change of missing %s\n", c.Key)
			}
			continue
		}
		for _, col := range c.Columns() {
			d := c.Fields[col]
			if a.cfg.Strict {
				if found := cur.Get(col); !ir.Equal(found, d.From) {
					return &ConflictError{
						Reason:   FieldChanged,
						Key:      c.Key,
						Column:   col,
						Expected: d.From,
						Found:    found,
					}
				}
			}
			cur[col] = d.To
		}
	}
	return nil
}
