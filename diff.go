package csvdiff

import (
	"fmt"
	"slices"

	"github.com/signadot/csvdiff/debug"
	"github.com/signadot/csvdiff/ir"
	"github.com/signadot/csvdiff/libdiff"
	"github.com/signadot/csvdiff/patch"
)

type DiffConfig struct {
	Ignore []string
	// Significance is the number of decimal places at which numeric
	// changes are compared, when non-negative.
	Significance int
}

type DiffOpt func(*DiffConfig)

// Ignore excludes columns from comparison. Ignored columns still appear in
// added and removed records.
func Ignore(columns ...string) DiffOpt {
	return func(c *DiffConfig) { c.Ignore = append(c.Ignore, columns...) }
}

// Significance drops numeric changes which agree to n decimal places.
func Significance(n int) DiffOpt {
	return func(c *DiffConfig) { c.Significance = n }
}

// Diff computes the patch turning from into to, with records identified
// by the index columns.
func Diff(from, to []ir.Record, index []string, opts ...DiffOpt) (*patch.Patch, error) {
	cfg := &DiffConfig{Significance: -1}
	for _, o := range opts {
		o(cfg)
	}
	for _, c := range cfg.Ignore {
		if slices.Contains(index, c) {
			return nil, ErrConfiguration.New(fmt.Sprintf("cannot ignore index column %q", c))
		}
	}
	fromIx, err := libdiff.MakeIndex(from, index)
	if err != nil {
		return nil, err
	}
	toIx, err := libdiff.MakeIndex(to, index)
	if err != nil {
		return nil, err
	}
	removed, added, shared := libdiff.DiffKeys(fromIx, toIx)
	if debug.Diff() {
		debug.Logf("keys: %d removed, %d added, %d shared\n", len(removed), len(added), len(shared))
	}
	cmpFrom, cmpTo := fromIx, toIx
	if len(cfg.Ignore) != 0 {
		cmpFrom, cmpTo = fromIx.FilterIgnored(cfg.Ignore), toIx.FilterIgnored(cfg.Ignore)
	}
	changed := libdiff.DiffShared(cmpFrom, cmpTo, shared)

	p := patch.Assemble(
		index,
		records(toIx, added),
		records(fromIx, removed),
		libdiff.Changes(cmpFrom, cmpTo, changed),
	)
	if cfg.Significance >= 0 {
		p = patch.FilterSignificance(p, cfg.Significance)
	}
	return p, nil
}

func records(ix *libdiff.Index, keys libdiff.KeySet) []ir.Record {
	res := make([]ir.Record, 0, len(keys))
	for _, k := range keys {
		r, _ := ix.Get(k)
		res = append(res, r.Clone())
	}
	return res
}
