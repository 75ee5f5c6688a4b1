package patch

import "github.com/signadot/csvdiff/ir"

// IsTyped reports whether p carries numbers, as opposed to the plain text
// read from delimited files. Nulls stand for absent columns and do not
// count.
func IsTyped(p *Patch) bool {
	for _, r := range p.Added {
		if !r.IsText() {
			return true
		}
	}
	for _, r := range p.Removed {
		if !r.IsText() {
			return true
		}
	}
	for _, c := range p.Changed {
		for _, v := range c.Key {
			if v.Type == ir.NumberType {
				return true
			}
		}
		for _, d := range c.Fields {
			if d.From.Type == ir.NumberType || d.To.Type == ir.NumberType {
				return true
			}
		}
	}
	return false
}

// ToText returns a copy of p with every number replaced by its literal
// text, so that it can be applied to records read from delimited files.
func ToText(p *Patch) *Patch {
	res := p.Clone()
	for _, r := range res.Added {
		textRecord(r)
	}
	for _, r := range res.Removed {
		textRecord(r)
	}
	for i := range res.Changed {
		c := &res.Changed[i]
		for j, v := range c.Key {
			c.Key[j] = text(v)
		}
		for col, d := range c.Fields {
			c.Fields[col] = FieldDelta{From: text(d.From), To: text(d.To)}
		}
	}
	return res
}

func textRecord(r ir.Record) {
	for col, v := range r {
		r[col] = text(v)
	}
}

func text(v ir.Value) ir.Value {
	if v.Type != ir.NumberType {
		return v
	}
	return ir.FromString(v.Text())
}
