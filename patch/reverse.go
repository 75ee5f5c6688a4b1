package patch

// Reverse returns the patch undoing p: added and removed records trade
// places and every delta's from and to are swapped.
func Reverse(p *Patch) *Patch {
	tmp := p.Clone()
	tmp.Added, tmp.Removed = tmp.Removed, tmp.Added
	for _, c := range tmp.Changed {
		for col, d := range c.Fields {
			c.Fields[col] = FieldDelta{From: d.To, To: d.From}
		}
	}
	return tmp
}
