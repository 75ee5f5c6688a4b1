package encode

import (
	"io"
	"slices"
	"strings"

	"github.com/signadot/csvdiff/ir"
	"github.com/signadot/csvdiff/libdiff"
	"github.com/signadot/csvdiff/patch"
)

// encodeText lists removed records with a leading '-', added ones with a
// '+' and changed ones with a '~' followed by one line per field. Text
// fields with small edits show them inline, marked [-like this-]{+so+}
// without colors.
func encodeText(p *patch.Patch, w io.Writer, es *EncState) error {
	color := es.Color
	if color == nil {
		color = func(_ ColorAttr, s string) string { return s }
	}
	buf := &strings.Builder{}
	for _, r := range p.Removed {
		buf.WriteString(color(RemovedColor, "- "+recordText(r, p.Index)))
		buf.WriteByte('\n')
	}
	for _, r := range p.Added {
		buf.WriteString(color(AddedColor, "+ "+recordText(r, p.Index)))
		buf.WriteByte('\n')
	}
	for _, c := range p.Changed {
		buf.WriteString(color(ChangedColor, "~ "))
		buf.WriteString(color(KeyColor, keyText(c.Key, p.Index)))
		buf.WriteByte('\n')
		for _, col := range c.Columns() {
			d := c.Fields[col]
			buf.WriteString("    ")
			buf.WriteString(color(FieldColor, col))
			buf.WriteString(": ")
			buf.WriteString(deltaText(d, es.Color))
			buf.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

func recordText(r ir.Record, index []string) string {
	cols := slices.Clone(index)
	for _, c := range r.Columns() {
		if !slices.Contains(index, c) {
			cols = append(cols, c)
		}
	}
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		v, ok := r[c]
		if !ok {
			continue
		}
		parts = append(parts, c+"="+v.GoString())
	}
	return strings.Join(parts, " ")
}

func keyText(k ir.Key, index []string) string {
	parts := make([]string, len(k))
	for i, v := range k {
		name := "?"
		if i < len(index) {
			name = index[i]
		}
		parts[i] = name + "=" + v.GoString()
	}
	return strings.Join(parts, " ")
}

func deltaText(d patch.FieldDelta, color func(ColorAttr, string) string) string {
	if d.From.Type == ir.StringType && d.To.Type == ir.StringType {
		if spans := libdiff.DiffString(d.From.String, d.To.String); spans != nil {
			return spansText(spans, color)
		}
	}
	return d.From.GoString() + " -> " + d.To.GoString()
}

func spansText(spans []libdiff.Span, color func(ColorAttr, string) string) string {
	buf := &strings.Builder{}
	for _, s := range spans {
		switch {
		case s.Op == libdiff.SpanEqual:
			buf.WriteString(s.Text)
		case color != nil && s.Op == libdiff.SpanDelete:
			buf.WriteString(color(DeleteColor, s.Text))
		case color != nil:
			buf.WriteString(color(InsertColor, s.Text))
		case s.Op == libdiff.SpanDelete:
			buf.WriteString("[-" + s.Text + "-]")
		default:
			buf.WriteString("{+" + s.Text + "+}")
		}
	}
	return buf.String()
}
