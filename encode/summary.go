package encode

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/signadot/csvdiff/patch"
)

func encodeSummary(p *patch.Patch, w io.Writer, es *EncState) error {
	if p.IsEmpty() {
		_, err := io.WriteString(w, "files are identical\n")
		return err
	}
	base := es.base
	if base == 0 {
		base = 1
	}
	for _, line := range []struct {
		n    int
		what string
		attr ColorAttr
	}{
		{len(p.Removed), "removed", RemovedColor},
		{len(p.Added), "added", AddedColor},
		{len(p.Changed), "changed", ChangedColor},
	} {
		s := fmt.Sprintf("%s rows %s (%.01f%%)", humanize.Comma(int64(line.n)), line.what,
			100*float64(line.n)/float64(base))
		if es.Color != nil && line.n != 0 {
			s = es.Color(line.attr, s)
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
