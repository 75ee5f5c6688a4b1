package encode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/signadot/csvdiff/debug"
	"github.com/signadot/csvdiff/format"
	"github.com/signadot/csvdiff/patch"
)

type EncState struct {
	format format.Format
	wire   bool
	strict bool
	base   int

	Color func(ColorAttr, string) string
}

// Encode writes p to w.
func Encode(p *patch.Patch, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{strict: true}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Codec() {
		debug.Logf("encoding patch as %s (wire=%t)\n", es.format, es.wire)
	}
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(p, w, es)
	case format.YAMLFormat:
		return encodeYAML(p, w)
	case format.JSONPatchFormat:
		return encodeJSONPatch(p, w, es)
	case format.SummaryFormat:
		return encodeSummary(p, w, es)
	case format.TextFormat:
		return encodeText(p, w, es)
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

func encodeJSON(p *patch.Patch, w io.Writer, es *EncState) error {
	var (
		d   []byte
		err error
	)
	if es.wire {
		d, err = json.Marshal(p)
	} else {
		d, err = json.MarshalIndent(p, "", "  ")
	}
	if err != nil {
		return err
	}
	return writeLine(w, d)
}

func encodeYAML(p *patch.Patch, w io.Writer) error {
	d, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func encodeJSONPatch(p *patch.Patch, w io.Writer, es *EncState) error {
	d, err := patch.ToJSONPatch(p, es.strict)
	if err != nil {
		return err
	}
	if !es.wire {
		buf := &bytes.Buffer{}
		if err := json.Indent(buf, d, "", "  "); err != nil {
			return err
		}
		d = buf.Bytes()
	}
	return writeLine(w, d)
}

func writeLine(w io.Writer, d []byte) error {
	if _, err := w.Write(d); err != nil {
		return err
	}
	_, err := w.Write([]byte{'\n'})
	return err
}
