package parse

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/signadot/csvdiff/debug"
	"github.com/signadot/csvdiff/format"
	"github.com/signadot/csvdiff/patch"
)

// Parse decodes and validates a patch document.
func Parse(d []byte, opts ...ParseOption) (*patch.Patch, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	fmat := Detect(d)
	if pOpts.format != nil {
		fmat = *pOpts.format
	}
	if debug.Codec() {
		debug.Logf("parsing %d bytes as %s\n", len(d), fmat)
	}
	var (
		doc any
		err error
	)
	switch fmat {
	case format.JSONFormat:
		doc, err = decodeJSON(d)
	case format.YAMLFormat:
		err = yaml.Unmarshal(d, &doc)
	case format.JSONPatchFormat:
		return nil, patch.ErrInvalidPatch.New("json patch operations cannot be read as a patch document")
	default:
		return nil, fmt.Errorf("%w: cannot parse %s", format.ErrBadFormat, fmat)
	}
	if err != nil {
		return nil, patch.ErrInvalidPatch.New(err.Error())
	}
	if debug.Codec() {
		debug.LogAny(doc)
		debug.Logf("\n")
	}
	return patch.FromDocument(doc)
}

// Detect guesses the format of a patch document: JSON objects, JSON Patch
// arrays and otherwise YAML.
func Detect(d []byte) format.Format {
	d = bytes.TrimSpace(d)
	switch {
	case len(d) == 0:
		return format.YAMLFormat
	case d[0] == '{':
		return format.JSONFormat
	case patch.IsJSONPatch(d):
		return format.JSONPatchFormat
	}
	return format.YAMLFormat
}

func decodeJSON(d []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after json document")
	}
	return doc, nil
}
