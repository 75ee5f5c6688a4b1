package encode

import "github.com/signadot/csvdiff/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// EncodeStrict sets whether JSON Patch output tests the values it
// replaces or removes.
func EncodeStrict(v bool) EncodeOption {
	return func(es *EncState) { es.strict = v }
}

// EncodeBase gives the number of records the patch was computed from,
// against which the summary reports proportions.
func EncodeBase(n int) EncodeOption {
	return func(es *EncState) { es.base = n }
}
