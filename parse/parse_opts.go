package parse

import "github.com/signadot/csvdiff/format"

type parseOpts struct {
	format *format.Format
}

type ParseOption func(*parseOpts)

// ParseFormat fixes the input format. Without it the format is detected
// from the input.
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = &f }
}
