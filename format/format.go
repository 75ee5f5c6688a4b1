package format

import (
	"errors"
	"fmt"
	"strings"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
	JSONPatchFormat
	SummaryFormat
	TextFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":         JSONFormat,
		"json":      JSONFormat,
		"y":         YAMLFormat,
		"yaml":      YAMLFormat,
		"jp":        JSONPatchFormat,
		"jsonpatch": JSONPatchFormat,
		"s":         SummaryFormat,
		"summary":   SummaryFormat,
		"t":         TextFormat,
		"text":      TextFormat,
	}[v]
	if ok {
		return f, nil
	}
	names := make([]string, 0, len(AllFormats()))
	for _, f := range AllFormats() {
		names = append(names, f.String())
	}
	return 0, fmt.Errorf("%w: %q, expected one of %s", ErrBadFormat, v, strings.Join(names, ", "))
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONPatchFormat:
		return []byte("jsonpatch"), nil
	case SummaryFormat:
		return []byte("summary"), nil
	case TextFormat:
		return []byte("text"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// IsLoadable reports whether a patch written in f can be read back.
func (f Format) IsLoadable() bool {
	return f == JSONFormat || f == YAMLFormat || f == JSONPatchFormat
}

// AllFormats returns all supported formats.
func AllFormats() []Format {
	return []Format{JSONFormat, YAMLFormat, JSONPatchFormat, SummaryFormat, TextFormat}
}
