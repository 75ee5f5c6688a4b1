package main

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/signadot/csvdiff/format"
)

// Defaults are option values read from a TOML file, used for options not
// given on the command line:
//
//	index = ["id"]
//	ignore = ["updated_at"]
//	sep = ";"
//	significance = 2
//	strict = true
//	format = "yaml"
type Defaults struct {
	Index        []string       `toml:"index"`
	Ignore       []string       `toml:"ignore"`
	Sep          string         `toml:"sep"`
	Significance *int           `toml:"significance"`
	Strict       *bool          `toml:"strict"`
	Format       *format.Format `toml:"format"`
}

// loadDefaults reads the defaults file at path, or $CSVDIFF_CONFIG when
// path is empty. No file gives empty defaults.
func loadDefaults(path string) (*Defaults, error) {
	if path == "" {
		path = os.Getenv("CSVDIFF_CONFIG")
	}
	d := &Defaults{}
	if path == "" {
		return d, nil
	}
	md, err := toml.DecodeFile(path, d)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		theLog.Warn("unknown keys in defaults file", "path", path, "keys", strings.Join(keys, ","))
	}
	theLog.Debug("loaded defaults", "path", path)
	return d, nil
}

func (d *Defaults) applyDiff(cfg *DiffConfig) {
	if !optSet(cfg.Diff, "k") && len(d.Index) != 0 {
		cfg.Key = strings.Join(d.Index, ",")
	}
	if !optSet(cfg.Diff, "ignore") && len(d.Ignore) != 0 {
		cfg.Ignore = strings.Join(d.Ignore, ",")
	}
	if !optSet(cfg.Diff, "sep") && d.Sep != "" {
		cfg.Sep = d.Sep
	}
	if !optSet(cfg.Diff, "sig") && d.Significance != nil {
		cfg.Significance = *d.Significance
	}
	if cfg.OutFormat == nil && d.Format != nil {
		cfg.OutFormat = d.Format
	}
}

func (d *Defaults) applyPatch(cfg *PatchConfig) {
	if !optSet(cfg.Patch, "sep") && d.Sep != "" {
		cfg.Sep = d.Sep
	}
	if !optSet(cfg.Patch, "strict") && d.Strict != nil {
		cfg.Strict = *d.Strict
	}
}
