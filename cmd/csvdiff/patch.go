package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/csvdiff"
	"github.com/signadot/csvdiff/format"
	"github.com/signadot/csvdiff/ir"
	"github.com/signadot/csvdiff/parse"
	libpatch "github.com/signadot/csvdiff/patch"
	"github.com/signadot/csvdiff/table"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(2)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: patch requires 1 argument, the file to which to apply it", cli.ErrUsage)
	}
	stdinPatch := cfg.Input == "" || cfg.Input == "-"
	if stdinPatch && args[0] == "-" {
		return fmt.Errorf("%w: patch and file cannot both be read from stdin", cli.ErrUsage)
	}
	defaults, err := loadDefaults(cfg.Config)
	if err != nil {
		return stderrExit(fmt.Errorf("error reading defaults: %w", err))
	}
	defaults.applyPatch(cfg)
	sep, err := parseSep(cfg.Sep)
	if err != nil {
		return err
	}
	var d []byte
	if stdinPatch {
		d, err = io.ReadAll(cc.In)
	} else {
		d, err = os.ReadFile(cfg.Input)
	}
	if err != nil {
		return stderrExit(fmt.Errorf("error reading patch: %w", err))
	}
	orig, err := loadTable(args[0], sep)
	if err != nil {
		return stderrExit(err)
	}
	run := &patchRun{
		strict:   cfg.Strict,
		reverse:  cfg.Reverse,
		sep:      sep,
		inFormat: cfg.InFormat,
	}
	return stderrExit(patchTable(cc.Out, orig, d, run))
}

type patchRun struct {
	strict   bool
	reverse  bool
	sep      rune
	inFormat *format.Format
}

// patchTable applies the patch document d to t and writes the result to w
// as delimited text.
func patchTable(w io.Writer, t *table.Table, d []byte, run *patchRun) error {
	var (
		index []string
		recs  []ir.Record
		err   error
	)
	fmat := parse.Detect(d)
	if run.inFormat != nil {
		if !run.inFormat.IsLoadable() {
			return fmt.Errorf("%w: patches cannot be read in %s format", cli.ErrUsage, *run.inFormat)
		}
		fmat = *run.inFormat
	}
	if fmat == format.JSONPatchFormat {
		if run.reverse {
			return fmt.Errorf("%w: json patch operations cannot be reversed", cli.ErrUsage)
		}
		theLog.Debug("applying json patch operations")
		recs, err = libpatch.ApplyJSONPatch(t.Records, d)
		if err != nil {
			return err
		}
	} else {
		p, err := parse.Parse(d, parse.ParseFormat(fmat))
		if err != nil {
			return err
		}
		if run.reverse {
			p = libpatch.Reverse(p)
		}
		if libpatch.IsTyped(p) {
			theLog.Debug("patch holds numbers, applying them as text")
			p = libpatch.ToText(p)
		}
		recs, err = csvdiff.Patch(t.Records, p, csvdiff.Strict(run.strict))
		if err != nil {
			return err
		}
		index = p.Index
	}
	cols := table.ColumnOrder(index, t.Fieldnames, recs)
	if err := table.WriteAll(w, cols, recs, table.Delimiter(run.sep)); err != nil {
		return fmt.Errorf("error writing result: %w", err)
	}
	return nil
}
