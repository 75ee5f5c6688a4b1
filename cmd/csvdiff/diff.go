package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/csvdiff"
	"github.com/signadot/csvdiff/encode"
	"github.com/signadot/csvdiff/format"
	"github.com/signadot/csvdiff/table"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(2)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	defaults, err := loadDefaults(cfg.Config)
	if err != nil {
		return stderrExit(fmt.Errorf("error reading defaults: %w", err))
	}
	defaults.applyDiff(cfg)
	run, err := cfg.diffRun(cc.Out)
	if err != nil {
		return err
	}
	sep, err := parseSep(cfg.Sep)
	if err != nil {
		return err
	}
	a, err := loadTable(args[0], sep)
	if err != nil {
		return stderrExit(err)
	}
	b, err := loadTable(args[1], sep)
	if err != nil {
		return stderrExit(err)
	}
	differs, err := diffTables(cc.Out, a, b, run)
	if err != nil {
		return stderrExit(err)
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffRun holds the resolved options of a diff.
type diffRun struct {
	index   []string
	opts    []csvdiff.DiffOpt
	where   string
	quiet   bool
	encOpts []encode.EncodeOption
}

func (cfg *DiffConfig) diffRun(w io.Writer) (*diffRun, error) {
	index := splitColumns(cfg.Key)
	if len(index) == 0 {
		return nil, fmt.Errorf("%w: diff requires index columns, given with -k", cli.ErrUsage)
	}
	run := &diffRun{
		index: index,
		where: cfg.Where,
		quiet: cfg.Quiet,
	}
	if ignore := splitColumns(cfg.Ignore); len(ignore) != 0 {
		run.opts = append(run.opts, csvdiff.Ignore(ignore...))
	}
	if cfg.Significance >= 0 {
		run.opts = append(run.opts, csvdiff.Significance(cfg.Significance))
	} else if optSet(cfg.Diff, "sig") {
		return nil, fmt.Errorf("%w: -sig must not be negative", cli.ErrUsage)
	}
	run.encOpts = cfg.encOpts(w)
	if cfg.Summary {
		run.encOpts = append(run.encOpts, encode.EncodeFormat(format.SummaryFormat))
	}
	return run, nil
}

// diffTables writes the patch between a and b to w, reporting whether
// they differ.
func diffTables(w io.Writer, a, b *table.Table, run *diffRun) (bool, error) {
	from, to := a.Records, b.Records
	if run.where != "" {
		f, err := table.Where(run.where)
		if err != nil {
			return false, err
		}
		if from, err = f.Apply(from); err != nil {
			return false, err
		}
		if to, err = f.Apply(to); err != nil {
			return false, err
		}
	}
	p, err := csvdiff.Diff(from, to, run.index, run.opts...)
	if err != nil {
		return false, err
	}
	theLog.Debug("diff", "added", len(p.Added), "removed", len(p.Removed), "changed", len(p.Changed))
	if run.quiet {
		return !p.IsEmpty(), nil
	}
	opts := append([]encode.EncodeOption{encode.EncodeBase(len(from))}, run.encOpts...)
	if err := encode.Encode(p, w, opts...); err != nil {
		return false, fmt.Errorf("error encoding patch: %w", err)
	}
	if f, ok := w.(*os.File); ok && f != os.Stdout {
		theLog.Info("wrote patch", "path", f.Name())
	}
	return !p.IsEmpty(), nil
}
