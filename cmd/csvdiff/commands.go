package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "patch input format: json/j, yaml/y, jsonpatch/jp (default detected)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "patch output format: json/j, yaml/y, jsonpatch/jp, summary/s, text/t",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "csvdiff").
		WithSynopsis("csvdiff [opts] command [opts]").
		WithDescription("csvdiff compares keyed CSV files and applies the differences as patches.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return csvdiffMain(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Significance: -1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff -k cols [opts] a.csv b.csv").
		WithDescription(diffDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

const diffDescription = `diff compares two CSV files whose rows are identified by the index
columns given with -k and writes the patch turning the first into the second.

The exit code is 0 when the files hold the same rows, 1 when they differ and
2 on errors.

-where filters the rows of both files with an expression over their columns,
for example 'region == "eu" && float(amount) > 100'. Every field is a string
and empty trailing fields are nil.`

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg, Strict: true}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-i patchfile] [opts] orig.csv").
		WithDescription("patch applies a patch made by diff to a CSV file, writing the result as CSV.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}
