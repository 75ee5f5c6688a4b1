package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/signadot/csvdiff/encode"
	"github.com/signadot/csvdiff/format"
	"github.com/signadot/csvdiff/table"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	WireOut bool   `cli:"name=wire desc='output in compact format'"`
	Verbose bool   `cli:"name=v aliases=verbose desc='log debugging information'"`
	Config  string `cli:"name=config desc='defaults file (default $CSVDIFF_CONFIG)'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmt format.Format
	if cfg.OutFormat != nil {
		fmt = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmt),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	if optSet(cfg.Main, "color") {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

// optSet reports whether the option name was given on the command line.
func optSet(cmd *cli.Command, name string) bool {
	// it would be nicer if cli supported
	// pointers to builtin types as well...
	if cmd == nil {
		return false
	}
	for _, opt := range cmd.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

type DiffConfig struct {
	*MainConfig
	Key          string `cli:"name=k aliases=key desc='comma separated index columns'"`
	Ignore       string `cli:"name=ignore desc='comma separated columns left out of the comparison'"`
	Significance int    `cli:"name=sig aliases=significance desc='decimal places at which numbers are compared'"`
	Where        string `cli:"name=where desc='only compare rows for which this expression holds'"`
	Sep          string `cli:"name=sep desc='field separator (default ,)'"`
	Quiet        bool   `cli:"name=q aliases=quiet desc='no output, only the exit code'"`
	Summary      bool   `cli:"name=s aliases=summary desc='summarize the changes'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Input   string `cli:"name=i aliases=input desc='patch file (default stdin)'"`
	Reverse bool   `cli:"name=r desc='apply the patch reversed'"`
	Strict  bool   `cli:"name=strict desc='fail when the input does not match the patch (default on, -no-strict turns it off)'"`
	Sep     string `cli:"name=sep desc='field separator (default ,)'"`

	Patch *cli.Command
}

func parseSep(s string) (rune, error) {
	switch s {
	case "":
		return ',', nil
	case `\t`, "tab":
		return '\t', nil
	}
	r, n := utf8.DecodeRuneInString(s)
	if n != len(s) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("%w: bad separator %q", cli.ErrUsage, s)
	}
	return r, nil
}

func splitColumns(s string) []string {
	var res []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			res = append(res, c)
		}
	}
	return res
}

func loadTable(path string, sep rune) (*table.Table, error) {
	t, err := table.Load(path, table.Delimiter(sep))
	if err != nil {
		return nil, err
	}
	theLog.Debug("loaded table", "path", path, "columns", len(t.Fieldnames), "records", len(t.Records))
	return t, nil
}
