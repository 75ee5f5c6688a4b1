package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/scott-cotton/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signadot/csvdiff"
	"github.com/signadot/csvdiff/encode"
	"github.com/signadot/csvdiff/format"
	"github.com/signadot/csvdiff/table"
)

func load(t *testing.T, name string) *table.Table {
	t.Helper()
	tbl, err := table.Load(filepath.Join("..", "..", "testdata", name))
	require.NoError(t, err)
	return tbl
}

func summaryRun(opts ...csvdiff.DiffOpt) *diffRun {
	return &diffRun{
		index:   []string{"id"},
		opts:    opts,
		encOpts: []encode.EncodeOption{encode.EncodeFormat(format.SummaryFormat)},
	}
}

func TestDiffTablesSummary(t *testing.T) {
	a, b := load(t, "a.csv"), load(t, "b.csv")
	tests := []struct {
		name string
		run  *diffRun
		want string
	}{
		{
			name: "plain",
			run:  summaryRun(),
			want: "1 rows removed (25.0%)\n1 rows added (25.0%)\n2 rows changed (50.0%)\n",
		},
		{
			name: "significance",
			run:  summaryRun(csvdiff.Significance(2)),
			want: "1 rows removed (25.0%)\n1 rows added (25.0%)\n1 rows changed (25.0%)\n",
		},
		{
			name: "ignore",
			run:  summaryRun(csvdiff.Ignore("amount")),
			want: "1 rows removed (25.0%)\n1 rows added (25.0%)\n0 rows changed (0.0%)\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			differs, err := diffTables(buf, a, b, tt.run)
			require.NoError(t, err)
			assert.True(t, differs)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestDiffTablesWhere(t *testing.T) {
	a, b := load(t, "a.csv"), load(t, "b.csv")
	run := summaryRun()
	run.where = `name in ["eva", "bob"]`
	buf := &bytes.Buffer{}
	differs, err := diffTables(buf, a, b, run)
	require.NoError(t, err)
	assert.True(t, differs)
	assert.Equal(t, "0 rows removed (0.0%)\n0 rows added (0.0%)\n1 rows changed (50.0%)\n", buf.String())

	run.where = `name ==`
	_, err = diffTables(buf, a, b, run)
	assert.True(t, table.ErrBadFilter.Is(err))
}

func TestDiffTablesIdentical(t *testing.T) {
	a := load(t, "a.csv")
	buf := &bytes.Buffer{}
	differs, err := diffTables(buf, a, a, summaryRun())
	require.NoError(t, err)
	assert.False(t, differs)
	assert.Equal(t, "files are identical\n", buf.String())
}

func TestDiffTablesQuiet(t *testing.T) {
	a, b := load(t, "a.csv"), load(t, "b.csv")
	run := summaryRun()
	run.quiet = true
	buf := &bytes.Buffer{}
	differs, err := diffTables(buf, a, b, run)
	require.NoError(t, err)
	assert.True(t, differs)
	assert.Empty(t, buf.String())
}

func TestDiffTablesBadKey(t *testing.T) {
	a, b := load(t, "a.csv"), load(t, "b.csv")
	run := summaryRun()
	run.index = []string{"nope"}
	_, err := diffTables(&bytes.Buffer{}, a, b, run)
	require.Error(t, err)
	assert.Equal(t, "invalid-key", classify(err))
}

const wantB = `id,name,amount
5,ada,12
1,eva,20
2,bob,30.002
4,zed,50
`

func diffAs(t *testing.T, f format.Format) []byte {
	t.Helper()
	a, b := load(t, "a.csv"), load(t, "b.csv")
	buf := &bytes.Buffer{}
	_, err := diffTables(buf, a, b, &diffRun{
		index:   []string{"id"},
		encOpts: []encode.EncodeOption{encode.EncodeFormat(f)},
	})
	require.NoError(t, err)
	return buf.Bytes()
}

func TestPatchTable(t *testing.T) {
	for _, f := range []format.Format{format.JSONFormat, format.YAMLFormat, format.JSONPatchFormat} {
		t.Run(f.String(), func(t *testing.T) {
			out := &bytes.Buffer{}
			err := patchTable(out, load(t, "a.csv"), diffAs(t, f), &patchRun{strict: true, sep: ','})
			require.NoError(t, err)
			assert.Equal(t, wantB, out.String())
		})
	}
}

func TestPatchTableReverse(t *testing.T) {
	out := &bytes.Buffer{}
	err := patchTable(out, load(t, "b.csv"), diffAs(t, format.JSONFormat), &patchRun{strict: true, reverse: true, sep: ';'})
	require.NoError(t, err)
	assert.Equal(t, "id;name;amount\n1;eva;20\n2;bob;30.001\n3;mia;40\n4;zed;55\n", out.String())
}

func TestPatchTableConflict(t *testing.T) {
	d := diffAs(t, format.JSONFormat)
	err := patchTable(&bytes.Buffer{}, load(t, "b.csv"), d, &patchRun{strict: true, sep: ','})
	require.Error(t, err)
	assert.Equal(t, "conflict", classify(err))

	errOut := &bytes.Buffer{}
	assert.Error(t, exitErr(errOut, err))
	assert.Contains(t, errOut.String(), "ERROR: conflict: tried to add record")

	out := &bytes.Buffer{}
	require.NoError(t, patchTable(out, load(t, "b.csv"), d, &patchRun{sep: ','}))
	assert.Equal(t, wantB, out.String())
}

func TestPatchTableInFormat(t *testing.T) {
	jp, summary := format.JSONPatchFormat, format.SummaryFormat
	out := &bytes.Buffer{}
	err := patchTable(out, load(t, "a.csv"), diffAs(t, format.JSONPatchFormat), &patchRun{strict: true, sep: ',', inFormat: &jp})
	require.NoError(t, err)
	assert.Equal(t, wantB, out.String())

	err = patchTable(&bytes.Buffer{}, load(t, "a.csv"), diffAs(t, format.JSONFormat), &patchRun{sep: ',', inFormat: &summary})
	assert.ErrorIs(t, err, cli.ErrUsage)
}

type nopCloser struct{ *bytes.Buffer }

func (nopCloser) Close() error { return nil }

func TestPatchCommandNoStrict(t *testing.T) {
	t.Setenv("CSVDIFF_CONFIG", "")
	pf := filepath.Join(t.TempDir(), "p.json")
	require.NoError(t, os.WriteFile(pf, diffAs(t, format.JSONFormat), 0644))
	orig := filepath.Join("..", "..", "testdata", "b.csv")

	run := func(args ...string) (string, error) {
		out := &bytes.Buffer{}
		cc := &cli.Context{Out: nopCloser{out}, Err: nopCloser{&bytes.Buffer{}}, In: io.NopCloser(&bytes.Buffer{})}
		cmd := PatchCommand(&MainConfig{})
		err := cmd.Run(cc, args)
		return out.String(), err
	}

	_, err := run("-i", pf, orig)
	assert.Equal(t, cli.ExitCodeErr(2), err)

	out, err := run("-no-strict", "-i", pf, orig)
	require.NoError(t, err)
	assert.Equal(t, wantB, out)
}

func TestPatchTableTyped(t *testing.T) {
	d := []byte("_index: [id]\nadded: []\nremoved: []\nchanged:\n- key: [1]\n  fields: {amount: {from: 20, to: 21}}\n")
	out := &bytes.Buffer{}
	require.NoError(t, patchTable(out, load(t, "a.csv"), d, &patchRun{strict: true, sep: ','}))
	assert.Equal(t, "id,name,amount\n1,eva,21\n2,bob,30.001\n3,mia,40\n4,zed,55\n", out.String())
}

func TestPatchTableInvalid(t *testing.T) {
	err := patchTable(&bytes.Buffer{}, load(t, "a.csv"), []byte(`{"_index": []}`), &patchRun{sep: ','})
	require.Error(t, err)
	assert.Equal(t, "invalid-patch", classify(err))
}

func TestBadRow(t *testing.T) {
	_, err := table.Load(filepath.Join("..", "..", "testdata", "bad.csv"))
	require.Error(t, err)
	assert.Equal(t, "bad-row", classify(err))
	assert.Contains(t, err.Error(), "line 3")
}

func TestParseSep(t *testing.T) {
	for in, want := range map[string]rune{"": ',', ";": ';', `\t`: '\t', "tab": '\t', "|": '|'} {
		got, err := parseSep(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, "separator %q", in)
	}
	for _, in := range []string{";;", `"`, "\n"} {
		_, err := parseSep(in)
		assert.Error(t, err, "separator %q", in)
	}
}

func TestSplitColumns(t *testing.T) {
	assert.Equal(t, []string{"id", "name"}, splitColumns(" id, name,,"))
	assert.Nil(t, splitColumns(""))
}

func TestDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csvdiff.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
index = ["id", "name"]
ignore = ["updated"]
sep = ";"
significance = 2
strict = false
format = "yaml"
`), 0644))
	d, err := loadDefaults(path)
	require.NoError(t, err)

	dcfg := &DiffConfig{MainConfig: &MainConfig{}, Significance: -1}
	d.applyDiff(dcfg)
	assert.Equal(t, "id,name", dcfg.Key)
	assert.Equal(t, "updated", dcfg.Ignore)
	assert.Equal(t, ";", dcfg.Sep)
	assert.Equal(t, 2, dcfg.Significance)
	require.NotNil(t, dcfg.OutFormat)
	assert.Equal(t, format.YAMLFormat, *dcfg.OutFormat)

	pcfg := &PatchConfig{MainConfig: &MainConfig{}, Strict: true}
	d.applyPatch(pcfg)
	assert.False(t, pcfg.Strict)
	assert.Equal(t, ";", pcfg.Sep)
}

func TestDefaultsMissing(t *testing.T) {
	t.Setenv("CSVDIFF_CONFIG", "")
	d, err := loadDefaults("")
	require.NoError(t, err)
	assert.Empty(t, d.Index)

	_, err = loadDefaults(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDiffRunUsage(t *testing.T) {
	cfg := &DiffConfig{MainConfig: &MainConfig{}, Significance: -1}
	_, err := cfg.diffRun(&bytes.Buffer{})
	assert.Error(t, err, "missing -k")

	cfg.Key = "id"
	cfg.Ignore = "name"
	cfg.Summary = true
	run, err := cfg.diffRun(&bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, run.index)
	assert.Len(t, run.opts, 1)
	buf := &bytes.Buffer{}
	_, err = diffTables(buf, load(t, "a.csv"), load(t, "b.csv"), run)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "2 rows changed")
}
