package table

import (
	"encoding/csv"
	"io"
	"slices"

	"github.com/signadot/csvdiff/ir"
)

// Writer writes records as delimited text under a header line.
type Writer struct {
	csv     *csv.Writer
	columns []string
	header  bool
}

// NewWriter creates a writer of records with the given columns, in order.
func NewWriter(w io.Writer, columns []string, opts ...ReaderOpt) *Writer {
	cfg := &ReaderConfig{Delimiter: ','}
	for _, o := range opts {
		o(cfg)
	}
	cw := csv.NewWriter(w)
	cw.Comma = cfg.Delimiter
	return &Writer{csv: cw, columns: slices.Clone(columns)}
}

// Write writes r, preceded by the header line on first use. Columns r
// lacks and nulls are written as empty fields.
func (w *Writer) Write(r ir.Record) error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	fields := make([]string, len(w.columns))
	for i, c := range w.columns {
		fields[i] = r.Get(c).Text()
	}
	return w.csv.Write(fields)
}

func (w *Writer) writeHeader() error {
	if w.header {
		return nil
	}
	w.header = true
	return w.csv.Write(w.columns)
}

// Flush writes the header if nothing was written and flushes buffered
// output.
func (w *Writer) Flush() error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	w.csv.Flush()
	return w.csv.Error()
}

// WriteAll writes recs under columns and flushes.
func WriteAll(w io.Writer, columns []string, recs []ir.Record, opts ...ReaderOpt) error {
	tw := NewWriter(w, columns, opts...)
	for _, r := range recs {
		if err := tw.Write(r); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// ColumnOrder gives output columns for recs: the index columns first, then
// the remaining header columns in header order, then any other columns
// found in recs, sorted.
func ColumnOrder(index, header []string, recs []ir.Record) []string {
	seen := map[string]bool{}
	var res []string
	add := func(c string) {
		if seen[c] {
			return
		}
		seen[c] = true
		res = append(res, c)
	}
	for _, c := range index {
		add(c)
	}
	for _, c := range header {
		add(c)
	}
	var extra []string
	for _, r := range recs {
		for c := range r {
			if !seen[c] && !slices.Contains(extra, c) {
				extra = append(extra, c)
			}
		}
	}
	slices.Sort(extra)
	for _, c := range extra {
		add(c)
	}
	return res
}
