package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"

	"github.com/signadot/csvdiff/ir"
)

type ReaderConfig struct {
	Delimiter rune
}

type ReaderOpt func(*ReaderConfig)

// Delimiter sets the field delimiter, ',' by default.
func Delimiter(r rune) ReaderOpt {
	return func(c *ReaderConfig) { c.Delimiter = r }
}

// Reader reads records from delimited text whose first line names the
// columns. Every field is read as a string. Rows shorter than the header
// are completed with nulls; longer rows are an error.
type Reader struct {
	csv        *csv.Reader
	fieldnames []string
}

// NewReader reads the header line from r. An empty input gives a reader
// with no columns and no records.
func NewReader(r io.Reader, opts ...ReaderOpt) (*Reader, error) {
	cfg := &ReaderConfig{Delimiter: ','}
	for _, o := range opts {
		o(cfg)
	}
	cr := csv.NewReader(r)
	cr.Comma = cfg.Delimiter
	cr.FieldsPerRecord = -1
	res := &Reader{csv: cr}
	header, err := cr.Read()
	switch {
	case errors.Is(err, io.EOF):
		return res, nil
	case err != nil:
		return nil, rowError(err)
	}
	res.fieldnames = header
	return res, nil
}

// Fieldnames gives the columns named by the header line.
func (r *Reader) Fieldnames() []string {
	return slices.Clone(r.fieldnames)
}

// Read returns the next record, or io.EOF.
func (r *Reader) Read() (ir.Record, error) {
	if r.fieldnames == nil {
		return nil, io.EOF
	}
	fields, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, rowError(err)
	}
	if len(fields) > len(r.fieldnames) {
		line, _ := r.csv.FieldPos(len(r.fieldnames))
		return nil, ErrBadRow.New(line, fmt.Sprintf("%d fields but only %d columns", len(fields), len(r.fieldnames)))
	}
	rec := make(ir.Record, len(r.fieldnames))
	for i, c := range r.fieldnames {
		if i < len(fields) {
			rec[c] = ir.FromString(fields[i])
			continue
		}
		rec[c] = ir.Null()
	}
	return rec, nil
}

// All iterates over the remaining records, stopping after the first error.
func (r *Reader) All() iter.Seq2[ir.Record, error] {
	return func(yield func(ir.Record, error) bool) {
		for {
			rec, err := r.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// ReadAll reads the remaining records.
func (r *Reader) ReadAll() ([]ir.Record, error) {
	var res []ir.Record
	for rec, err := range r.All() {
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, nil
}

func rowError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return ErrBadRow.New(pe.StartLine, pe.Err.Error())
	}
	return err
}

// Table is a fully read input: its header and its records.
type Table struct {
	Fieldnames []string
	Records    []ir.Record
}

// Read reads a whole table from r.
func Read(r io.Reader, opts ...ReaderOpt) (*Table, error) {
	tr, err := NewReader(r, opts...)
	if err != nil {
		return nil, err
	}
	recs, err := tr.ReadAll()
	if err != nil {
		return nil, err
	}
	return &Table{Fieldnames: tr.Fieldnames(), Records: recs}, nil
}

// Load reads a whole table from the file at path, or from standard input
// if path is "-".
func Load(path string, opts ...ReaderOpt) (*Table, error) {
	if path == "-" {
		return Read(os.Stdin, opts...)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
