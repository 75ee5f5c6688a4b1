package ir

import (
	"maps"
	"slices"
)

// Record is a flat row, column name to value.
type Record map[string]Value

// Get returns the value at column, or Null if the record has no such column.
func (r Record) Get(column string) Value {
	v, ok := r[column]
	if !ok {
		return Null()
	}
	return v
}

func (r Record) Clone() Record {
	return maps.Clone(r)
}

// Columns gives the record's columns in sorted order.
func (r Record) Columns() []string {
	return slices.Sorted(maps.Keys(r))
}

// Without returns a copy of r lacking the given columns.
func (r Record) Without(columns ...string) Record {
	res := r.Clone()
	for _, c := range columns {
		delete(res, c)
	}
	return res
}

// Equal reports whether a and b have the same columns holding equal values.
func (r Record) Equal(o Record) bool {
	return maps.EqualFunc(r, o, Equal)
}

// IsText reports whether r holds no numbers, as is the case for records
// read from delimited files. Null values count as text.
func (r Record) IsText() bool {
	for _, v := range r {
		if v.Type == NumberType {
			return false
		}
	}
	return true
}

// CloneRecords deep copies a slice of records.
func CloneRecords(recs []Record) []Record {
	res := make([]Record, len(recs))
	for i, r := range recs {
		res[i] = r.Clone()
	}
	return res
}

// FromStrings builds a text record from a plain map, mostly for tests.
func FromStrings(m map[string]string) Record {
	r := make(Record, len(m))
	for k, v := range m {
		r[k] = FromString(v)
	}
	return r
}
