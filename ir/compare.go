package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b Value) int {
	if a.Type != b.Type {
		return cmp.Compare(rank(a.Type), rank(b.Type))
	}
	switch a.Type {
	case NumberType:
		return cmp.Compare(a.Float64, b.Float64)
	case StringType:
		return strings.Compare(a.String, b.String)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Number < String
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case NumberType:
		return 1
	case StringType:
		return 2
	}
	return 100
}

// CompareRecords orders records canonically: each record is viewed as its
// list of (column, value) pairs sorted by column, and the lists are compared
// lexicographically, a shorter list sorting first when it is a prefix of the
// other.
func CompareRecords(a, b Record) int {
	ac, bc := a.Columns(), b.Columns()
	n := min(len(ac), len(bc))
	for i := range n {
		if c := strings.Compare(ac[i], bc[i]); c != 0 {
			return c
		}
		if c := Compare(a[ac[i]], b[bc[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ac), len(bc))
}

// SortRecords sorts records in place into canonical order.
func SortRecords(recs []Record) {
	slices.SortStableFunc(recs, CompareRecords)
}
