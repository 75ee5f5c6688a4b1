package ir

import (
	"strconv"
	"strings"
)

// Key is the ordered tuple of index column values identifying a record.
type Key []Value

// KeyOf extracts the values of columns from r. The second result is the
// first column r lacks, or "" when all are present.
func KeyOf(r Record, columns []string) (Key, string) {
	k := make(Key, len(columns))
	for i, c := range columns {
		v, ok := r[c]
		if !ok {
			return nil, c
		}
		k[i] = v
	}
	return k, ""
}

// ID encodes k as a string usable as a map key. Keys which are Equal have
// the same ID.
func (k Key) ID() string {
	buf := &strings.Builder{}
	for _, v := range k {
		var s string
		switch v.Type {
		case StringType:
			buf.WriteByte('s')
			s = v.String
		case NumberType:
			buf.WriteByte('n')
			f := v.Float64
			if f == 0 {
				// -0 and 0 share an ID
				f = 0
			}
			s = strconv.FormatFloat(f, 'g', -1, 64)
		default:
			buf.WriteByte('0')
		}
		buf.WriteString(strconv.Itoa(len(s)))
		buf.WriteByte(':')
		buf.WriteString(s)
	}
	return buf.String()
}

func (k Key) Equal(o Key) bool {
	if len(k) != len(o) {
		return false
	}
	for i := range k {
		if !Equal(k[i], o[i]) {
			return false
		}
	}
	return true
}

func (k Key) Compare(o Key) int {
	n := min(len(k), len(o))
	for i := range n {
		if c := Compare(k[i], o[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(k) < len(o):
		return -1
	case len(k) > len(o):
		return 1
	}
	return 0
}

func (k Key) String() string {
	parts := make([]string, len(k))
	for i, v := range k {
		parts[i] = v.GoString()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
