// Package libdiff provides the keyed comparison of two record sets.
//
// # Usage
//
//	// Index both sides on their key columns
//	from, err := libdiff.MakeIndex(fromRecords, []string{"id"})
//	to, err := libdiff.MakeIndex(toRecords, []string{"id"})
//
//	// Compare key sets, then the records sharing a key
//	removed, added, shared := libdiff.DiffKeys(from, to)
//	changed := libdiff.DiffShared(from, to, shared)
//
// The results are unordered sets; github.com/signadot/csvdiff/patch puts
// them in canonical order.
package libdiff
