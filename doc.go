// Package csvdiff compares two versions of a keyed tabular dataset and
// applies the resulting patches.
//
// Records are identified by the values of one or more index columns. Diff
// produces a [patch.Patch] listing the records added, the records removed
// and the fields changed between two datasets; Patch applies such a patch
// to a dataset, checking in strict mode that the dataset is in the state
// the patch expects.
package csvdiff
