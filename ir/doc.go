// Package ir holds the in-memory representation of tabular data.
//
// A [Record] maps column names to scalar [Value]s. Values are a closed
// variant of Null, Number and String; equality between them is exact, with
// no implicit conversion between numbers and text. [Value.ParseFloat]
// provides the one explicit numeric coercion.
//
// Records have a canonical order (see [CompareRecords]) which depends only on
// their content, so that sorting any permutation of a set of records gives
// the same sequence.
package ir
