// Package table reads and writes records as delimited text with a header
// line, and filters them with boolean expressions.
package table
