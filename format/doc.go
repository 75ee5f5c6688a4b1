// Package format names the ways a patch can be written out.
package format
