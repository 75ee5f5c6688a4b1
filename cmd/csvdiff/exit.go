package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/csvdiff"
	"github.com/signadot/csvdiff/format"
	"github.com/signadot/csvdiff/table"

	"github.com/scott-cotton/cli"
	goerrors "gopkg.in/src-d/go-errors.v1"
)

var kinds = []struct {
	name string
	kind *goerrors.Kind
}{
	{"invalid-key", csvdiff.ErrInvalidKey},
	{"invalid-patch", csvdiff.ErrInvalidPatch},
	{"configuration", csvdiff.ErrConfiguration},
	{"bad-row", table.ErrBadRow},
	{"bad-filter", table.ErrBadFilter},
}

// classify names the kind of err. Kinds do not see through %w wrapping,
// so the chain is walked.
func classify(err error) string {
	if csvdiff.IsConflict(err) {
		return "conflict"
	}
	if errors.Is(err, format.ErrBadFormat) {
		return "usage"
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		for _, k := range kinds {
			if k.kind.Is(e) {
				return k.name
			}
		}
	}
	return "error"
}

// exitErr reports err on w and turns it into exit code 2. Usage errors
// are passed on so the command can show its usage.
func exitErr(w io.Writer, err error) error {
	if err == nil || errors.Is(err, cli.ErrUsage) {
		return err
	}
	theLog.Debug("failed", "kind", classify(err), "error", err)
	fmt.Fprintf(w, "ERROR: %s\n", err)
	return cli.ExitCodeErr(2)
}

func stderrExit(err error) error {
	return exitErr(os.Stderr, err)
}
