package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type SpanOp int

const (
	SpanEqual SpanOp = iota
	SpanDelete
	SpanInsert
)

// Span is a run of text kept, deleted or inserted by an edit.
type Span struct {
	Op   SpanOp
	Text string
}

// DiffString gives the character level edits turning from into to. It
// returns nil when the strings are equal or when more than half of the
// shorter string would change, in which case showing the two values
// whole reads better.
func DiffString(from, to string) []Span {
	if from == to {
		return nil
	}
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	diffSize := 0
	res := make([]Span, 0, len(diffs))
	for _, diff := range diffs {
		switch diff.Type {
		case diffpatch.DiffInsert:
			res = append(res, Span{Op: SpanInsert, Text: diff.Text})
			diffSize += len(diff.Text)
		case diffpatch.DiffDelete:
			res = append(res, Span{Op: SpanDelete, Text: diff.Text})
			diffSize += len(diff.Text)
		case diffpatch.DiffEqual:
			res = append(res, Span{Op: SpanEqual, Text: diff.Text})
		}
	}
	if diffSize > min(len(from), len(to))/2 {
		return nil
	}
	return res
}
