package table

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/csvdiff/debug"
	"github.com/signadot/csvdiff/ir"
)

// Filter selects records with a boolean expression over their columns.
// Each column is a variable holding nil, a float64 or a string; columns a
// record lacks are nil.
type Filter struct {
	src     string
	program *vm.Program
}

// Where compiles src into a Filter.
func Where(src string) (*Filter, error) {
	program, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, ErrBadFilter.New(src, err.Error())
	}
	return &Filter{src: src, program: program}, nil
}

func (f *Filter) String() string {
	return f.src
}

// Match evaluates the filter on r.
func (f *Filter) Match(r ir.Record) (bool, error) {
	env := make(map[string]any, len(r))
	for c, v := range r {
		env[c] = v.Any()
	}
	res, err := vm.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluating %q: %w", f.src, err)
	}
	b, _ := res.(bool)
	return b, nil
}

// Apply returns the records of recs matching f.
func (f *Filter) Apply(recs []ir.Record) ([]ir.Record, error) {
	res := make([]ir.Record, 0, len(recs))
	for _, r := range recs {
		ok, err := f.Match(r)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, r)
		}
	}
	if debug.Filter() {
		debug.Logf("where %q kept %d of %d records\n", f.src, len(res), len(recs))
	}
	return res, nil
}
