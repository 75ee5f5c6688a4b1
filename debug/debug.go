package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"
)

type debug struct {
	Index  bool
	Diff   bool
	Patch  bool
	Filter bool
	Codec  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Index = boolEnv("CSVDIFF_DEBUG_INDEX")
	d.Diff = boolEnv("CSVDIFF_DEBUG_DIFF")
	d.Patch = boolEnv("CSVDIFF_DEBUG_PATCH")
	d.Filter = boolEnv("CSVDIFF_DEBUG_FILTER")
	d.Codec = boolEnv("CSVDIFF_DEBUG_CODEC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Index() bool {
	return d.Index
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Filter() bool {
	return d.Filter
}
func Codec() bool {
	return d.Codec
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
