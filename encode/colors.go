package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	RemovedColor ColorAttr = iota
	AddedColor
	ChangedColor
	KeyColor
	FieldColor
	DeleteColor
	InsertColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			RemovedColor: color.RedString,
			AddedColor:   color.GreenString,
			ChangedColor: color.YellowString,
			KeyColor:     color.New(color.Bold).SprintfFunc(),
			FieldColor:   color.RGB(128, 168, 196).SprintfFunc(),
			DeleteColor:  color.New(color.FgRed, color.CrossedOut).SprintfFunc(),
			InsertColor:  color.New(color.FgGreen, color.Underline).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
