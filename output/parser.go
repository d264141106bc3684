// Package output turns the line-oriented slave-mode output of mplayer into structured updates.
package output

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// StatusModule is the pseudo-module prefix of the periodic position report.
const StatusModule = "STATUSLINE"

// DefaultModules are the modules recorded when the integrator does not configure any.
var DefaultModules = []string{"IDENTIFY"}

// Kind tells what an Update changes.
type Kind int

const (
	// StatusUpdate replaces the last status line.
	StatusUpdate Kind = iota + 1
	// ModuleUpdate appends a value to a module buffer.
	ModuleUpdate
)

// Update is the structured result of one output line.
type Update struct {
	Kind   Kind
	Module string
	Value  string
}

// Parse classifies a single line. Lines without a "MODULE:" prefix, or whose
// module is neither the status line nor in allow, yield None.
func Parse(line string, allow []string) mo.Option[Update] {
	module, rest, ok := strings.Cut(strings.TrimRight(line, "\r\n"), ":")
	if !ok {
		return mo.None[Update]()
	}

	module = strings.TrimSpace(module)
	value := strings.TrimLeftFunc(rest, unicode.IsSpace)

	switch {
	case module == StatusModule:
		return mo.Some(Update{Kind: StatusUpdate, Module: module, Value: value})
	case module != "" && lo.Contains(allow, module):
		return mo.Some(Update{Kind: ModuleUpdate, Module: module, Value: value})
	default:
		return mo.None[Update]()
	}
}
