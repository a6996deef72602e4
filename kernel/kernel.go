package kernel

import (
	"github.com/katalvlaran/geodesy/op"
)

// Constructor builds one leaf kernel's forward/inverse function pair from
// its parsed arguments. inv is nil when the kernel has no inverse.
// inverted reports whether the compiled Operator should be marked
// inverted for the generic caller-direction XOR composition (§4.4); adapt
// is the one kernel that always reports false here because it bakes "inv"
// into which descriptor plays "from" and which plays "to" at construction
// time instead (§4.6), rather than relying on the generic dispatch.
//
// Constructor is an alias of op.Constructor, not a new defined type: the
// registry package's own Constructor is the same alias, so a
// map[string]kernel.Constructor built by Builtins is directly assignable
// wherever registry.New expects a map[string]registry.Constructor.
type Constructor = op.Constructor

// Builtins returns the name -> Constructor table for every kernel this
// package implements. The registry package wires this table into its
// builtin operator set; kernel itself has no notion of a registry.
func Builtins() map[string]Constructor {
	return map[string]Constructor{
		"noop":       NewNoop,
		"addone":     NewAddOne,
		"adapt":      NewAdapt,
		"molodensky": NewMolodensky,
		"cart":       NewCart,
		"helmert":    NewHelmert,
		"tmerc":      NewTmerc,
		"utm":        NewUTM,
	}
}
