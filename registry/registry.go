package registry

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/geodesy/args"
	"github.com/katalvlaran/geodesy/gys"
	"github.com/katalvlaran/geodesy/op"
)

// Constructor builds one leaf kernel's forward/inverse function pair from
// its parsed arguments. It is an alias of op.Constructor — the very same
// defined type kernel.Constructor aliases — so a map[string]kernel.
// Constructor built by kernel.Builtins() is directly assignable to New's
// parameter with no conversion. registry never imports kernel so the
// caller (the root geodesy package) hands in a ready-built table, keeping
// the kernel catalog swappable.
type Constructor = op.Constructor

// Registry resolves a step name to a Constructor: user-registered
// operators take priority over the builtin table (§4.3). Macro resolution
// itself happens earlier, at gys normalization time (see gys.Normalize) —
// by the time a Step reaches Compile, every macro reference has already
// been rewritten to its expansion, so Registry only ever sees operator
// names.
type Registry struct {
	builtins map[string]Constructor
	users    map[string]Constructor
}

// New builds a Registry over the given builtin constructor table. Callers
// typically pass a table derived from kernel.Builtins().
func New(builtins map[string]Constructor) *Registry {
	cp := make(map[string]Constructor, len(builtins))
	for k, v := range builtins {
		cp[k] = v
	}
	return &Registry{builtins: cp, users: make(map[string]Constructor)}
}

// RegisterOperator installs or overwrites a user-defined operator
// constructor under name, shadowing any builtin of the same name.
func (r *Registry) RegisterOperator(name string, ctor Constructor) {
	r.users[name] = ctor
}

// lookup resolves name against the user overlay then the builtin table.
func (r *Registry) lookup(name string) (Constructor, bool) {
	if ctor, ok := r.users[name]; ok {
		return ctor, true
	}
	ctor, ok := r.builtins[name]
	return ctor, ok
}

// Compile recursively compiles a normalized gys.Step tree into a compiled
// *op.Operator. A Step with non-nil Steps is always compiled as a
// pipeline, regardless of step count, mirroring the normalizer's
// "implicit pipeline when a step list is present" rule (§2); a Step with
// nil Steps is a leaf dispatched to its resolved Constructor.
func (r *Registry) Compile(step gys.Step) (*op.Operator, error) {
	a := args.New(step.Args)

	if step.Steps != nil {
		children := make([]*op.Operator, 0, len(step.Steps))
		for _, child := range step.Steps {
			compiled, err := r.Compile(child)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", step.Name, err)
			}
			children = append(children, compiled)
		}
		return op.NewPipeline(step.Name, step.Name, a, children, a.Flag("inv")), nil
	}

	ctor, ok := r.lookup(step.Name)
	if !ok {
		return nil, fmt.Errorf("%s: %w", step.Name, ErrOperatorNotFound)
	}
	fwd, inv, inverted, err := ctor(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", step.Name, err)
	}
	leaf, err := op.NewLeaf(step.Name, step.Name, a, fwd, inv, inverted)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", step.Name, err)
	}
	return leaf, nil
}

// ValidateMacroDefinition checks a macro definition against the
// self-reference rule: a definition whose first whitespace-separated
// token is name followed immediately by ":" would recurse into itself
// forever once normalized, so registration must refuse it.
func ValidateMacroDefinition(name, definition string) error {
	trimmed := strings.TrimSpace(definition)
	firstTok := trimmed
	if i := strings.IndexAny(trimmed, " \t|["); i >= 0 {
		firstTok = trimmed[:i]
	}
	if firstTok == name+":" || strings.HasPrefix(trimmed, name+":") {
		return fmt.Errorf("%s: %w", name, ErrMacroSelfReference)
	}
	return nil
}
