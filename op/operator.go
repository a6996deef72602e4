package op

import (
	"errors"

	"github.com/katalvlaran/geodesy/args"
	"github.com/katalvlaran/geodesy/coord"
)

// ErrUninvertible indicates inv was requested (construction-time, via the
// "inv" flag) on a step whose kernel was not given an inverse function.
var ErrUninvertible = errors.New("op: operator has no inverse")

// Direction selects which way an Operator is applied.
type Direction bool

const (
	// Fwd applies an operator forward.
	Fwd Direction = true
	// Inv applies an operator's inverse.
	Inv Direction = false
)

// KernelFunc is the numeric heart of a leaf Operator: given a Runtime and
// a direction, it mutates operands in place and returns the count of
// operands it transformed successfully. An operand it could not
// transform (e.g. a zero-denominator Molodensky evaluation) is written
// as coord.NaN() and counted as a failure, not removed from the batch.
type KernelFunc func(rt *Runtime, dir Direction, operands []coord.Tuple) int

// Constructor builds one leaf kernel's forward/inverse function pair from
// its parsed arguments. It is defined once here so that kernel.Constructor
// and registry.Constructor name the very same defined type: a
// map[string]kernel.Constructor is then assignable wherever a
// map[string]registry.Constructor is expected, with no conversion needed.
type Constructor func(a *args.OperatorArgs) (fwd, inv KernelFunc, inverted bool, err error)

// Operator is one compiled, invertible pipeline step. Steps == nil marks
// a leaf (a kernel function pair plus its parameters); Steps != nil marks
// a pipeline (composed sub-steps, applied via ApplyPipeline semantics).
//
// State machine: Declared -> Parsed -> Compiled -> (Applied-Fwd |
// Applied-Inv)*. An Operator is always constructed already Compiled; it
// never reverts to an earlier state, and is terminal once its owning
// Context is discarded.
type Operator struct {
	Name       string
	Descriptor string
	Params     *args.OperatorArgs
	Inverted   bool
	Steps      []*Operator

	fwd KernelFunc
	inv KernelFunc
}

// NewLeaf builds a compiled leaf Operator from a kernel function pair.
// inv may be nil if the kernel has no inverse; inverted must then be
// false, or construction fails with ErrUninvertible.
func NewLeaf(name, descriptor string, params *args.OperatorArgs, fwd, inv KernelFunc, inverted bool) (*Operator, error) {
	if inverted && inv == nil {
		return nil, ErrUninvertible
	}
	return &Operator{
		Name:       name,
		Descriptor: descriptor,
		Params:     params,
		Inverted:   inverted,
		fwd:        fwd,
		inv:        inv,
	}, nil
}

// NewPipeline builds a compiled pipeline Operator composing steps in the
// given order. A pipeline is always invertible (its inverse is "apply
// each step's inverse, in reverse order"), so inverted is simply recorded
// for the XOR composition rule and never rejected.
func NewPipeline(name, descriptor string, params *args.OperatorArgs, steps []*Operator, inverted bool) *Operator {
	return &Operator{
		Name:       name,
		Descriptor: descriptor,
		Params:     params,
		Inverted:   inverted,
		Steps:      steps,
	}
}

// IsLeaf reports whether op is a leaf (Steps == nil).
func (o *Operator) IsLeaf() bool {
	return o.Steps == nil
}

// Apply executes op against operands in the requested caller direction,
// honoring this operator's own Inverted flag (composed by XOR against
// the caller's direction, exactly as a pipeline composes its children's
// flags) and returns the count of operands that transformed successfully.
//
// For a leaf, Apply dispatches to the forward or inverse kernel function.
// A leaf built with inv == nil (NewLeaf permits this as long as inverted
// is false) degrades to 0 successes instead of dereferencing a nil
// KernelFunc whenever the effective direction comes out Inv — whether
// from a direct call on an uninverted leaf with no inverse, or from
// composing such a leaf inside a pipeline whose own Inverted flag flips
// the effective direction.
// For a pipeline, Apply invokes each child's own Apply in order for a
// forward call, or in reverse order for an inverse call, and returns the
// minimum per-step success count — partial failure propagates as "number
// of operands that survived every step".
func (o *Operator) Apply(rt *Runtime, dir Direction, operands []coord.Tuple) int {
	effective := dir
	if o.Inverted {
		effective = !dir
	}

	if o.IsLeaf() {
		if effective == Fwd {
			return o.fwd(rt, effective, operands)
		}
		if o.inv == nil {
			return 0
		}
		return o.inv(rt, effective, operands)
	}

	return o.applyPipeline(rt, effective, operands)
}

// applyPipeline composes child steps: forward order for Fwd, reverse
// order for Inv, each child dispatched with its own Apply (which in turn
// composes the child's own Inverted flag against this direction).
func (o *Operator) applyPipeline(rt *Runtime, dir Direction, operands []coord.Tuple) int {
	n := len(operands)
	if dir == Fwd {
		for _, step := range o.Steps {
			c := step.Apply(rt, Fwd, operands)
			if c < n {
				n = c
			}
		}
		return n
	}

	for i := len(o.Steps) - 1; i >= 0; i-- {
		c := o.Steps[i].Apply(rt, Inv, operands)
		if c < n {
			n = c
		}
	}
	return n
}
