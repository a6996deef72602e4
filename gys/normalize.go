package gys

import "errors"

// maxMacroDepth bounds macro-expansion recursion. Self-referential macros
// are refused at registration time (see the registry package), so this
// only guards against mutual recursion between two or more macros.
const maxMacroDepth = 32

// ErrMacroRecursionTooDeep indicates macro expansion exceeded
// maxMacroDepth, almost certainly a mutual-recursion cycle between two or
// more registered macros.
var ErrMacroRecursionTooDeep = errors.New("gys: macro recursion too deep")

// Normalize parses text as GYS or longhand (per IsGYS), fully expands any
// macro references via lookup, and returns the single canonical root
// Step. A definition containing more than one top-level step is wrapped
// in an implicit Step named "pipeline" whose children are those steps, in
// declaration order — the implicit-pipeline rule of the operator
// registry (a step list with more than one entry compiles to a pipeline
// operator).
func Normalize(text string, lookup MacroLookup) (Step, error) {
	steps, err := normalizeSteps(text, lookup, 0)
	if err != nil {
		return Step{}, err
	}
	if len(steps) == 1 {
		return steps[0], nil
	}
	return Step{Name: "pipeline", Steps: steps}, nil
}

// normalizeSteps parses text into a flat, already macro-expanded step
// list (not yet root-wrapped).
func normalizeSteps(text string, lookup MacroLookup, depth int) ([]Step, error) {
	var steps []Step
	var err error
	if IsGYS(text) {
		steps, err = parseGYS(text)
	} else {
		steps, err = parseLonghand(text)
	}
	if err != nil {
		return nil, err
	}
	return expandMacros(steps, lookup, depth)
}

// expandMacros walks a flat step list, substituting any step whose name
// resolves in lookup with the (recursively normalized) macro definition.
// The invoking step's own arguments are shallow-merged onto the macro's
// expansion: "inv" always targets the macro as a whole (so "name inv"
// inverts the entire expansion, single- or multi-step alike), while every
// other key targets the macro's outermost step — its only step when the
// macro expands to one, or the first of its steps when it expands to a
// pipeline — since that is the step a bare key like "ellps" or "dx" would
// have reached had the macro's body been written inline.
func expandMacros(steps []Step, lookup MacroLookup, depth int) ([]Step, error) {
	out := make([]Step, 0, len(steps))
	for _, s := range steps {
		if s.Steps != nil {
			children, err := expandMacros(s.Steps, lookup, depth)
			if err != nil {
				return nil, err
			}
			s.Steps = children
			out = append(out, s)
			continue
		}

		if lookup == nil {
			out = append(out, s)
			continue
		}
		def, ok := lookup(s.Name)
		if !ok {
			out = append(out, s)
			continue
		}
		if depth >= maxMacroDepth {
			return nil, ErrMacroRecursionTooDeep
		}

		macroSteps, err := normalizeSteps(def, lookup, depth+1)
		if err != nil {
			return nil, err
		}

		var merged Step
		if len(macroSteps) == 1 {
			merged = macroSteps[0]
			merged.Args = mergeArgs(merged.Args, s.Args)
		} else {
			invArgs, domainArgs := splitInv(s.Args)
			macroSteps[0].Args = mergeArgs(macroSteps[0].Args, domainArgs)
			merged = Step{Name: s.Name, Args: mergeArgs(nil, invArgs), Steps: macroSteps}
		}
		out = append(out, merged)
	}
	return out, nil
}

// splitInv partitions args into its "inv" entries and everything else,
// preserving each partition's relative order.
func splitInv(args []Arg) (inv, rest []Arg) {
	for _, a := range args {
		if a.Key == "inv" {
			inv = append(inv, a)
		} else {
			rest = append(rest, a)
		}
	}
	return inv, rest
}

// mergeArgs shallow-merges overlay onto base: a key already present in
// base has its value replaced by overlay's; keys only present in overlay
// are appended afterward. base is not mutated.
func mergeArgs(base, overlay []Arg) []Arg {
	if len(overlay) == 0 {
		return base
	}
	merged := make([]Arg, len(base), len(base)+len(overlay))
	copy(merged, base)

	for _, ov := range overlay {
		replaced := false
		for i := range merged {
			if merged[i].Key == ov.Key {
				merged[i].Value = ov.Value
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, ov)
		}
	}
	return merged
}
