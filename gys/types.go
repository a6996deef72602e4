package gys

// Arg is one key/value argument token attached to a Step, in the order it
// was written. A bare flag (no value) is represented with Value "true".
type Arg struct {
	Key   string
	Value string
}

// Step is one node of the canonical, normalized step tree. A Step with a
// non-nil Steps slice is an (implicit or explicit) pipeline: its own Args
// still apply to the pipeline as a whole (chiefly the "inv" flag), and
// its children are compiled and composed in declaration order.
//
// The normalizer is lossless with respect to step order and argument
// order: Args and Steps always preserve the order they were written in.
type Step struct {
	Name  string
	Args  []Arg
	Steps []Step
}

// MacroLookup resolves a macro name to its raw textual definition. It
// returns ok=false when name is not a registered macro.
type MacroLookup func(name string) (definition string, ok bool)
