// Package gys lexes and normalizes "Ghastly YAML Shorthand" (GYS) — the
// compact, pipe-delimited textual grammar for describing an operator
// pipeline — and its YAML-ish longhand counterpart, into a single
// canonical Step tree.
//
// A definition is classified as GYS iff it contains a whitespace-wrapped
// " | ", begins or ends with "|", is wrapped in matching "[" "]", or its
// first whitespace-separated token does not end with ":" (see IsGYS); an
// unmatched "[" or "]" at either end makes it longhand regardless of its
// first token. Otherwise it is parsed as longhand via gopkg.in/yaml.v3.
//
// Macro expansion is a textual rewrite performed during normalization:
// a step whose name resolves against the supplied MacroLookup has its
// definition normalized recursively, and the invoking step's own
// arguments are shallow-merged onto the macro's resulting top-level
// arguments (the invoking step's keys win). This is why Normalize takes
// a MacroLookup rather than leaving macro resolution to a later pass.
package gys
