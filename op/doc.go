// Package op defines the compiled Operator (one pipeline step) and the
// Runtime a kernel executes against: a per-invocation scratch stack plus
// pluggable asset access.
//
// An Operator is either a leaf (a kernel function pair + its parameters)
// or a pipeline (an ordered list of child Operators, composed by
// applying each child's own inversion flag XORed against the caller's
// direction). Both shapes are the same Go type; Steps == nil distinguishes
// a leaf.
package op
