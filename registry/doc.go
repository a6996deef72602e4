// Package registry resolves a normalized gys.Step tree into a compiled
// op.Operator: it owns the builtin kernel table, the user-operator
// overlay, and the pipeline/leaf compilation logic. It depends on op,
// args, and gys but never on kernel — the concrete kernel table is handed
// in by the caller (the root geodesy package), keeping registry agnostic
// to which kernels exist.
package registry
