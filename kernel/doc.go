// Package kernel implements the sample operator kernels named in the
// spec: cart, helmert, tmerc, utm, noop, adapt, molodensky, and the
// trivial addone test scaffold. Each kernel exposes a Constructor that
// reads its parameters from an *args.OperatorArgs and returns a forward/
// inverse KernelFunc pair (nil inverse if the kernel has none), in the
// style of the registry's "dynamic dispatch of kernels" design: a tagged
// variant of builtin kinds, not a class hierarchy.
package kernel
