package registry

import "errors"

// ErrOperatorNotFound indicates a step name resolved against neither the
// user-operator overlay nor the builtin table.
var ErrOperatorNotFound = errors.New("registry: operator not found")

// ErrMacroSelfReference indicates a macro definition begins with its own
// name followed by ":", which register_macro refuses at registration to
// prevent infinite normalization recursion.
var ErrMacroSelfReference = errors.New("registry: macro definition is self-referential")
