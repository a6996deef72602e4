package kernel

import (
	"github.com/katalvlaran/geodesy/args"
	"github.com/katalvlaran/geodesy/coord"
	"github.com/katalvlaran/geodesy/op"
)

// NoopGamut is empty: NewNoop recognizes no parameters beyond "inv".
var NoopGamut = args.Gamut{}

// NewNoop builds the identity kernel: forward and inverse both leave
// every operand unchanged.
func NewNoop(a *args.OperatorArgs) (fwd, inv op.KernelFunc, inverted bool, err error) {
	inverted = a.Flag("inv")
	a.DeclareGamut(NoopGamut)
	identity := func(_ *op.Runtime, _ op.Direction, operands []coord.Tuple) int {
		return len(operands)
	}
	return identity, identity, inverted, nil
}
