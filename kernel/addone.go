package kernel

import (
	"github.com/katalvlaran/geodesy/args"
	"github.com/katalvlaran/geodesy/coord"
	"github.com/katalvlaran/geodesy/op"
)

// AddOneGamut is empty: NewAddOne recognizes no parameters beyond "inv".
var AddOneGamut = args.Gamut{}

// NewAddOne builds the trivial "addone" test scaffold: forward adds 1 to
// components 0 and 1 of every operand, inverse subtracts 1 from both. It
// exists purely to exercise pipeline composition and per-step inversion
// without any numeric subtlety.
func NewAddOne(a *args.OperatorArgs) (fwd, inv op.KernelFunc, inverted bool, err error) {
	inverted = a.Flag("inv")
	a.DeclareGamut(AddOneGamut)

	fwd = func(_ *op.Runtime, _ op.Direction, operands []coord.Tuple) int {
		for i := range operands {
			operands[i][0]++
			operands[i][1]++
		}
		return len(operands)
	}
	inv = func(_ *op.Runtime, _ op.Direction, operands []coord.Tuple) int {
		for i := range operands {
			operands[i][0]--
			operands[i][1]--
		}
		return len(operands)
	}
	return fwd, inv, inverted, nil
}
