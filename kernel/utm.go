package kernel

import (
	"strconv"

	"github.com/katalvlaran/geodesy/args"
	"github.com/katalvlaran/geodesy/gys"
	"github.com/katalvlaran/geodesy/op"
)

// kv builds a gys.Arg from a numeric value, formatted the way the gys
// lexer itself would hand a number to OperatorArgs.Numeric.
func kv(key string, value float64) gys.Arg {
	return gys.Arg{Key: key, Value: strconv.FormatFloat(value, 'g', -1, 64)}
}

// UTMGamut is the set of parameters NewUTM recognizes directly; "ellps" is
// accepted here too since it passes straight through to tmerc.
var UTMGamut = args.Gamut{
	{Key: "zone", Kind: args.KindNumeric},
	{Key: "south", Kind: args.KindFlag},
	{Key: "ellps", Kind: args.KindEnum},
}

// NewUTM builds the Universal Transverse Mercator kernel as a thin wrapper
// over tmerc: "zone" (1-60) and "south" (flag) derive the standard UTM
// lon_0/k_0/x_0/y_0 quadruple, which is then handed to NewTmerc verbatim.
// "ellps" is passed through unchanged.
func NewUTM(a *args.OperatorArgs) (fwd, inv op.KernelFunc, inverted bool, err error) {
	zone, err := a.Numeric("zone", 1)
	if err != nil {
		return nil, nil, false, err
	}
	south := a.Flag("south")
	a.DeclareGamut(UTMGamut)

	lon0 := -183 + 6*zone
	y0 := 0.0
	if south {
		y0 = 10000000
	}

	tmercArgs := args.New(append(a.Pairs(),
		kv("lon_0", lon0),
		kv("k_0", 0.9996),
		kv("x_0", 500000),
		kv("y_0", y0),
	))

	return NewTmerc(tmercArgs)
}
