package kernel

import (
	"math"

	"github.com/katalvlaran/geodesy/args"
	"github.com/katalvlaran/geodesy/coord"
	"github.com/katalvlaran/geodesy/op"
)

// secToRad converts arc-seconds, the conventional unit for Helmert
// rotation parameters, to radians.
const secToRad = math.Pi / (180 * 3600)

// ppmToScale converts parts-per-million, the conventional unit for the
// Helmert scale parameter, to a unitless multiplier about 1.
const ppmToScale = 1e-6

// HelmertGamut is the set of parameters NewHelmert recognizes.
var HelmertGamut = args.Gamut{
	{Key: "dx", Kind: args.KindNumeric},
	{Key: "dy", Kind: args.KindNumeric},
	{Key: "dz", Kind: args.KindNumeric},
	{Key: "x", Kind: args.KindNumeric},
	{Key: "y", Kind: args.KindNumeric},
	{Key: "z", Kind: args.KindNumeric},
	{Key: "rx", Kind: args.KindNumeric},
	{Key: "ry", Kind: args.KindNumeric},
	{Key: "rz", Kind: args.KindNumeric},
	{Key: "s", Kind: args.KindNumeric},
}

// NewHelmert builds the 3- or 7-parameter Helmert similarity transform
// over cartesian {x,y,z,t} operands: a translation {dx,dy,dz} (also
// accepted as {x,y,z}, which take precedence when both are given) plus,
// when any of {rx,ry,rz,s} is given, a small-angle rotation and scale.
// Rotation parameters are given in arc-seconds, scale in parts-per-
// million, following convention. Inverse applies the exact algebraic
// inverse of the small-angle approximation rather than re-deriving
// parameters, so repeated fwd/inv round-trips stay stable to float
// precision.
func NewHelmert(a *args.OperatorArgs) (fwd, inv op.KernelFunc, inverted bool, err error) {
	inverted = a.Flag("inv")

	dx, err := a.Numeric("dx", 0)
	if err != nil {
		return nil, nil, false, err
	}
	dy, err := a.Numeric("dy", 0)
	if err != nil {
		return nil, nil, false, err
	}
	dz, err := a.Numeric("dz", 0)
	if err != nil {
		return nil, nil, false, err
	}
	if dx, err = a.Numeric("x", dx); err != nil {
		return nil, nil, false, err
	}
	if dy, err = a.Numeric("y", dy); err != nil {
		return nil, nil, false, err
	}
	if dz, err = a.Numeric("z", dz); err != nil {
		return nil, nil, false, err
	}
	rxSec, err := a.Numeric("rx", 0)
	if err != nil {
		return nil, nil, false, err
	}
	rySec, err := a.Numeric("ry", 0)
	if err != nil {
		return nil, nil, false, err
	}
	rzSec, err := a.Numeric("rz", 0)
	if err != nil {
		return nil, nil, false, err
	}
	sPPM, err := a.Numeric("s", 0)
	if err != nil {
		return nil, nil, false, err
	}

	a.DeclareGamut(HelmertGamut)

	rx, ry, rz := rxSec*secToRad, rySec*secToRad, rzSec*secToRad
	scale := 1 + sPPM*ppmToScale
	norm := 1 + rx*rx + ry*ry + rz*rz

	fwd = func(_ *op.Runtime, _ op.Direction, operands []coord.Tuple) int {
		count := 0
		for i, o := range operands {
			x, y, z, t := o[0], o[1], o[2], o[3]
			if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z) {
				operands[i] = coord.NaN()
				continue
			}
			xOut := dx + scale*(x-rz*y+ry*z)
			yOut := dy + scale*(rz*x+y-rx*z)
			zOut := dz + scale*(-ry*x+rx*y+z)
			operands[i] = coord.Tuple{xOut, yOut, zOut, t}
			count++
		}
		return count
	}
	inv = func(_ *op.Runtime, _ op.Direction, operands []coord.Tuple) int {
		count := 0
		for i, o := range operands {
			x, y, z, t := o[0], o[1], o[2], o[3]
			if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z) {
				operands[i] = coord.NaN()
				continue
			}
			x, y, z = x-dx, y-dy, z-dz
			dot := rx*x + ry*y + rz*z
			xOut := (x + rz*y - ry*z + rx*dot) / (scale * norm)
			yOut := (-rz*x + y + rx*z + ry*dot) / (scale * norm)
			zOut := (ry*x - rx*y + z + rz*dot) / (scale * norm)
			operands[i] = coord.Tuple{xOut, yOut, zOut, t}
			count++
		}
		return count
	}
	return fwd, inv, inverted, nil
}
