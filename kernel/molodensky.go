package kernel

import (
	"math"

	"github.com/katalvlaran/geodesy/args"
	"github.com/katalvlaran/geodesy/coord"
	"github.com/katalvlaran/geodesy/ellps"
	"github.com/katalvlaran/geodesy/op"
)

// MolodenskyGamut is the set of parameters NewMolodensky recognizes.
var MolodenskyGamut = args.Gamut{
	{Key: "abridged", Kind: args.KindFlag},
	{Key: "ellps", Kind: args.KindEnum},
	{Key: "left_ellps", Kind: args.KindEnum},
	{Key: "right_ellps", Kind: args.KindEnum},
	{Key: "dx", Kind: args.KindNumeric},
	{Key: "dy", Kind: args.KindNumeric},
	{Key: "dz", Kind: args.KindNumeric},
	{Key: "da", Kind: args.KindNumeric},
	{Key: "df", Kind: args.KindNumeric},
}

// NewMolodensky builds the full/abridged Molodensky datum-shift kernel
// (§4.7). Parameters are either given directly as {dx,dy,dz,da,df}, or
// derived from a pair of named ellipsoids {left_ellps,right_ellps} plus
// {dx,dy,dz} — in which case da = right.a - left.a and df = right.f -
// left.f, and left becomes the reference ellipsoid the formula runs on.
//
// Operands are {lon,lat,h,t} radians/meters (coord's internal east-first
// convention); dλ/dφ/dh are added to (λ,φ,h) going forward, subtracted
// going backward using the same-point parameters — no iteration, which is
// Molodensky's defining simplification. A vanishing denominator yields a
// NaN tuple for that operand rather than aborting the whole call.
func NewMolodensky(a *args.OperatorArgs) (fwd, inv op.KernelFunc, inverted bool, err error) {
	inverted = a.Flag("inv")
	abridged := a.Flag("abridged")

	leftName := a.String("left_ellps", a.String("ellps", "WGS84"))
	left, err := ellps.ByName(leftName)
	if err != nil {
		return nil, nil, false, args.BadParameterf("molodensky", "left_ellps", "%v", err)
	}

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

	var da, df float64
	if rightName, ok := a.Value("right_ellps"); ok {
		right, err := ellps.ByName(rightName)
		if err != nil {
			return nil, nil, false, args.BadParameterf("molodensky", "right_ellps", "%v", err)
		}
		da = right.SemimajorAxis() - left.SemimajorAxis()
		df = right.Flattening() - left.Flattening()
	} else {
		da, err = a.Numeric("da", 0)
		if err != nil {
			return nil, nil, false, err
		}
		df, err = a.Numeric("df", 0)
		if err != nil {
			return nil, nil, false, err
		}
	}

	a.DeclareGamut(MolodenskyGamut)

	aAxis := left.SemimajorAxis()
	f := left.Flattening()
	e2 := left.EccentricitySquared()
	adffda := aAxis*df + f*da

	// shift computes (dλ,dφ,dh) for one operand, given the direction's
	// signed parameter set (negated for inverse).
	shift := func(lon, lat, h, dx, dy, dz, da, df, adffda float64) (dlon, dlat, dh float64, ok bool) {
		sp, cp := math.Sin(lat), math.Cos(lat)
		sl, cl := math.Sin(lon), math.Cos(lon)
		fac := dx*cl + dy*sl
		n := aAxis / math.Sqrt(1-e2*sp*sp)
		m := aAxis * (1 - e2) / math.Pow(1-e2*sp*sp, 1.5)

		if abridged {
			if m == 0 {
				return 0, 0, 0, false
			}
			dlat = (-fac*sp + dz*cp + adffda*math.Sin(2*lat)) / m
			denom := n * cp
			if denom == 0 {
				return 0, 0, 0, false
			}
			dlon = (dy*cl - dx*sl) / denom
			dh = fac*cp + (dz+adffda*sp)*sp - da
			return dlon, dlat, dh, true
		}

		denomLat := m + h
		if denomLat == 0 {
			return 0, 0, 0, false
		}
		dlat = ((dz+n*e2*sp*da/aAxis)*cp - fac*sp + (m/(1-f)+n*(1-f))*df*sp*cp) / denomLat
		denomLon := (n + h) * cp
		if denomLon == 0 {
			return 0, 0, 0, false
		}
		dlon = (dy*cl - dx*sl) / denomLon
		dh = fac*cp + dz*sp - (aAxis/n)*da + n*(1-f)*df*sp*sp
		return dlon, dlat, dh, true
	}

	fwd = func(_ *op.Runtime, _ op.Direction, operands []coord.Tuple) int {
		count := 0
		for i, o := range operands {
			lon, lat, h, t := o[0], o[1], o[2], o[3]
			if math.IsNaN(lon) || math.IsNaN(lat) {
				operands[i] = coord.NaN()
				continue
			}
			dlon, dlat, dh, ok := shift(lon, lat, h, dx, dy, dz, da, df, adffda)
			if !ok {
				operands[i] = coord.NaN()
				continue
			}
			operands[i] = coord.Tuple{lon + dlon, lat + dlat, h + dh, t}
			count++
		}
		return count
	}
	inv = func(_ *op.Runtime, _ op.Direction, operands []coord.Tuple) int {
		count := 0
		for i, o := range operands {
			lon, lat, h, t := o[0], o[1], o[2], o[3]
			if math.IsNaN(lon) || math.IsNaN(lat) {
				operands[i] = coord.NaN()
				continue
			}
			dlon, dlat, dh, ok := shift(lon, lat, h, -dx, -dy, -dz, -da, -df, -adffda)
			if !ok {
				operands[i] = coord.NaN()
				continue
			}
			operands[i] = coord.Tuple{lon + dlon, lat + dlat, h + dh, t}
			count++
		}
		return count
	}
	return fwd, inv, inverted, nil
}
