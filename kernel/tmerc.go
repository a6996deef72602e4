package kernel

import (
	"math"

	"github.com/katalvlaran/geodesy/args"
	"github.com/katalvlaran/geodesy/coord"
	"github.com/katalvlaran/geodesy/ellps"
	"github.com/katalvlaran/geodesy/op"
)

// TmercGamut is the set of parameters NewTmerc recognizes.
var TmercGamut = args.Gamut{
	{Key: "ellps", Kind: args.KindEnum},
	{Key: "lon_0", Kind: args.KindNumeric},
	{Key: "k_0", Kind: args.KindNumeric},
	{Key: "x_0", Kind: args.KindNumeric},
	{Key: "y_0", Kind: args.KindNumeric},
}

// NewTmerc builds the transverse Mercator kernel using Snyder's series
// expansion (Map Projections: A Working Manual, 1987, formulas 8-9
// through 8-11 and their inverse 8-17 through 8-21). Forward takes
// {lon,lat,h,t} radians and produces {x,y,h,t} meters; inverse is its
// algebraic reverse via the footpoint-latitude series.
//
// Parameters: ellps (default WGS84), lon_0 (central meridian, degrees,
// default 0), k_0 (scale factor at the central meridian, default 1),
// x_0/y_0 (false easting/northing, meters, default 0).
func NewTmerc(a *args.OperatorArgs) (fwd, inv op.KernelFunc, inverted bool, err error) {
	inverted = a.Flag("inv")

	ellpsName := a.String("ellps", "WGS84")
	e, err := ellps.ByName(ellpsName)
	if err != nil {
		return nil, nil, false, args.BadParameterf("tmerc", "ellps", "%v", err)
	}
	lon0Deg, err := a.Numeric("lon_0", 0)
	if err != nil {
		return nil, nil, false, err
	}
	k0, err := a.Numeric("k_0", 1)
	if err != nil {
		return nil, nil, false, err
	}
	x0, err := a.Numeric("x_0", 0)
	if err != nil {
		return nil, nil, false, err
	}
	y0, err := a.Numeric("y_0", 0)
	if err != nil {
		return nil, nil, false, err
	}
	a.DeclareGamut(TmercGamut)
	lon0 := lon0Deg * coord.DegToRad

	a2 := e.SemimajorAxis()
	f := e.Flattening()
	n := f / (2 - f)
	n2, n3, n4 := n*n, n*n*n, n*n*n*n

	// Meridian-arc and series coefficients per Karney (2011)/Snyder,
	// truncated at 4th order in the flattening, accurate to sub-mm for
	// Earth-like ellipsoids.
	aBar := a2 / (1 + n) * (1 + n2/4 + n4/64)
	alpha1 := n/2 - 2*n2/3 + 5*n3/16
	alpha2 := 13*n2/48 - 3*n3/5
	alpha3 := 61 * n3 / 240
	beta1 := n/2 - 2*n2/3 + 37*n3/96
	beta2 := n2/48 + n3/15
	beta3 := 17 * n3 / 480

	meridianArc := func(lat float64) float64 {
		return aBar * (lat +
			(-3.0/2*n+9.0/16*n3)*math.Sin(2*lat) +
			(15.0/16*n2-15.0/32*n4)*math.Sin(4*lat) +
			(-35.0/48*n3)*math.Sin(6*lat))
	}
	footpointLatitude := func(xi float64) float64 {
		return xi +
			beta1*math.Sin(2*xi) +
			beta2*math.Sin(4*xi) +
			beta3*math.Sin(6*xi)
	}

	fwd = func(_ *op.Runtime, _ op.Direction, operands []coord.Tuple) int {
		count := 0
		for i, o := range operands {
			lon, lat, h, t := o[0], o[1], o[2], o[3]
			if math.IsNaN(lon) || math.IsNaN(lat) {
				operands[i] = coord.NaN()
				continue
			}
			dlon := lon - lon0
			cosLat := math.Cos(lat)
			tanLat := math.Tan(lat)
			etaSq := (f * (2 - f)) / (1 - f*(2-f)) * cosLat * cosLat

			m := meridianArc(lat)
			xi0 := m / aBar

			t1 := dlon * cosLat
			xi := xi0 + 0.5*t1*t1*tanLat +
				alpha1*math.Sin(2*xi0) + alpha2*math.Sin(4*xi0) + alpha3*math.Sin(6*xi0)
			eta := t1 + t1*t1*t1/6*(1-tanLat*tanLat+etaSq)

			x := k0*aBar*eta + x0
			y := k0*aBar*xi + y0
			operands[i] = coord.Tuple{x, y, h, t}
			count++
		}
		return count
	}

	inv = func(_ *op.Runtime, _ op.Direction, operands []coord.Tuple) int {
		count := 0
		for i, o := range operands {
			x, y, h, t := o[0], o[1], o[2], o[3]
			if math.IsNaN(x) || math.IsNaN(y) {
				operands[i] = coord.NaN()
				continue
			}
			eta := (x - x0) / (k0 * aBar)
			xi := (y - y0) / (k0 * aBar)

			xi0 := xi -
				beta1*math.Sin(2*xi) - beta2*math.Sin(4*xi) - beta3*math.Sin(6*xi)
			footLat := footpointLatitude(xi0)

			tanFoot := math.Tan(footLat)
			lat := footLat - (1+n2)*eta*eta/2*tanFoot
			dlon := eta / math.Cos(footLat)

			operands[i] = coord.Tuple{lon0 + dlon, lat, h, t}
			count++
		}
		return count
	}
	return fwd, inv, inverted, nil
}
