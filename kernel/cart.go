package kernel

import (
	"math"

	"github.com/katalvlaran/geodesy/args"
	"github.com/katalvlaran/geodesy/coord"
	"github.com/katalvlaran/geodesy/ellps"
	"github.com/katalvlaran/geodesy/op"
)

// CartGamut is the set of parameters NewCart recognizes.
var CartGamut = args.Gamut{
	{Key: "ellps", Kind: args.KindEnum},
}

// NewCart builds the geographic<->geocentric cartesian conversion kernel.
// Forward takes {lon,lat,h,t} radians/meters and produces {x,y,z,t} meters
// on the ellipsoid named by the "ellps" parameter (default WGS84). Inverse
// recovers geographic coordinates from cartesian ones via Bowring's
// closed-form approximation; latitude is not refined further by iteration.
func NewCart(a *args.OperatorArgs) (fwd, inv op.KernelFunc, inverted bool, err error) {
	inverted = a.Flag("inv")

	ellpsName := a.String("ellps", "WGS84")
	e, err := ellps.ByName(ellpsName)
	if err != nil {
		return nil, nil, false, args.BadParameterf("cart", "ellps", "%v", err)
	}
	a.DeclareGamut(CartGamut)
	a2 := e.SemimajorAxis()
	e2 := e.EccentricitySquared()
	b2 := a2 * (1 - e.Flattening())
	ep2 := (a2*a2 - b2*b2) / (b2 * b2)

	fwd = func(_ *op.Runtime, _ op.Direction, operands []coord.Tuple) int {
		count := 0
		for i, o := range operands {
			lon, lat, h, t := o[0], o[1], o[2], o[3]
			if math.IsNaN(lon) || math.IsNaN(lat) {
				operands[i] = coord.NaN()
				continue
			}
			sinLat, cosLat := math.Sin(lat), math.Cos(lat)
			n := a2 / math.Sqrt(1-e2*sinLat*sinLat)
			x := (n + h) * cosLat * math.Cos(lon)
			y := (n + h) * cosLat * math.Sin(lon)
			z := (n*(1-e2) + h) * sinLat
			operands[i] = coord.Tuple{x, y, z, t}
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
			p := math.Hypot(x, y)
			if p == 0 {
				operands[i] = coord.NaN()
				continue
			}
			lon := math.Atan2(y, x)
			theta := math.Atan2(z*a2, p*b2)
			sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)
			lat := math.Atan2(z+ep2*b2*sinTheta*sinTheta*sinTheta, p-e2*a2*cosTheta*cosTheta*cosTheta)
			sinLat := math.Sin(lat)
			n := a2 / math.Sqrt(1-e2*sinLat*sinLat)
			h := p/math.Cos(lat) - n
			operands[i] = coord.Tuple{lon, lat, h, t}
			count++
		}
		return count
	}
	return fwd, inv, inverted, nil
}
