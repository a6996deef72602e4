package coord

import "math"

// Tuple is an ordered 4-tuple (c0, c1, c2, c3), interpreted positionally as
// (eastish, northish, upish, timeish). Angular components live in radians;
// linear components live in meters; the time component is opaque to this
// package.
//
// Operators mutate a Tuple in place within an operand batch; the identity
// of the backing slice is preserved across a call.
type Tuple [4]float64

// Raw builds a Tuple from its four components verbatim, with no unit
// conversion or reordering.
func Raw(c0, c1, c2, c3 float64) Tuple {
	return Tuple{c0, c1, c2, c3}
}

// NaN returns a Tuple whose every component is NaN, the sentinel a kernel
// writes into an operand it could not transform (e.g. a zero-denominator
// Molodensky evaluation).
func NaN() Tuple {
	n := math.NaN()
	return Tuple{n, n, n, n}
}

// IsNaN reports whether any component of t is NaN.
func (t Tuple) IsNaN() bool {
	return math.IsNaN(t[0]) || math.IsNaN(t[1]) || math.IsNaN(t[2]) || math.IsNaN(t[3])
}

// Geo builds a Tuple from latitude-first geographic input in degrees
// (lat, lon, h, t), converting angular components to radians and
// reordering them into the platform-internal (eastish, northish, ...)
// convention, i.e. (lon, lat, h, t) in radians.
func Geo(lat, lon, h, t float64) Tuple {
	return Tuple{lon * DegToRad, lat * DegToRad, h, t}
}

// GIS builds a Tuple from already east-first geographic input in degrees
// (lon, lat, h, t), converting angular components to radians.
func GIS(lon, lat, h, t float64) Tuple {
	return Tuple{lon * DegToRad, lat * DegToRad, h, t}
}

// ToDegrees returns a copy of t with its angular components (positions 0
// and 1) converted from radians to degrees; linear components pass
// through unchanged.
func (t Tuple) ToDegrees() Tuple {
	return Tuple{t[0] * RadToDeg, t[1] * RadToDeg, t[2], t[3]}
}

// ToGeo returns (lat, lon, h, t) in degrees, the inverse reordering of Geo.
func (t Tuple) ToGeo() (lat, lon, h, time float64) {
	return t[1] * RadToDeg, t[0] * RadToDeg, t[2], t[3]
}

const (
	// DegToRad converts degrees to radians.
	DegToRad = math.Pi / 180
	// RadToDeg converts radians to degrees.
	RadToDeg = 180 / math.Pi
	// GonToRad converts gradians ("gon") to radians.
	GonToRad = math.Pi / 200
)

// DMSToDD converts a degrees/minutes/seconds triple to decimal degrees.
// The sign of deg carries the sign of the whole angle; min and sec are
// assumed non-negative.
func DMSToDD(deg, min int, sec float64) float64 {
	sign := 1.0
	if deg < 0 {
		sign = -1.0
		deg = -deg
	}
	return sign * (float64(deg) + float64(min)/60 + sec/3600)
}

// Hypot3 returns the Euclidean distance between the first three
// components of t and other, ignoring the time component.
func (t Tuple) Hypot3(other Tuple) float64 {
	dx := t[0] - other[0]
	dy := t[1] - other[1]
	dz := t[2] - other[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// PlanarHypot returns the Euclidean distance between the first two
// components of t and other (east/north-like plane), ignoring up and time.
func (t Tuple) PlanarHypot(other Tuple) float64 {
	dx := t[0] - other[0]
	dy := t[1] - other[1]
	return math.Sqrt(dx*dx + dy*dy)
}
