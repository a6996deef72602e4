package ellps

import "math"

// Ellipsoid is a named figure-of-earth record {semimajor axis, flattening}.
// It is immutable once constructed and copied freely by value.
type Ellipsoid struct {
	a float64 // semimajor axis, meters
	f float64 // flattening
}

// New builds an Ellipsoid from a semimajor axis (meters) and flattening.
func New(a, f float64) Ellipsoid {
	return Ellipsoid{a: a, f: f}
}

// SemimajorAxis returns a.
func (e Ellipsoid) SemimajorAxis() float64 { return e.a }

// Flattening returns f.
func (e Ellipsoid) Flattening() float64 { return e.f }

// EccentricitySquared returns e² = f(2−f).
func (e Ellipsoid) EccentricitySquared() float64 {
	return e.f * (2 - e.f)
}

// PrimeVerticalRadius returns N(φ) = a / sqrt(1 − e²·sin²φ), φ in radians.
func (e Ellipsoid) PrimeVerticalRadius(phi float64) float64 {
	sp := math.Sin(phi)
	es := e.EccentricitySquared()
	return e.a / math.Sqrt(1-es*sp*sp)
}

// MeridianRadius returns M(φ) = a(1−e²) / (1−e²·sin²φ)^(3/2), φ in radians.
func (e Ellipsoid) MeridianRadius(phi float64) float64 {
	sp := math.Sin(phi)
	es := e.EccentricitySquared()
	denom := math.Pow(1-es*sp*sp, 1.5)
	return e.a * (1 - es) / denom
}
