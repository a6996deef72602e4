package ellps

import (
	"errors"
	"strings"
)

// ErrNotFound indicates a name passed to ByName does not match any entry
// in the built-in ellipsoid table.
var ErrNotFound = errors.New("ellps: ellipsoid not found")

// named holds the small built-in ellipsoid table consulted by ByName. It
// covers the ellipsoids named in this module's own worked examples and
// scenarios (WGS84/GRS80/intl, plus a few classical figures a Helmert or
// Molodensky pipeline is likely to reference).
var named = map[string]Ellipsoid{
	"WGS84":   New(6378137.0, 1.0/298.257223563),
	"GRS80":   New(6378137.0, 1.0/298.257222101),
	"intl":    New(6378388.0, 1.0/297.0),
	"bessel":  New(6377397.155, 1.0/299.1528128),
	"clrk66":  New(6378206.4, 1.0/294.9786982),
	"clrk80":  New(6378249.145, 1.0/293.4663),
	"airy":    New(6377563.396, 1.0/299.3249646),
	"sphere":  New(6371008.7714, 0),
}

// ByName looks up an ellipsoid by its conventional short name (case
// sensitive, matching the spelling used throughout PROJ-descended
// tooling: "WGS84", "GRS80", "intl", ...). It reports ErrNotFound rather
// than a zero-value Ellipsoid so callers can distinguish "unknown name"
// from "the sphere".
func ByName(name string) (Ellipsoid, error) {
	name = strings.TrimSpace(name)
	if e, ok := named[name]; ok {
		return e, nil
	}
	return Ellipsoid{}, ErrNotFound
}
