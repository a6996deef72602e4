// Package ellps provides Ellipsoid, the immutable figure-of-earth record
// used by the cart, helmert and molodensky kernels, plus a small built-in
// table of named reference ellipsoids (ByName).
package ellps
