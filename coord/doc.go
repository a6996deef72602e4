// Package coord defines CoordinateTuple, the ordered 4-component numeric
// value every operator in this module reads and mutates in place.
//
// A CoordinateTuple is positionally interpreted as (eastish, northish,
// upish, timeish): angular components (positions 0 and 1) are stored in
// radians, linear components (positions 2 and 3) in meters and opaque time
// units respectively. Conversions to/from degrees and to/from geographic
// (latitude-first) order are provided as pure, allocation-free helpers.
//
// Complexity: every method here is O(1); there is no dynamic allocation
// beyond the returned value itself.
package coord
