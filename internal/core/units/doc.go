// Package units provides unit-safe arithmetic over physical quantities.
//
// The package models a small dimensional-analysis system over three base
// dimensions (mass, volume, time). A Dimension is an exponent vector over
// those bases, and derived dimensions are built with standard dimensional
// algebra:
//   - VolumeDensity = Mass / Volume
//   - EliminationRate = VolumeDensity / Time
//   - VolumeOfDistribution = Volume / Mass
//   - SerumConcentration = VolumeDensity
//
// A Quantity is an immutable scalar tagged with a Dimension. Quantities of
// identical dimension may be added, subtracted, and compared; multiplication
// and division combine dimensions. Constructing a quantity goes through a
// Unit, which binds a power-of-ten scale factor to a dimension (Grams,
// Liters, Hours, and prefixed or composed units such as
// MilligramsPerDeciliter).
//
// # Dimension mismatches
//
// Go's type system cannot express the result dimension of a multiplication
// or division, so dimensions are carried as runtime tags. Every operation
// that requires compatible dimensions checks the tags and panics with a
// *DimensionError at the point of the illegal combination. An illegal
// combination is a programming error, never input-dependent, and is never
// silently coerced.
package units
