// Package thermo provides type-safe temperature quantities in the Celsius,
// Fahrenheit, and Kelvin scales.
//
// A temperature is a [Quantity] tagged with its scale at the type level, so
// quantities of different scales cannot be compared, added, or converted by
// accident; mixing scales is a compile error rather than a runtime check.
// Conversions between scales are exact pairwise formulas, one exported
// function per ordered pair:
//
//	t := thermo.C(36.5)
//	f := thermo.CelsiusToFahrenheit(t) // 97.7°F
//	k := thermo.CelsiusToKelvin(t)     // 309.65K
//
// Equality between quantities is tolerant of floating-point error, within
// the fixed absolute tolerance [Epsilon]. Ordering is exact.
//
// Full documentation is available at:
// https://pkg.go.dev/github.com/lone-faerie/thermo
package thermo
