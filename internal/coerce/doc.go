// Package coerce converts dynamically typed numbers into the integer and
// floating-point values the grid module works with.
//
// Values arrive from YAML, JSON, environment variables and command-line flags,
// so the same coordinate may be an int, an int64, a float64 holding a whole
// number, or a decimal string. Every helper reports ok=false instead of
// truncating, wrapping or rounding.
//
// This package is internal to the grid module.
package coerce
