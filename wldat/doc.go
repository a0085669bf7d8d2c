// Package wldat implements a codec for numeric arrays written in the
// nested-brace Wolfram Language package format.
//
// A document is one header line followed by a single nested-brace
// expression:
//
//	(* Created with wldat *)
//	{{1.5, -3}, {2.0*^3, 4e-2}}
//
// The rank and the extent of every dimension are inferred from the brace
// and comma structure alone; no schema travels with the data.
//
// # Data Model
//
// Scalars are float64 or complex128. A Document carries a comment, a Shape
// and a flat buffer laid out in row-major order by default (the outermost
// brace level varies slowest). ColumnMajor is available through the options
// and must be used symmetrically for decode and encode.
//
// # Literal Dialects
//
// Decoding accepts:
//   - plain decimals: 1.5, -3, 2.
//   - scientific: 1e-3, 1*^-3
//   - complex: a, a+bi, a-bi, bi, i, +i, -i, a+i, a-i
//   - imaginary unit written as i, j, I, *i, *j or *I
//   - the words ComplexInfinity, Infinity, Indeterminate
//
// Encoding writes 16 digits after the point with a *^ exponent, and
// complex values as "re + im*I".
//
// # Error Tolerance
//
// Structural defects (missing braces, ragged rows, rank above the limit)
// always fail. A token that is not a number becomes NaN and is reported as
// a warning, unless ParseOptions.Strict is set, in which case decoding
// stops with a ParseError naming the token and its position.
package wldat
