// Package ir holds the result values produced by named radial operations and
// their canonical JSON encoding.
//
// All other internal packages that report results import ir; ir imports only
// the radial library. Key constraints:
//   - A result is exactly one of Number, Coordinate or Bool
//   - Non-finite numbers encode as the strings "NaN", "+Inf" and "-Inf"
//   - Negative zero encodes as 0
//   - Canonical JSON sorts object keys and NFC-normalizes strings, so the
//     same inputs always produce byte-identical output
package ir
