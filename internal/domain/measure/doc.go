// Package measure converts lengths between millimeters and inches.
//
// Millimeter values become inch decimals, a nearest-1/128 fraction in lowest
// terms and, for values above one inch, a mixed number:
//
//	50 mm  ->  1.969 in  |  63/32 in  |  1 31/32 in
//
// All arithmetic goes through a ports.Arithmetic implementation. Nothing in
// this package touches float64.
package measure
