// SPDX-License-Identifier: MIT

// Package summary condenses a scalar sample into the small records used by
// the multidimensional code in geomed: MStats (mean and population standard
// deviation), Med (lower quartile, median, upper quartile) and the
// minimum/maximum with their positions.
//
// Quartile convention:
//
//	The sample is sorted ascending (a copy; the input is never reordered).
//	median = s[n/2] for odd n, (s[n/2-1]+s[n/2])/2 for even n
//	lower  = s[n/4]
//	upper  = s[3n/4]
package summary
