// Package pattern builds alphabet rangoli diamonds.
//
// A rangoli of size N is a diamond of 2N-1 lines. Each row walks the
// alphabet down from letter N-1 to a pivot letter and back up again, with
// letters joined by '-'. Rows are centered to the width of the widest row
// (the equator) using '-' as filler. For N=3:
//
//	----c----
//	--c-b-c--
//	c-b-a-b-c
//	--c-b-c--
//	----c----
package pattern
