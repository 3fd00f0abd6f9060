// Package font5x7 provides the fixed 5x7 bitmap font used by the KS0108 text layer.
//
// Each glyph is stored column-major as 5 bytes, one per pixel column. Within a
// column byte, bit 0 is the top row and bit 6 the bottom row; bit 7 is always
// clear. This matches the page-byte layout of the KS0108 display RAM, so a
// glyph column can be compared against a page byte directly.
//
// Layout example for 'A' (0x7E, 0x11, 0x11, 0x11, 0x7E):
//
//	row 0: . # # # .
//	row 1: # . . . #
//	row 2: # . . . #
//	row 3: # . . . #
//	row 4: # # # # #
//	row 5: # . . . #
//	row 6: # . . . #
//
// Only printable ASCII (0x20 to 0x7E) is covered. Lookup reports false for
// every other code and returns a blank glyph.
//
// Example usage:
//
//	g, ok := font5x7.Lookup('A')
//	if ok && g.Bit(0, 1) {
//		println("left column, second row is lit")
//	}
package font5x7
