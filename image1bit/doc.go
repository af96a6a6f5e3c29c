// Package image1bit provides the 8x8 monochrome image format of a MAX7221
// driven LED matrix.
//
// With Code B decoding disabled every digit register holds one row of the
// matrix: row y is digit register y, and column x is bit x of that register
// (column 0 is the least significant bit).
//
// Memory layout example for row 0 with columns 0, 1 and 7 lit:
//
//	Columns: 0 1 2 3 4 5 6 7
//	LEDs:    # # . . . . . #
//	Pix[0]:  0x83
//
// This package provides:
//
// - Bit: A color type that is either on or off
// - BitModel: A color model converting standard Go colors to Bit
// - Matrix: An image.Image implementation matching the digit registers
// - PackRow: Packs a row of booleans into a register byte
//
// Example usage:
//
//	m := image1bit.NewMatrix()
//	m.SetBit(2, 5, image1bit.On)
//	draw.Draw(m, m.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Over)
package image1bit
