package image1bit

import (
	"image"
	"image/color"
)

// Size is the width and height of the matrix.
const Size = 8

// Bit is a 1-bit color: a LED is either lit or dark.
type Bit bool

const (
	On  Bit = true
	Off Bit = false
)

// RGBA converts the Bit to opaque white or black.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit lights every color whose luminance is at least half scale.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// Matrix is an 8x8 1-bit image. Pix[y] is the register byte of row y and bit
// x of it is column x.
type Matrix struct {
	Pix [Size]byte
}

// NewMatrix returns a dark matrix.
func NewMatrix() *Matrix {
	return &Matrix{}
}

// FromBools builds a Matrix from rows of booleans, m[row][column].
func FromBools(m [Size][Size]bool) *Matrix {
	img := &Matrix{}
	for y, row := range m {
		img.Pix[y] = PackRow(row)
	}
	return img
}

// PackRow packs a row into one byte; v[i] becomes bit i.
func PackRow(v [Size]bool) byte {
	var b byte
	for x, on := range v {
		if on {
			b |= 1 << uint(x)
		}
	}
	return b
}

// ColorModel returns the color model of the image.
func (m *Matrix) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds, always (0,0)-(8,8).
func (m *Matrix) Bounds() image.Rectangle {
	return image.Rect(0, 0, Size, Size)
}

// At returns the color of the pixel at (x, y).
func (m *Matrix) At(x, y int) color.Color {
	return m.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y).
func (m *Matrix) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(m.Bounds())) {
		return Off
	}
	return m.Pix[y]&(1<<uint(x)) != 0
}

// Set sets the color of the pixel at (x, y).
func (m *Matrix) Set(x, y int, c color.Color) {
	m.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the pixel at (x, y) without color conversion.
func (m *Matrix) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(m.Bounds())) {
		return
	}
	if b {
		m.Pix[y] |= 1 << uint(x)
	} else {
		m.Pix[y] &^= 1 << uint(x)
	}
}
