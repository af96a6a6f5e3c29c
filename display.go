package max7221

import (
	"errors"

	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/max7221/bcd"
	"periph.io/x/devices/v3/max7221/image1bit"
)

// DisplayByte writes value to the digit register of row, 0-7. Each bit is one
// segment or matrix column when decoding is disabled for that digit.
func (d *Dev) DisplayByte(row int, value byte) error {
	if row < 0 || row >= Digits {
		return ErrOutOfRange
	}
	return d.writeRegister(RegDigit0+Register(row), value)
}

// DisplayVector writes a row of LEDs; v[i] is column i (bit i).
func (d *Dev) DisplayVector(row int, v [image1bit.Size]bool) error {
	return d.DisplayByte(row, image1bit.PackRow(v))
}

// DisplayMatrix writes m[row][column] to rows 0 through 7.
//
// Every row is attempted. The returned error joins a RowError per failed
// row.
func (d *Dev) DisplayMatrix(m [image1bit.Size][image1bit.Size]bool) error {
	var errs []error
	for row, v := range m {
		if err := d.DisplayVector(row, v); err != nil {
			errs = append(errs, &RowError{Row: row, Err: err})
		}
	}
	return errors.Join(errs...)
}

// DisplayImage writes the 8 rows of m, like DisplayMatrix.
func (d *Dev) DisplayImage(m *image1bit.Matrix) error {
	return d.displayRows(m.Pix)
}

func (d *Dev) displayRows(rows [Digits]byte) error {
	var errs []error
	for row, b := range rows {
		if err := d.DisplayByte(row, b); err != nil {
			errs = append(errs, &RowError{Row: row, Err: err})
		}
	}
	return errors.Join(errs...)
}

// DisplayBCDDigit writes a Code B value, 0-15, to digit 0-7. Decoding must be
// enabled for that digit with SetDecodeMode.
func (d *Dev) DisplayBCDDigit(digit int, value bcd.Symbol) error {
	if digit < 0 || digit >= Digits || value > bcd.Blank {
		return ErrOutOfRange
	}
	return d.writeRegister(RegDigit0+Register(digit), byte(value))
}

// DisplayBCDInt shows value on digits 0 to segments-1, ones on digit 0.
//
// A negative value then gets bcd.Minus written over digit 0. The usable range
// is -10^(segments-1)+1 to 10^segments-1; digits beyond segments are dropped
// silently. segments must be 1-8.
func (d *Dev) DisplayBCDInt(value, segments int) error {
	digits, negative, err := bcd.Split(value, segments)
	if err != nil {
		return err
	}
	for i, s := range digits {
		if err := d.DisplayBCDDigit(i, s); err != nil {
			return err
		}
	}
	if negative {
		return d.DisplayBCDDigit(0, bcd.Minus)
	}
	return nil
}

// DisplayBCDFixed shows value with decimals digits after the decimal point on
// digits 0 to segments-1. The decimal point is lit on digit decimals.
//
// 1 <= decimals < segments <= 8 is required. Extra fractional digits are
// truncated. A value outside (-10^(segments-decimals-1),
// 10^(segments-decimals)) is refused with ErrOverflow under bcd.Reject, or
// clamped, written and reported with ErrRounded under bcd.Clamp.
func (d *Dev) DisplayBCDFixed(value float64, decimals, segments int, policy bcd.Overflow) error {
	digits, rounded, err := bcd.Fixed(value, decimals, segments, policy)
	if err != nil {
		return err
	}
	for i, s := range digits {
		// Written as a raw byte to keep the decimal point bit.
		if err := d.writeRegister(RegDigit0+Register(i), byte(s)); err != nil {
			return err
		}
	}
	if rounded {
		return ErrRounded
	}
	return nil
}

var _ display.Drawer = &Dev{}
