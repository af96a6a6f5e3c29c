// Package max7221 controls a MAX7221 (or MAX7219) 8-digit LED display driver
// via SPI.
//
// The chip drives either up to 8 seven-segment digits, using its built-in
// Code B decoder, or an 8x8 LED matrix with decoding disabled.
//
// See the examples for how to use this package.
package max7221

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/max7221/bcd"
	"periph.io/x/devices/v3/max7221/image1bit"
)

// Register is a 4-bit MAX7221 register address.
type Register byte

// Register map.
const (
	RegNoOp        Register = 0x00
	RegDigit0      Register = 0x01 // Digits 0-7 are 0x01-0x08.
	RegDecodeMode  Register = 0x09
	RegIntensity   Register = 0x0A
	RegScanLimit   Register = 0x0B
	RegShutdown    Register = 0x0C
	RegDisplayTest Register = 0x0F
)

// Digits is the number of digit registers, which is also the matrix size.
const Digits = bcd.MaxDigits

func (r Register) String() string {
	switch {
	case r == RegNoOp:
		return "no-op"
	case r >= RegDigit0 && r < RegDigit0+Digits:
		return fmt.Sprintf("digit %d", r-RegDigit0)
	case r == RegDecodeMode:
		return "decode-mode"
	case r == RegIntensity:
		return "intensity"
	case r == RegScanLimit:
		return "scan-limit"
	case r == RegShutdown:
		return "shutdown"
	case r == RegDisplayTest:
		return "display-test"
	}
	return fmt.Sprintf("register 0x%02X", byte(r))
}

var (
	// ErrOutOfRange is returned when a row, digit, segment count or value is
	// outside of its valid interval. Nothing is written.
	ErrOutOfRange = bcd.ErrOutOfRange
	// ErrOverflow is returned by DisplayBCDFixed when the value does not fit
	// and the policy is bcd.Reject. Nothing is written.
	ErrOverflow = bcd.ErrOverflow
	// ErrRounded is returned by DisplayBCDFixed after writing a value that had
	// to be clamped under bcd.Clamp.
	ErrRounded = bcd.ErrRounded
)

// TransportError is returned when the bus fails to write a register.
type TransportError struct {
	Reg Register
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("max7221: writing %s: %v", e.Reg, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RowError reports a failed row in a multi-row write. Rows are digit indexes.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("max7221: row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// StepError reports a failed step of the initialization sequence.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("max7221: init %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// InitMode selects the register defaults written by Init.
type InitMode int

const (
	// InitNone only sets up the bus; no register is written.
	InitNone InitMode = iota
	// InitBCD configures 4 scanned digits at full intensity with Code B
	// decoding on digits 0-3.
	InitBCD
	// InitRaw is InitBCD without decoding, for matrices and raw segments.
	InitRaw
)

func (m InitMode) String() string {
	switch m {
	case InitNone:
		return "none"
	case InitBCD:
		return "bcd"
	case InitRaw:
		return "raw"
	}
	return fmt.Sprintf("InitMode(%d)", int(m))
}

// Opts is the configuration for the MAX7221.
type Opts struct {
	// Register defaults written on creation.
	Mode InitMode

	// SPI clock (default: 10MHz, the chip maximum). Ignored by New.
	Hz physic.Frequency
}

// Dev is the device handle for the MAX7221.
//
// Dev keeps no display state; the chip registers are the only state. It is
// not safe for concurrent use: register frames from concurrent calls can
// interleave.
type Dev struct {
	c conn.Conn
}

// NewSPI creates a new MAX7221 device connected via SPI.
//
// The SPI port is configured for opts.Hz (10MHz by default), Mode0, 8-bit
// transfers. Chip select framing of each register write is done by the port.
//
// opts can be nil to skip register initialization.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	hz := opts.Hz
	if hz == 0 {
		hz = 10 * physic.MegaHertz
	}
	c, err := p.Connect(hz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("max7221: %w", err)
	}
	return New(c, opts)
}

// New creates a new MAX7221 device writing its registers on c. Every
// register write is a single c.Tx() of the address and value bytes.
//
// opts can be nil to skip register initialization.
func New(c conn.Conn, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	d := &Dev{c: c}
	if err := d.Init(opts.Mode); err != nil {
		return nil, err
	}
	return d, nil
}

func (o *Opts) validate() error {
	switch o.Mode {
	case InitNone, InitBCD, InitRaw:
	default:
		return fmt.Errorf("max7221: unknown init mode %d", int(o.Mode))
	}
	if o.Hz < 0 || o.Hz > 10*physic.MegaHertz {
		return fmt.Errorf("max7221: SPI clock %s must be between 0 and 10MHz", o.Hz)
	}
	return nil
}

// Init writes the register defaults for mode.
//
// InitBCD and InitRaw write scan-limit 4, intensity 0xF, power on, then clear
// the digit registers. InitBCD then enables decoding on digits 0-3. Every
// step runs even when an earlier one failed; failures are joined StepErrors.
func (d *Dev) Init(mode InitMode) error {
	if mode == InitNone {
		return nil
	}
	if mode != InitBCD && mode != InitRaw {
		return fmt.Errorf("max7221: unknown init mode %d", int(mode))
	}
	steps := []initStep{
		{"scan-limit", func() error { return d.SetScanLimit(4) }},
		{"intensity", func() error { return d.SetIntensity(0x0F) }},
		{"power", func() error { return d.SetPower(true) }},
		{"clear", d.Clear},
	}
	if mode == InitBCD {
		steps = append(steps, initStep{"decode-mode", func() error { return d.SetDecodeMode(0x0F) }})
	}
	var errs []error
	for _, s := range steps {
		if err := s.fn(); err != nil {
			errs = append(errs, &StepError{Step: s.name, Err: err})
		}
	}
	return errors.Join(errs...)
}

type initStep struct {
	name string
	fn   func() error
}

// writeRegister sends one register frame. The address is masked to 4 bits.
func (d *Dev) writeRegister(r Register, value byte) error {
	if err := d.c.Tx([]byte{byte(r) & 0x0F, value}, nil); err != nil {
		return &TransportError{Reg: r, Err: err}
	}
	return nil
}

// SetDecodeMode selects the digits decoded as Code B, one bit per digit.
// Digits with their bit cleared show the raw segment byte.
func (d *Dev) SetDecodeMode(mask byte) error {
	return d.writeRegister(RegDecodeMode, mask)
}

// SetIntensity sets the display brightness, 0x0 (lowest) to 0xF (highest).
func (d *Dev) SetIntensity(intensity byte) error {
	return d.writeRegister(RegIntensity, intensity)
}

// SetScanLimit sets the highest scanned digit, 0-7. Fewer scanned digits
// appear brighter.
func (d *Dev) SetScanLimit(limit byte) error {
	return d.writeRegister(RegScanLimit, limit)
}

// SetPower switches between normal operation (true) and shutdown (false).
func (d *Dev) SetPower(on bool) error {
	return d.writeRegister(RegShutdown, boolByte(on))
}

// SetDisplayTest lights every segment at full intensity while enabled,
// without changing the other registers.
func (d *Dev) SetDisplayTest(on bool) error {
	return d.writeRegister(RegDisplayTest, boolByte(on))
}

func boolByte(b bool) byte {
	if b {
		return 0xFF
	}
	return 0x00
}

// Clear writes 0x00 to every digit register, row 0 first.
//
// With decoding enabled this shows "0" on decoded digits; use
// DisplayBCDDigit with bcd.Blank to blank them instead.
func (d *Dev) Clear() error {
	return d.displayRows([Digits]byte{})
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the 8x8 matrix bounds.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, image1bit.Size, image1bit.Size)
}

// Draw renders src onto the matrix and writes all 8 rows. Decoding must be
// disabled for the rows to show as pixels.
//
// Only the dst part of the matrix takes src; the rest of the matrix is dark.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	m := image1bit.NewMatrix()
	draw.Draw(m, dst.Intersect(d.Bounds()), src, sp, draw.Src)
	return d.DisplayImage(m)
}

// Halt puts the chip in shutdown mode. SetPower(true) resumes display.
func (d *Dev) Halt() error {
	return d.SetPower(false)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("max7221.Dev{%s}", d.c)
}
