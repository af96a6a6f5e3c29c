package bcd

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// MaxDigits is the number of digit registers on a MAX7221.
const MaxDigits = 8

// Symbol is a Code B digit value. Only the low nibble selects the glyph; bit 7
// is the decimal point.
type Symbol byte

// Code B symbols above the numerals.
const (
	Minus Symbol = 0x0A
	E     Symbol = 0x0B
	H     Symbol = 0x0C
	L     Symbol = 0x0D
	P     Symbol = 0x0E
	Blank Symbol = 0x0F

	// DecimalPoint is OR'd onto a digit value to light its decimal point.
	DecimalPoint Symbol = 0x80
)

var glyphs = "0123456789-EHLP "

// String returns the glyph shown by the device, followed by "." when the
// decimal point bit is set.
func (s Symbol) String() string {
	g := string(glyphs[s&0x0F])
	if s&DecimalPoint != 0 {
		g += "."
	}
	return g
}

// Digits is the content of consecutive digit registers, index 0 first.
type Digits []Symbol

func (d Digits) String() string {
	parts := make([]string, len(d))
	for i, s := range d {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

var (
	// ErrOutOfRange is returned when a digit, row, segment count or value is
	// outside of its valid interval.
	ErrOutOfRange = errors.New("max7221: value out of range")
	// ErrOverflow is returned when a number does not fit in the requested
	// segments and the overflow policy is Reject.
	ErrOverflow = errors.New("max7221: value overflows segments")
	// ErrRounded is returned when a number was clamped to fit its segments.
	ErrRounded = errors.New("max7221: value rounded to fit segments")
)

// Overflow selects what Fixed does with a value outside of its range.
type Overflow int

const (
	// Reject refuses values that do not fit and returns ErrOverflow.
	Reject Overflow = iota
	// Clamp replaces values that do not fit by the representable value of
	// largest magnitude and the same sign, and reports it.
	Clamp
)

// Split decomposes value into segments numerals, ones first. The sign is
// returned separately and not applied. Digits above segments are dropped.
func Split(value, segments int) (Digits, bool, error) {
	if segments < 1 || segments > MaxDigits {
		return nil, false, ErrOutOfRange
	}
	negative := value < 0
	mag := magnitude(value)
	d := make(Digits, segments)
	for i := range d {
		d[i] = Symbol(mag % 10)
		mag /= 10
	}
	return d, negative, nil
}

// Int returns the digit registers written for value on segments digits.
//
// A negative value gets Minus on digit 0, replacing the ones numeral; callers
// must reserve a segment for it. The usable range is -10^(segments-1)+1 to
// 10^segments-1. Values outside of it are truncated silently.
func Int(value, segments int) (Digits, error) {
	d, negative, err := Split(value, segments)
	if err != nil {
		return nil, err
	}
	if negative {
		d[0] = Minus
	}
	return d, nil
}

// magnitude returns |v| without overflowing on math.MinInt.
func magnitude(v int) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

// Fixed returns the digit registers for value shown with decimals digits
// after the point on segments digits. It reports whether the value was
// clamped.
//
// Valid arguments are 1 <= decimals < segments <= 8. Fractional digits past
// decimals are truncated toward zero. The range is
// (-10^(segments-decimals-1), 10^(segments-decimals)); a negative value uses
// digit segments-1 for Minus. Whole digits are zero filled and the ones digit
// carries DecimalPoint.
func Fixed(value float64, decimals, segments int, policy Overflow) (Digits, bool, error) {
	if decimals < 1 || segments < 2 || segments > MaxDigits || decimals >= segments {
		return nil, false, ErrOutOfRange
	}
	if math.IsNaN(value) {
		return nil, false, ErrOutOfRange
	}
	if policy != Reject && policy != Clamp {
		return nil, false, ErrOutOfRange
	}

	negative := value < 0
	whole, frac := "", strings.Repeat("0", decimals)
	overflow := math.IsInf(value, 0)
	if !overflow {
		whole, frac = splitDecimal(math.Abs(value), decimals)
		if strings.Trim(whole+frac, "0") == "" {
			negative = false
		}
	}

	room := segments - decimals
	if negative {
		room--
	}
	if overflow || len(whole) > room {
		if policy == Reject {
			return nil, false, ErrOverflow
		}
		whole = strings.Repeat("9", room)
		frac = strings.Repeat("9", decimals)
		overflow = true
	}

	d := make(Digits, segments)
	for i := 0; i < decimals; i++ {
		d[i] = Symbol(frac[decimals-1-i] - '0')
	}
	for i := 0; i < len(whole); i++ {
		d[decimals+i] = Symbol(whole[len(whole)-1-i] - '0')
	}
	if negative {
		d[segments-1] = Minus
	}
	d[decimals] |= DecimalPoint
	return d, overflow, nil
}

// splitDecimal returns the whole digits of v without leading zeros and
// exactly n fractional digits, truncated. v must be finite and non negative.
func splitDecimal(v float64, n int) (string, string) {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	whole, frac, _ := strings.Cut(s, ".")
	whole = strings.TrimLeft(whole, "0")
	if len(frac) < n {
		frac += strings.Repeat("0", n-len(frac))
	}
	return whole, frac[:n]
}
