// Package max7221 controls a MAX7221 LED display driver via SPI.
//
// The MAX7221 (and the pin compatible MAX7219) scans up to 8 digits of
// common-cathode LEDs. Each digit has one register; depending on the decode
// mode a register holds either a Code B value (a numeral or one of - E H L P
// and blank) or a raw byte lighting one LED per bit. The chip refreshes the
// LEDs by itself once configured.
//
// This driver implements the display.Drawer interface from periph.io for 8x8
// LED matrices.
//
// # Hardware Connection
//
// Connect the MAX7221 to your system via SPI:
//
//	Chip Pin    → System Pin
//	GND         → GND
//	V+          → 5V
//	CLK         → SPI Clock (SCLK)
//	DIN         → SPI Data (MOSI)
//	CS (LOAD)   → SPI Chip Select
//	ISET        → V+ through a resistor (sets segment current)
//
// # Basic Usage
//
// Example of showing a number on a seven-segment display:
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/max7221"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Create device; InitBCD decodes digits 0-3
//		dev, _ := max7221.NewSPI(spiBus, &max7221.Opts{Mode: max7221.InitBCD})
//		defer dev.Halt()
//
//		// Shows "1337" on digits 3, 2, 1 and 0
//		dev.DisplayBCDInt(1337, 4)
//	}
//
// # Digit Order
//
// Digit 0 is register 0x01 and always carries the least significant digit.
// DisplayBCDInt(245, 3) writes 5 to digit 0, 4 to digit 1 and 2 to digit 2.
//
// A negative integer gets the minus sign written over digit 0 after the
// numerals, so keep one segment free for it:
//
//	dev.DisplayBCDInt(-20, 4) // digits 0-3: - 2 0 0
//
// # Fixed-Point Numbers
//
// DisplayBCDFixed reserves the lowest digits for decimals and lights the
// decimal point of the ones digit:
//
//	dev.DisplayBCDFixed(13.37, 2, 4, bcd.Reject) // 13.37
//	dev.DisplayBCDFixed(-1.5, 1, 3, bcd.Reject)  // -1.5
//
// Values that do not fit are refused (bcd.Reject, ErrOverflow) or clamped to
// the largest value of the same sign (bcd.Clamp, ErrRounded).
//
// # LED Matrix
//
// With decoding disabled (InitRaw) each digit register is one row of an 8x8
// matrix and bit x lights column x:
//
//	var m [8][8]bool
//	m[0][0] = true
//	dev.DisplayMatrix(m)
//
// Or draw any image.Image through the display.Drawer interface; colors are
// converted with image1bit.BitModel.
//
// # Errors
//
// Out of range rows, digits, segment counts and values return ErrOutOfRange
// and write nothing. Bus failures return a *TransportError. Multi-register
// operations (DisplayMatrix, Clear, Init) attempt every register and join one
// RowError or StepError per failure.
//
// A Dev must not be used from multiple goroutines without external locking.
//
// # Datasheet
//
// https://www.analog.com/media/en/technical-documentation/data-sheets/MAX7219-MAX7221.pdf
package max7221
