// Package bcd splits numbers into MAX7221 Code B digit values.
//
// The MAX7221 decodes the low nibble of a digit register into a numeral
// (0-9) or one of six symbols (-, E, H, L, P and blank). Bit 7 of the
// register lights the decimal point of that digit.
//
// Digits are always returned least significant first: index 0 is the ones
// digit and maps to digit register 0 of the device.
//
//	// 245 on three digits
//	d, _ := bcd.Int(245, 3)
//	fmt.Println(d) // [5 4 2]
//
//	// 13.37 with two decimals on four digits
//	d, _, _ = bcd.Fixed(13.37, 2, 4, bcd.Reject)
//	fmt.Println(d) // [7 3 3. 1]
//
// Nothing in this package touches the bus.
package bcd
