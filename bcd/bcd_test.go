package bcd

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func digitsEqual(a, b Digits) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSymbolString(t *testing.T) {
	tests := []struct {
		sym  Symbol
		want string
	}{
		{0, "0"},
		{9, "9"},
		{Minus, "-"},
		{E, "E"},
		{H, "H"},
		{L, "L"},
		{P, "P"},
		{Blank, " "},
		{3 | DecimalPoint, "3."},
	}

	for _, tt := range tests {
		if got := tt.sym.String(); got != tt.want {
			t.Errorf("Symbol(0x%02X).String() = %q, want %q", byte(tt.sym), got, tt.want)
		}
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		segments int
		want     Digits
	}{
		{"least significant first", 245, 3, Digits{5, 4, 2}},
		{"negative overwrites ones", -20, 4, Digits{Minus, 2, 0, 0}},
		{"zero padded", 1337, 8, Digits{7, 3, 3, 1, 0, 0, 0, 0}},
		{"zero", 0, 1, Digits{0}},
		{"max for segments", 9999, 4, Digits{9, 9, 9, 9}},
		{"overflow truncates", 300, 2, Digits{0, 0}},
		{"negative on one segment", -3, 1, Digits{Minus}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Int(tt.value, tt.segments)
			if err != nil {
				t.Fatalf("Int(%d, %d) error = %v", tt.value, tt.segments, err)
			}
			if !digitsEqual(got, tt.want) {
				t.Errorf("Int(%d, %d) = %v, want %v", tt.value, tt.segments, got, tt.want)
			}
		})
	}
}

func TestIntSegmentsOutOfRange(t *testing.T) {
	for _, segments := range []int{-1, 0, 9, 255} {
		if _, err := Int(1, segments); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Int(1, %d) error = %v, want ErrOutOfRange", segments, err)
		}
	}
}

func TestSplitMinInt(t *testing.T) {
	d, negative, err := Split(math.MinInt, 8)
	if err != nil {
		t.Fatal(err)
	}
	if !negative {
		t.Error("Split(MinInt) should be negative")
	}
	mag := strconv.FormatUint(uint64(math.MaxInt)+1, 10)
	want := make(Digits, 8)
	for i := range want {
		want[i] = Symbol(mag[len(mag)-1-i] - '0')
	}
	if !digitsEqual(d, want) {
		t.Errorf("Split(MinInt, 8) = %v, want %v", d, want)
	}
}

func TestIntRoundTrip(t *testing.T) {
	for segments := 1; segments <= MaxDigits; segments++ {
		limit := 1
		for i := 0; i < segments; i++ {
			limit *= 10
		}
		for _, v := range []int{0, 1, limit / 3, limit / 2, limit - 1} {
			d, err := Int(v, segments)
			if err != nil {
				t.Fatal(err)
			}
			got, scale := 0, 1
			for _, s := range d {
				got += int(s) * scale
				scale *= 10
			}
			if got != v {
				t.Errorf("Int(%d, %d) = %v decodes to %d", v, segments, d, got)
			}
		}
	}
}

func TestFixed(t *testing.T) {
	dp := DecimalPoint
	tests := []struct {
		name     string
		value    float64
		decimals int
		segments int
		want     Digits
	}{
		{"13.37", 13.37, 2, 4, Digits{7, 3, 3 | dp, 1}},
		{"-1.5", -1.5, 1, 3, Digits{5, 1 | dp, Minus}},
		{"-1.500", -1.5, 3, 5, Digits{0, 0, 5, 1 | dp, Minus}},
		{"pi truncated", 3.14159, 3, 4, Digits{1, 4, 1, 3 | dp}},
		{".5", 0.5, 1, 2, Digits{5, 0 | dp}},
		{"-.5", -0.5, 1, 2, Digits{5, Minus | dp}},
		{"20.5", 20.5, 1, 3, Digits{5, 0 | dp, 2}},
		{"zero padded", 1.25, 2, 6, Digits{5, 2, 1 | dp, 0, 0, 0}},
		{"negative zero", -0.001, 1, 3, Digits{0, 0 | dp, 0}},
		{"largest", 99.9, 1, 3, Digits{9, 9 | dp, 9}},
		{"most negative", -9.9, 1, 3, Digits{9, 9 | dp, Minus}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rounded, err := Fixed(tt.value, tt.decimals, tt.segments, Reject)
			if err != nil {
				t.Fatalf("Fixed(%v, %d, %d) error = %v", tt.value, tt.decimals, tt.segments, err)
			}
			if rounded {
				t.Error("rounded should be false")
			}
			if !digitsEqual(got, tt.want) {
				t.Errorf("Fixed(%v, %d, %d) = %v, want %v", tt.value, tt.decimals, tt.segments, got, tt.want)
			}
		})
	}
}

func TestFixedOverflow(t *testing.T) {
	dp := DecimalPoint
	tests := []struct {
		name     string
		value    float64
		decimals int
		segments int
		clamped  Digits
	}{
		{"13.37 on 3", 13.37, 2, 3, Digits{9, 9, 9 | dp}},
		{"-1.5 on 2", -1.5, 1, 2, Digits{9, Minus | dp}},
		{"-1.5 on 4 with 3 decimals", -1.5, 3, 4, Digits{9, 9, 9, Minus | dp}},
		{"upper bound excluded", 100, 1, 3, Digits{9, 9 | dp, 9}},
		{"lower bound excluded", -10, 1, 3, Digits{9, 9 | dp, Minus}},
		{"+Inf", math.Inf(1), 2, 4, Digits{9, 9, 9 | dp, 9}},
		{"-Inf", math.Inf(-1), 2, 4, Digits{9, 9, 9 | dp, Minus}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Fixed(tt.value, tt.decimals, tt.segments, Reject); !errors.Is(err, ErrOverflow) {
				t.Errorf("Reject error = %v, want ErrOverflow", err)
			}
			got, rounded, err := Fixed(tt.value, tt.decimals, tt.segments, Clamp)
			if err != nil {
				t.Fatalf("Clamp error = %v", err)
			}
			if !rounded {
				t.Error("Clamp should report rounded")
			}
			if !digitsEqual(got, tt.clamped) {
				t.Errorf("Clamp = %v, want %v", got, tt.clamped)
			}
		})
	}
}

func TestFixedInvalidArguments(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		segments int
		policy   Overflow
	}{
		{"no decimals", 1, 0, 4, Reject},
		{"one segment", 1, 1, 1, Reject},
		{"decimals equal segments", 1, 4, 4, Reject},
		{"too many segments", 1, 1, 9, Reject},
		{"NaN", math.NaN(), 1, 4, Reject},
		{"unknown policy", 1, 1, 4, Overflow(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Fixed(tt.value, tt.decimals, tt.segments, tt.policy); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("error = %v, want ErrOutOfRange", err)
			}
		})
	}
}

func TestDigitsString(t *testing.T) {
	d := Digits{7, 3, 3 | DecimalPoint, 1}
	if got, want := d.String(), "[7 3 3. 1]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
