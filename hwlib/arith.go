// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/nandsim"
)

// HalfAdder returns the sum of two bits.
//
//	Inputs: a, b
//	Outputs: carry, sum
//	Function: sum = lsb(a + b)
//	          carry = msb(a + b)
//
func HalfAdder(a, b hw.Bit) (carry, sum hw.Bit) {
	return And(a, b), Xor(a, b)
}

// FullAdder returns the sum of three bits.
//
//	Inputs: a, b, c
//	Outputs: carry, sum
//	Function: sum = lsb(a + b + c)
//	          carry = msb(a + b + c)
//
func FullAdder(a, b, c hw.Bit) (carry, sum hw.Bit) {
	c0, s0 := HalfAdder(a, b)
	c1, sum := HalfAdder(c, s0)
	return Or(c0, c1), sum
}

// Add16 returns a + b, computed by a ripple-carry adder starting from bit 15
// (lsb). Overflow wraps silently.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
//
func Add16(a, b hw.Word) hw.Word {
	var (
		out   hw.Word
		carry hw.Bit
	)
	carry, out[15] = HalfAdder(a[15], b[15])
	for i := 14; i >= 0; i-- {
		carry, out[i] = FullAdder(a[i], b[i], carry)
	}
	return out
}

var one16 = hw.Word{15: hw.I}

// Inc16 returns in + 1. Incrementing the all-I word yields the all-O word.
//
func Inc16(in hw.Word) hw.Word {
	return Add16(in, one16)
}
