// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of logic gates, arithmetic chips and
// clocked storage, all derived from a single primitive: Nand.
//
// Apart from Nand, no function in this package inspects the value of a bit
// directly. Every other gate is a composition of previously defined ones,
// mirroring how the chip would be wired out of NAND gates.
//
// Copyright 2018 Denis Bernard <db047h@gmail.com>
//
// This package is licensed under the MIT license. See license text in the LICENSE file.
//
package hwlib

import (
	hw "github.com/db47h/nandsim"
)

// Nand returns a NAND gate output.
//
//	Inputs: a, b
//	Function: out = !(a && b)
//
func Nand(a, b hw.Bit) hw.Bit {
	if a == hw.I && b == hw.I {
		return hw.O
	}
	return hw.I
}

// Not returns !in.
//
//	Function: out = Nand(in, in)
//
func Not(in hw.Bit) hw.Bit { return Nand(in, in) }

// And returns a && b.
//
//	Function: out = Not(Nand(a, b))
//
func And(a, b hw.Bit) hw.Bit { return Not(Nand(a, b)) }

// Or returns a || b.
//
//	Function: out = Nand(Not(a), Not(b))
//
func Or(a, b hw.Bit) hw.Bit { return Nand(Not(a), Not(b)) }

// Xor returns a != b.
//
//	Function: out = Or(And(a, Not(b)), And(b, Not(a)))
//
func Xor(a, b hw.Bit) hw.Bit { return Or(And(a, Not(b)), And(b, Not(a))) }

// Not16 returns a 16 bits NOT.
//
//	Function: for i := range out { out[i] = Not(in[i]) }
//
func Not16(in hw.Word) hw.Word {
	var out hw.Word
	for i := range out {
		out[i] = Not(in[i])
	}
	return out
}

// gate16 lifts a two input gate to 16 bits.
func gate16(g func(a, b hw.Bit) hw.Bit, a, b hw.Word) hw.Word {
	var out hw.Word
	for i := range out {
		out[i] = g(a[i], b[i])
	}
	return out
}

// And16 returns a 16 bits AND.
//
//	Function: for i := range out { out[i] = And(a[i], b[i]) }
//
func And16(a, b hw.Word) hw.Word { return gate16(And, a, b) }

// Or16 returns a 16 bits OR.
//
//	Function: for i := range out { out[i] = Or(a[i], b[i]) }
//
func Or16(a, b hw.Word) hw.Word { return gate16(Or, a, b) }

// Or8Way returns a 8-Way OR, evaluated as a balanced tree of Or gates.
//
//	Function: out = in[0] || in[1] || ... || in[7]
//
func Or8Way(in [8]hw.Bit) hw.Bit {
	return Or(
		Or(Or(in[0], in[1]), Or(in[2], in[3])),
		Or(Or(in[4], in[5]), Or(in[6], in[7])),
	)
}

// OrNWay returns a N-Way OR, evaluated as a chain of Or gates. It returns O
// for an empty input.
//
//	Function: out = in[0] || in[1] || ... || in[n-1]
//
func OrNWay(in ...hw.Bit) hw.Bit {
	out := hw.O
	for _, b := range in {
		out = Or(out, b)
	}
	return out
}

// AndNWay returns a N-Way AND, evaluated as a chain of And gates. It returns I
// for an empty input.
//
//	Function: out = in[0] && in[1] && ... && in[n-1]
//
func AndNWay(in ...hw.Bit) hw.Bit {
	out := hw.I
	for _, b := range in {
		out = And(out, b)
	}
	return out
}
