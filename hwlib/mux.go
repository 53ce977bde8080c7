// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/nandsim"
)

// Mux returns a multiplexer output.
//
//	Inputs: a, b, sel
//	Function: if sel == O { out = a } else { out = b }
//
func Mux(a, b, sel hw.Bit) hw.Bit {
	return Or(And(a, Not(sel)), And(b, sel))
}

// DMux returns a demultiplexer outputs.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == O { a = in; b = O } else { a = O; b = in }
//
func DMux(in, sel hw.Bit) (a, b hw.Bit) {
	return And(in, Not(sel)), And(in, sel)
}

// Mux16 returns a 16-bits Mux. The same sel bit drives all 16 lanes.
//
//	Inputs: a[16], b[16], sel
//	Function: for i := range out { out[i] = Mux(a[i], b[i], sel) }
//
func Mux16(a, b hw.Word, sel hw.Bit) hw.Word {
	var out hw.Word
	for i := range out {
		out[i] = Mux(a[i], b[i], sel)
	}
	return out
}

// Mux4Way16 returns a 4-Way 16-bits Mux. Selector bits are ordered most
// significant first.
//
//	Inputs: a[16], b[16], c[16], d[16], sel[2]
//	Function: out = a, b, c or d for sel = 00, 01, 10 or 11
//
func Mux4Way16(a, b, c, d hw.Word, sel [2]hw.Bit) hw.Word {
	return Mux16(
		Mux16(a, b, sel[1]),
		Mux16(c, d, sel[1]),
		sel[0])
}

// Mux8Way16 returns a 8-Way 16-bits Mux. Selector bits are ordered most
// significant first.
//
//	Inputs: a[16], b[16], c[16], d[16], e[16], f[16], g[16], h[16], sel[3]
//	Function: out = a, b, ..., h for sel = 000, 001, ..., 111
//
func Mux8Way16(a, b, c, d, e, f, g, h hw.Word, sel [3]hw.Bit) hw.Word {
	low := [2]hw.Bit{sel[1], sel[2]}
	return Mux16(
		Mux4Way16(a, b, c, d, low),
		Mux4Way16(e, f, g, h, low),
		sel[0])
}

// DMux4Way returns a 4-Way demultiplexer outputs. Selector bits are ordered
// most significant first.
//
//	Inputs: in, sel[2]
//	Outputs: out[4]
//	Function: out[sel] = in; all other outputs are O
//
func DMux4Way(in hw.Bit, sel [2]hw.Bit) [4]hw.Bit {
	x, y := DMux(in, sel[0])
	a, b := DMux(x, sel[1])
	c, d := DMux(y, sel[1])
	return [4]hw.Bit{a, b, c, d}
}

// DMux8Way returns a 8-Way demultiplexer outputs. Selector bits are ordered
// most significant first.
//
//	Inputs: in, sel[3]
//	Outputs: out[8]
//	Function: out[sel] = in; all other outputs are O
//
func DMux8Way(in hw.Bit, sel [3]hw.Bit) [8]hw.Bit {
	x, y := DMux(in, sel[0])
	low := [2]hw.Bit{sel[1], sel[2]}
	p := DMux4Way(x, low)
	q := DMux4Way(y, low)
	return [8]hw.Bit{p[0], p[1], p[2], p[3], q[0], q[1], q[2], q[3]}
}
