// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/pkg/errors"

	hw "github.com/db47h/nandsim"
)

var zero16 hw.Word

// ALU returns the result of the arithmetic or logic operation selected by the
// six control bits zx, nx, zy, ny, f and no.
//
//	Inputs: x[16], y[16], zx, nx, zy, ny, f, no
//	Outputs: out[16], zr, ng
//	Function: if zx { x = 0 }
//	          if nx { x = !x }
//	          if zy { y = 0 }
//	          if ny { y = !y }
//	          if f { out = x + y } else { out = x & y }
//	          if no { out = !out }
//	          zr = out == 0
//	          ng = out < 0
//
// The ALU is a pure function: there is no carry or overflow output, sums wrap
// around silently.
//
func ALU(x, y hw.Word, zx, nx, zy, ny, f, no hw.Bit) (out hw.Word, zr, ng hw.Bit) {
	x1 := Mux16(x, zero16, zx)
	x2 := Mux16(x1, Not16(x1), nx)
	y1 := Mux16(y, zero16, zy)
	y2 := Mux16(y1, Not16(y1), ny)
	pre := Mux16(And16(x2, y2), Add16(x2, y2), f)
	out = Mux16(pre, Not16(pre), no)
	zr = Not(Or(
		Or8Way([8]hw.Bit(out[:8])),
		Or8Way([8]hw.Bit(out[8:]))))
	ng = out[0]
	return out, zr, ng
}

// Control holds the six ALU control bits.
//
type Control struct {
	ZX, NX, ZY, NY, F, NO hw.Bit
}

// Apply runs the ALU on x and y with the control bits in c.
//
func (c Control) Apply(x, y hw.Word) (out hw.Word, zr, ng hw.Bit) {
	return ALU(x, y, c.ZX, c.NX, c.ZY, c.NY, c.F, c.NO)
}

// Bits returns the control bits in zx, nx, zy, ny, f, no order.
//
func (c Control) Bits() [6]hw.Bit {
	return [6]hw.Bit{c.ZX, c.NX, c.ZY, c.NY, c.F, c.NO}
}

func (c Control) String() string {
	var buf [6]byte
	for i, b := range c.Bits() {
		buf[i] = byte('0' + b.Int())
	}
	return string(buf[:])
}

// ParseControl parses six '0' or '1' digits in zx, nx, zy, ny, f, no order.
//
func ParseControl(s string) (Control, error) {
	if len(s) != 6 {
		return Control{}, errors.Errorf("invalid control code %q: need 6 digits", s)
	}
	var bits [6]hw.Bit
	for i := range bits {
		b, err := hw.NewBit(int(s[i]) - '0')
		if err != nil {
			return Control{}, errors.Wrapf(err, "invalid control code %q", s)
		}
		bits[i] = b
	}
	return Control{bits[0], bits[1], bits[2], bits[3], bits[4], bits[5]}, nil
}

func mustControl(s string) Control {
	c, err := ParseControl(s)
	if err != nil {
		panic(err)
	}
	return c
}

// An Op is a named ALU operation.
//
type Op struct {
	Name string
	Control
}

// Ops lists the 18 canonical ALU operations.
//
var Ops = []Op{
	{"0", mustControl("101010")},
	{"1", mustControl("111111")},
	{"-1", mustControl("111010")},
	{"x", mustControl("001100")},
	{"y", mustControl("110000")},
	{"!x", mustControl("001101")},
	{"!y", mustControl("110001")},
	{"-x", mustControl("001111")},
	{"-y", mustControl("110011")},
	{"x+1", mustControl("011111")},
	{"y+1", mustControl("110111")},
	{"x-1", mustControl("001110")},
	{"y-1", mustControl("110010")},
	{"x+y", mustControl("000010")},
	{"x-y", mustControl("010011")},
	{"y-x", mustControl("000111")},
	{"x&y", mustControl("000000")},
	{"x|y", mustControl("010101")},
}

// LookupOp returns the control bits for the named operation.
//
func LookupOp(name string) (Control, error) {
	for _, op := range Ops {
		if op.Name == name {
			return op.Control, nil
		}
	}
	return Control{}, errors.Errorf("unknown ALU operation %q", name)
}
