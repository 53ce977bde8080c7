// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import hw "github.com/db47h/nandsim"

// BitRegister is a 1 bit register: a DFF whose input is fed back through a Mux
// unless load is set.
//
type BitRegister struct {
	dff DFF
}

// Input feeds in to the register.
//
//	Function: if load { out(t+1) = in } else { out(t+1) = out(t) }
//
func (r *BitRegister) Input(in, load hw.Bit, clk *hw.Clock) {
	r.dff.Input(Mux(r.dff.Output(clk), in, load), clk)
}

// Output returns the register value.
//
func (r *BitRegister) Output(clk *hw.Clock) hw.Bit {
	return r.dff.Output(clk)
}

// Register is a 16 bits register.
//
type Register struct {
	bits [hw.WordSize]BitRegister
}

// Input feeds in to the register.
//
//	Function: if load { out(t+1) = in } else { out(t+1) = out(t) }
//
func (r *Register) Input(in hw.Word, load hw.Bit, clk *hw.Clock) {
	for i := range r.bits {
		r.bits[i].Input(in[i], load, clk)
	}
}

// Output returns the register value.
//
func (r *Register) Output(clk *hw.Clock) hw.Word {
	var out hw.Word
	for i := range r.bits {
		out[i] = r.bits[i].Output(clk)
	}
	return out
}

// Part mounts r as a component of a circuit. On every update, the register is
// fed with in() and load().
//
//	Inputs: in[16], load
//	Outputs: out[16]
//
func (r *Register) Part(in func() hw.Word, load func() hw.Bit) hw.Component {
	return hw.UpdaterFn(func(clk *hw.Clock) {
		r.Input(in(), load(), clk)
	})
}

// Part mounts r as a component of a circuit. On every update, the register is
// fed with in() and load().
//
//	Inputs: in, load
//	Outputs: out
//
func (r *BitRegister) Part(in, load func() hw.Bit) hw.Component {
	return hw.UpdaterFn(func(clk *hw.Clock) {
		r.Input(in(), load(), clk)
	})
}
