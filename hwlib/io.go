// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/nandsim"
)

// Output creates an output probe. The f function is called with the current
// clock phase and the value of out on every circuit update.
//
// Probes should be mounted after the parts they observe so that they see the
// values as of the end of the half cycle.
//
func Output(out func(clk *hw.Clock) hw.Word, f func(p hw.Phase, v hw.Word)) hw.Component {
	return hw.UpdaterFn(func(clk *hw.Clock) {
		f(clk.Phase(), out(clk))
	})
}

// OutputBit creates a 1 bit output probe. See Output.
//
func OutputBit(out func(clk *hw.Clock) hw.Bit, f func(p hw.Phase, v hw.Bit)) hw.Component {
	return hw.UpdaterFn(func(clk *hw.Clock) {
		f(clk.Phase(), out(clk))
	})
}
