// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import hw "github.com/db47h/nandsim"

// DFF is a clocked data flip flop driven by a two-phase clock.
//
// During Tick, Input commits the pending value and latches a new one while
// Output exposes the committed value. During Tock, Input is a no-op and Output
// exposes the value latched during the preceding Tick. A reader therefore sees
// a single stable value for a whole half cycle, whatever the order in which
// flip-flops of a larger circuit are written.
//
// The zero value holds O. A DFF belongs to the circuit node that created it and
// must not be shared without external synchronization.
//
type DFF struct {
	committed hw.Bit
	pending   hw.Bit
	// 1 + clock cycle during which pending was latched; 0 if never.
	latched uint64
}

// Input feeds in to the flip flop.
//
//	Function: if Tick { committed = pending; pending = in }
//
func (d *DFF) Input(in hw.Bit, clk *hw.Clock) {
	we := Not(clk.Phase().Bit())
	d.committed = Mux(d.committed, d.pending, we)
	d.pending = Mux(d.pending, in, we)
	if we == hw.I {
		d.latched = clk.Cycle() + 1
	}
}

// Output returns the flip flop output.
//
//	Function: if Tick { out = committed } else { out = pending }
//
// A value latched in an earlier cycle is committed as soon as the clock is
// back to Tick, even if Input has not been called yet in the current cycle.
//
func (d *DFF) Output(clk *hw.Clock) hw.Bit {
	stale := hw.BitOf(d.latched <= clk.Cycle())
	return Mux(
		Mux(d.committed, d.pending, stale),
		d.pending,
		clk.Phase().Bit())
}
