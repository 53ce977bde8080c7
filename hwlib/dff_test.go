package hwlib_test

import (
	"math/rand"
	"testing"

	hw "github.com/db47h/nandsim"
	hl "github.com/db47h/nandsim/hwlib"
)

func randBool() bool {
	return rand.Int63()&(1<<62) != 0
}

func TestDFF(t *testing.T) {
	var d hl.DFF
	clk := hw.NewClock()

	d.Input(I, clk)
	if out := d.Output(clk); out != O {
		t.Fatalf("Tick: expected old value O, got %v", out)
	}
	clk.Next()
	if clk.Phase() != hw.Tock {
		t.Fatalf("expected Tock, got %v", clk.Phase())
	}
	if out := d.Output(clk); out != I {
		t.Fatalf("Tock: expected latched value I, got %v", out)
	}
	// writes are disabled during Tock
	d.Input(O, clk)
	if out := d.Output(clk); out != I {
		t.Fatalf("Tock: Input must be a no-op, got %v", out)
	}
	clk.Next()
	if clk.Phase() != hw.Tick {
		t.Fatalf("expected Tick, got %v", clk.Phase())
	}
	if out := d.Output(clk); out != I {
		t.Fatalf("Tick: expected committed value I, got %v", out)
	}
}

// out(t) = in(t-1) when the DFF is fed once per cycle.
func TestDFF_sequence(t *testing.T) {
	var d hl.DFF
	clk := hw.NewClock()
	prev := O
	for i := 0; i < 1000; i++ {
		in := hw.BitOf(randBool())
		if out := d.Output(clk); out != prev {
			t.Fatalf("cycle %d: Tick before input: expected %v, got %v", i, prev, out)
		}
		d.Input(in, clk)
		// stable during the whole Tick
		if out := d.Output(clk); out != prev {
			t.Fatalf("cycle %d: Tick after input: expected %v, got %v", i, prev, out)
		}
		clk.Next()
		d.Input(hw.BitOf(randBool()), clk)
		if out := d.Output(clk); out != in {
			t.Fatalf("cycle %d: Tock: expected %v, got %v", i, in, out)
		}
		clk.Next()
		prev = in
	}
}

// a DFF left alone keeps its value across cycles.
func TestDFF_hold(t *testing.T) {
	var d hl.DFF
	clk := hw.NewClock()
	d.Input(I, clk)
	for i := 0; i < 10; i++ {
		clk.Next()
		if out := d.Output(clk); out != I {
			t.Fatalf("step %d (%v): expected I, got %v", i, clk.Phase(), out)
		}
	}
}

func Test_bit_register(t *testing.T) {
	var (
		reg        hl.BitRegister
		in, load   hw.Bit
		tick, tock hw.Bit
	)
	c, err := hw.NewCircuit(
		reg.Part(func() hw.Bit { return in }, func() hw.Bit { return load }),
		hl.OutputBit(reg.Output, func(p hw.Phase, v hw.Bit) {
			if p == hw.Tick {
				tick = v
			} else {
				tock = v
			}
		}),
	)
	if err != nil {
		t.Fatal(err)
	}

	p := O
	for i := 0; i < 1000; i++ {
		in = hw.BitOf(randBool())
		load = hw.BitOf(randBool())
		c.Tick()
		if tick != p {
			t.Fatalf("cycle %d: Tick: expected %v, got %v", i, p, tick)
		}
		if load {
			p = in
		}
		c.Tock()
		if tock != p {
			t.Fatalf("cycle %d: Tock: expected %v, got %v", i, p, tock)
		}
	}
}

func TestRegister(t *testing.T) {
	var (
		reg  hl.Register
		in   hw.Word
		load hw.Bit
		out  hw.Word
	)
	c, err := hw.NewCircuit(
		reg.Part(func() hw.Word { return in }, func() hw.Bit { return load }),
		hl.Output(reg.Output, func(_ hw.Phase, v hw.Word) { out = v }),
	)
	if err != nil {
		t.Fatal(err)
	}

	var p hw.Word
	for i := 0; i < 500; i++ {
		in = hw.WordOf(int16(rand.Int63()))
		load = hw.BitOf(randBool())
		c.TickTock()
		if load {
			p = in
		}
		if out != p {
			t.Fatalf("cycle %d: expected %v, got %v", i, p, out)
		}
		if got := reg.Output(c.Clock()); got != p {
			t.Fatalf("cycle %d: Output() = %v, expected %v", i, got, p)
		}
	}
}
