package hwlib_test

import (
	"sync"
	"testing"
	"testing/quick"

	hw "github.com/db47h/nandsim"
	hl "github.com/db47h/nandsim/hwlib"
)

// aluRef is a native model of the ALU.
func aluRef(x, y int16, c hl.Control) (out int16, zr, ng bool) {
	if c.ZX {
		x = 0
	}
	if c.NX {
		x = ^x
	}
	if c.ZY {
		y = 0
	}
	if c.NY {
		y = ^y
	}
	if c.F {
		out = x + y
	} else {
		out = x & y
	}
	if c.NO {
		out = ^out
	}
	return out, out == 0, out < 0
}

func controlOf(code int) hl.Control {
	var b [6]hw.Bit
	for i := range b {
		b[5-i] = code&(1<<uint(i)) != 0
	}
	return hl.Control{ZX: b[0], NX: b[1], ZY: b[2], NY: b[3], F: b[4], NO: b[5]}
}

func TestALU_allControls(t *testing.T) {
	for code := 0; code < 64; code++ {
		c := controlOf(code)
		f := func(x, y int16) bool {
			out, zr, ng := hl.ALU(hw.WordOf(x), hw.WordOf(y), c.ZX, c.NX, c.ZY, c.NY, c.F, c.NO)
			eOut, eZr, eNg := aluRef(x, y, c)
			return out.Int16() == eOut && zr.Bool() == eZr && ng.Bool() == eNg
		}
		if err := quick.Check(f, &quick.Config{MaxCount: 20}); err != nil {
			t.Fatalf("control %v: %v", c, err)
		}
	}
}

func TestALU_ops(t *testing.T) {
	ops := map[string]func(x, y int16) int16{
		"0":   func(x, y int16) int16 { return 0 },
		"1":   func(x, y int16) int16 { return 1 },
		"-1":  func(x, y int16) int16 { return -1 },
		"x":   func(x, y int16) int16 { return x },
		"y":   func(x, y int16) int16 { return y },
		"!x":  func(x, y int16) int16 { return ^x },
		"!y":  func(x, y int16) int16 { return ^y },
		"-x":  func(x, y int16) int16 { return -x },
		"-y":  func(x, y int16) int16 { return -y },
		"x+1": func(x, y int16) int16 { return x + 1 },
		"y+1": func(x, y int16) int16 { return y + 1 },
		"x-1": func(x, y int16) int16 { return x - 1 },
		"y-1": func(x, y int16) int16 { return y - 1 },
		"x+y": func(x, y int16) int16 { return x + y },
		"x-y": func(x, y int16) int16 { return x - y },
		"y-x": func(x, y int16) int16 { return y - x },
		"x&y": func(x, y int16) int16 { return x & y },
		"x|y": func(x, y int16) int16 { return x | y },
	}
	if len(hl.Ops) != len(ops) {
		t.Fatalf("got %d ops, expected %d", len(hl.Ops), len(ops))
	}
	for _, op := range hl.Ops {
		ref, ok := ops[op.Name]
		if !ok {
			t.Fatalf("unexpected op %q", op.Name)
		}
		op := op
		t.Run(op.Name, func(t *testing.T) {
			f := func(x, y int16) bool {
				out, zr, ng := op.Apply(hw.WordOf(x), hw.WordOf(y))
				exp := ref(x, y)
				return out.Int16() == exp && zr.Bool() == (exp == 0) && ng.Bool() == (exp < 0)
			}
			if err := quick.Check(f, nil); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestALU_golden(t *testing.T) {
	f := func(x, y hw.Word) bool {
		// constant 0, whatever the inputs
		out, zr, ng := hl.ALU(x, y, I, O, I, O, I, O)
		if out != (hw.Word{}) || zr != I || ng != O {
			return false
		}
		// identity on x
		out, zr, ng = hl.ALU(x, y, O, O, I, I, O, O)
		return out == x && zr == hw.BitOf(x == hw.Word{}) && ng == x[0]
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestLookupOp(t *testing.T) {
	c, err := hl.LookupOp("x-y")
	if err != nil {
		t.Fatal(err)
	}
	if c.String() != "010011" {
		t.Fatalf("x-y = %v, expected 010011", c)
	}
	if _, err = hl.LookupOp("x*y"); err == nil {
		t.Fatal("expected error for x*y")
	}
}

func TestParseControl(t *testing.T) {
	c, err := hl.ParseControl("000111")
	if err != nil {
		t.Fatal(err)
	}
	if exp := (hl.Control{ZX: O, NX: O, ZY: O, NY: I, F: I, NO: I}); c != exp {
		t.Fatalf("got %+v, expected %+v", c, exp)
	}
	for _, s := range []string{"", "00011", "0001110", "00011x", "000112"} {
		if _, err = hl.ParseControl(s); err == nil {
			t.Errorf("ParseControl(%q): expected error", s)
		}
	}
}

// the ALU has no hidden state and can be used from several goroutines.
func TestALU_concurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := -512; i < 512; i++ {
				x, y := int16(i*(g+1)), int16(g*77-i)
				for _, op := range hl.Ops {
					out, _, _ := op.Apply(hw.WordOf(x), hw.WordOf(y))
					out2, _, _ := op.Apply(hw.WordOf(x), hw.WordOf(y))
					if out != out2 {
						errs <- op.Name
						return
					}
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for name := range errs {
		t.Errorf("non deterministic result for %s", name)
	}
}
