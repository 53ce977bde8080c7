// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing gates and chips
// against reference models.
//
package hwtest

import (
	"strings"
	"testing"
	"testing/quick"

	hw "github.com/db47h/nandsim"
)

// A BitFn is a gate with n inputs and m outputs.
//
type BitFn func(in []hw.Bit) []hw.Bit

// Inputs returns the n-bit input vector for the given row of a truth table.
// in[0] is the most significant bit of row.
//
func Inputs(n int, row int) []hw.Bit {
	in := make([]hw.Bit, n)
	for bit := range in {
		in[n-bit-1] = row&(1<<uint(bit)) != 0
	}
	return in
}

func bitString(bs []hw.Bit) string {
	var b strings.Builder
	for i, v := range bs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	return b.String()
}

// CompareGate exhaustively compares the outputs of gate and ref for all the
// 2^inputs input combinations.
//
func CompareGate(t testing.TB, name string, inputs int, gate, ref BitFn) {
	t.Helper()
	tot := 1 << uint(inputs)
	for row := 0; row < tot; row++ {
		in := Inputs(inputs, row)
		got, exp := gate(in), ref(in)
		if len(got) != len(exp) {
			t.Fatalf("%s(%s): got %d outputs, expected %d", name, bitString(in), len(got), len(exp))
		}
		for o := range exp {
			if got[o] != exp[o] {
				t.Errorf("%s(%s) = [%s], expected [%s]", name, bitString(in), bitString(got), bitString(exp))
				break
			}
		}
	}
}

// TruthTable checks gate against an expected truth table. Row i of the table
// holds the expected outputs for the inputs returned by Inputs(inputs, i).
//
func TruthTable(t testing.TB, name string, inputs int, gate BitFn, table [][]hw.Bit) {
	t.Helper()
	if len(table) != 1<<uint(inputs) {
		t.Fatalf("%s: truth table has %d rows, expected %d", name, len(table), 1<<uint(inputs))
	}
	CompareGate(t, name, inputs, gate, func(in []hw.Bit) []hw.Bit {
		row := 0
		for _, b := range in {
			row = row<<1 | b.Int()
		}
		return table[row]
	})
}

// CompareWord1 compares a single input word function against a reference
// implementation working on native int16 values, using random inputs.
//
func CompareWord1(t testing.TB, name string, fn func(a hw.Word) hw.Word, ref func(a int16) int16) {
	t.Helper()
	f := func(a int16) bool {
		return fn(hw.WordOf(a)).Int16() == ref(a)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatalf("%s: %v", name, err)
	}
}

// CompareWord2 compares a two input word function against a reference
// implementation working on native int16 values, using random inputs.
//
func CompareWord2(t testing.TB, name string, fn func(a, b hw.Word) hw.Word, ref func(a, b int16) int16) {
	t.Helper()
	f := func(a, b int16) bool {
		return fn(hw.WordOf(a), hw.WordOf(b)).Int16() == ref(a, b)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatalf("%s: %v", name, err)
	}
}
