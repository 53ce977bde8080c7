// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import (
	"strconv"

	"github.com/pkg/errors"
)

// WordSize is the number of bits in a Word.
//
const WordSize = 16

// A Word is a 16 bits two's complement value. Index 0 is the most significant
// (sign) bit, index 15 the least significant.
//
// Words are values: functions taking a Word operate on a copy and return a
// fresh one.
//
type Word [WordSize]Bit

// Bit returns bit i of w. It panics if i is out of the range [0, 15].
//
func (w Word) Bit(i int) Bit {
	if i < 0 || i >= WordSize {
		panic("bit index " + strconv.Itoa(i) + " out of range")
	}
	return w[i]
}

// ParseWord parses a string of 16 '0' or '1' digits, most significant bit
// first. Blanks between digits are ignored, so "0000 0000 0000 0101" is
// valid.
//
func ParseWord(s string) (Word, error) {
	var w Word
	n := 0
	for pos, r := range s {
		var b Bit
		switch r {
		case ' ', '\t', '_':
			continue
		case '0':
			b = O
		case '1':
			b = I
		default:
			return Word{}, errors.Errorf("in %q at pos %d: invalid digit %q, need 0 or 1", s, pos+1, r)
		}
		if n == WordSize {
			return Word{}, errors.Errorf("in %q: too many digits, need %d", s, WordSize)
		}
		w[n] = b
		n++
	}
	if n != WordSize {
		return Word{}, errors.Errorf("in %q: got %d digits, need %d", s, n, WordSize)
	}
	return w, nil
}

// MustParseWord is like ParseWord but panics if s is not a valid word.
//
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// WordOf returns the two's complement representation of v.
//
func WordOf(v int16) Word {
	var w Word
	u := uint16(v)
	for i := range w {
		w[WordSize-1-i] = u&(1<<uint(i)) != 0
	}
	return w
}

// Uint16 returns the unsigned value of w.
//
func (w Word) Uint16() uint16 {
	var out uint16
	for i, b := range w {
		if b {
			out |= 1 << uint(WordSize-1-i)
		}
	}
	return out
}

// Int16 returns the signed value of w.
//
func (w Word) Int16() int16 { return int16(w.Uint16()) }

// String returns w as 16 binary digits, most significant bit first. The result
// can be fed back to ParseWord.
//
func (w Word) String() string {
	var buf [WordSize]byte
	for i, b := range w {
		if b {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf[:])
}
