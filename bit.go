// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import (
	"github.com/pkg/errors"
)

// A Bit is a two-valued logic signal.
//
type Bit bool

// Bit values.
//
const (
	O Bit = false
	I Bit = true
)

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// NewBit converts v to a Bit. It returns an error unless v is exactly 0 or 1.
//
func NewBit[T integer](v T) (Bit, error) {
	switch v {
	case 0:
		return O, nil
	case 1:
		return I, nil
	}
	return O, errors.Errorf("invalid bit value %d: need 0 or 1", v)
}

// MustBit is like NewBit but panics on invalid values.
//
func MustBit[T integer](v T) Bit {
	b, err := NewBit(v)
	if err != nil {
		panic(err)
	}
	return b
}

// BitOf returns I for true and O for false.
//
func BitOf(v bool) Bit { return Bit(v) }

// Bool returns the boolean value of b.
//
func (b Bit) Bool() bool { return bool(b) }

// Int returns 0 for O and 1 for I.
//
func (b Bit) Int() int {
	if b {
		return 1
	}
	return 0
}

func (b Bit) String() string {
	if b {
		return "I"
	}
	return "O"
}
