// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

// Phase is one of the two halves of a clock cycle.
//
type Phase int

// Clock phases.
//
// Clocked components sample and commit new values during Tick. During Tock
// writes are disabled and freshly latched values become visible.
//
const (
	Tick Phase = iota
	Tock
)

// Bit returns the phase as a selector bit: O for Tick, I for Tock.
//
func (p Phase) Bit() Bit { return p == Tock }

func (p Phase) String() string {
	switch p {
	case Tick:
		return "Tick"
	case Tock:
		return "Tock"
	}
	return "Phase(?)"
}

// A Clock is a free running two-phase clock. It only advances through
// explicit calls to Next.
//
// The zero value is a clock in the Tick phase of cycle 0.
//
// A Clock must be stepped by a single driver; it is not safe for concurrent
// use.
//
type Clock struct {
	phase  Phase
	cycles uint64
}

// NewClock returns a new clock in the Tick phase.
//
func NewClock() *Clock {
	return &Clock{phase: Tick}
}

// Phase returns the current clock phase.
//
func (c *Clock) Phase() Phase { return c.phase }

// State is an alias for Phase.
//
func (c *Clock) State() Phase { return c.phase }

// Cycle returns the number of full clock cycles completed so far, i.e. the
// number of Tock to Tick transitions.
//
func (c *Clock) Cycle() uint64 { return c.cycles }

// Next toggles the clock phase.
//
func (c *Clock) Next() {
	if c.phase == Tick {
		c.phase = Tock
		return
	}
	c.phase = Tick
	c.cycles++
}
