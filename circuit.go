// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import (
	"github.com/pkg/errors"
)

// A Component is a clocked element of a circuit. Update is called once per
// half clock cycle with the circuit's clock. Components read the clock but
// must never advance it.
//
type Component interface {
	Update(clk *Clock)
}

// UpdaterFn adapts a function to the Component interface.
//
type UpdaterFn func(clk *Clock)

// Update calls f(clk).
//
func (f UpdaterFn) Update(clk *Clock) { f(clk) }

// Circuit drives a set of clocked components with its own Clock.
//
// Within a half cycle, components are updated one at a time in the order they
// were given to NewCircuit, then the clock advances. This makes the Circuit the
// single driver of its clock and of the flip-flops it contains. A Circuit is
// not safe for concurrent use.
//
type Circuit struct {
	clk   Clock
	cs    []Component
	steps uint64
}

// NewCircuit builds a new circuit based on the given components.
//
func NewCircuit(cs ...Component) (*Circuit, error) {
	if len(cs) == 0 {
		return nil, errors.New("empty component list")
	}
	for i, c := range cs {
		if c == nil {
			return nil, errors.Errorf("component #%d is nil", i)
		}
	}
	return &Circuit{cs: append([]Component(nil), cs...)}, nil
}

// Clock returns the circuit clock. Callers may read it, e.g. to sample
// component outputs between steps, but must not call its Next method.
//
func (c *Circuit) Clock() *Clock { return &c.clk }

// Steps returns the number of half cycles run so far.
//
func (c *Circuit) Steps() uint64 { return c.steps }

// Size returns the component count in the circuit.
//
func (c *Circuit) Size() int { return len(c.cs) }

// Step updates all components in the current phase, then advances the clock
// by one half cycle.
//
func (c *Circuit) Step() {
	for _, u := range c.cs {
		u.Update(&c.clk)
	}
	c.clk.Next()
	c.steps++
}

// Tick runs the simulation until the beginning of the next Tock phase. It does
// nothing if the clock is already in the Tock phase.
//
func (c *Circuit) Tick() {
	if c.clk.Phase() == Tick {
		c.Step()
	}
}

// Tock runs the simulation until the beginning of the next clock cycle. Once
// Tock returns, values latched during the previous Tick are committed.
//
func (c *Circuit) Tock() {
	if c.clk.Phase() == Tock {
		c.Step()
	}
}

// TickTock runs the simulation for a whole clock cycle.
//
func (c *Circuit) TickTock() {
	c.Tick()
	c.Tock()
}
