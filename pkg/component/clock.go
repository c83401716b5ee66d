package component

import "github.com/trebor-relay/hacksim/pkg/signal"

// Clock is the master system clock: a single boolean output that Tick
// toggles on every call, plus a monotonic TIME counter. Update alone never
// advances the clock - only Tick does, splitting "react to the current
// state" (Update) from "cause an edge" (Tick).
type Clock struct {
	Base
	ticktock bool
	time     uint64
}

// NewClock builds a Clock producing the named output (default "CLOCK").
func NewClock(name string, outputs []string, seq int) *Clock {
	return &Clock{Base: NewBase(name, nil, outputs, nil, seq)}
}

// Time returns the number of successful ticks since construction or the
// last power loss.
func (c *Clock) Time() uint64 { return c.time }

// Tick toggles TICKTOCK and advances TIME, unless unpowered, in which case
// both fall back to zero and no edge is produced. signals must reflect the
// clock's own power inputs (if any) as of the moment of the tick.
func (c *Clock) Tick(signals signal.Map) error {
	if err := c.Read(signals); err != nil {
		return err
	}
	if !c.Powered() {
		c.ticktock = false
		c.time = 0
		return nil
	}
	c.ticktock = !c.ticktock
	c.time++
	return nil
}

func (c *Clock) Update(signals signal.Map) error {
	if err := c.Read(signals); err != nil {
		return err
	}
	if !c.Powered() {
		c.ZeroBoolOutputs()
		c.ticktock = false
		c.time = 0
		return nil
	}
	for _, name := range c.OutputNames() {
		c.SetBool(name, c.ticktock)
	}
	return nil
}
