package component

import (
	"fmt"

	"github.com/trebor-relay/hacksim/pkg/signal"
)

// Sequencer advances a 0..Ticks-1 ring once per clock edge, emitting a
// 2-cycle-wide Sc pulse and a 1-cycle-wide ScA pulse for the current cycle
// c (and, when c > 0, keeping S{c-1} asserted for the overlap).
type Sequencer struct {
	Base
	clockName string
	resetName string
	ticks     int

	lastClock bool
	cycle     int
}

// SequencerOutputNames returns the S0..S{n-1} and S0A..S{n-1}A names for a
// sequencer with n ticks, in declaration order.
func SequencerOutputNames(ticks int) []string {
	out := make([]string, 0, ticks*2)
	for i := 0; i < ticks; i++ {
		out = append(out, fmt.Sprintf("S%d", i))
	}
	for i := 0; i < ticks; i++ {
		out = append(out, fmt.Sprintf("S%dA", i))
	}
	return out
}

// NewSequencer builds a Sequencer with the given clock/reset input names
// and the number of ticks per machine cycle (10 for the v1 machine, 5 for
// v2).
func NewSequencer(name, clockName, resetName string, ticks int, seq int) *Sequencer {
	return &Sequencer{
		Base:      NewBase(name, []string{clockName, resetName}, SequencerOutputNames(ticks), nil, seq),
		clockName: clockName,
		resetName: resetName,
		ticks:     ticks,
	}
}

// Cycle returns the current phase index in [0, Ticks).
func (s *Sequencer) Cycle() int { return s.cycle }

// Ticks returns the configured ring size.
func (s *Sequencer) Ticks() int { return s.ticks }

func (s *Sequencer) Update(signals signal.Map) error {
	if err := s.Read(signals); err != nil {
		return err
	}
	if !s.Powered() {
		s.ZeroBoolOutputs()
		s.cycle = 0
		s.lastClock = false
		return nil
	}

	clock := s.InputBool(s.clockName)
	reset := s.InputBool(s.resetName)
	cycle := s.cycle

	if clock != s.lastClock {
		if cycle > 0 {
			cycle++
			if cycle == s.ticks {
				cycle = 0
			}
		} else if !reset {
			cycle = 1
		}
	}

	s.lastClock = clock
	s.cycle = cycle

	s.ZeroBoolOutputs()
	s.SetBool(fmt.Sprintf("S%d", cycle), true)
	s.SetBool(fmt.Sprintf("S%dA", cycle), true)
	if cycle != 0 {
		s.SetBool(fmt.Sprintf("S%d", cycle-1), true)
	}
	return nil
}
