package sim

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/trebor-relay/hacksim/pkg/component"
	"github.com/trebor-relay/hacksim/pkg/machine"
	"github.com/trebor-relay/hacksim/pkg/signal"
)

// ErrRunawayExecution is returned by RunUntilHalt when a program runs past
// maxCycles without ever repeating its PC, which almost always means the
// program does not end in the conventional (LOOP) @LOOP, 0;JMP idiom this
// simulator expects, rather than a genuinely unbounded computation.
var ErrRunawayExecution = errors.New("program did not reach its terminating loop")

// Bootstrap asserts RESET, lets the machine settle into its power-on state,
// runs one full instruction cycle with RESET still asserted (so PC, AREG
// and DREG all land on their reset values), then clears RESET. Both a test
// script and a free-run loop expect to start from this state.
func Bootstrap(m *machine.Machine, reset *component.Reset, clock *component.Clock, rng *rand.Rand) (signal.Map, error) {
	reset.Set()
	signals := m.CollectOutputs()

	signals, err := Settle(m, signals, rng)
	if err != nil {
		return nil, err
	}
	signals, err = Cycle(m, clock, signals, rng)
	if err != nil {
		return nil, err
	}
	reset.Clear()
	return signals, nil
}

// RunUntilHalt repeatedly runs full instruction cycles until the program
// reaches its terminating loop (PC stops changing between cycles). maxCycles
// is a safety bound: a program that never reaches that loop triggers
// ErrRunawayExecution instead of spinning forever.
func RunUntilHalt(m *machine.Machine, clock *component.Clock, signals signal.Map, rng *rand.Rand, maxCycles int) (signal.Map, int, error) {
	count := 0
	for {
		var err error
		signals, err = Cycle(m, clock, signals, rng)
		if err != nil {
			return nil, count, err
		}
		count++

		halted, err := Halted(m)
		if err != nil {
			return nil, count, err
		}
		if halted {
			return signals, count, nil
		}
		if count >= maxCycles {
			return nil, count, errors.Wrapf(ErrRunawayExecution, "after %d cycles", count)
		}
	}
}
