package sim

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/trebor-relay/hacksim/pkg/component"
	"github.com/trebor-relay/hacksim/pkg/machine"
	"github.com/trebor-relay/hacksim/pkg/signal"
)

// Tick fires one clock edge and settles the resulting hardware state.
func Tick(m *machine.Machine, clock *component.Clock, signals signal.Map, rng *rand.Rand) (signal.Map, error) {
	if err := clock.Tick(signals); err != nil {
		return nil, err
	}
	return Settle(m, signals, rng)
}

// Cycle runs one full instruction cycle: it snapshots the architecturally
// visible state (A, D, PC, RESET, M) into the PREV component before
// anything moves, then ticks the clock once per sequencer phase.
func Cycle(m *machine.Machine, clock *component.Clock, signals signal.Map, rng *rand.Rand) (signal.Map, error) {
	prev, pc, areg, dreg, reset, inm, err := cycleComponents(m)
	if err != nil {
		return nil, err
	}

	prev.Set("_A", signal.Word(areg.Value()))
	prev.Set("_D", signal.Word(dreg.Value()))
	prev.Set("_PC", signal.Word(pc.Value()))
	prev.Set("_RESET", signal.Bool(reset.Asserted()))
	prev.Set("_M", signal.Word(inm.Value()))

	seqComp, ok := m.Get("SEQUENCER")
	if !ok {
		return nil, errors.New("cycle: machine has no SEQUENCER component")
	}
	seq, ok := seqComp.(*component.Sequencer)
	if !ok {
		return nil, errors.New("cycle: SEQUENCER is not a Sequencer")
	}

	for t := 0; t < seq.Ticks(); t++ {
		signals, err = Tick(m, clock, signals, rng)
		if err != nil {
			return nil, err
		}
	}
	return signals, nil
}

// Halted reports whether the PC register currently holds the same value it
// held at the start of the most recently completed cycle - the test
// interpreter's and the free-run driver's shared definition of "the
// program has entered its terminating infinite loop".
func Halted(m *machine.Machine) (bool, error) {
	prev, pc, _, _, _, _, err := cycleComponents(m)
	if err != nil {
		return false, err
	}
	return pc.Value() == prev.State()["_PC"].AsWord(), nil
}

func cycleComponents(m *machine.Machine) (prev *component.Mocked, pc *component.Register, areg *component.Register, dreg *component.Register, reset *component.Reset, inm *component.Register, err error) {
	get := func(name string) (component.Component, error) {
		c, ok := m.Get(name)
		if !ok {
			return nil, errors.Errorf("cycle: machine has no %q component", name)
		}
		return c, nil
	}

	prevC, err := get("PREV")
	if err != nil {
		return
	}
	pcC, err := get("PC")
	if err != nil {
		return
	}
	aregC, err := get("AREG")
	if err != nil {
		return
	}
	dregC, err := get("DREG")
	if err != nil {
		return
	}
	resetC, err := get("RESET")
	if err != nil {
		return
	}
	inmC, err := get("INM")
	if err != nil {
		return
	}

	var ok bool
	if prev, ok = prevC.(*component.Mocked); !ok {
		err = errors.New("cycle: PREV is not a Mocked component")
		return
	}
	if pc, ok = pcC.(*component.Register); !ok {
		err = errors.New("cycle: PC is not a Register")
		return
	}
	if areg, ok = aregC.(*component.Register); !ok {
		err = errors.New("cycle: AREG is not a Register")
		return
	}
	if dreg, ok = dregC.(*component.Register); !ok {
		err = errors.New("cycle: DREG is not a Register")
		return
	}
	if reset, ok = resetC.(*component.Reset); !ok {
		err = errors.New("cycle: RESET is not a Reset")
		return
	}
	if inm, ok = inmC.(*component.Register); !ok {
		err = errors.New("cycle: INM is not a Register")
		return
	}
	return
}
