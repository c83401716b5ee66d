// Package sim drives a machine.Machine through the randomized settling
// engine and the tick/cycle sequencing built on top of it. It holds no
// state of its own: every call takes the machine, the current signal map
// and (where timing matters) a random source, and returns the next signal
// map.
package sim

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/trebor-relay/hacksim/pkg/component"
	"github.com/trebor-relay/hacksim/pkg/machine"
	"github.com/trebor-relay/hacksim/pkg/signal"
)

// maxSettleRounds bounds how many randomized update passes Settle will try
// before giving up. Chosen generously relative to the deepest dependency
// chain in either machine variant; a real design that needs more than this
// to reach a fixed point has a genuine oscillation, not a slow one.
const maxSettleRounds = 10

// ErrFailedToSettle is returned when a machine does not reach a fixed point
// within maxSettleRounds randomized update passes - a hardware design
// fault, never a recoverable condition. The wrapped message carries the
// last two signal maps for diagnosis.
var ErrFailedToSettle = errors.New("machine failed to settle")

// Settle repeatedly updates every component, in a freshly shuffled order
// each round, until the resulting output set stops changing or the round
// bound is exceeded. The shuffle exists to flush out any component whose
// Update depends on evaluation order - a correctly modelled component
// never should, and Settle's whole job is to prove that.
func Settle(m *machine.Machine, signals signal.Map, rng *rand.Rand) (signal.Map, error) {
	order := make([]component.Component, len(m.Order))
	copy(order, m.Order)

	var last signal.Map
	for round := 0; round < maxSettleRounds; round++ {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		for _, c := range order {
			if err := c.Update(signals); err != nil {
				return nil, err
			}
		}

		next := m.CollectOutputs()
		if next.Equal(signals) {
			return next, nil
		}
		last, signals = signals, next
	}

	return nil, errors.Wrapf(ErrFailedToSettle, "no fixed point after %d rounds; last two signal maps:\n%v\n%v", maxSettleRounds, last, signals)
}
