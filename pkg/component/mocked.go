package component

import "github.com/trebor-relay/hacksim/pkg/signal"

// Mocked is a state-only component: it owns a fixed set of named values and
// reflects them unchanged onto equally-named outputs every round. It reads
// no inputs and is never powered off. Used for the PREV snapshot register
// bank a machine exposes between cycles (A/D/PC/RESET/M as seen one cycle
// ago), and for any other "just hold whatever was last written" slot a
// builder needs.
type Mocked struct {
	Base
	state signal.Map
}

// NewMocked builds a Mocked component whose outputs are exactly the keys of
// initial (cloned, so the caller's map stays independent).
func NewMocked(name string, initial signal.Map, seq int) *Mocked {
	outputs := make([]string, 0, len(initial))
	for k := range initial {
		outputs = append(outputs, k)
	}
	return &Mocked{
		Base:  NewBase(name, nil, outputs, nil, seq),
		state: initial.Clone(),
	}
}

// Set overwrites a single held value, visible from the next Update onward.
func (m *Mocked) Set(name string, v signal.Value) {
	m.state[name] = v
}

// State returns the component's current held values.
func (m *Mocked) State() signal.Map { return m.state.Clone() }

func (m *Mocked) Update(signals signal.Map) error {
	for name, v := range m.state {
		switch v.Kind {
		case signal.KindWord:
			m.SetWord(name, v.Word)
		case signal.KindText:
			m.SetText(name, v.Text)
		default:
			m.SetBool(name, v.Bool)
		}
	}
	return nil
}
