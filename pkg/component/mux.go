package component

import "github.com/trebor-relay/hacksim/pkg/signal"

// Multiplexer is a 2-to-1 selector: output = A if CTRL else B.
type Multiplexer struct {
	Base
	ctrlName, aName, bName string
	outputName             string
}

// NewMultiplexer builds a Multiplexer with inputs named [ctrl, a, b].
func NewMultiplexer(name string, inputs []string, power []string, seq int) *Multiplexer {
	if len(inputs) != 3 {
		panic("component: Multiplexer requires exactly 3 inputs: CTRL, A, B")
	}
	b := NewBase(name, inputs, nil, power, seq)
	return &Multiplexer{
		Base:       b,
		ctrlName:   inputs[0],
		aName:      inputs[1],
		bName:      inputs[2],
		outputName: b.OutputNames()[0],
	}
}

func (m *Multiplexer) Update(signals signal.Map) error {
	if err := m.Read(signals); err != nil {
		return err
	}
	if !m.Powered() {
		m.ZeroWordOutputs()
		return nil
	}
	if m.InputBool(m.ctrlName) {
		m.SetWord(m.outputName, m.InputWord(m.aName))
	} else {
		m.SetWord(m.outputName, m.InputWord(m.bName))
	}
	return nil
}
