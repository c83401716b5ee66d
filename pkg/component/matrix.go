package component

import "github.com/trebor-relay/hacksim/pkg/signal"

// Matrix is a sparse logical-OR array: in the hardware, a diode matrix. Each
// declared output is true iff any of its associated input names is true.
type Matrix struct {
	Base
	array map[string][]string // output name -> OR'd input names
}

// NewMatrix builds a Matrix. array maps each output name to the list of
// sequencer (or other boolean) input names that OR together to drive it;
// inputs is the full flattened set of names read from the bus (normally the
// union of all array value lists).
func NewMatrix(name string, inputs []string, array map[string][]string, seq int) *Matrix {
	outputs := make([]string, 0, len(array))
	for out := range array {
		outputs = append(outputs, out)
	}
	return &Matrix{
		Base:  NewBase(name, inputs, outputs, nil, seq),
		array: array,
	}
}

func (m *Matrix) Update(signals signal.Map) error {
	if err := m.Read(signals); err != nil {
		return err
	}
	if !m.Powered() {
		m.ZeroBoolOutputs()
		return nil
	}
	for out, ins := range m.array {
		asserted := false
		for _, in := range ins {
			if m.InputBool(in) {
				asserted = true
				break
			}
		}
		m.SetBool(out, asserted)
	}
	return nil
}
