package component

import "github.com/trebor-relay/hacksim/pkg/signal"

// AndGate is an N-input boolean AND reducer.
type AndGate struct {
	Base
	outputName string
}

// NewAndGate builds an AndGate over the given input names.
func NewAndGate(name string, inputs []string, power []string, seq int) *AndGate {
	b := NewBase(name, inputs, nil, power, seq)
	return &AndGate{Base: b, outputName: b.OutputNames()[0]}
}

func (g *AndGate) Update(signals signal.Map) error {
	if err := g.Read(signals); err != nil {
		return err
	}
	if !g.Powered() {
		g.ZeroBoolOutputs()
		return nil
	}
	all := true
	for _, name := range g.InputNames() {
		if !g.InputBool(name) {
			all = false
			break
		}
	}
	g.SetBool(g.outputName, all)
	return nil
}

// OrGate is an N-input boolean OR reducer.
type OrGate struct {
	Base
	outputName string
}

// NewOrGate builds an OrGate over the given input names.
func NewOrGate(name string, inputs []string, power []string, seq int) *OrGate {
	b := NewBase(name, inputs, nil, power, seq)
	return &OrGate{Base: b, outputName: b.OutputNames()[0]}
}

func (g *OrGate) Update(signals signal.Map) error {
	if err := g.Read(signals); err != nil {
		return err
	}
	if !g.Powered() {
		g.ZeroBoolOutputs()
		return nil
	}
	any := false
	for _, name := range g.InputNames() {
		if g.InputBool(name) {
			any = true
			break
		}
	}
	g.SetBool(g.outputName, any)
	return nil
}
