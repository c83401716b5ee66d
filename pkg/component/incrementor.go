package component

import (
	"github.com/pkg/errors"

	"github.com/trebor-relay/hacksim/pkg/signal"
)

// ErrPCRollover is returned by a non-rollover Incrementor when its input is
// already the maximum 16-bit word. An unmasked carry past 0xFFFF can't be
// represented on a natively 16-bit signal bus, so callers choose between two
// interpretations: mask=true, wrap to 0 like any other 16-bit adder;
// mask=false, treat the carry as a hardware fault.
var ErrPCRollover = errors.New("incrementor: 16-bit overflow with rollover disabled")

// Incrementor adds 1 to a 16-bit input.
type Incrementor struct {
	Base
	inputName, outputName string
	mask                  bool
}

// NewIncrementor builds an Incrementor. When mask is true (the default
// wiring for both machine variants) the output silently wraps modulo
// 2^16. When false, an input of 0xFFFF makes Update return ErrPCRollover
// instead of producing an output, modelling hardware that was never meant
// to run off the end of ROM.
func NewIncrementor(name string, inputs []string, power []string, mask bool, seq int) *Incrementor {
	if len(inputs) != 1 {
		panic("component: Incrementor requires exactly 1 input")
	}
	b := NewBase(name, inputs, nil, power, seq)
	return &Incrementor{
		Base:       b,
		inputName:  inputs[0],
		outputName: b.OutputNames()[0],
		mask:       mask,
	}
}

func (i *Incrementor) Update(signals signal.Map) error {
	if err := i.Read(signals); err != nil {
		return err
	}
	if !i.Powered() {
		i.ZeroWordOutputs()
		return nil
	}
	in := i.InputWord(i.inputName)
	if !i.mask && in == 0xFFFF {
		return errors.Wrapf(ErrPCRollover, "component %q", i.Name())
	}
	i.SetWord(i.outputName, in+1)
	return nil
}
