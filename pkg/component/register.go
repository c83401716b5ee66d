package component

import "github.com/trebor-relay/hacksim/pkg/signal"

// Register is a 16-bit holding-relay latch: inputs DATA, CLR, STO, GATE (in
// that order), one output. It is only ever updated while GATE is high; with
// CLR low, set bits are held and new data is OR'd in, modelling a relay that
// keeps its contacts closed until the clear coil is energized.
type Register struct {
	Base
	dataName, clrName, stoName, gateName string
	outputName                           string
	data                                 uint16
}

// NewRegister builds a Register with inputs named [data, clr, sto, gate] and
// a single output (default name).
func NewRegister(name string, inputs []string, power []string, seq int) *Register {
	if len(inputs) != 4 {
		panic("component: Register requires exactly 4 inputs: DATA, CLR, STO, GATE")
	}
	b := NewBase(name, inputs, nil, power, seq)
	return &Register{
		Base:       b,
		dataName:   inputs[0],
		clrName:    inputs[1],
		stoName:    inputs[2],
		gateName:   inputs[3],
		outputName: b.OutputNames()[0],
	}
}

// Value returns the currently latched word.
func (r *Register) Value() uint16 { return r.data }

// Load sets the latched value directly, bypassing the gate logic. Used by
// the test interpreter's `set` command and by machine bootstrap code.
func (r *Register) Load(v uint16) {
	r.data = v
	r.SetWord(r.outputName, v)
}

func (r *Register) Update(signals signal.Map) error {
	if err := r.Read(signals); err != nil {
		return err
	}
	if !r.Powered() {
		r.ZeroWordOutputs()
		r.data = 0
		return nil
	}

	if r.InputBool(r.gateName) {
		incoming := uint16(0)
		if r.InputBool(r.stoName) {
			incoming = r.InputWord(r.dataName)
		}
		if r.InputBool(r.clrName) {
			r.data = incoming
		} else {
			r.data = incoming | r.data
		}
	}
	r.SetWord(r.outputName, r.data)
	return nil
}
