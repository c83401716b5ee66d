// Package component implements the closed set of hardware component
// variants that make up a relay-HACK machine: Reset, Clock, Sequencer,
// Matrix, Register, ConditionCodes, Multiplexer, AND/OR gates, ALU,
// Incrementor, Branch, Decoder, ROM, RAM and Mocked.
//
// Every variant embeds Base, which carries the input/output/power name
// lists, the per-instance construction sequence number, and the small
// per-round input snapshot used both to drive Update and to support
// diagnostics. Each variant supplies its own Update method; there is no
// virtual dispatch beyond the Component interface itself, matching the
// "closed tagged sum, one Update dispatch" shape called out for a systems
// language port of the original single-base-class design.
package component

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/trebor-relay/hacksim/pkg/signal"
)

// ErrUnknownSignal is returned (wrapped with component/signal names) when a
// component's Update is given a signal map that lacks one of its declared
// input or power names. This is always a fatal configuration error - the
// caller is expected to abort the run.
var ErrUnknownSignal = errors.New("unknown signal")

// Component is the single operation every hardware variant exposes.
type Component interface {
	// Name is the component's unique identifier within a Machine.
	Name() string
	// Sequence is the declaration order, used only to order diagnostic dumps.
	Sequence() int
	// InputNames, OutputNames and PowerNames list the signal names this
	// component reads or produces. Output defaults to []string{Name()}.
	InputNames() []string
	OutputNames() []string
	PowerNames() []string
	// Update reads inputs/power from signals and recomputes outputs.
	Update(signals signal.Map) error
	// Outputs returns the component's current output values.
	Outputs() signal.Map
}

// Base is embedded by every component variant. It owns the declared
// input/output/power name lists and the per-round input/output value
// cells; variants add their own mutable state (e.g. a Register's latched
// word) alongside it.
type Base struct {
	name    string
	inputs  []string
	outputs []string
	power   []string
	seq     int

	in  signal.Map // last values read from the bus, for Update and diagnostics
	out signal.Map // current output values
}

// NewBase builds a Base. outputs defaults to []string{name} when empty, per
// the component contract's massaging rule.
func NewBase(name string, inputs, outputs, power []string, seq int) Base {
	if len(outputs) == 0 {
		outputs = []string{name}
	}
	out := make(signal.Map, len(outputs))
	for _, o := range outputs {
		out[o] = signal.False
	}
	return Base{
		name:    name,
		inputs:  inputs,
		outputs: outputs,
		power:   power,
		seq:     seq,
		in:      make(signal.Map),
		out:     out,
	}
}

func (b *Base) Name() string          { return b.name }
func (b *Base) Sequence() int         { return b.seq }
func (b *Base) InputNames() []string  { return b.inputs }
func (b *Base) OutputNames() []string { return b.outputs }
func (b *Base) PowerNames() []string  { return b.power }

// Outputs returns a snapshot of the component's current output values.
func (b *Base) Outputs() signal.Map { return b.out.Clone() }

// Read pulls every declared input and power value out of signals into the
// component's own cells, so that Update (and later diagnostics) can inspect
// them. An unknown name is the one fatal configuration error every variant
// shares.
func (b *Base) Read(signals signal.Map) error {
	b.in = make(signal.Map, len(b.inputs)+len(b.power))
	for _, name := range b.inputs {
		v, ok := signals[name]
		if !ok {
			return errors.Wrapf(ErrUnknownSignal, "component %q requires unknown input signal %q", b.name, name)
		}
		b.in[name] = v
	}
	for _, name := range b.power {
		v, ok := signals[name]
		if !ok {
			return errors.Wrapf(ErrUnknownSignal, "component %q requires unknown power signal %q", b.name, name)
		}
		b.in[name] = v
	}
	return nil
}

// Powered reports whether the component currently has power: true if it
// declares no power sources, or if any declared power signal is currently
// asserted.
func (b *Base) Powered() bool {
	if len(b.power) == 0 {
		return true
	}
	for _, p := range b.power {
		if b.in[p].IsTrue() {
			return true
		}
	}
	return false
}

// InputBool and InputWord fetch a previously-Read input or power value.
func (b *Base) InputBool(name string) bool    { return b.in[name].IsTrue() }
func (b *Base) InputWord(name string) uint16  { return b.in[name].AsWord() }
func (b *Base) InputValue(name string) signal.Value { return b.in[name] }

// SetBool, SetWord and SetText assign an output value. Panics (a
// programming error, not a runtime/config error) if name was not declared
// as one of this component's outputs - construction guarantees this never
// happens for well-formed variants.
func (b *Base) SetBool(name string, v bool) { b.mustOwn(name); b.out[name] = signal.Bool(v) }
func (b *Base) SetWord(name string, v uint16) { b.mustOwn(name); b.out[name] = signal.Word(v) }
func (b *Base) SetText(name string, v string) { b.mustOwn(name); b.out[name] = signal.Text(v) }

func (b *Base) mustOwn(name string) {
	if _, ok := b.out[name]; !ok {
		panic(fmt.Sprintf("component %q has no declared output %q", b.name, name))
	}
}

// ZeroBoolOutputs drives every declared output to false. Used by the many
// variants whose entire output set is boolean and whose power-off behavior
// is simply "everything false".
func (b *Base) ZeroBoolOutputs() {
	for name := range b.out {
		b.out[name] = signal.False
	}
}

// ZeroWordOutputs drives every declared output to the zero word. Used by
// Register-shaped variants.
func (b *Base) ZeroWordOutputs() {
	for name := range b.out {
		b.out[name] = signal.Word(0)
	}
}
