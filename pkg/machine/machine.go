// Package machine wires a closed set of component.Component instances into
// a single addressable board and derives the flat name->Value signal bus
// that drives simulation. It owns no simulation logic of its own - that
// lives in pkg/sim - only the static shape of the board: which components
// exist, in what order, and which signal name each one owns.
package machine

import (
	"log"
	"sort"

	"github.com/pkg/errors"

	"github.com/trebor-relay/hacksim/pkg/component"
	"github.com/trebor-relay/hacksim/pkg/signal"
)

// ErrDuplicateOutput is returned when two components declare the same
// output signal name - always a fatal configuration error.
var ErrDuplicateOutput = errors.New("duplicate output signal")

// Machine is an ordered collection of wired components. Order is the
// declaration order used for diagnostic dumps (mirroring each component's
// Sequence()); byName supports direct lookup by component name.
type Machine struct {
	Order  []component.Component
	byName map[string]component.Component

	// outputSource maps every output signal name to the component that
	// produces it, for diagnostics (the reporter's "Source" column).
	outputSource map[string]string
}

// New builds a Machine from an unordered component list, validating that no
// two components declare the same output signal. Every output signal that
// ends up consumed by nothing is logged once as a non-fatal warning.
func New(components []component.Component) (*Machine, error) {
	byName := make(map[string]component.Component, len(components))
	outputSource := make(map[string]string)

	for _, c := range components {
		byName[c.Name()] = c
		for _, out := range c.OutputNames() {
			if existing, ok := outputSource[out]; ok {
				return nil, errors.Wrapf(ErrDuplicateOutput, "signal %q produced by both %q and %q", out, existing, c.Name())
			}
			outputSource[out] = c.Name()
		}
	}

	order := make([]component.Component, len(components))
	copy(order, components)
	sort.SliceStable(order, func(i, j int) bool { return order[i].Sequence() < order[j].Sequence() })

	m := &Machine{Order: order, byName: byName, outputSource: outputSource}
	for _, name := range m.UnusedOutputs() {
		log.Printf("unused output %s generated by %s", name, m.outputSource[name])
	}
	return m, nil
}

// Get returns the named component, or nil and false if no such component
// was wired into this machine.
func (m *Machine) Get(name string) (component.Component, bool) {
	c, ok := m.byName[name]
	return c, ok
}

// OutputSource returns the name of the component that produces the given
// signal, for diagnostic display.
func (m *Machine) OutputSource(signalName string) string {
	return m.outputSource[signalName]
}

// CollectOutputs gathers every component's current output values into a
// fresh signal.Map seeded with TRUE/FALSE, the shape every settling round
// and the initial machine state both need.
func (m *Machine) CollectOutputs() signal.Map {
	signals := signal.New()
	for _, c := range m.Order {
		for name, v := range c.Outputs() {
			signals[name] = v
		}
	}
	return signals
}

// UnusedOutputs reports output signals that no component declares as an
// input or power source, excluding the handful that are only ever consumed
// by the reporter or the driver loop - TRUE/FALSE/RESET/~RESET/ASM by name,
// and anything PREV produces, since its whole job is holding last-cycle
// values for the reporter rather than feeding any other component. Purely
// diagnostic.
func (m *Machine) UnusedOutputs() []string {
	ignorable := map[string]bool{
		"TRUE": true, "FALSE": true, "RESET": true, "~RESET": true, "ASM": true,
	}
	consumed := map[string]bool{}
	for _, c := range m.Order {
		for _, name := range c.InputNames() {
			consumed[name] = true
		}
		for _, name := range c.PowerNames() {
			consumed[name] = true
		}
	}
	var unused []string
	for name, source := range m.outputSource {
		if consumed[name] || ignorable[name] || source == "PREV" {
			continue
		}
		unused = append(unused, name)
	}
	sort.Strings(unused)
	return unused
}

// InputUsage counts, for every signal name, how many components declare it
// as an input or power source - an "input usage count" diagnostic useful
// for spotting a signal that fans out more (or less) than a reviewer
// expects.
func (m *Machine) InputUsage() map[string]int {
	usage := map[string]int{}
	for _, c := range m.Order {
		for _, name := range c.InputNames() {
			usage[name]++
		}
		for _, name := range c.PowerNames() {
			usage[name]++
		}
	}
	return usage
}
