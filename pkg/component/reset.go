package component

import "github.com/trebor-relay/hacksim/pkg/signal"

// Reset models the manual reset button: no inputs, always powered, and
// driven imperatively by Set/Clear rather than by its own Update logic.
type Reset struct {
	Base
	reset bool
}

// NewReset builds a Reset component producing the named reset and
// complementary signals (defaults: "RESET", "~RESET").
func NewReset(name string, outputs []string, seq int) *Reset {
	if len(outputs) == 0 {
		outputs = []string{"RESET", "~RESET"}
	}
	return &Reset{Base: NewBase(name, nil, outputs, nil, seq)}
}

// Set raises RESET.
func (r *Reset) Set() { r.reset = true }

// Clear lowers RESET.
func (r *Reset) Clear() { r.reset = false }

// Asserted reports the current latched RESET state.
func (r *Reset) Asserted() bool { return r.reset }

func (r *Reset) Update(signals signal.Map) error {
	if err := r.Read(signals); err != nil {
		return err
	}
	if !r.Powered() {
		r.ZeroBoolOutputs()
		r.reset = false
		return nil
	}
	names := r.OutputNames()
	r.SetBool(names[0], r.reset)
	r.SetBool(names[1], !r.reset)
	return nil
}
