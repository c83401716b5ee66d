package component_test

import (
	"testing"

	"github.com/trebor-relay/hacksim/pkg/component"
	"github.com/trebor-relay/hacksim/pkg/signal"
)

func TestMatrixOrsDeclaredInputs(t *testing.T) {
	m := component.NewMatrix("MATRIX", []string{"S0", "S1", "S2"}, map[string][]string{
		"STOIN": {"S0"},
		"MEM":   {"S0", "S1"},
		"IDLE":  {"S2"},
	}, 0)

	signals := signal.New()
	signals["S0"] = signal.False
	signals["S1"] = signal.True
	signals["S2"] = signal.False
	if err := m.Update(signals); err != nil {
		t.Fatal(err)
	}
	out := m.Outputs()
	if out["STOIN"].IsTrue() {
		t.Errorf("STOIN should be false (only S0 feeds it, S0 is false)")
	}
	if !out["MEM"].IsTrue() {
		t.Errorf("MEM should be true (S1 feeds it and is true)")
	}
	if out["IDLE"].IsTrue() {
		t.Errorf("IDLE should be false (S2 is false)")
	}
}

func TestMatrixAllInputsFalse(t *testing.T) {
	m := component.NewMatrix("MATRIX", []string{"S0", "S1"}, map[string][]string{
		"OUT": {"S0", "S1"},
	}, 0)
	signals := signal.New()
	signals["S0"] = signal.False
	signals["S1"] = signal.False
	if err := m.Update(signals); err != nil {
		t.Fatal(err)
	}
	if m.Outputs()["OUT"].IsTrue() {
		t.Errorf("OUT should be false when every OR'd input is false")
	}
}
