package machine_test

import (
	"errors"
	"testing"

	"github.com/trebor-relay/hacksim/pkg/component"
	"github.com/trebor-relay/hacksim/pkg/machine"
)

func TestNewRejectsDuplicateOutputs(t *testing.T) {
	a := component.NewAndGate("DUP", []string{"X"}, nil, 0)
	b := component.NewOrGate("DUP", []string{"Y"}, nil, 0)
	_, err := machine.New([]component.Component{a, b})
	if !errors.Is(err, machine.ErrDuplicateOutput) {
		t.Fatalf("expected ErrDuplicateOutput, got %v", err)
	}
}

func TestNewOrdersBySequence(t *testing.T) {
	first := component.NewAndGate("FIRST", []string{"X"}, nil, 10)
	second := component.NewOrGate("SECOND", []string{"Y"}, nil, -10)
	m, err := machine.New([]component.Component{first, second})
	if err != nil {
		t.Fatal(err)
	}
	if m.Order[0].Name() != "SECOND" || m.Order[1].Name() != "FIRST" {
		t.Fatalf("expected SECOND before FIRST by sequence, got %v", m.Order)
	}
}

func TestGetLooksUpByName(t *testing.T) {
	and := component.NewAndGate("GATE", []string{"X"}, nil, 0)
	m, err := machine.New([]component.Component{and})
	if err != nil {
		t.Fatal(err)
	}
	if c, ok := m.Get("GATE"); !ok || c.Name() != "GATE" {
		t.Fatalf("Get(GATE) = %v, %v", c, ok)
	}
	if _, ok := m.Get("NOPE"); ok {
		t.Fatal("Get of an unwired name should report false")
	}
}

func TestBuildV1WiresCoreRegisters(t *testing.T) {
	words := []uint16{0x0000}
	m, reset, clock, err := machine.BuildV1(words, nil)
	if err != nil {
		t.Fatal(err)
	}
	if reset == nil || clock == nil {
		t.Fatal("BuildV1 should return non-nil RESET and CLOCK handles")
	}
	for _, name := range []string{"PC", "AREG", "DREG", "ROM", "RAM", "PREV"} {
		if _, ok := m.Get(name); !ok {
			t.Errorf("BuildV1 did not wire a component named %q", name)
		}
	}
}

func TestBuildV2WiresCoreRegisters(t *testing.T) {
	words := []uint16{0x0000}
	m, reset, clock, err := machine.BuildV2(words, nil)
	if err != nil {
		t.Fatal(err)
	}
	if reset == nil || clock == nil {
		t.Fatal("BuildV2 should return non-nil RESET and CLOCK handles")
	}
	for _, name := range []string{"PC", "AREG", "DREG", "ASAV", "XREG", "YREG", "ROM", "RAM", "PREV"} {
		if _, ok := m.Get(name); !ok {
			t.Errorf("BuildV2 did not wire a component named %q", name)
		}
	}
}

func TestCollectOutputsSeedsTrueFalse(t *testing.T) {
	and := component.NewAndGate("GATE", []string{"X"}, nil, 0)
	m, err := machine.New([]component.Component{and})
	if err != nil {
		t.Fatal(err)
	}
	signals := m.CollectOutputs()
	if !signals["TRUE"].IsTrue() {
		t.Error("CollectOutputs should seed TRUE")
	}
	if v, ok := signals["FALSE"]; !ok || v.IsTrue() {
		t.Error("CollectOutputs should seed FALSE")
	}
}
