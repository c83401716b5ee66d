package component_test

import (
	"errors"
	"testing"

	"github.com/trebor-relay/hacksim/pkg/component"
	"github.com/trebor-relay/hacksim/pkg/signal"
)

func TestRegisterMissingInputIsFatal(t *testing.T) {
	reg := component.NewRegister("D", []string{"DATA", "CLR", "STO", "GATE"}, nil, 0)
	signals := signal.New() // missing all four declared inputs
	err := reg.Update(signals)
	if err == nil {
		t.Fatal("expected ErrUnknownSignal, got nil")
	}
	if !errors.Is(err, component.ErrUnknownSignal) {
		t.Fatalf("expected ErrUnknownSignal, got %v", err)
	}
}

func TestOutputNameDefaultsToComponentName(t *testing.T) {
	and := component.NewAndGate("ENABLE", []string{"A", "B"}, nil, 0)
	if names := and.OutputNames(); len(names) != 1 || names[0] != "ENABLE" {
		t.Fatalf("OutputNames = %v, want [ENABLE]", names)
	}
}

func TestPoweredWithNoPowerNamesIsAlwaysTrue(t *testing.T) {
	and := component.NewAndGate("G", []string{"A"}, nil, 0)
	signals := signal.New()
	signals["A"] = signal.True
	if err := and.Update(signals); err != nil {
		t.Fatal(err)
	}
	if !and.Outputs()["G"].IsTrue() {
		t.Fatal("gate with no power names should always be considered powered")
	}
}
