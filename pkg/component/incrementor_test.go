package component_test

import (
	"errors"
	"testing"

	"github.com/trebor-relay/hacksim/pkg/component"
	"github.com/trebor-relay/hacksim/pkg/signal"
)

func TestIncrementorMasked(t *testing.T) {
	inc := component.NewIncrementor("PC+1", []string{"PC"}, nil, true, 0)
	signals := signal.New()
	signals["PC"] = signal.Word(0xFFFF)
	if err := inc.Update(signals); err != nil {
		t.Fatalf("masked incrementor should not fault on rollover: %v", err)
	}
	if got := inc.Outputs()["PC+1"].AsWord(); got != 0 {
		t.Errorf("PC+1 = %#04x, want 0 (wrapped)", got)
	}
}

func TestIncrementorUnmaskedFaultsOnRollover(t *testing.T) {
	inc := component.NewIncrementor("PC+1", []string{"PC"}, nil, false, 0)
	signals := signal.New()
	signals["PC"] = signal.Word(0xFFFF)
	err := inc.Update(signals)
	if err == nil {
		t.Fatal("expected ErrPCRollover, got nil")
	}
	if !errors.Is(err, component.ErrPCRollover) {
		t.Fatalf("expected ErrPCRollover, got %v", err)
	}
}

func TestIncrementorOrdinary(t *testing.T) {
	inc := component.NewIncrementor("PC+1", []string{"PC"}, nil, false, 0)
	signals := signal.New()
	signals["PC"] = signal.Word(41)
	if err := inc.Update(signals); err != nil {
		t.Fatal(err)
	}
	if got := inc.Outputs()["PC+1"].AsWord(); got != 42 {
		t.Errorf("PC+1 = %d, want 42", got)
	}
}
