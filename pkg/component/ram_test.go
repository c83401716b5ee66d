package component_test

import (
	"errors"
	"testing"

	"github.com/trebor-relay/hacksim/pkg/component"
	"github.com/trebor-relay/hacksim/pkg/signal"
)

func ramSignals(addr, data uint16, clr, sto, gate bool) signal.Map {
	m := signal.New()
	m["ADDR"] = signal.Word(addr)
	m["DATA"] = signal.Word(data)
	m["CLR"] = signal.Bool(clr)
	m["STO"] = signal.Bool(sto)
	m["GATE"] = signal.Bool(gate)
	return m
}

func TestRAMWriteAndReadBack(t *testing.T) {
	ram := component.NewRAM("RAM", []string{"ADDR", "DATA", "CLR", "STO", "GATE"}, nil, 32, 0)
	if err := ram.Update(ramSignals(3, 0x00FF, true, true, true)); err != nil {
		t.Fatal(err)
	}
	if ram.Peek(3) != 0x00FF {
		t.Fatalf("Peek(3) = %#04x, want 0x00ff", ram.Peek(3))
	}
	if err := ram.Update(ramSignals(3, 0, false, false, false)); err != nil {
		t.Fatal(err)
	}
	if got := ram.Outputs()["RAM"].AsWord(); got != 0x00FF {
		t.Errorf("read-back = %#04x, want 0x00ff", got)
	}
}

func TestRAMOtherCellsUntouched(t *testing.T) {
	ram := component.NewRAM("RAM", []string{"ADDR", "DATA", "CLR", "STO", "GATE"}, nil, 32, 0)
	ram.Poke(5, 0x1234)
	if err := ram.Update(ramSignals(0, 0xFFFF, true, true, true)); err != nil {
		t.Fatal(err)
	}
	if ram.Peek(5) != 0x1234 {
		t.Fatalf("writing to cell 0 must not disturb cell 5, got %#04x", ram.Peek(5))
	}
}

func TestRAMOutOfBounds(t *testing.T) {
	ram := component.NewRAM("RAM", []string{"ADDR", "DATA", "CLR", "STO", "GATE"}, nil, 8, 0)
	err := ram.Update(ramSignals(100, 0, false, false, false))
	if !errors.Is(err, component.ErrRAMOutOfBounds) {
		t.Fatalf("expected ErrRAMOutOfBounds, got %v", err)
	}
}

func TestRAMPowerOffZeroesEverything(t *testing.T) {
	ram := component.NewRAM("RAM", []string{"ADDR", "DATA", "CLR", "STO", "GATE"}, []string{"PWR"}, 8, 0)
	ram.Poke(2, 0xBEEF)
	signals := ramSignals(2, 0, false, false, false)
	signals["PWR"] = signal.False
	if err := ram.Update(signals); err != nil {
		t.Fatal(err)
	}
	if ram.Peek(2) != 0 {
		t.Fatalf("power-off should zero all cells, cell 2 = %#04x", ram.Peek(2))
	}
}
