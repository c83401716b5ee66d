package component_test

import (
	"errors"
	"testing"

	"github.com/trebor-relay/hacksim/pkg/component"
	"github.com/trebor-relay/hacksim/pkg/signal"
)

func TestROMFetchesByPC(t *testing.T) {
	words := []uint16{0x0002, 0x0003, 0xEC10}
	asm := []string{"@2", "@3", "D;JGT"}
	rom, err := component.NewROM("ROM", []string{"PC"}, nil, words, asm, 0)
	if err != nil {
		t.Fatal(err)
	}
	signals := signal.New()
	signals["PC"] = signal.Word(1)
	if err := rom.Update(signals); err != nil {
		t.Fatal(err)
	}
	out := rom.Outputs()
	if got := out["ROM"].AsWord(); got != 0x0003 {
		t.Errorf("ROM = %#04x, want 0x0003", got)
	}
	if got := out["ASM"].String(); got != "@3" {
		t.Errorf("ASM = %q, want %q", got, "@3")
	}
}

func TestROMOutOfBounds(t *testing.T) {
	rom, err := component.NewROM("ROM", []string{"PC"}, nil, []uint16{0x0000}, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	signals := signal.New()
	signals["PC"] = signal.Word(5)
	err = rom.Update(signals)
	if err == nil {
		t.Fatal("expected ErrROMOutOfBounds, got nil")
	}
	if !errors.Is(err, component.ErrROMOutOfBounds) {
		t.Fatalf("expected ErrROMOutOfBounds, got %v", err)
	}
}

func TestROMMismatchedLengths(t *testing.T) {
	_, err := component.NewROM("ROM", []string{"PC"}, nil, []uint16{0, 0}, []string{"@0"}, 0)
	if err == nil {
		t.Fatal("expected a length-mismatch error, got nil")
	}
}
