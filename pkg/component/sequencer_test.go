package component_test

import (
	"testing"

	"github.com/trebor-relay/hacksim/pkg/component"
	"github.com/trebor-relay/hacksim/pkg/signal"
)

func seqSignals(clock, reset bool) signal.Map {
	m := signal.New()
	m["CLOCK"] = signal.Bool(clock)
	m["RESET"] = signal.Bool(reset)
	return m
}

func TestSequencerAdvancesOnEdgeAndWraps(t *testing.T) {
	seq := component.NewSequencer("SEQ", "CLOCK", "RESET", 5, 0)

	if err := seq.Update(seqSignals(false, false)); err != nil {
		t.Fatal(err)
	}
	if seq.Cycle() != 0 {
		t.Fatalf("no edge yet, cycle should stay 0, got %d", seq.Cycle())
	}

	wantCycles := []int{1, 2, 3, 4, 0, 1}
	clock := false
	for i, want := range wantCycles {
		clock = !clock
		if err := seq.Update(seqSignals(clock, false)); err != nil {
			t.Fatal(err)
		}
		if seq.Cycle() != want {
			t.Fatalf("edge %d: cycle = %d, want %d", i, seq.Cycle(), want)
		}
	}
}

func TestSequencerHeldAtZeroWhileReset(t *testing.T) {
	seq := component.NewSequencer("SEQ", "CLOCK", "RESET", 5, 0)
	clock := false
	for i := 0; i < 4; i++ {
		clock = !clock
		if err := seq.Update(seqSignals(clock, true)); err != nil {
			t.Fatal(err)
		}
		if seq.Cycle() != 0 {
			t.Fatalf("reset asserted: cycle should stay 0, got %d", seq.Cycle())
		}
	}
}

func TestSequencerOverlapPulse(t *testing.T) {
	seq := component.NewSequencer("SEQ", "CLOCK", "RESET", 5, 0)
	if err := seq.Update(seqSignals(true, false)); err != nil {
		t.Fatal(err)
	}
	if seq.Cycle() != 1 {
		t.Fatalf("first edge should land on cycle 1, got %d", seq.Cycle())
	}
	if err := seq.Update(seqSignals(false, false)); err != nil {
		t.Fatal(err)
	}
	out := seq.Outputs()
	if !out["S2"].IsTrue() || !out["S2A"].IsTrue() {
		t.Fatalf("S2/S2A should both be asserted on the new cycle, got %v", out)
	}
	if !out["S1"].IsTrue() {
		t.Fatalf("S1 should remain asserted for the overlap, got %v", out)
	}
	if out["S1A"].IsTrue() {
		t.Fatalf("S1A (the 1-cycle pulse) should not persist into the overlap")
	}
}
