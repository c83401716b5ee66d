package component_test

import (
	"testing"

	"github.com/trebor-relay/hacksim/pkg/component"
	"github.com/trebor-relay/hacksim/pkg/signal"
)

func TestMockedReflectsHeldState(t *testing.T) {
	initial := signal.Map{"A": signal.Word(7), "RESET": signal.Bool(true)}
	m := component.NewMocked("PREV", initial, 0)
	if err := m.Update(nil); err != nil {
		t.Fatal(err)
	}
	out := m.Outputs()
	if out["A"].AsWord() != 7 {
		t.Errorf("A = %d, want 7", out["A"].AsWord())
	}
	if !out["RESET"].IsTrue() {
		t.Error("RESET should be true")
	}
}

func TestMockedSetUpdatesNextRound(t *testing.T) {
	m := component.NewMocked("PREV", signal.Map{"A": signal.Word(1)}, 0)
	m.Set("A", signal.Word(99))
	if err := m.Update(nil); err != nil {
		t.Fatal(err)
	}
	if got := m.Outputs()["A"].AsWord(); got != 99 {
		t.Errorf("A = %d, want 99", got)
	}
}
