package component_test

import (
	"testing"

	"github.com/trebor-relay/hacksim/pkg/component"
	"github.com/trebor-relay/hacksim/pkg/signal"
)

func TestResetSetAndClear(t *testing.T) {
	r := component.NewReset("RESET", nil, 0)
	signals := signal.New()

	if err := r.Update(signals); err != nil {
		t.Fatal(err)
	}
	if out := r.Outputs(); out["RESET"].IsTrue() || !out["~RESET"].IsTrue() {
		t.Fatalf("default should be RESET=false ~RESET=true, got RESET=%v ~RESET=%v",
			out["RESET"].IsTrue(), out["~RESET"].IsTrue())
	}

	r.Set()
	if err := r.Update(signals); err != nil {
		t.Fatal(err)
	}
	if out := r.Outputs(); !out["RESET"].IsTrue() || out["~RESET"].IsTrue() {
		t.Fatalf("after Set should be RESET=true ~RESET=false, got RESET=%v ~RESET=%v",
			out["RESET"].IsTrue(), out["~RESET"].IsTrue())
	}
	if !r.Asserted() {
		t.Fatalf("Asserted() should report true after Set")
	}

	r.Clear()
	if err := r.Update(signals); err != nil {
		t.Fatal(err)
	}
	if out := r.Outputs(); out["RESET"].IsTrue() {
		t.Fatalf("after Clear RESET should be false")
	}
}
