package gatesim_test

import (
	"testing"

	"github.com/circuitlab/gatesim"
)

func TestAddGatePinLayout(t *testing.T) {
	c := gatesim.NewCircuit()
	out := c.AddGate(gatesim.GateAnd)
	if out != 2 {
		t.Fatalf("AND output index = %d, want 2 (A=0,B=1,Out=2)", out)
	}
	if got := c.PinCount(); got != 3 {
		t.Fatalf("PinCount() = %d, want 3", got)
	}
	if got := c.GateCount(); got != 1 {
		t.Fatalf("GateCount() = %d, want 1", got)
	}
}

func TestConnectorAndExternalOutputDontCountAsGates(t *testing.T) {
	c := gatesim.NewCircuit()
	c.AddGate(gatesim.GateConnector)
	c.AddGate(gatesim.GateExternalOutput)
	if got := c.GateCount(); got != 0 {
		t.Fatalf("GateCount() = %d, want 0", got)
	}
	if got := c.PinCount(); got != 2 {
		t.Fatalf("PinCount() = %d, want 2", got)
	}
}

func TestLineCount(t *testing.T) {
	c := gatesim.NewCircuit()
	a := c.Input()
	b := c.Input()
	a.AND(b)
	if got := c.LineCount(); got != 2 {
		t.Fatalf("LineCount() = %d, want 2", got)
	}
}

func TestSetGateDelayAffectsPropagation(t *testing.T) {
	c := gatesim.NewCircuit()
	c.SetGateDelay(gatesim.GateBuf, 5)
	a := c.Input()
	out := a.BUF()
	c.Prepare()

	a.SetValue(true)
	c.Simulate(4)
	if out.GetValue() {
		t.Fatal("BUF propagated before its configured 5-unit delay elapsed")
	}
	c.Simulate(1)
	if !out.GetValue() {
		t.Fatal("BUF did not propagate after its configured 5-unit delay elapsed")
	}
}
