package gatesim_test

import (
	"testing"

	"github.com/circuitlab/gatesim"
)

func TestGateKindString(t *testing.T) {
	cases := map[gatesim.GateKind]string{
		gatesim.GateConnector: "CONNECTOR",
		gatesim.GateAnd:       "AND",
		gatesim.GateDLatch:    "D_LATCH",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
	if got := gatesim.GateKind(200).String(); got != "INVALID_GATE_KIND" {
		t.Errorf("out-of-range GateKind.String() = %q, want INVALID_GATE_KIND", got)
	}
}

func TestPinKindString(t *testing.T) {
	if got := gatesim.PinAndOut.String(); got != "AND_OUT" {
		t.Errorf("PinAndOut.String() = %q, want AND_OUT", got)
	}
}

func TestOutOfRangeAccessPanics(t *testing.T) {
	c := gatesim.NewCircuit()
	a := c.Input()
	c.Prepare()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range AddLine")
		}
	}()
	c.AddLine(a.Index, 999)
}
