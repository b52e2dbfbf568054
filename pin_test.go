package gatesim_test

import (
	"testing"

	"github.com/circuitlab/gatesim"
)

func evalUnary(t *testing.T, build func(c *gatesim.Circuit, a gatesim.Pin) gatesim.Pin, table map[bool]bool) {
	t.Helper()
	for in, want := range table {
		c := gatesim.NewCircuit()
		a := c.Input()
		out := build(c, a)
		c.Prepare()
		a.SetValue(in)
		c.Simulate(-1)
		if got := out.GetValue(); got != want {
			t.Errorf("in=%v: got %v, want %v", in, got, want)
		}
	}
}

func evalBinary(t *testing.T, build func(c *gatesim.Circuit, a, b gatesim.Pin) gatesim.Pin, table map[[2]bool]bool) {
	t.Helper()
	for in, want := range table {
		c := gatesim.NewCircuit()
		a := c.Input()
		b := c.Input()
		out := build(c, a, b)
		c.Prepare()
		a.SetValue(in[0])
		b.SetValue(in[1])
		c.Simulate(-1)
		if got := out.GetValue(); got != want {
			t.Errorf("in=%v: got %v, want %v", in, got, want)
		}
	}
}

func TestPinNOT(t *testing.T) {
	evalUnary(t, func(c *gatesim.Circuit, a gatesim.Pin) gatesim.Pin { return a.NOT() },
		map[bool]bool{false: true, true: false})
}

func TestPinBUF(t *testing.T) {
	evalUnary(t, func(c *gatesim.Circuit, a gatesim.Pin) gatesim.Pin { return a.BUF() },
		map[bool]bool{false: false, true: true})
}

func TestPinOR(t *testing.T) {
	evalBinary(t, func(c *gatesim.Circuit, a, b gatesim.Pin) gatesim.Pin { return a.OR(b) },
		map[[2]bool]bool{{false, false}: false, {false, true}: true, {true, false}: true, {true, true}: true})
}

func TestPinNAND(t *testing.T) {
	evalBinary(t, func(c *gatesim.Circuit, a, b gatesim.Pin) gatesim.Pin { return a.NAND(b) },
		map[[2]bool]bool{{false, false}: true, {false, true}: true, {true, false}: true, {true, true}: false})
}

func TestPinNOR(t *testing.T) {
	evalBinary(t, func(c *gatesim.Circuit, a, b gatesim.Pin) gatesim.Pin { return a.NOR(b) },
		map[[2]bool]bool{{false, false}: true, {false, true}: false, {true, false}: false, {true, true}: false})
}

func TestPinXOR(t *testing.T) {
	evalBinary(t, func(c *gatesim.Circuit, a, b gatesim.Pin) gatesim.Pin { return a.XOR(b) },
		map[[2]bool]bool{{false, false}: false, {false, true}: true, {true, false}: true, {true, true}: false})
}

func TestPinDLatchHoldsWhenDisabled(t *testing.T) {
	c := gatesim.NewCircuit()
	d := c.Input()
	en := c.Input()
	q := d.DLatch(en)
	c.Prepare()

	d.SetValue(true)
	en.SetValue(true)
	c.Simulate(-1)
	if !q.GetValue() {
		t.Fatal("expected q=true while transparent")
	}

	en.SetValue(false)
	d.SetValue(false)
	c.Simulate(-1)
	if !q.GetValue() {
		t.Fatal("expected q to hold true after enable goes low, even though d changed")
	}
}

func TestPinZeroAndOne(t *testing.T) {
	c := gatesim.NewCircuit()
	zero := c.Input().Zero()
	one := c.Input().One()
	c.Prepare()
	c.Simulate(-1)
	if zero.GetValue() {
		t.Fatal("Zero() pin reads true")
	}
	if !one.GetValue() {
		t.Fatal("One() pin reads false")
	}
}

func TestPinConnect(t *testing.T) {
	c := gatesim.NewCircuit()
	a := c.Input()
	b := c.Connector()
	a.Connect(b)
	c.Prepare()
	a.SetValue(true)
	c.Simulate(-1)
	if !b.GetValue() {
		t.Fatal("expected connected connector to mirror input")
	}
}
