package gatesim

import "testing"

// TestPrepareDirectedEdgesObeyBaseClasses is invariant 1 from spec.md §8:
// every directed edge p->q in the prepared graph has base(p) in
// {Output,Connector} and base(q) in {Input,Connector}.
func TestPrepareDirectedEdgesObeyBaseClasses(t *testing.T) {
	c := NewCircuit()
	a := c.Input()
	b := c.Input()
	a.AND(b)
	c.Prepare()

	for p, dst := range c.outbound {
		check := func(q PinIndex) {
			pb, qb := baseClass(c.kinds[p]), baseClass(c.kinds[q])
			if pb != BaseOutput && pb != BaseConnector {
				t.Errorf("edge %d->%d: source base %v, want Output or Connector", p, q, pb)
			}
			if qb != BaseInput && qb != BaseConnector {
				t.Errorf("edge %d->%d: dest base %v, want Input or Connector", p, q, qb)
			}
		}
		switch dst {
		case int32(invalidPin):
		case -2:
			for q := range c.outboundMulti[PinIndex(p)] {
				check(q)
			}
		default:
			check(PinIndex(dst))
		}
	}
}

// Invariant 2: after prepare(), no Input-base pin appears in any group's
// driver set.
func TestPrepareNoInputPinInDriverSet(t *testing.T) {
	c := NewCircuit()
	a := c.Input()
	b := c.Input()
	out := a.AND(b)
	_ = out
	c.Prepare()

	for _, g := range c.groups {
		for _, p := range g.drivers {
			if baseClass(c.kinds[p]) == BaseInput {
				t.Errorf("pin %d (Input-base) found in group driver set", p)
			}
		}
	}
}

// A pin rewired twice to the same source behaves as a single source: no
// spurious wired-OR (boundary case from spec.md §8).
func TestRewireSameSourceTwiceStaysSingleSource(t *testing.T) {
	c := NewCircuit()
	a := c.Input()
	out := a.BUF()
	bufIn := out.Index - 1
	c.AddLine(a.Index, bufIn) // redundant, same endpoints again
	c.Prepare()

	if c.inbound[bufIn] == -2 {
		t.Fatal("redundant same-source line incorrectly produced a multi-driver group")
	}
}

// Multiple distinct drivers into the same group do produce -2 (wired-OR).
func TestMultiDriverGroupUsesSparseSet(t *testing.T) {
	c := NewCircuit()
	a := c.Input()
	en1 := c.Input()
	en2 := c.Input()
	bus := c.Connector()

	a.AND(en1).Connect(bus)
	a.AND(en2).Connect(bus)
	c.Prepare()

	gi := c.groupByPin[bus.Index]
	if gi == int32(invalidPin) {
		t.Fatal("bus pin has no group")
	}
	if len(c.groups[gi].drivers) < 2 {
		t.Fatalf("expected >= 2 drivers in wired-OR group, got %d", len(c.groups[gi].drivers))
	}
	if c.inbound[bus.Index] != -2 {
		t.Fatalf("inbound[bus] = %d, want -2 (multiple drivers)", c.inbound[bus.Index])
	}
}

// Boundary: an empty netlist's prepare+simulate is a no-op.
func TestEmptyNetlistIsNoop(t *testing.T) {
	c := NewCircuit()
	c.Prepare()
	if used := c.Simulate(-1); used != 0 {
		t.Fatalf("simulate(-1) on empty netlist used %d, want 0", used)
	}
}
