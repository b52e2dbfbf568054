package gatesim

// Pin is a fluent, non-owning cursor onto a single pin of a Circuit. It is
// the builder's primary combinator surface (spec.md §4.1): each gate method
// appends a new gate to the circuit, wires the receiver (and, for 2-input
// gates, rhs) into its inputs, and returns a cursor on the new output pin.
//
// A Pin is only a (circuit, index) pair — cheap to copy, and safe to hold
// across AddGate/AddLine calls since pins are addressed by index rather
// than by reference (spec.md §9's "graph ownership and cycles" note).
type Pin struct {
	c     *Circuit
	Index PinIndex
}

// NewPin returns a cursor over the given pin of c. Most circuits are built
// starting from Connector/Input rather than calling NewPin directly.
func NewPin(c *Circuit, index PinIndex) Pin {
	return Pin{c: c, Index: index}
}

// Connector appends a fresh passive connector pin and returns a cursor on
// it. A connector copies its inbound signal verbatim; it is the usual way
// to introduce a feedback point (e.g. the cross-coupled node of a latch).
func (c *Circuit) Connector() Pin {
	return Pin{c: c, Index: c.AddGate(GateConnector)}
}

// Input appends a fresh external-input pin: a port whose state is written
// only via Pin.SetValue and is otherwise propagated unchanged (spec.md
// §4.4's external-input bridge).
func (c *Circuit) Input() Pin {
	return Pin{c: c, Index: c.AddGate(GateExternalOutput)}
}

// Connector is sugar for p.c.Connector(), for chaining off an existing
// cursor.
func (p Pin) Connector() Pin { return p.c.Connector() }

// Input is sugar for p.c.Input().
func (p Pin) Input() Pin { return p.c.Input() }

// Zero returns a fresh connector, which reads as false until driven.
func (p Pin) Zero() Pin { return p.c.Connector() }

// One returns a fresh connector permanently inverted to true.
func (p Pin) One() Pin { return p.c.Connector().NOT() }

func (p Pin) unary(kind GateKind) Pin {
	out := p.c.AddGate(kind)
	p.c.AddLine(p.Index, out-1)
	return Pin{c: p.c, Index: out}
}

func (p Pin) binary(kind GateKind, rhs Pin) Pin {
	out := p.c.AddGate(kind)
	p.c.AddLine(p.Index, out-2)
	p.c.AddLine(rhs.Index, out-1)
	return Pin{c: p.c, Index: out}
}

// BUF returns a buffered copy of p (one gate delay later, value unchanged).
func (p Pin) BUF() Pin { return p.unary(GateBuf) }

// NOT returns the logical negation of p.
func (p Pin) NOT() Pin { return p.unary(GateNot) }

// AND returns p AND rhs.
func (p Pin) AND(rhs Pin) Pin { return p.binary(GateAnd, rhs) }

// OR returns p OR rhs.
func (p Pin) OR(rhs Pin) Pin { return p.binary(GateOr, rhs) }

// NAND returns p NAND rhs.
func (p Pin) NAND(rhs Pin) Pin { return p.binary(GateNand, rhs) }

// NOR returns p NOR rhs.
func (p Pin) NOR(rhs Pin) Pin { return p.binary(GateNor, rhs) }

// XOR returns p XOR rhs.
func (p Pin) XOR(rhs Pin) Pin { return p.binary(GateXor, rhs) }

// DLatch returns a transparent latch: while enable is true the output
// tracks p (after the gate's configured delay); while enable is false the
// output holds its previous value.
func (p Pin) DLatch(enable Pin) Pin { return p.binary(GateDLatch, enable) }

// Connect declares an equipotential wire between p and rhs and returns p,
// so that e.g. busA.AND(enable).Connect(busCommon) reads left to right.
func (p Pin) Connect(rhs Pin) Pin {
	p.c.AddLine(p.Index, rhs.Index)
	return p
}

// GetValue returns the pin's current boolean state.
func (p Pin) GetValue() bool {
	if err := p.c.checkPin(p.Index); err != nil {
		panic(err)
	}
	return p.c.states[p.Index]
}

// SetValue writes an external override. The write is staged: it is only
// visible to the simulation once drained by the next Simulate call (spec.md
// §4.4), which keeps causality consistent — all external edges effectively
// occur at "now".
func (p Pin) SetValue(v bool) {
	if err := p.c.checkPin(p.Index); err != nil {
		panic(err)
	}
	if p.c.states[p.Index] != v {
		p.c.states[p.Index] = v
		p.c.changedPins = append(p.c.changedPins, p.Index)
	}
}
