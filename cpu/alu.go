package cpu

import "github.com/circuitlab/gatesim"

// ALU computes all six operations in parallel every cycle and wired-ORs
// the selected one onto Out: each operation's result bus is ANDed with
// its own single-pin opcode connector, then all six gated buses are
// joined onto the same Out bus (only one op pin is ever asserted at a
// time by the control unit, so exactly one contributes a nonzero value).
type ALU struct {
	InA gatesim.Bus
	InB gatesim.Bus
	Out gatesim.Bus

	OpAdd gatesim.Pin
	OpSub gatesim.Pin
	OpAnd gatesim.Pin
	OpOr  gatesim.Pin
	OpNot gatesim.Pin
	OpXor gatesim.Pin
}

// NewALU allocates the ALU's buses and opcode connectors.
func NewALU(c *gatesim.Circuit, width int) *ALU {
	return &ALU{
		InA:   gatesim.NewBus(c, width),
		InB:   gatesim.NewBus(c, width),
		Out:   gatesim.NewBus(c, width),
		OpAdd: c.Connector(),
		OpSub: c.Connector(),
		OpAnd: c.Connector(),
		OpOr:  c.Connector(),
		OpNot: c.Connector(),
		OpXor: c.Connector(),
	}
}

// Build wires every operation and joins the selected one onto Out.
//
// Sub computes InA - InB in two's complement: a second ripple-carry adder
// fed InA, the bitwise negation of InB, and a carry-in of 1.
func (a *ALU) Build(c *gatesim.Circuit, width int) {
	zero := c.Connector()

	addOut := gatesim.NewBus(c, width)
	fullAdder(a.InA, a.InB, addOut, zero)
	addOut.AND(a.OpAdd).Connect(a.Out)

	subOut := gatesim.NewBus(c, width)
	fullAdder(a.InA, a.InB.NOT(), subOut, zero.NOT())
	subOut.AND(a.OpSub).Connect(a.Out)

	a.InA.ANDBus(a.InB).AND(a.OpAnd).Connect(a.Out)
	a.InA.OR(a.InB).AND(a.OpOr).Connect(a.Out)
	a.InA.NOT().AND(a.OpNot).Connect(a.Out)
	a.InA.XOR(a.InB).AND(a.OpXor).Connect(a.Out)
}
