// Package cpu is a client of gatesim: an 8-bit, register-and-bus
// computer built entirely out of gates (plus the kernel's one native
// GateDLatch primitive), demonstrating the simulator on something larger
// than a single adder.
//
// Ported from original_source/src/cpu/{Register,MemoryBank,CPU8Bit}.h.
package cpu

import "github.com/circuitlab/gatesim"

// Register is a clocked, bus-wide storage cell: inBus is latched while
// Write and the clock are both asserted, and OutBus is driven from the
// stored value while Read and the clock are both asserted. Both Read and Write are
// connectors, left unconnected by Register itself so a control unit can
// wire them to decode logic.
type Register struct {
	Clock gatesim.Pin
	Read  gatesim.Pin
	Write gatesim.Pin

	// Cell is the latch's raw stored value, independent of Read — the
	// control unit reads this directly for e.g. ALU operands.
	Cell gatesim.Bus
	// BufferCell is only populated by BuildBuffered: the first-stage
	// latch of the master/slave pair, before it's copied to Cell.
	BufferCell gatesim.Bus

	InBus  gatesim.Bus
	OutBus gatesim.Bus

	Name string
}

// NewRegister wires a Register between inBus and outBus, both ticked by
// clock. Call Build or BuildBuffered next to choose the latch topology.
func NewRegister(c *gatesim.Circuit, clock gatesim.Pin, inBus, outBus gatesim.Bus) *Register {
	return &Register{
		Clock:  clock,
		Read:   c.Connector(),
		Write:  c.Connector(),
		InBus:  inBus,
		OutBus: outBus,
	}
}

// Build wires a single D-latch per bit: transparent while Write AND Clock
// hold, output gated onto OutBus while Read AND Clock hold.
func (r *Register) Build() {
	r.Cell = r.InBus.DLatch(r.Write.AND(r.Clock))
	r.Cell.AND(r.Read.AND(r.Clock)).Connect(r.OutBus)
}

// BuildBuffered wires a master/slave pair: the buffer latch captures
// inBus on Write AND Clock, then the output latch copies the buffer
// while Clock is low, holding it steady across the Clock-high half-cycle
// a plain Register would still be accepting new input on. Used for
// registers (PC, ACC) that must be both written and read by control
// logic within the same clock level.
func (r *Register) BuildBuffered() {
	r.BufferCell = r.InBus.DLatch(r.Write.AND(r.Clock))
	r.Cell = r.BufferCell.DLatch(r.Clock.NOT())
	r.Cell.AND(r.Read.AND(r.Clock)).Connect(r.OutBus)
}
