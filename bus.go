package gatesim

import (
	"strings"

	"github.com/pkg/errors"
)

// Bus is a fixed-width, LSB-first collection of pins, for building the
// word-oriented parts of a circuit (registers, memory words, ALU operands)
// without spelling out one Pin per bit at every call site.
//
// Ported from original_source/src/core/Bus.h/.cpp's std::vector<Pin> wrapper.
type Bus struct {
	c    *Circuit
	Pins []PinIndex
}

// NewBus returns a bus of size fresh connectors.
func NewBus(c *Circuit, size int) Bus {
	pins := make([]PinIndex, size)
	for i := range pins {
		pins[i] = c.AddGate(GateConnector)
	}
	return Bus{c: c, Pins: pins}
}

// NewInputBus returns a bus of size fresh external-input pins, each driven
// only by SetValue (spec.md §4.4).
func NewInputBus(c *Circuit, size int) Bus {
	pins := make([]PinIndex, size)
	for i := range pins {
		pins[i] = c.AddGate(GateExternalOutput)
	}
	return Bus{c: c, Pins: pins}
}

// NewBusFromPins assembles a Bus from individually computed pins (e.g.
// the outputs of a decoder), rather than a contiguous run of fresh
// connectors. All pins must belong to c.
func NewBusFromPins(c *Circuit, pins []Pin) Bus {
	out := make([]PinIndex, len(pins))
	for i, p := range pins {
		out[i] = p.Index
	}
	return Bus{c: c, Pins: out}
}

// Width returns the number of bits in the bus.
func (b Bus) Width() int { return len(b.Pins) }

// Circuit returns the circuit b belongs to.
func (b Bus) Circuit() *Circuit { return b.c }

// At returns a Pin cursor on the bus's i-th bit.
func (b Bus) At(i int) Pin { return Pin{c: b.c, Index: b.Pins[i]} }

// BUF returns a bitwise-buffered copy of b.
func (b Bus) BUF() Bus {
	out := make([]PinIndex, len(b.Pins))
	for i, p := range b.Pins {
		out[i] = Pin{c: b.c, Index: p}.BUF().Index
	}
	return Bus{c: b.c, Pins: out}
}

// AND returns the bitwise AND of every bit of b with the single pin en —
// the usual way to build a tri-state-like enable gate out of pure gates.
func (b Bus) AND(en Pin) Bus {
	out := make([]PinIndex, len(b.Pins))
	for i, p := range b.Pins {
		out[i] = Pin{c: b.c, Index: p}.AND(en).Index
	}
	return Bus{c: b.c, Pins: out}
}

// OR returns the bitwise OR of b with rhs, which must have equal width.
func (b Bus) OR(rhs Bus) Bus {
	b.mustMatch(rhs)
	out := make([]PinIndex, len(b.Pins))
	for i, p := range b.Pins {
		out[i] = Pin{c: b.c, Index: p}.OR(Pin{c: b.c, Index: rhs.Pins[i]}).Index
	}
	return Bus{c: b.c, Pins: out}
}

// XOR returns the bitwise XOR of b with rhs, which must have equal width.
func (b Bus) XOR(rhs Bus) Bus {
	b.mustMatch(rhs)
	out := make([]PinIndex, len(b.Pins))
	for i, p := range b.Pins {
		out[i] = Pin{c: b.c, Index: p}.XOR(Pin{c: b.c, Index: rhs.Pins[i]}).Index
	}
	return Bus{c: b.c, Pins: out}
}

// ANDBus returns the bitwise AND of b with rhs, which must have equal width.
func (b Bus) ANDBus(rhs Bus) Bus {
	b.mustMatch(rhs)
	out := make([]PinIndex, len(b.Pins))
	for i, p := range b.Pins {
		out[i] = Pin{c: b.c, Index: p}.AND(Pin{c: b.c, Index: rhs.Pins[i]}).Index
	}
	return Bus{c: b.c, Pins: out}
}

// DLatch returns a bitwise D-latch of b, transparent while enable is true.
func (b Bus) DLatch(enable Pin) Bus {
	out := make([]PinIndex, len(b.Pins))
	for i, p := range b.Pins {
		out[i] = Pin{c: b.c, Index: p}.DLatch(enable).Index
	}
	return Bus{c: b.c, Pins: out}
}

// NOT returns the bitwise negation of b.
func (b Bus) NOT() Bus {
	out := make([]PinIndex, len(b.Pins))
	for i, p := range b.Pins {
		out[i] = Pin{c: b.c, Index: p}.NOT().Index
	}
	return Bus{c: b.c, Pins: out}
}

// Connect wires every bit of b to the matching bit of rhs. Both buses must
// have equal width.
func (b Bus) Connect(rhs Bus) Bus {
	b.mustMatch(rhs)
	for i, p := range b.Pins {
		b.c.AddLine(p, rhs.Pins[i])
	}
	return b
}

// Split divides b into parts equal-width segments and returns the index-th
// one, a view over the same underlying pins (not a copy). Ported from
// original_source/src/core/Bus.cpp's Bus::split.
func (b Bus) Split(index, parts int) Bus {
	if parts <= 0 || len(b.Pins)%parts != 0 {
		panic(errors.Errorf("gatesim: bus width %d not divisible into %d parts", len(b.Pins), parts))
	}
	width := len(b.Pins) / parts
	begin := index * width
	end := begin + width
	if index < 0 || begin < 0 || end > len(b.Pins) {
		panic(errors.Errorf("gatesim: bus split index %d out of range for %d parts", index, parts))
	}
	return Bus{c: b.c, Pins: b.Pins[begin:end]}
}

// SetValue writes v's low Width() bits onto the bus, LSB first.
func (b Bus) SetValue(v uint64) {
	for i, p := range b.Pins {
		(Pin{c: b.c, Index: p}).SetValue(v&(1<<uint(i)) != 0)
	}
}

// GetValue reads the bus as an unsigned integer, LSB first.
func (b Bus) GetValue() uint64 {
	var v uint64
	for i, p := range b.Pins {
		if (Pin{c: b.c, Index: p}).GetValue() {
			v |= 1 << uint(i)
		}
	}
	return v
}

// StrValue renders the bus MSB-first as a string of '0'/'1' characters, for
// diagnostics and test failure messages.
func (b Bus) StrValue() string {
	var sb strings.Builder
	for i := len(b.Pins) - 1; i >= 0; i-- {
		if (Pin{c: b.c, Index: b.Pins[i]}).GetValue() {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (b Bus) mustMatch(rhs Bus) {
	if len(b.Pins) != len(rhs.Pins) {
		panic(errors.Errorf("gatesim: bus width mismatch: %d vs %d", len(b.Pins), len(rhs.Pins)))
	}
}
