package structural

import "github.com/pkg/errors"

// CircuitBuilder assembles a CircuitStructure element by element. Every
// constructor method returns the new element's index for wiring with
// Connect.
//
// Ported from original_source/src/core/CircuitBuilder.h/.cpp. The
// original's reduceConnectors also renumbers every element/socket/
// connection index after removing a connector, rewriting every
// downstream reference; this port instead tombstones the removed
// connections in place (Socket1/Socket2 set to -1) and leaves the
// connector element itself unreferenced, since gatesim's consumers only
// ever walk the structure via SocketConnections, which a tombstoned
// connection does not contribute to. Full index compaction would save
// memory on a structure that is rebuilt many times, which is not this
// package's use case.
type CircuitBuilder struct {
	Structure *CircuitStructure
}

// NewCircuitBuilder returns a builder over a fresh, empty structure.
func NewCircuitBuilder() *CircuitBuilder {
	return &CircuitBuilder{Structure: NewCircuitStructure()}
}

func (b *CircuitBuilder) pin(t PinType) int32 {
	e := NewElement(ElementPin)
	e.PinType = t
	return b.Structure.AddElement(e)
}

// Input creates an IN pin and registers it as a circuit input.
func (b *CircuitBuilder) Input() int32 {
	idx := b.pin(PinIn)
	b.Structure.InputElements = append(b.Structure.InputElements, idx)
	return idx
}

// Output creates an OUT pin and registers it as a circuit output.
func (b *CircuitBuilder) Output() int32 {
	idx := b.pin(PinOut)
	b.Structure.OutputElements = append(b.Structure.OutputElements, idx)
	return idx
}

// Constant creates a CONSTANT pin driven permanently to v.
func (b *CircuitBuilder) Constant(v bool) int32 {
	idx := b.pin(PinConstant)
	b.Structure.Elements[idx].Voltage = boolToFloat(v)
	return idx
}

// Connector creates a bare pass-through pin used to join two sockets
// that can't be wired to each other directly (e.g. two INPUT sockets).
func (b *CircuitBuilder) Connector() int32 {
	return b.pin(PinConnector)
}

// Gate creates a two-input logic gate element (NOT ignores its B input).
func (b *CircuitBuilder) Gate(kind GateType) int32 {
	e := NewElement(ElementGate)
	e.Gate = kind
	return b.Structure.AddElement(e)
}

func (b *CircuitBuilder) AND() int32  { return b.Gate(GateAND) }
func (b *CircuitBuilder) OR() int32   { return b.Gate(GateOR) }
func (b *CircuitBuilder) NOT() int32  { return b.Gate(GateNOT) }
func (b *CircuitBuilder) NAND() int32 { return b.Gate(GateNAND) }
func (b *CircuitBuilder) NOR() int32  { return b.Gate(GateNOR) }
func (b *CircuitBuilder) XOR() int32  { return b.Gate(GateXOR) }

// Resistor creates a two-terminal resistor element.
func (b *CircuitBuilder) Resistor(ohms float64) int32 {
	e := NewElement(ElementResistor)
	e.Resistance = ohms
	return b.Structure.AddElement(e)
}

// Transistor creates a collector/base/emitter transistor element.
func (b *CircuitBuilder) Transistor(kind TransistorType) int32 {
	e := NewElement(ElementTransistor)
	e.Transistor = kind
	return b.Structure.AddElement(e)
}

// SocketIndex resolves an element/slot pair to a socket index, for use
// with Connect/Unconnect.
func (b *CircuitBuilder) SocketIndex(elementIndex int32, slot SocketSlot) int32 {
	return b.Structure.SocketIndex(elementIndex, slot)
}

// Connect wires elementA's slotA terminal to elementB's slotB terminal,
// returning the new connection's index.
func (b *CircuitBuilder) Connect(elementA int32, slotA SocketSlot, elementB int32, slotB SocketSlot) int32 {
	s1 := b.Structure.SocketIndex(elementA, slotA)
	s2 := b.Structure.SocketIndex(elementB, slotB)
	return b.Structure.AddConnection(s1, s2)
}

// Unconnect tombstones a previously added connection so it no longer
// contributes to socket adjacency.
func (b *CircuitBuilder) Unconnect(connectionIndex int32) {
	if connectionIndex < 0 || int(connectionIndex) >= len(b.Structure.Connections) {
		panic(errors.Errorf("structural: connection index %d out of range", connectionIndex))
	}
	b.Structure.Connections[connectionIndex].Socket1 = -1
	b.Structure.Connections[connectionIndex].Socket2 = -1
}

// ReduceConnectors removes every CONNECTOR element whose single socket
// has exactly two live connections, wiring its two neighbors directly to
// each other and tombstoning the connector's own connections. Connectors
// with zero, one, or more than two connections are left alone (they're
// either unused, terminal, or fan-out points a straight splice can't
// preserve).
func (b *CircuitBuilder) ReduceConnectors() {
	for elementIndex, e := range b.Structure.Elements {
		if e.Kind != ElementPin || e.PinType != PinConnector {
			continue
		}
		socket := e.SocketIndices[SlotPin]
		live := b.liveConnections(socket)
		if len(live) != 2 {
			continue
		}
		other1 := b.otherSocket(live[0], socket)
		other2 := b.otherSocket(live[1], socket)
		b.Structure.Connections[live[0]].Socket1 = -1
		b.Structure.Connections[live[0]].Socket2 = -1
		b.Structure.Connections[live[1]].Socket1 = -1
		b.Structure.Connections[live[1]].Socket2 = -1
		b.Structure.AddConnection(other1, other2)
		_ = elementIndex
	}
}

// liveConnections returns the indices of every non-tombstoned connection
// touching socket.
func (b *CircuitBuilder) liveConnections(socket int32) []int32 {
	var out []int32
	for i, conn := range b.Structure.Connections {
		if conn.Socket1 < 0 || conn.Socket2 < 0 {
			continue
		}
		if conn.Socket1 == socket || conn.Socket2 == socket {
			out = append(out, int32(i))
		}
	}
	return out
}

func (b *CircuitBuilder) otherSocket(connectionIndex, socket int32) int32 {
	conn := b.Structure.Connections[connectionIndex]
	if conn.Socket1 == socket {
		return conn.Socket2
	}
	return conn.Socket1
}
