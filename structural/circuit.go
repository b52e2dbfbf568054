package structural

import "github.com/pkg/errors"

// Circuit pairs a CircuitStructure with live per-socket state and the
// socket-to-socket adjacency derived from its connections. It is shared
// by DigitalCircuitSimulator and AnalogCircuitSimulator, which differ
// only in the SocketState implementation they install and how they walk
// the adjacency to settle it.
type Circuit struct {
	Structure         *CircuitStructure
	SocketStates      []SocketState
	SocketConnections [][]int32
}

// NewCircuit builds socket state (via newState, called once per socket)
// and the undirected socket adjacency lists from structure.Connections.
func NewCircuit(structure *CircuitStructure, newState func() SocketState) *Circuit {
	c := &Circuit{
		Structure:         structure,
		SocketStates:      make([]SocketState, len(structure.Sockets)),
		SocketConnections: make([][]int32, len(structure.Sockets)),
	}
	for i := range c.SocketStates {
		c.SocketStates[i] = newState()
	}
	for _, conn := range structure.Connections {
		if conn.Socket1 < 0 || conn.Socket2 < 0 {
			continue // tombstoned by CircuitBuilder.Unconnect or ReduceConnectors
		}
		c.SocketConnections[conn.Socket1] = append(c.SocketConnections[conn.Socket1], conn.Socket2)
		c.SocketConnections[conn.Socket2] = append(c.SocketConnections[conn.Socket2], conn.Socket1)
	}
	c.ApplyConstants()
	return c
}

// ApplyConstants (re-)drives every CONSTANT pin's socket to its fixed
// voltage. A simulator's Prepare calls this after resetting all socket
// state, since Reset would otherwise erase constants along with
// everything else.
func (c *Circuit) ApplyConstants() {
	for elementIndex, e := range c.Structure.Elements {
		if e.Kind == ElementPin && e.PinType == PinConstant {
			socket := e.SocketIndices[SlotPin]
			c.SocketStates[socket].Set(int32(elementIndex), e.Voltage)
		}
	}
}

// SetInput drives the i-th input element's PIN socket to v.
func (c *Circuit) SetInput(i int, v float64) {
	if i < 0 || i >= len(c.Structure.InputElements) {
		panic(errors.Errorf("structural: input index %d out of range", i))
	}
	elem := c.Structure.InputElements[i]
	socket := c.Structure.SocketIndex(elem, SlotPin)
	c.SocketStates[socket].Set(elem, v)
}

// GetOutput reads the i-th output element's PIN socket.
func (c *Circuit) GetOutput(i int) float64 {
	if i < 0 || i >= len(c.Structure.OutputElements) {
		panic(errors.Errorf("structural: output index %d out of range", i))
	}
	elem := c.Structure.OutputElements[i]
	socket := c.Structure.SocketIndex(elem, SlotPin)
	return c.SocketStates[socket].Get()
}

// InputCount returns the number of designated input elements.
func (c *Circuit) InputCount() int { return len(c.Structure.InputElements) }

// OutputCount returns the number of designated output elements.
func (c *Circuit) OutputCount() int { return len(c.Structure.OutputElements) }
