package structural

// CircuitStructure is the static topology: elements, their sockets, and
// the connections (wires) between sockets. It owns no simulation state —
// that lives in Circuit's per-socket SocketState slice.
//
// Ported from original_source/src/core/CircuitStructure.h/.cpp.
type CircuitStructure struct {
	Elements    []Element
	Sockets     []Socket
	Connections []Connection

	InputElements  []int32
	OutputElements []int32
}

// NewCircuitStructure returns an empty structure.
func NewCircuitStructure() *CircuitStructure {
	return &CircuitStructure{}
}

// AddElement appends element and allocates the sockets its kind requires,
// per the fixed per-kind socket layout (spec.md §4.5's Element shape).
func (s *CircuitStructure) AddElement(e Element) int32 {
	index := int32(len(s.Elements))
	s.Elements = append(s.Elements, e)

	switch e.Kind {
	case ElementPin:
		switch e.PinType {
		case PinIn:
			s.AddSocket(index, SocketOut, SlotPin)
		case PinOut:
			s.AddSocket(index, SocketIn, SlotPin)
		case PinConstant:
			s.AddSocket(index, SocketOut, SlotPin)
		case PinConnector:
			s.AddSocket(index, SocketInAndOut, SlotPin)
		}
	case ElementResistor:
		s.AddSocket(index, SocketInAndOut, SlotResistorA)
		s.AddSocket(index, SocketInAndOut, SlotResistorB)
	case ElementTransistor:
		s.AddSocket(index, SocketIn, SlotCollector)
		s.AddSocket(index, SocketIn, SlotBase)
		s.AddSocket(index, SocketOut, SlotEmitter)
	case ElementGate:
		s.AddSocket(index, SocketIn, SlotGateA)
		s.AddSocket(index, SocketIn, SlotGateB)
		s.AddSocket(index, SocketOut, SlotGateOut)
	}

	return index
}

// AddSocket appends a socket for elementIndex at the given slot and
// records the socket's index back onto the element.
func (s *CircuitStructure) AddSocket(elementIndex int32, socketType SocketType, slot SocketSlot) int32 {
	index := int32(len(s.Sockets))
	s.Sockets = append(s.Sockets, Socket{Type: socketType, Slot: slot, ElementIndex: elementIndex})
	s.Elements[elementIndex].SocketIndices[slot] = index
	return index
}

// AddConnection wires two sockets together.
func (s *CircuitStructure) AddConnection(socket1, socket2 int32) int32 {
	index := int32(len(s.Connections))
	s.Connections = append(s.Connections, Connection{Socket1: socket1, Socket2: socket2})
	return index
}

// SocketAt returns the socket at the given element/slot.
func (s *CircuitStructure) SocketAt(elementIndex int32, slot SocketSlot) *Socket {
	return &s.Sockets[s.Elements[elementIndex].SocketIndices[slot]]
}

// SocketIndex returns the socket index at the given element/slot.
func (s *CircuitStructure) SocketIndex(elementIndex int32, slot SocketSlot) int32 {
	return s.Elements[elementIndex].SocketIndices[slot]
}
