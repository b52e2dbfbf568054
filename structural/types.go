// Package structural is the zero-delay structural collaborator: a
// transistor/resistor/gate netlist over sockets, simulated either
// digitally (boolean, depth-first settle) or degenerately analog (a
// trivial max-voltage propagator). It is a lower-fidelity sibling of the
// event-kernel package gatesim, not a replacement for it.
package structural

// ElementType tags the kind of circuit element a Element represents.
type ElementType uint8

const (
	ElementNone ElementType = iota
	ElementPin
	ElementResistor
	ElementTransistor
	ElementGate
)

// PinType is the flavor of a PIN element.
type PinType uint8

const (
	PinNone PinType = iota
	PinIn
	PinOut
	PinConstant
	PinConnector
)

// TransistorType names the transistor family. Only the socket shape
// (collector/base/emitter) is modeled; the simulators don't distinguish
// between families.
type TransistorType uint8

const (
	TransistorNone TransistorType = iota
	TransistorMOSFET
	TransistorBJT
	TransistorJFET
	TransistorIGBT
)

// GateType names a structural logic gate.
type GateType uint8

const (
	GateNone GateType = iota
	GateAND
	GateOR
	GateNOT
	GateNAND
	GateNOR
	GateXOR
)

// SocketSlot indexes into an Element's fixed 3-slot socket array. The same
// numeric slot is reused across element kinds (e.g. slot 0 is PIN for a
// PIN element and RESISTOR_A for a resistor).
type SocketSlot uint8

const (
	SlotPin SocketSlot = 0

	SlotResistorA SocketSlot = 0
	SlotResistorB SocketSlot = 1

	SlotCollector SocketSlot = 0
	SlotBase      SocketSlot = 1
	SlotEmitter   SocketSlot = 2

	SlotGateA   SocketSlot = 0
	SlotGateB   SocketSlot = 1
	SlotGateOut SocketSlot = 2
)

// SocketType is a bitmask of whether a socket accepts inbound signal,
// produces outbound signal, or both.
type SocketType uint8

const (
	SocketNone     SocketType = 0
	SocketIn       SocketType = 1
	SocketOut      SocketType = 2
	SocketInAndOut SocketType = SocketIn | SocketOut
)

// Element is a tagged union (Go has none, so a kind tag plus only the
// relevant fields populated) over the four element kinds.
type Element struct {
	Kind          ElementType
	SocketIndices [3]int32

	PinType     PinType
	Voltage     float64
	Resistance  float64
	Transistor  TransistorType
	Gate        GateType
}

// NewElement returns a zero-value element of the given kind, with its
// socket indices unset (-1).
func NewElement(kind ElementType) Element {
	return Element{
		Kind:          kind,
		SocketIndices: [3]int32{-1, -1, -1},
		Resistance:    100, // ohms, matching the source's resistor default
	}
}

// Socket is one terminal of an element, addressable by index in a
// CircuitStructure.
type Socket struct {
	Type        SocketType
	Slot        SocketSlot
	ElementIndex int32
}

// Connection is an undirected wire between two sockets.
type Connection struct {
	Socket1, Socket2 int32
}
