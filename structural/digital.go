package structural

// DigitalCircuitSimulator settles a CircuitStructure as pure booleans: no
// delay, no partial voltages, just a depth-first flood of 0/1 values
// outward from the input pins until every reachable socket has been
// visited exactly once.
type DigitalCircuitSimulator struct {
	Circuit *Circuit
}

// NewDigitalCircuitSimulator builds a Circuit backed by DigitalSocketState.
func NewDigitalCircuitSimulator(structure *CircuitStructure) *DigitalCircuitSimulator {
	return &DigitalCircuitSimulator{
		Circuit: NewCircuit(structure, func() SocketState { return &DigitalSocketState{} }),
	}
}

// Prepare clears all socket state, readying the circuit for a fresh
// Simulate call with new input values.
func (d *DigitalCircuitSimulator) Prepare() {
	for _, s := range d.Circuit.SocketStates {
		s.Reset()
	}
	d.Circuit.ApplyConstants()
}

// Simulate re-settles the circuit from its current input values. Call
// Circuit.SetInput before Simulate to change inputs, then Circuit.GetOutput
// to read results.
func (d *DigitalCircuitSimulator) Simulate() {
	visited := make(map[int32]bool, len(d.Circuit.SocketStates))
	for _, elem := range d.Circuit.Structure.InputElements {
		d.propagateSignal(elem, visited)
	}
}

// propagateSignal evaluates elementIndex's output(s) from its current
// input socket values, then floods the result outward across every
// connection leaving an output-capable socket. visited guards against
// revisiting a socket that's already received its value this pass — it
// must be keyed on the socket at the far end of the connection
// (socketIndex2), not the socket being propagated from, or a cycle in the
// wiring (e.g. a latch's feedback loop) would visit its own source socket
// forever without ever marking the destination reached.
func (d *DigitalCircuitSimulator) propagateSignal(elementIndex int32, visited map[int32]bool) {
	e := &d.Circuit.Structure.Elements[elementIndex]
	states := d.Circuit.SocketStates

	switch e.Kind {
	case ElementGate:
		a := states[e.SocketIndices[SlotGateA]].Get() != 0
		var out bool
		if e.Gate == GateNOT {
			out = !a
		} else {
			b := states[e.SocketIndices[SlotGateB]].Get() != 0
			out = evalGate(e.Gate, a, b)
		}
		states[e.SocketIndices[SlotGateOut]].Set(elementIndex, boolToFloat(out))

	case ElementTransistor:
		base := states[e.SocketIndices[SlotBase]].Get() != 0
		collector := states[e.SocketIndices[SlotCollector]].Get()
		emitter := 0.0
		if base {
			emitter = collector
		}
		states[e.SocketIndices[SlotEmitter]].Set(elementIndex, emitter)
	}

	for _, socketIndex := range e.SocketIndices {
		if socketIndex < 0 {
			continue
		}
		socket := &d.Circuit.Structure.Sockets[socketIndex]
		if socket.Type&SocketOut == 0 {
			continue
		}
		value := states[socketIndex].Get()
		for _, socketIndex2 := range d.Circuit.SocketConnections[socketIndex] {
			if visited[socketIndex2] {
				continue
			}
			visited[socketIndex2] = true
			states[socketIndex2].Set(elementIndex, value)
			d.propagateSignal(d.Circuit.Structure.Sockets[socketIndex2].ElementIndex, visited)
		}
	}
}

func evalGate(g GateType, a, b bool) bool {
	switch g {
	case GateAND:
		return a && b
	case GateOR:
		return a || b
	case GateNAND:
		return !(a && b)
	case GateNOR:
		return !(a || b)
	case GateXOR:
		return a != b
	default:
		return false
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
