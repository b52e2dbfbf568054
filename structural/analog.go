package structural

// AnalogCircuitSimulator is a deliberately degenerate stand-in for real
// analog simulation: it has no notion of current, resistance, or
// capacitance. Each socket simply converges to the maximum of every
// voltage written into it (directly, or via AnalogSocketState.Set by a
// connected socket), treating the netlist as if every path were a diode
// to the strongest source. It exists so structural circuits built with
// resistors and transistors still produce a deterministic result without
// a full SPICE-style solver.
type AnalogCircuitSimulator struct {
	Circuit *Circuit
}

// NewAnalogCircuitSimulator builds a Circuit backed by AnalogSocketState.
func NewAnalogCircuitSimulator(structure *CircuitStructure) *AnalogCircuitSimulator {
	return &AnalogCircuitSimulator{
		Circuit: NewCircuit(structure, func() SocketState { return &AnalogSocketState{} }),
	}
}

// Prepare clears all socket state.
func (a *AnalogCircuitSimulator) Prepare() {
	for _, s := range a.Circuit.SocketStates {
		s.Reset()
	}
	a.Circuit.ApplyConstants()
}

// Simulate repeatedly floods the maximum known voltage across every
// connection until a full pass makes no further change, or until the
// socket count bound is reached (the most a monotonically non-decreasing
// max-propagation can possibly take to converge).
func (a *AnalogCircuitSimulator) Simulate() {
	states := a.Circuit.SocketStates
	limit := len(states) + 1

	for pass := 0; pass < limit; pass++ {
		changed := false
		for socketIndex, neighbors := range a.Circuit.SocketConnections {
			v := states[socketIndex].Get()
			for _, neighbor := range neighbors {
				before := states[neighbor].Get()
				states[neighbor].Set(a.Circuit.Structure.Sockets[socketIndex].ElementIndex, v)
				if states[neighbor].Get() != before {
					changed = true
				}
			}
		}
		if !changed {
			return
		}
	}
}
