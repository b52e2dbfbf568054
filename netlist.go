package gatesim

import "github.com/pkg/errors"

// line is an unordered equipotential wire between two pins — the only
// mechanism for cross-gate connectivity (spec.md §3).
type line struct {
	a, b PinIndex
}

// group is a maximal set of pins transitively connected by lines. Its
// logical value is the OR of its driver pins' states (wired-OR); Input-base
// pins are removed from the driver set during Prepare, since they consume
// rather than drive.
type group struct {
	members []PinIndex // full membership, including pruned Input pins
	drivers []PinIndex // Output/Connector pins only, post-prune
}

// Circuit owns every pin, line, and group by index. Builder and external
// handles (Pin, Bus) are non-owning (circuit-reference, index) cursors.
//
// Lifecycle: construction phase (AddGate/AddLine, no simulation state) ->
// Prepare (builds groups/adjacency, settles initial state) -> run phase
// (Simulate/SetValue, repeatable).
type Circuit struct {
	kinds  []PinKind
	states []bool

	changedPins []PinIndex

	lines     []line
	gateCount int

	// adjacency: -1 = no neighbor, -2 = multiple (side-set in *Multi),
	// otherwise the single neighbor's index.
	inbound      []int32
	inboundMulti map[PinIndex]map[PinIndex]struct{}
	outbound     []int32
	outboundMulti map[PinIndex]map[PinIndex]struct{}

	groupByPin []int32 // built by Prepare; -1 for pins in no group
	groups     []group

	groupUpToDate []bool
	groupValues   []bool

	queue          *eventQueue
	simulationTime int64
	gateDelays     [gateKindCount]int64

	prepared bool
}

// NewCircuit returns an empty circuit ready for AddGate/AddLine.
func NewCircuit() *Circuit {
	c := &Circuit{queue: newEventQueue()}
	for k := range c.gateDelays {
		c.gateDelays[k] = 1
	}
	return c
}

// AddGate appends a gate of the given kind's pins, in the fixed
// input-then-output order, and returns the output pin index (spec.md §4.1).
// Legal only before Simulate; may be called before or interleaved with
// Prepare as long as Prepare runs before the first Simulate.
func (c *Circuit) AddGate(kind GateKind) PinIndex {
	n := kind.pinCount()
	first := PinIndex(len(c.kinds))
	for i := 0; i < n; i++ {
		c.kinds = append(c.kinds, gatePinKind(kind, i, n))
		c.states = append(c.states, false)
	}
	c.prepared = false
	switch kind {
	case GateConnector, GateExternalOutput:
		// single-pin pseudo-gates don't count towards the gate counter;
		// they are not "evaluated" components.
	default:
		c.gateCount++
	}
	return first + PinIndex(n) - 1
}

// gatePinKind returns the PinKind for the i-th pin (0-indexed) of an n-pin
// gate of the given kind.
func gatePinKind(kind GateKind, i, n int) PinKind {
	switch kind {
	case GateConnector:
		return PinConnector
	case GateExternalOutput:
		return PinExternalOutput
	case GateBuf:
		if i == 0 {
			return PinBufIn
		}
		return PinBufOut
	case GateNot:
		if i == 0 {
			return PinNotIn
		}
		return PinNotOut
	case GateOr:
		return [...]PinKind{PinOrA, PinOrB, PinOrOut}[i]
	case GateAnd:
		return [...]PinKind{PinAndA, PinAndB, PinAndOut}[i]
	case GateNor:
		return [...]PinKind{PinNorA, PinNorB, PinNorOut}[i]
	case GateNand:
		return [...]PinKind{PinNandA, PinNandB, PinNandOut}[i]
	case GateXor:
		return [...]PinKind{PinXorA, PinXorB, PinXorOut}[i]
	case GateDLatch:
		return [...]PinKind{PinDLatchData, PinDLatchEnable, PinDLatchOut}[i]
	default:
		return PinDisabled
	}
}

// AddLine declares an equipotential wire between pins a and b. Legal only
// before Prepare.
func (c *Circuit) AddLine(a, b PinIndex) {
	if err := c.checkPin(a); err != nil {
		panic(err)
	}
	if err := c.checkPin(b); err != nil {
		panic(err)
	}
	c.lines = append(c.lines, line{a, b})
	c.prepared = false
}

func (c *Circuit) checkPin(p PinIndex) error {
	if p < 0 || int(p) >= len(c.kinds) {
		return errOutOfRange("pin", p)
	}
	return nil
}

// SetGateDelay overwrites the default delay (1 time unit) for the given
// gate kind. Must be called before Simulate.
func (c *Circuit) SetGateDelay(kind GateKind, delay int64) {
	if kind >= gateKindCount {
		panic(errors.Errorf("gatesim: invalid gate kind %d", kind))
	}
	c.gateDelays[kind] = delay
}

// SetSimulationMode switches the event queue discipline: sortQueue=true
// selects strict time-sorted dispatch (required when delays are
// heterogeneous and fan-in causality matters); false selects the faster
// FIFO discipline.
func (c *Circuit) SetSimulationMode(sortQueue bool) {
	c.queue.sortQueue = sortQueue
}

// GateCount returns the number of evaluated gates (Connector/ExternalOutput
// pseudo-gates are not counted).
func (c *Circuit) GateCount() int { return c.gateCount }

// PinCount returns the total number of pins.
func (c *Circuit) PinCount() int { return len(c.kinds) }

// LineCount returns the number of declared lines.
func (c *Circuit) LineCount() int { return len(c.lines) }

// SimulationTime returns the current virtual time.
func (c *Circuit) SimulationTime() int64 { return c.simulationTime }
