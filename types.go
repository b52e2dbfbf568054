// Package gatesim is a discrete-event simulator for gate-and-pin netlists.
//
// A netlist is built by appending gates (PinKind runs) and lines (wire
// equipotentials) to a Circuit, then sealed with Prepare, which groups
// wire-connected pins into propagation groups and derives inbound/outbound
// adjacency. Simulate then advances a virtual clock, dequeuing pin updates
// and re-enqueuing downstream pins with per-gate-kind delays.
//
// The sibling package gatesim/structural provides a lower-complexity,
// zero-delay structural simulator over transistors/resistors/gates and
// sockets; gatesim/cpu is a client that synthesizes an 8-bit accumulator
// CPU out of gatesim primitives.
package gatesim

import "github.com/pkg/errors"

// GateKind identifies a gate primitive. It is a closed, fixed-arity
// enumeration — the evaluator is a dense switch over GateKind, not a
// polymorphic dispatch, per the "sum-type dispatch" design in spec.md §9.
type GateKind uint8

// Gate kinds. Connector and ExternalOutput are degenerate single-pin
// "gates" (a passive wire endpoint and a port, respectively); the rest
// have the standard two-input (or one-input, for Buf/Not) shape.
const (
	GateConnector GateKind = iota
	GateExternalOutput
	GateBuf
	GateNot
	GateOr
	GateAnd
	GateNor
	GateNand
	GateXor
	GateDLatch
	gateKindCount
)

var gateKindNames = [...]string{
	GateConnector:      "CONNECTOR",
	GateExternalOutput: "OUTPUT",
	GateBuf:            "BUF",
	GateNot:            "NOT",
	GateOr:             "OR",
	GateAnd:            "AND",
	GateNor:            "NOR",
	GateNand:           "NAND",
	GateXor:            "XOR",
	GateDLatch:         "D_LATCH",
}

func (k GateKind) String() string {
	if int(k) < len(gateKindNames) {
		return gateKindNames[k]
	}
	return "INVALID_GATE_KIND"
}

// arity is the number of input pins the gate kind consumes. Connector and
// ExternalOutput have arity 0 (they are not driven by an evaluated
// function); Buf/Not have arity 1; everything else has arity 2.
func (k GateKind) arity() int {
	switch k {
	case GateConnector, GateExternalOutput:
		return 0
	case GateBuf, GateNot:
		return 1
	default:
		return 2
	}
}

// pinCount is the number of pins a gate of this kind occupies: arity
// inputs plus one output, except Connector/ExternalOutput which occupy a
// single pin that is simultaneously their own "output".
func (k GateKind) pinCount() int {
	switch k {
	case GateConnector, GateExternalOutput:
		return 1
	default:
		return k.arity() + 1
	}
}

// PinKind is the kind of an individual pin. Every gate is a contiguous run
// of pins ending in its output pin; e.g. a two-input AND occupies three
// consecutive indices: AndA, AndB, AndOut.
type PinKind uint8

// Pin kinds, matching spec.md §3 exactly.
const (
	PinConnector PinKind = iota
	PinExternalOutput
	PinBufIn
	PinBufOut
	PinNotIn
	PinNotOut
	PinOrA
	PinOrB
	PinOrOut
	PinAndA
	PinAndB
	PinAndOut
	PinNorA
	PinNorB
	PinNorOut
	PinNandA
	PinNandB
	PinNandOut
	PinXorA
	PinXorB
	PinXorOut
	PinDLatchData
	PinDLatchEnable
	PinDLatchOut
	PinDisabled
	pinKindCount
)

var pinKindNames = [...]string{
	PinConnector:      "CONNECTOR",
	PinExternalOutput: "OUTPUT",
	PinBufIn:          "BUF_IN",
	PinBufOut:         "BUF_OUT",
	PinNotIn:          "NOT_IN",
	PinNotOut:         "NOT_OUT",
	PinOrA:            "OR_A",
	PinOrB:            "OR_B",
	PinOrOut:          "OR_OUT",
	PinAndA:           "AND_A",
	PinAndB:           "AND_B",
	PinAndOut:         "AND_OUT",
	PinNorA:           "NOR_A",
	PinNorB:           "NOR_B",
	PinNorOut:         "NOR_OUT",
	PinNandA:          "NAND_A",
	PinNandB:          "NAND_B",
	PinNandOut:        "NAND_OUT",
	PinXorA:           "XOR_A",
	PinXorB:           "XOR_B",
	PinXorOut:         "XOR_OUT",
	PinDLatchData:     "D_LATCH_DATA",
	PinDLatchEnable:   "D_LATCH_ENABLE",
	PinDLatchOut:      "D_LATCH_OUT",
	PinDisabled:       "DISABLED",
}

func (k PinKind) String() string {
	if int(k) < len(pinKindNames) {
		return pinKindNames[k]
	}
	return "INVALID_PIN_KIND"
}

// PinBase is the base class of a pin: it governs how the event kernel
// reacts when the pin is dequeued.
type PinBase uint8

// Pin base classes.
const (
	// BaseConnector pins are passive wire endpoints: on dequeue they copy
	// their inbound signal verbatim.
	BaseConnector PinBase = iota
	// BaseInput pins consume a value; a change dirties (schedules) the
	// owning gate's output.
	BaseInput
	// BaseOutput pins are produced by evaluating the owning gate's
	// function over its preceding input pins.
	BaseOutput
)

func (b PinBase) String() string {
	switch b {
	case BaseConnector:
		return "Connector"
	case BaseInput:
		return "Input"
	case BaseOutput:
		return "Output"
	default:
		return "InvalidBase"
	}
}

var pinBaseTable = [...]PinBase{
	PinConnector:      BaseConnector,
	PinExternalOutput: BaseConnector,
	PinBufIn:          BaseInput,
	PinBufOut:         BaseOutput,
	PinNotIn:          BaseInput,
	PinNotOut:         BaseOutput,
	PinOrA:            BaseInput,
	PinOrB:            BaseInput,
	PinOrOut:          BaseOutput,
	PinAndA:           BaseInput,
	PinAndB:           BaseInput,
	PinAndOut:         BaseOutput,
	PinNorA:           BaseInput,
	PinNorB:           BaseInput,
	PinNorOut:         BaseOutput,
	PinNandA:          BaseInput,
	PinNandB:          BaseInput,
	PinNandOut:        BaseOutput,
	PinXorA:           BaseInput,
	PinXorB:           BaseInput,
	PinXorOut:         BaseOutput,
	PinDLatchData:     BaseInput,
	PinDLatchEnable:   BaseInput,
	PinDLatchOut:      BaseOutput,
	PinDisabled:       BaseConnector,
}

// baseClass maps a pin kind to its base class (spec.md §3's "pin kinds map
// to three base classes").
func baseClass(k PinKind) PinBase {
	if int(k) < len(pinBaseTable) {
		return pinBaseTable[k]
	}
	return BaseConnector
}

// PinIndex addresses a single pin in a Circuit's flat pin arrays.
type PinIndex int32

// invalidPin is never a valid index; used as the "none" marker in the
// adjacency and group-membership arrays built by Prepare.
const invalidPin PinIndex = -1

func errOutOfRange(what string, idx PinIndex) error {
	return errors.Errorf("gatesim: %s index %d out of range", what, idx)
}
