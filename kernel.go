package gatesim

import "github.com/pkg/errors"

// addPinToQueue enqueues pin p for (re)evaluation at simulationTime+delay.
func (c *Circuit) addPinToQueue(p PinIndex, delay int64, external bool) {
	c.queue.add(p, c.simulationTime+delay, external)
}

// addOutboundPinsToQueue enqueues every downstream consumer of p (via the
// sparse outbound adjacency), invalidating p's group cache whenever p has
// any consumer — the cache is keyed by group, and any driver re-enqueue
// may change the group's wired-OR value.
func (c *Circuit) addOutboundPinsToQueue(p PinIndex) {
	if c.outbound[p] == int32(invalidPin) {
		return
	}
	if gi := c.groupByPin[p]; gi != int32(invalidPin) {
		c.groupUpToDate[gi] = false
	}
	switch c.outbound[p] {
	case -2:
		for q := range c.outboundMulti[p] {
			c.addPinToQueue(q, 0, false)
		}
	default:
		c.addPinToQueue(PinIndex(c.outbound[p]), 0, false)
	}
}

// getInboundSignal resolves pin p's logical input: its own state if
// undriven, the single driver's state if there is exactly one, or the
// group's cached wired-OR value (recomputed lazily) if there are several.
func (c *Circuit) getInboundSignal(p PinIndex) bool {
	switch c.inbound[p] {
	case int32(invalidPin):
		return c.states[p]
	case -2:
		gi := c.groupByPin[p]
		if c.groupUpToDate[gi] {
			return c.groupValues[gi]
		}
		value := false
		for _, d := range c.groups[gi].drivers {
			if d == p {
				continue
			}
			if c.states[d] {
				value = true
				break
			}
		}
		c.groupUpToDate[gi] = true
		c.groupValues[gi] = value
		return value
	default:
		return c.states[c.inbound[p]]
	}
}

// scheduleGateOutput schedules the evaluation of the gate owning input pin p
// (at index p + arity - localIndex, per spec.md §4.3) after that gate
// kind's configured delay.
func (c *Circuit) scheduleGateOutput(p PinIndex) {
	k := c.kinds[p]
	var kind GateKind
	var offset PinIndex
	switch k {
	case PinBufIn:
		kind, offset = GateBuf, 1
	case PinNotIn:
		kind, offset = GateNot, 1
	case PinOrA:
		kind, offset = GateOr, 2
	case PinOrB:
		kind, offset = GateOr, 1
	case PinAndA:
		kind, offset = GateAnd, 2
	case PinAndB:
		kind, offset = GateAnd, 1
	case PinNorA:
		kind, offset = GateNor, 2
	case PinNorB:
		kind, offset = GateNor, 1
	case PinNandA:
		kind, offset = GateNand, 2
	case PinNandB:
		kind, offset = GateNand, 1
	case PinXorA:
		kind, offset = GateXor, 2
	case PinXorB:
		kind, offset = GateXor, 1
	case PinDLatchData:
		kind, offset = GateDLatch, 2
	case PinDLatchEnable:
		kind, offset = GateDLatch, 1
	default:
		return
	}
	c.addPinToQueue(p+offset, c.gateDelays[kind], false)
}

// evaluateOutput computes gate output pin p's new value from its preceding
// input pins, per the truth table in spec.md §4.3. D_LATCH is special: when
// enable is false the output is left unchanged (memory).
func (c *Circuit) evaluateOutput(p PinIndex) bool {
	switch c.kinds[p] {
	case PinBufOut:
		return c.states[p-1]
	case PinNotOut:
		return !c.states[p-1]
	case PinOrOut:
		return c.states[p-2] || c.states[p-1]
	case PinAndOut:
		return c.states[p-2] && c.states[p-1]
	case PinNorOut:
		return !(c.states[p-2] || c.states[p-1])
	case PinNandOut:
		return !(c.states[p-2] && c.states[p-1])
	case PinXorOut:
		return c.states[p-2] != c.states[p-1]
	case PinDLatchOut:
		if c.states[p-1] {
			return c.states[p-2]
		}
		return c.states[p] // enable=0: keep previous output
	default:
		return c.states[p]
	}
}

// Simulate advances virtual time by up to timeUnits (or indefinitely, if
// timeUnits == -1: "drain fully"), draining any external SetValue writes
// staged since the last call, then dispatching queued events until the
// queue empties or the time budget is exhausted. It returns the number of
// virtual time units actually consumed.
//
// Ported from original_source/src/core/Circuit.cpp's simulate/processQueue.
func (c *Circuit) Simulate(timeUnits int64) int64 {
	if !c.prepared {
		panic(errors.New("gatesim: Simulate called before Prepare"))
	}
	for _, p := range c.changedPins {
		c.addPinToQueue(p, 0, true)
	}
	c.changedPins = c.changedPins[:0]
	return c.processQueue(timeUnits)
}

// processQueue is the core dispatch loop, shared by Prepare's initial
// settle (timeUnits == -1, draining fully) and Simulate.
func (c *Circuit) processQueue(timeUnits int64) int64 {
	start := c.simulationTime
	endTime := c.simulationTime
	unbounded := timeUnits == -1
	if !unbounded {
		endTime += timeUnits
	}

	for !c.queue.empty() {
		e := c.queue.peek()
		if !unbounded && e.Time > endTime {
			break
		}
		if e.Time > c.simulationTime {
			c.simulationTime = e.Time
		}
		c.queue.pop()

		p := e.Pin
		kind := c.kinds[p]
		base := baseClass(kind)

		if e.External {
			// External writes bypass evaluation and only propagate.
			c.addOutboundPinsToQueue(p)
			continue
		}

		switch base {
		case BaseConnector:
			if kind == PinConnector {
				c.states[p] = c.getInboundSignal(p)
			} else if kind == PinExternalOutput {
				c.addOutboundPinsToQueue(p)
			}
		case BaseInput:
			old := c.states[p]
			c.states[p] = c.getInboundSignal(p)
			if old != c.states[p] {
				c.scheduleGateOutput(p)
			}
		case BaseOutput:
			old := c.states[p]
			c.states[p] = c.evaluateOutput(p)
			if old != c.states[p] {
				c.addOutboundPinsToQueue(p)
			}
		}
	}

	used := c.simulationTime - start
	if !unbounded && c.simulationTime < endTime {
		c.simulationTime = endTime
	}
	return used
}
