package gatesim

// Prepare is the one-shot post-pass that groups wire-connected pins into
// propagation groups, derives inbound/outbound adjacency, and settles the
// netlist to an initial stable state. It must be called before the first
// Simulate; subsequent AddGate/AddLine calls invalidate it (Prepare must be
// called again before simulating).
//
// Ported from original_source/src/core/Circuit.cpp's initPinConnections.
func (c *Circuit) Prepare() {
	n := len(c.kinds)

	c.inbound = make([]int32, n)
	c.outbound = make([]int32, n)
	for i := range c.inbound {
		c.inbound[i] = int32(invalidPin)
		c.outbound[i] = int32(invalidPin)
	}
	c.inboundMulti = make(map[PinIndex]map[PinIndex]struct{})
	c.outboundMulti = make(map[PinIndex]map[PinIndex]struct{})

	c.groupByPin = make([]int32, n)
	for i := range c.groupByPin {
		c.groupByPin[i] = int32(invalidPin)
	}
	c.groups = nil

	// Union-find over lines: merge the two endpoints' groups, starting a
	// new one if neither belongs to one yet.
	for _, ln := range c.lines {
		a, b := ln.a, ln.b
		ag, bg := c.groupByPin[a], c.groupByPin[b]

		switch {
		case ag == int32(invalidPin) && bg == int32(invalidPin):
			gi := int32(len(c.groups))
			c.groups = append(c.groups, group{members: []PinIndex{a, b}})
			c.groupByPin[a] = gi
			c.groupByPin[b] = gi
		case ag == int32(invalidPin):
			c.groups[bg].members = append(c.groups[bg].members, a)
			c.groupByPin[a] = bg
		case bg == int32(invalidPin):
			c.groups[ag].members = append(c.groups[ag].members, b)
			c.groupByPin[b] = ag
		case ag != bg:
			// merge the smaller group into the larger one.
			src, dst := bg, ag
			if len(c.groups[ag].members) < len(c.groups[bg].members) {
				src, dst = ag, bg
			}
			for _, p := range c.groups[src].members {
				c.groupByPin[p] = dst
				c.groups[dst].members = append(c.groups[dst].members, p)
			}
			c.groups[src].members = nil
		}
		// ag == bg: already in the same group, nothing to do.
	}

	// For each group, project drivers -> consumers within the group onto
	// the sparse inbound/outbound adjacency.
	for _, g := range c.groups {
		for _, a := range g.members {
			for _, b := range g.members {
				if a != b {
					c.addPinConnection(a, b)
				}
			}
		}
	}

	c.groupUpToDate = make([]bool, len(c.groups))
	c.groupValues = make([]bool, len(c.groups))

	// Prune Input-base pins from each group's driver set: they consume
	// rather than drive, but remain addressable members of the group.
	for gi := range c.groups {
		g := &c.groups[gi]
		g.drivers = g.drivers[:0]
		for _, p := range g.members {
			if baseClass(c.kinds[p]) != BaseInput {
				g.drivers = append(g.drivers, p)
			}
		}
	}

	// Settle: enqueue every pin once and drain, then reset virtual time.
	c.states = make([]bool, n)
	sortQueue := c.queue.sortQueue
	c.queue = newEventQueue()
	c.queue.sortQueue = false // settling order doesn't matter, FIFO is enough
	for i := 0; i < n; i++ {
		c.addPinToQueue(PinIndex(i), 0, false)
	}
	c.changedPins = c.changedPins[:0]
	c.processQueue(-1)
	c.queue.sortQueue = sortQueue
	c.simulationTime = 0

	c.prepared = true
}

// addPinConnection records a directed edge a->b iff b is a consumer
// (Input/Connector base) and a is a producer (Output/Connector base) — the
// "drivers -> consumers" projection of a wire (spec.md §4.2 step 3).
func (c *Circuit) addPinConnection(a, b PinIndex) {
	ba, bb := baseClass(c.kinds[a]), baseClass(c.kinds[b])
	if !(bb == BaseInput || bb == BaseConnector) {
		return
	}
	if !(ba == BaseOutput || ba == BaseConnector) {
		return
	}

	switch c.inbound[b] {
	case int32(invalidPin):
		c.inbound[b] = int32(a)
	case -2:
		c.inboundSet(b)[a] = struct{}{}
	default:
		if c.inbound[b] != int32(a) {
			set := c.inboundSet(b)
			set[PinIndex(c.inbound[b])] = struct{}{}
			set[a] = struct{}{}
			c.inbound[b] = -2
		}
	}

	switch c.outbound[a] {
	case int32(invalidPin):
		c.outbound[a] = int32(b)
	case -2:
		c.outboundSet(a)[b] = struct{}{}
	default:
		if c.outbound[a] != int32(b) {
			set := c.outboundSet(a)
			set[PinIndex(c.outbound[a])] = struct{}{}
			set[b] = struct{}{}
			c.outbound[a] = -2
		}
	}
}

func (c *Circuit) inboundSet(p PinIndex) map[PinIndex]struct{} {
	s := c.inboundMulti[p]
	if s == nil {
		s = make(map[PinIndex]struct{})
		c.inboundMulti[p] = s
	}
	return s
}

func (c *Circuit) outboundSet(p PinIndex) map[PinIndex]struct{} {
	s := c.outboundMulti[p]
	if s == nil {
		s = make(map[PinIndex]struct{})
		c.outboundMulti[p] = s
	}
	return s
}
