package gatesim

import "container/heap"

// Event is a pending pin update: pin p must be (re)evaluated at virtual
// time t. external marks events staged by Pin.SetValue, which bypass gate
// evaluation and only propagate downstream (spec.md §4.3/§4.4). insertIndex
// breaks ties between same-time events in sorted mode, and gives FIFO mode
// its ordering.
type Event struct {
	Pin         PinIndex
	Time        int64
	External    bool
	InsertIndex int64
}

// eventQueue is an ordered store of pending events with two disciplines,
// selected by sortQueue: FIFO (a plain queue, fast, correct when delays are
// uniform or causality doesn't depend on ordering) or time-sorted (a
// min-heap keyed on (time, insertIndex), needed when gate delays are
// heterogeneous and fan-in branches race). An optional dedup set coalesces
// simultaneous re-enqueues of the same pin.
//
// Ported from original_source/src/core/EventQueue.h's
// deque+priority_queue+set trio.
type eventQueue struct {
	fifo            []Event
	fifoHead        int
	sorted          sortedHeap
	updateSet       map[PinIndex]struct{}
	nextInsertIndex int64
	sortQueue       bool
	useUpdateSet    bool
}

func newEventQueue() *eventQueue {
	return &eventQueue{}
}

// add enqueues pin p for processing at time t. If useUpdateSet is enabled
// and p is already queued, add is a no-op (matching EventQueue::add's
// updateSet.contains(pin) guard).
func (q *eventQueue) add(p PinIndex, t int64, external bool) {
	if q.useUpdateSet {
		if _, queued := q.updateSet[p]; queued {
			return
		}
		if q.updateSet == nil {
			q.updateSet = make(map[PinIndex]struct{})
		}
		q.updateSet[p] = struct{}{}
	}
	e := Event{Pin: p, Time: t, External: external, InsertIndex: q.nextInsertIndex}
	q.nextInsertIndex++
	if q.sortQueue {
		heap.Push(&q.sorted, e)
	} else {
		q.fifo = append(q.fifo, e)
	}
}

// peek returns the next event to process without removing it.
func (q *eventQueue) peek() Event {
	if q.sortQueue {
		return q.sorted[0]
	}
	return q.fifo[q.fifoHead]
}

// pop removes the event returned by the most recent peek.
func (q *eventQueue) pop() {
	var p PinIndex
	if q.sortQueue {
		e := heap.Pop(&q.sorted).(Event)
		p = e.Pin
	} else {
		p = q.fifo[q.fifoHead].Pin
		q.fifoHead++
		// Compact once the drained prefix dominates, so a long-running
		// simulation doesn't grow the backing array without bound.
		if q.fifoHead > 64 && q.fifoHead*2 > len(q.fifo) {
			q.fifo = append(q.fifo[:0], q.fifo[q.fifoHead:]...)
			q.fifoHead = 0
		}
	}
	if q.useUpdateSet {
		delete(q.updateSet, p)
	}
}

// empty reports whether the queue has no pending events.
func (q *eventQueue) empty() bool {
	if q.sortQueue {
		return len(q.sorted) == 0
	}
	return q.fifoHead >= len(q.fifo)
}

// sortedHeap is a container/heap min-heap over Event, ordered by time then
// by insertIndex (stable FIFO tie-break among same-time events), per
// spec.md §4.3/§5.
type sortedHeap []Event

func (h sortedHeap) Len() int { return len(h) }

func (h sortedHeap) Less(i, j int) bool {
	if h[i].Time != h[j].Time {
		return h[i].Time < h[j].Time
	}
	return h[i].InsertIndex < h[j].InsertIndex
}

func (h sortedHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *sortedHeap) Push(x interface{}) {
	*h = append(*h, x.(Event))
}

func (h *sortedHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
