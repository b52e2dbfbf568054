// Package gatesim is a discrete-event digital logic simulator: circuits
// are flat arrays of pins and gates connected by lines, driven by a
// virtual-time event queue rather than immediate recursive propagation.
//
// A Circuit is built by allocating pins with the Circuit's Input and
// Connector methods, adding gates with the Pin combinators (AND, OR, NOT,
// ...), wiring them with Connect, then calling Prepare once construction
// is done.
// Simulate drains the event queue, scheduling each gate's output pins
// onto the queue whenever an inbound signal changes.
package gatesim
