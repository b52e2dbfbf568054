package structural

// SocketState holds the signal currently present on a socket. Digital and
// analog simulation use different merge rules for multiple writers onto
// the same socket, so each gets its own implementation.
type SocketState interface {
	// Get reads the socket's current settled value.
	Get() float64
	// Set records a value written to the socket by the element at
	// sourceElement (an element can drive more than one connected socket
	// through a shared wire; the source is tracked for diagnostics only).
	Set(sourceElement int32, v float64)
	// Reset clears accumulated writes, e.g. between simulation passes.
	Reset()
}

// DigitalSocketState is a simple last-writer-wins boolean latch, encoded
// as 0.0/1.0. Digital elements never need to merge multiple simultaneous
// drivers within a single settle pass; the depth-first visited-set
// guard in DigitalCircuitSimulator ensures each socket receives a value
// over a connection at most once per Simulate call.
type DigitalSocketState struct {
	value float64
	set   bool
}

func (s *DigitalSocketState) Get() float64 { return s.value }

func (s *DigitalSocketState) Set(_ int32, v float64) {
	s.value = v
	s.set = true
}

func (s *DigitalSocketState) Reset() {
	s.value = 0
	s.set = false
}

// AnalogSocketState models a socket shared by multiple voltage sources as
// wired-OR over voltage: it keeps the maximum of every value written
// since the last Reset. This is a deliberately degenerate analog model —
// no resistive divider, no current — matching a resistor/transistor mesh
// collapsed to "the strongest driver wins".
type AnalogSocketState struct {
	value float64
	any   bool
}

func (s *AnalogSocketState) Get() float64 { return s.value }

func (s *AnalogSocketState) Set(_ int32, v float64) {
	if !s.any || v > s.value {
		s.value = v
	}
	s.any = true
}

func (s *AnalogSocketState) Reset() {
	s.value = 0
	s.any = false
}
