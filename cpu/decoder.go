package cpu

import "github.com/circuitlab/gatesim"

// decode turns an n-bit binary bus into a 2^n-wide one-hot bus: output i
// is the AND of every input bit (or its negation) that matches i's
// binary representation. Used to turn the instruction's register and
// opcode fields into individual select lines.
func decode(in gatesim.Bus) gatesim.Bus {
	n := in.Width()
	size := 1 << uint(n)
	out := make([]gatesim.Pin, size)
	for i := 0; i < size; i++ {
		var active gatesim.Pin
		for k := 0; k < n; k++ {
			bit := in.At(k)
			var term gatesim.Pin
			if i&(1<<uint(k)) != 0 {
				term = bit
			} else {
				term = bit.NOT()
			}
			if k == 0 {
				active = term
			} else {
				active = active.AND(term)
			}
		}
		out[i] = active
	}
	return gatesim.NewBusFromPins(in.Circuit(), out)
}
