package cpu

import "github.com/circuitlab/gatesim"

// fullAdder wires a ripple-carry adder from aBus/carry into outBus,
// returning the final carry-out. aBus, bBus and outBus must share width.
func fullAdder(aBus, bBus, outBus gatesim.Bus, carry gatesim.Pin) gatesim.Pin {
	for i := 0; i < aBus.Width(); i++ {
		a := aBus.At(i)
		b := bBus.At(i)
		o := outBus.At(i)

		a.XOR(b).XOR(carry).Connect(o)
		carry = a.AND(b).OR(carry.AND(a.XOR(b)))
	}
	return carry
}
