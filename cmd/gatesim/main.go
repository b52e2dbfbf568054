package main

import (
	"log"

	"github.com/circuitlab/gatesim"
	"github.com/circuitlab/gatesim/cpu"
)

func main() {
	demoGates()
	demoCPU()
}

// demoGates builds an XOR purely from NAND-equivalent primitives and
// drives it through all four input combinations.
func demoGates() {
	c := gatesim.NewCircuit()
	a := c.Input()
	b := c.Input()
	n := a.NAND(b)
	out := a.NAND(n).NAND(b.NAND(n))
	c.Prepare()

	for _, combo := range [][2]bool{{false, false}, {false, true}, {true, false}, {true, true}} {
		a.SetValue(combo[0])
		b.SetValue(combo[1])
		c.Simulate(-1)
		log.Printf("xor(%v, %v) = %v", combo[0], combo[1], out.GetValue())
	}
}

// demoCPU builds a small CPU8 and clocks it through a handful of cycles
// on an all-zero (NOOP) program, logging the program counter as it
// advances.
func demoCPU() {
	c := gatesim.NewCircuit()
	p := cpu.NewCPU8(c, 64)
	p.Build()
	c.Prepare()

	for i := 0; i < 8; i++ {
		p.Clock.SetValue(true)
		c.Simulate(-1)
		p.Clock.SetValue(false)
		c.Simulate(-1)
		log.Printf("cycle %d: pc=%#04x halt=%v", i, p.AddressBus.GetValue(), p.HaltSignal.GetValue())
	}
}
