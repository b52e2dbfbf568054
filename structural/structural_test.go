package structural_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/circuitlab/gatesim/structural"
)

var _ = Describe("DigitalCircuitSimulator", func() {
	Describe("basic gates", func() {
		DescribeTable("two-input gate truth tables",
			func(kind structural.GateType, a, b, want bool) {
				bld := structural.NewCircuitBuilder()
				ia := bld.Input()
				ib := bld.Input()
				g := bld.Gate(kind)
				out := bld.Output()
				bld.Connect(ia, structural.SlotPin, g, structural.SlotGateA)
				bld.Connect(ib, structural.SlotPin, g, structural.SlotGateB)
				bld.Connect(g, structural.SlotGateOut, out, structural.SlotPin)

				sim := structural.NewDigitalCircuitSimulator(bld.Structure)
				sim.Prepare()
				sim.Circuit.SetInput(0, boolToFloat(a))
				sim.Circuit.SetInput(1, boolToFloat(b))
				sim.Simulate()

				Expect(sim.Circuit.GetOutput(0) != 0).To(Equal(want))
			},
			Entry("AND(0,0)", structural.GateAND, false, false, false),
			Entry("AND(1,1)", structural.GateAND, true, true, true),
			Entry("OR(0,0)", structural.GateOR, false, false, false),
			Entry("OR(1,0)", structural.GateOR, true, false, true),
			Entry("NAND(1,1)", structural.GateNAND, true, true, false),
			Entry("NOR(0,0)", structural.GateNOR, false, false, true),
			Entry("XOR(1,0)", structural.GateXOR, true, false, true),
			Entry("XOR(1,1)", structural.GateXOR, true, true, false),
		)
	})

	Describe("feedback circuits", func() {
		// Two cross-coupled NOR gates form a cycle in the socket graph:
		// g1's B input is g2's output and vice versa. Settling this
		// correctly (rather than livelocking or missing the far side of
		// the loop) is exactly what the destination-keyed visited guard
		// in propagateSignal exists for.
		var (
			bld    *structural.CircuitBuilder
			sim    *structural.DigitalCircuitSimulator
			sIdx   = 0
			rIdx   = 1
			qIdx   = 0
			qnIdx  = 1
		)

		buildLatch := func() {
			bld = structural.NewCircuitBuilder()
			s := bld.Input()
			r := bld.Input()
			g1 := bld.Gate(structural.GateNOR) // drives Q
			g2 := bld.Gate(structural.GateNOR) // drives QN
			bld.Connect(r, structural.SlotPin, g1, structural.SlotGateA)
			bld.Connect(g2, structural.SlotGateOut, g1, structural.SlotGateB)
			bld.Connect(s, structural.SlotPin, g2, structural.SlotGateA)
			bld.Connect(g1, structural.SlotGateOut, g2, structural.SlotGateB)
			q := bld.Output()
			qn := bld.Output()
			bld.Connect(g1, structural.SlotGateOut, q, structural.SlotPin)
			bld.Connect(g2, structural.SlotGateOut, qn, structural.SlotPin)

			sim = structural.NewDigitalCircuitSimulator(bld.Structure)
			sim.Prepare()
		}

		It("sets Q when S is pulsed", func() {
			buildLatch()
			sim.Circuit.SetInput(sIdx, 1)
			sim.Circuit.SetInput(rIdx, 0)
			sim.Simulate()

			Expect(sim.Circuit.GetOutput(qIdx)).To(Equal(1.0))
			Expect(sim.Circuit.GetOutput(qnIdx)).To(Equal(0.0))
		})

		It("holds its state once both inputs return to 0", func() {
			buildLatch()
			sim.Circuit.SetInput(sIdx, 1)
			sim.Circuit.SetInput(rIdx, 0)
			sim.Simulate()

			sim.Circuit.SetInput(sIdx, 0)
			sim.Circuit.SetInput(rIdx, 0)
			sim.Simulate()

			Expect(sim.Circuit.GetOutput(qIdx)).To(Equal(1.0))
			Expect(sim.Circuit.GetOutput(qnIdx)).To(Equal(0.0))
		})

		It("resets Q when R is pulsed", func() {
			buildLatch()
			sim.Circuit.SetInput(sIdx, 0)
			sim.Circuit.SetInput(rIdx, 1)
			sim.Simulate()

			Expect(sim.Circuit.GetOutput(qIdx)).To(Equal(0.0))
			Expect(sim.Circuit.GetOutput(qnIdx)).To(Equal(1.0))
		})
	})
})

var _ = Describe("AnalogCircuitSimulator", func() {
	It("converges every connected socket to the strongest source", func() {
		bld := structural.NewCircuitBuilder()
		strong := bld.Constant(true)
		weak := bld.Input()
		out := bld.Output()
		bld.Connect(strong, structural.SlotPin, out, structural.SlotPin)
		bld.Connect(weak, structural.SlotPin, out, structural.SlotPin)

		sim := structural.NewAnalogCircuitSimulator(bld.Structure)
		sim.Prepare()
		sim.Circuit.SetInput(0, 0.2)
		sim.Simulate()

		Expect(sim.Circuit.GetOutput(0)).To(Equal(1.0))
	})
})

var _ = Describe("CircuitBuilder.ReduceConnectors", func() {
	It("splices out a two-connection connector without changing behavior", func() {
		bld := structural.NewCircuitBuilder()
		in := bld.Input()
		c := bld.Connector()
		g := bld.Gate(structural.GateNOT)
		out := bld.Output()
		bld.Connect(in, structural.SlotPin, c, structural.SlotPin)
		bld.Connect(c, structural.SlotPin, g, structural.SlotGateA)
		bld.Connect(g, structural.SlotGateOut, out, structural.SlotPin)

		bld.ReduceConnectors()

		sim := structural.NewDigitalCircuitSimulator(bld.Structure)
		sim.Prepare()
		sim.Circuit.SetInput(0, 1)
		sim.Simulate()

		Expect(sim.Circuit.GetOutput(0)).To(Equal(0.0))
	})
})

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
