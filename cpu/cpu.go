package cpu

import "github.com/circuitlab/gatesim"

// Instruction set (opcode in instBusH nibble, register in instBusL
// nibble unless noted):
//
//	NOOP  0x00
//	HALT  0x01                 (register nibble must select register 1)
//	LDL   0x1x   x -> ACC[0-3]
//	LDH   0x2x   x -> ACC[4-7]
//	LD    0x30   [ADDR] -> ACC
//	ST    0x40   ACC -> [ADDR]
//	MV ACC, r   0x5r   ACC -> register r (addrL=4 addrH=5 A=6 B=7 ...)
//	MV r, ACC   0x6r   register r -> ACC
//	ADD A  0x76   ACC <- ACC+A
//	SUB A  0x86   ACC <- ACC-A
//	AND A  0x96
//	OR  A  0xa6
//	NOT A  0xb6
//	XOR A  0xc6
type CPU8 struct {
	circuit *gatesim.Circuit

	AddressBusSize int
	DataBusSize    int
	WordCount      int

	Memory *MemoryBank
	ALU    *ALU
	Clock  gatesim.Pin

	PC               *Register
	Inst             *Register
	Flag             *Register
	Acc              *Register
	AddrL            *Register
	AddrH            *Register
	A, B, C, D, E, F *Register

	registerByIndex []*Register

	DataBus     gatesim.Bus
	AddressBus  gatesim.Bus
	InstBus     gatesim.Bus
	AccWriteBus gatesim.Bus
	PCWriteBus  gatesim.Bus

	HaltSignal gatesim.Pin
}

// NewCPU8 allocates an 8-bit CPU with a 16-bit address bus and the given
// memory word count.
func NewCPU8(c *gatesim.Circuit, wordCount int) *CPU8 {
	return &CPU8{
		circuit:        c,
		AddressBusSize: 16,
		DataBusSize:    8,
		WordCount:      wordCount,
		Clock:          c.Connector(),
	}
}

// Build wires memory, registers, the ALU, and the fetch/execute control
// unit together.
func (p *CPU8) Build() {
	c := p.circuit

	p.Memory = NewMemoryBank(c, p.AddressBusSize, p.DataBusSize, p.WordCount)
	p.Memory.Build()

	p.DataBus = gatesim.NewBus(c, p.DataBusSize)
	p.AddressBus = gatesim.NewBus(c, p.AddressBusSize)
	p.InstBus = gatesim.NewBus(c, p.DataBusSize)
	p.AccWriteBus = gatesim.NewBus(c, p.DataBusSize)
	p.PCWriteBus = gatesim.NewBus(c, p.AddressBusSize)

	p.ALU = NewALU(c, p.DataBusSize)

	p.buildRegisters()
	p.buildControlUnit()
	p.ALU.Build(c, p.DataBusSize)
}

func (p *CPU8) buildRegisters() {
	c := p.circuit

	p.PC = NewRegister(c, p.Clock, p.PCWriteBus, p.AddressBus)
	p.PC.BuildBuffered()
	p.PC.Name = "pc"

	p.Inst = NewRegister(c, p.Clock, p.DataBus, p.DataBus)
	p.Inst.Build()
	p.Inst.Name = "inst"

	p.Flag = NewRegister(c, p.Clock, p.DataBus, p.DataBus)
	p.Flag.Build()
	p.Flag.Name = "flag"

	p.Acc = NewRegister(c, p.Clock, p.AccWriteBus, p.DataBus)
	p.Acc.BuildBuffered()
	p.Acc.Name = "acc"

	p.AddrL = NewRegister(c, p.Clock, p.DataBus, p.DataBus)
	p.AddrL.Build()
	p.AddrL.Name = "addrL"

	p.AddrH = NewRegister(c, p.Clock, p.DataBus, p.DataBus)
	p.AddrH.Build()
	p.AddrH.Name = "addrH"

	p.A = NewRegister(c, p.Clock, p.DataBus, p.DataBus)
	p.A.Build()
	p.A.Name = "A"
	p.B = NewRegister(c, p.Clock, p.DataBus, p.DataBus)
	p.B.Build()
	p.B.Name = "B"
	p.C = NewRegister(c, p.Clock, p.DataBus, p.DataBus)
	p.C.Build()
	p.C.Name = "C"
	p.D = NewRegister(c, p.Clock, p.DataBus, p.DataBus)
	p.D.Build()
	p.D.Name = "D"
	p.E = NewRegister(c, p.Clock, p.DataBus, p.DataBus)
	p.E.Build()
	p.E.Name = "E"
	p.F = NewRegister(c, p.Clock, p.DataBus, p.DataBus)
	p.F.Build()
	p.F.Name = "F"

	p.registerByIndex = []*Register{
		p.PC, p.Inst, p.Flag, p.Acc, p.AddrL, p.AddrH,
		p.A, p.B, p.C, p.D, p.E, p.F,
	}
}

// buildControlUnit wires the fetch/execute toggle, instruction decode,
// and the data paths each opcode drives. It's a direct port of
// original_source/src/cpu/CPU8Bit.h's buildControlUnit.
func (p *CPU8) buildControlUnit() {
	c := p.circuit
	clock := p.Clock

	instBusL := p.InstBus.Split(0, 2)
	instBusH := p.InstBus.Split(1, 2)
	dataBusL := p.DataBus.Split(0, 2)
	dataBusH := p.DataBus.Split(1, 2)
	accBusL := p.Acc.Cell.Split(0, 2)
	accBusH := p.Acc.Cell.Split(1, 2)

	// fetch/execute toggle: a master/slave T-flip-flop fed its own
	// inverse, flipping state once per full clock cycle.
	executeCycle := c.Connector()
	fetchCycle := executeCycle.NOT()
	fetchCycle.DLatch(clock).DLatch(clock.NOT()).Connect(executeCycle)

	p.HaltSignal = c.Connector()
	fetch := fetchCycle.AND(p.HaltSignal.NOT())
	execute := executeCycle

	// fetch instruction
	fetch.AND(fetch).Connect(p.Memory.Read)
	p.AddressBus.AND(fetch).Connect(p.Memory.AddressBus)
	p.Memory.DataBus.AND(fetch).Connect(p.DataBus)
	fetch.AND(fetch).AND(p.Memory.Clock).Connect(p.Inst.Write)
	fetch.AND(fetch).Connect(p.PC.Read)

	// increment PC
	zero := gatesim.NewBus(c, p.AddressBusSize)
	incOut := gatesim.NewBus(c, p.AddressBusSize)
	fullAdder(p.AddressBus, zero, incOut, c.Connector().NOT())
	incOut.AND(fetch).Connect(p.PCWriteBus)
	fetch.AND(fetch).Connect(p.PC.Write)

	// decode instruction
	p.Inst.Cell.AND(execute).Connect(p.InstBus)
	registerSelection := decode(instBusL)
	opcodeSelection := decode(instBusH)
	writeToSelectedRegister := c.Connector()
	readFromSelectedRegister := c.Connector()

	for i, r := range p.registerByIndex {
		sel := registerSelection.At(i)
		sel.AND(readFromSelectedRegister).Connect(r.Read)
		sel.AND(writeToSelectedRegister).Connect(r.Write)
	}

	opLDL := opcodeSelection.At(1).AND(clock).AND(execute)
	opLDH := opcodeSelection.At(2).AND(clock).AND(execute)
	opLD := opcodeSelection.At(3).AND(clock).AND(execute)
	opST := opcodeSelection.At(4).AND(clock).AND(execute)
	opMvAcc := opcodeSelection.At(5).AND(clock).AND(execute)
	opMvX := opcodeSelection.At(6).AND(clock).AND(execute)

	opAdd := opcodeSelection.At(7).AND(clock).AND(execute)
	opSub := opcodeSelection.At(8).AND(clock).AND(execute)
	opAnd := opcodeSelection.At(9).AND(clock).AND(execute)
	opOr := opcodeSelection.At(10).AND(clock).AND(execute)
	opNot := opcodeSelection.At(11).AND(clock).AND(execute)
	opXor := opcodeSelection.At(12).AND(clock).AND(execute)

	instBusL.AND(opLDL).Connect(dataBusL)
	accBusH.AND(opLDL).Connect(dataBusH)

	instBusL.AND(opLDH).Connect(dataBusH)
	accBusL.AND(opLDH).Connect(dataBusL)

	opLDL.OR(opLDH).OR(opLD.AND(p.Memory.Clock)).OR(opMvX).Connect(p.Acc.Write)
	opST.OR(opMvAcc).Connect(p.Acc.Read)
	opMvX.AND(opMvX).Connect(readFromSelectedRegister)
	opMvAcc.AND(opMvAcc).Connect(writeToSelectedRegister)

	// PC is read/written through the data bus like any other register,
	// just split across two data-bus-wide transfers.
	p.AddressBus.Split(0, 2).AND(p.PC.Read.AND(execute)).Connect(p.DataBus)
	p.DataBus.AND(p.PC.Write.AND(execute)).Connect(p.PCWriteBus.Split(0, 2))

	opLD.AND(opLD).Connect(p.Memory.Read)
	p.AddressBus.AND(opLD).Connect(p.Memory.AddressBus)
	p.Memory.DataBus.AND(opLD).Connect(p.DataBus)

	opST.AND(opST).Connect(p.Memory.Write)
	p.AddressBus.AND(opST).Connect(p.Memory.AddressBus)
	p.DataBus.AND(opST).Connect(p.Memory.DataBus)

	opLdOrSt := opLD.OR(opST)
	p.AddrL.Cell.AND(opLdOrSt).Connect(p.AddressBus.Split(0, 2))
	p.AddrH.Cell.AND(opLdOrSt).Connect(p.AddressBus.Split(1, 2))

	// arithmetic
	accWriteFromAlu := c.Connector()
	p.DataBus.AND(accWriteFromAlu.NOT()).Connect(p.AccWriteBus)
	p.ALU.Out.AND(accWriteFromAlu).Connect(p.AccWriteBus)

	opAdd.AND(opAdd).Connect(p.ALU.OpAdd)
	opSub.AND(opSub).Connect(p.ALU.OpSub)
	opAnd.AND(opAnd).Connect(p.ALU.OpAnd)
	opOr.AND(opOr).Connect(p.ALU.OpOr)
	opNot.AND(opNot).Connect(p.ALU.OpNot)
	opXor.AND(opXor).Connect(p.ALU.OpXor)

	anyAlu := opAdd.OR(opSub).OR(opAnd).OR(opOr).OR(opNot).OR(opXor)
	anyAlu.AND(anyAlu).Connect(accWriteFromAlu)
	anyAlu.AND(anyAlu).Connect(p.Acc.Write)
	anyAlu.AND(anyAlu).Connect(readFromSelectedRegister)

	p.Acc.Cell.AND(anyAlu.AND(anyAlu)).Connect(p.ALU.InA)
	p.DataBus.AND(anyAlu.AND(anyAlu)).Connect(p.ALU.InB)

	opHalt := opcodeSelection.At(0).AND(clock).AND(execute).AND(registerSelection.At(1))
	opHalt.DLatch(clock.AND(execute)).Connect(p.HaltSignal)
}
