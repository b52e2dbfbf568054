package cpu

import "github.com/circuitlab/gatesim"

// MemoryBank is a binary-tree-addressed word memory: each address bit
// splits the remaining word count into an A (bit clear) and B (bit set)
// half, recursing until a single word-wide D-latch cell remains. Reading
// and writing are both qualified by Clock, gated down the tree by the
// address bits actually consumed on the path to each cell.
type MemoryBank struct {
	circuit *gatesim.Circuit

	AddressBusSize int
	DataBusSize    int
	WordCount      int

	DataBus    gatesim.Bus
	AddressBus gatesim.Bus

	Clock gatesim.Pin
	Read  gatesim.Pin
	Write gatesim.Pin

	Cells []gatesim.Bus

	internalReadBus  gatesim.Bus
	internalWriteBus gatesim.Bus
}

// NewMemoryBank allocates a bank's external connectors and buses; call
// Build to wire the address-decode tree.
func NewMemoryBank(c *gatesim.Circuit, addressBusSize, dataBusSize, wordCount int) *MemoryBank {
	m := &MemoryBank{
		circuit:        c,
		AddressBusSize: addressBusSize,
		DataBusSize:    dataBusSize,
		WordCount:      wordCount,
		Clock:          c.Connector(),
		Read:           c.Connector(),
		Write:          c.Connector(),
	}
	m.AddressBus = gatesim.NewBus(c, addressBusSize)
	m.DataBus = gatesim.NewBus(c, dataBusSize)
	m.internalReadBus = m.DataBus
	m.internalWriteBus = m.DataBus
	return m
}

// Build wires the recursive address-decode tree down to one D-latch cell
// per addressable word.
func (m *MemoryBank) Build() {
	level := log2Ceil(m.WordCount) - 1
	if level > m.AddressBusSize-1 {
		level = m.AddressBusSize - 1
	}
	m.addBank(level, m.Clock.AND(m.Read), m.Clock.AND(m.Write), m.internalWriteBus, m.internalReadBus)
}

// addBank builds one node of the decode tree. level < 0 means "this is a
// leaf": allocate one word-wide latch cell, gated only by read/write
// (which already carry every address bit consumed on the path here).
// Otherwise it splits on AddressBus bit `level`, recursing into an A
// (bit clear) and B (bit set) half, each accumulating one more AND gate
// of address-bit qualification.
func (m *MemoryBank) addBank(level int, read, write gatesim.Pin, inBus, outBus gatesim.Bus) {
	if len(m.Cells) >= m.WordCount {
		return
	}

	if level < 0 {
		cell := inBus.DLatch(write)
		cell.AND(read).Connect(outBus)
		m.Cells = append(m.Cells, cell)
		return
	}

	bit := m.AddressBus.At(level)

	ar := read.AND(bit.NOT())
	aw := write.AND(bit.NOT())
	br := read.AND(bit)
	bw := write.AND(bit)

	busA := gatesim.NewBus(m.circuit, m.DataBusSize)
	busB := gatesim.NewBus(m.circuit, m.DataBusSize)

	m.addBank(level-1, ar, aw, inBus.AND(aw), busA)
	m.addBank(level-1, br, bw, inBus.AND(bw), busB)

	busA.AND(ar).Connect(outBus)
	busB.AND(br).Connect(outBus)
}

// log2Ceil returns ceil(log2(n)) for n >= 1 (0 for n <= 1).
func log2Ceil(n int) int {
	if n <= 1 {
		return 0
	}
	k, v := 0, 1
	for v < n {
		v <<= 1
		k++
	}
	return k
}
