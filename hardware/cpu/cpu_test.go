// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

package cpu_test

import (
	"testing"

	"github.com/sidegate/famicore/curated"
	"github.com/sidegate/famicore/hardware/cpu"
	"github.com/sidegate/famicore/test"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	mem := new(mockMem)
	mem.internal = make([]uint8, 0x10000)
	return mem
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%#02x  - wanted %#02x at address %#04x)", mem.internal[address], value, address)
	}
}

func (mem *mockMem) clear() {
	for i := 0; i < len(mem.internal); i++ {
		mem.internal[i] = 0
	}
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
}

func TestStatusInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// SEC; CLC; SEI; CLI; SED; CLD; CLV
	mem.putInstructions(0x0000, 0x38, 0x18, 0x78, 0x58, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.Equate(t, mc.Status.String(), "sv-bdIZC")
	step(t, mc) // CLC
	test.Equate(t, mc.Status.String(), "sv-bdIZc")
	step(t, mc) // SEI
	test.Equate(t, mc.Status.String(), "sv-bdIZc")
	step(t, mc) // CLI
	test.Equate(t, mc.Status.String(), "sv-bdiZc")
	step(t, mc) // SED
	test.Equate(t, mc.Status.String(), "sv-bDiZc")
	step(t, mc) // CLD
	test.Equate(t, mc.Status.String(), "sv-bdiZc")
	step(t, mc) // CLV
	test.Equate(t, mc.Status.String(), "sv-bdiZc")
}

func TestLoadStore(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LDA #$7f; STA $0280; LDX $0280; LDY #$01
	mem.putInstructions(0x0000, 0xa9, 0x7f, 0x8d, 0x80, 0x02, 0xae, 0x80, 0x02, 0xa0, 0x01)

	step(t, mc) // LDA #$7f
	test.Equate(t, mc.A.Value(), 0x7f)
	test.Equate(t, mc.LastResult.Cycles, 2)

	step(t, mc) // STA $0280
	mem.assert(t, 0x0280, 0x7f)
	test.Equate(t, mc.LastResult.Cycles, 4)

	step(t, mc) // LDX $0280
	test.Equate(t, mc.X.Value(), 0x7f)
	test.Equate(t, mc.LastResult.Cycles, 4)

	step(t, mc) // LDY #$01
	test.Equate(t, mc.Y.Value(), 0x01)
}

func TestIndexedPageFault(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.Write(0x0110, 0x55)

	// LDX #$11; LDA $00ff,X
	mem.putInstructions(0x0000, 0xa2, 0x11, 0xbd, 0xff, 0x00)

	step(t, mc) // LDX #$11
	step(t, mc) // LDA $00ff,X
	test.Equate(t, mc.A.Value(), 0x55)
	test.Equate(t, mc.LastResult.PageFault, true)
	test.Equate(t, mc.LastResult.Cycles, 5)

	// writes always pay the indexing cycle, page boundary or not
	mc.Reset()
	mem.clear()

	// LDX #$01; STA $0280,X
	mem.putInstructions(0x0000, 0xa2, 0x01, 0x9d, 0x80, 0x02)
	step(t, mc) // LDX #$01
	step(t, mc) // STA $0280,X
	test.Equate(t, mc.LastResult.PageFault, false)
	test.Equate(t, mc.LastResult.Cycles, 5)
}

func TestZeroPageIndexedWraparound(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.Write(0x0010, 0x55)

	// the indexed address stays in the zero page. LDX #$20; LDA $f0,X
	mem.putInstructions(0x1000, 0xa2, 0x20, 0xb5, 0xf0)
	err := mc.LoadPC(0x1000)
	test.ExpectedSuccess(t, err)
	step(t, mc) // LDX #$20
	step(t, mc) // LDA $f0,X
	test.Equate(t, mc.A.Value(), 0x55)
	test.Equate(t, mc.LastResult.Cycles, 4)

	// same for Y indexing. LDY #$20; LDX $f0,Y
	mc.Reset()
	mem.putInstructions(0x1000, 0xa0, 0x20, 0xb6, 0xf0)
	err = mc.LoadPC(0x1000)
	test.ExpectedSuccess(t, err)
	step(t, mc) // LDY #$20
	step(t, mc) // LDX $f0,Y
	test.Equate(t, mc.X.Value(), 0x55)
	test.Equate(t, mc.LastResult.Cycles, 4)
}

func TestIndirectZeroPageWraparound(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// a pointer at $ff reads its high byte from $00, wrapping within the
	// zero page. $0100 holds a decoy that a full 16bit pointer read would
	// pick up instead
	mem.Write(0x00ff, 0x00)
	mem.Write(0x0000, 0x04)
	mem.Write(0x0100, 0x99)
	mem.Write(0x0400, 0xaa)
	mem.Write(0x9900, 0xbb)

	// LDY #$00; LDA ($ff),Y
	mem.putInstructions(0x1000, 0xa0, 0x00, 0xb1, 0xff)
	err := mc.LoadPC(0x1000)
	test.ExpectedSuccess(t, err)
	step(t, mc) // LDY #$00
	step(t, mc) // LDA ($ff),Y
	test.Equate(t, mc.A.Value(), 0xaa)
	test.Equate(t, mc.LastResult.Cycles, 5)

	// LDX #$00; LDA ($ff,X)
	mc.Reset()
	mem.putInstructions(0x1000, 0xa2, 0x00, 0xa1, 0xff)
	err = mc.LoadPC(0x1000)
	test.ExpectedSuccess(t, err)
	step(t, mc) // LDX #$00
	step(t, mc) // LDA ($ff,X)
	test.Equate(t, mc.A.Value(), 0xaa)
	test.Equate(t, mc.LastResult.Cycles, 6)

	// the pointer sum itself wraps too. LDX #$02; LDA ($fd,X)
	mc.Reset()
	mem.putInstructions(0x1000, 0xa2, 0x02, 0xa1, 0xfd)
	err = mc.LoadPC(0x1000)
	test.ExpectedSuccess(t, err)
	step(t, mc) // LDX #$02
	step(t, mc) // LDA ($fd,X)
	test.Equate(t, mc.A.Value(), 0xaa)
}

func TestBranching(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// branch not taken costs two cycles. LDX #$01; BEQ +2
	mem.putInstructions(0x0000, 0xa2, 0x01, 0xf0, 0x02)
	step(t, mc) // LDX #$01
	step(t, mc) // BEQ (not taken)
	test.Equate(t, mc.LastResult.BranchSuccess, false)
	test.Equate(t, mc.LastResult.Cycles, 2)
	test.Equate(t, mc.PC.Address(), 0x0004)

	// branch taken, same page, costs three cycles. BNE +2
	mem.putInstructions(0x0004, 0xd0, 0x02)
	step(t, mc)
	test.Equate(t, mc.LastResult.BranchSuccess, true)
	test.Equate(t, mc.LastResult.Cycles, 3)
	test.Equate(t, mc.PC.Address(), 0x0008)

	// branch taken across a page boundary costs four cycles
	mc.Reset()
	mem.clear()
	mem.putInstructions(0x00fa, 0xa2, 0x01, 0xd0, 0x10)
	err := mc.LoadPC(0x00fa)
	test.ExpectedSuccess(t, err)
	step(t, mc) // LDX #$01
	step(t, mc) // BNE +$10
	test.Equate(t, mc.LastResult.Cycles, 4)
	test.Equate(t, mc.PC.Address(), 0x010e)

	// backwards branch. LDX #$01; BNE -4 (loops back to the LDX)
	mc.Reset()
	mem.clear()
	mem.putInstructions(0x0010, 0xa2, 0x01, 0xd0, 0xfc)
	err = mc.LoadPC(0x0010)
	test.ExpectedSuccess(t, err)
	step(t, mc) // LDX #$01
	step(t, mc) // BNE -4
	test.Equate(t, mc.PC.Address(), 0x0010)
}

func TestReadModifyWrite(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.Write(0x0080, 0xff)

	// INC $80; DEC $80; ASL $80
	mem.putInstructions(0x0000, 0xe6, 0x80, 0xc6, 0x80, 0x06, 0x80)

	step(t, mc) // INC $80
	mem.assert(t, 0x0080, 0x00)
	test.Equate(t, mc.Status.Zero, true)
	test.Equate(t, mc.LastResult.Cycles, 5)

	step(t, mc) // DEC $80
	mem.assert(t, 0x0080, 0xff)
	test.Equate(t, mc.Status.Sign, true)

	step(t, mc) // ASL $80
	mem.assert(t, 0x0080, 0xfe)
	test.Equate(t, mc.Status.Carry, true)
}

func TestArithmetic(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// CLC; LDA #$50; ADC #$50 (signed overflow)
	mem.putInstructions(0x0000, 0x18, 0xa9, 0x50, 0x69, 0x50)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xa0)
	test.Equate(t, mc.Status.Overflow, true)
	test.Equate(t, mc.Status.Carry, false)
	test.Equate(t, mc.Status.Sign, true)

	// SEC; LDA #$50; SBC #$60 (borrow clears carry)
	mc.Reset()
	mem.clear()
	mem.putInstructions(0x0000, 0x38, 0xa9, 0x50, 0xe9, 0x60)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xf0)
	test.Equate(t, mc.Status.Carry, false)
	test.Equate(t, mc.Status.Sign, true)

	// the decimal flag has no effect on the 2A03. SED; SEC; LDA #$09; ADC #$01
	mc.Reset()
	mem.clear()
	mem.putInstructions(0x0000, 0xf8, 0x18, 0xa9, 0x09, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x0a)
}

func TestSubroutines(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// JSR $0280 ... subroutine at $0280 is a single RTS
	mem.putInstructions(0x0000, 0x20, 0x80, 0x02)
	mem.putInstructions(0x0280, 0x60)

	step(t, mc) // JSR
	test.Equate(t, mc.PC.Address(), 0x0280)
	test.Equate(t, mc.LastResult.Cycles, 6)
	test.Equate(t, mc.SP.Address(), 0x01fb)

	// return address on the stack is the address of the last byte of the
	// JSR instruction, not the address of the next instruction
	mem.assert(t, 0x01fd, 0x00)
	mem.assert(t, 0x01fc, 0x02)

	step(t, mc) // RTS
	test.Equate(t, mc.PC.Address(), 0x0003)
	test.Equate(t, mc.LastResult.Cycles, 6)
	test.Equate(t, mc.SP.Address(), 0x01fd)
}

func TestJmpIndirectBug(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// the MSB of the target address is read from the start of the same
	// page, not from the start of the next page
	mem.Write(0x02ff, 0x34)
	mem.Write(0x0300, 0xff)
	mem.Write(0x0200, 0x12)

	// JMP ($02ff)
	mem.putInstructions(0x0000, 0x6c, 0xff, 0x02)
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x1234)
	test.Equate(t, mc.LastResult.Cycles, 5)
	test.Equate(t, mc.LastResult.CPUBug == "", false)
}

func TestStackPush(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LDA #$aa; PHA; LDA #$00; PLA
	mem.putInstructions(0x0000, 0xa9, 0xaa, 0x48, 0xa9, 0x00, 0x68)

	step(t, mc) // LDA #$aa
	step(t, mc) // PHA
	test.Equate(t, mc.LastResult.Cycles, 3)
	mem.assert(t, 0x01fd, 0xaa)

	step(t, mc) // LDA #$00
	test.Equate(t, mc.Status.Zero, true)

	step(t, mc) // PLA
	test.Equate(t, mc.LastResult.Cycles, 4)
	test.Equate(t, mc.A.Value(), 0xaa)
	test.Equate(t, mc.Status.Zero, false)
}

func TestBrk(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// BRK vector
	mem.Write(0xfffe, 0x00)
	mem.Write(0xffff, 0x60)

	mem.putInstructions(0x0000, 0x00)
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x6000)
	test.Equate(t, mc.LastResult.Cycles, 7)
	test.Equate(t, mc.Status.InterruptDisable, true)

	// the pushed status register has the break bit set
	test.Equate(t, mem.Read(0x01fb)&0x10, 0x10)
}

func TestNMI(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.Write(0xfffa, 0x00)
	mem.Write(0xfffb, 0x80)

	// run one instruction so the interrupt has a PC to push
	mem.putInstructions(0x0000, 0xa9, 0x01)
	step(t, mc)

	err := mc.NMI(cpu.NilCycleCallback)
	test.ExpectedSuccess(t, err)
	test.Equate(t, mc.PC.Address(), 0x8000)
	test.Equate(t, mc.LastResult.Cycles, 7)
	test.Equate(t, mc.Status.InterruptDisable, true)

	// pushed PC and status. the break bit is clear in the pushed status
	mem.assert(t, 0x01fd, 0x00)
	mem.assert(t, 0x01fc, 0x02)
	test.Equate(t, mem.Read(0x01fb)&0x10, 0x00)

	// execution can continue from the service routine
	mem.putInstructions(0x8000, 0xa9, 0xff)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xff)
}

func TestIRQMasking(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.Write(0xfffe, 0x00)
	mem.Write(0xffff, 0x90)

	// interrupt disable is set on reset so the IRQ is ignored
	mem.putInstructions(0x0000, 0xa9, 0x01, 0x58)
	step(t, mc)

	err := mc.IRQ(cpu.NilCycleCallback)
	test.ExpectedSuccess(t, err)
	test.Equate(t, mc.PC.Address(), 0x0002)

	step(t, mc) // CLI

	err = mc.IRQ(cpu.NilCycleCallback)
	test.ExpectedSuccess(t, err)
	test.Equate(t, mc.PC.Address(), 0x9000)
}

func TestUnimplementedOpcode(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// 0x02 is in the KIL group and has no definition
	mem.putInstructions(0x0000, 0x02)
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.UnimplementedOpcode))
}

func TestUndocumentedInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.Write(0x0080, 0xc0)

	// LAX $80
	mem.putInstructions(0x0000, 0xa7, 0x80)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xc0)
	test.Equate(t, mc.X.Value(), 0xc0)
	test.Equate(t, mc.Status.Sign, true)

	// SAX $81 (A AND X)
	mem.putInstructions(0x0002, 0x87, 0x81)
	step(t, mc)
	mem.assert(t, 0x0081, 0xc0)

	// DCP $80 (decrement then compare)
	mem.putInstructions(0x0004, 0xc7, 0x80)
	step(t, mc)
	mem.assert(t, 0x0080, 0xbf)
	test.Equate(t, mc.LastResult.Cycles, 5)
}
