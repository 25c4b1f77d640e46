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

package disassembly_test

import (
	"testing"

	"github.com/sidegate/famicore/curated"
	"github.com/sidegate/famicore/disassembly"
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

func (mem *mockMem) put(origin uint16, bytes ...uint8) {
	for i, b := range bytes {
		mem.internal[uint16(i)+origin] = b
	}
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func (mem *mockMem) Peek(address uint16) uint8 {
	return mem.internal[address]
}

func TestDecode(t *testing.T) {
	mem := newMockMem()

	// JMP $C5F5
	mem.put(0xc000, 0x4c, 0xf5, 0xc5)
	e, err := disassembly.Decode(mem, 0xc000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, e.String(), "C000  4C F5 C5  JMP $C5F5")

	// LDX #$01
	mem.put(0x0064, 0xa2, 0x01)
	e, err = disassembly.Decode(mem, 0x0064)
	test.ExpectedSuccess(t, err)
	test.Equate(t, e.Mnemonic(), "LDX")
	test.Equate(t, e.OperandString(), "#$01")

	// ASL A
	mem.put(0x0070, 0x0a)
	e, err = disassembly.Decode(mem, 0x0070)
	test.ExpectedSuccess(t, err)
	test.Equate(t, e.OperandString(), "A")

	// branch operands are resolved to absolute addresses
	mem.put(0x0080, 0xd0, 0xfe)
	e, err = disassembly.Decode(mem, 0x0080)
	test.ExpectedSuccess(t, err)
	test.Equate(t, e.OperandString(), "$0080")

	// opcode $02 is in the KIL group and has no definition
	mem.put(0x0090, 0x02)
	_, err = disassembly.Decode(mem, 0x0090)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, disassembly.UndefinedOpcode))
}

func TestTraceFormat(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.put(0x0064, 0xa2, 0x01)
	test.ExpectedSuccess(t, mc.LoadPC(0x0064))
	mc.A.Load(0x01)
	mc.X.Load(0x02)
	mc.Y.Load(0x03)

	s, err := disassembly.Trace(mc, mem)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "0064  A2 01     LDX #$01                        A:01 X:02 Y:03 P:24 SP:FD")
}

func TestTraceMemoryAccess(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// ORA ($33),Y with the indirect address at $33/$34 pointing to $0400
	mem.put(0x0064, 0x11, 0x33)
	mem.put(0x0033, 0x00, 0x04)
	mem.put(0x0400, 0xaa)
	test.ExpectedSuccess(t, mc.LoadPC(0x0064))

	s, err := disassembly.Trace(mc, mem)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "0064  11 33     ORA ($33),Y = 0400 @ 0400 = AA  A:00 X:00 Y:00 P:24 SP:FD")
}
