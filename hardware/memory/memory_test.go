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

package memory_test

import (
	"testing"

	"github.com/sidegate/famicore/hardware/apu"
	"github.com/sidegate/famicore/hardware/cartridge"
	"github.com/sidegate/famicore/hardware/controllers"
	"github.com/sidegate/famicore/hardware/memory"
	"github.com/sidegate/famicore/hardware/ppu"
	"github.com/sidegate/famicore/test"
)

func newMemory() *memory.Memory {
	cart := cartridge.NewCartridge()
	p := ppu.NewPPU(cart)
	a := apu.NewAPU()
	return memory.NewMemory(cart, p, a,
		controllers.NewJoypad(), controllers.NewJoypad())
}

func TestRAMMirroring(t *testing.T) {
	mem := newMemory()

	mem.Write(0x0000, 0xd0)
	test.Equate(t, mem.Read(0x0800), 0xd0)
	test.Equate(t, mem.Read(0x1000), 0xd0)
	test.Equate(t, mem.Read(0x1800), 0xd0)

	mem.Write(0x1fff, 0x0d)
	test.Equate(t, mem.Read(0x07ff), 0x0d)
}

func TestPPURegisterMirroring(t *testing.T) {
	mem := newMemory()

	// a write through a distant mirror of PPUCTRL is visible in the PPU
	// bus latch read back through another mirror of a write only register
	mem.Write(0x3ff8, 0x1e)
	test.Equate(t, mem.Read(0x2000), 0x1e)
	test.Equate(t, mem.Read(0x2b10), 0x1e)
}

func TestOpenBus(t *testing.T) {
	mem := newMemory()

	// reads of unmapped IO addresses return the last byte transferred
	mem.Write(0x0000, 0xc7)
	test.Equate(t, mem.Read(0x0000), 0xc7)
	test.Equate(t, mem.Read(0x4018), 0xc7)

	// the latch follows every read too
	mem.Write(0x0010, 0x55)
	test.Equate(t, mem.Read(0x0010), 0x55)
	test.Equate(t, mem.Read(0x401f), 0x55)
}

func TestDMALatch(t *testing.T) {
	mem := newMemory()

	_, pending := mem.ClaimDMA()
	test.ExpectedFailure(t, pending)

	mem.Write(0x4014, 0x02)
	page, pending := mem.ClaimDMA()
	test.ExpectedSuccess(t, pending)
	test.Equate(t, page, 0x02)

	// a claim resets the pending state
	_, pending = mem.ClaimDMA()
	test.ExpectedFailure(t, pending)
}

func TestControllerPorts(t *testing.T) {
	mem := newMemory()

	// strobe both controllers and read eight bits from port one. only the
	// low bit of the port is driven by the controller
	mem.Write(0x4016, 0x01)
	mem.Write(0x4016, 0x00)
	for i := 0; i < 8; i++ {
		test.Equate(t, mem.Read(0x4016)&0x01, 0x00)
	}

	// shift register is exhausted
	test.Equate(t, mem.Read(0x4016)&0x01, 0x01)
}
