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

package memory

import (
	"github.com/sidegate/famicore/hardware/apu"
	"github.com/sidegate/famicore/hardware/cartridge"
	"github.com/sidegate/famicore/hardware/controllers"
	"github.com/sidegate/famicore/hardware/memory/memorymap"
	"github.com/sidegate/famicore/hardware/ppu"
)

// AddressOAMDMA is the register that starts a 256 byte transfer from CPU
// memory to the PPU's OAM. The transfer itself is driven by the console
// because it stalls the CPU while the PPU keeps running.
const AddressOAMDMA = 0x4014

// controller port addresses
const (
	addressJoypad1 = 0x4016
	addressJoypad2 = 0x4017
)

// Memory presents a monolithic representation of system memory to the CPU.
// The CPU only ever accesses memory through an instance of this structure.
// Address decoding and mirroring is delegated to the memorymap package.
type Memory struct {
	RAM  []uint8
	Cart *cartridge.Cartridge

	ppu     *ppu.PPU
	apu     *apu.APU
	joypad1 *controllers.Joypad
	joypad2 *controllers.Joypad

	// the last byte transferred over the bus. reads of addresses with
	// nothing behind them see this value
	latch uint8

	// set by a write to AddressOAMDMA and consumed by the console
	dmaPending bool
	dmaPage    uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(cart *cartridge.Cartridge, p *ppu.PPU, a *apu.APU,
	joypad1 *controllers.Joypad, joypad2 *controllers.Joypad) *Memory {
	return &Memory{
		RAM:     make([]uint8, memorymap.MaskRAM+1),
		Cart:    cart,
		ppu:     p,
		apu:     a,
		joypad1: joypad1,
		joypad2: joypad2,
	}
}

// Snapshot creates a copy of the Memory in its current state. The attached
// chips are referenced, not copied. Use Plumb to attach snapshotted chips.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.RAM = make([]uint8, len(mem.RAM))
	copy(n.RAM, mem.RAM)
	return &n
}

// Plumb new chip references into the Memory.
func (mem *Memory) Plumb(cart *cartridge.Cartridge, p *ppu.PPU, a *apu.APU,
	joypad1 *controllers.Joypad, joypad2 *controllers.Joypad) {
	mem.Cart = cart
	mem.ppu = p
	mem.apu = a
	mem.joypad1 = joypad1
	mem.joypad2 = joypad2
}

// Reset contents of memory.
func (mem *Memory) Reset() {
	for i := range mem.RAM {
		mem.RAM[i] = 0
	}
	mem.latch = 0
	mem.dmaPending = false
}

// Read is an implementation of cpubus.Memory. Every access refreshes the
// open bus latch.
func (mem *Memory) Read(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)

	var data uint8
	switch area {
	case memorymap.RAM:
		data = mem.RAM[ma]
	case memorymap.PPU:
		data = mem.ppu.ReadRegister(ma)
	case memorymap.IO:
		data = mem.readIO(ma)
	case memorymap.Cartridge:
		data = mem.Cart.Read(ma)
	default:
		data = mem.latch
	}

	mem.latch = data
	return data
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.latch = data

	ma, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.RAM:
		mem.RAM[ma] = data
	case memorymap.PPU:
		mem.ppu.WriteRegister(ma, data)
	case memorymap.IO:
		mem.writeIO(ma, data)
	case memorymap.Cartridge:
		mem.Cart.Write(ma, data)
	}
}

func (mem *Memory) readIO(address uint16) uint8 {
	switch address {
	case apu.AddressStatus:
		return mem.apu.ReadRegister(address)
	case addressJoypad1:
		// the serial bit is driven by the controller, the rest of the
		// byte floats at the value of the address high byte
		return 0x40 | mem.joypad1.Read()
	case addressJoypad2:
		return 0x40 | mem.joypad2.Read()
	}
	return mem.latch
}

func (mem *Memory) writeIO(address uint16, data uint8) {
	switch address {
	case AddressOAMDMA:
		mem.dmaPending = true
		mem.dmaPage = data
	case addressJoypad1:
		// the strobe line is shared by both controller ports
		mem.joypad1.Write(data)
		mem.joypad2.Write(data)
	default:
		// every other IO address belongs to the APU. writes to 0x4017
		// reach both the controller port and the APU frame counter on
		// real hardware but only the APU cares about the value
		mem.apu.WriteRegister(address, data)
	}
}

// ClaimDMA returns the page of an OAM DMA request and resets the pending
// state. The second return value is false if no request is outstanding.
func (mem *Memory) ClaimDMA() (uint8, bool) {
	if !mem.dmaPending {
		return 0, false
	}
	mem.dmaPending = false
	return mem.dmaPage, true
}

// Peek reads memory without the side effects of a bus access. Registers
// with read side effects are not consulted at all, the open bus latch is
// returned in their place. Used by the debugger.
func (mem *Memory) Peek(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.RAM:
		return mem.RAM[ma]
	case memorymap.Cartridge:
		return mem.Cart.Read(ma)
	}
	return mem.latch
}

// Poke writes memory without the side effects of a bus access. Only RAM and
// cartridge space can be poked. Used by the debugger.
func (mem *Memory) Poke(address uint16, data uint8) {
	ma, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.RAM:
		mem.RAM[ma] = data
	case memorymap.Cartridge:
		mem.Cart.Write(ma, data)
	}
}
