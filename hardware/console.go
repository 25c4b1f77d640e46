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

package hardware

import (
	"github.com/sidegate/famicore/cartridgeloader"
	"github.com/sidegate/famicore/hardware/apu"
	"github.com/sidegate/famicore/hardware/cartridge"
	"github.com/sidegate/famicore/hardware/clocks"
	"github.com/sidegate/famicore/hardware/controllers"
	"github.com/sidegate/famicore/hardware/cpu"
	"github.com/sidegate/famicore/hardware/memory"
	"github.com/sidegate/famicore/hardware/memory/cpubus"
	"github.com/sidegate/famicore/hardware/ppu"
)

// Console is the main container for the emulated components of the NES.
type Console struct {
	CPU  *cpu.CPU
	Mem  *memory.Memory
	PPU  *ppu.PPU
	APU  *apu.APU
	Cart *cartridge.Cartridge

	Joypad1 *controllers.Joypad
	Joypad2 *controllers.Joypad

	// total number of CPU cycles since the last reset. the parity of this
	// value decides the length of an OAM DMA stall
	cycles uint64
}

// NewConsole creates a new Console and everything associated with the
// hardware. It is used for all aspects of emulation: debugging sessions and
// regular play. The console starts with no cartridge attached.
func NewConsole() *Console {
	console := &Console{
		Cart:    cartridge.NewCartridge(),
		APU:     apu.NewAPU(),
		Joypad1: controllers.NewJoypad(),
		Joypad2: controllers.NewJoypad(),
	}
	console.PPU = ppu.NewPPU(console.Cart)
	console.Mem = memory.NewMemory(console.Cart, console.PPU, console.APU,
		console.Joypad1, console.Joypad2)
	console.CPU = cpu.NewCPU(console.Mem)
	return console
}

// AttachCartridge loads a cartridge into the console and resets the
// hardware. An empty loader ejects the current cartridge.
func (console *Console) AttachCartridge(cartload cartridgeloader.Loader) error {
	if cartload.Filename == "" {
		console.Cart.Eject()
	} else if err := console.Cart.Attach(cartload); err != nil {
		return err
	}
	return console.Reset()
}

// Reset emulates the reset switch on the console. The CPU vectors through
// the reset address found in cartridge space.
func (console *Console) Reset() error {
	console.Mem.Reset()
	console.PPU.Reset()
	console.APU.Reset()
	console.Cart.Initialise()
	console.cycles = 0

	console.CPU.Reset()
	return console.CPU.LoadPCIndirect(cpubus.Reset)
}

// the cycle callback given to the CPU defines the order of operation for
// the rest of the console on every CPU cycle: three PPU dots followed by
// one APU step. the dotCallback argument gives debuggers a hook at dot
// granularity and is nil in normal operation
func (console *Console) cycleFunc(dotCallback func() error) func() error {
	return func() error {
		console.cycles++
		for i := 0; i < clocks.DotsPerCycle; i++ {
			if err := console.PPU.Step(); err != nil {
				return err
			}
			if dotCallback != nil {
				if err := dotCallback(); err != nil {
					return err
				}
			}
		}
		return console.APU.Step()
	}
}

// Step the emulator state one CPU instruction. Any pending OAM DMA request
// is performed after the instruction, followed by interrupt servicing.
func (console *Console) Step(dotCallback func() error) error {
	cycle := console.cycleFunc(dotCallback)

	if err := console.CPU.ExecuteInstruction(cycle); err != nil {
		return err
	}

	return console.serviceEvents(cycle)
}

// serviceEvents runs the between-instruction duties: an outstanding OAM DMA
// transfer and then the interrupt lines. NMI has priority over IRQ. The IRQ
// line is level triggered so a masked interrupt will simply be offered
// again after the next instruction.
func (console *Console) serviceEvents(cycle func() error) error {
	if page, ok := console.Mem.ClaimDMA(); ok {
		if err := console.oamDMA(page, cycle); err != nil {
			return err
		}
	}

	if console.PPU.CheckNMI() {
		if err := console.CPU.NMI(cycle); err != nil {
			return err
		}
	}

	if console.APU.IRQLine() {
		if err := console.CPU.IRQ(cycle); err != nil {
			return err
		}
	}

	return nil
}

// oamDMA copies a page of CPU memory into the PPU's OAM through the OAMDATA
// register. The CPU is stalled for 513 cycles, or 514 when the transfer
// starts on an odd cycle. The rest of the console keeps running throughout,
// which is why the stall consumes the cycle callback.
func (console *Console) oamDMA(page uint8, cycle func() error) error {
	if console.cycles%2 == 1 {
		if err := cycle(); err != nil {
			return err
		}
	}
	if err := cycle(); err != nil {
		return err
	}

	address := uint16(page) << 8
	for i := 0; i < 256; i++ {
		data := console.Mem.Read(address)
		address++
		if err := cycle(); err != nil {
			return err
		}

		console.Mem.Write(ppu.AddressOAMDATA, data)
		if err := cycle(); err != nil {
			return err
		}
	}

	return nil
}
