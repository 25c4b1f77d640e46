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
	"github.com/sidegate/famicore/hardware/apu"
	"github.com/sidegate/famicore/hardware/cartridge"
	"github.com/sidegate/famicore/hardware/cpu"
	"github.com/sidegate/famicore/hardware/memory"
	"github.com/sidegate/famicore/hardware/ppu"
)

// State stores a copy of the console sub-systems. It is produced by the
// Snapshot() function and restored with the Plumb() function.
//
// Note that attached triggers (frame, sample) and the joypads are not part
// of the snapshot process.
type State struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	PPU    *ppu.PPU
	APU    *apu.APU
	Cart   *cartridge.Cartridge
	cycles uint64
}

// Snapshot the state of the console sub-systems.
func (console *Console) Snapshot() *State {
	return &State{
		CPU:    console.CPU.Snapshot(),
		Mem:    console.Mem.Snapshot(),
		PPU:    console.PPU.Snapshot(),
		APU:    console.APU.Snapshot(),
		Cart:   console.Cart.Snapshot(),
		cycles: console.cycles,
	}
}

// Plumb a previously snapshotted state back into the console. The state is
// itself re-snapshotted first so that continued emulation cannot corrupt a
// stored State.
func (console *Console) Plumb(state *State) {
	if state == nil {
		panic("console: cannot plumb in a nil state")
	}

	console.CPU = state.CPU.Snapshot()
	console.Mem = state.Mem.Snapshot()
	console.PPU = state.PPU.Snapshot()
	console.APU = state.APU.Snapshot()
	console.Cart = state.Cart.Snapshot()
	console.cycles = state.cycles

	console.CPU.Plumb(console.Mem)
	console.PPU.Plumb(console.Cart)
	console.Mem.Plumb(console.Cart, console.PPU, console.APU,
		console.Joypad1, console.Joypad2)
}
