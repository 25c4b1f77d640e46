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

// Package memory implements the CPU side address bus of the NES. The Memory
// type glues the 2KB of internal RAM, the PPU and APU registers, the
// controller ports and the cartridge into the single flat address space the
// CPU sees.
//
// Address decoding lives in the memorymap sub-package as pure functions.
// Every bus transfer updates an open bus latch; reads of addresses that no
// device drives return the latched value rather than zero.
//
// An OAM DMA request (a write to 0x4014) is not performed by this package.
// The write is latched and the console retrieves it with ClaimDMA(),
// because the transfer stalls the CPU for several hundred cycles while the
// rest of the machine keeps running.
package memory
